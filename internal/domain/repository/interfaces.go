package repository

import (
	"context"

	"StockLens/internal/domain/models"
)

// AnalysisSource fetches the precomputed analysis document for a ticker.
type AnalysisSource interface {
	FetchAnalysis(ctx context.Context, ticker, period string) (*models.AnalysisDocument, error)
}

// EventPublisher emits analysis events to downstream consumers.
type EventPublisher interface {
	PublishAnalysis(ctx context.Context, ev models.AnalysisEvent) error
	Close() error
}

type Metrics interface {
	RecordFetch(result string, seconds float64)
	RecordSignal(chart, state string)
	RecordSkippedChart(chart string)
	RecordCache(result string)
	RecordError(kind string)
}
