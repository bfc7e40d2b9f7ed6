package usecase

import (
	"context"
	"time"

	"StockLens/internal/domain/models"
	domrepo "StockLens/internal/domain/repository"
	"StockLens/internal/services/indicators"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/util"
)

// AnalysisResult is one rendered analysis.
type AnalysisResult struct {
	Ticker string            `json:"ticker"`
	Period string            `json:"period"`
	View   *models.ChartView `json:"view"`
}

// AnalyzeUseCase fetches one document and renders it into chart panels.
type AnalyzeUseCase struct {
	source    domrepo.AnalysisSource
	publisher domrepo.EventPublisher
	metrics   domrepo.Metrics
	l         *applogger.Logger
	now       func() time.Time
}

func NewAnalyzeUseCase(source domrepo.AnalysisSource, publisher domrepo.EventPublisher, metrics domrepo.Metrics, l *applogger.Logger) *AnalyzeUseCase {
	if l == nil {
		l = applogger.Nop()
	}
	return &AnalyzeUseCase{source: source, publisher: publisher, metrics: metrics, l: l, now: time.Now}
}

// Analyze returns ErrEmptyTicker without calling upstream when the ticker is
// blank. An empty period falls back to the default period.
func (u *AnalyzeUseCase) Analyze(ctx context.Context, ticker, period string) (*AnalysisResult, error) {
	ticker = util.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, models.ErrEmptyTicker
	}
	if period == "" {
		period = models.DefaultPeriod
	}

	doc, err := u.Fetch(ctx, ticker, period)
	if err != nil {
		return nil, err
	}

	view := indicators.BuildView(doc)
	u.recordView(view)
	u.publish(ctx, ticker, period, view)

	return &AnalysisResult{Ticker: ticker, Period: period, View: view}, nil
}

// Fetch loads the raw document and records fetch metrics. Sessions share it
// so both entry points are observed the same way.
func (u *AnalyzeUseCase) Fetch(ctx context.Context, ticker, period string) (*models.AnalysisDocument, error) {
	start := u.now()
	doc, err := u.source.FetchAnalysis(ctx, ticker, period)
	elapsed := u.now().Sub(start).Seconds()
	if err != nil {
		u.metrics.RecordFetch("error", elapsed)
		kind := errorKind(err)
		u.metrics.RecordError(kind)
		fields := []applogger.Field{
			applogger.String("ticker", ticker),
			applogger.String("period", period),
			applogger.String("kind", kind),
			applogger.Error(err),
		}
		if kind == "upstream_4xx" {
			u.l.Warn("analysis fetch rejected", fields...)
		} else {
			u.l.Error("analysis fetch failed", fields...)
		}
		return nil, err
	}
	u.metrics.RecordFetch("ok", elapsed)
	return doc, nil
}

func (u *AnalyzeUseCase) recordView(view *models.ChartView) {
	panels := map[string]*models.Panel{
		indicators.ChartMovingAverages: view.MovingAverages,
		indicators.ChartRSI:            view.RSI,
		indicators.ChartVWAP:           view.VWAP,
	}
	for chart, p := range panels {
		if p == nil {
			u.metrics.RecordSkippedChart(chart)
			continue
		}
		u.metrics.RecordSignal(chart, p.State)
	}
}

// publish is best effort; failures are logged only.
func (u *AnalyzeUseCase) publish(ctx context.Context, ticker, period string, view *models.ChartView) {
	if u.publisher == nil {
		return
	}
	ev := models.AnalysisEvent{Ticker: ticker, Period: period, At: u.now().UTC()}
	if view.MovingAverages != nil {
		ev.MovingAverageTrend = models.Trend(view.MovingAverages.State)
	}
	if view.RSI != nil {
		ev.RSICondition = models.RSICondition(view.RSI.State)
	}
	if view.VWAP != nil {
		ev.VWAPPosition = models.VWAPPosition(view.VWAP.State)
	}
	if err := u.publisher.PublishAnalysis(ctx, ev); err != nil {
		u.metrics.RecordError("publish")
		u.l.Warn("publish analysis event failed",
			applogger.String("ticker", ticker),
			applogger.Error(err),
		)
	}
}
