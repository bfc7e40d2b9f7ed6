package indicators

import "StockLens/internal/domain/models"

// Chart identifiers.
const (
	ChartMovingAverages = "moving_averages"
	ChartRSI            = "rsi"
	ChartVWAP           = "vwap"
)

// Row field keys.
const (
	KeyPrice  = "price"
	KeyMA50   = "ma50"
	KeyMA200  = "ma200"
	KeyRSI    = "rsi"
	KeyVWAP   = "vwap"
	KeyVolume = "volume"
)

// BuildMovingAverages returns nil when the document has no dates or no price.
func BuildMovingAverages(doc *models.AnalysisDocument) *models.MovingAveragesChart {
	dates, price := doc.Dates(), doc.Series(models.SeriesPrice)
	if dates == nil || !price.Present() {
		return nil
	}
	return &models.MovingAveragesChart{
		Rows: Align(dates,
			Column{Key: KeyPrice, Series: price},
			Column{Key: KeyMA50, Series: doc.Series(models.SeriesFiftyMA)},
			Column{Key: KeyMA200, Series: doc.Series(models.SeriesTwoHundredMA)},
		),
		State: ClassifyMovingAverages(summaries(doc).MovingAverages),
	}
}

// BuildRSI returns nil when the document has no dates or no rsi series.
func BuildRSI(doc *models.AnalysisDocument) *models.RSIChart {
	dates, rsi := doc.Dates(), doc.Series(models.SeriesRSI)
	if dates == nil || !rsi.Present() {
		return nil
	}
	return &models.RSIChart{
		Rows:  Align(dates, Column{Key: KeyRSI, Series: rsi}),
		State: ClassifyRSI(summaries(doc).RSI),
	}
}

// BuildVWAP returns nil when the document has no dates or no vwap series.
// Price and volume are optional and default per index.
func BuildVWAP(doc *models.AnalysisDocument) *models.VWAPChart {
	dates, vwap := doc.Dates(), doc.Series(models.SeriesVWAP)
	if dates == nil || !vwap.Present() {
		return nil
	}
	return &models.VWAPChart{
		Rows: Align(dates,
			Column{Key: KeyPrice, Series: doc.Series(models.SeriesPrice)},
			Column{Key: KeyVWAP, Series: vwap},
			Column{Key: KeyVolume, Series: doc.Series(models.SeriesVolume)},
		),
		State: ClassifyVWAP(summaries(doc).VWAP),
	}
}

func summaries(doc *models.AnalysisDocument) *models.Analysis {
	if doc == nil || doc.Analysis == nil {
		return &models.Analysis{}
	}
	return doc.Analysis
}
