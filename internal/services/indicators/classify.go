package indicators

import "StockLens/internal/domain/models"

type rsiFlags struct {
	overbought bool
	oversold   bool
}

// Classification tables. Every flag combination has exactly one entry;
// overbought wins when upstream sets both RSI flags.
var (
	trendTable = map[bool]models.Trend{
		true:  models.TrendGoldenCross,
		false: models.TrendDeathCross,
	}

	rsiTable = map[rsiFlags]models.RSICondition{
		{overbought: true, oversold: true}:   models.RSIOverbought,
		{overbought: true, oversold: false}:  models.RSIOverbought,
		{overbought: false, oversold: true}:  models.RSIOversold,
		{overbought: false, oversold: false}: models.RSINeutral,
	}

	vwapTable = map[bool]models.VWAPPosition{
		true:  models.VWAPAbovePrice,
		false: models.VWAPBelowPrice,
	}
)

// ClassifyMovingAverages maps the moving-average summary to a trend.
// A nil summary behaves as all zeros and false flags.
func ClassifyMovingAverages(s *models.MovingAverageSummary) models.MovingAverageState {
	if s == nil {
		s = &models.MovingAverageSummary{}
	}
	return models.MovingAverageState{
		Trend:       trendTable[s.IsGoldenCross],
		LatestPrice: s.LatestPrice,
		Latest50MA:  s.Latest50MA,
		Latest200MA: s.Latest200MA,
	}
}

// ClassifyRSI picks overbought, then oversold, then neutral.
func ClassifyRSI(s *models.RSISummary) models.RSIState {
	if s == nil {
		s = &models.RSISummary{}
	}
	return models.RSIState{
		Condition:  rsiTable[rsiFlags{overbought: s.IsOverbought, oversold: s.IsOversold}],
		CurrentRSI: s.CurrentRSI,
	}
}

// ClassifyVWAP reports whether price sits above or below VWAP.
func ClassifyVWAP(s *models.VWAPSummary) models.VWAPState {
	if s == nil {
		s = &models.VWAPSummary{}
	}
	return models.VWAPState{
		Position:    vwapTable[s.PriceAboveVWAP],
		CurrentVWAP: s.CurrentVWAP,
	}
}
