package indicators

import (
	"StockLens/internal/domain/models"
	"StockLens/pkg/util"
)

const notAvailable = "N/A"

var (
	trendSignals = map[models.Trend]models.Signal{
		models.TrendGoldenCross: {Text: "Golden Cross (Bullish)", Tone: models.ToneBullish},
		models.TrendDeathCross:  {Text: "Death Cross (Bearish)", Tone: models.ToneBearish},
	}

	rsiSignals = map[models.RSICondition]models.Signal{
		models.RSIOverbought: {Text: "Overbought", Tone: models.ToneBearish},
		models.RSIOversold:   {Text: "Oversold", Tone: models.ToneBullish},
		models.RSINeutral:    {Text: "Neutral", Tone: models.ToneNeutral},
	}

	vwapSignals = map[models.VWAPPosition]models.Signal{
		models.VWAPAbovePrice: {Text: "Price is above VWAP (Bullish)", Tone: models.ToneBullish},
		models.VWAPBelowPrice: {Text: "Price is below VWAP (Bearish)", Tone: models.ToneBearish},
	}
)

const (
	movingAveragesDescription = "Moving averages help identify trends by smoothing out price fluctuations. " +
		"The 50-day and 200-day moving averages are widely used indicators. When the 50-day crosses above " +
		"the 200-day (Golden Cross), it's considered bullish; when it crosses below (Death Cross), it's considered bearish."

	rsiDescription = "RSI measures the speed and magnitude of recent price changes to evaluate whether a stock " +
		"is overbought or oversold. Values above 70 suggest the stock might be overbought (potentially overvalued), " +
		"while values below 30 suggest it might be oversold (potentially undervalued)."

	vwapDescription = "Volume Weighted Average Price (VWAP) combines price and volume data to show the average " +
		"price a stock has traded at throughout the day, weighted by volume. When price is above VWAP, it suggests " +
		"buying pressure; when below, it suggests selling pressure. Volume bars show trading activity - higher " +
		"volumes often validate price movements."
)

// BuildView runs every chart pipeline over doc. It is a pure function of
// doc and is recomputed for every document.
func BuildView(doc *models.AnalysisDocument) *models.ChartView {
	if doc == nil {
		return nil
	}
	view := &models.ChartView{Header: BuildHeader(doc.Metadata)}
	if c := BuildMovingAverages(doc); c != nil {
		view.MovingAverages = MovingAveragesPanel(c)
	}
	if c := BuildRSI(doc); c != nil {
		view.RSI = RSIPanel(c)
	}
	if c := BuildVWAP(doc); c != nil {
		view.VWAP = VWAPPanel(c)
	}
	return view
}

// BuildHeader returns nil without metadata.
func BuildHeader(m *models.Metadata) *models.Header {
	if m == nil {
		return nil
	}
	return &models.Header{
		Title:    util.FirstNonEmpty(m.CompanyName, m.Ticker),
		Ticker:   m.Ticker,
		Subtitle: util.FirstNonEmpty(m.Sector, notAvailable) + " | " + util.FirstNonEmpty(m.Industry, notAvailable),
	}
}

// MovingAveragesPanel renders price with the 50 and 200 day averages.
func MovingAveragesPanel(c *models.MovingAveragesChart) *models.Panel {
	return &models.Panel{
		ID:          ChartMovingAverages,
		Title:       "Moving Averages",
		Description: movingAveragesDescription,
		Height:      400,
		Series: []models.SeriesStyle{
			{Key: KeyPrice, Label: "Price", Color: "#2563eb", Kind: "line"},
			{Key: KeyMA50, Label: "50 MA", Color: "#16a34a", Kind: "line"},
			{Key: KeyMA200, Label: "200 MA", Color: "#dc2626", Kind: "line"},
		},
		Rows:  c.Rows,
		State: string(c.State.Trend),
		Summary: []string{
			"Current Price: " + FormatPrice(c.State.LatestPrice),
			"50-day MA: " + FormatPrice(c.State.Latest50MA),
			"200-day MA: " + FormatPrice(c.State.Latest200MA),
		},
		Signal: trendSignals[c.State.Trend],
	}
}

// RSIPanel renders RSI on a fixed 0 to 100 axis.
func RSIPanel(c *models.RSIChart) *models.Panel {
	return &models.Panel{
		ID:          ChartRSI,
		Title:       "RSI (Relative Strength Index)",
		Description: rsiDescription,
		Height:      300,
		YDomain:     []float64{0, 100},
		Series: []models.SeriesStyle{
			{Key: KeyRSI, Color: "#8b5cf6", Kind: "line"},
		},
		Rows:    c.Rows,
		State:   string(c.State.Condition),
		Summary: []string{"Current RSI: " + FormatNumber(c.State.CurrentRSI)},
		Signal:  rsiSignals[c.State.Condition],
	}
}

// VWAPPanel renders price and VWAP on the left axis and volume bars on the right.
func VWAPPanel(c *models.VWAPChart) *models.Panel {
	return &models.Panel{
		ID:          ChartVWAP,
		Title:       "VWAP & Volume Analysis",
		Description: vwapDescription,
		Height:      400,
		Series: []models.SeriesStyle{
			{Key: KeyPrice, Label: "Price", Color: "#2563eb", Kind: "line", Axis: "left"},
			{Key: KeyVWAP, Label: "VWAP", Color: "#16a34a", Kind: "line", Axis: "left"},
			{Key: KeyVolume, Label: "Volume", Color: "#6b7280", Kind: "bar", Axis: "right", Opacity: 0.3},
		},
		Rows:    c.Rows,
		State:   string(c.State.Position),
		Summary: []string{"Current VWAP: " + FormatPrice(c.State.CurrentVWAP)},
		Signal:  vwapSignals[c.State.Position],
	}
}
