package models

// AnalysisDocument is the payload returned by the analytics API for one
// (ticker, period) request. Every section is optional.
type AnalysisDocument struct {
	Metadata   *Metadata   `json:"metadata,omitempty"`
	Timeseries *Timeseries `json:"timeseries,omitempty"`
	Analysis   *Analysis   `json:"analysis,omitempty"`
}

type Metadata struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Series is an ordered numeric sequence indexed by Timeseries.Dates.
// A nil Series means the series is absent; nil elements are null points.
type Series []*float64

// At returns the value at i, or 0 when the series is absent, i is past its
// end, or the point is null. A present 0 is returned as 0.
func (s Series) At(i int) float64 {
	if i < 0 || i >= len(s) || s[i] == nil {
		return 0
	}
	return *s[i]
}

// Present reports whether the series was supplied at all (an empty list counts).
func (s Series) Present() bool { return s != nil }

// NewSeries builds a fully populated Series from plain values.
func NewSeries(vals ...float64) Series {
	s := make(Series, len(vals))
	for i := range vals {
		v := vals[i]
		s[i] = &v
	}
	return s
}

type Timeseries struct {
	Dates        []string `json:"dates"`
	Price        Series   `json:"price"`
	FiftyMA      Series   `json:"fifty_ma"`
	TwoHundredMA Series   `json:"twohundred_ma"`
	RSI          Series   `json:"rsi"`
	VWAP         Series   `json:"vwap"`
	Volume       Series   `json:"volume"`
}

type Analysis struct {
	MovingAverages *MovingAverageSummary `json:"moving_averages,omitempty"`
	RSI            *RSISummary           `json:"rsi,omitempty"`
	VWAP           *VWAPSummary          `json:"vwap,omitempty"`
}

type MovingAverageSummary struct {
	LatestPrice   float64 `json:"latest_price"`
	Latest50MA    float64 `json:"latest_50ma"`
	Latest200MA   float64 `json:"latest_200ma"`
	IsGoldenCross bool    `json:"is_golden_cross"`
}

type RSISummary struct {
	CurrentRSI   float64 `json:"current_rsi"`
	IsOverbought bool    `json:"is_overbought"`
	IsOversold   bool    `json:"is_oversold"`
}

type VWAPSummary struct {
	CurrentVWAP    float64 `json:"current_vwap"`
	PriceAboveVWAP bool    `json:"price_above_vwap"`
}

// Dates returns the date axis, or nil when the document has none.
func (d *AnalysisDocument) Dates() []string {
	if d == nil || d.Timeseries == nil {
		return nil
	}
	return d.Timeseries.Dates
}

// Series returns the named series ("price", "fifty_ma", ...), nil when absent.
func (d *AnalysisDocument) Series(name string) Series {
	if d == nil || d.Timeseries == nil {
		return nil
	}
	ts := d.Timeseries
	switch name {
	case SeriesPrice:
		return ts.Price
	case SeriesFiftyMA:
		return ts.FiftyMA
	case SeriesTwoHundredMA:
		return ts.TwoHundredMA
	case SeriesRSI:
		return ts.RSI
	case SeriesVWAP:
		return ts.VWAP
	case SeriesVolume:
		return ts.Volume
	default:
		return nil
	}
}

// Source series names as they appear in the timeseries section.
const (
	SeriesPrice        = "price"
	SeriesFiftyMA      = "fifty_ma"
	SeriesTwoHundredMA = "twohundred_ma"
	SeriesRSI          = "rsi"
	SeriesVWAP         = "vwap"
	SeriesVolume       = "volume"
)
