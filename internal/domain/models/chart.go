package models

import (
	"bytes"
	"encoding/json"
)

// Cell is one named numeric field of an aligned row.
type Cell struct {
	Key   string
	Value float64
}

// Row is one date-indexed record of a chart. It marshals to a flat object
// such as {"date":"d1","price":100,"ma50":90}, keeping the cell order.
type Row struct {
	Date  string
	Cells []Cell
}

// Value returns the cell value for key.
func (r Row) Value(key string) (float64, bool) {
	for _, c := range r.Cells {
		if c.Key == key {
			return c.Value, true
		}
	}
	return 0, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"date":`)
	d, err := json.Marshal(r.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(d)
	for _, c := range r.Cells {
		k, err := json.Marshal(c.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Trend is the moving-average classification.
type Trend string

const (
	TrendGoldenCross Trend = "golden_cross"
	TrendDeathCross  Trend = "death_cross"
)

// RSICondition is the RSI classification.
type RSICondition string

const (
	RSIOverbought RSICondition = "overbought"
	RSIOversold   RSICondition = "oversold"
	RSINeutral    RSICondition = "neutral"
)

// VWAPPosition tells where the price sits relative to VWAP.
type VWAPPosition string

const (
	VWAPAbovePrice VWAPPosition = "above"
	VWAPBelowPrice VWAPPosition = "below"
)

// Tone drives the colour of a signal line.
type Tone string

const (
	ToneBullish Tone = "bullish"
	ToneBearish Tone = "bearish"
	ToneNeutral Tone = "neutral"
)

type MovingAverageState struct {
	Trend       Trend   `json:"trend"`
	LatestPrice float64 `json:"latest_price"`
	Latest50MA  float64 `json:"latest_50ma"`
	Latest200MA float64 `json:"latest_200ma"`
}

type RSIState struct {
	Condition  RSICondition `json:"condition"`
	CurrentRSI float64      `json:"current_rsi"`
}

type VWAPState struct {
	Position    VWAPPosition `json:"position"`
	CurrentVWAP float64      `json:"current_vwap"`
}

// MovingAveragesChart is the aligned price/MA series plus its classification.
type MovingAveragesChart struct {
	Rows  []Row
	State MovingAverageState
}

type RSIChart struct {
	Rows  []Row
	State RSIState
}

type VWAPChart struct {
	Rows  []Row
	State VWAPState
}

// SeriesStyle describes how one row field is drawn.
type SeriesStyle struct {
	Key     string  `json:"key"`
	Label   string  `json:"label,omitempty"`
	Color   string  `json:"color"`
	Kind    string  `json:"kind"`
	Axis    string  `json:"axis,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

type Signal struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// Panel is a render-ready chart: data rows, styling and the textual analysis.
type Panel struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Height      int           `json:"height"`
	YDomain     []float64     `json:"y_domain,omitempty"`
	Series      []SeriesStyle `json:"series"`
	Rows        []Row         `json:"rows"`
	State       string        `json:"state"`
	Summary     []string      `json:"summary"`
	Signal      Signal        `json:"signal"`
}

type Header struct {
	Title    string `json:"title"`
	Ticker   string `json:"ticker"`
	Subtitle string `json:"subtitle"`
}

// ChartView is everything a client needs to draw one analysis. Panels whose
// data is missing are nil.
type ChartView struct {
	Header         *Header `json:"header,omitempty"`
	MovingAverages *Panel  `json:"moving_averages,omitempty"`
	RSI            *Panel  `json:"rsi,omitempty"`
	VWAP           *Panel  `json:"vwap,omitempty"`
}

// Panels returns the non-nil panels in display order.
func (v *ChartView) Panels() []*Panel {
	if v == nil {
		return nil
	}
	out := make([]*Panel, 0, 3)
	for _, p := range []*Panel{v.MovingAverages, v.RSI, v.VWAP} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
