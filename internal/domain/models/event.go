package models

import "time"

// AnalysisEvent is published after a successful analysis. Classification
// fields are empty for charts that were skipped.
type AnalysisEvent struct {
	Ticker             string       `json:"ticker"`
	Period             string       `json:"period"`
	At                 time.Time    `json:"at"`
	MovingAverageTrend Trend        `json:"moving_average_trend,omitempty"`
	RSICondition       RSICondition `json:"rsi_condition,omitempty"`
	VWAPPosition       VWAPPosition `json:"vwap_position,omitempty"`
}
