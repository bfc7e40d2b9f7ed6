package models

// Period is one selectable lookback window. Value is passed to the analytics
// API untouched.
type Period struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const DefaultPeriod = "1mo"

var periods = []Period{
	{Value: "7d", Label: "7 Days"},
	{Value: "1mo", Label: "1 Month"},
	{Value: "6mo", Label: "6 Months"},
	{Value: "2y", Label: "2 Years"},
	{Value: "5y", Label: "5 Years"},
	{Value: "10y", Label: "10 Years"},
}

// Periods returns the period catalogue in display order.
func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods)
	return out
}
