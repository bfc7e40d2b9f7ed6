package indicators

import (
	"math"
	"strconv"
)

// FormatNumber renders v with two decimals. Zero and NaN render as "0.00".
func FormatNumber(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPrice is FormatNumber with a leading dollar sign.
func FormatPrice(v float64) string {
	return "$" + FormatNumber(v)
}
