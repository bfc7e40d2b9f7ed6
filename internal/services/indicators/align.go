// Package indicators turns an analysis document into chart-ready data:
// per-date row alignment with zero defaults, and classification of the
// precomputed summary flags.
package indicators

import "StockLens/internal/domain/models"

// Column binds a source series to the row field it fills.
type Column struct {
	Key    string
	Series models.Series
}

// Align produces one row per date, in date order. A column value is taken
// from the same index of its series and defaults to 0 when the series is
// absent, shorter than dates, or null at that index. Align never fails.
func Align(dates []string, cols ...Column) []models.Row {
	rows := make([]models.Row, len(dates))
	for i, d := range dates {
		cells := make([]models.Cell, len(cols))
		for j, c := range cols {
			cells[j] = models.Cell{Key: c.Key, Value: c.Series.At(i)}
		}
		rows[i] = models.Row{Date: d, Cells: cells}
	}
	return rows
}
