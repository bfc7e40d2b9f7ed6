package usecase

import (
	"errors"

	"StockLens/internal/domain/models"
)

// GenericErrorMessage is shown when a failure carries no detail.
const GenericErrorMessage = "Error fetching data"

// ErrorMessage returns the single user-visible message for a failed fetch:
// the upstream detail when present, else GenericErrorMessage.
func ErrorMessage(err error) string {
	var up *models.UpstreamError
	if errors.As(err, &up) && up.Detail != "" {
		return up.Detail
	}
	return GenericErrorMessage
}

// errorKind labels a failure for metrics.
func errorKind(err error) string {
	var up *models.UpstreamError
	switch {
	case errors.As(err, &up) && up.StatusCode >= 400 && up.StatusCode < 500:
		return "upstream_4xx"
	case errors.As(err, &up):
		return "upstream_5xx"
	case errors.Is(err, models.ErrEmptyTicker):
		return "empty_ticker"
	default:
		return "transport"
	}
}
