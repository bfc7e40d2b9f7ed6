package models

import (
	"errors"
	"fmt"
)

// ErrEmptyTicker is returned when an analysis is requested without a ticker.
var ErrEmptyTicker = errors.New("ticker required")

// UpstreamError is a non-2xx answer from the analytics API.
// Detail is set only when the failure payload carried a string "detail".
type UpstreamError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analytics api status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("analytics api status %d", e.StatusCode)
}
