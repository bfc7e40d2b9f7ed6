package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"StockLens/internal/domain/models"
	domrepo "StockLens/internal/domain/repository"
	"StockLens/pkg/config"
	xhttp "StockLens/pkg/http"
)

// Client reads precomputed indicator documents from the analytics API.
type Client struct {
	baseURL  string
	client   *xhttp.Client
	attempts int
	backoff  time.Duration
}

// NewClient builds the API client with timeout, retries and base URL from config.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Analytics.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	attempts := cfg.Analytics.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.Analytics.BaseURL, "/"),
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent(cfg.Analytics.UserAgent)),
		attempts: attempts,
		backoff:  cfg.Analytics.RetryBackoff,
	}
}

// FetchAnalysis calls GET /api/stock/{ticker}?period={period}. A non-2xx
// answer is returned as *models.UpstreamError.
func (c *Client) FetchAnalysis(ctx context.Context, ticker, period string) (*models.AnalysisDocument, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("analytics base url not configured")
	}

	var doc models.AnalysisDocument
	err := c.getJSONWithRetry(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/api/stock/" + url.PathEscape(ticker),
		QueryParams: map[string][]string{"period": {period}},
	}, &doc)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return nil, &models.UpstreamError{StatusCode: se.StatusCode, Detail: parseDetail(se.Body), Body: se.Body}
		}
		return nil, fmt.Errorf("get analysis %s: %w", ticker, err)
	}
	return &doc, nil
}

// getJSONWithRetry retries transport failures only; an HTTP answer of any
// status is final.
func (c *Client) getJSONWithRetry(ctx context.Context, opts *xhttp.RequestOptions, dest interface{}) error {
	var err error
	for i := 1; i <= c.attempts; i++ {
		err = c.client.SendAndParse(ctx, opts, dest)
		if err == nil {
			return nil
		}
		var se *xhttp.StatusError
		if errors.As(err, &se) || i == c.attempts {
			return err
		}
		select {
		case <-time.After(time.Duration(i) * c.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// parseDetail extracts a string "detail" field from an error payload.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err != nil {
		return ""
	}
	return s
}

var _ domrepo.AnalysisSource = (*Client)(nil)
