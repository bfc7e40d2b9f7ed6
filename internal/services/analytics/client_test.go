package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"StockLens/internal/domain/models"
	"StockLens/pkg/config"
)

func newTestClient(url string, attempts int) *Client {
	cfg := &config.Config{}
	cfg.Analytics.BaseURL = url
	cfg.Analytics.Timeout = 2 * time.Second
	cfg.Analytics.RetryAttempts = attempts
	cfg.Analytics.RetryBackoff = time.Millisecond
	return NewClient(cfg)
}

func TestFetchAnalysis_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stock/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("period"); got != "6mo" {
			t.Errorf("expected period 6mo, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"metadata":{"ticker":"AAPL"},"timeseries":{"dates":["d1"],"price":[1.5],"rsi":null}}`))
	}))
	defer srv.Close()

	doc, err := newTestClient(srv.URL, 1).FetchAnalysis(context.Background(), "AAPL", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Metadata == nil || doc.Metadata.Ticker != "AAPL" {
		t.Fatalf("unexpected metadata %+v", doc.Metadata)
	}
	if doc.Timeseries.Price.At(0) != 1.5 {
		t.Errorf("unexpected price %v", doc.Timeseries.Price.At(0))
	}
	if doc.Timeseries.RSI.Present() {
		t.Error("null rsi should decode as absent")
	}
}

func TestFetchAnalysis_DetailFromErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Ticker not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 3).FetchAnalysis(context.Background(), "ZZZZ", "1mo")
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusNotFound || ue.Detail != "Ticker not found" {
		t.Fatalf("unexpected upstream error %+v", ue)
	}
}

func TestFetchAnalysis_NonStringDetailIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["query","period"],"msg":"bad"}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 1).FetchAnalysis(context.Background(), "AAPL", "3w")
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Detail != "" {
		t.Fatalf("expected empty detail, got %q", ue.Detail)
	}
}

func TestFetchAnalysis_HTTPErrorsAreNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, 3).FetchAnalysis(context.Background(), "AAPL", "1mo"); err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 call, got %d", n)
	}
}

func TestFetchAnalysis_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url, 2).FetchAnalysis(context.Background(), "AAPL", "1mo")
	if err == nil {
		t.Fatal("expected error")
	}
	var ue *models.UpstreamError
	if errors.As(err, &ue) {
		t.Fatalf("transport failure should not be an UpstreamError: %v", err)
	}
}

func TestFetchAnalysis_EscapesTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/stock/BRK%2FB" {
			t.Errorf("unexpected escaped path %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, 1).FetchAnalysis(context.Background(), "BRK/B", "1mo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseDetail(t *testing.T) {
	cases := map[string]string{
		`{"detail":"x"}`: "x",
		`{"detail":1}`:   "",
		`not json`:       "",
		`{}`:             "",
	}
	for in, want := range cases {
		if got := parseDetail([]byte(in)); got != want {
			t.Errorf("parseDetail(%s) = %q, want %q", in, got, want)
		}
	}
}
