package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", func(c echo.Context) error { return SuccessResponse(c, "pong") })
}

func TestNewServer_RoutesAndMetrics(t *testing.T) {
	s := NewServer(nil, []Handler{pingHandler{}},
		WithMetrics("/metrics", 0),
		WithRegistry(prometheus.NewRegistry()),
	)

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":"pong"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Fatalf("metrics not exposed: %d", rec.Code)
	}
}

func TestUpstreamErrorf(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{404, 404},
		{422, 422},
		{500, http.StatusBadGateway},
		{0, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := UpstreamErrorf(tc.in, "x").Status; got != tc.want {
			t.Errorf("status %d: got %d want %d", tc.in, got, tc.want)
		}
	}
}
