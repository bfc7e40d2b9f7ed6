package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"StockLens/internal/domain/models"
	domrepo "StockLens/internal/domain/repository"
	icache "StockLens/internal/service/cache"
	applogger "StockLens/pkg/logger"
)

// CachedSource caches successful upstream documents for a fixed TTL.
// Failures are never cached and cache errors fall back to the upstream.
type CachedSource struct {
	next    domrepo.AnalysisSource
	cache   icache.BytesCache
	ttl     time.Duration
	metrics domrepo.Metrics
	l       *applogger.Logger
}

func NewCachedSource(next domrepo.AnalysisSource, cache icache.BytesCache, ttl time.Duration, metrics domrepo.Metrics, l *applogger.Logger) *CachedSource {
	return &CachedSource{next: next, cache: cache, ttl: ttl, metrics: metrics, l: l}
}

func (s *CachedSource) FetchAnalysis(ctx context.Context, ticker, period string) (*models.AnalysisDocument, error) {
	key := cacheKey(ticker, period)

	b, ok, err := s.cache.GetBytes(ctx, key)
	switch {
	case err != nil:
		s.metrics.RecordCache("error")
		s.warn("document cache get failed", key, err)
	case ok:
		var doc models.AnalysisDocument
		if err := json.Unmarshal(b, &doc); err == nil {
			s.metrics.RecordCache("hit")
			return &doc, nil
		}
		s.metrics.RecordCache("corrupt")
	default:
		s.metrics.RecordCache("miss")
	}

	doc, err := s.next.FetchAnalysis(ctx, ticker, period)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(doc); err == nil {
		if err := s.cache.SetBytes(ctx, key, b, s.ttl); err != nil {
			s.warn("document cache set failed", key, err)
		}
	}
	return doc, nil
}

func (s *CachedSource) warn(msg, key string, err error) {
	if s.l != nil {
		s.l.Warn(msg, applogger.String("key", key), applogger.Error(err))
	}
}

func cacheKey(ticker, period string) string {
	return "analysis:" + strings.ToUpper(ticker) + ":" + period
}

var _ domrepo.AnalysisSource = (*CachedSource)(nil)
