package ratelimit

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key. Idle buckets are forgotten
// after ten minutes.
type Limiter struct {
	mu      sync.Mutex
	buckets *gocache.Cache
	rps     rate.Limit
	burst   int
}

func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		buckets: gocache.New(10*time.Minute, 5*time.Minute),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.buckets.Get(key)
	if !ok {
		b = rate.NewLimiter(l.rps, l.burst)
	}
	l.buckets.SetDefault(key, b)
	l.mu.Unlock()
	return b.(*rate.Limiter).Allow()
}
