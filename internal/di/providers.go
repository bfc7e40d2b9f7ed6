package di

import (
	"context"
	"fmt"
	"io"
	"time"

	domrepo "StockLens/internal/domain/repository"
	"StockLens/internal/handler/api"
	internalrepo "StockLens/internal/repository"
	icache "StockLens/internal/service/cache"
	"StockLens/internal/service/ratelimit"
	"StockLens/internal/services/analytics"
	"StockLens/internal/usecase"
	"StockLens/pkg/config"
	xhttp "StockLens/pkg/http"
	pkgkafka "StockLens/pkg/kafka"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/metrics"
	"StockLens/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New(nil)
}

func ProvideAnalyticsClient(cfg *config.Config) *analytics.Client {
	return analytics.NewClient(cfg)
}

// ProvideBytesCache returns nil when caching is disabled.
func ProvideBytesCache(cfg *config.Config, l *applogger.Logger) (icache.BytesCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rc, err := icache.NewRedisCache(ctx, icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		l.Info("document cache enabled", applogger.String("backend", "redis"), applogger.String("addr", cfg.Cache.Redis.Addr))
		return rc, nil
	default:
		l.Info("document cache enabled", applogger.String("backend", "memory"))
		return icache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL), nil
	}
}

// ProvideAnalysisSource wraps the analytics client with the document cache when one is configured.
func ProvideAnalysisSource(cfg *config.Config, client *analytics.Client, cache icache.BytesCache, m domrepo.Metrics, l *applogger.Logger) domrepo.AnalysisSource {
	if cache == nil {
		return client
	}
	return internalrepo.NewCachedSource(client, cache, cfg.Cache.TTL, m, l)
}

// ProvideEventPublisher creates the Kafka publisher, or a no-op one when Kafka is disabled.
func ProvideEventPublisher(cfg *config.Config, l *applogger.Logger) (domrepo.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	l.Info("kafka publisher enabled",
		applogger.Strings("brokers", cfg.Kafka.Brokers),
		applogger.String("topic", cfg.Kafka.Topic),
	)
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

func ProvideAnalyzeUseCase(source domrepo.AnalysisSource, pub domrepo.EventPublisher, m domrepo.Metrics, l *applogger.Logger) *usecase.AnalyzeUseCase {
	return usecase.NewAnalyzeUseCase(source, pub, m, l)
}

func ProvideAnalysisHandler(l *applogger.Logger, uc *usecase.AnalyzeUseCase, limiter *ratelimit.Limiter) *api.AnalysisEchoHandler {
	return api.NewAnalysisEchoHandler(l, uc, limiter)
}

// ProvideSessionHandler backs every WebSocket session with the analyze use case.
func ProvideSessionHandler(l *applogger.Logger, uc *usecase.AnalyzeUseCase) *api.SessionHandler {
	return api.NewSessionHandler(l, uc)
}

func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, ah *api.AnalysisEchoHandler, sh *api.SessionHandler) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path, cfg.Metrics.SlowThreshold))
	}
	return xhttp.NewServer(l, []xhttp.Handler{ah, sh}, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(l *applogger.Logger, srv *xhttp.Server, pub domrepo.EventPublisher, cache icache.BytesCache) *server.App {
	closers := map[string]io.Closer{"publisher": pub}
	if c, ok := cache.(io.Closer); ok {
		closers["cache"] = c
	}
	return server.New(l, srv, closers)
}
