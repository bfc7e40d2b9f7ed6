//go:build wireinject
// +build wireinject

package di

import (
	"StockLens/pkg/config"
	"StockLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideAnalyticsClient,
		ProvideBytesCache,
		ProvideEventPublisher,
		ProvideRateLimiter,

		// Repositories
		ProvideAnalysisSource,

		// Use cases
		ProvideAnalyzeUseCase,

		// Transport
		ProvideAnalysisHandler,
		ProvideSessionHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
