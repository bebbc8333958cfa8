package http

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"healthcare-optimizer/repository"
	"healthcare-optimizer/service"
)

type testRouterOptions struct {
	limiter    *RateLimiter
	cache      repository.CacheRepository
	trustProxy bool
}

func newTestRouter(t *testing.T, limiter *RateLimiter) http.Handler {
	t.Helper()
	return buildTestRouter(t, testRouterOptions{limiter: limiter})
}

func buildTestRouter(t *testing.T, opts testRouterOptions) http.Handler {
	t.Helper()
	if opts.cache == nil {
		opts.cache = repository.NewMemoryCache(100, time.Hour)
	}
	log := zap.NewNop()
	analytics := service.NewAnalyticsService(opts.cache, log)
	return NewRouter(Deps{
		Analytics:   analytics,
		Dashboard:   service.NewDashboardService(analytics, log),
		Simulation:  service.NewSimulationService(10, 0, 0, log),
		RateLimiter: opts.limiter,
		TrustProxy:  opts.trustProxy,
		Log:         log,
	})
}
