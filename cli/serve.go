package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"healthcare-optimizer/config"
	httpLayer "healthcare-optimizer/http"
	"healthcare-optimizer/logger"
	"healthcare-optimizer/repository"
	"healthcare-optimizer/service"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, _ := cmd.Flags().GetStringSlice("config-path")
			cfg, err := config.Load(paths...)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cache, closeCache := newCache(ctx, cfg, log)
	defer closeCache()

	analytics := service.NewAnalyticsService(cache, log)
	dashboard := service.NewDashboardService(analytics, log)
	simulation := service.NewSimulationService(
		cfg.Simulation.Steps,
		cfg.Simulation.StepDelay,
		cfg.Simulation.SettleDelay,
		log,
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)

	server := &http.Server{
		Addr: cfg.Server.Address,
		Handler: httpLayer.NewRouter(httpLayer.Deps{
			Analytics:   analytics,
			Dashboard:   dashboard,
			Simulation:  simulation,
			RateLimiter: rateLimiter,
			TrustProxy:  cfg.Server.TrustProxy,
			Log:         log,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("dashboard listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

// newCache returns the Redis cache when enabled and reachable, otherwise
// the in-memory cache.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.CacheRepository, func()) {
	memory := func() (repository.CacheRepository, func()) {
		return repository.NewMemoryCache(cfg.MemoryCache.MaxEntries, cfg.Redis.TTL), func() {}
	}
	if !cfg.Redis.Enabled {
		return memory()
	}

	rc := repository.NewRedisCache(repository.RedisOptions{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	}, log)
	if err := rc.Ping(ctx); err != nil {
		log.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
		_ = rc.Close()
		return memory()
	}

	log.Info("using redis result cache", zap.String("address", cfg.Redis.Address))
	return rc, func() { _ = rc.Close() }
}
