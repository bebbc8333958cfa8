package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"healthcare-optimizer/service"
)

// Deps are the services the router exposes.
type Deps struct {
	Analytics   *service.AnalyticsService
	Dashboard   *service.DashboardService
	Simulation  *service.SimulationService
	RateLimiter *RateLimiter
	TrustProxy  bool
	Log         *zap.Logger
}

// NewRouter wires every route. The rate limiter, when set, guards the
// dashboard page and the JSON API; both run the calculators. Clients are
// charged by TCP peer unless TrustProxy lets X-Forwarded-For / X-Real-IP
// rewrite RemoteAddr first.
func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	calculators := NewCalculatorHandler(d.Analytics, log)
	dashboard := NewDashboardHandler(d.Dashboard, log)
	simulation := NewSimulationHandler(d.Simulation, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if d.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws/simulation", simulation.Stream)

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(RateLimitMiddleware(d.RateLimiter, PeerAddress, log))
		}
		r.Get("/", dashboard.Page)
		r.Route("/api", func(r chi.Router) {
			r.Post("/operations", calculators.Operations)
			r.Post("/roi", calculators.ROI)
			r.Post("/six-sigma", calculators.SixSigma)
			r.Get("/dashboard", dashboard.Evaluate)
			r.Get("/defaults", dashboard.Bounds)
		})
	})

	return r
}
