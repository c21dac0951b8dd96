package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"edpulse/internal/http/handlers"
	"edpulse/internal/infra"
	"edpulse/internal/middleware"
)

// NewRouter builds the analytics API router.
func NewRouter(app *handlers.App, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/metrics", func(r chi.Router) {
		r.Get("/summary", app.MetricsSummary)
		r.Get("/trends", app.MetricsTrends)
		r.Get("/cohorts", app.MetricsCohorts)
		r.Get("/funnel", app.MetricsFunnel)
		r.Get("/segments", app.MetricsSegments)
		r.Get("/lifecycle", app.MetricsLifecycle)
		r.Get("/courses", app.MetricsCourses)
	})

	r.Get("/v1/insights", app.Insights)

	return r
}
