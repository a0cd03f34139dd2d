package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/changetrail/internal/transport/middleware"
)

// RouterDeps holds the handlers and middleware mounted by NewRouter.
// Optional middleware may be nil.
type RouterDeps struct {
	Log     *slog.Logger
	Topics  *TopicHandler
	History *HistoryHandler
	Health  *HealthHandler
	Metrics http.Handler

	Auth        middleware.Middleware
	CORS        middleware.Middleware
	HTTPMetrics middleware.Middleware
	WriteLimit  middleware.Middleware
}

// NewRouter builds the HTTP routing tree. Auth runs before every API
// handler so the actor is in the context before any domain write.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		d.CORS,
		d.HTTPMetrics,
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Chain(d.Auth, middleware.Logger(d.Log)))

		r.Route("/topics", func(r chi.Router) {
			r.With(middleware.Chain(d.WriteLimit)).Post("/", d.Topics.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Topics.Get)
				r.With(middleware.RequireStaff).Get("/history", d.Topics.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Chain(d.WriteLimit))
					r.Patch("/", d.Topics.Update)
					r.Delete("/", d.Topics.Delete)
					r.Delete("/entries", d.Topics.ClearEntries)
					r.Put("/entries/{entryID}", d.Topics.LinkEntry)
					r.Delete("/entries/{entryID}", d.Topics.UnlinkEntry)
				})
			})
		})

		r.Route("/history", func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			r.Get("/", d.History.Kinds)
			r.Get("/{kind}/{id}", d.History.ByTarget)
		})
	})

	return r
}
