package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"requestdesk/internal/api"
	"requestdesk/internal/metrics"
	"requestdesk/internal/request"
	"requestdesk/internal/session"
	"requestdesk/internal/web"
	"requestdesk/pkg/config"
)

type Dependencies struct {
	Cfg      config.Config
	Logger   *logrus.Logger
	Sessions *session.Manager
	// Metrics is optional.
	Metrics *metrics.Metrics
	// Requests defaults to the seed list.
	Requests []request.Summary
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if deps.Logger != nil {
		r.Use(api.RequestLogger(deps.Logger))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.Metrics != nil && deps.Cfg.Metrics.Enabled {
		r.Method(http.MethodGet, deps.Cfg.Metrics.Path, deps.Metrics.Handler())
	}

	requests := deps.Requests
	if requests == nil {
		requests = request.SeedSummaries()
	}
	handlers := web.Handlers{
		Requests: requests,
		HTMXURL:  deps.Cfg.HTMXURL,
	}

	r.Group(func(r chi.Router) {
		r.Use(api.Sessions(deps.Sessions))

		r.Get("/", handlers.Index)

		// Navigation
		r.Post("/requests/{category}/new", handlers.CreateRequest)
		r.Post("/requests/view", handlers.ViewRequests)
		r.Post("/back", handlers.Back)

		// Open form
		r.Route("/forms/{category}", func(r chi.Router) {
			r.Post("/fields", handlers.ApplyFields)
			r.Post("/fields/{field}", handlers.UpdateField)
			r.Post("/save", handlers.Save)
			r.Post("/submit", handlers.Submit)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	})

	return r
}
