package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/poojan019/user-management/internal/infrastructure/http/handlers"
	"github.com/poojan019/user-management/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	Users      *handlers.UsersHandler
	Invitation *handlers.InvitationHandler
	Docs       *handlers.DocsHandler
	Health     *handlers.HealthHandler
	Log        zerolog.Logger
	Secure     func(http.Handler) http.Handler
	Metrics    bool // expose /metrics and record request durations
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(chimid.AllowContentType("application/json"))

	r.Get("/", cfg.Docs.Root)
	r.Get("/docs", cfg.Docs.Swagger)
	r.Get("/redoc", cfg.Docs.ReDoc)
	if cfg.Health != nil {
		r.Get("/health", cfg.Health.ServeHTTP)
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Post("/add_users", cfg.Users.Create)
	r.Get("/get_users", cfg.Users.List)
	r.Patch("/update_users/{doc_id}", cfg.Users.Update)
	r.Delete("/delete_users/{doc_id}", cfg.Users.Delete)
	r.Post("/send_invitation", cfg.Invitation.Send)

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
