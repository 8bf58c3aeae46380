package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Sloan357/task-management-api/internal/infrastructure/http/handlers"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	TasksHandler    *handlers.TasksHandler
	ProjectsHandler *handlers.ProjectsHandler
	UsersHandler    *handlers.UsersHandler
	HealthHandler   *handlers.HealthHandler
	RequireAuth     func(http.Handler) http.Handler // bearer auth for /api/tasks etc.
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
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
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.Signup)
			r.Post("/login", cfg.AuthHandler.Login)
		})

		// Everything below requires a logged-in user.
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireAuth)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", cfg.TasksHandler.Create)
				r.Get("/", cfg.TasksHandler.List)
				r.Get("/{id}", cfg.TasksHandler.Get)
				r.Put("/{id}", cfg.TasksHandler.Update)
				r.Delete("/{id}", cfg.TasksHandler.Delete)
				r.Patch("/{id}/complete", cfg.TasksHandler.Complete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", cfg.ProjectsHandler.Create)
				r.Get("/", cfg.ProjectsHandler.List)
				r.Get("/{id}", cfg.ProjectsHandler.Get)
				r.Get("/{id}/tasks", cfg.ProjectsHandler.Tasks)
				r.Put("/{id}", cfg.ProjectsHandler.Update)
				r.Delete("/{id}", cfg.ProjectsHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", cfg.UsersHandler.Me)
				r.Delete("/me", cfg.UsersHandler.DeleteMe)
			})
		})
	})

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
