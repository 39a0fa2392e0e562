package app

import (
	"net/http"
	"time"

	"igf/internal/config"
	"igf/internal/handlers"
	"igf/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter returns a router with all middlewares and routes registered.
func NewRouter(conf *config.Config, ctrl *handlers.Controller) *chi.Mux {
	r := chi.NewRouter()
	InitMiddleware(r, conf, ctrl)
	Routing(r, ctrl)
	return r
}

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(ctrl.RequestIDMiddleware)
	r.Use(ctrl.LoggingMiddleware)
	r.Use(ctrl.MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{handlers.RequestIDHeader},
	}))
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Mount("/debug", middleware.Profiler())
}

// Routing - registers routes for the controller.
// Registered routes:
//   - GET "/": plain-text greeting through ctrl.Home().
//   - POST "/api/auth": mock login through ctrl.Authenticate().
//   - GET "/api/auth/session": token from the AuthToken cookie through ctrl.Session().
//   - GET "/api/users/random": random user through ctrl.RandomUser().
//   - GET "/api/pokemon": whole catalog through ctrl.ListPokemon().
//   - GET "/api/pokemon/random": random Pokemon through ctrl.RandomPokemon().
//   - GET "/api/pokemon/{id}": Pokemon by id through ctrl.GetPokemon().
//   - POST "/api/webhook": webhook proxy through ctrl.Webhook().
//   - GET "/api/health": liveness through ctrl.Health().
//   - GET "/metrics": Prometheus metrics.
//
// Anything else is served from the public directory by ctrl.NotFound(),
// which also answers known API paths called with the wrong method.
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ctrl.GzipEncodeMiddleware)
		r.Use(ctrl.GzipDecodeMiddleware)

		r.Get("/", ctrl.Home())
		r.Route("/api", func(r chi.Router) {
			r.Post("/auth", ctrl.Authenticate())
			r.Get("/auth/session", ctrl.Session())
			r.Get("/users/random", ctrl.RandomUser())
			r.Get("/pokemon", ctrl.ListPokemon())
			r.Get("/pokemon/random", ctrl.RandomPokemon())
			r.Get("/pokemon/{id}", ctrl.GetPokemon())
			r.Post("/webhook", ctrl.Webhook())
			r.Get("/health", ctrl.Health())
		})
	})

	r.NotFound(ctrl.NotFound())
	r.MethodNotAllowed(ctrl.NotFound())
}
