package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/elevatescholar/scholarship-api/internal/metrics"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/handlers"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/middleware"
)

type Deps struct {
	Health       *handlers.HealthHandler
	Scholarships *handlers.ScholarshipsHandler
	Users        *handlers.UsersHandler
	Reviews      *handlers.ReviewsHandler
	Applications *handlers.ApplicationsHandler
	Payments     *handlers.PaymentsHandler

	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler

	AllowedOrigins []string
}

func New(deps Deps) (http.Handler, error) {
	switch {
	case deps.Health == nil:
		return nil, fmt.Errorf("nil Health handler")
	case deps.Scholarships == nil:
		return nil, fmt.Errorf("nil Scholarships handler")
	case deps.Users == nil:
		return nil, fmt.Errorf("nil Users handler")
	case deps.Reviews == nil:
		return nil, fmt.Errorf("nil Reviews handler")
	case deps.Applications == nil:
		return nil, fmt.Errorf("nil Applications handler")
	case deps.Payments == nil:
		return nil, fmt.Errorf("nil Payments handler")
	case deps.AuthMW == nil:
		return nil, fmt.Errorf("nil Auth middleware")
	case deps.AdminMW == nil:
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderXRequestID},
		ExposedHeaders:   []string{middleware.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", deps.Health.Info)
	r.Get("/health", deps.Health.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/scholarships", func(r chi.Router) {
		r.Get("/", deps.Scholarships.List)
		r.Get("/{id}", deps.Scholarships.Get)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.AdminMW)
			r.Post("/", deps.Scholarships.Create)
			r.Patch("/{id}", deps.Scholarships.Update)
			r.Delete("/{id}", deps.Scholarships.Delete)
		})
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", deps.Reviews.List)
		r.With(deps.AuthMW).Post("/", deps.Reviews.Create)
		r.With(deps.AuthMW).Delete("/{id}", deps.Reviews.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", deps.Users.Register)
		r.Get("/{email}/role", deps.Users.Role)

		// static segment wins over {email}
		r.With(deps.AuthMW).Get("/profile", deps.Users.Profile)
		r.With(deps.AuthMW).Patch("/profile", deps.Users.UpdateProfile)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.AdminMW)
			r.Get("/", deps.Users.List)
			r.Patch("/{email}/role", deps.Users.SetRole)
		})
	})

	r.Route("/applications", func(r chi.Router) {
		r.Use(deps.AuthMW)
		r.Get("/", deps.Applications.List)
		r.Post("/", deps.Applications.Create)
		r.Delete("/{id}", deps.Applications.Delete)
	})

	r.With(deps.AuthMW).Post("/checkout-session", deps.Payments.CreateCheckoutSession)
	r.Patch("/payment-success", deps.Payments.ConfirmPayment)

	return r, nil
}
