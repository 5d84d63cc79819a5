package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mfava/shoproll/internal/auth"
	appointmentHandler "github.com/mfava/shoproll/internal/http/appointment"
	authHandler "github.com/mfava/shoproll/internal/http/auth"
	customerHandler "github.com/mfava/shoproll/internal/http/customer"
	importHandler "github.com/mfava/shoproll/internal/http/importcsv"
	invoiceHandler "github.com/mfava/shoproll/internal/http/invoice"
	quotationHandler "github.com/mfava/shoproll/internal/http/quotation"
	tireHandler "github.com/mfava/shoproll/internal/http/tire"
	userHandler "github.com/mfava/shoproll/internal/http/user"
	vehicleHandler "github.com/mfava/shoproll/internal/http/vehicle"
	"github.com/mfava/shoproll/internal/user"
)

type Handlers struct {
	Auth         *authHandler.Handler
	Invoices     *invoiceHandler.Handler
	Quotations   *quotationHandler.Handler
	Customers    *customerHandler.Handler
	Vehicles     *vehicleHandler.Handler
	Tires        *tireHandler.Handler
	Appointments *appointmentHandler.Handler
	Import       *importHandler.Handler
	Users        *userHandler.Handler
}

func New(tokens *auth.Manager, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware)

			r.Route("/invoices", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Invoices.Routes(r)
			})

			r.Route("/quotations", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Quotations.Routes(r)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Customers.Routes(r)
			})

			r.Route("/vehicles", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Vehicles.Routes(r)
			})

			r.Route("/tires", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Tires.Routes(r)
			})

			r.Route("/appointments", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Appointments.Routes(r)
			})

			r.Route("/import", h.Import.Routes)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				r.Use(auth.RequireRole(user.RoleAdmin))
				h.Users.Routes(r)
			})
		})
	})

	return router
}
