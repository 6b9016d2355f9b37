package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/lucasvieira94/nola-god-level/docs"
	"github.com/lucasvieira94/nola-god-level/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/revenue/", handlers.RevenueHandler)
		r.Get("/top-products/", handlers.TopProductsHandler)
		r.Get("/peak-hours/", handlers.PeakHoursHandler)
		r.Get("/compare/", handlers.CompareHandler)
		r.Get("/dashboard-metrics", handlers.GetDashboardMetricsHandler)

		r.With(SummaryThrottle).Post("/summary", handlers.SummaryHandler)

		r.Route("/dashboards", func(r chi.Router) {
			r.Get("/", handlers.ListDashboardsHandler)
			r.Post("/", handlers.CreateDashboardHandler)
			r.Get("/{id}", handlers.GetDashboardHandler)
			r.Put("/{id}", handlers.UpdateDashboardHandler)
			r.Delete("/{id}", handlers.DeleteDashboardHandler)
		})
	})

	return r
}
