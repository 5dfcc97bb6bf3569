package routers

import (
	"reservation-center/internal/app/delivery/http/controllers"
	"reservation-center/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.Authenticate).Get("/", dashboardController.GetDashboard)
	router.With(middlewares.Authenticate).Put("/tab", dashboardController.SelectTab)
	router.With(middlewares.Authenticate).Post("/reservations/{reservation_id}/cancel", dashboardController.CancelReservation)
	router.With(middlewares.Authenticate).Post("/tags", dashboardController.AddTag)
	router.With(middlewares.Authenticate).Post("/refresh", dashboardController.RefreshDashboard)
	router.With(middlewares.Authenticate).Delete("/session", dashboardController.Logout)
}
