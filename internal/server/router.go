package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	authctrl "orderdesk/internal/auth/controller"
	"orderdesk/internal/auth/session"
	orderctrl "orderdesk/internal/order/controller"
	reportctrl "orderdesk/internal/report/controller"
)

func NewRouter(
	authController *authctrl.AuthController,
	orderController *orderctrl.OrderController,
	reportController *reportctrl.ReportController,
	sessions *session.Manager,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/login", authController.LoginPage)
	r.Post("/login", authController.Login)
	r.Get("/logout", authController.Logout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(session.Require(sessions))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/orders", http.StatusSeeOther)
		})

		r.Get("/orders", orderController.List)
		r.Get("/orders/add", orderController.AddForm)
		r.Post("/orders/add", orderController.Create)
		r.Get("/orders/{orderID}/edit", orderController.EditForm)
		r.Post("/orders/{orderID}/edit", orderController.Update)
		r.Post("/orders/{orderID}/delete", orderController.Delete)
		r.Get("/orders/{orderID}/mark/{state}", orderController.Mark)
		r.Get("/orders/{orderID}/invoice", orderController.Invoice)

		r.Get("/reports", reportController.Report)
	})

	return r
}
