package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/services/order/application/handlers"
	appsvcs "github.com/ghuser/carbuilder/services/order/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.NewGetOrdersHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Post("/{id}/fulfill", handlers.NewPostFulfillOrderHandler(svcs).Execute)
		})
	})
}
