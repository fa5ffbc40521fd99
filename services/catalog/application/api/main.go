package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/carbuilder/services/catalog/application/services"
)

// CatalogRoutes registers the catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	h := handlers.NewGetCatalogHandler(appsvcs.New(a))
	r.Group(func(r chi.Router) {
		r.Get("/paintcolors", h.PaintColors)
		r.Get("/interiors", h.Interiors)
		r.Get("/technologies", h.Technologies)
		r.Get("/wheels", h.Wheels)
	})
}
