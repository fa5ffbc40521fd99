package handlers

import (
	"net/http"

	"github.com/ghuser/carbuilder/pkg/errhttp"
	"github.com/ghuser/carbuilder/pkg/httpx"
	appsvcs "github.com/ghuser/carbuilder/services/catalog/application/services"
	"github.com/ghuser/carbuilder/services/catalog/domain/models"
)

// PaintColorResponse is one paint option on the wire.
type PaintColorResponse struct {
	ID    int     `json:"id"    example:"3"`
	Color string  `json:"color" example:"Firebrick Red"`
	Price float64 `json:"price" example:"700"`
} // @name PaintColor

// InteriorResponse is one interior option on the wire.
type InteriorResponse struct {
	ID       int     `json:"id"       example:"4"`
	Material string  `json:"material" example:"Black Leather"`
	Price    float64 `json:"price"    example:"850"`
} // @name Interior

// TechnologyResponse is one technology package on the wire.
type TechnologyResponse struct {
	ID      int     `json:"id"      example:"2"`
	Package string  `json:"package" example:"Navigation Package"`
	Price   float64 `json:"price"   example:"600"`
} // @name Technology

// WheelsResponse is one wheel option on the wire.
type WheelsResponse struct {
	ID    int     `json:"id"    example:"1"`
	Style string  `json:"style" example:"17-inch Pair Radial"`
	Price float64 `json:"price" example:"400"`
} // @name Wheels

// NewPaintColorResponse maps a domain paint option to its wire shape.
func NewPaintColorResponse(p models.PaintColor) PaintColorResponse {
	return PaintColorResponse{ID: p.ID, Color: p.Color, Price: p.Price.InexactFloat64()}
}

// NewInteriorResponse maps a domain interior option to its wire shape.
func NewInteriorResponse(i models.Interior) InteriorResponse {
	return InteriorResponse{ID: i.ID, Material: i.Material, Price: i.Price.InexactFloat64()}
}

// NewTechnologyResponse maps a domain technology package to its wire shape.
func NewTechnologyResponse(t models.Technology) TechnologyResponse {
	return TechnologyResponse{ID: t.ID, Package: t.Package, Price: t.Price.InexactFloat64()}
}

// NewWheelsResponse maps a domain wheel option to its wire shape.
func NewWheelsResponse(w models.Wheels) WheelsResponse {
	return WheelsResponse{ID: w.ID, Style: w.Style, Price: w.Price.InexactFloat64()}
}

// GetCatalogHandler handles the four GET catalog endpoints.
type GetCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetCatalogHandler returns a GetCatalogHandler backed by the given services.
func NewGetCatalogHandler(svc *appsvcs.Services) *GetCatalogHandler {
	return &GetCatalogHandler{svc: svc}
}

// PaintColors lists every paint option.
//
//	@Summary		List paint colors
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	PaintColorResponse
//	@Router			/paintcolors [get]
func (h *GetCatalogHandler) PaintColors(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.PaintColors(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mapAll(items, NewPaintColorResponse))
}

// Interiors lists every interior option.
//
//	@Summary		List interiors
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	InteriorResponse
//	@Router			/interiors [get]
func (h *GetCatalogHandler) Interiors(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.Interiors(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mapAll(items, NewInteriorResponse))
}

// Technologies lists every technology package.
//
//	@Summary		List technology packages
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	TechnologyResponse
//	@Router			/technologies [get]
func (h *GetCatalogHandler) Technologies(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.Technologies(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mapAll(items, NewTechnologyResponse))
}

// Wheels lists every wheel option.
//
//	@Summary		List wheels
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	WheelsResponse
//	@Router			/wheels [get]
func (h *GetCatalogHandler) Wheels(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.Wheels(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mapAll(items, NewWheelsResponse))
}

// mapAll never returns nil so empty catalogs encode as [] rather than null.
func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
