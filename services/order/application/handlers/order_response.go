package handlers

import (
	"time"

	cataloghandlers "github.com/ghuser/carbuilder/services/catalog/application/handlers"
	"github.com/ghuser/carbuilder/services/order/domain/models"
)

// OrderResponse is an order on the wire. Denormalized orders carry the nested
// catalog options and total; bare orders leave them out.
type OrderResponse struct {
	ID           int                                 `json:"id"           example:"1"`
	Timestamp    time.Time                           `json:"timestamp"    example:"2024-01-15T10:30:00Z"`
	WheelID      int                                 `json:"wheelId"      example:"1"`
	Wheels       *cataloghandlers.WheelsResponse     `json:"wheels,omitempty"`
	TechnologyID int                                 `json:"technologyId" example:"2"`
	Technology   *cataloghandlers.TechnologyResponse `json:"technology,omitempty"`
	PaintID      int                                 `json:"paintId"      example:"3"`
	PaintColor   *cataloghandlers.PaintColorResponse `json:"paintColor,omitempty"`
	InteriorID   int                                 `json:"interiorId"   example:"4"`
	Interior     *cataloghandlers.InteriorResponse   `json:"interior,omitempty"`
	Complete     bool                                `json:"complete"     example:"false"`
	Total        *float64                            `json:"total,omitempty" example:"2550"`
} // @name Order

// ErrorResponse is returned on error responses. Fields is set for
// field-level validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"            example:"Invalid order references"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

// NewBareOrderResponse maps an order without resolving its references.
func NewBareOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Timestamp:    o.CreatedAt,
		WheelID:      o.WheelID,
		TechnologyID: o.TechnologyID,
		PaintID:      o.PaintID,
		InteriorID:   o.InteriorID,
		Complete:     o.Complete,
	}
}

// NewOrderResponse maps a denormalized order.
func NewOrderResponse(d models.OrderDetails) OrderResponse {
	resp := NewBareOrderResponse(d.Order)
	wheels := cataloghandlers.NewWheelsResponse(d.Wheels)
	tech := cataloghandlers.NewTechnologyResponse(d.Technology)
	paint := cataloghandlers.NewPaintColorResponse(d.PaintColor)
	interior := cataloghandlers.NewInteriorResponse(d.Interior)
	total := d.Total().InexactFloat64()

	resp.Wheels = &wheels
	resp.Technology = &tech
	resp.PaintColor = &paint
	resp.Interior = &interior
	resp.Total = &total
	return resp
}
