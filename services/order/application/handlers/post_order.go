package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/carbuilder/pkg/errhttp"
	"github.com/ghuser/carbuilder/pkg/httpx"
	pkgvalidator "github.com/ghuser/carbuilder/pkg/validator"
	appsvcs "github.com/ghuser/carbuilder/services/order/application/services"
	"github.com/ghuser/carbuilder/services/order/domain/models"
)

// CreateOrderRequest is the request body for POST /orders. It carries only the
// four catalog ids; id, timestamp and completion are always set by the server.
type CreateOrderRequest struct {
	WheelID      int `json:"wheelId"      validate:"required,gte=1" example:"1"`
	TechnologyID int `json:"technologyId" validate:"required,gte=1" example:"2"`
	PaintID      int `json:"paintId"      validate:"required,gte=1" example:"3"`
	InteriorID   int `json:"interiorId"   validate:"required,gte=1" example:"4"`
} // @name CreateOrderRequest

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute places a new order.
//
//	@Summary		Create order
//	@Description	Places an order for one option from each catalog. Every id must exist in its catalog.
//	@Description	With Idempotency-Key set (and Redis configured) a retried request returns the original order.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request			body		CreateOrderRequest	true	"Selected catalog ids"
//	@Param			Idempotency-Key	header		string				false	"Client key for safe retries"
//	@Success		201				{object}	OrderResponse
//	@Header			201				{string}	Location			"/orders/{id}"
//	@Header			201				{string}	Idempotent-Replayed	"true when the order was created by an earlier request"
//	@Failure		400				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Order.Create(r.Context(), models.Selection{
		PaintID:      req.PaintID,
		InteriorID:   req.InteriorID,
		TechnologyID: req.TechnologyID,
		WheelID:      req.WheelID,
	}, r.Header.Get(httpx.HeaderIdempotencyKey))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/orders/%d", res.Order.ID))
	if res.Replayed {
		w.Header().Set(httpx.HeaderIdempotentReplayed, "true")
	}
	httpx.JSON(w, http.StatusCreated, NewOrderResponse(res.Order))
}
