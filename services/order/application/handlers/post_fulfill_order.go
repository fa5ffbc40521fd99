package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/carbuilder/pkg/errhttp"
	"github.com/ghuser/carbuilder/pkg/httpx"
	appsvcs "github.com/ghuser/carbuilder/services/order/application/services"
	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
)

// PostFulfillOrderHandler handles POST /orders/{id}/fulfill requests.
type PostFulfillOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostFulfillOrderHandler returns a PostFulfillOrderHandler backed by the given services.
func NewPostFulfillOrderHandler(svc *appsvcs.Services) *PostFulfillOrderHandler {
	return &PostFulfillOrderHandler{svc: svc}
}

// Execute marks an order complete and returns it without resolving its options.
// Unknown ids get a 404 with no body.
//
//	@Summary		Fulfill order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	OrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	"Order not found"
//	@Router			/orders/{id}/fulfill [post]
func (h *PostFulfillOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	o, err := h.svc.Order.Fulfill(r.Context(), id)
	if errors.Is(err, orderdomain.ErrOrderNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, NewBareOrderResponse(o))
}
