package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/carbuilder/pkg/errhttp"
	"github.com/ghuser/carbuilder/pkg/httpx"
	appsvcs "github.com/ghuser/carbuilder/services/order/application/services"
)

// GetOrdersHandler handles GET /orders requests.
type GetOrdersHandler struct {
	svc *appsvcs.Services
}

// NewGetOrdersHandler returns a GetOrdersHandler backed by the given services.
func NewGetOrdersHandler(svc *appsvcs.Services) *GetOrdersHandler {
	return &GetOrdersHandler{svc: svc}
}

// Execute lists incomplete orders.
//
//	@Summary		List orders
//	@Description	Lists every incomplete order with its catalog options resolved, optionally filtered by paint id.
//	@Description	Orders whose references no longer resolve are skipped and named in X-Unresolved-Order-Ids.
//	@Tags			orders
//	@Produce		json
//	@Param			paintId	query		int	false	"Only orders with this paint id"
//	@Success		200		{array}		OrderResponse
//	@Header			200		{string}	X-Unresolved-Order-Ids	"Comma-separated ids of skipped orders"
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [get]
func (h *GetOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var paintID *int
	if raw := r.URL.Query().Get("paintId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "paintId must be an integer")
			return
		}
		paintID = &id
	}

	res, err := h.svc.Order.List(r.Context(), paintID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if len(res.Unresolved) > 0 {
		ids := make([]string, len(res.Unresolved))
		for i, id := range res.Unresolved {
			ids[i] = strconv.Itoa(id)
		}
		w.Header().Set(httpx.HeaderUnresolvedOrders, strings.Join(ids, ","))
	}

	out := make([]OrderResponse, 0, len(res.Orders))
	for _, d := range res.Orders {
		out = append(out, NewOrderResponse(d))
	}
	httpx.JSON(w, http.StatusOK, out)
}
