// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/carbuilder/pkg/httpx"
	catalogdomain "github.com/ghuser/carbuilder/services/catalog/domain"
	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unresolvable order references are reported per field. Unrecognized errors
// become a 500 whose body never carries the internal message.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusUnprocessableEntity {
		httpx.JSONFieldErrors(w, status, "Invalid order references", orderdomain.ReferenceFields(err))
		return
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrCatalogItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, orderdomain.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, orderdomain.ErrIdempotencyKeyInFlight):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
