package httpx

import (
	"encoding/json"
	"net/http"
)

// Response headers shared between handlers and the CORS policy.
const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
	HeaderUnresolvedOrders   = "X-Unresolved-Order-Ids"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// JSONFieldErrors writes {"error": message, "fields": {...}} for field-level
// validation failures.
func JSONFieldErrors(w http.ResponseWriter, status int, message string, fields map[string]string) {
	JSON(w, status, map[string]any{"error": message, "fields": fields})
}

// SafeError returns the error message for client responses. Internal server
// errors (5xx) are replaced with the generic status text so implementation
// details never reach the client.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
