package utils

import (
	"net/http"

	"github.com/artw-company/l14/middleware"
)

// RequestID returns the correlation id the middleware attached to the
// request, or "-" when the request was not tagged.
func RequestID(r *http.Request) string {
	id, ok := r.Context().Value(middleware.RequestIDKey).(string)
	if !ok {
		return "-"
	}
	return id
}
