package middleware

import (
	"context"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type contextKey string

// RequestIDKey is where the middleware stores the generated id in the
// request context.
const RequestIDKey contextKey = "requestID"

// RequestID tags every request with a short correlation id, exposes it as
// X-Request-ID and logs the request line with it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			generated, err := gonanoid.New()
			if err != nil {
				// Extremely unlikely; the request proceeds untagged.
				log.Printf("RequestID: failed to generate id: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			id = generated
		}

		w.Header().Set("X-Request-ID", id)
		log.Printf("%s %s (request %s)", r.Method, r.URL.Path, id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
