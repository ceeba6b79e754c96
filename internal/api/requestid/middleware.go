// Package requestid assigns every request an id for log correlation.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request id on both requests and responses.
const Header = "X-Request-Id"

type ctxKey struct{}

// Middleware reuses an incoming X-Request-Id or mints a fresh one, echoes it
// on the response, and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request id, or "" outside the middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
