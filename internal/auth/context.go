package auth

import (
	"context"
	"net/http"
)

// Session handling is an external collaborator: an upstream gateway
// authenticates the user and forwards the identity in a header. This package
// only lifts that identity into the request context.

type ctxKey struct{}

const userHeader = "X-User-ID"

// Middleware stores the authenticated user id, when present, in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(userHeader); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user id, or "" when the request was
// anonymous.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKey{}).(string); ok {
		return val
	}
	return ""
}
