// Package api implements the JSON API using chi.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/smilesofhope/hopecms/internal/admin"
)

type ctxKey int

const operatorKey ctxKey = iota

// AuthMiddleware validates the "Authorization: Bearer <token>" session token
// issued by the login endpoint and stores the operator name in the request
// context.
func AuthMiddleware(auth *admin.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			operator, err := auth.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), operatorKey, operator)))
		})
	}
}

// Operator returns the authenticated operator name from the request context.
func Operator(ctx context.Context) string {
	if v, ok := ctx.Value(operatorKey).(string); ok {
		return v
	}
	return ""
}
