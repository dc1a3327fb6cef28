package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// OwnerContextKey is the context key for the resolved owner id.
	OwnerContextKey ContextKey = "owner"

	// OwnerHeader carries the owner id on every API request.
	OwnerHeader = "X-Owner-ID"
)

// Owner resolves the owner id from the request header and stores it in the
// request context. Requests without one are rejected before reaching a
// handler.
func Owner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := strings.TrimSpace(r.Header.Get(OwnerHeader))
		if ownerID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"missing owner id header"}`))
			return
		}

		ctx := context.WithValue(r.Context(), OwnerContextKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerFromContext returns the owner id resolved by Owner.
func OwnerFromContext(ctx context.Context) string {
	ownerID, _ := ctx.Value(OwnerContextKey).(string)
	return ownerID
}
