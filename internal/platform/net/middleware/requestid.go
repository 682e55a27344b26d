// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"

	pnet "activityreplies/internal/platform/net"

	"github.com/google/uuid"
)

// RequestID assigns a uuid to every request unless the caller already sent one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(pnet.WithRequestID(r.Context(), reqID)))
	})
}
