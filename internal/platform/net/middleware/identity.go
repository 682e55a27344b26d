package middleware

import (
	"net/http"
	"strconv"

	pnet "activityreplies/internal/platform/net"
)

// Identity resolves the logged-in user from the X-User-ID header.
// The host platform fronts this service and vouches for the header;
// a missing or malformed header simply means an anonymous request.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				r = r.WithContext(pnet.WithUser(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}
