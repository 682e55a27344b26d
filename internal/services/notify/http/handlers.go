// Package http provides http transport for notifications
package http

import (
	stdhttp "net/http"

	"activityreplies/internal/modkit/httpkit"
	perr "activityreplies/internal/platform/errors"
	pnet "activityreplies/internal/platform/net"
	svc "activityreplies/internal/services/notify/service"
)

// Register mounts notification endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/notifications", h.unread)
}

type handlers struct{ svc *svc.Service }

func (h *handlers) unread(r *stdhttp.Request) (any, error) {
	uid := pnet.UserID(r.Context())
	if uid == 0 {
		return nil, perr.Unauthorizedf("login required")
	}
	return h.svc.FormattedForUser(r.Context(), uid)
}
