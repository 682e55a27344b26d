// Package http provides http transport for the replies screen
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"activityreplies/internal/modkit/httpkit"
	perr "activityreplies/internal/platform/errors"
	pnet "activityreplies/internal/platform/net"
	activitydom "activityreplies/internal/services/activity/domain"
	dom "activityreplies/internal/services/replies/domain"
	svc "activityreplies/internal/services/replies/service"
)

// Register mounts the replies screen endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/users/{userID}/activity/replies", h.screen)
	httpkit.GetJSON(r, "/users/{userID}/activity/replies/filters", h.filters)
}

type handlers struct{ svc *svc.Service }

func (h *handlers) screen(r *stdhttp.Request) (any, error) {
	view, err := viewFor(r)
	if err != nil {
		return nil, err
	}

	q := r.URL.Query()
	args := svc.ScreenArgs{View: view}
	if v := q.Get("type"); v != "" {
		args.Filter.Actions = strings.Split(v, ",")
	}
	if v := q.Get("page"); v != "" {
		if args.Page, err = strconv.Atoi(v); err != nil {
			return nil, perr.InvalidArgf("bad page %q", v)
		}
	}
	if v := q.Get("per_page"); v != "" {
		if args.PerPage, err = strconv.Atoi(v); err != nil {
			return nil, perr.InvalidArgf("bad per_page %q", v)
		}
	}

	return h.svc.RepliesScreen(r.Context(), args)
}

func (h *handlers) filters(r *stdhttp.Request) (any, error) {
	view, err := viewFor(r)
	if err != nil {
		return nil, err
	}
	return h.svc.FilterOptions(r.Context(), view), nil
}

func viewFor(r *stdhttp.Request) (activitydom.View, error) {
	raw := httpkit.Param(r, "userID")
	displayed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || displayed <= 0 {
		return activitydom.View{}, perr.InvalidArgf("bad user id %q", raw)
	}
	return activitydom.View{
		DisplayedUserID: displayed,
		LoggedInUserID:  pnet.UserID(r.Context()),
		Component:       "activity",
		Action:          dom.ActionSlug,
	}, nil
}
