// Package http provides http transport for the activity stream
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"activityreplies/internal/modkit/httpkit"
	perr "activityreplies/internal/platform/errors"
	pnet "activityreplies/internal/platform/net"
	"activityreplies/internal/services/activity/domain"
	svc "activityreplies/internal/services/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/activity", h.list)
	httpkit.PostJSON[postUpdateInput](r, "/activity", h.postUpdate)
	httpkit.GetJSON(r, "/activity/{id}", h.get)
	httpkit.PostJSON[postCommentInput](r, "/activity/{id}/comments", h.postComment)
	httpkit.DeleteJSON(r, "/activity/{id}", h.delete)
}

type handlers struct{ svc *svc.Service }

type postUpdateInput struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

type postCommentInput struct {
	Content  string `json:"content" validate:"required,min=1,max=10000"`
	ParentID int64  `json:"parent_id" validate:"omitempty,gte=0"`
}

func (h *handlers) postUpdate(r *stdhttp.Request, in postUpdateInput) (any, error) {
	return h.svc.PostUpdate(r.Context(), pnet.UserID(r.Context()), in.Content)
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	var replyID int64
	if v := r.URL.Query().Get("reply"); v != "" {
		replyID, _ = strconv.ParseInt(v, 10, 64)
	}
	h.svc.Hooks.PermalinkViewed.Emit(r.Context(), domain.PermalinkEvent{Activity: a, ReplyID: replyID})
	return a, nil
}

func (h *handlers) postComment(r *stdhttp.Request, in postCommentInput) (any, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PostComment(r.Context(), domain.CommentArgs{
		ActivityID: id,
		ParentID:   in.ParentID,
		UserID:     pnet.UserID(r.Context()),
		Content:    in.Content,
	})
}

func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if uid := pnet.UserID(r.Context()); uid == 0 || uid != a.UserID {
		return nil, perr.Forbiddenf("not your activity")
	}
	deleted, err := h.svc.Delete(r.Context(), []int64{id})
	if err != nil {
		return nil, err
	}
	return map[string]any{"deleted": deleted}, nil
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	args, err := queryArgs(r)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.List(r.Context(), args)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func pathID(r *stdhttp.Request) (int64, error) {
	raw := httpkit.Param(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perr.InvalidArgf("bad activity id %q", raw)
	}
	return id, nil
}

func queryArgs(r *stdhttp.Request) (domain.QueryArgs, error) {
	q := r.URL.Query()
	var args domain.QueryArgs

	if v := q.Get("user_id"); v != "" {
		uid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return args, perr.InvalidArgf("bad user_id %q", v)
		}
		args.UserID = uid
	}
	if v := q.Get("type"); v != "" {
		args.Filter.Actions = strings.Split(v, ",")
	}
	args.SearchTerms = q.Get("search")
	args.DisplayComments = q.Get("comments") == "true"
	args.CountTotal = q.Get("count") != "false"

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return args, perr.InvalidArgf("bad page %q", v)
		}
		args.Page = n
	}
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return args, perr.InvalidArgf("bad per_page %q", v)
		}
		args.PerPage = n
	}
	return args, nil
}
