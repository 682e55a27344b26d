package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "activityreplies/internal/platform/net/http"
	"activityreplies/internal/platform/net/middleware"
	activitydom "activityreplies/internal/services/activity/domain"
	activitysvc "activityreplies/internal/services/activity/service"
	dom "activityreplies/internal/services/replies/domain"
	svc "activityreplies/internal/services/replies/service"
)

type stubActivities struct{}

func (stubActivities) Get(_ context.Context, id int64) (activitydom.Activity, error) {
	return activitydom.Activity{ID: id}, nil
}

type stubLister struct {
	view  activitydom.View
	state bool
}

func (s *stubLister) List(ctx context.Context, _ activitydom.QueryArgs) (activitydom.ListResult, error) {
	s.view, _ = activitydom.ViewFrom(ctx)
	s.state = dom.StateFrom(ctx) != nil
	return activitydom.ListResult{}, nil
}

func newTestRouter(lister *stubLister) *chi.Mux {
	hooks := &activitysvc.Hooks{}
	s := svc.New(stubActivities{}, lister, nil, nil, hooks, svc.Config{})
	s.Register()

	mux := chi.NewMux()
	mux.Use(middleware.Identity)
	Register(phttp.AdaptChi(mux), s)
	return mux
}

func TestScreenRouteBuildsViewFromRequest(t *testing.T) {
	lister := &stubLister{}
	mux := newTestRouter(lister)

	req := httptest.NewRequest("GET", "/users/4/activity/replies?page=2&per_page=5", nil)
	req.Header.Set("X-User-ID", "4")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if lister.view.DisplayedUserID != 4 || lister.view.LoggedInUserID != 4 {
		t.Fatalf("view = %+v", lister.view)
	}
	if lister.view.Action != dom.ActionSlug {
		t.Fatalf("view action = %q", lister.view.Action)
	}
	if !lister.state {
		t.Fatalf("listing ran without request state")
	}
}

func TestScreenRouteRejectsBadUserID(t *testing.T) {
	mux := newTestRouter(&stubLister{})

	req := httptest.NewRequest("GET", "/users/zero/activity/replies", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 422 {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestFiltersRouteHidesComments(t *testing.T) {
	mux := newTestRouter(&stubLister{})

	req := httptest.NewRequest("GET", "/users/4/activity/replies/filters", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data []activitydom.FilterOption `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, o := range env.Data {
		if o.Value == activitydom.TypeComment {
			t.Fatalf("comment option leaked: %+v", env.Data)
		}
	}
	if len(env.Data) == 0 {
		t.Fatalf("no filter options returned")
	}
}
