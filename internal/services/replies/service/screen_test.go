package service

import (
	"context"
	"strings"
	"testing"

	activitydom "activityreplies/internal/services/activity/domain"
	activitysvc "activityreplies/internal/services/activity/service"
	dom "activityreplies/internal/services/replies/domain"
)

// fakeLister replays the listing and remembers the context it ran
// under, so the screen flow's state threading can be asserted
type fakeLister struct {
	items []activitydom.Activity
	ctx   context.Context
}

func (f *fakeLister) List(ctx context.Context, _ activitydom.QueryArgs) (activitydom.ListResult, error) {
	f.ctx = ctx
	return activitydom.ListResult{Items: f.items, Total: len(f.items)}, nil
}

func TestRepliesScreenDecoratesAndHighlights(t *testing.T) {
	acts := newFakeActivities()
	store := newFakeNotifyStore()
	lister := &fakeLister{}
	hooks := &activitysvc.Hooks{}

	svc := New(acts, lister, store, fakeNamer{}, hooks, Config{Highlight: true})
	svc.Register()

	acts.put(activitydom.Activity{ID: 100, UserID: 1, Type: activitydom.TypeUpdate})
	c1 := activitydom.Activity{ID: 101, UserID: 2, Type: activitydom.TypeComment, ItemID: 100, SecondaryItemID: 100}
	c2 := activitydom.Activity{ID: 102, UserID: 3, Type: activitydom.TypeComment, ItemID: 100, SecondaryItemID: 100}
	acts.put(c1)
	acts.put(c2)
	lister.items = []activitydom.Activity{c2, c1}

	// only c2 is pending
	svc.OnCommentPosted(context.Background(), activitydom.CommentEvent{
		CommentID: 102,
		Args:      activitydom.CommentArgs{ActivityID: 100, ParentID: 100, UserID: 3},
	})

	res, err := svc.RepliesScreen(context.Background(), ScreenArgs{
		View: activitydom.View{DisplayedUserID: 1, LoggedInUserID: 1, Component: "activity", Action: dom.ActionSlug},
	})
	if err != nil {
		t.Fatalf("RepliesScreen: %v", err)
	}

	if len(res.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(res.Items))
	}
	if res.Items[0].ID != 102 || res.Items[0].Class != dom.NewReplyClass {
		t.Fatalf("pending row not decorated: %+v", res.Items[0])
	}
	if res.Items[1].Class != "" {
		t.Fatalf("seen row decorated: %+v", res.Items[1])
	}
	if res.Total != 2 {
		t.Fatalf("total = %d", res.Total)
	}
	if len(res.Summaries) != 1 || res.Summaries[0].Count != 1 {
		t.Fatalf("summaries = %+v", res.Summaries)
	}
	if !strings.Contains(res.StyleBlock, dom.NewReplyClass) {
		t.Fatalf("style block = %q", res.StyleBlock)
	}

	// the listing ran with the view and state on its context
	if v, ok := activitydom.ViewFrom(lister.ctx); !ok || v.DisplayedUserID != 1 {
		t.Fatalf("listing context missing view")
	}
	if dom.StateFrom(lister.ctx) == nil {
		t.Fatalf("listing context missing request state")
	}
}

func TestRepliesScreenWithoutPendingHasNoStyleBlock(t *testing.T) {
	acts := newFakeActivities()
	lister := &fakeLister{}
	svc := New(acts, lister, newFakeNotifyStore(), fakeNamer{}, &activitysvc.Hooks{}, Config{Highlight: true})
	svc.Register()

	res, err := svc.RepliesScreen(context.Background(), ScreenArgs{
		View: activitydom.View{DisplayedUserID: 1, LoggedInUserID: 1, Component: "activity", Action: dom.ActionSlug},
	})
	if err != nil {
		t.Fatalf("RepliesScreen: %v", err)
	}
	if res.StyleBlock != "" {
		t.Fatalf("style block emitted with nothing pending: %q", res.StyleBlock)
	}
	if res.Summaries != nil {
		t.Fatalf("summaries = %+v", res.Summaries)
	}
}

func TestFilterOptionsOnScreenHideComments(t *testing.T) {
	acts := newFakeActivities()
	svc := New(acts, &fakeLister{}, nil, nil, &activitysvc.Hooks{}, Config{})
	svc.Register()

	got := svc.FilterOptions(context.Background(), activitydom.View{
		DisplayedUserID: 1, LoggedInUserID: 1, Component: "activity", Action: dom.ActionSlug,
	})
	for _, o := range got {
		if o.Value == activitydom.TypeComment {
			t.Fatalf("comment option still present: %+v", got)
		}
	}
	if len(got) == 0 {
		t.Fatalf("no options left")
	}
}
