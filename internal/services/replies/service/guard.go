package service

import (
	"context"

	activitydom "activityreplies/internal/services/activity/domain"
	dom "activityreplies/internal/services/replies/domain"
)

// guardActive reports whether the current request is rendering a
// member's replies screen and carries a request state. Every rewriter
// entry point checks this first and passes its input through unchanged
// when it is false. Pure read, no side effects.
func guardActive(ctx context.Context) (activitydom.View, *dom.State, bool) {
	view, ok := activitydom.ViewFrom(ctx)
	if !ok {
		return activitydom.View{}, nil, false
	}
	if view.Component != "activity" || view.Action != dom.ActionSlug {
		return activitydom.View{}, nil, false
	}
	st := dom.StateFrom(ctx)
	if st == nil {
		return activitydom.View{}, nil, false
	}
	return view, st, true
}
