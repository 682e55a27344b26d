package service

import (
	"context"

	activitydom "activityreplies/internal/services/activity/domain"
	dom "activityreplies/internal/services/replies/domain"
)

// ScreenArgs describe one replies screen request
type ScreenArgs struct {
	View    activitydom.View
	Filter  activitydom.Filter
	Page    int
	PerPage int
}

// RepliesScreen renders a member's replies view end to end: it seeds
// the request state, folds pending notifications in, runs the listing
// through the (rewritten) pipeline, and decorates the rows
func (s *Service) RepliesScreen(ctx context.Context, args ScreenArgs) (dom.ScreenResult, error) {
	ctx = activitydom.WithView(ctx, args.View)
	ctx = dom.WithState(ctx, dom.NewState())
	st := dom.StateFrom(ctx)

	summaries := s.ScreenDisplay(ctx)

	list, err := s.Lister.List(ctx, activitydom.QueryArgs{
		Filter:     args.Filter,
		Page:       args.Page,
		PerPage:    args.PerPage,
		CountTotal: true,
	})
	if err != nil {
		return dom.ScreenResult{}, err
	}

	items := make([]dom.DecoratedActivity, 0, len(list.Items))
	for _, a := range list.Items {
		ev := s.Hooks.ActivityClass.Apply(ctx, activitydom.ClassEvent{ActivityID: a.ID})
		items = append(items, dom.DecoratedActivity{Activity: a, Class: ev.Class})
	}

	res := dom.ScreenResult{
		Items:     items,
		Total:     list.Total,
		Summaries: summaries,
	}
	if s.Cfg.Highlight && st.Highlight {
		res.StyleBlock = StyleBlock
	}
	return res, nil
}

// FilterOptions returns the type-selector entries for the replies
// screen after the dropdown filter chain has run
func (s *Service) FilterOptions(ctx context.Context, view activitydom.View) []activitydom.FilterOption {
	ctx = activitydom.WithView(ctx, view)
	ctx = dom.WithState(ctx, dom.NewState())

	base := []activitydom.FilterOption{
		{Value: activitydom.TypeUpdate, Label: "Updates"},
		{Value: activitydom.TypeComment, Label: "Comments"},
	}
	return s.Hooks.FilterOptions.Apply(ctx, base)
}
