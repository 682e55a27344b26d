package service

import (
	"context"
	"fmt"
	"strings"

	activitydom "activityreplies/internal/services/activity/domain"
	dom "activityreplies/internal/services/replies/domain"
)

// Condition names dropped from the captured WHERE mapping: both target
// the primary alias and would misfilter the rewritten join.
const (
	droppedFilterCond   = "filter_sql"
	droppedExcludedCond = "excluded_types"
)

// AdjustArgs overlays the replies-screen defaults onto the listing
// args: no built-in comment expansion, hidden items only on one's own
// profile, and no author scoping (the rewrite does its own)
func (s *Service) AdjustArgs(ctx context.Context, args activitydom.QueryArgs) activitydom.QueryArgs {
	view, _, ok := guardActive(ctx)
	if !ok {
		return args
	}
	args.DisplayComments = false
	args.ShowHidden = view.IsOwnProfile()
	args.UserID = 0
	return args
}

// CaptureWhere taps the generic WHERE mapping for the SELECT rewrite.
// It keeps the live mapping so the rendered clause the pipeline embeds
// is the exact string the rewrite later splits on.
func (s *Service) CaptureWhere(ctx context.Context, conds *activitydom.Conditions) *activitydom.Conditions {
	_, st, ok := guardActive(ctx)
	if !ok {
		return conds
	}
	st.Where = conds
	return conds
}

// RewriteSelect turns the assembled "list activities" statement into
// "list comments on the displayed member's activities". The upstream
// string is opaque, so the head and ordering are recovered by splitting
// on the captured WHERE clause and classifying each part by its first
// keyword. An unclassifiable string passes through untouched: a
// malformed rewrite would be worse than no rewrite.
func (s *Service) RewriteSelect(ctx context.Context, sel activitydom.SelectSQL) activitydom.SelectSQL {
	view, st, ok := guardActive(ctx)
	if !ok || st.Where == nil {
		return sel
	}

	whereSQL := st.Where.SQL()
	if whereSQL == "" || !strings.Contains(sel.SQL, whereSQL) {
		return sel
	}

	var orderPart string
	classified := false
	for _, part := range strings.Split(sel.SQL, whereSQL) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch keyword(part) {
		case "select":
			classified = true
		case "order":
			orderPart = part
		}
	}
	if !classified {
		return sel
	}

	where := activitydom.NewConditions()
	where.Set("reply_type", activitydom.InSQL("a.type", activitydom.TypeComment))
	where.Set("not_own", fmt.Sprintf("a.user_id != %d", view.DisplayedUserID))
	where.Set("referent", "(c.id = a.item_id OR c.id = a.secondary_item_id)")
	where.Set("displayed_author", fmt.Sprintf("c.user_id = %d", view.DisplayedUserID))
	for _, name := range st.Where.Names() {
		if name == droppedFilterCond || name == droppedExcludedCond {
			continue
		}
		frag, _ := st.Where.Get(name)
		where.Set(name, frag)
	}
	if len(sel.Args.Filter.Actions) > 0 {
		where.Set("reply_filter", activitydom.InSQL("c.type", sel.Args.Filter.Actions...))
	}

	rw := &dom.Rewrite{
		Select: "SELECT DISTINCT a.id FROM activities a, activities c",
		Where:  where,
		Order:  orderPart,
	}
	st.Select = rw
	st.Count = &dom.Rewrite{Select: rw.Select, Where: rw.Where}

	sel.SQL = rw.Render()
	return sel
}

// RewriteCount replaces the assembled count statement with the one
// derived from the rewritten SELECT, when a rewrite happened
func (s *Service) RewriteCount(ctx context.Context, sql string) string {
	_, st, ok := guardActive(ctx)
	if !ok || st.Count == nil {
		return sql
	}
	return st.Count.RenderCount()
}

// keyword returns the first token of a clause, lowercased
func keyword(part string) string {
	fields := strings.Fields(part)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
