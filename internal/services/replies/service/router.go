package service

import (
	"context"

	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/platform/logger"
	pnet "activityreplies/internal/platform/net"
	activitydom "activityreplies/internal/services/activity/domain"
	notifydom "activityreplies/internal/services/notify/domain"
	dom "activityreplies/internal/services/replies/domain"
)

// OnCommentPosted decides who a posted comment notifies.
//
// Root rule: the root activity's author hears about any comment on it
// from someone else. Chain rule: a nested reply additionally notifies
// the parent comment's author, unless that is the commenter or the
// root author (who already got the root notification). A single event
// produces zero, one, or two notifications, never more.
func (s *Service) OnCommentPosted(ctx context.Context, ev activitydom.CommentEvent) {
	if s.Notifications == nil {
		return
	}

	root, err := s.Activities.Get(ctx, ev.Args.ActivityID)
	if err != nil {
		// the referenced activity may be gone already; nothing to notify
		if !perr.IsNotFound(err) {
			logger.C(ctx).Warn().Err(err).Int64("activity_id", ev.Args.ActivityID).Msg("reply routing: root lookup failed")
		}
		return
	}

	if root.UserID != ev.Args.UserID {
		s.add(ctx, notifydom.AddArgs{
			UserID:          root.UserID,
			ItemID:          ev.CommentID,
			SecondaryItemID: ev.Args.UserID,
			ComponentName:   dom.ComponentName,
			ComponentAction: dom.ActionRootReply,
		})
	}

	// top-level comment: no chain to follow
	if ev.Args.ParentID == 0 || ev.Args.ParentID == ev.Args.ActivityID {
		return
	}

	parent, err := s.Activities.Get(ctx, ev.Args.ParentID)
	if err != nil {
		if !perr.IsNotFound(err) {
			logger.C(ctx).Warn().Err(err).Int64("parent_id", ev.Args.ParentID).Msg("reply routing: parent lookup failed")
		}
		return
	}
	if parent.UserID == ev.Args.UserID || parent.UserID == root.UserID {
		return
	}

	s.add(ctx, notifydom.AddArgs{
		UserID:          parent.UserID,
		ItemID:          ev.CommentID,
		SecondaryItemID: ev.Args.UserID,
		ComponentName:   dom.ComponentName,
		ComponentAction: dom.ActionChainReply,
	})
}

func (s *Service) add(ctx context.Context, args notifydom.AddArgs) {
	if _, _, err := s.Notifications.Add(ctx, args); err != nil {
		// degraded delivery, the comment itself is already durable
		logger.C(ctx).Warn().Err(err).Int64("user_id", args.UserID).Msg("reply notification not recorded")
	}
}

// ScreenDisplay runs when a member opens their own replies screen: it
// batches the pending notifications, folds their comment ids into the
// request state for row decoration, marks each present group read, and
// returns the per-cause summaries. Viewing someone else's replies
// screen reads nothing and marks nothing.
func (s *Service) ScreenDisplay(ctx context.Context) []dom.NotificationSummary {
	view, st, ok := guardActive(ctx)
	if !ok || !view.IsOwnProfile() || s.Notifications == nil {
		return nil
	}

	pending, err := s.Notifications.AllForUser(ctx, view.LoggedInUserID)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("replies screen: pending fetch failed")
		return nil
	}

	var rootCount, chainCount int
	var rootLast, chainLast notifydom.Notification
	for _, n := range pending {
		if n.ComponentName != dom.ComponentName {
			continue
		}
		switch n.ComponentAction {
		case dom.ActionRootReply:
			rootCount++
			rootLast = n
			st.MarkNew(n.ItemID)
		case dom.ActionChainReply:
			chainCount++
			chainLast = n
			st.MarkNew(n.ItemID)
		}
	}

	var summaries []dom.NotificationSummary
	if rootCount > 0 {
		summaries = append(summaries, s.summary(ctx, dom.ActionRootReply, rootCount, rootLast))
		s.markRead(ctx, view.LoggedInUserID, dom.ActionRootReply)
	}
	if chainCount > 0 {
		summaries = append(summaries, s.summary(ctx, dom.ActionChainReply, chainCount, chainLast))
		s.markRead(ctx, view.LoggedInUserID, dom.ActionChainReply)
	}
	return summaries
}

func (s *Service) markRead(ctx context.Context, userID int64, action string) {
	if _, err := s.Notifications.MarkReadByType(ctx, userID, dom.ComponentName, action); err != nil {
		logger.C(ctx).Warn().Err(err).Str("action", action).Msg("replies screen: mark read failed")
	}
}

// OnPermalink marks a single reply notification read when a member
// follows a notification link straight to the activity page
func (s *Service) OnPermalink(ctx context.Context, ev activitydom.PermalinkEvent) {
	if s.Notifications == nil || ev.ReplyID == 0 {
		return
	}
	uid := pnet.UserID(ctx)
	if uid == 0 {
		return
	}
	if _, err := s.Notifications.MarkReadByItem(ctx, uid, ev.ReplyID, dom.ComponentName); err != nil {
		logger.C(ctx).Warn().Err(err).Int64("reply_id", ev.ReplyID).Msg("permalink: mark read failed")
	}
}

// OnDeleted removes the notifications keyed to deleted activities so
// none of them point at removed content
func (s *Service) OnDeleted(ctx context.Context, ids []int64) {
	if s.Notifications == nil || len(ids) == 0 {
		return
	}
	if _, err := s.Notifications.DeleteForItems(ctx, dom.ComponentName, ids); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("reply notification cleanup failed")
	}
}

// ClassFilter appends the unread marker class to rows whose id is in
// the request's visited set; pure lookup, no mutation
func (s *Service) ClassFilter(ctx context.Context, ev activitydom.ClassEvent) activitydom.ClassEvent {
	st := dom.StateFrom(ctx)
	if st == nil || !st.IsNew(ev.ActivityID) {
		return ev
	}
	if ev.Class != "" {
		ev.Class += " "
	}
	ev.Class += dom.NewReplyClass
	return ev
}

// FilterOptionsFilter prunes the type-selector dropdown: the comment
// type always goes (on the replies screen every row is a comment, so
// the entry would be noise), and types the deployment marks as not
// accepting comments go with it
func (s *Service) FilterOptionsFilter(ctx context.Context, opts []activitydom.FilterOption) []activitydom.FilterOption {
	if _, _, ok := guardActive(ctx); !ok {
		return opts
	}
	out := make([]activitydom.FilterOption, 0, len(opts))
	for _, o := range opts {
		if o.Value == activitydom.TypeComment || s.typeDisabled(o.Value) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Service) typeDisabled(value string) bool {
	for _, t := range s.Cfg.DisabledTypes {
		if t == value {
			return true
		}
	}
	return false
}
