// Package domain defines the types for the activity replies component
package domain

import (
	"context"
	"strings"

	activity "activityreplies/internal/services/activity/domain"
)

// Component identity and notification taxonomy
const (
	// ComponentName keys every notification this component writes
	ComponentName = "activity_replies"

	// ActionSlug is the member screen this component adds ("my replies")
	ActionSlug = "replies"

	// ActionRootReply tags a comment on one of the member's own activities
	ActionRootReply = "root_reply"

	// ActionChainReply tags a nested reply to one of the member's comments
	ActionChainReply = "chain_reply"

	// NewReplyClass is appended to rows the member has not seen yet
	NewReplyClass = "new-reply"
)

// Rewrite is the structured form of a rewritten listing statement:
// a SELECT/FROM head, an ordered WHERE mapping, and an optional
// trailing ORDER clause
type Rewrite struct {
	Select string
	Where  *activity.Conditions
	Order  string
}

// Render joins the rewrite back into a single SQL string
func (rw Rewrite) Render() string {
	parts := []string{rw.Select}
	if w := rw.Where.SQL(); w != "" {
		parts = append(parts, w)
	}
	if rw.Order != "" {
		parts = append(parts, rw.Order)
	}
	return strings.Join(parts, " ")
}

// RenderCount derives the matching count statement: same head and
// WHERE with the row selector converted to a counting aggregate and
// the ORDER clause dropped
func (rw Rewrite) RenderCount() string {
	head := strings.Replace(rw.Select, "DISTINCT a.id", "count(DISTINCT a.id)", 1)
	if w := rw.Where.SQL(); w != "" {
		return head + " " + w
	}
	return head
}

// State is the request-scoped working set of the replies component.
// It is allocated when a replies screen request begins and travels
// through the context; nothing here outlives the request.
type State struct {
	// Where holds the generic WHERE mapping captured mid-pipeline
	Where *activity.Conditions

	// Select and Count hold the rewritten statements once built
	Select *Rewrite
	Count  *Rewrite

	// NewReplies are the comment ids with unread notifications
	NewReplies map[int64]struct{}

	// Highlight is set when NewReplies is non-empty so the renderer
	// emits the marker style block once
	Highlight bool
}

// NewState returns an empty request state
func NewState() *State {
	return &State{NewReplies: map[int64]struct{}{}}
}

// MarkNew records a comment id as unread
func (s *State) MarkNew(id int64) {
	if s.NewReplies == nil {
		s.NewReplies = map[int64]struct{}{}
	}
	s.NewReplies[id] = struct{}{}
	s.Highlight = true
}

// IsNew reports whether the comment id has an unread notification
func (s *State) IsNew(id int64) bool {
	_, ok := s.NewReplies[id]
	return ok
}

type stateKey struct{}

// WithState stores the request state on the context
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// StateFrom returns the request state, nil when none was set
func StateFrom(ctx context.Context) *State {
	s, _ := ctx.Value(stateKey{}).(*State)
	return s
}

// NotificationSummary is one rendered line of the member's pending
// reply notifications, grouped by cause
type NotificationSummary struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
	Text   string `json:"text"`
	Link   string `json:"link,omitempty"`
}

// ScreenResult is what the replies screen returns: the listing plus
// the summaries and highlight decoration computed from pending
// notifications
type ScreenResult struct {
	Items      []DecoratedActivity   `json:"items"`
	Total      int                   `json:"total"`
	Summaries  []NotificationSummary `json:"summaries,omitempty"`
	StyleBlock string                `json:"style_block,omitempty"`
}

// DecoratedActivity is an activity row plus its rendered CSS class
type DecoratedActivity struct {
	activity.Activity
	Class string `json:"class,omitempty"`
}
