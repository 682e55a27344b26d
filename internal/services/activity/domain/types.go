// Package domain defines the types and interfaces for the activity service
package domain

import "time"

// Activity types recorded in the stream
const (
	// TypeUpdate is a top-level status update
	TypeUpdate = "activity_update"

	// TypeComment is a comment on an activity, threaded via ItemID/SecondaryItemID
	TypeComment = "activity_comment"
)

// Activity is one row of the activity stream.
// For comments, ItemID is the root activity and SecondaryItemID is the
// direct parent (equal to ItemID for top-level comments).
type Activity struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Type            string    `json:"type"`
	Content         string    `json:"content"`
	ItemID          int64     `json:"item_id"`
	SecondaryItemID int64     `json:"secondary_item_id"`
	HideSitewide    bool      `json:"hide_sitewide"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// Filter narrows a listing to specific activity types
type Filter struct {
	Actions []string
}

// QueryArgs is the argument bag for the generic listing pipeline.
// Hook handlers may overlay defaults before the query is assembled.
type QueryArgs struct {
	DisplayComments bool
	ShowHidden      bool
	UserID          int64
	SearchTerms     string
	Filter          Filter
	Page            int
	PerPage         int
	CountTotal      bool
}

// SelectSQL carries the assembled paged SQL through its filter chain
// together with the args that produced it
type SelectSQL struct {
	SQL  string
	Args QueryArgs
}

// CommentArgs describe a posted comment
type CommentArgs struct {
	ActivityID int64
	ParentID   int64
	UserID     int64
	Content    string
}

// CommentEvent is emitted after a comment row has been recorded
type CommentEvent struct {
	CommentID int64
	Args      CommentArgs
}

// PermalinkEvent fires when a single activity page is served.
// ReplyID carries the reply identifier from the request, zero when absent.
type PermalinkEvent struct {
	Activity Activity
	ReplyID  int64
}

// FilterOption is one entry of the type-selector dropdown
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ClassEvent carries a row's CSS class through its filter chain
type ClassEvent struct {
	ActivityID int64
	Class      string
}

// ListResult is the outcome of a listing request
type ListResult struct {
	Items []Activity
	Total int
}
