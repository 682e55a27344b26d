// Package domain defines the types and interfaces for the notify service
package domain

import (
	"context"
	"time"
)

// Notification is one row of the notifications table.
// ItemID and SecondaryItemID are component-defined references; for
// activity replies they point at the root activity and the comment.
type Notification struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ItemID          int64     `json:"item_id"`
	SecondaryItemID int64     `json:"secondary_item_id"`
	ComponentName   string    `json:"component_name"`
	ComponentAction string    `json:"component_action"`
	IsNew           bool      `json:"is_new"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// AddArgs describe a notification to record
type AddArgs struct {
	UserID          int64
	ItemID          int64
	SecondaryItemID int64
	ComponentName   string
	ComponentAction string
}

// Formatted is a notification rendered for display
type Formatted struct {
	Notification
	Text string `json:"text,omitempty"`
	Link string `json:"link,omitempty"`
}

// Formatter renders one of a component's notifications for display.
// total is the number of unread notifications sharing the component
// action; formatters typically collapse groups into one line and link
// singles straight to the item.
type Formatter interface {
	FormatNotification(ctx context.Context, n Notification, total int) (text, link string)
}

// StorePort is the notification store surface other components consume
type StorePort interface {
	// Add records a notification unless an unread one already exists
	// for the same user, item, component, and action. Returns the row
	// and whether a new one was written.
	Add(ctx context.Context, args AddArgs) (Notification, bool, error)

	// AllForUser returns every unread notification for the user
	AllForUser(ctx context.Context, userID int64) ([]Notification, error)

	// MarkReadByType marks the user's unread notifications read for one
	// component action
	MarkReadByType(ctx context.Context, userID int64, componentName, componentAction string) (int64, error)

	// MarkReadByItem marks the user's unread notifications read for one
	// component item, across all of the component's actions
	MarkReadByItem(ctx context.Context, userID int64, itemID int64, componentName string) (int64, error)

	// DeleteForItems removes notifications referencing the given items,
	// for every user
	DeleteForItems(ctx context.Context, componentName string, itemIDs []int64) (int64, error)
}
