// Package repo provides the notifications repository implementation
package repo

import (
	"context"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/services/notify/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the notifications repository
type Storage interface {
	Insert(ctx context.Context, args domain.AddArgs) (domain.Notification, error)
	UnreadExists(ctx context.Context, args domain.AddArgs) (bool, error)
	UnreadForUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkReadByType(ctx context.Context, userID int64, componentName, componentAction string) (int64, error)
	MarkReadByItem(ctx context.Context, userID, itemID int64, componentName string) (int64, error)
	DeleteForItems(ctx context.Context, componentName string, itemIDs []int64) (int64, error)
}

const notificationColumns = `id, user_id, item_id, secondary_item_id, component_name, component_action, is_new, recorded_at`

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, args domain.AddArgs) (domain.Notification, error) {
	n := domain.Notification{
		UserID:          args.UserID,
		ItemID:          args.ItemID,
		SecondaryItemID: args.SecondaryItemID,
		ComponentName:   args.ComponentName,
		ComponentAction: args.ComponentAction,
		IsNew:           true,
	}
	err := s.q.QueryRow(ctx,
		`INSERT INTO notifications (user_id, item_id, secondary_item_id, component_name, component_action, is_new, recorded_at)
		VALUES ($1, $2, $3, $4, $5, true, now())
		RETURNING id, recorded_at`,
		args.UserID, args.ItemID, args.SecondaryItemID, args.ComponentName, args.ComponentAction,
	).Scan(&n.ID, &n.RecordedAt)
	if err != nil {
		return domain.Notification{}, perr.WrapDB(err, "insert notification")
	}
	return n, nil
}

// UnreadExists implements Storage
func (s *pg) UnreadExists(ctx context.Context, args domain.AddArgs) (bool, error) {
	var exists bool
	err := s.q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND item_id = $2
			  AND component_name = $3 AND component_action = $4
			  AND is_new = true
		)`,
		args.UserID, args.ItemID, args.ComponentName, args.ComponentAction,
	).Scan(&exists)
	if err != nil {
		return false, perr.WrapDB(err, "check unread notification")
	}
	return exists, nil
}

// UnreadForUser implements Storage
func (s *pg) UnreadForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1 AND is_new = true
		ORDER BY recorded_at DESC, id DESC`, userID)
	if err != nil {
		return nil, perr.WrapDB(err, "unread notifications")
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ItemID, &n.SecondaryItemID, &n.ComponentName, &n.ComponentAction, &n.IsNew, &n.RecordedAt); err != nil {
			return nil, perr.WrapDB(err, "scan notification")
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkReadByType implements Storage
func (s *pg) MarkReadByType(ctx context.Context, userID int64, componentName, componentAction string) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE notifications SET is_new = false
		WHERE user_id = $1 AND component_name = $2 AND component_action = $3 AND is_new = true`,
		userID, componentName, componentAction)
	if err != nil {
		return 0, perr.WrapDB(err, "mark notifications read by type")
	}
	return tag.RowsAffected(), nil
}

// MarkReadByItem implements Storage
func (s *pg) MarkReadByItem(ctx context.Context, userID, itemID int64, componentName string) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE notifications SET is_new = false
		WHERE user_id = $1 AND item_id = $2 AND component_name = $3 AND is_new = true`,
		userID, itemID, componentName)
	if err != nil {
		return 0, perr.WrapDB(err, "mark notifications read by item")
	}
	return tag.RowsAffected(), nil
}

// DeleteForItems implements Storage
func (s *pg) DeleteForItems(ctx context.Context, componentName string, itemIDs []int64) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	// secondary_item_id is component-defined (for replies it is the
	// commenter's user id), so cleanup keys on item_id alone
	tag, err := s.q.Exec(ctx,
		`DELETE FROM notifications
		WHERE component_name = $1 AND item_id = ANY($2)`,
		componentName, itemIDs)
	if err != nil {
		return 0, perr.WrapDB(err, "delete notifications for items")
	}
	return tag.RowsAffected(), nil
}
