// Package repo provides the activity repository implementation
package repo

import (
	"context"
	"strings"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/services/activity/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the activity repository
type Storage interface {
	Get(ctx context.Context, id int64) (domain.Activity, error)
	Insert(ctx context.Context, a domain.Activity) (domain.Activity, error)
	SelectIDs(ctx context.Context, sql string) ([]int64, error)
	CountRows(ctx context.Context, sql string) (int, error)
	ByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error)
	DeleteByIDs(ctx context.Context, ids []int64) ([]int64, error)
}

const activityColumns = `id, user_id, type, content, item_id, secondary_item_id, hide_sitewide, recorded_at`

// Get implements Storage
func (s *pg) Get(ctx context.Context, id int64) (domain.Activity, error) {
	var a domain.Activity
	err := s.q.QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1`, id,
	).Scan(&a.ID, &a.UserID, &a.Type, &a.Content, &a.ItemID, &a.SecondaryItemID, &a.HideSitewide, &a.RecordedAt)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.Activity{}, perr.NotFoundf("activity %d not found", id)
		}
		return domain.Activity{}, perr.WrapDB(err, "get activity")
	}
	return a, nil
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	err := s.q.QueryRow(ctx,
		`INSERT INTO activities (user_id, type, content, item_id, secondary_item_id, hide_sitewide, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, recorded_at`,
		a.UserID, a.Type, a.Content, a.ItemID, a.SecondaryItemID, a.HideSitewide,
	).Scan(&a.ID, &a.RecordedAt)
	if err != nil {
		return domain.Activity{}, perr.WrapDB(err, "insert activity")
	}
	return a, nil
}

// SelectIDs runs an assembled paged listing statement.
// The SQL arrives fully rendered from the pipeline (the hook contract
// is a string, not a builder), so there are no positional args here.
func (s *pg) SelectIDs(ctx context.Context, sql string) ([]int64, error) {
	rows, err := s.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.WrapDB(err, "paged activity query")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, perr.WrapDB(err, "scan activity id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountRows runs an assembled count statement
func (s *pg) CountRows(ctx context.Context, sql string) (int, error) {
	var n int
	if err := s.q.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, perr.WrapDB(err, "count activity query")
	}
	return n, nil
}

// ByIDs hydrates rows for the given ids, newest first
func (s *pg) ByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.q.Query(ctx,
		`SELECT `+activityColumns+` FROM activities
		WHERE id = ANY($1)
		ORDER BY recorded_at DESC, id DESC`, ids)
	if err != nil {
		return nil, perr.WrapDB(err, "hydrate activities")
	}
	defer rows.Close()

	out := make([]domain.Activity, 0, len(ids))
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Content, &a.ItemID, &a.SecondaryItemID, &a.HideSitewide, &a.RecordedAt); err != nil {
			return nil, perr.WrapDB(err, "scan activity")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteByIDs removes the given activities and any comments threaded
// under them, returning every id actually deleted
func (s *pg) DeleteByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.q.Query(ctx,
		`DELETE FROM activities WHERE id = ANY($1) OR item_id = ANY($1) RETURNING id`, ids)
	if err != nil {
		return nil, perr.WrapDB(err, "delete activities")
	}
	defer rows.Close()

	var deleted []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, perr.WrapDB(err, "scan deleted id")
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}
