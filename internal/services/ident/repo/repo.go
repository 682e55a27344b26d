// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"strings"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// ByID implements domain.Repo
func (r *queries) ByID(ctx context.Context, userID int64) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx,
		`SELECT id, display_name FROM users WHERE id = $1`, userID,
	).Scan(&u.ID, &u.DisplayName)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return domain.User{}, perr.NotFoundf("user %d not found", userID)
		}
		return domain.User{}, perr.WrapDB(err, "get user")
	}
	return u, nil
}
