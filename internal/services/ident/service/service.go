// Package service provides the ident service implementation
package service

import (
	"context"
	"strconv"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/services/ident/domain"
)

// Svc implements domain.NamerPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
}

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder}
}

// DisplayName implements domain.NamerPort. Deleted members fall back
// to a numeric placeholder so callers never format an empty name.
func (s *Svc) DisplayName(ctx context.Context, userID int64) (string, error) {
	var u domain.User
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		u, err = s.binder.Bind(q).ByID(ctx, userID)
		return err
	})
	if err != nil {
		if perr.IsNotFound(err) {
			return "member #" + strconv.FormatInt(userID, 10), nil
		}
		return "", err
	}
	if u.DisplayName == "" {
		return "member #" + strconv.FormatInt(userID, 10), nil
	}
	return u.DisplayName, nil
}
