// Package service provides the notifications service implementation
package service

import (
	"context"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/platform/logger"
	"activityreplies/internal/services/notify/domain"
	"activityreplies/internal/services/notify/repo"
)

// Service implements domain.StorePort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]

	// formatters render notifications per component; registered during
	// bootstrap only, read during requests
	formatters map[string]domain.Formatter
}

// New constructs a new notifications service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b, formatters: map[string]domain.Formatter{}}
}

// RegisterFormatter attaches a display formatter for one component.
// Not safe for use after requests start; wiring happens in main.
func (s *Service) RegisterFormatter(componentName string, f domain.Formatter) {
	s.formatters[componentName] = f
}

// Add implements domain.StorePort. The unread check and the insert run
// in one transaction so concurrent adds cannot both pass the check and
// the caller sees either the fresh row or the suppressed duplicate.
func (s *Service) Add(ctx context.Context, args domain.AddArgs) (domain.Notification, bool, error) {
	if args.UserID == 0 {
		return domain.Notification{}, false, perr.InvalidArgf("user_id is required")
	}
	if args.ComponentName == "" || args.ComponentAction == "" {
		return domain.Notification{}, false, perr.InvalidArgf("component name and action are required")
	}

	var (
		n     domain.Notification
		added bool
	)
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)
		exists, err := st.UnreadExists(ctx, args)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		n, err = st.Insert(ctx, args)
		if err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return domain.Notification{}, false, err
	}
	if !added {
		logger.C(ctx).Debug().
			Int64("user_id", args.UserID).
			Int64("item_id", args.ItemID).
			Str("action", args.ComponentAction).
			Msg("duplicate notification suppressed")
	}
	return n, added, nil
}

// AllForUser implements domain.StorePort
func (s *Service) AllForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var out []domain.Notification
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).UnreadForUser(ctx, userID)
		return err
	})
	return out, err
}

// FormattedForUser returns the user's unread notifications rendered
// for display. Each row carries the text and link its component's
// formatter produced for the group it belongs to; rows of components
// without a formatter pass through bare.
func (s *Service) FormattedForUser(ctx context.Context, userID int64) ([]domain.Formatted, error) {
	pending, err := s.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type group struct{ component, action string }
	totals := map[group]int{}
	for _, n := range pending {
		totals[group{n.ComponentName, n.ComponentAction}]++
	}

	out := make([]domain.Formatted, 0, len(pending))
	for _, n := range pending {
		f := domain.Formatted{Notification: n}
		if fmtr, ok := s.formatters[n.ComponentName]; ok {
			f.Text, f.Link = fmtr.FormatNotification(ctx, n, totals[group{n.ComponentName, n.ComponentAction}])
		}
		out = append(out, f)
	}
	return out, nil
}

// MarkReadByType implements domain.StorePort
func (s *Service) MarkReadByType(ctx context.Context, userID int64, componentName, componentAction string) (int64, error) {
	var n int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).MarkReadByType(ctx, userID, componentName, componentAction)
		return err
	})
	return n, err
}

// MarkReadByItem implements domain.StorePort
func (s *Service) MarkReadByItem(ctx context.Context, userID, itemID int64, componentName string) (int64, error) {
	var n int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).MarkReadByItem(ctx, userID, itemID, componentName)
		return err
	})
	return n, err
}

// DeleteForItems implements domain.StorePort
func (s *Service) DeleteForItems(ctx context.Context, componentName string, itemIDs []int64) (int64, error) {
	var n int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).DeleteForItems(ctx, componentName, itemIDs)
		return err
	})
	return n, err
}
