// Package service implements the activity component: recording,
// deletion, and the generic listing pipeline with its extension points
package service

import (
	"context"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/platform/logger"
	dom "activityreplies/internal/services/activity/domain"
	"activityreplies/internal/services/activity/repo"
)

// Config for the activity service
type Config struct {
	// PerPageDefault applies when a listing asks for no page size; defaults to 20
	PerPageDefault int

	// PerPageMax caps the page size; defaults to 100
	PerPageMax int
}

// Service implements domain.ReaderPort, domain.WriterPort, and domain.ListerPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Hooks  *Hooks
	Cfg    Config
}

// New constructs a new activity service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], hooks *Hooks, cfg Config) *Service {
	if cfg.PerPageDefault <= 0 {
		cfg.PerPageDefault = 20
	}
	if cfg.PerPageMax <= 0 {
		cfg.PerPageMax = 100
	}
	if hooks == nil {
		hooks = &Hooks{}
	}
	return &Service{DB: db, Binder: b, Hooks: hooks, Cfg: cfg}
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id int64) (dom.Activity, error) {
	var a dom.Activity
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		a, err = s.Binder.Bind(q).Get(ctx, id)
		return err
	})
	return a, err
}

// PostUpdate records a top-level update
func (s *Service) PostUpdate(ctx context.Context, userID int64, content string) (dom.Activity, error) {
	if userID == 0 {
		return dom.Activity{}, perr.Unauthorizedf("login required")
	}
	if content == "" {
		return dom.Activity{}, perr.InvalidArgf("content is required")
	}

	var a dom.Activity
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		a, err = s.Binder.Bind(q).Insert(ctx, dom.Activity{
			UserID:  userID,
			Type:    dom.TypeUpdate,
			Content: content,
		})
		return err
	})
	return a, err
}

// PostComment records a comment under an activity and emits the
// comment-posted event once the row is durable
func (s *Service) PostComment(ctx context.Context, args dom.CommentArgs) (dom.Activity, error) {
	if args.UserID == 0 {
		return dom.Activity{}, perr.Unauthorizedf("login required")
	}
	if args.Content == "" {
		return dom.Activity{}, perr.InvalidArgf("content is required")
	}
	if args.ActivityID == 0 {
		return dom.Activity{}, perr.InvalidArgf("activity_id is required")
	}
	if args.ParentID == 0 {
		args.ParentID = args.ActivityID
	}

	var comment dom.Activity
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		if _, err := st.Get(ctx, args.ActivityID); err != nil {
			return err
		}
		if args.ParentID != args.ActivityID {
			parent, err := st.Get(ctx, args.ParentID)
			if err != nil {
				return err
			}
			if parent.Type != dom.TypeComment || parent.ItemID != args.ActivityID {
				return perr.InvalidArgf("parent %d does not belong to activity %d", args.ParentID, args.ActivityID)
			}
		}

		var err error
		comment, err = st.Insert(ctx, dom.Activity{
			UserID:          args.UserID,
			Type:            dom.TypeComment,
			Content:         args.Content,
			ItemID:          args.ActivityID,
			SecondaryItemID: args.ParentID,
		})
		return err
	})
	if err != nil {
		return dom.Activity{}, err
	}

	s.Hooks.CommentPosted.Emit(ctx, dom.CommentEvent{CommentID: comment.ID, Args: args})
	return comment, nil
}

// Delete removes activities (and comments threaded under them) and
// emits every deleted id for downstream cleanup
func (s *Service) Delete(ctx context.Context, ids []int64) ([]int64, error) {
	var deleted []int64
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		deleted, err = s.Binder.Bind(q).DeleteByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		s.Hooks.Deleted.Emit(ctx, deleted)
	}
	return deleted, nil
}

// List runs the generic listing pipeline: args filter, WHERE build and
// filter, paged SELECT assembly and filter, execution, hydration, and
// an optional filtered COUNT
func (s *Service) List(ctx context.Context, args dom.QueryArgs) (dom.ListResult, error) {
	args = s.normalize(args)
	args = s.Hooks.ListArgs.Apply(ctx, args)

	conds := s.buildConditions(args)
	conds = s.Hooks.WhereConditions.Apply(ctx, conds)

	paged := assemblePagedSQL(conds, args)
	paged = s.Hooks.PagedSQL.Apply(ctx, dom.SelectSQL{SQL: paged, Args: args}).SQL

	var res dom.ListResult
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		ids, err := st.SelectIDs(ctx, paged)
		if err != nil {
			return err
		}
		res.Items, err = st.ByIDs(ctx, ids)
		if err != nil {
			return err
		}

		if args.CountTotal {
			total := assembleTotalSQL(conds)
			total = s.Hooks.TotalSQL.Apply(ctx, total)
			res.Total, err = st.CountRows(ctx, total)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dom.ListResult{}, err
	}

	logger.C(ctx).Debug().Int("items", len(res.Items)).Msg("activity list")
	return res, nil
}

func (s *Service) normalize(args dom.QueryArgs) dom.QueryArgs {
	if args.Page <= 0 {
		args.Page = 1
	}
	if args.PerPage <= 0 {
		args.PerPage = s.Cfg.PerPageDefault
	}
	if args.PerPage > s.Cfg.PerPageMax {
		args.PerPage = s.Cfg.PerPageMax
	}
	return args
}
