package service

import (
	"context"
	"testing"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	"activityreplies/internal/services/notify/domain"
	"activityreplies/internal/services/notify/repo"
)

type stubTx struct{}

func (stubTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("not used")
}
func (stubTx) Query(context.Context, string, ...any) (repokit.Rows, error) { panic("not used") }
func (stubTx) QueryRow(context.Context, string, ...any) repokit.Row        { panic("not used") }
func (stubTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(stubTx{})
}

type fakeRepo struct {
	rows    []domain.Notification
	nextID  int64
	inserts int
}

func (f *fakeRepo) Insert(_ context.Context, args domain.AddArgs) (domain.Notification, error) {
	f.nextID++
	f.inserts++
	n := domain.Notification{
		ID: f.nextID, UserID: args.UserID, ItemID: args.ItemID,
		SecondaryItemID: args.SecondaryItemID,
		ComponentName:   args.ComponentName, ComponentAction: args.ComponentAction,
		IsNew: true,
	}
	f.rows = append(f.rows, n)
	return n, nil
}

func (f *fakeRepo) UnreadExists(_ context.Context, args domain.AddArgs) (bool, error) {
	for _, n := range f.rows {
		if n.IsNew && n.UserID == args.UserID && n.ItemID == args.ItemID &&
			n.ComponentName == args.ComponentName && n.ComponentAction == args.ComponentAction {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UnreadForUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range f.rows {
		if n.UserID == userID && n.IsNew {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkReadByType(_ context.Context, userID int64, name, action string) (int64, error) {
	var marked int64
	for i, n := range f.rows {
		if n.UserID == userID && n.ComponentName == name && n.ComponentAction == action && n.IsNew {
			f.rows[i].IsNew = false
			marked++
		}
	}
	return marked, nil
}

func (f *fakeRepo) MarkReadByItem(_ context.Context, userID, itemID int64, name string) (int64, error) {
	var marked int64
	for i, n := range f.rows {
		if n.UserID == userID && n.ItemID == itemID && n.ComponentName == name && n.IsNew {
			f.rows[i].IsNew = false
			marked++
		}
	}
	return marked, nil
}

func (f *fakeRepo) DeleteForItems(_ context.Context, name string, itemIDs []int64) (int64, error) {
	gone := map[int64]bool{}
	for _, id := range itemIDs {
		gone[id] = true
	}
	kept := f.rows[:0]
	var removed int64
	for _, n := range f.rows {
		if n.ComponentName == name && gone[n.ItemID] {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	f.rows = kept
	return removed, nil
}

func newTestService(f *fakeRepo) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return f })
	return New(stubTx{}, binder)
}

func addArgs() domain.AddArgs {
	return domain.AddArgs{
		UserID: 1, ItemID: 101, SecondaryItemID: 2,
		ComponentName: "activity_replies", ComponentAction: "root_reply",
	}
}

func TestAddSuppressesUnreadDuplicates(t *testing.T) {
	f := &fakeRepo{}
	svc := newTestService(f)
	ctx := context.Background()

	n, added, err := svc.Add(ctx, addArgs())
	if err != nil || !added {
		t.Fatalf("first Add: added=%v err=%v", added, err)
	}
	if n.ID == 0 || !n.IsNew {
		t.Fatalf("first Add row = %+v", n)
	}

	_, added, err = svc.Add(ctx, addArgs())
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if added {
		t.Fatalf("duplicate unread notification was written")
	}
	if f.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", f.inserts)
	}
}

func TestAddAgainAfterRead(t *testing.T) {
	f := &fakeRepo{}
	svc := newTestService(f)
	ctx := context.Background()

	if _, added, _ := svc.Add(ctx, addArgs()); !added {
		t.Fatalf("first Add suppressed")
	}
	if _, err := svc.MarkReadByType(ctx, 1, "activity_replies", "root_reply"); err != nil {
		t.Fatalf("MarkReadByType: %v", err)
	}
	if _, added, _ := svc.Add(ctx, addArgs()); !added {
		t.Fatalf("Add after read suppressed; dedup must only consider unread rows")
	}
	if f.inserts != 2 {
		t.Fatalf("inserts = %d, want 2", f.inserts)
	}
}

func TestAddValidatesArgs(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, domain.AddArgs{ComponentName: "x", ComponentAction: "y"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing user: %v", err)
	}

	_, _, err = svc.Add(ctx, domain.AddArgs{UserID: 1})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing component: %v", err)
	}
}

func TestDifferentActionsDoNotDedup(t *testing.T) {
	f := &fakeRepo{}
	svc := newTestService(f)
	ctx := context.Background()

	args := addArgs()
	if _, added, _ := svc.Add(ctx, args); !added {
		t.Fatalf("root add suppressed")
	}
	args.ComponentAction = "chain_reply"
	if _, added, _ := svc.Add(ctx, args); !added {
		t.Fatalf("chain add suppressed by root dedup")
	}
	if f.inserts != 2 {
		t.Fatalf("inserts = %d, want 2", f.inserts)
	}
}
