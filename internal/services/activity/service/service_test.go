package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"activityreplies/internal/modkit/repokit"
	perr "activityreplies/internal/platform/errors"
	dom "activityreplies/internal/services/activity/domain"
	"activityreplies/internal/services/activity/repo"
)

// stubTx satisfies repokit.TxRunner for services whose fakes ignore the queryer
type stubTx struct{}

func (stubTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("not used")
}
func (stubTx) Query(context.Context, string, ...any) (repokit.Rows, error) { panic("not used") }
func (stubTx) QueryRow(context.Context, string, ...any) repokit.Row        { panic("not used") }
func (stubTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(stubTx{})
}

type fakeStorage struct {
	rows    map[int64]dom.Activity
	nextID  int64
	pagedIn []string
	countIn []string
	deleted [][]int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{rows: map[int64]dom.Activity{}, nextID: 1}
}

func (f *fakeStorage) Get(_ context.Context, id int64) (dom.Activity, error) {
	a, ok := f.rows[id]
	if !ok {
		return dom.Activity{}, perr.NotFoundf("activity %d not found", id)
	}
	return a, nil
}

func (f *fakeStorage) Insert(_ context.Context, a dom.Activity) (dom.Activity, error) {
	a.ID = f.nextID
	a.RecordedAt = time.Now()
	f.nextID++
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeStorage) SelectIDs(_ context.Context, sql string) ([]int64, error) {
	f.pagedIn = append(f.pagedIn, sql)
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeStorage) CountRows(_ context.Context, sql string) (int, error) {
	f.countIn = append(f.countIn, sql)
	return len(f.rows), nil
}

func (f *fakeStorage) ByIDs(_ context.Context, ids []int64) ([]dom.Activity, error) {
	out := make([]dom.Activity, 0, len(ids))
	for _, id := range ids {
		if a, ok := f.rows[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStorage) DeleteByIDs(_ context.Context, ids []int64) ([]int64, error) {
	var gone []int64
	for _, id := range ids {
		for rid, a := range f.rows {
			if rid == id || a.ItemID == id {
				gone = append(gone, rid)
			}
		}
	}
	for _, id := range gone {
		delete(f.rows, id)
	}
	f.deleted = append(f.deleted, gone)
	return gone, nil
}

func newTestService(st *fakeStorage) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return New(stubTx{}, binder, &Hooks{}, Config{})
}

func TestListAssemblesSplittableSQL(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	_, err := svc.List(context.Background(), dom.QueryArgs{
		UserID:     7,
		CountTotal: true,
		Page:       2,
		PerPage:    10,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(st.pagedIn) != 1 || len(st.countIn) != 1 {
		t.Fatalf("expected one paged and one count statement, got %d/%d", len(st.pagedIn), len(st.countIn))
	}

	paged := st.pagedIn[0]
	wantWhere := "WHERE a.user_id = 7 AND a.type NOT IN ('activity_comment') AND a.hide_sitewide = false"
	if !strings.Contains(paged, " "+wantWhere+" ") {
		t.Fatalf("paged SQL missing exact WHERE block:\n%s", paged)
	}
	if !strings.HasPrefix(paged, "SELECT DISTINCT a.id FROM activities a ") {
		t.Fatalf("paged SQL head = %q", paged)
	}
	if !strings.Contains(paged, "LIMIT 10 OFFSET 10") {
		t.Fatalf("paged SQL paging = %q", paged)
	}

	count := st.countIn[0]
	if !strings.HasPrefix(count, "SELECT count(DISTINCT a.id) FROM activities a ") {
		t.Fatalf("count SQL head = %q", count)
	}
	if !strings.HasSuffix(count, wantWhere) {
		t.Fatalf("count SQL WHERE = %q", count)
	}
	if strings.Contains(count, "ORDER BY") {
		t.Fatalf("count SQL carries ordering: %q", count)
	}
}

func TestListHooksRunInOrder(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	var stages []string
	svc.Hooks.ListArgs.Add(10, func(_ context.Context, a dom.QueryArgs) dom.QueryArgs {
		stages = append(stages, "args")
		a.SearchTerms = "hi"
		return a
	})
	svc.Hooks.WhereConditions.Add(10, func(_ context.Context, c *dom.Conditions) *dom.Conditions {
		stages = append(stages, "where")
		if _, ok := c.Get(CondSearch); !ok {
			t.Fatalf("search condition missing after args hook set terms")
		}
		return c
	})
	svc.Hooks.PagedSQL.Add(10, func(_ context.Context, s dom.SelectSQL) dom.SelectSQL {
		stages = append(stages, "paged")
		return s
	})
	svc.Hooks.TotalSQL.Add(10, func(_ context.Context, s string) string {
		stages = append(stages, "total")
		return s
	})

	if _, err := svc.List(context.Background(), dom.QueryArgs{CountTotal: true}); err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"args", "where", "paged", "total"}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stage[%d] = %q, want %q", i, stages[i], want[i])
		}
	}
}

func TestPostCommentDefaultsParentAndEmits(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	root, err := svc.PostUpdate(context.Background(), 1, "hello")
	if err != nil {
		t.Fatalf("PostUpdate: %v", err)
	}

	var got dom.CommentEvent
	svc.Hooks.CommentPosted.Add(10, func(_ context.Context, ev dom.CommentEvent) { got = ev })

	c, err := svc.PostComment(context.Background(), dom.CommentArgs{
		ActivityID: root.ID,
		UserID:     2,
		Content:    "first",
	})
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if c.Type != dom.TypeComment || c.ItemID != root.ID || c.SecondaryItemID != root.ID {
		t.Fatalf("comment row = %+v", c)
	}
	if got.CommentID != c.ID || got.Args.ParentID != root.ID {
		t.Fatalf("emitted event = %+v", got)
	}
}

func TestPostCommentRejectsForeignParent(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	rootA, _ := svc.PostUpdate(context.Background(), 1, "a")
	rootB, _ := svc.PostUpdate(context.Background(), 1, "b")
	cA, _ := svc.PostComment(context.Background(), dom.CommentArgs{ActivityID: rootA.ID, UserID: 2, Content: "on a"})

	_, err := svc.PostComment(context.Background(), dom.CommentArgs{
		ActivityID: rootB.ID,
		ParentID:   cA.ID,
		UserID:     3,
		Content:    "cross thread",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestDeleteEmitsEveryRemovedID(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	root, _ := svc.PostUpdate(context.Background(), 1, "root")
	c1, _ := svc.PostComment(context.Background(), dom.CommentArgs{ActivityID: root.ID, UserID: 2, Content: "c1"})

	var emitted []int64
	svc.Hooks.Deleted.Add(10, func(_ context.Context, ids []int64) { emitted = ids })

	deleted, err := svc.Delete(context.Background(), []int64{root.ID})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(deleted) != 2 {
		t.Fatalf("deleted = %v, want root and comment", deleted)
	}
	found := map[int64]bool{}
	for _, id := range emitted {
		found[id] = true
	}
	if !found[root.ID] || !found[c1.ID] {
		t.Fatalf("emitted = %v, want both %d and %d", emitted, root.ID, c1.ID)
	}
}

func TestListNormalizesPaging(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st)

	if _, err := svc.List(context.Background(), dom.QueryArgs{Page: -3, PerPage: 9999}); err != nil {
		t.Fatalf("List: %v", err)
	}
	paged := st.pagedIn[0]
	if !strings.Contains(paged, "LIMIT 100 OFFSET 0") {
		t.Fatalf("paging not normalized: %q", paged)
	}
}
