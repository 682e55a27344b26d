package domain

import "context"

// ReaderPort loads single activities
type ReaderPort interface {
	Get(ctx context.Context, id int64) (Activity, error)
}

// WriterPort records and removes activities
type WriterPort interface {
	PostUpdate(ctx context.Context, userID int64, content string) (Activity, error)
	PostComment(ctx context.Context, args CommentArgs) (Activity, error)
	Delete(ctx context.Context, ids []int64) ([]int64, error)
}

// ListerPort runs the generic listing pipeline
type ListerPort interface {
	List(ctx context.Context, args QueryArgs) (ListResult, error)
}
