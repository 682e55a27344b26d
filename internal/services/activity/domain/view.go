package domain

import "context"

// View describes the screen a request is rendering: which member is
// displayed, who is logged in, and which component/action is current.
// It is built per request and threaded through the context so hook
// handlers can gate themselves without ambient globals.
type View struct {
	DisplayedUserID int64
	LoggedInUserID  int64
	Component       string
	Action          string
}

// LoggedIn reports whether a user is authenticated
func (v View) LoggedIn() bool { return v.LoggedInUserID != 0 }

// IsOwnProfile reports whether the displayed member is the logged-in user
func (v View) IsOwnProfile() bool {
	return v.DisplayedUserID != 0 && v.DisplayedUserID == v.LoggedInUserID
}

type viewKey struct{}

// WithView stores the request view on the context
func WithView(ctx context.Context, v View) context.Context {
	return context.WithValue(ctx, viewKey{}, v)
}

// ViewFrom returns the request view, ok=false when none was set
func ViewFrom(ctx context.Context) (View, bool) {
	v, ok := ctx.Value(viewKey{}).(View)
	return v, ok
}
