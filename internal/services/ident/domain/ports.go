// Package domain defines the core types and interfaces for the ident service
package domain

import "context"

// User is the minimal member record other components need
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// NamerPort resolves member display names
type NamerPort interface {
	// DisplayName returns the member's display name, or a numeric
	// placeholder when the member row is gone
	DisplayName(ctx context.Context, userID int64) (string, error)
}

// Repo abstracts the member lookup a repository must provide
type Repo interface {
	ByID(ctx context.Context, userID int64) (User, error)
}
