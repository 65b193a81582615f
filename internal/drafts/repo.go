package drafts

import "context"

// Repo persists drafts keyed by user.
type Repo interface {
	// Get returns ErrNotFound when the user has no draft yet.
	Get(ctx context.Context, userID string) (Draft, error)
	// Save inserts or replaces the user's draft and returns the stored row.
	Save(ctx context.Context, d Draft) (Draft, error)
}
