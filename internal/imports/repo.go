package imports

import "context"

// Repo stores import history.
type Repo interface {
	Create(ctx context.Context, records []Record) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
}
