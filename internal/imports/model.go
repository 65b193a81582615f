package imports

import "time"

// Record is the history entry kept for every imported file.
type Record struct {
	ID         string
	UserID     string
	FileName   string
	MediaType  string
	Format     string
	Status     string
	Error      string
	StorageKey string
	SizeBytes  int64
	CreatedAt  time.Time
}
