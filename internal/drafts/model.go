package drafts

import (
	"time"

	"resume-importer/internal/resume"
)

// Draft is the résumé a user is currently editing. There is at most one per
// user; Version increases on every save.
type Draft struct {
	ID        string
	UserID    string
	Resume    resume.Resume
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
