package drafts

import (
	"time"

	"resume-importer/internal/resume"
)

// DraftResponse is the outward-facing representation of a draft.
type DraftResponse struct {
	DraftID   string        `json:"draftId,omitempty"`
	Version   int           `json:"version"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
	Resume    resume.Resume `json:"resume"`
}

// ToResponse converts a draft for the API.
func ToResponse(d Draft) DraftResponse {
	resp := DraftResponse{
		DraftID: d.ID,
		Version: d.Version,
		Resume:  d.Resume,
	}
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
