package imports

import (
	"time"

	"resume-importer/internal/drafts"
)

// ImportResponse is returned by POST /imports.
type ImportResponse struct {
	Files []FileResult          `json:"files"`
	Draft drafts.DraftResponse `json:"draft"`
}

// RecordResponse is one entry of the import history.
type RecordResponse struct {
	ImportID   string    `json:"importId"`
	FileName   string    `json:"fileName"`
	MediaType  string    `json:"mediaType"`
	Format     string    `json:"format"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Archived   bool      `json:"archived"`
	SizeBytes  int64     `json:"sizeBytes"`
	ImportedAt time.Time `json:"importedAt"`
}

func toRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ImportID:   r.ID,
		FileName:   r.FileName,
		MediaType:  r.MediaType,
		Format:     r.Format,
		Status:     r.Status,
		Error:      r.Error,
		Archived:   r.StorageKey != "",
		SizeBytes:  r.SizeBytes,
		ImportedAt: r.CreatedAt,
	}
}
