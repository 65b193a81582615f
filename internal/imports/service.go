package imports

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-importer/internal/drafts"
	"resume-importer/internal/importer"
	"resume-importer/internal/resume"
	"resume-importer/internal/shared/storage/object"
)

var ErrInvalidInput = errors.New("invalid input")

// FileResult is the per-file part of an import response.
type FileResult struct {
	FileName   string `json:"fileName"`
	MediaType  string `json:"mediaType"`
	Format     string `json:"format"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	StorageKey string `json:"-"`
}

// Result is the outcome of one import request.
type Result struct {
	Files []FileResult
	Draft drafts.Draft
}

// Service imports uploaded files into the caller's draft. The archive store
// is optional; history is always recorded.
type Service struct {
	Importer *importer.Coordinator
	Drafts   *drafts.Service
	Store    object.ObjectStore
	Repo     Repo
	Logger   *slog.Logger
	Now      func() time.Time
}

// Import archives, imports and merges files for userID. Individual file
// failures are reported per file; only a missing user or an unreadable draft
// fails the whole call.
func (s *Service) Import(ctx context.Context, userID string, files []importer.UploadedFile) (Result, error) {
	if strings.TrimSpace(userID) == "" || len(files) == 0 {
		return Result{}, ErrInvalidInput
	}

	keys := s.archive(ctx, userID, files)

	outcomes := s.Importer.ImportAll(ctx, files, func(ctx context.Context, p resume.Partial) error {
		_, err := s.Drafts.ApplyPartial(ctx, userID, p)
		return err
	})

	now := s.now()
	results := make([]FileResult, len(outcomes))
	records := make([]Record, len(outcomes))
	for i, out := range outcomes {
		results[i] = FileResult{
			FileName:   out.FileName,
			MediaType:  files[i].MediaType,
			Format:     string(out.Format),
			Status:     string(out.Status),
			Error:      out.Error,
			StorageKey: keys[i],
		}
		records[i] = Record{
			ID:         uuid.NewString(),
			UserID:     userID,
			FileName:   out.FileName,
			MediaType:  files[i].MediaType,
			Format:     string(out.Format),
			Status:     string(out.Status),
			Error:      out.Error,
			StorageKey: keys[i],
			SizeBytes:  int64(len(files[i].Data)),
			CreatedAt:  now,
		}
	}
	if s.Repo != nil {
		if err := s.Repo.Create(ctx, records); err != nil {
			s.logger().ErrorContext(ctx, "import.history_failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}

	d, err := s.Drafts.Current(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return Result{Files: results, Draft: d}, nil
}

// History lists the user's previous imports, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if s.Repo == nil {
		return []Record{}, nil
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// archive stores the original bytes of every file. Failures are logged and
// leave the key empty; they never block the import.
func (s *Service) archive(ctx context.Context, userID string, files []importer.UploadedFile) []string {
	keys := make([]string, len(files))
	if s.Store == nil {
		return keys
	}
	for i, f := range files {
		obj, err := s.Store.Save(ctx, userID, f.FileName, bytes.NewReader(f.Data))
		if err != nil {
			s.logger().WarnContext(ctx, "import.archive_failed",
				slog.String("file", f.FileName),
				slog.String("error", err.Error()),
			)
			continue
		}
		keys[i] = obj.Key
	}
	return keys
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
