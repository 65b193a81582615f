package drafts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-importer/internal/resume"
)

// Service owns the draft résumé of each user and applies imported partials
// to it.
type Service struct {
	Repo  Repo
	Now   func() time.Time
	locks keyedMutex
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Current returns the user's draft, or an unsaved blank one.
func (s *Service) Current(ctx context.Context, userID string) (Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return Draft{}, ErrInvalidInput
	}
	d, err := s.Repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Draft{UserID: userID, Resume: resume.Empty()}, nil
	}
	return d, err
}

// Replace stores r as the user's draft.
func (s *Service) Replace(ctx context.Context, userID string, r resume.Resume) (Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return Draft{}, ErrInvalidInput
	}
	unlock := s.locks.Lock(userID)
	defer unlock()

	current, err := s.Current(ctx, userID)
	if err != nil {
		return Draft{}, err
	}
	return s.save(ctx, current, r)
}

// ApplyPartial merges p into the user's draft. Calls for the same user are
// serialised so concurrent imports never overwrite each other. An empty
// partial leaves the draft untouched and is not persisted.
func (s *Service) ApplyPartial(ctx context.Context, userID string, p resume.Partial) (Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return Draft{}, ErrInvalidInput
	}
	unlock := s.locks.Lock(userID)
	defer unlock()

	current, err := s.Current(ctx, userID)
	if err != nil {
		return Draft{}, err
	}
	if p.IsEmpty() {
		return current, nil
	}
	return s.save(ctx, current, resume.Merge(current.Resume, p))
}

func (s *Service) save(ctx context.Context, current Draft, r resume.Resume) (Draft, error) {
	d := current
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Resume = r
	d.UpdatedAt = s.now()
	return s.Repo.Save(ctx, d)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
