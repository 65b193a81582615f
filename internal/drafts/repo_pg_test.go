package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-importer/internal/resume"
)

var draftColumns = []string{"id", "user_id", "data", "version", "created_at", "updated_at"}

func TestPGRepoGetDecodesResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	mock.ExpectQuery("SELECT id, user_id, data, version, created_at, updated_at\\s+FROM resume_drafts").
		WithArgs("guest:1").
		WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
			"draft-1", "guest:1", []byte(`{"basics":{"name":"Ada Lovelace","email":"ada@example.com"}}`), 3, created, updated,
		))

	repo := &PGRepo{DB: db}
	d, err := repo.Get(context.Background(), "guest:1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.ID != "draft-1" || d.Version != 3 || !d.UpdatedAt.Equal(updated) {
		t.Fatalf("unexpected draft %+v", d)
	}
	if d.Resume.Basics.Name != "Ada Lovelace" || d.Resume.Basics.Email != "ada@example.com" {
		t.Fatalf("unexpected basics %+v", d.Resume.Basics)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM resume_drafts").
		WithArgs("guest:none").
		WillReturnRows(sqlmock.NewRows(draftColumns))

	_, err = (&PGRepo{DB: db}).Get(context.Background(), "guest:none")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	created := now.Add(-24 * time.Hour)
	d := Draft{ID: "new-id", UserID: "guest:1", Resume: resume.Empty(), UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO resume_drafts .* ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs("new-id", "guest:1", sqlmock.AnyArg(), now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "created_at"}).AddRow("existing-id", 4, created))

	saved, err := (&PGRepo{DB: db}).Save(context.Background(), d)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "existing-id" || saved.Version != 4 || !saved.CreatedAt.Equal(created) {
		t.Fatalf("unexpected saved draft %+v", saved)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
