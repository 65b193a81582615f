package imports

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts all records in one transaction.
func (r *PGRepo) Create(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	const query = `
INSERT INTO resume_imports (
    id,
    user_id,
    file_name,
    media_type,
    format,
    status,
    error,
    storage_key,
    size_bytes,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, query,
			rec.ID,
			rec.UserID,
			rec.FileName,
			rec.MediaType,
			rec.Format,
			rec.Status,
			nullString(rec.Error),
			nullString(rec.StorageKey),
			rec.SizeBytes,
			rec.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert import %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// ListByUser lists records ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, file_name, media_type, format, status, error, storage_key, size_bytes, created_at
FROM resume_imports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var (
			rec        Record
			errText    sql.NullString
			storageKey sql.NullString
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FileName,
			&rec.MediaType,
			&rec.Format,
			&rec.Status,
			&errText,
			&storageKey,
			&rec.SizeBytes,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Error = errText.String
		rec.StorageKey = storageKey.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
