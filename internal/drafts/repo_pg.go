package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The résumé is stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Draft, error) {
	const query = `
SELECT id, user_id, data, version, created_at, updated_at
FROM resume_drafts
WHERE user_id = $1`
	var (
		d   Draft
		raw []byte
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&d.ID,
		&d.UserID,
		&raw,
		&d.Version,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	if err := json.Unmarshal(raw, &d.Resume); err != nil {
		return Draft{}, fmt.Errorf("decode draft %s: %w", d.ID, err)
	}
	return d, nil
}

func (r *PGRepo) Save(ctx context.Context, d Draft) (Draft, error) {
	const query = `
INSERT INTO resume_drafts (id, user_id, data, version, created_at, updated_at)
VALUES ($1, $2, $3, 1, $4, $4)
ON CONFLICT (user_id) DO UPDATE
SET data = EXCLUDED.data,
    version = resume_drafts.version + 1,
    updated_at = EXCLUDED.updated_at
RETURNING id, version, created_at`

	raw, err := json.Marshal(d.Resume)
	if err != nil {
		return Draft{}, fmt.Errorf("encode draft: %w", err)
	}
	err = r.DB.QueryRowContext(ctx, query, d.ID, d.UserID, raw, d.UpdatedAt).Scan(
		&d.ID,
		&d.Version,
		&d.CreatedAt,
	)
	if err != nil {
		return Draft{}, err
	}
	return d, nil
}
