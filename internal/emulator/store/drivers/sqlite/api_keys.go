package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
)

type apiKeysRepo struct {
	q DBTX
}

func (r *apiKeysRepo) CreateAPIKey(ctx context.Context, k domain.APIKey) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO api_keys (id, name, key_hash, created_at) VALUES (?, ?, ?, ?)`,
		k.ID, k.Name, k.KeyHash, toMillis(k.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *apiKeysRepo) ListAPIKeys(ctx context.Context) ([]domain.APIKey, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, key_hash, created_at, last_used_at FROM api_keys ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.APIKey
	for rows.Next() {
		var (
			k         domain.APIKey
			createdAt int64
			lastUsed  sql.NullInt64
		)
		if err := rows.Scan(&k.ID, &k.Name, &k.KeyHash, &createdAt, &lastUsed); err != nil {
			return nil, err
		}
		k.CreatedAt = fromMillis(createdAt)
		k.LastUsedAt = mapNullMillisPtr(lastUsed)
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *apiKeysRepo) TouchAPIKey(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `UPDATE api_keys SET last_used_at = ? WHERE id = ?`, toMillis(at), id)
	return err
}

func (r *apiKeysRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM api_keys`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
