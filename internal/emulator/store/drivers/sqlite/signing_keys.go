package sqlite

import (
	"context"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
)

type signingKeysRepo struct {
	q DBTX
}

func (r *signingKeysRepo) CreateSigningKey(ctx context.Context, key domain.SigningKey) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO signing_keys (kid, algorithm, private_key_encrypted, created_at) VALUES (?, ?, ?, ?)`,
		key.Kid, key.Algorithm, key.PrivateKeyEncrypted, toMillis(key.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *signingKeysRepo) ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT kid, algorithm, private_key_encrypted, created_at FROM signing_keys ORDER BY created_at, kid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.SigningKey
	for rows.Next() {
		var (
			k         domain.SigningKey
			createdAt int64
		)
		if err := rows.Scan(&k.Kid, &k.Algorithm, &k.PrivateKeyEncrypted, &createdAt); err != nil {
			return nil, err
		}
		k.CreatedAt = fromMillis(createdAt)
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
