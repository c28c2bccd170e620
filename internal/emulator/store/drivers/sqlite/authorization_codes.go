package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
)

type authorizationCodesRepo struct {
	q DBTX
}

func (r *authorizationCodesRepo) CreateAuthorizationCode(ctx context.Context, code domain.AuthorizationCode) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO authorization_codes (id, code_hash, client_id, profile_id, redirect_uri, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		code.ID,
		code.CodeHash,
		code.ClientID,
		code.ProfileID,
		code.RedirectURI,
		toMillis(code.ExpiresAt),
		toMillis(code.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *authorizationCodesRepo) GetAuthorizationCodeByHash(ctx context.Context, hash string) (domain.AuthorizationCode, error) {
	var (
		c                    domain.AuthorizationCode
		expiresAt, createdAt int64
		usedAt               sql.NullInt64
	)

	err := r.q.QueryRowContext(ctx,
		`SELECT id, code_hash, client_id, profile_id, redirect_uri, expires_at, used_at, created_at
		 FROM authorization_codes WHERE code_hash = ?`,
		hash,
	).Scan(&c.ID, &c.CodeHash, &c.ClientID, &c.ProfileID, &c.RedirectURI, &expiresAt, &usedAt, &createdAt)
	if err != nil {
		return domain.AuthorizationCode{}, mapNotFound(err)
	}

	c.ExpiresAt = fromMillis(expiresAt)
	c.UsedAt = mapNullMillisPtr(usedAt)
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

func (r *authorizationCodesRepo) MarkAuthorizationCodeUsed(ctx context.Context, id string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE authorization_codes SET used_at = ? WHERE id = ? AND used_at IS NULL`,
		toMillis(at), id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *authorizationCodesRepo) DeleteExpiredAuthorizationCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM authorization_codes WHERE expires_at < ?`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
