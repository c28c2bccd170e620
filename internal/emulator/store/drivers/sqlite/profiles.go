package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
)

type profilesRepo struct {
	q DBTX
}

const profileViewQuery = `
SELECT p.id, p.connection_id, p.idp_id, p.email, p.first_name, p.last_name,
       p.groups_json, p.raw_attrs_json, p.created_at,
       c.connection_type, c.organization_id
FROM profiles p
JOIN connections c ON c.id = p.connection_id`

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	groups := p.Groups
	if groups == nil {
		groups = []string{}
	}
	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encode groups: %w", err)
	}

	attrs := p.RawAttributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	attrsJSON, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("encode raw attributes: %w", err)
	}

	_, err = r.q.ExecContext(ctx,
		`INSERT INTO profiles (id, connection_id, idp_id, email, first_name, last_name, groups_json, raw_attrs_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.ConnectionID,
		p.IdpID,
		p.Email,
		mapOptionalString(p.FirstName),
		mapOptionalString(p.LastName),
		string(groupsJSON),
		string(attrsJSON),
		toMillis(p.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.ProfileView, error) {
	return scanProfileView(r.q.QueryRowContext(ctx, profileViewQuery+` WHERE p.id = ?`, id))
}

func (r *profilesRepo) GetProfileByConnection(ctx context.Context, connectionID string) (domain.ProfileView, error) {
	return scanProfileView(r.q.QueryRowContext(ctx,
		profileViewQuery+` WHERE p.connection_id = ? ORDER BY p.created_at, p.id LIMIT 1`,
		connectionID,
	))
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, connectionID, email string) (domain.ProfileView, error) {
	return scanProfileView(r.q.QueryRowContext(ctx,
		profileViewQuery+` WHERE p.connection_id = ? AND p.email = ? COLLATE NOCASE`,
		connectionID, email,
	))
}

func scanProfileView(row *sql.Row) (domain.ProfileView, error) {
	var (
		v                     domain.ProfileView
		first, last, org      sql.NullString
		groupsJSON, attrsJSON string
		createdAt             int64
	)

	err := row.Scan(
		&v.ID, &v.ConnectionID, &v.IdpID, &v.Email, &first, &last,
		&groupsJSON, &attrsJSON, &createdAt,
		&v.ConnectionType, &org,
	)
	if err != nil {
		return domain.ProfileView{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(groupsJSON), &v.Groups); err != nil {
		return domain.ProfileView{}, fmt.Errorf("decode groups of %s: %w", v.ID, err)
	}
	if err := json.Unmarshal([]byte(attrsJSON), &v.RawAttributes); err != nil {
		return domain.ProfileView{}, fmt.Errorf("decode raw attributes of %s: %w", v.ID, err)
	}

	v.FirstName = mapNullStringPtr(first)
	v.LastName = mapNullStringPtr(last)
	v.OrganizationID = mapNullStringPtr(org)
	v.CreatedAt = fromMillis(createdAt)
	return v, nil
}
