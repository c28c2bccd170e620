package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
)

type connectionsRepo struct {
	q DBTX
}

const connectionColumns = `id, organization_id, name, connection_type, state, created_at, updated_at`

func (r *connectionsRepo) CreateConnection(ctx context.Context, c domain.Connection) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO connections (`+connectionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		mapOptionalString(c.OrganizationID),
		c.Name,
		c.ConnectionType,
		c.State,
		toMillis(c.CreatedAt),
		toMillis(c.UpdatedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}

	for _, d := range c.Domains {
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO connection_domains (id, connection_id, domain) VALUES (?, ?, ?)`,
			d.ID, c.ID, d.Domain,
		)
		if err != nil {
			return fmt.Errorf("insert domain %q: %w", d.Domain, mapConstraint(err))
		}
	}
	return nil
}

func (r *connectionsRepo) GetConnectionByID(ctx context.Context, id string) (domain.Connection, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+connectionColumns+` FROM connections WHERE id = ?`, id)
	return r.scanWithDomains(ctx, row)
}

func (r *connectionsRepo) GetActiveConnectionByOrganization(ctx context.Context, organizationID string) (domain.Connection, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections
		 WHERE organization_id = ? AND state = ?
		 ORDER BY created_at, id LIMIT 1`,
		organizationID, domain.ConnectionStateActive,
	)
	return r.scanWithDomains(ctx, row)
}

func (r *connectionsRepo) GetActiveConnectionByType(ctx context.Context, connectionType string) (domain.Connection, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections
		 WHERE connection_type = ? AND state = ?
		 ORDER BY created_at, id LIMIT 1`,
		connectionType, domain.ConnectionStateActive,
	)
	return r.scanWithDomains(ctx, row)
}

func (r *connectionsRepo) ListConnections(ctx context.Context) ([]domain.Connection, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+connectionColumns+` FROM connections ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Connection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].Domains, err = r.listDomains(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *connectionsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM connections`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *connectionsRepo) scanWithDomains(ctx context.Context, row *sql.Row) (domain.Connection, error) {
	c, err := scanConnection(row)
	if err != nil {
		return domain.Connection{}, mapNotFound(err)
	}

	c.Domains, err = r.listDomains(ctx, c.ID)
	if err != nil {
		return domain.Connection{}, err
	}
	return c, nil
}

func (r *connectionsRepo) listDomains(ctx context.Context, connectionID string) ([]domain.ConnectionDomain, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, connection_id, domain FROM connection_domains WHERE connection_id = ? ORDER BY domain`,
		connectionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	domains := []domain.ConnectionDomain{}
	for rows.Next() {
		var d domain.ConnectionDomain
		if err := rows.Scan(&d.ID, &d.ConnectionID, &d.Domain); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConnection(s scanner) (domain.Connection, error) {
	var (
		c                    domain.Connection
		org                  sql.NullString
		createdAt, updatedAt int64
	)
	if err := s.Scan(&c.ID, &org, &c.Name, &c.ConnectionType, &c.State, &createdAt, &updatedAt); err != nil {
		return domain.Connection{}, err
	}

	c.OrganizationID = mapNullStringPtr(org)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}
