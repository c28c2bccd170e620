package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
)

type ConnectionService struct {
	Store store.Store
}

// GetConnection returns a connection by id, or ErrConnectionNotFound.
func (s *ConnectionService) GetConnection(ctx context.Context, id string) (domain.Connection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Connection{}, ErrConnectionNotFound
	}

	c, err := s.Store.Connections().GetConnectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Connection{}, ErrConnectionNotFound
		}
		return domain.Connection{}, err
	}
	return c, nil
}

// ListConnections returns every connection, optionally narrowed to one
// organization or connection type.
func (s *ConnectionService) ListConnections(ctx context.Context, organizationID, connectionType string) ([]domain.Connection, error) {
	all, err := s.Store.Connections().ListConnections(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Connection, 0, len(all))
	for _, c := range all {
		if organizationID != "" && (c.OrganizationID == nil || *c.OrganizationID != organizationID) {
			continue
		}
		if connectionType != "" && c.ConnectionType != connectionType {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
