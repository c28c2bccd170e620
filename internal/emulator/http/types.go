package http

import (
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/pkg/workos"
)

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the dependencies checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ConnectionList is the body of GET /connections.
type ConnectionList struct {
	Object       string              `json:"object"`
	Data         []workos.Connection `json:"data"`
	ListMetadata ListMetadata        `json:"list_metadata"`
}

// ListMetadata carries pagination cursors. The emulator returns every
// connection in one page, so both are always null.
type ListMetadata struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

// timestampLayout is the API's timestamp format, e.g. 2021-06-25T19:07:33.155Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func toProfileResponse(p domain.ProfileView) workos.Profile {
	return workos.Profile{
		Object:         "profile",
		ID:             p.ID,
		IdpID:          p.IdpID,
		ConnectionID:   p.ConnectionID,
		ConnectionType: workos.ConnectionType(p.ConnectionType),
		Email:          p.Email,
		OrganizationID: p.OrganizationID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Groups:         p.Groups,
		RawAttributes:  p.RawAttributes,
	}
}

func toConnectionResponse(c domain.Connection) workos.Connection {
	domains := make([]workos.ConnectionDomain, len(c.Domains))
	for i, d := range c.Domains {
		domains[i] = workos.ConnectionDomain{
			ID:     d.ID,
			Object: "connection_domain",
			Domain: d.Domain,
		}
	}

	return workos.Connection{
		Object:         "connection",
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		State:          workos.ConnectionState(c.State),
		ConnectionType: workos.ConnectionType(c.ConnectionType),
		Domains:        domains,
		CreatedAt:      formatTimestamp(c.CreatedAt),
		UpdatedAt:      formatTimestamp(c.UpdatedAt),
	}
}
