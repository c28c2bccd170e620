package domain

// SeedData is the content of a seed file: the connections, and the profiles
// that sign in through them, used to populate an empty emulator.
type SeedData struct {
	Connections []SeedConnection `yaml:"connections"`
}

// SeedConnection describes one connection. An empty ID is generated.
type SeedConnection struct {
	ID             string        `yaml:"id"`
	OrganizationID string        `yaml:"organization_id"`
	Name           string        `yaml:"name"`
	ConnectionType string        `yaml:"connection_type"`
	State          string        `yaml:"state"`
	Domains        []string      `yaml:"domains"`
	Profiles       []SeedProfile `yaml:"profiles"`
}

// SeedProfile describes a user of a seeded connection.
type SeedProfile struct {
	ID            string         `yaml:"id"`
	IdpID         string         `yaml:"idp_id"`
	Email         string         `yaml:"email"`
	FirstName     string         `yaml:"first_name"`
	LastName      string         `yaml:"last_name"`
	Groups        []string       `yaml:"groups"`
	RawAttributes map[string]any `yaml:"raw_attributes"`
}
