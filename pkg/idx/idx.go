package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a prefixed identifier in the WorkOS style: "<prefix>_<ULID>", for
// example "conn_01E4ZCR3C56J083X43JQXF3JK5".
type ID string

// Zero represents the zero value ID, don't use this unless its a placeholder.
const Zero ID = ""

// Known prefixes.
const (
	PrefixProfile      = "prof"
	PrefixConnection   = "conn"
	PrefixOrganization = "org"
	PrefixDomain       = "conn_domain"
)

// ErrInvalid reports a malformed identifier.
var ErrInvalid = errors.New("idx: invalid id")

var (
	globalOnce sync.Once
	global     *generator
)

// generator is a tool to safely generate ULIDs concurrently using a monotonic
// source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy)
}

func initGlobal() {
	src := ulid.Monotonic(rand.Reader, 0) // Max Monotonic Window
	global = &generator{entropy: src}
}

// New returns a new ID with the given prefix using the current time in UTC.
// An empty prefix yields a bare ULID.
func New(prefix string) ID {
	return NewAt(prefix, time.Now().UTC())
}

// NewAt generates an ID at the provided time (UTC), useful for tests.
func NewAt(prefix string, t time.Time) ID {
	globalOnce.Do(initGlobal)

	u := global.newAt(t)
	if prefix == "" {
		return ID(u.String())
	}
	return ID(prefix + "_" + u.String())
}

// Parse validates s as "<prefix>_<ULID>" with the expected prefix. An empty
// expected prefix accepts any prefix, including none.
func Parse(s, prefix string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	gotPrefix, raw := split(s)
	if prefix != "" && gotPrefix != prefix {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(raw); err != nil {
		return Zero, ErrInvalid
	}

	return ID(s), nil
}

// MustParse parses or panics. Useful for hard-coded IDs in tests.
func MustParse(s, prefix string) ID {
	id, err := Parse(s, prefix)
	if err != nil {
		// Panic here so we don't put the program into an unknown state
		panic(err)
	}
	return id
}

// split cuts at the last underscore so multi-part prefixes such as
// "conn_domain" stay intact.
func split(s string) (prefix, raw string) {
	i := strings.LastIndexByte(s, '_')
	if i < 0 {
		return "", s
	}
	return s[:i], s[i+1:]
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Prefix returns the part before the ULID, or "" for bare ULIDs.
func (id ID) Prefix() string {
	p, _ := split(id.String())
	return p
}

// Time extracts the embedded UTC timestamp from the ID.
// If the ID is invalid or zero, it returns the zero time.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	_, raw := split(id.String())
	u, err := ulid.ParseStrict(raw)
	if err != nil {
		return time.Time{}
	}

	// ULID time component is in ms since epoch.
	return ulid.Time(u.Time()).UTC()
}
