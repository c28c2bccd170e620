package workos

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production WorkOS API endpoint.
const DefaultBaseURL = "https://api.workos.com"

// Doer sends a single HTTP request and returns its response. *http.Client
// satisfies it; tests and callers may plug in anything else.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WorkOS holds the credentials and transport settings shared by every API
// client in this package.
type WorkOS struct {
	// SecretKey is sent as client_secret when exchanging authorization codes.
	SecretKey string

	// BaseURL is the API root without a trailing slash.
	BaseURL string

	// HTTPClient performs the requests. Defaults to an *http.Client with a
	// 10 second timeout.
	HTTPClient Doer

	// Limiter, when set, is waited on before every request so a process never
	// exceeds its own share of the API rate limit. Nil means unlimited.
	Limiter *rate.Limiter

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	apiKey *string
}

// New creates a configuration holder pointing at the production API.
func New(secretKey string) *WorkOS {
	return NewWithURL(secretKey, DefaultBaseURL)
}

// NewWithURL creates a configuration holder pointing at baseURL. This is
// mostly useful for tests and the local emulator.
func NewWithURL(secretKey, baseURL string) *WorkOS {
	return &WorkOS{
		SecretKey: secretKey,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIKey returns the bearer key used for management endpoints such as
// connections. It fails with a *ConfigurationError when no key was set.
func (w *WorkOS) APIKey() (string, error) {
	if w.apiKey != nil {
		return *w.apiKey, nil
	}

	return "", &ConfigurationError{Message: "API key should be set"}
}

// SetAPIKey stores the bearer key, replacing any previous one.
func (w *WorkOS) SetAPIKey(key string) {
	w.apiKey = &key
}

// url builds a complete URL by appending the path to the base URL.
func (w *WorkOS) url(path string) string {
	return w.BaseURL + path
}
