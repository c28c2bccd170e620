package service

import "errors"

// Errors returned by the services. The OAuth flavoured values double as the
// "error" code written on the token endpoint.
var (
	ErrInvalidRequest       = errors.New("invalid_request")
	ErrInvalidRedirectURI   = errors.New("invalid_redirect_uri")
	ErrInvalidClient        = errors.New("invalid_client")
	ErrInvalidGrant         = errors.New("invalid_grant")
	ErrUnsupportedGrantType = errors.New("unsupported_grant_type")

	ErrConnectionNotFound = errors.New("connection not found")
	ErrConnectionInactive = errors.New("connection is not active")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidAPIKey      = errors.New("invalid api key")
)
