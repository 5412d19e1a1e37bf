package client

import "errors"

var (
	// ErrTransportTimeout is returned once every retry attempt for an exchange has timed out.
	ErrTransportTimeout = errors.New("client: transport timeout")
	// ErrBadResponseAuthenticator is returned when a decoded response's authenticator (or,
	// when enabled, its Message-Authenticator) fails to verify against the shared secret.
	ErrBadResponseAuthenticator = errors.New("client: bad response authenticator")
	// ErrMissingConfig is returned by New when a required option was not supplied.
	ErrMissingConfig = errors.New("client: missing required configuration")
)
