package facade

import "errors"

var (
	// ErrMissingCredentials is returned when an Access-Request carries no recognized
	// authentication attributes (no PAP password, no CHAP password+challenge).
	ErrMissingCredentials = errors.New("facade: missing credentials")
	// ErrUnsupportedAuthProtocol is returned when verification is requested for an auth
	// protocol this library classifies but does not verify (MS-CHAPv2, EAP).
	ErrUnsupportedAuthProtocol = errors.New("facade: unsupported auth protocol")
	// ErrMissingAttribute is returned when a packet-type-specific mandatory attribute
	// (e.g. Acct-Status-Type) is absent from the caller-supplied attribute set.
	ErrMissingAttribute = errors.New("facade: missing mandatory attribute")
)
