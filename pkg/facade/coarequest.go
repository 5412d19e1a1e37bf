package facade

import (
	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/packet"
)

// CoARequestOptions configures a CoA-Request build (RFC 3576). No attribute is mandatory
// beyond what the application supplies.
type CoARequestOptions struct {
	Attributes              map[string]interface{}
	UseMessageAuthenticator bool
}

// NewCoARequest builds a CoA-Request packet and computes its deterministic Request
// Authenticator, the same construction Accounting-Request uses (SPEC_FULL §4.D/§4.E;
// this fixes the upstream inconsistency recorded in SPEC_FULL §9's resolved open question).
func NewCoARequest(identifier uint8, dict *dictionary.Dictionary, secret []byte, opts CoARequestOptions) (*Request, error) {
	pkt := packet.New(packet.CodeCoARequest, identifier)
	if err := addAttributesByName(pkt, dict, opts.Attributes); err != nil {
		return nil, err
	}

	if opts.UseMessageAuthenticator {
		addMessageAuthenticatorPlaceholder(pkt)
	}
	if err := signDeterministicRequest(pkt, secret); err != nil {
		return nil, err
	}

	return newEncodedRequest(pkt), nil
}
