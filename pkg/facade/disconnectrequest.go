package facade

import (
	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/packet"
)

// DisconnectRequestOptions configures a Disconnect-Request build (RFC 3576). No attribute
// is mandatory beyond what the application supplies.
type DisconnectRequestOptions struct {
	Attributes              map[string]interface{}
	UseMessageAuthenticator bool
}

// NewDisconnectRequest builds a Disconnect-Request packet and computes its deterministic
// Request Authenticator, the same construction Accounting-Request and CoA-Request use
// (SPEC_FULL §4.D/§4.E).
func NewDisconnectRequest(identifier uint8, dict *dictionary.Dictionary, secret []byte, opts DisconnectRequestOptions) (*Request, error) {
	pkt := packet.New(packet.CodeDisconnectRequest, identifier)
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
