package facade

import (
	"fmt"

	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

// AuthProtocol classifies the credential an Access-Request carries (SPEC_FULL §4.D/§4.E).
type AuthProtocol int

const (
	AuthProtocolUnknown AuthProtocol = iota
	AuthProtocolPAP
	AuthProtocolCHAP
	AuthProtocolMSCHAPv2
	AuthProtocolEAP
)

func (p AuthProtocol) String() string {
	switch p {
	case AuthProtocolPAP:
		return "PAP"
	case AuthProtocolCHAP:
		return "CHAP"
	case AuthProtocolMSCHAPv2:
		return "MS-CHAPv2"
	case AuthProtocolEAP:
		return "EAP"
	default:
		return "Unknown"
	}
}

const (
	attrUserName          = 1
	attrUserPassword      = 2
	attrCHAPPassword      = 3
	attrCHAPChallenge     = 60
	msVendorID            = 311
	msCHAPChallengeSub    = 11
	msCHAP2ResponseSub    = 25
)

// AccessRequestOptions configures an Access-Request build. Attributes supplies additional
// attributes (e.g. NAS-IP-Address, Service-Type) keyed by dictionary name, per SPEC_FULL
// §4.H's map[string]interface{} client surface.
type AccessRequestOptions struct {
	UserName                string
	Password                string
	AuthProtocol            AuthProtocol
	Attributes              map[string]interface{}
	UseMessageAuthenticator bool
}

// NewAccessRequest builds an Access-Request packet, materializing the PAP or CHAP
// credential attributes from opts.Password and computing its Request Authenticator and
// (if enabled) Message-Authenticator. It fails with ErrMissingCredentials if UserName is
// empty or no recognized auth protocol/password pair is supplied, and with
// ErrUnsupportedAuthProtocol for MS-CHAPv2/EAP (this library classifies, but does not
// materialize or verify, those protocols per SPEC_FULL §4.D).
func NewAccessRequest(identifier uint8, dict *dictionary.Dictionary, secret []byte, opts AccessRequestOptions) (*Request, error) {
	if opts.UserName == "" {
		return nil, fmt.Errorf("%w: User-Name is required", ErrMissingCredentials)
	}

	pkt := packet.New(packet.CodeAccessRequest, identifier)
	pkt.Add(attrUserName, []byte(opts.UserName))
	if err := addAttributesByName(pkt, dict, opts.Attributes); err != nil {
		return nil, err
	}

	auth, err := radauth.GenerateRequestAuthenticator()
	if err != nil {
		return nil, err
	}
	pkt.Authenticator = auth

	switch opts.AuthProtocol {
	case AuthProtocolPAP:
		if opts.Password == "" {
			return nil, fmt.Errorf("%w: PAP requires a password", ErrMissingCredentials)
		}
		pkt.Add(attrUserPassword, radauth.EncodePAP(opts.Password, secret, auth))

	case AuthProtocolCHAP:
		if opts.Password == "" {
			return nil, fmt.Errorf("%w: CHAP requires a password", ErrMissingCredentials)
		}
		challenge, err := radauth.GenerateCHAPChallenge()
		if err != nil {
			return nil, err
		}
		chapID, err := radauth.GenerateCHAPIdentifier()
		if err != nil {
			return nil, err
		}
		response := radauth.GenerateCHAPResponse(chapID, opts.Password, challenge)
		pkt.Add(attrCHAPPassword, response)
		pkt.Add(attrCHAPChallenge, challenge)

	case AuthProtocolMSCHAPv2, AuthProtocolEAP:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAuthProtocol, opts.AuthProtocol)

	default:
		return nil, fmt.Errorf("%w: no recognized auth protocol for %q", ErrMissingCredentials, opts.UserName)
	}

	if opts.UseMessageAuthenticator {
		addMessageAuthenticatorPlaceholder(pkt)
		if err := signAccessRequest(pkt, secret); err != nil {
			return nil, err
		}
	}

	return newEncodedRequest(pkt), nil
}

// ClassifyAuthProtocol inspects a decoded Access-Request's credential attributes and
// reports which auth protocol it carries, per SPEC_FULL §4.E's decode-side facade
// behavior. It fails with ErrMissingCredentials if no recognized credential is present.
func ClassifyAuthProtocol(pkt *packet.Packet) (AuthProtocol, error) {
	if pkt.GetAttribute(attrUserPassword) != nil {
		return AuthProtocolPAP, nil
	}
	if pkt.GetAttribute(attrCHAPPassword) != nil {
		return AuthProtocolCHAP, nil
	}
	for _, a := range pkt.Attributes {
		if a.VendorID == msVendorID && (a.Code == msCHAPChallengeSub || a.Code == msCHAP2ResponseSub) {
			return AuthProtocolMSCHAPv2, nil
		}
	}
	if pkt.GetAttribute(79) != nil { // EAP-Message
		return AuthProtocolEAP, nil
	}
	return AuthProtocolUnknown, fmt.Errorf("%w: no recognized credential attributes", ErrMissingCredentials)
}

// VerifyPassword is not implemented for MS-CHAPv2/EAP per SPEC_FULL §4.D; PAP and CHAP are
// verified directly via radauth.DecodePAP/CheckCHAPPassword by the caller, which already
// has the cleartext or obfuscated value in hand.
func VerifyPassword(protocol AuthProtocol) error {
	switch protocol {
	case AuthProtocolMSCHAPv2, AuthProtocolEAP:
		return fmt.Errorf("%w: %s", ErrUnsupportedAuthProtocol, protocol)
	default:
		return nil
	}
}
