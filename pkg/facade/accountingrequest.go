package facade

import (
	"fmt"

	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/packet"
)

const attrAcctStatusType = 40

// AcctStatusType is the enumerated value of the mandatory Acct-Status-Type attribute.
type AcctStatusType uint32

const (
	AcctStatusTypeStart AcctStatusType = 1
	AcctStatusTypeStop  AcctStatusType = 2
	AcctStatusTypeAlive AcctStatusType = 3
)

// AccountingRequestOptions configures an Accounting-Request build (RFC 2866).
type AccountingRequestOptions struct {
	UserName                string
	StatusType              AcctStatusType
	Attributes              map[string]interface{}
	UseMessageAuthenticator bool
}

// NewAccountingRequest builds an Accounting-Request packet and computes its deterministic
// Request Authenticator (SPEC_FULL §4.D/§4.E). It fails with ErrMissingAttribute if
// UserName is empty or StatusType is outside 1..15.
func NewAccountingRequest(identifier uint8, dict *dictionary.Dictionary, secret []byte, opts AccountingRequestOptions) (*Request, error) {
	if opts.UserName == "" {
		return nil, fmt.Errorf("%w: User-Name is required", ErrMissingAttribute)
	}
	if opts.StatusType < 1 || opts.StatusType > 15 {
		return nil, fmt.Errorf("%w: Acct-Status-Type must be 1..15, got %d", ErrMissingAttribute, opts.StatusType)
	}

	pkt := packet.New(packet.CodeAccountingRequest, identifier)
	pkt.Add(attrUserName, []byte(opts.UserName))
	pkt.Add(attrAcctStatusType, encodeUint32(uint32(opts.StatusType)))
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

func encodeUint32(v uint32) []byte {
	return []byte{byte(v >> 24 & 0xFF), byte(v >> 16 & 0xFF), byte(v >> 8 & 0xFF), byte(v & 0xFF)}
}
