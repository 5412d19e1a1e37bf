// Package radius is the single-import facade over this module's component packages: pick a
// dictionary, build a Client, and send Access/Accounting/CoA/Disconnect requests (SPEC_FULL
// §2, §4.H). Applications needing finer control can import pkg/facade, pkg/packet, or
// pkg/dictionary directly.
package radius

import (
	"github.com/coldwrap/radius/pkg/client"
	"github.com/coldwrap/radius/pkg/dictionaries"
	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/facade"
	"github.com/coldwrap/radius/pkg/packet"
)

type (
	// Client sends RADIUS requests to a single server (pkg/client.Client).
	Client = client.Client
	// Option configures a Client at construction time.
	Option = client.Option
	// Packet is a decoded or under-construction RADIUS datagram.
	Packet = packet.Packet
	// Code is a RADIUS packet type code.
	Code = packet.Code
	// Dictionary resolves attribute names, codes, and vendors.
	Dictionary = dictionary.Dictionary
	// Statistics is a point-in-time snapshot of a Client's transport counters.
	Statistics = client.StatisticsSnapshot

	AccessRequestOptions      = facade.AccessRequestOptions
	AccountingRequestOptions  = facade.AccountingRequestOptions
	CoARequestOptions         = facade.CoARequestOptions
	DisconnectRequestOptions  = facade.DisconnectRequestOptions
	AuthProtocol              = facade.AuthProtocol
	AcctStatusType            = facade.AcctStatusType
)

// Packet codes, re-exported for callers that only import this package.
const (
	CodeAccessRequest      = packet.CodeAccessRequest
	CodeAccessAccept       = packet.CodeAccessAccept
	CodeAccessReject       = packet.CodeAccessReject
	CodeAccessChallenge    = packet.CodeAccessChallenge
	CodeAccountingRequest  = packet.CodeAccountingRequest
	CodeAccountingResponse = packet.CodeAccountingResponse
	CodeDisconnectRequest  = packet.CodeDisconnectRequest
	CodeDisconnectACK      = packet.CodeDisconnectACK
	CodeDisconnectNAK      = packet.CodeDisconnectNAK
	CodeCoARequest         = packet.CodeCoARequest
	CodeCoAAck             = packet.CodeCoAAck
	CodeCoANak             = packet.CodeCoANak
)

// Auth protocols an Access-Request can carry (facade.AuthProtocol).
const (
	AuthProtocolPAP      = facade.AuthProtocolPAP
	AuthProtocolCHAP     = facade.AuthProtocolCHAP
	AuthProtocolMSCHAPv2 = facade.AuthProtocolMSCHAPv2
	AuthProtocolEAP      = facade.AuthProtocolEAP
)

// Acct-Status-Type values (facade.AcctStatusType).
const (
	AcctStatusTypeStart = facade.AcctStatusTypeStart
	AcctStatusTypeStop  = facade.AcctStatusTypeStop
	AcctStatusTypeAlive = facade.AcctStatusTypeAlive
)

// Functional options, re-exported so callers importing only this package can configure a
// Client without a second import.
var (
	WithAddr                       = client.WithAddr
	WithSecret                     = client.WithSecret
	WithDictionary                 = client.WithDictionary
	WithTimeout                    = client.WithTimeout
	WithRetry                      = client.WithRetry
	WithUseMessageAuthenticator    = client.WithUseMessageAuthenticator
	WithVerifyMessageAuthenticator = client.WithVerifyMessageAuthenticator
	WithLogger                     = client.WithLogger
)

// NewClient builds a Client from opts.
func NewClient(opts ...Option) (*Client, error) {
	return client.New(opts...)
}

// NewDefaultDictionary builds the dictionary bundled with this module: the base RFC 2865/
// 2866/2869 attributes plus the Microsoft and WISPr vendor sets (pkg/dictionaries).
func NewDefaultDictionary() (*Dictionary, error) {
	return dictionaries.NewDefault()
}
