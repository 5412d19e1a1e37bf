package facade

import "github.com/coldwrap/radius/pkg/packet"

// State is a position in an outbound request's lifecycle (SPEC_FULL §4.E):
//
//	Built -> Encoded(auth set) -> InFlight -> {Responded(verified) | Responded(bad-auth) | TimedOut}
//
// Retries re-enter InFlight without leaving Encoded: identifier and authenticator are
// generated once by a facade constructor and reused across every transmit attempt.
type State int

const (
	StateBuilt State = iota
	StateEncoded
	StateInFlight
	StateResponded
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "Built"
	case StateEncoded:
		return "Encoded"
	case StateInFlight:
		return "InFlight"
	case StateResponded:
		return "Responded"
	case StateTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Request wraps a packet under construction through its state machine. Every packet-type
// facade constructor in this package returns one with its authenticator already computed,
// i.e. already past Built into Encoded — the raw "just allocated, no authenticator" Built
// state exists only transiently inside those constructors.
type Request struct {
	Packet *packet.Packet
	state  State
}

func newEncodedRequest(pkt *packet.Packet) *Request {
	return &Request{Packet: pkt, state: StateEncoded}
}

// State returns the request's current lifecycle position.
func (r *Request) State() State {
	return r.state
}

// MarkInFlight transitions the request into InFlight for a transmit attempt. Calling it
// again (on retry) is a no-op on Packet, Identifier, or Authenticator.
func (r *Request) MarkInFlight() {
	r.state = StateInFlight
}

// MarkResponded transitions the request to Responded once a reply has been parsed and its
// authenticator checked, regardless of whether verification succeeded.
func (r *Request) MarkResponded() {
	r.state = StateResponded
}

// MarkTimedOut transitions the request to TimedOut once all retries are exhausted.
func (r *Request) MarkTimedOut() {
	r.state = StateTimedOut
}
