// Package client implements the RADIUS client facade (SPEC_FULL §4.F/§4.H): a functional-
// options Client that drives pkg/facade's packet builders through a per-exchange UDP
// Transport, verifying the response authenticator and (when enabled) the Message-
// Authenticator before returning the decoded reply.
package client

import (
	"fmt"
	"time"

	"github.com/coldwrap/radius/pkg/dictionaries"
	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/facade"
	"github.com/coldwrap/radius/pkg/log"
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

// Client sends Access-Request, Accounting-Request, CoA-Request, and Disconnect-Request
// packets to a single RADIUS server and validates their replies.
type Client struct {
	cfg       config
	transport *Transport
	ids       *IdentifierCounter
}

// New builds a Client from opts. WithAddr and WithSecret are required; every other option
// has a default (see the Option doc comments).
func New(opts ...Option) (*Client, error) {
	cfg := config{
		timeout:                 3 * time.Second,
		retryCount:              1,
		useMessageAuthenticator: true,
		verifyMessageAuth:       true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.addr == "" {
		return nil, fmt.Errorf("%w: address", ErrMissingConfig)
	}
	if len(cfg.secret) == 0 {
		return nil, fmt.Errorf("%w: shared secret", ErrMissingConfig)
	}
	if cfg.dict == nil {
		dict, err := dictionaries.NewDefault()
		if err != nil {
			return nil, fmt.Errorf("client: build default dictionary: %w", err)
		}
		cfg.dict = dict
	}
	if cfg.logger == nil {
		cfg.logger = log.NewDefaultLogger()
	}

	return &Client{
		cfg:       cfg,
		transport: NewTransport(cfg.addr, cfg.timeout, cfg.retryCount, cfg.logger),
		ids:       NewIdentifierCounter(),
	}, nil
}

// Dictionary returns the dictionary the client resolves attribute names against.
func (c *Client) Dictionary() *dictionary.Dictionary {
	return c.cfg.dict
}

// Statistics returns a snapshot of the client's transport counters.
func (c *Client) Statistics() StatisticsSnapshot {
	return c.transport.Statistics()
}

// AccessRequest sends an RFC 2865 Access-Request and returns the decoded Access-Accept,
// Access-Reject, or Access-Challenge.
func (c *Client) AccessRequest(opts facade.AccessRequestOptions) (*packet.Packet, error) {
	opts.UseMessageAuthenticator = c.cfg.useMessageAuthenticator
	req, err := facade.NewAccessRequest(c.ids.Next(), c.cfg.dict, c.cfg.secret, opts)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

// AccountingRequest sends an RFC 2866 Accounting-Request and returns the decoded
// Accounting-Response.
func (c *Client) AccountingRequest(opts facade.AccountingRequestOptions) (*packet.Packet, error) {
	opts.UseMessageAuthenticator = c.cfg.useMessageAuthenticator
	req, err := facade.NewAccountingRequest(c.ids.Next(), c.cfg.dict, c.cfg.secret, opts)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

// CoA sends an RFC 3576 CoA-Request and returns the decoded CoA-ACK or CoA-NAK.
func (c *Client) CoA(opts facade.CoARequestOptions) (*packet.Packet, error) {
	opts.UseMessageAuthenticator = c.cfg.useMessageAuthenticator
	req, err := facade.NewCoARequest(c.ids.Next(), c.cfg.dict, c.cfg.secret, opts)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

// Disconnect sends an RFC 3576 Disconnect-Request and returns the decoded Disconnect-ACK or
// Disconnect-NAK.
func (c *Client) Disconnect(opts facade.DisconnectRequestOptions) (*packet.Packet, error) {
	opts.UseMessageAuthenticator = c.cfg.useMessageAuthenticator
	req, err := facade.NewDisconnectRequest(c.ids.Next(), c.cfg.dict, c.cfg.secret, opts)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

// exchange encodes req, drives it through the transport, and validates the reply's
// authenticator and (if enabled) Message-Authenticator before returning it.
func (c *Client) exchange(req *facade.Request) (*packet.Packet, error) {
	reqBuf, err := req.Packet.Encode()
	if err != nil {
		return nil, fmt.Errorf("client: encode request: %w", err)
	}

	req.MarkInFlight()
	respBuf, err := c.transport.Exchange(reqBuf)
	if err != nil {
		req.MarkTimedOut()
		return nil, err
	}

	resp, err := packet.DecodeResponse(respBuf, req.Packet, c.cfg.dict)
	if err != nil {
		req.MarkResponded()
		return nil, fmt.Errorf("client: decode response: %w", err)
	}

	expectedAuth := radauth.CalculateResponseAuthenticator(
		uint8(resp.Code), resp.Identifier, uint16(len(respBuf)),
		req.Packet.Authenticator, respBuf[packet.HeaderLength:], c.cfg.secret)
	receivedAuth := radauth.Authenticator(resp.Authenticator)
	if !expectedAuth.Equal(receivedAuth) {
		req.MarkResponded()
		c.cfg.logger.Errorf("client: bad response authenticator from %s (id %d): want %s got %s",
			c.cfg.addr, resp.Identifier, expectedAuth, receivedAuth)
		return nil, ErrBadResponseAuthenticator
	}

	if c.cfg.verifyMessageAuth {
		if attr := resp.GetAttribute(packet.AttributeTypeMessageAuthenticator); attr != nil {
			var received [radauth.MessageAuthenticatorLength]byte
			copy(received[:], attr.Data)
			ok, err := radauth.ValidateMessageAuthenticator(respBuf, c.cfg.secret, received)
			if err != nil {
				req.MarkResponded()
				return nil, fmt.Errorf("client: validate message-authenticator: %w", err)
			}
			if !ok {
				req.MarkResponded()
				c.cfg.logger.Errorf("client: bad message-authenticator from %s (id %d)", c.cfg.addr, resp.Identifier)
				return nil, ErrBadResponseAuthenticator
			}
		}
	}

	req.MarkResponded()
	return resp, nil
}
