package facade

import (
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

// addMessageAuthenticatorPlaceholder appends a zero-valued Message-Authenticator attribute,
// whose length affects the packet total that the authenticator construction below signs.
func addMessageAuthenticatorPlaceholder(pkt *packet.Packet) {
	pkt.Add(packet.AttributeTypeMessageAuthenticator, make([]byte, radauth.MessageAuthenticatorLength))
}

func setMessageAuthenticatorValue(pkt *packet.Packet, value [radauth.MessageAuthenticatorLength]byte) {
	if attr := pkt.GetAttribute(packet.AttributeTypeMessageAuthenticator); attr != nil {
		attr.Data = value[:]
	}
}

// signDeterministicRequest computes the zero16-seeded Request Authenticator shared by
// Accounting-Request, CoA-Request, and Disconnect-Request (SPEC_FULL §4.D), then — if a
// Message-Authenticator placeholder is present — recomputes it over the now-final packet,
// since the HMAC covers the whole packet including the just-finalized Authenticator field.
func signDeterministicRequest(pkt *packet.Packet, secret []byte) error {
	pkt.Authenticator = radauth.ZeroAuthenticator()

	attrBytes, err := pkt.EncodeAttributes()
	if err != nil {
		return err
	}
	length := packet.HeaderLength + len(attrBytes)

	auth := radauth.CalculateRequestAuthenticator(uint8(pkt.Code), pkt.Identifier, uint16(length), attrBytes, secret)
	pkt.Authenticator = auth

	if pkt.GetAttribute(packet.AttributeTypeMessageAuthenticator) == nil {
		return nil
	}

	buf, err := pkt.Encode()
	if err != nil {
		return err
	}
	hmacValue, err := radauth.CalculateMessageAuthenticator(buf, secret)
	if err != nil {
		return err
	}
	setMessageAuthenticatorValue(pkt, hmacValue)
	return nil
}

// signAccessRequest finalizes the Message-Authenticator, if present, of an Access-Request
// whose (random) Request Authenticator is already set. Unlike the deterministic requests,
// the Request Authenticator here never depends on the encoded packet, so one pass suffices.
func signAccessRequest(pkt *packet.Packet, secret []byte) error {
	if pkt.GetAttribute(packet.AttributeTypeMessageAuthenticator) == nil {
		return nil
	}

	buf, err := pkt.Encode()
	if err != nil {
		return err
	}
	hmacValue, err := radauth.CalculateMessageAuthenticator(buf, secret)
	if err != nil {
		return err
	}
	setMessageAuthenticatorValue(pkt, hmacValue)
	return nil
}
