package packet

import "errors"

var (
	// ErrMalformedPacket is returned when the header/attribute framing is inconsistent on decode.
	ErrMalformedPacket = errors.New("packet: malformed packet")
	// ErrBadAttributeLength is returned when a typed attribute's length doesn't match its data type's required width.
	ErrBadAttributeLength = errors.New("packet: bad attribute length")
	// ErrMalformedVSA is returned when a VSA's inner sub-attribute walk is inconsistent.
	ErrMalformedVSA = errors.New("packet: malformed vendor-specific attribute")
	// ErrVendorIDMismatch is returned when add_sub is given an attribute from a different vendor space.
	ErrVendorIDMismatch = errors.New("packet: vendor id mismatch")
	// ErrOversizedVSA is returned when a VSA container's encoded length would exceed 255 bytes.
	ErrOversizedVSA = errors.New("packet: oversized vendor-specific attribute")
	// ErrIdentifierMismatch is returned when a decoded response's identifier doesn't match the request it answers.
	ErrIdentifierMismatch = errors.New("packet: identifier mismatch")
	// ErrPacketTooLong is returned on encode when the total packet would exceed MaxPacketLength.
	ErrPacketTooLong = errors.New("packet: packet too long")
	// ErrUnexpectedResponseCode is returned when a decoded response's code isn't one of the
	// request code's expected response codes.
	ErrUnexpectedResponseCode = errors.New("packet: unexpected response code")
)
