// Package packet implements the RADIUS wire codec (RFC 2865 §3, §4-§5): the 20-byte
// header, the attribute TLV list including Vendor-Specific containers, and the typed
// attribute value views driven by a dictionary.Dictionary.
package packet

import (
	"fmt"

	"github.com/coldwrap/radius/pkg/dictionary"
)

// Packet is a decoded or under-construction RADIUS datagram.
type Packet struct {
	Code          Code
	Identifier    uint8
	Authenticator [AuthenticatorLength]byte
	Attributes    []*Attribute
}

// New builds an empty packet of the given code and identifier. The authenticator is left
// zero; callers fill it via the radauth package before Encode.
func New(code Code, identifier uint8) *Packet {
	return &Packet{Code: code, Identifier: identifier}
}

// Add appends a standard (non-vendor) attribute.
func (p *Packet) Add(code uint8, data []byte) {
	p.Attributes = append(p.Attributes, NewAttribute(code, data))
}

// GetAttribute returns the first attribute with the given standard type code, or nil.
func (p *Packet) GetAttribute(code uint8) *Attribute {
	for _, a := range p.Attributes {
		if a.Code == code && !a.IsVendorSpecific() {
			return a
		}
	}
	return nil
}

// EncodeAttributes serializes the attribute list in ascending type-code order (SPEC_FULL
// §4.C), failing with ErrPacketTooLong if the resulting packet would exceed MaxPacketLength.
func (p *Packet) EncodeAttributes() ([]byte, error) {
	toEncode, err := groupVendorAttributes(p.Attributes)
	if err != nil {
		return nil, err
	}
	sorted := sortAttributesByCode(toEncode)

	var buf []byte
	total := HeaderLength
	for _, attr := range sorted {
		encoded, err := attr.encode()
		if err != nil {
			return nil, err
		}
		total += len(encoded)
		if total > MaxPacketLength {
			return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLong, total)
		}
		buf = append(buf, encoded...)
	}
	return buf, nil
}

// groupVendorAttributes wraps every vendor-specific attribute into a VSA container (one
// per vendor id, preserving insertion order within each vendor's sub-attribute list) and
// returns them alongside the untouched standard attributes, ready for top-level sorting.
// This is the inverse of decodeAttributes' VSA expansion, so encode(decode(buf)) round-trips.
func groupVendorAttributes(attrs []*Attribute) ([]*Attribute, error) {
	var out []*Attribute
	vsas := map[uint32]*VSA{}
	var vendorOrder []uint32

	for _, a := range attrs {
		if !a.IsVendorSpecific() {
			out = append(out, a)
			continue
		}
		vendorID := uint32(a.VendorID)
		vsa, ok := vsas[vendorID]
		if !ok {
			vsa = NewVSA(vendorID)
			vsas[vendorID] = vsa
			vendorOrder = append(vendorOrder, vendorID)
		}
		if err := vsa.AddSub(a); err != nil {
			return nil, err
		}
	}

	for _, vendorID := range vendorOrder {
		encoded, err := vsas[vendorID].Write()
		if err != nil {
			return nil, err
		}
		out = append(out, &Attribute{
			Code:     AttributeTypeVendorSpecific,
			VendorID: dictionary.StandardVendorID,
			Data:     encoded[2:],
		})
	}

	return out, nil
}

// Encode serializes the full packet using p.Authenticator as currently set. Callers using
// a request-authenticator construction that depends on the encoded attribute bytes (the
// deterministic Accounting/CoA/Disconnect variant, or the Message-Authenticator HMAC) set
// p.Authenticator from EncodeAttributes' output via the radauth package before calling
// Encode a second time.
func (p *Packet) Encode() ([]byte, error) {
	attrBytes, err := p.EncodeAttributes()
	if err != nil {
		return nil, err
	}

	length := HeaderLength + len(attrBytes)
	buf := make([]byte, length)
	buf[0] = byte(p.Code)
	buf[1] = p.Identifier
	buf[2] = byte(length >> 8 & 0xFF)
	buf[3] = byte(length & 0xFF)
	copy(buf[4:20], p.Authenticator[:])
	copy(buf[20:], attrBytes)
	return buf, nil
}

// Decode parses a full RADIUS datagram into a Packet, resolving typed attribute views
// through dict (pass a nil dict to keep attributes as raw octets). It performs the strict
// two-pass walk required by SPEC_FULL §4.C: pass 1 validates framing, pass 2 builds
// attributes (VSA containers are expanded into their sub-attributes so GetAttribute-style
// lookups still work on the flat list via IsVendorSpecific/VendorID).
func Decode(buf []byte, dict *dictionary.Dictionary) (*Packet, error) {
	if len(buf) < HeaderLength {
		return nil, fmt.Errorf("%w: buffer shorter than header: %d bytes", ErrMalformedPacket, len(buf))
	}
	if len(buf) > MaxPacketLength {
		return nil, fmt.Errorf("%w: buffer longer than max: %d bytes", ErrMalformedPacket, len(buf))
	}

	declaredLength := int(buf[2])<<8 | int(buf[3])
	if declaredLength != len(buf) {
		return nil, fmt.Errorf("%w: declared length %d != buffer length %d", ErrMalformedPacket, declaredLength, len(buf))
	}

	p := &Packet{
		Code:       Code(buf[0]),
		Identifier: buf[1],
	}
	copy(p.Authenticator[:], buf[4:20])

	attrs, err := decodeAttributes(buf[20:], dict)
	if err != nil {
		return nil, err
	}
	p.Attributes = attrs

	return p, nil
}

// decodeAttributes performs the two-pass walk over an attribute-list byte slice (the bytes
// following the 20-byte header): pass 1 validates that successive [type][length] pairs
// cover exactly the buffer, pass 2 resolves each attribute's dictionary definition via
// dict (nil keeps attributes as raw octet views), validates its value width against that
// definition's data type, and expands VSA containers into their sub-attributes.
func decodeAttributes(buf []byte, dict *dictionary.Dictionary) ([]*Attribute, error) {
	// Pass 1: validate framing.
	off := 0
	for off < len(buf) {
		if off+2 > len(buf) {
			return nil, fmt.Errorf("%w: truncated attribute header at offset %d", ErrMalformedPacket, off)
		}
		length := int(buf[off+1])
		if length < 2 {
			return nil, fmt.Errorf("%w: attribute length %d < 2 at offset %d", ErrMalformedPacket, length, off)
		}
		if off+length > len(buf) {
			return nil, fmt.Errorf("%w: attribute at offset %d overruns buffer", ErrMalformedPacket, off)
		}
		off += length
	}
	if off != len(buf) {
		return nil, fmt.Errorf("%w: attribute walk consumed %d of %d bytes", ErrMalformedPacket, off, len(buf))
	}

	// Pass 2: build typed values.
	var attrs []*Attribute
	off = 0
	for off < len(buf) {
		code := buf[off]
		length := int(buf[off+1])
		value := buf[off+2 : off+length]

		if code == AttributeTypeVendorSpecific {
			vsa, err := ReadVSA(value, dict)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, vsa.Subs...)
		} else {
			data := make([]byte, len(value))
			copy(data, value)
			attr := NewAttribute(code, data)
			if dict != nil {
				if def, ok := dict.AttributeByCode(dictionary.StandardVendorID, code); ok {
					attr.Def = def
				}
			}
			if err := ValidateValueLength(attr.DataType(), attr.Data); err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		}
		off += length
	}

	return attrs, nil
}

// DecodeResponse parses buf as a response to request, enforcing SPEC_FULL §4.C identifier
// correlation (the decoded packet's identifier must match request.Identifier) and that the
// decoded code is one of request.Code's expected response codes (RFC 2865 §4.1/§4.2, RFC
// 2866 §4.2, RFC 3576 §2.2/§3.2).
func DecodeResponse(buf []byte, request *Packet, dict *dictionary.Dictionary) (*Packet, error) {
	resp, err := Decode(buf, dict)
	if err != nil {
		return nil, err
	}
	if resp.Identifier != request.Identifier {
		return nil, fmt.Errorf("%w: response id %d, request id %d", ErrIdentifierMismatch, resp.Identifier, request.Identifier)
	}

	if !resp.Code.IsValid() {
		return nil, fmt.Errorf("%w: got %s", ErrUnexpectedResponseCode, resp.Code)
	}
	if expected := request.Code.ExpectedResponseCode(); len(expected) > 0 && !resp.Code.oneOf(expected) {
		return nil, fmt.Errorf("%w: got %s, want one of %v", ErrUnexpectedResponseCode, resp.Code, expected)
	}

	return resp, nil
}
