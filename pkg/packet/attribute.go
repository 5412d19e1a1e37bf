package packet

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/coldwrap/radius/pkg/dictionary"
)

// Attribute is a single RADIUS attribute: a type code, an owning vendor (StandardVendorID
// for RFC attributes), and its raw octet value. Def is the dictionary descriptor that
// selects the typed view (string, integer, ipv4, ...); it is nil when the dictionary has
// no matching entry, in which case the raw octet view is used. Carrying the value as
// Data+Def rather than a class per value-kind is the tagged-value design SPEC_FULL §9
// calls for in place of an attribute subtype hierarchy.
type Attribute struct {
	Code     uint8
	VendorID int32
	Data     []byte
	Def      *dictionary.AttributeDefinition
}

// NewAttribute builds a standard (non-vendor) attribute from raw octets with no dictionary
// entry attached.
func NewAttribute(code uint8, data []byte) *Attribute {
	return &Attribute{Code: code, VendorID: dictionary.StandardVendorID, Data: data}
}

// IsVendorSpecific reports whether this attribute belongs to a vendor sub-attribute space.
func (a *Attribute) IsVendorSpecific() bool {
	return a.VendorID != dictionary.StandardVendorID
}

// DataType returns the dictionary-selected value kind, or DataTypeOctets when Def is nil.
func (a *Attribute) DataType() dictionary.DataType {
	if a.Def != nil {
		return a.Def.DataType
	}
	return dictionary.DataTypeOctets
}

// AsString renders the attribute's current value as text, per its DataType.
func (a *Attribute) AsString() string {
	return AsString(a.DataType(), a.Data, a.Def)
}

// SetFromString parses text into the attribute's wire encoding, per its DataType.
func (a *Attribute) SetFromString(text string) error {
	data, err := SetFromString(a.DataType(), text, a.Def)
	if err != nil {
		return err
	}
	a.Data = data
	return nil
}

// wireLength is the encoded [type][length][value] size of this attribute.
func (a *Attribute) wireLength() int {
	return AttributeHeaderLength + len(a.Data)
}

func (a *Attribute) encode() ([]byte, error) {
	if len(a.Data) > MaxAttributeDataLen {
		return nil, fmt.Errorf("%w: attribute %d data length %d exceeds %d", ErrMalformedPacket, a.Code, len(a.Data), MaxAttributeDataLen)
	}
	buf := make([]byte, AttributeHeaderLength+len(a.Data))
	buf[0] = a.Code
	buf[1] = byte(a.wireLength() & 0xFF)
	copy(buf[2:], a.Data)
	return buf, nil
}

// RequiredLength returns the exact byte width a typed value of dt must occupy, or -1 if
// the type accepts any length ≥ 2 (string, octets, vendor-specific).
func RequiredLength(dt dictionary.DataType) int {
	switch dt {
	case dictionary.DataTypeInteger, dictionary.DataTypeIPAddr:
		return 4
	case dictionary.DataTypeIPv6Addr:
		return 16
	default:
		return -1
	}
}

// ValidateValueLength enforces the width contract of SPEC_FULL §4.B: 4 bytes for
// integer/ipv4, 16 for ipv6, 2…18 for ipv6-prefix, unconstrained (but non-empty-header)
// otherwise.
func ValidateValueLength(dt dictionary.DataType, data []byte) error {
	switch dt {
	case dictionary.DataTypeInteger, dictionary.DataTypeIPAddr:
		if len(data) != 4 {
			return fmt.Errorf("%w: want 4 bytes, got %d", ErrBadAttributeLength, len(data))
		}
	case dictionary.DataTypeIPv6Addr:
		if len(data) != 16 {
			return fmt.Errorf("%w: want 16 bytes, got %d", ErrBadAttributeLength, len(data))
		}
	case dictionary.DataTypeIPv6Prefix:
		if len(data) < 2 || len(data) > 18 {
			return fmt.Errorf("%w: want 2..18 bytes, got %d", ErrBadAttributeLength, len(data))
		}
	default:
		if len(data) > MaxAttributeDataLen {
			return fmt.Errorf("%w: value too long: %d bytes", ErrBadAttributeLength, len(data))
		}
	}
	return nil
}

// AsString renders data as the text form of dt, per SPEC_FULL §4.B. attr may be nil, in
// which case no enumeration lookup is attempted.
func AsString(dt dictionary.DataType, data []byte, attr *dictionary.AttributeDefinition) string {
	switch dt {
	case dictionary.DataTypeString:
		return string(data)
	case dictionary.DataTypeInteger:
		v := decodeUint32(data)
		if attr != nil {
			if name, ok := attr.ValueName(v); ok {
				return name
			}
		}
		return strconv.FormatUint(uint64(v), 10)
	case dictionary.DataTypeIPAddr:
		if len(data) != 4 {
			return hexString(data)
		}
		return net.IP(data).String()
	case dictionary.DataTypeIPv6Addr:
		if len(data) != 16 {
			return hexString(data)
		}
		return net.IP(data).String()
	case dictionary.DataTypeIPv6Prefix:
		return ipv6PrefixString(data)
	default:
		return hexString(data)
	}
}

// SetFromString parses text into the wire encoding of dt. attr supplies the enumeration
// table for integer symbolic names, if any.
func SetFromString(dt dictionary.DataType, text string, attr *dictionary.AttributeDefinition) ([]byte, error) {
	switch dt {
	case dictionary.DataTypeString:
		return []byte(text), nil
	case dictionary.DataTypeOctets:
		return []byte(text), nil
	case dictionary.DataTypeInteger:
		if attr != nil {
			if v, ok := attr.ValueByName(text); ok {
				return encodeUint32(v), nil
			}
		}
		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer %q: %v", ErrBadAttributeLength, text, err)
		}
		return encodeUint32(uint32(v)), nil
	case dictionary.DataTypeIPAddr:
		ip := net.ParseIP(text)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("%w: invalid ipv4 %q", ErrBadAttributeLength, text)
		}
		return ip.To4(), nil
	case dictionary.DataTypeIPv6Addr:
		ip := net.ParseIP(text)
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("%w: invalid ipv6 %q", ErrBadAttributeLength, text)
		}
		return ip.To16(), nil
	case dictionary.DataTypeIPv6Prefix:
		return parseIPv6Prefix(text)
	default:
		return []byte(text), nil
	}
}

func decodeUint32(data []byte) uint32 {
	var v uint32
	for _, b := range data {
		v = v<<8 | uint32(b)&0xFF
	}
	return v
}

func encodeUint32(v uint32) []byte {
	return []byte{
		byte(v >> 24 & 0xFF),
		byte(v >> 16 & 0xFF),
		byte(v >> 8 & 0xFF),
		byte(v & 0xFF),
	}
}

func hexString(data []byte) string {
	var b strings.Builder
	b.WriteString("0x")
	for _, c := range data {
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

func ipv6PrefixString(data []byte) string {
	if len(data) < 2 {
		return hexString(data)
	}
	prefixLen := data[1]
	addrBytes := make([]byte, 16)
	copy(addrBytes, data[2:])
	return fmt.Sprintf("%s/%d", net.IP(addrBytes).String(), prefixLen)
}

func parseIPv6Prefix(text string) ([]byte, error) {
	parts := strings.SplitN(text, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: ipv6-prefix %q missing /length", ErrBadAttributeLength, text)
	}
	ip := net.ParseIP(parts[0])
	if ip == nil || ip.To4() != nil {
		return nil, fmt.Errorf("%w: invalid ipv6-prefix address %q", ErrBadAttributeLength, parts[0])
	}
	prefixLen, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || prefixLen > 128 {
		return nil, fmt.Errorf("%w: invalid ipv6-prefix length %q", ErrBadAttributeLength, parts[1])
	}
	out := make([]byte, 2+16)
	out[0] = 0
	out[1] = byte(prefixLen)
	copy(out[2:], ip.To16())
	return out, nil
}

// VSA is a Vendor-Specific Attribute container (RFC 2865 §5.26): a vendor id and an
// ordered list of sub-attributes, all sharing that vendor id. Sub-attribute order is
// preserved on encode (SPEC_FULL §4.C notes some vendor servers are order-sensitive).
type VSA struct {
	VendorID uint32
	Subs     []*Attribute
}

// NewVSA creates an empty VSA container for the given vendor.
func NewVSA(vendorID uint32) *VSA {
	return &VSA{VendorID: vendorID}
}

// AddSub appends a sub-attribute, failing with ErrVendorIDMismatch if attr's vendor id
// does not match the container's.
func (v *VSA) AddSub(attr *Attribute) error {
	if attr.VendorID != int32(v.VendorID) {
		return fmt.Errorf("%w: sub-attribute vendor %d, container vendor %d", ErrVendorIDMismatch, attr.VendorID, v.VendorID)
	}
	v.Subs = append(v.Subs, attr)
	return nil
}

// Write encodes the VSA as [26][total-length][vendor_id:4][sub-attrs…], failing with
// ErrOversizedVSA if the encoded attribute (header included) would be ≥ 256 bytes.
func (v *VSA) Write() ([]byte, error) {
	payload := make([]byte, 4)
	payload[0] = byte(v.VendorID >> 24 & 0xFF)
	payload[1] = byte(v.VendorID >> 16 & 0xFF)
	payload[2] = byte(v.VendorID >> 8 & 0xFF)
	payload[3] = byte(v.VendorID & 0xFF)

	for _, sub := range v.Subs {
		encoded, err := sub.encode()
		if err != nil {
			return nil, err
		}
		payload = append(payload, encoded...)
	}

	total := AttributeHeaderLength + len(payload)
	if total >= 256 {
		return nil, fmt.Errorf("%w: total length %d", ErrOversizedVSA, total)
	}

	buf := make([]byte, total)
	buf[0] = AttributeTypeVendorSpecific
	buf[1] = byte(total & 0xFF)
	copy(buf[2:], payload)
	return buf, nil
}

// ReadVSA parses a VSA container's value payload (the bytes after [26][length], i.e.
// [vendor_id:4][sub-attrs…]). It requires len(value) ≥ 6 and walks the inner
// [type][sublen] pairs, failing with ErrMalformedVSA on any inconsistency. dict resolves
// each sub-attribute's dictionary definition; pass nil to keep them as raw octet views.
func ReadVSA(value []byte, dict *dictionary.Dictionary) (*VSA, error) {
	if len(value) < 6 {
		return nil, fmt.Errorf("%w: value too short: %d bytes", ErrMalformedVSA, len(value))
	}

	vendorID := decodeUint32(value[:4])
	v := &VSA{VendorID: vendorID}

	rest := value[4:]
	off := 0
	for off < len(rest) {
		if off+2 > len(rest) {
			return nil, fmt.Errorf("%w: truncated sub-attribute header at offset %d", ErrMalformedVSA, off)
		}
		subType := rest[off]
		subLen := int(rest[off+1])
		if subLen < 2 {
			return nil, fmt.Errorf("%w: sub-attribute length %d < 2", ErrMalformedVSA, subLen)
		}
		if off+subLen > len(rest) {
			return nil, fmt.Errorf("%w: sub-attribute at offset %d overruns container", ErrMalformedVSA, off)
		}
		subData := make([]byte, subLen-AttributeHeaderLength)
		copy(subData, rest[off+2:off+subLen])

		sub := &Attribute{Code: subType, VendorID: int32(vendorID), Data: subData}
		if dict != nil {
			if def, ok := dict.AttributeByCode(int32(vendorID), subType); ok {
				sub.Def = def
			}
		}
		if err := ValidateValueLength(sub.DataType(), sub.Data); err != nil {
			return nil, err
		}
		v.Subs = append(v.Subs, sub)
		off += subLen
	}
	if off != len(rest) {
		return nil, fmt.Errorf("%w: inner walk consumed %d of %d bytes", ErrMalformedVSA, off, len(rest))
	}

	return v, nil
}

// sortAttributesByCode returns a stable copy of attrs sorted by ascending type code, per
// SPEC_FULL §4.C's canonical encode ordering. VSA containers are treated as a single
// attribute at type code 26; their internal sub-attribute order is untouched.
func sortAttributesByCode(attrs []*Attribute) []*Attribute {
	out := make([]*Attribute, len(attrs))
	copy(out, attrs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
