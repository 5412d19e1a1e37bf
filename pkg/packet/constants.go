package packet

// Wire-format constants shared by the header and attribute codec (RFC 2865 §3, §4.1).
const (
	HeaderLength    = 20
	MaxPacketLength = 4096

	AuthenticatorLength = 16

	AttributeHeaderLength = 2
	MaxAttributeLength    = 255
	MaxAttributeDataLen   = MaxAttributeLength - AttributeHeaderLength

	// AttributeTypeVendorSpecific is the RFC 2865 §5.26 Vendor-Specific type code.
	AttributeTypeVendorSpecific = 26
	// AttributeTypeMessageAuthenticator is the RFC 2869 §5.14 type code.
	AttributeTypeMessageAuthenticator = 80

	// VSAHeaderLength is type(1) + length(1) + vendor_id(4).
	VSAHeaderLength = AttributeHeaderLength + 4
	MaxVSADataLen   = MaxAttributeDataLen - 4
)
