package radauth

import (
	"crypto/hmac"
	"crypto/md5"
	"fmt"
)

// MessageAuthenticatorLength is the length in bytes of the RFC 2869 §5.14 Message-Authenticator
// attribute value.
const MessageAuthenticatorLength = 16

// messageAuthenticatorAttributeType is the RADIUS attribute type for Message-Authenticator.
const messageAuthenticatorAttributeType = 80

// packetHeaderLength is the fixed RADIUS header size (Code, Identifier, Length, Authenticator);
// duplicated from pkg/packet.HeaderLength to avoid an import cycle (packet imports radauth).
const packetHeaderLength = 20

// CalculateMessageAuthenticator computes HMAC-MD5(sharedSecret, packetData) over packetData
// with the Message-Authenticator attribute's value field (if present) zeroed first, per
// RFC 2869 §5.14.
func CalculateMessageAuthenticator(packetData, sharedSecret []byte) ([MessageAuthenticatorLength]byte, error) {
	var result [MessageAuthenticatorLength]byte
	if len(packetData) < packetHeaderLength {
		return result, fmt.Errorf("radauth: calculate message-authenticator: packet shorter than header")
	}

	calcData := make([]byte, len(packetData))
	copy(calcData, packetData)

	if offset := findMessageAuthenticatorOffset(calcData); offset != -1 {
		clear(calcData[offset : offset+MessageAuthenticatorLength])
	}

	mac := hmac.New(md5.New, sharedSecret)
	mac.Write(calcData)
	copy(result[:], mac.Sum(nil))
	return result, nil
}

// ValidateMessageAuthenticator reports whether receivedAuth is the Message-Authenticator
// CalculateMessageAuthenticator would produce for packetData, comparing in constant time.
func ValidateMessageAuthenticator(packetData, sharedSecret []byte, receivedAuth [MessageAuthenticatorLength]byte) (bool, error) {
	expected, err := CalculateMessageAuthenticator(packetData, sharedSecret)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected[:], receivedAuth[:]), nil
}

// findMessageAuthenticatorOffset returns the offset of the Message-Authenticator attribute's
// 16-byte value field within packetData, or -1 if the attribute is absent.
func findMessageAuthenticatorOffset(packetData []byte) int {
	start := findMessageAuthenticatorStart(packetData)
	if start == -1 {
		return -1
	}
	return start + 2
}

// findMessageAuthenticatorStart scans packetData's attribute list for the
// Message-Authenticator attribute and returns its starting offset, or -1 if none is present.
func findMessageAuthenticatorStart(packetData []byte) int {
	if len(packetData) < packetHeaderLength {
		return -1
	}

	offset := packetHeaderLength
	for offset < len(packetData) {
		if offset+2 > len(packetData) {
			break
		}

		attrType := packetData[offset]
		attrLength := packetData[offset+1]
		if attrLength < 2 || offset+int(attrLength) > len(packetData) {
			break
		}

		if attrType == messageAuthenticatorAttributeType {
			return offset
		}

		offset += int(attrLength)
	}

	return -1
}
