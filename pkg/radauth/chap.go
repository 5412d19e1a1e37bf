package radauth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// CHAPChallengeLength is the length in bytes of a CHAP-Challenge attribute value.
const CHAPChallengeLength = 16

// CHAPResponseLength is the length in bytes of a CHAP-Password attribute value
// (1 CHAP identifier byte + 16 MD5 digest bytes).
const CHAPResponseLength = 17

// GenerateCHAPChallenge returns a fresh CSPRNG-derived CHAP challenge.
func GenerateCHAPChallenge() ([]byte, error) {
	challenge := make([]byte, CHAPChallengeLength)
	if _, err := rand.Read(challenge); err != nil {
		return nil, fmt.Errorf("radauth: generate chap challenge: %w", err)
	}
	return challenge, nil
}

// GenerateCHAPIdentifier returns a fresh CSPRNG-derived 1-byte CHAP identifier, distinct
// from the challenge, per RFC 2865 §2.2.
func GenerateCHAPIdentifier() (byte, error) {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("radauth: generate chap identifier: %w", err)
	}
	return b[0], nil
}

// GenerateCHAPResponse computes the 17-byte CHAP-Password value for the given
// chap identifier, cleartext password, and challenge: chapID || MD5(chapID || password || challenge).
func GenerateCHAPResponse(chapID byte, password string, challenge []byte) []byte {
	digest := md5Sum([]byte{chapID}, []byte(password), challenge)
	response := make([]byte, CHAPResponseLength)
	response[0] = chapID
	copy(response[1:], digest)
	return response
}

// CheckCHAPPassword reports whether chapPassword (attribute 3) was produced by
// GenerateCHAPResponse for the given password and challenge (attribute 60). It rejects
// any input of the wrong length rather than panicking.
func CheckCHAPPassword(chapPassword, challenge []byte, password string) bool {
	if len(chapPassword) != CHAPResponseLength || len(challenge) != CHAPChallengeLength {
		return false
	}
	expected := GenerateCHAPResponse(chapPassword[0], password, challenge)
	return subtle.ConstantTimeCompare(expected, chapPassword) == 1
}
