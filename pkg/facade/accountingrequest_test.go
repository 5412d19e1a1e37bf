package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwrap/radius/pkg/dictionaries"
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

func TestNewAccountingRequestAuthenticator(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	req, err := NewAccountingRequest(42, dict, []byte("secret"), AccountingRequestOptions{
		UserName:   "user",
		StatusType: AcctStatusTypeStart,
	})
	require.NoError(t, err)

	buf, err := req.Packet.Encode()
	require.NoError(t, err)

	ok := radauth.ValidateRequestAuthenticator(
		uint8(packet.CodeAccountingRequest), 42, uint16(len(buf)), buf[20:], req.Packet.Authenticator, []byte("secret"))
	assert.True(t, ok)

	badSecret := radauth.ValidateRequestAuthenticator(
		uint8(packet.CodeAccountingRequest), 42, uint16(len(buf)), buf[20:], req.Packet.Authenticator, []byte("wrong"))
	assert.False(t, badSecret)
}

func TestNewAccountingRequestRequiresUserName(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	_, err = NewAccountingRequest(1, dict, []byte("secret"), AccountingRequestOptions{StatusType: AcctStatusTypeStart})
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestNewAccountingRequestRejectsOutOfRangeStatusType(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	_, err = NewAccountingRequest(1, dict, []byte("secret"), AccountingRequestOptions{
		UserName: "user", StatusType: 99,
	})
	assert.ErrorIs(t, err, ErrMissingAttribute)
}
