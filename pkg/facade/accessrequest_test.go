package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwrap/radius/pkg/dictionaries"
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

func TestNewAccessRequestPAP(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	req, err := NewAccessRequest(1, dict, []byte("xyzzy5461"), AccessRequestOptions{
		UserName:     "nemo",
		Password:     "arctangent",
		AuthProtocol: AuthProtocolPAP,
	})
	require.NoError(t, err)
	assert.Equal(t, StateEncoded, req.State())
	assert.Equal(t, packet.CodeAccessRequest, req.Packet.Code)

	userPassword := req.Packet.GetAttribute(attrUserPassword)
	require.NotNil(t, userPassword)
	decoded := radauth.DecodePAP(userPassword.Data, []byte("xyzzy5461"), req.Packet.Authenticator)
	assert.Equal(t, "arctangent", string(decoded))
}

func TestNewAccessRequestCHAP(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	req, err := NewAccessRequest(1, dict, []byte("secret"), AccessRequestOptions{
		UserName:     "nemo",
		Password:     "hunter2",
		AuthProtocol: AuthProtocolCHAP,
	})
	require.NoError(t, err)

	chapPassword := req.Packet.GetAttribute(attrCHAPPassword)
	chapChallenge := req.Packet.GetAttribute(attrCHAPChallenge)
	require.NotNil(t, chapPassword)
	require.NotNil(t, chapChallenge)
	assert.True(t, radauth.CheckCHAPPassword(chapPassword.Data, chapChallenge.Data, "hunter2"))
}

func TestNewAccessRequestMissingUserName(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	_, err = NewAccessRequest(1, dict, []byte("secret"), AccessRequestOptions{
		Password: "x", AuthProtocol: AuthProtocolPAP,
	})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNewAccessRequestNoCredential(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	_, err = NewAccessRequest(1, dict, []byte("secret"), AccessRequestOptions{UserName: "nemo"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNewAccessRequestMSCHAPv2Unsupported(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	_, err = NewAccessRequest(1, dict, []byte("secret"), AccessRequestOptions{
		UserName: "nemo", Password: "x", AuthProtocol: AuthProtocolMSCHAPv2,
	})
	assert.ErrorIs(t, err, ErrUnsupportedAuthProtocol)
}

func TestNewAccessRequestWithMessageAuthenticator(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	req, err := NewAccessRequest(1, dict, []byte("secret"), AccessRequestOptions{
		UserName: "nemo", Password: "x", AuthProtocol: AuthProtocolPAP,
		UseMessageAuthenticator: true,
	})
	require.NoError(t, err)

	buf, err := req.Packet.Encode()
	require.NoError(t, err)

	attr := req.Packet.GetAttribute(packet.AttributeTypeMessageAuthenticator)
	require.NotNil(t, attr)
	var receivedAuth [radauth.MessageAuthenticatorLength]byte
	copy(receivedAuth[:], attr.Data)

	ok, err := radauth.ValidateMessageAuthenticator(buf, []byte("secret"), receivedAuth)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClassifyAuthProtocol(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	papReq, err := NewAccessRequest(1, dict, []byte("s"), AccessRequestOptions{
		UserName: "a", Password: "p", AuthProtocol: AuthProtocolPAP,
	})
	require.NoError(t, err)
	protocol, err := ClassifyAuthProtocol(papReq.Packet)
	require.NoError(t, err)
	assert.Equal(t, AuthProtocolPAP, protocol)

	chapReq, err := NewAccessRequest(1, dict, []byte("s"), AccessRequestOptions{
		UserName: "a", Password: "p", AuthProtocol: AuthProtocolCHAP,
	})
	require.NoError(t, err)
	protocol, err = ClassifyAuthProtocol(chapReq.Packet)
	require.NoError(t, err)
	assert.Equal(t, AuthProtocolCHAP, protocol)
}

func TestClassifyAuthProtocolMissingCredentials(t *testing.T) {
	pkt := packet.New(packet.CodeAccessRequest, 1)
	pkt.Add(attrUserName, []byte("nemo"))
	_, err := ClassifyAuthProtocol(pkt)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestVerifyPasswordUnsupportedProtocols(t *testing.T) {
	assert.NoError(t, VerifyPassword(AuthProtocolPAP))
	assert.NoError(t, VerifyPassword(AuthProtocolCHAP))
	assert.ErrorIs(t, VerifyPassword(AuthProtocolMSCHAPv2), ErrUnsupportedAuthProtocol)
	assert.ErrorIs(t, VerifyPassword(AuthProtocolEAP), ErrUnsupportedAuthProtocol)
}
