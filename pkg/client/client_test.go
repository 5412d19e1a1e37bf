package client

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwrap/radius/pkg/dictionaries"
	"github.com/coldwrap/radius/pkg/facade"
	"github.com/coldwrap/radius/pkg/packet"
	"github.com/coldwrap/radius/pkg/radauth"
)

const testSecret = "xyzzy5461"

// fakeRADIUSServer decodes each request and hands it to respond, which returns the packet
// to send back (already carrying whatever code/attributes the test wants).
func fakeRADIUSServer(t *testing.T, respond func(req *packet.Packet) *packet.Packet) (addr string, stop func()) {
	t.Helper()

	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		buf := make([]byte, packet.MaxPacketLength)
		for {
			n, from, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}

			req, err := packet.Decode(buf[:n], dict)
			if err != nil {
				continue
			}

			respPkt := respond(req)
			if respPkt == nil {
				continue
			}

			attrBytes, err := respPkt.EncodeAttributes()
			if err != nil {
				continue
			}
			length := uint16(packet.HeaderLength + len(attrBytes))
			respPkt.Authenticator = radauth.CalculateResponseAuthenticator(
				uint8(respPkt.Code), respPkt.Identifier, length, req.Authenticator, attrBytes, []byte(testSecret))

			if mac := respPkt.GetAttribute(packet.AttributeTypeMessageAuthenticator); mac != nil {
				respBuf, err := respPkt.Encode()
				if err != nil {
					continue
				}
				hmacVal, err := radauth.CalculateMessageAuthenticator(respBuf, []byte(testSecret))
				if err != nil {
					continue
				}
				mac.Data = hmacVal[:]
			}

			respBuf, err := respPkt.Encode()
			if err != nil {
				continue
			}
			_, _ = conn.WriteToUDP(respBuf, from)
		}
	}()

	return conn.LocalAddr().String(), func() {
		close(done)
		conn.Close()
	}
}

func TestClientAccessRequestAccept(t *testing.T) {
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		return packet.New(packet.CodeAccessAccept, req.Identifier)
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte(testSecret)), WithTimeout(time.Second))
	require.NoError(t, err)

	resp, err := c.AccessRequest(facade.AccessRequestOptions{
		UserName:     "nemo",
		Password:     "arctangent",
		AuthProtocol: facade.AuthProtocolPAP,
	})
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessAccept, resp.Code)

	stats := c.Statistics()
	assert.Equal(t, uint64(1), stats.RequestsSent)
	assert.Equal(t, uint64(1), stats.ResponsesReceived)
}

func TestClientAccessRequestRejectsBadResponseAuthenticator(t *testing.T) {
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		resp := packet.New(packet.CodeAccessAccept, req.Identifier)
		// Force a bad authenticator by tampering after signing is impractical here, so
		// instead flip the identifier post-hoc via a mismatched secret on the client side.
		return resp
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte("wrong-secret")), WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = c.AccessRequest(facade.AccessRequestOptions{
		UserName:     "nemo",
		Password:     "arctangent",
		AuthProtocol: facade.AuthProtocolPAP,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadResponseAuthenticator)
}

func TestClientAccountingRequest(t *testing.T) {
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		return packet.New(packet.CodeAccountingResponse, req.Identifier)
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte(testSecret)), WithTimeout(time.Second))
	require.NoError(t, err)

	resp, err := c.AccountingRequest(facade.AccountingRequestOptions{
		UserName:   "nemo",
		StatusType: facade.AcctStatusTypeStart,
	})
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccountingResponse, resp.Code)
}

func TestClientCoARequest(t *testing.T) {
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		return packet.New(packet.CodeCoAAck, req.Identifier)
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte(testSecret)), WithTimeout(time.Second))
	require.NoError(t, err)

	resp, err := c.CoA(facade.CoARequestOptions{
		Attributes: map[string]interface{}{"User-Name": "nemo"},
	})
	require.NoError(t, err)
	assert.Equal(t, packet.CodeCoAAck, resp.Code)
}

func TestClientDisconnectRequest(t *testing.T) {
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		return packet.New(packet.CodeDisconnectACK, req.Identifier)
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte(testSecret)), WithTimeout(time.Second))
	require.NoError(t, err)

	resp, err := c.Disconnect(facade.DisconnectRequestOptions{
		Attributes: map[string]interface{}{"User-Name": "nemo"},
	})
	require.NoError(t, err)
	assert.Equal(t, packet.CodeDisconnectACK, resp.Code)
}

func TestClientRequiresAddrAndSecret(t *testing.T) {
	_, err := New(WithSecret([]byte("s")))
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = New(WithAddr("127.0.0.1:1812"))
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestClientIdentifiersAreDistinctAcrossRequests(t *testing.T) {
	var seen []uint8
	addr, stop := fakeRADIUSServer(t, func(req *packet.Packet) *packet.Packet {
		seen = append(seen, req.Identifier)
		return packet.New(packet.CodeAccountingResponse, req.Identifier)
	})
	defer stop()

	c, err := New(WithAddr(addr), WithSecret([]byte(testSecret)), WithTimeout(time.Second))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.AccountingRequest(facade.AccountingRequestOptions{
			UserName:   "nemo",
			StatusType: facade.AcctStatusTypeStart,
		})
		require.NoError(t, err)
	}

	require.Len(t, seen, 3)
	assert.Equal(t, uint8(0), seen[0])
	assert.Equal(t, uint8(1), seen[1])
	assert.Equal(t, uint8(2), seen[2])
}
