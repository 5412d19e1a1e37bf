package client

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwrap/radius/pkg/log"
)

// echoUDPServer listens on an ephemeral port and writes reply back to whoever sent buf.
func echoUDPServer(t *testing.T, reply []byte) (addr string, stop func()) {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		buf := make([]byte, 4096)
		for {
			n, from, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			_ = n
			select {
			case <-done:
				return
			default:
			}
			_, _ = conn.WriteToUDP(reply, from)
		}
	}()

	return conn.LocalAddr().String(), func() {
		close(done)
		conn.Close()
	}
}

func TestTransportExchangeSuccess(t *testing.T) {
	addr, stop := echoUDPServer(t, []byte("pong"))
	defer stop()

	tr := NewTransport(addr, time.Second, 1, log.NewDefaultLogger())
	resp, err := tr.Exchange([]byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pong"), resp)

	stats := tr.Statistics()
	assert.Equal(t, uint64(1), stats.RequestsSent)
	assert.Equal(t, uint64(1), stats.ResponsesReceived)
}

func TestTransportExchangeRetriesOnTimeout(t *testing.T) {
	// Nothing is listening on this address, so every attempt times out.
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	require.NoError(t, err)
	addr := conn.LocalAddr().String()
	conn.Close() // closed immediately: port is free but nothing answers

	tr := NewTransport(addr, 50*time.Millisecond, 3, log.NewDefaultLogger())
	_, err = tr.Exchange([]byte("ping"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportTimeout)

	stats := tr.Statistics()
	assert.Equal(t, uint64(3), stats.Timeouts)
}

func TestTransportDefaultsAppliedForZeroValues(t *testing.T) {
	tr := NewTransport("127.0.0.1:1", 0, 0, nil)
	assert.Equal(t, 3*time.Second, tr.timeout)
	assert.Equal(t, 1, tr.retryCount)
	assert.NotNil(t, tr.logger)
}
