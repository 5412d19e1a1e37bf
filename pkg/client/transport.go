package client

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/coldwrap/radius/pkg/log"
	"github.com/coldwrap/radius/pkg/packet"
)

// Statistics accumulates per-client transport counters (SPEC_FULL §4.F). All fields are
// updated under mu; read them via Snapshot.
type Statistics struct {
	mu                sync.RWMutex
	requestsSent      uint64
	responsesReceived uint64
	timeouts          uint64
	errors            uint64
	lastRTT           time.Duration
	totalRTT          time.Duration
	rttSamples        uint64
}

// StatisticsSnapshot is a point-in-time, race-free copy of Statistics.
type StatisticsSnapshot struct {
	RequestsSent      uint64
	ResponsesReceived uint64
	Timeouts          uint64
	Errors            uint64
	LastRTT           time.Duration
	AverageRTT        time.Duration
}

func (s *Statistics) recordSent() {
	s.mu.Lock()
	s.requestsSent++
	s.mu.Unlock()
}

func (s *Statistics) recordReceived(rtt time.Duration) {
	s.mu.Lock()
	s.responsesReceived++
	s.lastRTT = rtt
	s.totalRTT += rtt
	s.rttSamples++
	s.mu.Unlock()
}

func (s *Statistics) recordTimeout() {
	s.mu.Lock()
	s.timeouts++
	s.mu.Unlock()
}

func (s *Statistics) recordError() {
	s.mu.Lock()
	s.errors++
	s.mu.Unlock()
}

// Snapshot returns a copy of the current counters, including the running average RTT.
func (s *Statistics) Snapshot() StatisticsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := StatisticsSnapshot{
		RequestsSent:      s.requestsSent,
		ResponsesReceived: s.responsesReceived,
		Timeouts:          s.timeouts,
		Errors:            s.errors,
		LastRTT:           s.lastRTT,
	}
	if s.rttSamples > 0 {
		snap.AverageRTT = s.totalRTT / time.Duration(s.rttSamples)
	}
	return snap
}

// Transport sends a RADIUS request and waits for its reply over UDP, dialing a fresh
// connection per exchange and retrying the write/read cycle on timeout (SPEC_FULL §4.F).
type Transport struct {
	addr       string
	timeout    time.Duration
	retryCount int
	logger     log.Logger
	stats      *Statistics
}

// NewTransport builds a Transport targeting addr. timeout <= 0 defaults to 3s, retryCount
// <= 0 defaults to 1 (no retry), and a nil logger defaults to log.NewDefaultLogger().
func NewTransport(addr string, timeout time.Duration, retryCount int, logger log.Logger) *Transport {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if retryCount <= 0 {
		retryCount = 1
	}
	if logger == nil {
		logger = log.NewDefaultLogger()
	}
	return &Transport{addr: addr, timeout: timeout, retryCount: retryCount, logger: logger, stats: &Statistics{}}
}

// Statistics returns a snapshot of the transport's accumulated counters.
func (t *Transport) Statistics() StatisticsSnapshot {
	return t.stats.Snapshot()
}

// Exchange writes buf and returns the raw reply datagram, retrying up to t.retryCount times
// when an attempt times out. A non-timeout error aborts immediately without retrying.
func (t *Transport) Exchange(buf []byte) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= t.retryCount; attempt++ {
		resp, err := t.exchangeOnce(buf)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var netErr net.Error
		if !errors.As(err, &netErr) || !netErr.Timeout() {
			t.stats.recordError()
			return nil, err
		}
		t.stats.recordTimeout()
		t.logger.Debugf("client: attempt %d/%d to %s timed out: %v", attempt, t.retryCount, t.addr, err)
	}

	t.logger.Errorf("client: exchange with %s failed after %d attempt(s): %v", t.addr, t.retryCount, lastErr)
	return nil, fmt.Errorf("%w: %v", ErrTransportTimeout, lastErr)
}

func (t *Transport) exchangeOnce(buf []byte) ([]byte, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", t.addr)
	if err != nil {
		return nil, fmt.Errorf("client: resolve %q: %w", t.addr, err)
	}

	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		t.logger.Warnf("client: dial %q failed: %v", t.addr, err)
		return nil, fmt.Errorf("client: dial %q: %w", t.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(t.timeout)); err != nil {
		return nil, fmt.Errorf("client: set deadline: %w", err)
	}

	start := time.Now()
	if _, err := conn.Write(buf); err != nil {
		return nil, fmt.Errorf("client: write: %w", err)
	}
	t.stats.recordSent()

	respBuf := make([]byte, packet.MaxPacketLength)
	n, err := conn.Read(respBuf)
	if err != nil {
		return nil, err
	}
	t.stats.recordReceived(time.Since(start))

	out := make([]byte, n)
	copy(out, respBuf[:n])
	return out, nil
}
