package client

import (
	"time"

	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/log"
)

// config collects the options a functional Option mutates before New validates it.
type config struct {
	addr                    string
	secret                  []byte
	dict                    *dictionary.Dictionary
	timeout                 time.Duration
	retryCount              int
	useMessageAuthenticator bool
	verifyMessageAuth       bool
	logger                  log.Logger
}

// Option configures a Client at construction time (SPEC_FULL §4.H).
type Option func(*config)

// WithAddr sets the RADIUS server address, host:port, e.g. "127.0.0.1:1812". Required.
func WithAddr(addr string) Option {
	return func(c *config) { c.addr = addr }
}

// WithSecret sets the shared secret used for every authenticator and Message-Authenticator
// computation. Required.
func WithSecret(secret []byte) Option {
	return func(c *config) { c.secret = secret }
}

// WithDictionary overrides the dictionary used to resolve attribute names and validate
// attribute widths. Defaults to dictionaries.NewDefault().
func WithDictionary(dict *dictionary.Dictionary) Option {
	return func(c *config) { c.dict = dict }
}

// WithTimeout sets the per-attempt socket read/write deadline. Defaults to 3 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRetry sets the number of send/receive attempts for an exchange (1 means no retry).
// Defaults to 1.
func WithRetry(n int) Option {
	return func(c *config) { c.retryCount = n }
}

// WithUseMessageAuthenticator controls whether outgoing requests carry a Message-Authenticator
// attribute (RFC 2869 §5.14). Defaults to true.
func WithUseMessageAuthenticator(use bool) Option {
	return func(c *config) { c.useMessageAuthenticator = use }
}

// WithVerifyMessageAuthenticator controls whether a response's Message-Authenticator, if
// present, is verified. Defaults to true.
func WithVerifyMessageAuthenticator(verify bool) Option {
	return func(c *config) { c.verifyMessageAuth = verify }
}

// WithLogger overrides the logger used for retry/timeout/error diagnostics. Defaults to
// log.NewDefaultLogger().
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}
