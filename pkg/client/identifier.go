package client

import "sync/atomic"

// IdentifierCounter generates RADIUS packet identifiers that increase monotonically and
// wrap modulo 256 (SPEC_FULL §5, §9's replacement for the source's mutable global counter).
// The zero value is ready to use; callers wanting an isolated identifier space construct
// their own instead of sharing one.
type IdentifierCounter struct {
	next uint32
}

// NewIdentifierCounter returns a counter whose first Next() call returns 0.
func NewIdentifierCounter() *IdentifierCounter {
	return &IdentifierCounter{}
}

// Next atomically returns the next identifier, wrapping 255 -> 0.
func (c *IdentifierCounter) Next() uint8 {
	return uint8(atomic.AddUint32(&c.next, 1) - 1)
}
