package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierCounterWraps(t *testing.T) {
	c := NewIdentifierCounter()

	for i := 0; i < 256; i++ {
		assert.Equal(t, uint8(i), c.Next())
	}
	assert.Equal(t, uint8(0), c.Next())
}

func TestIdentifierCounterStartsAtZero(t *testing.T) {
	c := NewIdentifierCounter()
	assert.Equal(t, uint8(0), c.Next())
	assert.Equal(t, uint8(1), c.Next())
}
