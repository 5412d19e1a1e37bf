package dictionaries

import (
	"testing"

	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	dict, err := NewDefault()
	require.NoError(t, err)

	attr, ok := dict.AttributeByName("User-Name")
	require.True(t, ok)
	assert.Equal(t, uint8(1), attr.Code)
	assert.Equal(t, dictionary.DataTypeString, attr.DataType)

	attr, ok = dict.AttributeByName("Acct-Status-Type")
	require.True(t, ok)
	name, ok := attr.ValueName(1)
	require.True(t, ok)
	assert.Equal(t, "Start", name)

	name, ok = dict.VendorName(14988)
	require.True(t, ok)
	assert.Equal(t, "Mikrotik", name)

	attr, ok = dict.AttributeByCode(14988, 3)
	require.True(t, ok)
	assert.Equal(t, "Mikrotik-Group", attr.Name)

	attr, ok = dict.AttributeByName("WISPr-Location-Id")
	require.True(t, ok)
	assert.True(t, attr.IsVendorSpecific())
	assert.Equal(t, int32(14122), attr.VendorID)
}

func TestNewDefaultHasNoDuplicateCollisions(t *testing.T) {
	_, err := NewDefault()
	assert.NoError(t, err, "bundled RFC and vendor tables must not collide on name or (vendor,code)")
}
