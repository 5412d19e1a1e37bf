package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintFlagsBadNamingConvention(t *testing.T) {
	d := New()
	require.NoError(t, d.AddAttribute(&AttributeDefinition{Name: "user_name", Code: 1, VendorID: StandardVendorID, DataType: DataTypeString}))

	issues := Lint(d)
	require.Len(t, issues, 1)
	assert.Equal(t, LevelWarning, issues[0].Level)
}

func TestLintFlagsSingleValueEnum(t *testing.T) {
	d := New()
	require.NoError(t, d.AddAttribute(&AttributeDefinition{
		Name: "Odd-Attribute", Code: 1, VendorID: StandardVendorID, DataType: DataTypeInteger,
		Values: map[string]uint32{"Only": 1},
	}))

	issues := Lint(d)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "single value")
}

func TestLintFlagsWellKnownVendorMismatch(t *testing.T) {
	d := New()
	require.NoError(t, d.AddVendor(9, "NotCisco"))

	issues := Lint(d)
	require.Len(t, issues, 1)
	assert.Equal(t, LevelError, issues[0].Level)
}

func TestLintCleanDictionaryHasNoIssues(t *testing.T) {
	d := New()
	require.NoError(t, d.AddAttribute(&AttributeDefinition{Name: "User-Name", Code: 1, VendorID: StandardVendorID, DataType: DataTypeString}))
	require.NoError(t, d.AddVendor(9, "Cisco"))

	assert.Empty(t, Lint(d))
}

func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{Level: LevelWarning, Message: "test"}
	assert.Equal(t, "[warning] test", issue.String())
}
