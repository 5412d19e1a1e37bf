package dictionary

import (
	"fmt"
	"regexp"
)

// ValidationLevel classifies how serious a lint finding is.
type ValidationLevel string

const (
	LevelWarning ValidationLevel = "warning"
	LevelError   ValidationLevel = "error"
)

// ValidationIssue is one finding produced by Lint.
type ValidationIssue struct {
	Level   ValidationLevel
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s", i.Level, i.Message)
}

// wellKnownVendorIDs mirrors the IANA-assigned enterprise numbers most commonly seen
// in RADIUS dictionaries, used only to flag a suspicious vendor/name mismatch.
var wellKnownVendorIDs = map[uint32]string{
	9:     "Cisco",
	311:   "Microsoft",
	2636:  "Juniper",
	14988: "Mikrotik",
	14122: "WISPr",
}

var attributeNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Lint inspects a constructed dictionary for naming and well-known-vendor issues.
// It never mutates the dictionary and never fails the build; callers decide what to
// do with LevelError findings (e.g. fail CI, or just log).
func Lint(d *Dictionary) []ValidationIssue {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var issues []ValidationIssue

	for name, attr := range d.byName {
		if !attributeNameRe.MatchString(name) {
			issues = append(issues, ValidationIssue{
				Level:   LevelWarning,
				Message: fmt.Sprintf("attribute %q does not follow Name-With-Hyphens convention", name),
			})
		}
		if attr.DataType == DataTypeInteger && len(attr.Values) == 1 {
			issues = append(issues, ValidationIssue{
				Level:   LevelWarning,
				Message: fmt.Sprintf("attribute %q declares an enumeration with a single value", name),
			})
		}
	}

	for id, name := range d.vendorNames {
		if known, ok := wellKnownVendorIDs[id]; ok && known != name {
			issues = append(issues, ValidationIssue{
				Level:   LevelError,
				Message: fmt.Sprintf("vendor id %d is well-known as %q but registered here as %q", id, known, name),
			})
		}
	}

	return issues
}

// QuickLint loads and lints a dictionary file in one call, useful for CI checks over
// checked-in dictionary text files.
func QuickLint(path string) ([]ValidationIssue, error) {
	dict, err := (&Source{Path: path}).Load()
	if err != nil {
		return nil, err
	}
	return Lint(dict), nil
}
