// Package dictionaries bundles a ready-to-use dictionary.Dictionary covering the
// RFC 2865/2866/2869/3576 standard attribute set plus a handful of common vendor
// spaces, so callers don't need to ship their own dictionary text file for the
// common case.
package dictionaries

import "github.com/coldwrap/radius/pkg/dictionary"

// NewDefault builds a dictionary pre-loaded with the RFC standard attributes and
// the Mikrotik and WISPr vendor spaces. Returns an error only if the bundled
// tables themselves collide, which would be a programming error in this package.
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	if err := dict.AddAttributes(standardRFCAttributes); err != nil {
		return nil, err
	}

	if err := dict.AddVendorDefinition(mikrotikVendor, mikrotikAttributes); err != nil {
		return nil, err
	}

	if err := dict.AddVendorDefinition(wisprVendor, wisprAttributes); err != nil {
		return nil, err
	}

	return dict, nil
}
