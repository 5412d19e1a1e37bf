package dictionary

import "errors"

var (
	// ErrDuplicateName is returned when add_attribute registers a name already present.
	ErrDuplicateName = errors.New("dictionary: duplicate attribute name")
	// ErrDuplicateCode is returned when add_attribute registers a (vendor, code) pair already present.
	ErrDuplicateCode = errors.New("dictionary: duplicate attribute code")
	// ErrInvalidVendorID is returned when add_vendor is called with a negative or zero id.
	ErrInvalidVendorID = errors.New("dictionary: invalid vendor id")
	// ErrUnknownAttributeName is returned by name-based lookups that fail.
	ErrUnknownAttributeName = errors.New("dictionary: unknown attribute name")
	// ErrDictionarySyntax is returned by the text grammar parser on a malformed line.
	ErrDictionarySyntax = errors.New("dictionary: syntax error")
)
