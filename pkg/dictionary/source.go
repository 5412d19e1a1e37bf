package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source loads a Dictionary from the text grammar of RADIUS-DESIGN §6:
// line-oriented, '#' comments, blank lines ignored, directives ATTRIBUTE / VALUE /
// VENDOR / VENDORATTR / $INCLUDE. There is no ecosystem library for this bespoke
// grammar (it is unique to the RADIUS dictionary file format popularized by
// FreeRADIUS), so it is a hand-written line scanner rather than a wired dependency —
// see DESIGN.md.
type Source struct {
	// Path is the root dictionary file to load. $INCLUDE directives resolve relative
	// to the directory containing the file that references them.
	Path string
}

// Load parses the dictionary file at s.Path (and any $INCLUDE'd files) into a fresh
// Dictionary.
func (s *Source) Load() (*Dictionary, error) {
	dict := New()
	if err := loadFile(dict, s.Path, map[string]bool{}); err != nil {
		return nil, err
	}
	return dict, nil
}

// LoadReader parses r as a single dictionary file with no $INCLUDE support (there is
// no filesystem context to resolve include paths against).
func LoadReader(r io.Reader) (*Dictionary, error) {
	dict := New()
	if err := parseLines(dict, r, "<reader>"); err != nil {
		return nil, err
	}
	return dict, nil
}

func loadFile(dict *Dictionary, path string, seen map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("dictionary: resolve path %q: %w", path, err)
	}
	if seen[abs] {
		return fmt.Errorf("dictionary: circular $INCLUDE of %q", path)
	}
	seen[abs] = true

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dictionary: open %q: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	return parseLinesWithIncludes(dict, f, path, dir, seen)
}

func parseLines(dict *Dictionary, r io.Reader, sourceName string) error {
	return parseLinesWithIncludes(dict, r, sourceName, "", nil)
}

func parseLinesWithIncludes(dict *Dictionary, r io.Reader, sourceName, dir string, seen map[string]bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		keyword := strings.ToUpper(fields[0])

		switch keyword {
		case "ATTRIBUTE":
			if err := parseAttribute(dict, fields); err != nil {
				return syntaxError(sourceName, lineNo, err)
			}

		case "VALUE":
			if err := parseValue(dict, fields); err != nil {
				return syntaxError(sourceName, lineNo, err)
			}

		case "VENDOR":
			if err := parseVendor(dict, fields); err != nil {
				return syntaxError(sourceName, lineNo, err)
			}

		case "VENDORATTR":
			if err := parseVendorAttr(dict, fields); err != nil {
				return syntaxError(sourceName, lineNo, err)
			}

		case "$INCLUDE":
			if len(fields) != 2 {
				return syntaxError(sourceName, lineNo, fmt.Errorf("$INCLUDE requires exactly one path"))
			}
			if seen == nil {
				return syntaxError(sourceName, lineNo, fmt.Errorf("$INCLUDE not supported when loading from a reader"))
			}
			includePath := fields[1]
			if !filepath.IsAbs(includePath) {
				includePath = filepath.Join(dir, includePath)
			}
			if err := loadFile(dict, includePath, seen); err != nil {
				return err
			}

		default:
			return syntaxError(sourceName, lineNo, fmt.Errorf("unrecognized directive %q", fields[0]))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dictionary: read %q: %w", sourceName, err)
	}
	return nil
}

func syntaxError(sourceName string, lineNo int, cause error) error {
	return fmt.Errorf("%w: %s:%d: %v", ErrDictionarySyntax, sourceName, lineNo, cause)
}

func parseDataType(s string) (DataType, error) {
	switch strings.ToLower(s) {
	case "string":
		return DataTypeString, nil
	case "octets":
		return DataTypeOctets, nil
	case "integer", "date":
		return DataTypeInteger, nil
	case "ipaddr":
		return DataTypeIPAddr, nil
	case "ipv6addr":
		return DataTypeIPv6Addr, nil
	case "ipv6prefix":
		return DataTypeIPv6Prefix, nil
	default:
		return "", fmt.Errorf("unknown attribute type %q", s)
	}
}

func parseAttribute(dict *Dictionary, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("ATTRIBUTE requires <name> <code> <type>")
	}
	code, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid attribute code %q: %w", fields[2], err)
	}
	dataType, err := parseDataType(fields[3])
	if err != nil {
		return err
	}
	return dict.AddAttribute(&AttributeDefinition{
		Name:     fields[1],
		Code:     uint8(code),
		VendorID: StandardVendorID,
		DataType: dataType,
	})
}

func parseValue(dict *Dictionary, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("VALUE requires <attribute-name> <enum-name> <integer-value>")
	}
	attr, ok := dict.AttributeByName(fields[1])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttributeName, fields[1])
	}
	val, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid VALUE integer %q: %w", fields[3], err)
	}
	if attr.Values == nil {
		attr.Values = make(map[string]uint32)
	}
	attr.Values[fields[2]] = uint32(val)
	return nil
}

func parseVendor(dict *Dictionary, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("VENDOR requires <id> <name>")
	}
	id, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid vendor id %q: %w", fields[1], err)
	}
	return dict.AddVendor(uint32(id), fields[2])
}

func parseVendorAttr(dict *Dictionary, fields []string) error {
	if len(fields) != 5 {
		return fmt.Errorf("VENDORATTR requires <vendor-id> <name> <code> <type>")
	}
	vendorID, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid vendor id %q: %w", fields[1], err)
	}
	code, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid attribute code %q: %w", fields[3], err)
	}
	dataType, err := parseDataType(fields[4])
	if err != nil {
		return err
	}
	return dict.AddAttribute(&AttributeDefinition{
		Name:     fields[2],
		Code:     uint8(code),
		VendorID: int32(vendorID),
		DataType: dataType,
	})
}
