package dictionary

import (
	"fmt"
	"sync"
)

type attrKey struct {
	vendorID int32
	code     uint8
}

// Dictionary is a mapping set between attribute names, (vendor, type-code) pairs, and
// vendor names, per RADIUS-DESIGN §3/§4.A. It is safe for concurrent readers once
// construction (Add*) has finished; the RWMutex guards the construction window itself
// (e.g. a background loader racing early readers), matching the teacher's root
// dictionary pattern rather than assuming single-threaded setup.
type Dictionary struct {
	mu sync.RWMutex

	byName map[string]*AttributeDefinition
	byCode map[attrKey]*AttributeDefinition

	vendorNames map[uint32]string
	vendorIDs   map[string]uint32
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		byName:      make(map[string]*AttributeDefinition),
		byCode:      make(map[attrKey]*AttributeDefinition),
		vendorNames: make(map[uint32]string),
		vendorIDs:   make(map[string]uint32),
	}
}

// AddVendor registers a vendor namespace. Fails with ErrInvalidVendorID if id is 0,
// or ErrDuplicateName if the vendor name is already registered under a different id.
func (d *Dictionary) AddVendor(id uint32, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVendorID, id)
	}

	if existing, ok := d.vendorIDs[name]; ok && existing != id {
		return fmt.Errorf("%w: vendor %q already registered as id %d", ErrDuplicateName, name, existing)
	}

	d.vendorNames[id] = name
	d.vendorIDs[name] = id
	return nil
}

// AddAttribute registers an attribute descriptor. attr.VendorID must be StandardVendorID
// or a vendor id already added via AddVendor. Fails with ErrDuplicateName if attr.Name
// is already registered anywhere in the dictionary, or ErrDuplicateCode if (VendorID, Code)
// is already registered, or ErrInvalidVendorID if VendorID is negative and not the sentinel.
func (d *Dictionary) AddAttribute(attr *AttributeDefinition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if attr.VendorID != StandardVendorID && attr.VendorID < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVendorID, attr.VendorID)
	}

	if _, exists := d.byName[attr.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, attr.Name)
	}

	key := attrKey{vendorID: attr.VendorID, code: attr.Code}
	if _, exists := d.byCode[key]; exists {
		return fmt.Errorf("%w: vendor=%d code=%d", ErrDuplicateCode, attr.VendorID, attr.Code)
	}

	d.byName[attr.Name] = attr
	d.byCode[key] = attr
	return nil
}

// AddAttributes registers a batch of standard (non-vendor) attribute descriptors.
func (d *Dictionary) AddAttributes(attrs []*AttributeDefinition) error {
	for _, attr := range attrs {
		if err := d.AddAttribute(attr); err != nil {
			return err
		}
	}
	return nil
}

// AddVendorDefinition registers a vendor and its full attribute set in one call.
func (d *Dictionary) AddVendorDefinition(v *VendorDefinition, attrs []*AttributeDefinition) error {
	if err := d.AddVendor(v.ID, v.Name); err != nil {
		return err
	}
	for _, attr := range attrs {
		attr.VendorID = int32(v.ID)
		if err := d.AddAttribute(attr); err != nil {
			return err
		}
	}
	return nil
}

// AttributeByCode looks up a descriptor by (vendor_id, type_code). vendorID is
// StandardVendorID for RFC attributes.
func (d *Dictionary) AttributeByCode(vendorID int32, code uint8) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attr, ok := d.byCode[attrKey{vendorID: vendorID, code: code}]
	return attr, ok
}

// AttributeByName looks up a descriptor by its dictionary name.
func (d *Dictionary) AttributeByName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attr, ok := d.byName[name]
	return attr, ok
}

// VendorName returns the registered name for a vendor id.
func (d *Dictionary) VendorName(vendorID uint32) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	name, ok := d.vendorNames[vendorID]
	return name, ok
}

// VendorID returns the registered id for a vendor name, or StandardVendorID if not found.
func (d *Dictionary) VendorID(name string) int32 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if id, ok := d.vendorIDs[name]; ok {
		return int32(id)
	}
	return StandardVendorID
}

// Vendors returns all registered vendor definitions.
func (d *Dictionary) Vendors() []*VendorDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*VendorDefinition, 0, len(d.vendorNames))
	for id, name := range d.vendorNames {
		out = append(out, &VendorDefinition{ID: id, Name: name})
	}
	return out
}
