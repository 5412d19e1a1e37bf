package facade

import (
	"fmt"

	"github.com/coldwrap/radius/pkg/dictionary"
	"github.com/coldwrap/radius/pkg/packet"
)

// addAttributesByName resolves each name in attrs against dict and appends the encoded
// attribute to pkt, converting non-string values to text via fmt.Sprint before parsing.
// It fails with dictionary.ErrUnknownAttributeName for any name not present in dict.
func addAttributesByName(pkt *packet.Packet, dict *dictionary.Dictionary, attrs map[string]interface{}) error {
	for name, value := range attrs {
		if err := addAttributeByName(pkt, dict, name, value); err != nil {
			return err
		}
	}
	return nil
}

func addAttributeByName(pkt *packet.Packet, dict *dictionary.Dictionary, name string, value interface{}) error {
	def, ok := dict.AttributeByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", dictionary.ErrUnknownAttributeName, name)
	}

	text, ok := value.(string)
	if !ok {
		text = fmt.Sprint(value)
	}

	data, err := packet.SetFromString(def.DataType, text, def)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	attr := &packet.Attribute{Code: def.Code, VendorID: def.VendorID, Data: data, Def: def}
	pkt.Attributes = append(pkt.Attributes, attr)
	return nil
}
