package dictionaries

import "github.com/coldwrap/radius/pkg/dictionary"

var wisprVendor = &dictionary.VendorDefinition{
	ID:          14122,
	Name:        "WISPr",
	Description: "WISPr (Wireless Internet Service Provider roaming)",
}

var wisprAttributes = []*dictionary.AttributeDefinition{
	{Code: 1, Name: "WISPr-Location-Id", DataType: dictionary.DataTypeString},
	{Code: 2, Name: "WISPr-Location-Name", DataType: dictionary.DataTypeString},
	{Code: 3, Name: "WISPr-Logoff-URL", DataType: dictionary.DataTypeString},
	{Code: 4, Name: "WISPr-Redirection-URL", DataType: dictionary.DataTypeString},
	{Code: 5, Name: "WISPr-Bandwidth-Min-Up", DataType: dictionary.DataTypeInteger},
	{Code: 6, Name: "WISPr-Bandwidth-Min-Down", DataType: dictionary.DataTypeInteger},
	{Code: 7, Name: "WISPr-Bandwidth-Max-Up", DataType: dictionary.DataTypeInteger},
	{Code: 8, Name: "WISPr-Bandwidth-Max-Down", DataType: dictionary.DataTypeInteger},
	{Code: 9, Name: "WISPr-Session-Terminate-Time", DataType: dictionary.DataTypeString},
}
