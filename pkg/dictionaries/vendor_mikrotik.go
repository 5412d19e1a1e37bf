package dictionaries

import "github.com/coldwrap/radius/pkg/dictionary"

var mikrotikVendor = &dictionary.VendorDefinition{
	ID:          14988,
	Name:        "Mikrotik",
	Description: "Mikrotik RouterOS RADIUS attributes",
}

var mikrotikAttributes = []*dictionary.AttributeDefinition{
	{Code: 1, Name: "Mikrotik-Recv-Limit", DataType: dictionary.DataTypeInteger},
	{Code: 2, Name: "Mikrotik-Xmit-Limit", DataType: dictionary.DataTypeInteger},
	{Code: 3, Name: "Mikrotik-Group", DataType: dictionary.DataTypeString},
	{Code: 4, Name: "Mikrotik-Wireless-Forward", DataType: dictionary.DataTypeInteger},
	{Code: 5, Name: "Mikrotik-Wireless-Skip-Dot1x", DataType: dictionary.DataTypeInteger},
	{
		Code: 6, Name: "Mikrotik-Wireless-Enc-Algo", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"No-encryption": 0, "40-bit-WEP": 1, "104-bit-WEP": 2, "AES-CCM": 3, "TKIP": 4,
		},
	},
	{Code: 7, Name: "Mikrotik-Wireless-Enc-Key", DataType: dictionary.DataTypeString},
	{Code: 8, Name: "Mikrotik-Rate-Limit", DataType: dictionary.DataTypeString},
	{Code: 9, Name: "Mikrotik-Realm", DataType: dictionary.DataTypeString},
	{Code: 10, Name: "Mikrotik-Host-IP", DataType: dictionary.DataTypeIPAddr},
	{Code: 11, Name: "Mikrotik-Mark-Id", DataType: dictionary.DataTypeString},
	{Code: 12, Name: "Mikrotik-Advertise-URL", DataType: dictionary.DataTypeString},
	{Code: 13, Name: "Mikrotik-Advertise-Interval", DataType: dictionary.DataTypeInteger},
	{Code: 14, Name: "Mikrotik-Recv-Limit-Gigawords", DataType: dictionary.DataTypeInteger},
	{Code: 15, Name: "Mikrotik-Xmit-Limit-Gigawords", DataType: dictionary.DataTypeInteger},
	{Code: 16, Name: "Mikrotik-Wireless-PSK", DataType: dictionary.DataTypeString},
	{Code: 17, Name: "Mikrotik-Total-Limit", DataType: dictionary.DataTypeInteger},
	{Code: 18, Name: "Mikrotik-Total-Limit-Gigawords", DataType: dictionary.DataTypeInteger},
	{Code: 19, Name: "Mikrotik-Address-List", DataType: dictionary.DataTypeString},
	{Code: 20, Name: "Mikrotik-Wireless-MPKey", DataType: dictionary.DataTypeString},
	{Code: 21, Name: "Mikrotik-Wireless-Comment", DataType: dictionary.DataTypeString},
	{Code: 22, Name: "Mikrotik-Delegated-IPv6-Pool", DataType: dictionary.DataTypeString},
	{Code: 23, Name: "Mikrotik-DHCP-Option-Set", DataType: dictionary.DataTypeString},
	{Code: 26, Name: "Mikrotik-Wireless-VLANID", DataType: dictionary.DataTypeInteger},
	{Code: 27, Name: "Mikrotik-Wireless-VLANID-Type", DataType: dictionary.DataTypeInteger},
}
