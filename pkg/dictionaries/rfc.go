package dictionaries

import "github.com/coldwrap/radius/pkg/dictionary"

// standardRFCAttributes covers the attribute space defined by RFC 2865 (authentication),
// RFC 2866 (accounting), RFC 2869 (extensions), and RFC 3576 (CoA/Disconnect).
var standardRFCAttributes = []*dictionary.AttributeDefinition{
	{Code: 1, Name: "User-Name", DataType: dictionary.DataTypeString},
	{Code: 2, Name: "User-Password", DataType: dictionary.DataTypeOctets},
	{Code: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets},
	{Code: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{Code: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},
	{
		Code: 6, Name: "Service-Type", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User": 1, "Framed-User": 2, "Callback-Login-User": 3,
			"Callback-Framed-User": 4, "Outbound-User": 5, "Administrative-User": 6,
			"NAS-Prompt-User": 7, "Authenticate-Only": 8, "Callback-NAS-Prompt": 9,
			"Call-Check": 10, "Callback-Administrative": 11, "Authorize-Only": 17,
			"Framed-Management": 18,
		},
	},
	{
		Code: 7, Name: "Framed-Protocol", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP": 1, "SLIP": 2, "ARAP": 3, "Gandalf-SLML": 4,
			"Xylogics-IPX-SLIP": 5, "X.75-Synchronous": 6,
		},
	},
	{Code: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{Code: 9, Name: "Framed-IP-Netmask", DataType: dictionary.DataTypeIPAddr},
	{
		Code: 10, Name: "Framed-Routing", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{"None": 0, "Broadcast": 1, "Listen": 2, "Broadcast-Listen": 3},
	},
	{Code: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},
	{Code: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger},
	{
		Code: 13, Name: "Framed-Compression", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None": 0, "Van-Jacobson-TCP-IP": 1, "IPX-Header-Compression": 2, "Stac-LZS": 3,
		},
	},
	{Code: 14, Name: "Login-IP-Host", DataType: dictionary.DataTypeIPAddr},
	{
		Code: 15, Name: "Login-Service", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet": 0, "Rlogin": 1, "TCP-Clear": 2, "PortMaster": 3,
			"LAT": 4, "X25-PAD": 5, "X25-T3POS": 6, "TCP-Clear-Quiet": 8,
		},
	},
	{
		Code: 16, Name: "Login-TCP-Port", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{"Telnet": 23, "Rlogin": 513, "Rsh": 514},
	},
	{Code: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},
	{Code: 19, Name: "Callback-Number", DataType: dictionary.DataTypeString},
	{Code: 20, Name: "Callback-Id", DataType: dictionary.DataTypeString},
	{Code: 22, Name: "Framed-Route", DataType: dictionary.DataTypeString},
	{Code: 23, Name: "Framed-IPX-Network", DataType: dictionary.DataTypeIPAddr},
	{Code: 24, Name: "State", DataType: dictionary.DataTypeOctets},
	{Code: 25, Name: "Class", DataType: dictionary.DataTypeOctets},
	{Code: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},
	{Code: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},
	{
		Code: 29, Name: "Termination-Action", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{"Default": 0, "RADIUS-Request": 1},
	},
	{Code: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},
	{Code: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},
	{Code: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},
	{Code: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},
	{Code: 34, Name: "Login-LAT-Service", DataType: dictionary.DataTypeString},
	{Code: 35, Name: "Login-LAT-Node", DataType: dictionary.DataTypeString},
	{Code: 36, Name: "Login-LAT-Group", DataType: dictionary.DataTypeOctets},
	{Code: 37, Name: "Framed-AppleTalk-Link", DataType: dictionary.DataTypeInteger},
	{Code: 38, Name: "Framed-AppleTalk-Network", DataType: dictionary.DataTypeInteger},
	{Code: 39, Name: "Framed-AppleTalk-Zone", DataType: dictionary.DataTypeString},
	{
		Code: 40, Name: "Acct-Status-Type", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Start": 1, "Stop": 2, "Interim-Update": 3, "Accounting-On": 7, "Accounting-Off": 8,
		},
	},
	{Code: 41, Name: "Acct-Delay-Time", DataType: dictionary.DataTypeInteger},
	{Code: 42, Name: "Acct-Input-Octets", DataType: dictionary.DataTypeInteger},
	{Code: 43, Name: "Acct-Output-Octets", DataType: dictionary.DataTypeInteger},
	{Code: 44, Name: "Acct-Session-Id", DataType: dictionary.DataTypeString},
	{
		Code: 45, Name: "Acct-Authentic", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{"RADIUS": 1, "Local": 2, "Remote": 3, "Diameter": 4},
	},
	{Code: 46, Name: "Acct-Session-Time", DataType: dictionary.DataTypeInteger},
	{Code: 47, Name: "Acct-Input-Packets", DataType: dictionary.DataTypeInteger},
	{Code: 48, Name: "Acct-Output-Packets", DataType: dictionary.DataTypeInteger},
	{
		Code: 49, Name: "Acct-Terminate-Cause", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"User-Request": 1, "Lost-Carrier": 2, "Lost-Service": 3, "Idle-Timeout": 4,
			"Session-Timeout": 5, "Admin-Reset": 6, "Admin-Reboot": 7, "Port-Error": 8,
			"NAS-Error": 9, "NAS-Request": 10, "NAS-Reboot": 11,
		},
	},
	{Code: 50, Name: "Acct-Multi-Session-Id", DataType: dictionary.DataTypeString},
	{Code: 51, Name: "Acct-Link-Count", DataType: dictionary.DataTypeInteger},
	{Code: 52, Name: "Acct-Input-Gigawords", DataType: dictionary.DataTypeInteger},
	{Code: 53, Name: "Acct-Output-Gigawords", DataType: dictionary.DataTypeInteger},
	{Code: 55, Name: "Event-Timestamp", DataType: dictionary.DataTypeInteger},
	{Code: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},
	{
		Code: 61, Name: "NAS-Port-Type", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Async": 0, "Sync": 1, "ISDN": 2, "ISDN-V120": 3, "ISDN-V110": 4, "Virtual": 5,
			"Ethernet": 15, "xDSL": 16, "Cable": 17, "Wireless-Other": 18, "Wireless-802.11": 19,
		},
	},
	{Code: 62, Name: "Port-Limit", DataType: dictionary.DataTypeInteger},
	{Code: 63, Name: "Login-LAT-Port", DataType: dictionary.DataTypeString},
	{Code: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},
	{Code: 80, Name: "Message-Authenticator", DataType: dictionary.DataTypeOctets},
	{Code: 85, Name: "Acct-Interim-Interval", DataType: dictionary.DataTypeInteger},
	{Code: 87, Name: "NAS-Port-Id", DataType: dictionary.DataTypeString},
	{Code: 88, Name: "Framed-Pool", DataType: dictionary.DataTypeString},
	{Code: 95, Name: "NAS-IPv6-Address", DataType: dictionary.DataTypeIPv6Addr},
	{Code: 97, Name: "Framed-IPv6-Prefix", DataType: dictionary.DataTypeIPv6Prefix},
	{Code: 98, Name: "Login-IPv6-Host", DataType: dictionary.DataTypeIPv6Addr},
	{Code: 99, Name: "Framed-IPv6-Route", DataType: dictionary.DataTypeString},
	{Code: 100, Name: "Framed-IPv6-Pool", DataType: dictionary.DataTypeString},
	{
		Code: 101, Name: "Error-Cause", DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Residual-Context-Removed": 201, "Invalid-EAP-Packet": 202,
			"Unsupported-Attribute": 401, "Missing-Attribute": 402,
			"NAS-Identification-Mismatch": 403, "Invalid-Request": 404,
			"Unsupported-Service": 405, "Unsupported-Extension": 406,
			"Invalid-Attribute-Value": 407, "Administratively-Prohibited": 501,
			"Proxy-Request-Not-Routable": 502, "Session-Context-Not-Found": 503,
			"Session-Context-Not-Removable": 504, "Proxy-Processing-Error": 505,
			"Resources-Unavailable": 506, "Request-Initiated": 507,
			"Multiple-Session-Selection-Unsupported": 508,
		},
	},
}
