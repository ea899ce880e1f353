// Package dnswire implements the RFC 1035 DNS wire format: the fixed
// 12-byte header, length-prefixed domain names with compression pointer
// decoding, questions, resource records, and whole messages.
//
// Resource record data is treated as an opaque byte payload; no
// record-type-specific interpretation happens in this package.
package dnswire

// Type represents a DNS record type.
type Type uint16

// DNS Type constants
const (
	TYPE_A     Type = 1  // a host address
	TYPE_NS    Type = 2  // an authoritative name server
	TYPE_CNAME Type = 5  // the canonical name for an alias
	TYPE_SOA   Type = 6  // marks the start of a zone of authority
	TYPE_PTR   Type = 12 // a domain name pointer
	TYPE_MX    Type = 15 // mail exchange
	TYPE_TXT   Type = 16 // text strings
	TYPE_AAAA  Type = 28 // IPv6 host address
)

// String returns the string representation of a DNS type
func (t Type) String() string {
	switch t {
	case TYPE_A:
		return "A"
	case TYPE_NS:
		return "NS"
	case TYPE_CNAME:
		return "CNAME"
	case TYPE_SOA:
		return "SOA"
	case TYPE_PTR:
		return "PTR"
	case TYPE_MX:
		return "MX"
	case TYPE_TXT:
		return "TXT"
	case TYPE_AAAA:
		return "AAAA"
	default:
		return "UNKNOWN"
	}
}

// Class represents a DNS class.
type Class uint16

// DNS Class constants
const (
	CLASS_IN Class = 1 // Internet
	CLASS_CS Class = 2 // the CSNET class (Obsolete)
	CLASS_CH Class = 3 // the CHAOS class
	CLASS_HS Class = 4 // Hesiod
)

// String returns the string representation of a DNS class
func (c Class) String() string {
	switch c {
	case CLASS_IN:
		return "IN"
	case CLASS_CS:
		return "CS"
	case CLASS_CH:
		return "CH"
	case CLASS_HS:
		return "HS"
	default:
		return "UNKNOWN"
	}
}

// Opcode represents a DNS operation code.
type Opcode uint16

// DNS Opcode constants
const (
	OPCODE_QUERY  Opcode = 0 // Standard query
	OPCODE_IQUERY Opcode = 1 // Inverse query (obsolete)
	OPCODE_STATUS Opcode = 2 // Server status request
)

// String returns the string representation of a DNS opcode
func (o Opcode) String() string {
	switch o {
	case OPCODE_QUERY:
		return "QUERY"
	case OPCODE_IQUERY:
		return "IQUERY"
	case OPCODE_STATUS:
		return "STATUS"
	default:
		return "UNKNOWN"
	}
}

// RCode represents a DNS response code.
type RCode uint16

// DNS Response Code constants
const (
	RCODE_NO_ERROR        RCode = 0 // No error
	RCODE_FORMAT_ERROR    RCode = 1 // Format error
	RCODE_SERVER_FAILURE  RCode = 2 // Server failure
	RCODE_NAME_ERROR      RCode = 3 // Name error (domain doesn't exist)
	RCODE_NOT_IMPLEMENTED RCode = 4 // Not implemented
	RCODE_REFUSED         RCode = 5 // Refused
)

// String returns the string representation of a DNS response code
func (r RCode) String() string {
	switch r {
	case RCODE_NO_ERROR:
		return "NOERROR"
	case RCODE_FORMAT_ERROR:
		return "FORMERR"
	case RCODE_SERVER_FAILURE:
		return "SERVFAIL"
	case RCODE_NAME_ERROR:
		return "NXDOMAIN"
	case RCODE_NOT_IMPLEMENTED:
		return "NOTIMP"
	case RCODE_REFUSED:
		return "REFUSED"
	default:
		return "UNKNOWN"
	}
}
