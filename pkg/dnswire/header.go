package dnswire

import "fmt"

// HeaderSize is the fixed size of a DNS message header in bytes.
const HeaderSize = 12

// Header is the fixed 12-byte DNS message header.
type Header struct {
	ID      uint16
	Flags   Flags
	QDCount uint16 // number of entries in the question section
	ANCount uint16 // number of records in the answer section
	NSCount uint16 // number of records in the authority section
	ARCount uint16 // number of records in the additional section
}

// Pack converts the Header to its 12-byte big-endian wire representation.
func (h *Header) Pack() []byte {
	header := make([]byte, HeaderSize)
	header[0] = byte(h.ID >> 8)
	header[1] = byte(h.ID & 0xFF)
	header[2] = byte(h.Flags >> 8)
	header[3] = byte(h.Flags & 0xFF)
	header[4] = byte(h.QDCount >> 8)
	header[5] = byte(h.QDCount & 0xFF)
	header[6] = byte(h.ANCount >> 8)
	header[7] = byte(h.ANCount & 0xFF)
	header[8] = byte(h.NSCount >> 8)
	header[9] = byte(h.NSCount & 0xFF)
	header[10] = byte(h.ARCount >> 8)
	header[11] = byte(h.ARCount & 0xFF)

	return header
}

// ParseHeader reads a Header from the first 12 bytes of data. Trailing bytes
// are ignored; fewer than 12 bytes is an error.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf(
			"header too short: %d bytes, need at least %d",
			len(data), HeaderSize,
		)
	}

	return Header{
		ID:      uint16(data[0])<<8 | uint16(data[1]),
		Flags:   Flags(uint16(data[2])<<8 | uint16(data[3])),
		QDCount: uint16(data[4])<<8 | uint16(data[5]),
		ANCount: uint16(data[6])<<8 | uint16(data[7]),
		NSCount: uint16(data[8])<<8 | uint16(data[9]),
		ARCount: uint16(data[10])<<8 | uint16(data[11]),
	}, nil
}
