package dnswire

import "fmt"

// Record is a resource record. Data carries the record payload verbatim; its
// interpretation is type-dependent and out of scope here.
type Record struct {
	Name  string
	Type  Type
	Class Class
	TTL   uint32
	Data  []byte
}

// Append appends the record's wire encoding to dst: the encoded name, then
// big-endian type, class, TTL and data length, then the raw data bytes.
func (r *Record) Append(dst []byte) []byte {
	dst = AppendName(dst, r.Name)
	dst = append(dst, byte(r.Type>>8), byte(r.Type))
	dst = append(dst, byte(r.Class>>8), byte(r.Class))
	dst = append(dst,
		byte(r.TTL>>24), byte(r.TTL>>16), byte(r.TTL>>8), byte(r.TTL),
	)
	dataLength := len(r.Data)
	dst = append(dst, byte(dataLength>>8), byte(dataLength))
	dst = append(dst, r.Data...)
	return dst
}

// DecodeRecord decodes one resource record starting at off in msg and returns
// the offset advanced past its data bytes.
func DecodeRecord(msg []byte, off int) (Record, int, error) {
	name, off, err := DecodeName(msg, off)
	if err != nil {
		return Record{}, 0, err
	}

	if off+10 > len(msg) {
		return Record{}, 0, fmt.Errorf("record for %q: truncated fixed fields", name)
	}

	record := Record{
		Name:  name,
		Type:  Type(uint16(msg[off])<<8 | uint16(msg[off+1])),
		Class: Class(uint16(msg[off+2])<<8 | uint16(msg[off+3])),
		TTL: uint32(msg[off+4])<<24 | uint32(msg[off+5])<<16 |
			uint32(msg[off+6])<<8 | uint32(msg[off+7]),
	}
	dataLength := int(msg[off+8])<<8 | int(msg[off+9])
	off += 10

	if off+dataLength > len(msg) {
		return Record{}, 0, fmt.Errorf(
			"record for %q: data length %d overruns buffer", name, dataLength,
		)
	}
	record.Data = msg[off : off+dataLength]

	return record, off + dataLength, nil
}
