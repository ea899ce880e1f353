package dnswire

import (
	"fmt"
	"strings"
)

const (
	pointerMask = 0xC0 // top two bits of a length byte mark a compression pointer
	offsetMask  = 0x3F // remaining six bits hold the high part of the offset

	// maxPointerHops bounds the number of compression pointers followed while
	// decoding a single name, so a cyclic packet yields a decode error instead
	// of an endless walk.
	maxPointerHops = 128
)

// AppendName appends the wire encoding of a dotted domain name to dst: a
// one-byte length followed by the label's raw bytes for each non-empty label,
// terminated by a zero byte. An empty name encodes to the single zero byte.
func AppendName(dst []byte, name string) []byte {
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		dst = append(dst, byte(len(label)))
		dst = append(dst, label...)
	}
	return append(dst, 0)
}

// DecodeName decodes a domain name starting at off in msg, following
// compression pointers into the same buffer. It returns the dot-joined name
// and the offset just past the terminating zero byte, or just past the 2-byte
// pointer when the name ends in one: the pointer target never advances the
// caller's cursor.
func DecodeName(msg []byte, off int) (string, int, error) {
	var labels []string
	cursor := off
	end := -1 // caller offset, fixed once the first pointer is followed
	hops := 0

	for {
		if cursor < 0 || cursor >= len(msg) {
			return "", 0, fmt.Errorf("name at offset %d: truncated", off)
		}

		length := msg[cursor]

		switch {
		case length&pointerMask == pointerMask:
			if cursor+1 >= len(msg) {
				return "", 0, fmt.Errorf("name at offset %d: truncated compression pointer", off)
			}
			hops++
			if hops > maxPointerHops {
				return "", 0, fmt.Errorf("name at offset %d: compression pointer loop", off)
			}
			if end < 0 {
				end = cursor + 2
			}
			cursor = int(length&offsetMask)<<8 | int(msg[cursor+1])

		case length == 0:
			if end < 0 {
				end = cursor + 1
			}
			return strings.Join(labels, "."), end, nil

		default:
			if cursor+1+int(length) > len(msg) {
				return "", 0, fmt.Errorf("name at offset %d: label overruns buffer", off)
			}
			label := msg[cursor+1 : cursor+1+int(length)]
			for _, b := range label {
				if b > 0x7F {
					return "", 0, fmt.Errorf(
						"name at offset %d: non-ASCII byte 0x%02X in label", off, b,
					)
				}
			}
			labels = append(labels, string(label))
			cursor += 1 + int(length)
		}
	}
}
