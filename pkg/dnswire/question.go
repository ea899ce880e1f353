package dnswire

import "fmt"

// Question is a single entry in the question section of a DNS message.
type Question struct {
	Name  string
	Type  Type
	Class Class
}

// Append appends the question's wire encoding to dst: the encoded name
// followed by the big-endian type and class.
func (q *Question) Append(dst []byte) []byte {
	dst = AppendName(dst, q.Name)
	dst = append(dst, byte(q.Type>>8), byte(q.Type))
	dst = append(dst, byte(q.Class>>8), byte(q.Class))
	return dst
}

// DecodeQuestion decodes one question starting at off in msg and returns the
// offset just past its four fixed bytes.
func DecodeQuestion(msg []byte, off int) (Question, int, error) {
	name, off, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, 0, err
	}

	if off+4 > len(msg) {
		return Question{}, 0, fmt.Errorf("question for %q: truncated type/class", name)
	}

	question := Question{
		Name:  name,
		Type:  Type(uint16(msg[off])<<8 | uint16(msg[off+1])),
		Class: Class(uint16(msg[off+2])<<8 | uint16(msg[off+3])),
	}
	return question, off + 4, nil
}
