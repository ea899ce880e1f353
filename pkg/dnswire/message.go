package dnswire

import "fmt"

// Message is a whole DNS message: one header, an ordered question section and
// an ordered answer section. Authority and additional records are declared in
// the header counts but never parsed or emitted.
type Message struct {
	Header    Header
	Questions []Question
	Answers   []Record
}

// Pack serializes the message: header bytes, then each question and each
// answer in list order. The header counts are emitted as-is; it is the
// caller's job to keep QDCount and ANCount in step with the lists. Names are
// never compressed on output.
func (m *Message) Pack() []byte {
	out := m.Header.Pack()
	for i := range m.Questions {
		out = m.Questions[i].Append(out)
	}
	for i := range m.Answers {
		out = m.Answers[i].Append(out)
	}
	return out
}

// Unpack parses a DNS message: the header from the first 12 bytes, then
// exactly QDCount questions and ANCount answers on a single shared cursor.
// Authority and additional sections are left unconsumed even when the header
// declares them.
func Unpack(data []byte) (*Message, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	message := &Message{Header: header}
	off := HeaderSize

	for i := 0; i < int(header.QDCount); i++ {
		question, next, err := DecodeQuestion(data, off)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		message.Questions = append(message.Questions, question)
		off = next
	}

	for i := 0; i < int(header.ANCount); i++ {
		answer, next, err := DecodeRecord(data, off)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i, err)
		}
		message.Answers = append(message.Answers, answer)
		off = next
	}

	return message, nil
}
