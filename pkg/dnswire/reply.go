package dnswire

// NewQuery builds a single-question query message with the recursion desired
// bit set.
func NewQuery(id uint16, name string, qtype Type, qclass Class) *Message {
	return &Message{
		Header: Header{
			ID:      id,
			Flags:   FLAG_RD,
			QDCount: 1,
		},
		Questions: []Question{{Name: name, Type: qtype, Class: qclass}},
	}
}

// ServerFailure builds the SERVFAIL reply for a request whose forwarding
// produced no response. The reply copies the request's id, opcode and
// recursion desired bit, marks itself a response with rcode 2, and echoes the
// question section unvalidated with no answers.
func ServerFailure(request *Message) *Message {
	flags := MakeFlags(
		true,                          // qr: this is a response
		request.Header.Flags.Opcode(), // opcode copied from the request
		false,                         // aa
		false,                         // tc
		request.Header.Flags.RD(),     // rd copied from the request
		false,                         // ra
		0,                             // z
		RCODE_SERVER_FAILURE,
	)

	return &Message{
		Header: Header{
			ID:      request.Header.ID,
			Flags:   flags,
			QDCount: uint16(len(request.Questions)),
		},
		Questions: request.Questions,
	}
}
