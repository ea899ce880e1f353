package dnswire

// Flags is the 16-bit flag word of the DNS header. Bit layout per RFC 1035
// section 4.1.1: QR at bit 15, OPCODE at bits 11-14, AA at 10, TC at 9,
// RD at 8, RA at 7, Z at bits 4-6, RCODE at bits 0-3.
type Flags uint16

// Bit positions and masks within the flag word
const (
	FLAG_QR_RESPONSE Flags = 1 << 15 // Query/Response indicator
	FLAG_AA          Flags = 1 << 10 // Authoritative Answer
	FLAG_TC          Flags = 1 << 9  // Truncation
	FLAG_RD          Flags = 1 << 8  // Recursion Desired
	FLAG_RA          Flags = 1 << 7  // Recursion Available

	opcodeShift = 11
	opcodeBits  = 0xF
	zShift      = 4
	zBits       = 0x7
	rcodeBits   = 0xF
)

// MakeFlags builds a flag word by shifting each field into its RFC 1035
// position.
func MakeFlags(qr bool, opcode Opcode, aa, tc, rd, ra bool, z uint8, rcode RCode) Flags {
	var flags Flags
	if qr {
		flags |= FLAG_QR_RESPONSE
	}
	flags |= Flags(opcode&opcodeBits) << opcodeShift
	if aa {
		flags |= FLAG_AA
	}
	if tc {
		flags |= FLAG_TC
	}
	if rd {
		flags |= FLAG_RD
	}
	if ra {
		flags |= FLAG_RA
	}
	flags |= Flags(z&zBits) << zShift
	flags |= Flags(rcode & rcodeBits)
	return flags
}

// QR reports whether the message is a response.
func (f Flags) QR() bool { return f&FLAG_QR_RESPONSE != 0 }

// Opcode extracts the operation code.
func (f Flags) Opcode() Opcode { return Opcode(f>>opcodeShift) & opcodeBits }

// AA reports whether the answer is authoritative.
func (f Flags) AA() bool { return f&FLAG_AA != 0 }

// TC reports whether the message was truncated.
func (f Flags) TC() bool { return f&FLAG_TC != 0 }

// RD reports whether recursion is desired.
func (f Flags) RD() bool { return f&FLAG_RD != 0 }

// RA reports whether recursion is available.
func (f Flags) RA() bool { return f&FLAG_RA != 0 }

// Z extracts the reserved bits.
func (f Flags) Z() uint8 { return uint8(f>>zShift) & zBits }

// RCode extracts the response code.
func (f Flags) RCode() RCode { return RCode(f) & rcodeBits }
