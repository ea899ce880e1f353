package dnswire

import (
	"bytes"
	"testing"
)

func TestAppendName(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected []byte
	}{
		{
			name:   "two labels",
			domain: "example.com",
			expected: []byte{
				7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
				3, 'c', 'o', 'm',
				0,
			},
		},
		{
			name:     "single label",
			domain:   "localhost",
			expected: append(append([]byte{9}, "localhost"...), 0),
		},
		{
			name:     "empty name",
			domain:   "",
			expected: []byte{0},
		},
		{
			name:     "root dot",
			domain:   ".",
			expected: []byte{0},
		},
		{
			name:   "embedded empty labels are skipped",
			domain: "a..b",
			expected: []byte{
				1, 'a',
				1, 'b',
				0,
			},
		},
		{
			name:   "trailing dot",
			domain: "example.com.",
			expected: []byte{
				7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
				3, 'c', 'o', 'm',
				0,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := AppendName(nil, test.domain)
			if !bytes.Equal(result, test.expected) {
				t.Errorf("got % X, want % X", result, test.expected)
			}
		})
	}
}

func TestDecodeNameRoundTrip(t *testing.T) {
	tests := []string{
		"example.com",
		"www.example.com",
		"a.b.c.d.e",
		"xn--bcher-kva.example",
		"",
	}

	for _, domain := range tests {
		t.Run(domain, func(t *testing.T) {
			encoded := AppendName(nil, domain)

			decoded, off, err := DecodeName(encoded, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decoded != domain {
				t.Errorf("got %q, want %q", decoded, domain)
			}
			if off != len(encoded) {
				t.Errorf("offset: got %d, want %d", off, len(encoded))
			}
		})
	}
}

func TestDecodeNameAtOffset(t *testing.T) {
	// Name sitting after a fake 12-byte header.
	msg := make([]byte, HeaderSize)
	msg = AppendName(msg, "test.example.org")

	decoded, off, err := DecodeName(msg, HeaderSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "test.example.org" {
		t.Errorf("got %q, want %q", decoded, "test.example.org")
	}
	if off != len(msg) {
		t.Errorf("offset: got %d, want %d", off, len(msg))
	}
}

func TestDecodeNameCompressionPointer(t *testing.T) {
	// Buffer with the label "example" at offset 12, then a pointer (0xC0, 12)
	// at the end. Decoding the pointer location must yield "example".
	msg := make([]byte, HeaderSize)
	msg = AppendName(msg, "example")
	pointerOffset := len(msg)
	msg = append(msg, 0xC0, HeaderSize)

	decoded, off, err := DecodeName(msg, pointerOffset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "example" {
		t.Errorf("got %q, want %q", decoded, "example")
	}
	// Only the two pointer bytes are consumed in the original scan.
	if off != pointerOffset+2 {
		t.Errorf("offset: got %d, want %d", off, pointerOffset+2)
	}
}

func TestDecodeNameLabelsThenPointer(t *testing.T) {
	// "foo.example.com" written as the label "foo" followed by a pointer to
	// "example.com" stored earlier in the buffer.
	msg := make([]byte, HeaderSize)
	msg = AppendName(msg, "example.com")
	start := len(msg)
	msg = append(msg, 3, 'f', 'o', 'o')
	msg = append(msg, 0xC0, HeaderSize)

	decoded, off, err := DecodeName(msg, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "foo.example.com" {
		t.Errorf("got %q, want %q", decoded, "foo.example.com")
	}
	if off != len(msg) {
		t.Errorf("offset: got %d, want %d", off, len(msg))
	}
}

func TestDecodeNamePointerCycle(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		off  int
	}{
		{
			name: "self pointer",
			msg:  []byte{0xC0, 0x00},
			off:  0,
		},
		{
			name: "two pointer cycle",
			msg:  []byte{0xC0, 0x02, 0xC0, 0x00},
			off:  0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, _, err := DecodeName(test.msg, test.off); err == nil {
				t.Error("expected pointer loop error, got none")
			}
		})
	}
}

func TestDecodeNameMalformed(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		off  int
	}{
		{
			name: "offset past buffer",
			msg:  []byte{0},
			off:  5,
		},
		{
			name: "label overruns buffer",
			msg:  []byte{5, 'a', 'b'},
			off:  0,
		},
		{
			name: "missing terminator",
			msg:  []byte{1, 'a'},
			off:  0,
		},
		{
			name: "truncated pointer",
			msg:  []byte{0xC0},
			off:  0,
		},
		{
			name: "pointer past buffer",
			msg:  []byte{0xC0, 0x7F},
			off:  0,
		},
		{
			name: "non-ASCII label byte",
			msg:  []byte{2, 0xFF, 'a', 0},
			off:  0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, _, err := DecodeName(test.msg, test.off); err == nil {
				t.Error("expected decode error, got none")
			}
		})
	}
}
