package pgpwire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The wire fixtures below pin the exact byte layout; changing them is a
// format break, not a refactor.

func TestParseSymmetricallyEncryptedDataFixture(t *testing.T) {
	wire := []byte{0xC9, 0x08, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	p, n, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n != len(wire) {
		t.Errorf("Parse() consumed %d bytes, want %d", n, len(wire))
	}
	sed, ok := p.(*SymmetricallyEncryptedDataPacket)
	if !ok {
		t.Fatalf("Parse() = %T, want *SymmetricallyEncryptedDataPacket", p)
	}
	if !bytes.Equal(sed.Data, wire[2:]) {
		t.Errorf("Data = % x, want % x", sed.Data, wire[2:])
	}

	out, err := Serialize(p)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if !bytes.Equal(out, wire) {
		t.Errorf("Serialize() = % x, want % x", out, wire)
	}
}

func TestSerializeSymmetricallyEncryptedDataFixture(t *testing.T) {
	p := &SymmetricallyEncryptedDataPacket{
		Data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	}
	out, err := Serialize(p)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	want := []byte{0xC9, 0x08, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(out, want) {
		t.Errorf("Serialize() = % x, want % x", out, want)
	}
}

func TestParseOldFormatHeader(t *testing.T) {
	// Old format, tag 9 (1001), one-octet length: 10 100100.
	wire := append([]byte{0xA4, 0x03}, 0xAA, 0xBB, 0xCC)
	p, n, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n != len(wire) {
		t.Errorf("consumed %d bytes, want %d", n, len(wire))
	}
	sed, ok := p.(*SymmetricallyEncryptedDataPacket)
	if !ok {
		t.Fatalf("Parse() = %T, want *SymmetricallyEncryptedDataPacket", p)
	}
	if !bytes.Equal(sed.Data, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("Data = % x", sed.Data)
	}
}

func TestParseOldFormatIndeterminateLength(t *testing.T) {
	// Old format, tag 9, length type 3: body is the rest of the buffer.
	wire := []byte{0xA7, 0xDE, 0xAD, 0xBE, 0xEF}
	p, n, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n != len(wire) {
		t.Errorf("consumed %d bytes, want %d", n, len(wire))
	}
	sed := p.(*SymmetricallyEncryptedDataPacket)
	if !bytes.Equal(sed.Data, wire[1:]) {
		t.Errorf("Data = % x, want % x", sed.Data, wire[1:])
	}
}

func TestParsePartialLengthReassembly(t *testing.T) {
	// New format tag 9; 0xE0 introduces a 1-byte partial chunk, then a
	// definite 2-byte chunk ends the body. The logical body is the
	// concatenation of both chunks.
	wire := []byte{0xC9, 0xE0, 0x11, 0x02, 0x22, 0x33}
	p, n, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n != len(wire) {
		t.Errorf("consumed %d bytes, want %d", n, len(wire))
	}
	sed := p.(*SymmetricallyEncryptedDataPacket)
	if !bytes.Equal(sed.Data, []byte{0x11, 0x22, 0x33}) {
		t.Errorf("reassembled body = % x, want 11 22 33", sed.Data)
	}
}

func TestParsePartialLengthChains(t *testing.T) {
	// Two partial chunks (1 byte, 2 bytes) then a zero-length terminal.
	wire := []byte{0xC9, 0xE0, 0x01, 0xE1, 0x02, 0x03, 0x00}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	sed := p.(*SymmetricallyEncryptedDataPacket)
	if !bytes.Equal(sed.Data, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("reassembled body = % x, want 01 02 03", sed.Data)
	}
}

func TestParsePartialLengthTruncatedChain(t *testing.T) {
	// Partial chunk present but no terminal length follows.
	wire := []byte{0xC9, 0xE0, 0x11}
	_, _, err := Parse(wire)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Parse() error = %v, want ErrTruncated", err)
	}
}

func TestParseRejectsNonPacketByte(t *testing.T) {
	_, _, err := Parse([]byte{0x41, 0x42})
	if !errors.Is(err, ErrUnsupportedCombination) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedCombination", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() error type = %T, want *ParseError", err)
	}
	if pe.Offset != 0 {
		t.Errorf("Offset = %d, want 0", pe.Offset)
	}
}

func TestParseUnknownTagRoundTrip(t *testing.T) {
	// Tag 61 is unassigned; the body must survive untouched.
	wire := []byte{0xC0 | 61, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	u, ok := p.(*UnknownPacket)
	if !ok {
		t.Fatalf("Parse() = %T, want *UnknownPacket", p)
	}
	if u.Known() {
		t.Error("Known() = true for unknown packet")
	}
	if u.Tag() != 61 {
		t.Errorf("Tag() = %d, want 61", u.Tag())
	}
	out, err := Serialize(u)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if !bytes.Equal(out, wire) {
		t.Errorf("Serialize() = % x, want % x", out, wire)
	}
}

func TestParseDeclaredLengthBeyondBuffer(t *testing.T) {
	// Declared 8 body bytes, only 3 present.
	wire := []byte{0xC9, 0x08, 0x01, 0x02, 0x03}
	_, _, err := Parse(wire)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Parse() error = %v, want ErrTruncated", err)
	}
}

func TestParseMaxPacketLength(t *testing.T) {
	body := bytes.Repeat([]byte{0xAA}, 64)
	wire := append([]byte{0xC9, 64}, body...)

	if _, _, err := Parse(wire, WithMaxPacketLength(64)); err != nil {
		t.Fatalf("Parse() at limit error: %v", err)
	}
	_, _, err := Parse(wire, WithMaxPacketLength(63))
	if !errors.Is(err, ErrLengthOutOfRange) {
		t.Errorf("Parse() over limit error = %v, want ErrLengthOutOfRange", err)
	}
}

func TestTruncationAtEveryPrefix(t *testing.T) {
	// A valid multi-field message must fail cleanly, never panic, at
	// every possible truncation point.
	lit := &LiteralDataPacket{
		Format:   LiteralFormatBinary,
		FileName: "notes.txt",
		Time:     1136214245,
		Data:     bytes.Repeat([]byte{0x5A}, 300),
	}
	wire, err := Serialize(lit)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	for i := 0; i < len(wire); i++ {
		_, _, err := Parse(wire[:i])
		if err == nil {
			t.Fatalf("Parse() of %d-byte prefix succeeded, want error", i)
		}
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Parse() of %d-byte prefix: error = %v, want ErrTruncated", i, err)
		}
	}
}

func TestRoundTripKnownPackets(t *testing.T) {
	packets := []Packet{
		&SymmetricallyEncryptedDataPacket{Data: []byte{1, 2, 3}},
		&SymEncryptedIntegrityDataPacket{Version: 1, Data: []byte{9, 9, 9}},
		&ModificationDetectionCodePacket{Digest: [20]byte{0: 0xAB, 19: 0xCD}},
		&CompressedDataPacket{Algorithm: CompressionZLIB, Data: []byte{0x78, 0x9C}},
		&MarkerPacket{},
		&TrustPacket{Data: []byte{0x01, 0x02}},
		&UserIDPacket{ID: "Alice <alice@example.org>"},
		&UserAttributePacket{Data: []byte{0x10, 0x01, 0x01}},
		&LiteralDataPacket{Format: LiteralFormatText, FileName: "a", Time: 42, Data: []byte("hi")},
		&OnePassSignaturePacket{
			Version:       3,
			SignatureType: SigTypeBinary,
			HashAlgorithm: HashAlgoSHA256,
			PubKeyAlgo:    PubKeyAlgoRSA,
			KeyID:         [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
			Nested:        1,
		},
		&PublicKeyEncryptedKeyPacket{
			Version:      3,
			KeyID:        [8]byte{8, 7, 6, 5, 4, 3, 2, 1},
			Algorithm:    PubKeyAlgoRSA,
			EncryptedKey: []byte{0x04, 0x00, 0x0F},
		},
		&SymmetricKeyEncryptedKeyPacket{
			Version:   4,
			Algorithm: SymAlgoAES256,
			S2KAndKey: []byte{0x03, 0x08, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x60},
		},
		&UnknownPacket{RawTag: 47, Data: []byte{0xFE, 0xED}},
	}

	for _, p := range packets {
		wire, err := Serialize(p)
		if err != nil {
			t.Fatalf("Serialize(%T) error: %v", p, err)
		}
		got, n, err := Parse(wire)
		if err != nil {
			t.Fatalf("Parse(Serialize(%T)) error: %v", p, err)
		}
		if n != len(wire) {
			t.Errorf("%T: consumed %d of %d bytes", p, n, len(wire))
		}
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("%T round trip mismatch (-want +got):\n%s", p, diff)
		}

		again, err := Serialize(got)
		if err != nil {
			t.Fatalf("re-Serialize(%T) error: %v", p, err)
		}
		if !bytes.Equal(again, wire) {
			t.Errorf("%T: second serialization differs:\n  first  % x\n  second % x", p, wire, again)
		}
	}
}

func TestMarkerWithWrongBodyStaysOpaque(t *testing.T) {
	wire := []byte{0xCA, 0x03, 'G', 'P', 'G'}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	u, ok := p.(*UnknownPacket)
	if !ok {
		t.Fatalf("Parse() = %T, want *UnknownPacket", p)
	}
	out, err := Serialize(u)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if !bytes.Equal(out, wire) {
		t.Errorf("Serialize() = % x, want % x", out, wire)
	}
}

func TestParsePacketStream(t *testing.T) {
	var stream []byte
	want := []Tag{TagMarker, TagUserID, TagLiteralData}
	for _, p := range []Packet{
		&MarkerPacket{},
		&UserIDPacket{ID: "Bob"},
		&LiteralDataPacket{Format: LiteralFormatBinary, Data: []byte{1}},
	} {
		wire, err := Serialize(p)
		if err != nil {
			t.Fatal(err)
		}
		stream = append(stream, wire...)
	}

	var got []Tag
	for len(stream) > 0 {
		p, n, err := Parse(stream)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		got = append(got, p.Tag())
		stream = stream[n:]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream tags mismatch (-want +got):\n%s", diff)
	}
}
