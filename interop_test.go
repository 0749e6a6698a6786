package pgpwire

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256"
	"encoding/binary"
	"io"
	"math/big"
	"testing"
	"time"

	"golang.org/x/crypto/openpgp/armor"
	"golang.org/x/crypto/openpgp/packet"
)

// The tests below cross-check the codec against golang.org/x/crypto/openpgp,
// which is the other widely deployed implementation of this wire format.
// Anything it writes we must read, and anything we write it must read.

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func TestParsePartialLengthStreamFromOpenPGP(t *testing.T) {
	// SerializeLiteral streams through a partial-length writer, so a
	// payload past the first chunk boundary exercises partial-length
	// reassembly on our side.
	payload := make([]byte, 1300)
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	w, err := packet.SerializeLiteral(nopCloser{&buf}, true, "report.bin", 1700000000)
	if err != nil {
		t.Fatalf("SerializeLiteral: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p, n, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n != buf.Len() {
		t.Fatalf("consumed %d of %d bytes", n, buf.Len())
	}
	lit, ok := p.(*LiteralDataPacket)
	if !ok {
		t.Fatalf("got %T, want *LiteralDataPacket", p)
	}
	if lit.Format != LiteralFormatBinary {
		t.Errorf("Format = %q, want %q", lit.Format, LiteralFormatBinary)
	}
	if lit.FileName != "report.bin" {
		t.Errorf("FileName = %q, want %q", lit.FileName, "report.bin")
	}
	if lit.Time != 1700000000 {
		t.Errorf("Time = %d, want 1700000000", lit.Time)
	}
	if !bytes.Equal(lit.Data, payload) {
		t.Errorf("payload mismatch: got %d bytes", len(lit.Data))
	}
}

func TestOpenPGPReadsSerializedLiteral(t *testing.T) {
	orig := &LiteralDataPacket{
		Format:   LiteralFormatBinary,
		FileName: "notes.txt",
		Time:     1234567890,
		Data:     []byte("the quick brown fox"),
	}
	wire, err := Serialize(orig)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	p, err := packet.Read(bytes.NewReader(wire))
	if err != nil {
		t.Fatalf("packet.Read: %v", err)
	}
	lit, ok := p.(*packet.LiteralData)
	if !ok {
		t.Fatalf("got %T, want *packet.LiteralData", p)
	}
	if !lit.IsBinary {
		t.Error("IsBinary = false, want true")
	}
	if lit.FileName != orig.FileName {
		t.Errorf("FileName = %q, want %q", lit.FileName, orig.FileName)
	}
	if lit.Time != orig.Time {
		t.Errorf("Time = %d, want %d", lit.Time, orig.Time)
	}
	body, err := io.ReadAll(lit.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !bytes.Equal(body, orig.Data) {
		t.Errorf("body = %q, want %q", body, orig.Data)
	}
}

func TestOpenPGPReadsSerializedUserID(t *testing.T) {
	wire, err := Serialize(&UserIDPacket{ID: "Alice Example <alice@example.com>"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	p, err := packet.Read(bytes.NewReader(wire))
	if err != nil {
		t.Fatalf("packet.Read: %v", err)
	}
	uid, ok := p.(*packet.UserId)
	if !ok {
		t.Fatalf("got %T, want *packet.UserId", p)
	}
	if uid.Id != "Alice Example <alice@example.com>" {
		t.Errorf("Id = %q", uid.Id)
	}
}

func TestOpenPGPReadsSerializedSignature(t *testing.T) {
	issuer := [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	orig := &SignaturePacket{
		Version:       4,
		SignatureType: SigTypeBinary,
		PubKeyAlgo:    PubKeyAlgoRSA,
		HashAlgorithm: HashAlgoSHA256,
		HashedSubpackets: []SignatureSubpacket{
			&SignatureCreationTimeSubpacket{Time: 1700000000},
			&IssuerSubpacket{KeyID: issuer},
		},
		Left16:   [2]byte{0xAB, 0xCD},
		Material: []MPI{NewMPI(new(big.Int).SetBytes(bytes.Repeat([]byte{0x5A}, 128)))},
	}
	wire, err := Serialize(orig)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	p, err := packet.Read(bytes.NewReader(wire))
	if err != nil {
		t.Fatalf("packet.Read: %v", err)
	}
	sig, ok := p.(*packet.Signature)
	if !ok {
		t.Fatalf("got %T, want *packet.Signature", p)
	}
	if sig.SigType != packet.SigTypeBinary {
		t.Errorf("SigType = %d, want %d", sig.SigType, packet.SigTypeBinary)
	}
	if sig.PubKeyAlgo != packet.PubKeyAlgoRSA {
		t.Errorf("PubKeyAlgo = %d, want %d", sig.PubKeyAlgo, packet.PubKeyAlgoRSA)
	}
	if sig.Hash != crypto.SHA256 {
		t.Errorf("Hash = %v, want SHA-256", sig.Hash)
	}
	if got := sig.CreationTime.Unix(); got != 1700000000 {
		t.Errorf("CreationTime = %d, want 1700000000", got)
	}
	if sig.IssuerKeyId == nil {
		t.Fatal("IssuerKeyId is nil")
	}
	if want := binary.BigEndian.Uint64(issuer[:]); *sig.IssuerKeyId != want {
		t.Errorf("IssuerKeyId = %016x, want %016x", *sig.IssuerKeyId, want)
	}
}

func TestFingerprintMatchesOpenPGP(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	pk := packet.NewRSAPublicKey(time.Unix(1700000000, 0), &key.PublicKey)

	var buf bytes.Buffer
	if err := pk.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	p, _, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pub, ok := p.(*PublicKeyPacket)
	if !ok {
		t.Fatalf("got %T, want *PublicKeyPacket", p)
	}
	if pub.Algorithm != PubKeyAlgoRSA {
		t.Errorf("Algorithm = %v, want RSA", pub.Algorithm)
	}
	if got := pub.Fingerprint(); !bytes.Equal(got, pk.Fingerprint[:]) {
		t.Errorf("Fingerprint = %x, want %x", got, pk.Fingerprint)
	}
	if got := pub.KeyID(); binary.BigEndian.Uint64(got[:]) != pk.KeyId {
		t.Errorf("KeyID = %x, want %016x", got, pk.KeyId)
	}
}

func TestArmorInterop(t *testing.T) {
	wire, err := Serialize(&UserIDPacket{ID: "interop@example.com"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	t.Run("TheirsReadsOurs", func(t *testing.T) {
		armored := Armor("PGP PUBLIC KEY BLOCK", map[string]string{"Comment": "interop"}, wire)
		block, err := armor.Decode(bytes.NewReader(armored))
		if err != nil {
			t.Fatalf("armor.Decode: %v", err)
		}
		if block.Type != "PGP PUBLIC KEY BLOCK" {
			t.Errorf("Type = %q", block.Type)
		}
		body, err := io.ReadAll(block.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		if !bytes.Equal(body, wire) {
			t.Errorf("body mismatch: got %x, want %x", body, wire)
		}
	})

	t.Run("OursReadsTheirs", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := armor.Encode(&buf, "PGP MESSAGE", nil)
		if err != nil {
			t.Fatalf("armor.Encode: %v", err)
		}
		if _, err := w.Write(wire); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		block, err := Unarmor(buf.Bytes())
		if err != nil {
			t.Fatalf("Unarmor: %v", err)
		}
		if block.Type != "PGP MESSAGE" {
			t.Errorf("Type = %q", block.Type)
		}
		if !bytes.Equal(block.Data, wire) {
			t.Errorf("data mismatch: got %x, want %x", block.Data, wire)
		}
	})
}
