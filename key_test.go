package pgpwire

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/google/go-cmp/cmp"
)

// ed25519OID is the curve OID carried by EdDSA key packets,
// 1.3.6.1.4.1.11591.15.1.
var ed25519OID = []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0xDA, 0x47, 0x0F, 0x01}

func testRSAPublicKey() *PublicKeyPacket {
	n, _ := new(big.Int).SetString("00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffe1", 16)
	return &PublicKeyPacket{
		Version:      4,
		CreationTime: 1400000000,
		Algorithm:    PubKeyAlgoRSA,
		Material: KeyMaterial{
			MPIs: []MPI{NewMPI(n), NewMPI(big.NewInt(65537))},
		},
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	key := testRSAPublicKey()
	wire, err := Serialize(key)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(key, p); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPublicSubkeyTag(t *testing.T) {
	key := testRSAPublicKey()
	key.IsSubkey = true
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	if wire[0] != 0xC0|byte(TagPublicSubkey) {
		t.Errorf("tag octet = %#x, want %#x", wire[0], 0xC0|byte(TagPublicSubkey))
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatal(err)
	}
	if p.Tag() != TagPublicSubkey {
		t.Errorf("Tag() = %v, want %v", p.Tag(), TagPublicSubkey)
	}
}

func TestEdDSAPublicKeyRoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}

	// EdDSA point encoding: 0x40 prefix then the compressed point.
	point := append([]byte{0x40}, pub...)
	key := &PublicKeyPacket{
		Version:      4,
		CreationTime: 1500000000,
		Algorithm:    PubKeyAlgoEdDSA,
		Material: KeyMaterial{
			OID:  ed25519OID,
			MPIs: []MPI{NewMPI(new(big.Int).SetBytes(point))},
		},
	}

	wire, err := Serialize(key)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := p.(*PublicKeyPacket)
	if diff := cmp.Diff(key, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if len(got.Fingerprint()) != 20 {
		t.Errorf("Fingerprint() length = %d, want 20", len(got.Fingerprint()))
	}
}

func TestFingerprintIsStable(t *testing.T) {
	key := testRSAPublicKey()
	fp1 := key.Fingerprint()
	fp2 := key.Fingerprint()
	if !bytes.Equal(fp1, fp2) {
		t.Error("Fingerprint() not deterministic")
	}
	if len(fp1) != 20 {
		t.Errorf("Fingerprint() length = %d, want 20", len(fp1))
	}

	id := key.KeyID()
	if !bytes.Equal(id[:], fp1[12:]) {
		t.Errorf("KeyID() = % x, want low 8 fingerprint bytes % x", id, fp1[12:])
	}
}

func TestFingerprintChangesWithMaterial(t *testing.T) {
	a := testRSAPublicKey()
	b := testRSAPublicKey()
	b.CreationTime++
	if bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("fingerprints equal for different creation times")
	}
}

func TestV3PublicKeyRoundTrip(t *testing.T) {
	key := testRSAPublicKey()
	key.Version = 3
	key.DaysValid = 365
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := p.(*PublicKeyPacket)
	if diff := cmp.Diff(key, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// v3 key ID is the low 64 bits of the modulus.
	n := key.Material.MPIs[0].Bytes
	id := got.KeyID()
	if !bytes.Equal(id[:], n[len(n)-8:]) {
		t.Errorf("KeyID() = % x, want % x", id, n[len(n)-8:])
	}
}

func TestUnknownAlgorithmPublicKeyRoundTrip(t *testing.T) {
	key := &PublicKeyPacket{
		Version:      4,
		CreationTime: 1600000000,
		Algorithm:    100, // private/experimental range
		Material:     KeyMaterial{Opaque: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
	}
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(key, p); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSecretKeyRoundTrip(t *testing.T) {
	key := &SecretKeyPacket{
		PublicKeyPacket: *testRSAPublicKey(),
		S2KUsage:        254,
		Protected:       []byte{0x09, 0x03, 0x08, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE},
	}
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	if wire[0] != 0xC0|byte(TagSecretKey) {
		t.Errorf("tag octet = %#x", wire[0])
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(key, p); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSecretSubkeyTag(t *testing.T) {
	key := &SecretKeyPacket{
		PublicKeyPacket: *testRSAPublicKey(),
		S2KUsage:        0,
	}
	key.IsSubkey = true
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	p, _, err := Parse(wire)
	if err != nil {
		t.Fatal(err)
	}
	if p.Tag() != TagSecretSubkey {
		t.Errorf("Tag() = %v, want %v", p.Tag(), TagSecretSubkey)
	}
}

func TestSecretKeyUnknownAlgorithmStaysOpaque(t *testing.T) {
	// The secret fields of an unrecognized algorithm cannot be located,
	// so the whole body must pass through untouched.
	body := []byte{0x04, 0x5E, 0x0B, 0xE1, 0x00, 100, 0x01, 0x02, 0x03}
	wire := append([]byte{0xC0 | byte(TagSecretKey), byte(len(body))}, body...)
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
		t.Fatal(err)
	}
	if !bytes.Equal(out, wire) {
		t.Errorf("write-back = % x, want % x", out, wire)
	}
}

func TestPublicKeyTrailingBytes(t *testing.T) {
	key := testRSAPublicKey()
	wire, err := Serialize(key)
	if err != nil {
		t.Fatal(err)
	}
	// Extend the declared body by one byte the fixed layout cannot
	// account for.
	body := append([]byte{}, wire[2:]...)
	body = append(body, 0xFF)
	grown := append([]byte{wire[0], byte(len(body))}, body...)
	if _, _, err := Parse(grown); err == nil {
		t.Error("Parse() accepted a key body with trailing bytes")
	}
}
