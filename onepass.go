package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// OnePassSignaturePacket is a one-pass signature packet, tag 4. It lets a
// verifier start hashing before the matching signature packet arrives.
// See RFC 4880, section 5.4.
type OnePassSignaturePacket struct {
	// Version is 3 in every published revision of the format.
	Version       byte
	SignatureType byte
	HashAlgorithm HashAlgorithm
	PubKeyAlgo    PublicKeyAlgorithm
	KeyID         [8]byte
	// Nested is zero when another one-pass signature follows before the
	// matching signature packet.
	Nested byte
}

func parseOnePassSignature(in *cursor.Cursor) (Packet, error) {
	b, err := in.Take(13)
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	p := &OnePassSignaturePacket{
		Version:       b[0],
		SignatureType: b[1],
		HashAlgorithm: HashAlgorithm(b[2]),
		PubKeyAlgo:    PublicKeyAlgorithm(b[3]),
		Nested:        b[12],
	}
	copy(p.KeyID[:], b[4:12])
	return p, nil
}

// Tag returns TagOnePassSignature.
func (p *OnePassSignaturePacket) Tag() Tag { return TagOnePassSignature }

// Known reports true.
func (p *OnePassSignaturePacket) Known() bool { return true }

func (p *OnePassSignaturePacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, p.Version, p.SignatureType, byte(p.HashAlgorithm), byte(p.PubKeyAlgo))
	dst = append(dst, p.KeyID[:]...)
	return append(dst, p.Nested), nil
}
