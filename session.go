package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// PublicKeyEncryptedKeyPacket is a public-key encrypted session key
// packet, tag 1. See RFC 4880, section 5.1. The encrypted session key
// material is algorithm-specific and stays opaque.
type PublicKeyEncryptedKeyPacket struct {
	// Version is 3 in every published revision of the format.
	Version byte
	// KeyID identifies the intended recipient key; all zero means a
	// wildcard ("speculative") recipient.
	KeyID     [8]byte
	Algorithm PublicKeyAlgorithm
	// EncryptedKey is the algorithm-specific encrypted session key field.
	EncryptedKey []byte
}

func parsePublicKeyEncryptedKey(in *cursor.Cursor) (Packet, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	keyID, err := in.Take(8)
	if err != nil {
		return nil, wrapBounds(err)
	}
	algo, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	p := &PublicKeyEncryptedKeyPacket{
		Version:      version,
		Algorithm:    PublicKeyAlgorithm(algo),
		EncryptedKey: in.Rest(),
	}
	copy(p.KeyID[:], keyID)
	return p, nil
}

// Tag returns TagPublicKeyEncryptedKey.
func (p *PublicKeyEncryptedKeyPacket) Tag() Tag { return TagPublicKeyEncryptedKey }

// Known reports true.
func (p *PublicKeyEncryptedKeyPacket) Known() bool { return true }

func (p *PublicKeyEncryptedKeyPacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, p.Version)
	dst = append(dst, p.KeyID[:]...)
	dst = append(dst, byte(p.Algorithm))
	return append(dst, p.EncryptedKey...), nil
}

// SymmetricKeyEncryptedKeyPacket is a symmetric-key encrypted session key
// packet, tag 3. See RFC 4880, section 5.3. The S2K specifier and the
// optional encrypted session key are parameters for the cryptographic
// collaborator and stay opaque.
type SymmetricKeyEncryptedKeyPacket struct {
	// Version is 4 in every published revision of the format.
	Version   byte
	Algorithm SymmetricAlgorithm
	// S2KAndKey holds the S2K specifier followed by the optional
	// encrypted session key, untouched.
	S2KAndKey []byte
}

func parseSymmetricKeyEncryptedKey(in *cursor.Cursor) (Packet, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	algo, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	return &SymmetricKeyEncryptedKeyPacket{
		Version:   version,
		Algorithm: SymmetricAlgorithm(algo),
		S2KAndKey: in.Rest(),
	}, nil
}

// Tag returns TagSymmetricKeyEncryptedKey.
func (p *SymmetricKeyEncryptedKeyPacket) Tag() Tag { return TagSymmetricKeyEncryptedKey }

// Known reports true.
func (p *SymmetricKeyEncryptedKeyPacket) Known() bool { return true }

func (p *SymmetricKeyEncryptedKeyPacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, p.Version, byte(p.Algorithm))
	return append(dst, p.S2KAndKey...), nil
}
