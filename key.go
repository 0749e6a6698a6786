package pgpwire

import (
	"crypto/md5"
	"crypto/sha1"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// KeyMaterial holds the algorithm-specific public key fields in wire order.
// For RSA, DSA and ElGamal only MPIs is set. The ECC algorithms carry a
// curve OID before the point, and ECDH appends KDF parameters. Keys using
// an algorithm this package does not recognize keep their raw bytes in
// Opaque so they round-trip untouched.
type KeyMaterial struct {
	MPIs []MPI
	// OID is the curve OID for ECDH, ECDSA and EdDSA keys, without its
	// length octet.
	OID []byte
	// KDF is the KDF parameter field for ECDH keys, without its length
	// octet.
	KDF []byte
	// Opaque is the undecoded material of an unrecognized algorithm.
	Opaque []byte
}

func parseKeyMaterial(in *cursor.Cursor, algo PublicKeyAlgorithm) (KeyMaterial, error) {
	mpiCount := 0
	withOID := false
	withKDF := false
	switch algo {
	case PubKeyAlgoRSA, PubKeyAlgoRSAEncryptOnly, PubKeyAlgoRSASignOnly:
		mpiCount = 2
	case PubKeyAlgoElGamal:
		mpiCount = 3
	case PubKeyAlgoDSA:
		mpiCount = 4
	case PubKeyAlgoECDSA, PubKeyAlgoEdDSA:
		mpiCount, withOID = 1, true
	case PubKeyAlgoECDH:
		mpiCount, withOID, withKDF = 1, true, true
	default:
		return KeyMaterial{Opaque: in.Rest()}, nil
	}

	var km KeyMaterial
	if withOID {
		oidLen, err := in.Byte()
		if err != nil {
			return KeyMaterial{}, wrapBounds(err)
		}
		km.OID, err = in.Take(int(oidLen))
		if err != nil {
			return KeyMaterial{}, wrapBounds(err)
		}
	}
	for i := 0; i < mpiCount; i++ {
		m, err := readMPI(in)
		if err != nil {
			return KeyMaterial{}, err
		}
		km.MPIs = append(km.MPIs, m)
	}
	if withKDF {
		kdfLen, err := in.Byte()
		if err != nil {
			return KeyMaterial{}, wrapBounds(err)
		}
		km.KDF, err = in.Take(int(kdfLen))
		if err != nil {
			return KeyMaterial{}, wrapBounds(err)
		}
	}
	return km, nil
}

func (km KeyMaterial) append(dst []byte) []byte {
	if km.Opaque != nil {
		return append(dst, km.Opaque...)
	}
	if km.OID != nil {
		dst = append(dst, byte(len(km.OID)))
		dst = append(dst, km.OID...)
	}
	for _, m := range km.MPIs {
		dst = appendMPI(dst, m)
	}
	if km.KDF != nil {
		dst = append(dst, byte(len(km.KDF)))
		dst = append(dst, km.KDF...)
	}
	return dst
}

// PublicKeyPacket is a public key or public subkey packet, tags 6 and 14.
// See RFC 4880, section 5.5.2.
type PublicKeyPacket struct {
	// Version is 4 for modern keys. Versions 2 and 3 are parsed for
	// compatibility with ancient RSA keys.
	Version byte
	// CreationTime is seconds since the epoch.
	CreationTime uint32
	// DaysValid is the v2/v3 expiration field; zero means no expiration.
	// Unused in v4 keys, where expiration lives in a signature subpacket.
	DaysValid uint16
	Algorithm PublicKeyAlgorithm
	Material  KeyMaterial
	// IsSubkey selects tag 14 instead of tag 6.
	IsSubkey bool
}

func parsePublicKey(in *cursor.Cursor, tag Tag) (Packet, error) {
	p, err := parsePublicKeyBody(in, tag == TagPublicSubkey)
	if err != nil {
		return nil, err
	}
	if in.Remaining() != 0 {
		return nil, trailing(in.Position(), in.Remaining())
	}
	return p, nil
}

// parsePublicKeyBody decodes the public key fields and stops after the key
// material, leaving any remainder (a secret key's protected part) unread.
func parsePublicKeyBody(in *cursor.Cursor, subkey bool) (*PublicKeyPacket, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if version != 2 && version != 3 && version != 4 {
		return nil, &ParseError{
			Kind:   KindUnsupportedCombination,
			Offset: in.Position() - 1,
			Detail: "unsupported key packet version",
		}
	}
	p := &PublicKeyPacket{Version: version, IsSubkey: subkey}
	p.CreationTime, err = in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if version < 4 {
		p.DaysValid, err = in.Uint16()
		if err != nil {
			return nil, wrapBounds(err)
		}
	}
	algo, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	p.Algorithm = PublicKeyAlgorithm(algo)
	p.Material, err = parseKeyMaterial(in, p.Algorithm)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Tag returns TagPublicKey or TagPublicSubkey.
func (p *PublicKeyPacket) Tag() Tag {
	if p.IsSubkey {
		return TagPublicSubkey
	}
	return TagPublicKey
}

// Known reports true.
func (p *PublicKeyPacket) Known() bool { return true }

func (p *PublicKeyPacket) appendBody(dst []byte) ([]byte, error) {
	return p.appendPublicFields(dst), nil
}

func (p *PublicKeyPacket) appendPublicFields(dst []byte) []byte {
	dst = append(dst, p.Version)
	t := p.CreationTime
	dst = append(dst, byte(t>>24), byte(t>>16), byte(t>>8), byte(t))
	if p.Version < 4 {
		dst = append(dst, byte(p.DaysValid>>8), byte(p.DaysValid))
	}
	dst = append(dst, byte(p.Algorithm))
	return p.Material.append(dst)
}

// Fingerprint computes the key fingerprint: for v4 keys the SHA-1 digest
// of 0x99, a two-octet body length and the public key body (RFC 4880,
// section 12.2); for v2/v3 RSA keys the MD5 digest of the modulus and
// exponent bytes. It is a pure derivation; no trust meaning attaches.
func (p *PublicKeyPacket) Fingerprint() []byte {
	if p.Version < 4 {
		h := md5.New()
		for _, m := range p.Material.MPIs {
			h.Write(m.Bytes)
		}
		return h.Sum(nil)
	}
	body := p.appendPublicFields(nil)
	h := sha1.New()
	h.Write([]byte{0x99, byte(len(body) >> 8), byte(len(body))})
	h.Write(body)
	return h.Sum(nil)
}

// KeyID returns the 8-octet key ID: the low 64 bits of the fingerprint for
// v4 keys, or the low 64 bits of the RSA modulus for v2/v3 keys.
func (p *PublicKeyPacket) KeyID() [8]byte {
	var id [8]byte
	if p.Version < 4 {
		if len(p.Material.MPIs) > 0 {
			n := p.Material.MPIs[0].Bytes
			if len(n) >= 8 {
				copy(id[:], n[len(n)-8:])
			} else {
				copy(id[8-len(n):], n)
			}
		}
		return id
	}
	fpr := p.Fingerprint()
	copy(id[:], fpr[len(fpr)-8:])
	return id
}

// SecretKeyPacket is a secret key or secret subkey packet, tags 5 and 7.
// It carries the public key fields followed by the secret material, which
// the codec keeps opaque: S2K parameters, IVs and checksums belong to the
// cryptographic collaborator.
type SecretKeyPacket struct {
	PublicKeyPacket
	// S2KUsage is the string-to-key usage octet: 0 for unprotected
	// material, 254/255 for an S2K specifier, otherwise a cipher id.
	S2KUsage byte
	// Protected is everything after the usage octet, untouched.
	Protected []byte
}

func parseSecretKey(in *cursor.Cursor, body []byte, tag Tag) (Packet, error) {
	pub, err := parsePublicKeyBody(in, tag == TagSecretSubkey)
	if err != nil {
		return nil, err
	}
	if pub.Material.Opaque != nil {
		// The public material of an unrecognized algorithm has no known
		// boundary, so the secret fields cannot be located. Preserve the
		// whole body instead of guessing.
		return &UnknownPacket{RawTag: tag, Data: body}, nil
	}
	usage, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	return &SecretKeyPacket{
		PublicKeyPacket: *pub,
		S2KUsage:        usage,
		Protected:       in.Rest(),
	}, nil
}

// Tag returns TagSecretKey or TagSecretSubkey.
func (p *SecretKeyPacket) Tag() Tag {
	if p.IsSubkey {
		return TagSecretSubkey
	}
	return TagSecretKey
}

// Known reports true.
func (p *SecretKeyPacket) Known() bool { return true }

func (p *SecretKeyPacket) appendBody(dst []byte) ([]byte, error) {
	dst = p.appendPublicFields(dst)
	dst = append(dst, p.S2KUsage)
	return append(dst, p.Protected...), nil
}
