package pgpwire

import (
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Signature type octets. See RFC 4880, section 5.2.1.
const (
	SigTypeBinary            byte = 0x00
	SigTypeText              byte = 0x01
	SigTypeStandalone        byte = 0x02
	SigTypeGenericCert       byte = 0x10
	SigTypePersonaCert       byte = 0x11
	SigTypeCasualCert        byte = 0x12
	SigTypePositiveCert      byte = 0x13
	SigTypeSubkeyBinding     byte = 0x18
	SigTypePrimaryKeyBinding byte = 0x19
	SigTypeDirectKey         byte = 0x1F
	SigTypeKeyRevocation     byte = 0x20
	SigTypeSubkeyRevocation  byte = 0x28
	SigTypeCertRevocation    byte = 0x30
	SigTypeTimestamp         byte = 0x40
	SigTypeThirdPartyConfirm byte = 0x50
)

// SignaturePacket is a signature packet, tag 2, in the version 4 layout.
// Version 3 signatures are parsed for compatibility; their fixed fields
// map onto V3 below. The signature material is carried as MPIs; verifying
// it is the cryptographic collaborator's job.
type SignaturePacket struct {
	Version       byte
	SignatureType byte
	PubKeyAlgo    PublicKeyAlgorithm
	HashAlgorithm HashAlgorithm

	// HashedSubpackets are covered by the signature digest;
	// UnhashedSubpackets are advisory. Both are empty for v3 signatures.
	HashedSubpackets   []SignatureSubpacket
	UnhashedSubpackets []SignatureSubpacket

	// Left16 holds the two leftmost bytes of the signed digest, a quick
	// mismatch check only.
	Left16 [2]byte

	// Material is the algorithm-specific signature material.
	Material []MPI

	// V3 carries the fixed fields a version 3 signature stores in place
	// of subpackets. Nil for v4 signatures.
	V3 *SignatureV3Fields
}

// SignatureV3Fields are the version 3 fixed fields.
type SignatureV3Fields struct {
	CreationTime uint32
	IssuerKeyID  [8]byte
}

func parseSignature(in *cursor.Cursor, cfg *parseConfig) (Packet, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	switch version {
	case 2, 3:
		return parseSignatureV3(in, version)
	case 4:
		return parseSignatureV4(in, cfg)
	default:
		return nil, &ParseError{
			Kind:   KindUnsupportedCombination,
			Offset: in.Position() - 1,
			Detail: "unsupported signature packet version",
		}
	}
}

func parseSignatureV4(in *cursor.Cursor, cfg *parseConfig) (Packet, error) {
	fixed, err := in.Take(3)
	if err != nil {
		return nil, wrapBounds(err)
	}
	p := &SignaturePacket{
		Version:       4,
		SignatureType: fixed[0],
		PubKeyAlgo:    PublicKeyAlgorithm(fixed[1]),
		HashAlgorithm: HashAlgorithm(fixed[2]),
	}

	p.HashedSubpackets, err = parseSignatureArea(in, cfg)
	if err != nil {
		return nil, err
	}
	p.UnhashedSubpackets, err = parseSignatureArea(in, cfg)
	if err != nil {
		return nil, err
	}

	left, err := in.Take(2)
	if err != nil {
		return nil, wrapBounds(err)
	}
	copy(p.Left16[:], left)

	p.Material, err = readMPIs(in)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// parseSignatureArea reads one two-octet-counted subpacket area out of a
// v4 signature body and decodes it.
func parseSignatureArea(in *cursor.Cursor, cfg *parseConfig) ([]SignatureSubpacket, error) {
	areaLen, err := in.Uint16()
	if err != nil {
		return nil, wrapBounds(err)
	}
	base := in.Position()
	area, err := in.Take(int(areaLen))
	if err != nil {
		return nil, wrapBounds(err)
	}
	return parseSubpacketArea(cursor.NewAt(area, base), cfg)
}

func parseSignatureV3(in *cursor.Cursor, version byte) (Packet, error) {
	hashedLen, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	if hashedLen != 5 {
		return nil, &ParseError{
			Kind:     KindLengthOutOfRange,
			Offset:   in.Position() - 1,
			Declared: uint64(hashedLen),
			Detail:   "v3 signature hashed material length must be 5",
		}
	}
	p := &SignaturePacket{Version: version, V3: &SignatureV3Fields{}}
	p.SignatureType, err = in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	p.V3.CreationTime, err = in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	keyID, err := in.Take(8)
	if err != nil {
		return nil, wrapBounds(err)
	}
	copy(p.V3.IssuerKeyID[:], keyID)
	algos, err := in.Take(2)
	if err != nil {
		return nil, wrapBounds(err)
	}
	p.PubKeyAlgo = PublicKeyAlgorithm(algos[0])
	p.HashAlgorithm = HashAlgorithm(algos[1])
	left, err := in.Take(2)
	if err != nil {
		return nil, wrapBounds(err)
	}
	copy(p.Left16[:], left)
	p.Material, err = readMPIs(in)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Tag returns TagSignature.
func (p *SignaturePacket) Tag() Tag { return TagSignature }

// Known reports true.
func (p *SignaturePacket) Known() bool { return true }

// CriticalUnknown returns the unknown subpackets in the hashed area that
// carry the critical flag. Verification logic must treat the signature as
// invalid when this is non-empty; the codec only reports them.
func (p *SignaturePacket) CriticalUnknown() []*UnknownSubpacket {
	var out []*UnknownSubpacket
	for _, sp := range p.HashedSubpackets {
		if u, ok := sp.(*UnknownSubpacket); ok && u.Critical {
			out = append(out, u)
		}
	}
	return out
}

func (p *SignaturePacket) appendBody(dst []byte) ([]byte, error) {
	if p.V3 != nil {
		return p.appendBodyV3(dst)
	}
	dst = append(dst, p.Version, p.SignatureType, byte(p.PubKeyAlgo), byte(p.HashAlgorithm))
	var err error
	if dst, err = appendSignatureArea(dst, p.HashedSubpackets); err != nil {
		return nil, err
	}
	if dst, err = appendSignatureArea(dst, p.UnhashedSubpackets); err != nil {
		return nil, err
	}
	dst = append(dst, p.Left16[:]...)
	for _, m := range p.Material {
		dst = appendMPI(dst, m)
	}
	return dst, nil
}

func (p *SignaturePacket) appendBodyV3(dst []byte) ([]byte, error) {
	dst = append(dst, p.Version, 5, p.SignatureType)
	dst = appendUint32(dst, p.V3.CreationTime)
	dst = append(dst, p.V3.IssuerKeyID[:]...)
	dst = append(dst, byte(p.PubKeyAlgo), byte(p.HashAlgorithm))
	dst = append(dst, p.Left16[:]...)
	for _, m := range p.Material {
		dst = appendMPI(dst, m)
	}
	return dst, nil
}

// appendSignatureArea serializes one subpacket area with its two-octet
// count prefix.
func appendSignatureArea(dst []byte, subs []SignatureSubpacket) ([]byte, error) {
	area, err := appendSubpacketArea(nil, subs)
	if err != nil {
		return nil, err
	}
	if len(area) > 0xFFFF {
		return nil, fmt.Errorf("pgpwire: subpacket area is %d bytes, maximum is %d", len(area), 0xFFFF)
	}
	dst = append(dst, byte(len(area)>>8), byte(len(area)))
	return append(dst, area...), nil
}
