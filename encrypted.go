package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// SymmetricallyEncryptedDataPacket is a symmetrically encrypted data
// packet, tag 9. The ciphertext is opaque to the codec; decryption belongs
// to the cryptographic collaborator.
type SymmetricallyEncryptedDataPacket struct {
	Data []byte
}

func parseSymmetricallyEncryptedData(in *cursor.Cursor) (Packet, error) {
	return &SymmetricallyEncryptedDataPacket{Data: in.Rest()}, nil
}

// Tag returns TagSymmetricallyEncryptedData.
func (p *SymmetricallyEncryptedDataPacket) Tag() Tag { return TagSymmetricallyEncryptedData }

// Known reports true.
func (p *SymmetricallyEncryptedDataPacket) Known() bool { return true }

func (p *SymmetricallyEncryptedDataPacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.Data...), nil
}

// SymEncryptedIntegrityDataPacket is a symmetrically encrypted integrity
// protected data packet, tag 18. See RFC 4880, section 5.13.
type SymEncryptedIntegrityDataPacket struct {
	// Version is 1 in every published revision of the format.
	Version byte
	// Data is the opaque ciphertext, including the trailing MDC once
	// decrypted.
	Data []byte
}

func parseSymEncryptedIntegrityData(in *cursor.Cursor) (Packet, error) {
	version, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	return &SymEncryptedIntegrityDataPacket{Version: version, Data: in.Rest()}, nil
}

// Tag returns TagSymEncryptedIntegrityData.
func (p *SymEncryptedIntegrityDataPacket) Tag() Tag { return TagSymEncryptedIntegrityData }

// Known reports true.
func (p *SymEncryptedIntegrityDataPacket) Known() bool { return true }

func (p *SymEncryptedIntegrityDataPacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, p.Version)
	return append(dst, p.Data...), nil
}

// mdcDigestSize is the size of the SHA-1 digest in a modification
// detection code packet.
const mdcDigestSize = 20

// ModificationDetectionCodePacket is a modification detection code packet,
// tag 19. Its body is exactly one SHA-1 digest.
type ModificationDetectionCodePacket struct {
	Digest [mdcDigestSize]byte
}

func parseModificationDetectionCode(in *cursor.Cursor) (Packet, error) {
	b, err := in.Take(mdcDigestSize)
	if err != nil {
		return nil, wrapBounds(err)
	}
	if in.Remaining() != 0 {
		return nil, &ParseError{
			Kind:      KindLengthOutOfRange,
			Offset:    in.Position(),
			Declared:  uint64(mdcDigestSize + in.Remaining()),
			Available: mdcDigestSize,
			Detail:    "modification detection code body must be exactly 20 bytes",
		}
	}
	var p ModificationDetectionCodePacket
	copy(p.Digest[:], b)
	return &p, nil
}

// Tag returns TagModificationDetectionCode.
func (p *ModificationDetectionCodePacket) Tag() Tag { return TagModificationDetectionCode }

// Known reports true.
func (p *ModificationDetectionCodePacket) Known() bool { return true }

func (p *ModificationDetectionCodePacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.Digest[:]...), nil
}
