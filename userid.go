package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// UserIDPacket is a user ID packet, tag 13. The ID is conventionally a
// UTF-8 "Name (Comment) <email>" string, but the codec treats it as an
// opaque byte string; display truncation and encoding repair belong to the
// presentation layer.
type UserIDPacket struct {
	ID string
}

func parseUserID(in *cursor.Cursor) (Packet, error) {
	return &UserIDPacket{ID: string(in.Rest())}, nil
}

// Tag returns TagUserID.
func (p *UserIDPacket) Tag() Tag { return TagUserID }

// Known reports true.
func (p *UserIDPacket) Known() bool { return true }

func (p *UserIDPacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.ID...), nil
}

// UserAttributePacket is a user attribute packet, tag 17. The body is a
// subpacket area in the same framing as signature subpackets, but the
// only registered attribute type is the JPEG image; the codec carries the
// area opaquely.
type UserAttributePacket struct {
	Data []byte
}

func parseUserAttribute(in *cursor.Cursor) (Packet, error) {
	return &UserAttributePacket{Data: in.Rest()}, nil
}

// Tag returns TagUserAttribute.
func (p *UserAttributePacket) Tag() Tag { return TagUserAttribute }

// Known reports true.
func (p *UserAttributePacket) Known() bool { return true }

func (p *UserAttributePacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.Data...), nil
}
