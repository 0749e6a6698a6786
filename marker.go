package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// markerBody is the fixed content of a marker packet. See RFC 4880,
// section 5.8.
const markerBody = "PGP"

// MarkerPacket is a marker packet, tag 10. Its body is the fixed string
// "PGP"; a tag-10 packet with any other body parses as UnknownPacket so
// the bytes still round-trip.
type MarkerPacket struct{}

func parseMarker(in *cursor.Cursor, body []byte) (Packet, error) {
	if string(body) != markerBody {
		return &UnknownPacket{RawTag: TagMarker, Data: body}, nil
	}
	in.Rest()
	return &MarkerPacket{}, nil
}

// Tag returns TagMarker.
func (p *MarkerPacket) Tag() Tag { return TagMarker }

// Known reports true.
func (p *MarkerPacket) Known() bool { return true }

func (p *MarkerPacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, markerBody...), nil
}

// TrustPacket is a trust packet, tag 12. Trust packets are private to the
// keyring implementation that wrote them; the codec carries the body
// opaquely and the trust engine interprets it.
type TrustPacket struct {
	Data []byte
}

func parseTrust(in *cursor.Cursor) (Packet, error) {
	return &TrustPacket{Data: in.Rest()}, nil
}

// Tag returns TagTrust.
func (p *TrustPacket) Tag() Tag { return TagTrust }

// Known reports true.
func (p *TrustPacket) Known() bool { return true }

func (p *TrustPacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.Data...), nil
}
