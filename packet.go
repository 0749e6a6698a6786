package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Packet is implemented by every decoded packet body. Concrete types are
// the structural decodings of the standard tags plus UnknownPacket for
// tags this package does not recognize.
//
// All implementations live in this package; the unexported serialization
// method keeps the set closed so tag dispatch stays exhaustive.
type Packet interface {
	// Tag returns the packet's tag number.
	Tag() Tag
	// Known reports whether the packet body was structurally decoded.
	// It is false only for UnknownPacket.
	Known() bool

	// appendBody appends the serialized packet body (without header).
	appendBody(dst []byte) ([]byte, error)
}

// Parse decodes exactly one packet from the start of buf and returns it
// together with the number of bytes consumed, including the header. A
// caller walking a packet stream calls Parse repeatedly, advancing by the
// consumed count each time.
//
// The returned packet never aliases header bytes, but its body fields may
// alias buf; callers that mutate buf afterwards must copy first. On error
// no packet is returned and buf is untouched.
func Parse(buf []byte, opts ...ParseOption) (Packet, int, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	in := cursor.New(buf)
	hdr, body, bodyBase, err := readHeader(in, &cfg)
	if err != nil {
		return nil, 0, err
	}
	p, err := parseBody(hdr.Tag, body, bodyBase, &cfg)
	if err != nil {
		return nil, 0, err
	}
	return p, in.Position(), nil
}

// Serialize encodes p as a complete packet: a new-format header with the
// minimal definite length encoding, followed by the body. Partial lengths
// are never emitted, so equal packets always serialize to equal bytes.
func Serialize(p Packet) ([]byte, error) {
	body, err := p.appendBody(nil)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+6)
	out = append(out, 0xC0|byte(p.Tag())&0x3F)
	out = appendNewLength(out, uint32(len(body)))
	return append(out, body...), nil
}

// parseBody dispatches a complete packet body to the decoder registered
// for tag. Unregistered tags decode to UnknownPacket so that forward
// compatibility costs nothing: the raw body round-trips byte-exactly.
// bodyBase is the absolute offset of body[0] in the original buffer, used
// for error reporting only.
func parseBody(tag Tag, body []byte, bodyBase int, cfg *parseConfig) (Packet, error) {
	in := cursor.NewAt(body, bodyBase)
	switch tag {
	case TagPublicKeyEncryptedKey:
		return parsePublicKeyEncryptedKey(in)
	case TagSignature:
		return parseSignature(in, cfg)
	case TagSymmetricKeyEncryptedKey:
		return parseSymmetricKeyEncryptedKey(in)
	case TagOnePassSignature:
		return parseOnePassSignature(in)
	case TagSecretKey, TagSecretSubkey:
		return parseSecretKey(in, body, tag)
	case TagPublicKey, TagPublicSubkey:
		return parsePublicKey(in, tag)
	case TagCompressedData:
		return parseCompressedData(in)
	case TagSymmetricallyEncryptedData:
		return parseSymmetricallyEncryptedData(in)
	case TagMarker:
		return parseMarker(in, body)
	case TagLiteralData:
		return parseLiteralData(in)
	case TagTrust:
		return parseTrust(in)
	case TagUserID:
		return parseUserID(in)
	case TagUserAttribute:
		return parseUserAttribute(in)
	case TagSymEncryptedIntegrityData:
		return parseSymEncryptedIntegrityData(in)
	case TagModificationDetectionCode:
		return parseModificationDetectionCode(in)
	default:
		return &UnknownPacket{RawTag: tag, Data: body}, nil
	}
}

// UnknownPacket preserves a packet with an unregistered tag. The raw body
// is carried untouched so the packet writes back byte-identically.
type UnknownPacket struct {
	RawTag Tag
	Data   []byte
}

// Tag returns the raw tag number from the wire.
func (p *UnknownPacket) Tag() Tag { return p.RawTag }

// Known reports false: the body was not structurally decoded.
func (p *UnknownPacket) Known() bool { return false }

func (p *UnknownPacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, p.Data...), nil
}
