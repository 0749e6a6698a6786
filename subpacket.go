package pgpwire

import (
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// SubpacketType is a signature subpacket type number, the low seven bits
// of the subpacket's type octet. See RFC 4880, section 5.2.3.1.
type SubpacketType uint8

const (
	SubpacketCreationTime            SubpacketType = 2
	SubpacketSignatureExpirationTime SubpacketType = 3
	SubpacketExportableCertification SubpacketType = 4
	SubpacketTrustSignature          SubpacketType = 5
	SubpacketRegularExpression       SubpacketType = 6
	SubpacketRevocable               SubpacketType = 7
	SubpacketKeyExpirationTime       SubpacketType = 9
	SubpacketPreferredSymmetric      SubpacketType = 11
	SubpacketRevocationKey           SubpacketType = 12
	SubpacketIssuer                  SubpacketType = 16
	SubpacketNotationData            SubpacketType = 20
	SubpacketPreferredHash           SubpacketType = 21
	SubpacketPreferredCompression    SubpacketType = 22
	SubpacketKeyServerPreferences    SubpacketType = 23
	SubpacketPreferredKeyServer      SubpacketType = 24
	SubpacketPrimaryUserID           SubpacketType = 25
	SubpacketPolicyURI               SubpacketType = 26
	SubpacketKeyFlags                SubpacketType = 27
	SubpacketSignerUserID            SubpacketType = 28
	SubpacketRevocationReason        SubpacketType = 29
	SubpacketFeatures                SubpacketType = 30
	SubpacketEmbeddedSignature       SubpacketType = 32
	SubpacketIssuerFingerprint       SubpacketType = 33
)

func (t SubpacketType) String() string {
	switch t {
	case SubpacketCreationTime:
		return "signature creation time"
	case SubpacketSignatureExpirationTime:
		return "signature expiration time"
	case SubpacketExportableCertification:
		return "exportable certification"
	case SubpacketTrustSignature:
		return "trust signature"
	case SubpacketRegularExpression:
		return "regular expression"
	case SubpacketRevocable:
		return "revocable"
	case SubpacketKeyExpirationTime:
		return "key expiration time"
	case SubpacketPreferredSymmetric:
		return "preferred symmetric algorithms"
	case SubpacketRevocationKey:
		return "revocation key"
	case SubpacketIssuer:
		return "issuer"
	case SubpacketNotationData:
		return "notation data"
	case SubpacketPreferredHash:
		return "preferred hash algorithms"
	case SubpacketPreferredCompression:
		return "preferred compression algorithms"
	case SubpacketKeyServerPreferences:
		return "key server preferences"
	case SubpacketPreferredKeyServer:
		return "preferred key server"
	case SubpacketPrimaryUserID:
		return "primary user ID"
	case SubpacketPolicyURI:
		return "policy URI"
	case SubpacketKeyFlags:
		return "key flags"
	case SubpacketSignerUserID:
		return "signer user ID"
	case SubpacketRevocationReason:
		return "reason for revocation"
	case SubpacketFeatures:
		return "features"
	case SubpacketEmbeddedSignature:
		return "embedded signature"
	case SubpacketIssuerFingerprint:
		return "issuer fingerprint"
	}
	return fmt.Sprintf("SubpacketType(%d)", uint8(t))
}

// criticalBit is the high bit of the subpacket type octet. A reader that
// does not recognize a subpacket with this bit set must consider the
// containing signature invalid; that decision belongs to the verification
// collaborator, which checks IsCritical on unknown subpackets.
const criticalBit = 0x80

// SignatureSubpacket is implemented by every decoded signature subpacket.
// Unregistered type numbers decode to UnknownSubpacket; the critical flag
// and raw body survive the round trip for every variant.
type SignatureSubpacket interface {
	// Type returns the subpacket type number, without the critical bit.
	Type() SubpacketType
	// IsCritical reports the critical flag from the type octet.
	IsCritical() bool

	// appendBody appends the serialized subpacket body, excluding the
	// length field and type octet.
	appendBody(dst []byte) ([]byte, error)
}

// parseSubpacketArea decodes a complete subpacket area: a sequence of
// length-prefixed, type-tagged records filling the range exactly.
func parseSubpacketArea(in *cursor.Cursor, cfg *parseConfig) ([]SignatureSubpacket, error) {
	var subs []SignatureSubpacket
	for in.Remaining() > 0 {
		length, err := readSubpacketLength(in)
		if err != nil {
			return nil, err
		}
		if length == 0 {
			return nil, &ParseError{
				Kind:   KindLengthOutOfRange,
				Offset: in.Position(),
				Detail: "subpacket length 0 cannot hold a type octet",
			}
		}
		if uint64(length) > cfg.maxSubpacketLength {
			return nil, &ParseError{
				Kind:      KindLengthOutOfRange,
				Offset:    in.Position(),
				Declared:  uint64(length),
				Available: cfg.maxSubpacketLength,
				Detail:    "subpacket exceeds maximum subpacket length",
			}
		}
		payload, err := in.Take(int(length))
		if err != nil {
			return nil, wrapBounds(err)
		}
		typ := payload[0]
		bodyOffset := in.Position() - int(length) + 1
		sp, err := parseSubpacketBody(
			SubpacketType(typ&^criticalBit),
			typ&criticalBit != 0,
			payload[1:],
			bodyOffset,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sp)
	}
	return subs, nil
}

// appendSubpacketArea serializes subpackets back-to-back: for each, the
// length of type octet plus body, the type octet with the critical bit,
// then the body.
func appendSubpacketArea(dst []byte, subs []SignatureSubpacket) ([]byte, error) {
	for _, sp := range subs {
		body, err := sp.appendBody(nil)
		if err != nil {
			return nil, err
		}
		dst = appendSubpacketLength(dst, uint32(len(body))+1)
		typ := byte(sp.Type())
		if sp.IsCritical() {
			typ |= criticalBit
		}
		dst = append(dst, typ)
		dst = append(dst, body...)
	}
	return dst, nil
}

// parseSubpacketBody dispatches a subpacket body to the decoder registered
// for its type number. Unregistered types are not an error: they decode to
// UnknownSubpacket so non-critical ones can be ignored by the consumer and
// critical ones surfaced to it, with the bytes preserved either way.
// off is the absolute offset of body[0], for error reporting.
func parseSubpacketBody(typ SubpacketType, critical bool, body []byte, off int) (SignatureSubpacket, error) {
	in := cursor.NewAt(body, off)
	switch typ {
	case SubpacketCreationTime:
		return parseCreationTime(in, critical)
	case SubpacketSignatureExpirationTime:
		return parseSignatureExpirationTime(in, critical)
	case SubpacketExportableCertification:
		return parseExportableCertification(in, critical)
	case SubpacketTrustSignature:
		return parseTrustSignature(in, critical)
	case SubpacketRegularExpression:
		return parseRegularExpression(in, critical)
	case SubpacketRevocable:
		return parseRevocable(in, critical)
	case SubpacketKeyExpirationTime:
		return parseKeyExpirationTime(in, critical)
	case SubpacketPreferredSymmetric:
		return parsePreferredSymmetric(in, critical)
	case SubpacketRevocationKey:
		return parseRevocationKey(in, critical)
	case SubpacketIssuer:
		return parseIssuer(in, critical)
	case SubpacketNotationData:
		return parseNotationData(in, critical)
	case SubpacketPreferredHash:
		return parsePreferredHash(in, critical)
	case SubpacketPreferredCompression:
		return parsePreferredCompression(in, critical)
	case SubpacketKeyServerPreferences:
		return parseKeyServerPreferences(in, critical)
	case SubpacketPreferredKeyServer:
		return parsePreferredKeyServer(in, critical)
	case SubpacketPrimaryUserID:
		return parsePrimaryUserID(in, critical)
	case SubpacketPolicyURI:
		return parsePolicyURI(in, critical)
	case SubpacketKeyFlags:
		return parseKeyFlags(in, critical)
	case SubpacketSignerUserID:
		return parseSignerUserID(in, critical)
	case SubpacketRevocationReason:
		return parseRevocationReason(in, critical)
	case SubpacketFeatures:
		return parseFeatures(in, critical)
	case SubpacketEmbeddedSignature:
		return parseEmbeddedSignature(in, critical)
	case SubpacketIssuerFingerprint:
		return parseIssuerFingerprint(in, critical)
	default:
		return &UnknownSubpacket{RawType: typ, Critical: critical, Data: body}, nil
	}
}

// UnknownSubpacket preserves a subpacket with an unregistered type number.
type UnknownSubpacket struct {
	RawType  SubpacketType
	Critical bool
	Data     []byte
}

// Type returns the raw type number from the wire.
func (s *UnknownSubpacket) Type() SubpacketType { return s.RawType }

// IsCritical reports the critical flag from the type octet.
func (s *UnknownSubpacket) IsCritical() bool { return s.Critical }

func (s *UnknownSubpacket) appendBody(dst []byte) ([]byte, error) {
	return append(dst, s.Data...), nil
}

// tooLong builds the KindTooLong error for a subpacket body that exceeds
// its type-specific maximum. The recorded offset is the position at which
// the limit was first exceeded; no bytes past it are examined.
func tooLong(bodyOffset, bodyLen, max int) *ParseError {
	return &ParseError{
		Kind:      KindTooLong,
		Offset:    bodyOffset + max,
		Declared:  uint64(bodyLen),
		Available: uint64(max),
	}
}
