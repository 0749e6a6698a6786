package pgpwire

import "github.com/pgpkit/pgpwire/internal/cursor"

// Length-encoding constants for the new-format packet scheme and the
// subpacket scheme. See RFC 4880, sections 4.2.2 and 5.2.3.1.
const (
	lenOneOctetMax  = 191
	lenTwoOctetBase = 192
	lenTwoOctetMax  = 8383
	lenPartialMin   = 224
	lenFiveOctet    = 255

	// The subpacket scheme has no partial form, so its two-octet form
	// extends further than the packet scheme's.
	subLenTwoOctetMax = 16319
)

// newLength is the result of decoding one new-format length field. A
// partial length introduces a chunk of exactly Length bytes followed by
// another length field; only a non-partial length ends the body.
type newLength struct {
	Length  uint32
	Partial bool
}

// readNewLength decodes a new-format packet length field. See RFC 4880,
// section 4.2.2.
func readNewLength(in *cursor.Cursor) (newLength, error) {
	o0, err := in.Byte()
	if err != nil {
		return newLength{}, wrapBounds(err)
	}
	switch {
	case o0 <= lenOneOctetMax:
		return newLength{Length: uint32(o0)}, nil
	case o0 < lenPartialMin:
		o1, err := in.Byte()
		if err != nil {
			return newLength{}, wrapBounds(err)
		}
		return newLength{Length: uint32(o0-lenTwoOctetBase)<<8 + uint32(o1) + lenTwoOctetBase}, nil
	case o0 == lenFiveOctet:
		n, err := in.Uint32()
		if err != nil {
			return newLength{}, wrapBounds(err)
		}
		return newLength{Length: n}, nil
	default:
		// 224..254: partial body length, a power of two.
		return newLength{Length: 1 << (o0 & 0x1F), Partial: true}, nil
	}
}

// appendNewLength appends the minimal new-format encoding of n. Partial
// forms are never produced on write, so output stays deterministic.
func appendNewLength(dst []byte, n uint32) []byte {
	switch {
	case n <= lenOneOctetMax:
		return append(dst, byte(n))
	case n <= lenTwoOctetMax:
		n -= lenTwoOctetBase
		return append(dst, byte(n>>8)+lenTwoOctetBase, byte(n))
	default:
		return append(dst, lenFiveOctet, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// readOldLength decodes an old-format body length. lengthType is the low
// two bits of the tag octet; type 3 means the body extends to the end of
// the enclosing unit and is reported via the indeterminate flag.
func readOldLength(in *cursor.Cursor, lengthType byte) (length uint32, indeterminate bool, err error) {
	switch lengthType {
	case 0:
		b, err := in.Byte()
		if err != nil {
			return 0, false, wrapBounds(err)
		}
		return uint32(b), false, nil
	case 1:
		n, err := in.Uint16()
		if err != nil {
			return 0, false, wrapBounds(err)
		}
		return uint32(n), false, nil
	case 2:
		n, err := in.Uint32()
		if err != nil {
			return 0, false, wrapBounds(err)
		}
		return n, false, nil
	default:
		return 0, true, nil
	}
}

// readSubpacketLength decodes a subpacket length field. The scheme shares
// the one- and two-octet forms with new-format packet lengths but has no
// partial form. See RFC 4880, section 5.2.3.1.
func readSubpacketLength(in *cursor.Cursor) (uint32, error) {
	o0, err := in.Byte()
	if err != nil {
		return 0, wrapBounds(err)
	}
	switch {
	case o0 <= lenOneOctetMax:
		return uint32(o0), nil
	case o0 < lenFiveOctet:
		o1, err := in.Byte()
		if err != nil {
			return 0, wrapBounds(err)
		}
		return uint32(o0-lenTwoOctetBase)<<8 + uint32(o1) + lenTwoOctetBase, nil
	default:
		n, err := in.Uint32()
		if err != nil {
			return 0, wrapBounds(err)
		}
		return n, nil
	}
}

// appendSubpacketLength appends the minimal subpacket-length encoding of n.
func appendSubpacketLength(dst []byte, n uint32) []byte {
	switch {
	case n <= lenOneOctetMax:
		return append(dst, byte(n))
	case n <= subLenTwoOctetMax:
		n -= lenTwoOctetBase
		return append(dst, byte(n>>8)+lenTwoOctetBase, byte(n))
	default:
		return append(dst, lenFiveOctet, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}
