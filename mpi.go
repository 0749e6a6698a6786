package pgpwire

import (
	"math/big"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// MPI is an OpenPGP multiprecision integer: a two-octet big-endian bit
// count followed by the integer's big-endian bytes. See RFC 4880,
// section 3.2.
//
// The raw bytes are kept exactly as read so that re-serializing an MPI
// parsed from the wire is byte-identical even when the declared bit count
// is not minimal.
type MPI struct {
	// BitLength is the declared bit count.
	BitLength uint16
	// Bytes holds the integer, big-endian, exactly ceil(BitLength/8) long.
	Bytes []byte
}

// NewMPI builds an MPI from a big integer with a minimal bit count.
func NewMPI(n *big.Int) MPI {
	return MPI{BitLength: uint16(n.BitLen()), Bytes: n.Bytes()}
}

// Int returns the MPI's value as a big integer.
func (m MPI) Int() *big.Int {
	return new(big.Int).SetBytes(m.Bytes)
}

// readMPI decodes one multiprecision integer.
func readMPI(in *cursor.Cursor) (MPI, error) {
	bits, err := in.Uint16()
	if err != nil {
		return MPI{}, wrapBounds(err)
	}
	b, err := in.Take((int(bits) + 7) / 8)
	if err != nil {
		return MPI{}, wrapBounds(err)
	}
	return MPI{BitLength: bits, Bytes: b}, nil
}

// readMPIs decodes multiprecision integers until the cursor is exhausted.
func readMPIs(in *cursor.Cursor) ([]MPI, error) {
	var out []MPI
	for in.Remaining() > 0 {
		m, err := readMPI(in)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// appendMPI appends the wire encoding of m.
func appendMPI(dst []byte, m MPI) []byte {
	dst = append(dst, byte(m.BitLength>>8), byte(m.BitLength))
	return append(dst, m.Bytes...)
}
