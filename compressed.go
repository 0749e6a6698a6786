package pgpwire

import (
	"github.com/pgpkit/pgpwire/internal/cursor"
)

// CompressedDataPacket is a compressed data packet, tag 8. The compressed
// stream is carried opaquely; inflating it (and re-parsing the packets
// inside) is the caller's concern.
type CompressedDataPacket struct {
	Algorithm CompressionAlgorithm
	Data      []byte
}

func parseCompressedData(in *cursor.Cursor) (Packet, error) {
	algo, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	return &CompressedDataPacket{
		Algorithm: CompressionAlgorithm(algo),
		Data:      in.Rest(),
	}, nil
}

// Tag returns TagCompressedData.
func (p *CompressedDataPacket) Tag() Tag { return TagCompressedData }

// Known reports true.
func (p *CompressedDataPacket) Known() bool { return true }

func (p *CompressedDataPacket) appendBody(dst []byte) ([]byte, error) {
	dst = append(dst, byte(p.Algorithm))
	return append(dst, p.Data...), nil
}
