package pgpwire

import (
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Literal data format octets. See RFC 4880, section 5.9.
const (
	LiteralFormatBinary byte = 'b'
	LiteralFormatText   byte = 't'
	LiteralFormatUTF8   byte = 'u'
)

// MaxLiteralFileName is the maximum file name length a literal data packet
// can carry; the wire field is a single octet.
const MaxLiteralFileName = 255

// consoleFileName marks output intended for the console only. Writers use
// it to request "for your eyes only" handling from the consumer.
const consoleFileName = "_CONSOLE"

// LiteralDataPacket is a literal (plaintext) data packet, tag 11.
type LiteralDataPacket struct {
	// Format is one of the Literal* format octets. Unrecognized octets are
	// preserved as-is.
	Format byte
	// FileName is the suggested name for the data. It is advisory and may
	// be hostile; consumers must sanitize before touching a filesystem.
	FileName string
	// Time is the modification time of the data in seconds since the
	// epoch, or zero.
	Time uint32
	// Data is the literal payload.
	Data []byte
}

func parseLiteralData(in *cursor.Cursor) (Packet, error) {
	format, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	nameLen, err := in.Byte()
	if err != nil {
		return nil, wrapBounds(err)
	}
	name, err := in.Take(int(nameLen))
	if err != nil {
		return nil, wrapBounds(err)
	}
	t, err := in.Uint32()
	if err != nil {
		return nil, wrapBounds(err)
	}
	return &LiteralDataPacket{
		Format:   format,
		FileName: string(name),
		Time:     t,
		Data:     in.Rest(),
	}, nil
}

// Tag returns TagLiteralData.
func (p *LiteralDataPacket) Tag() Tag { return TagLiteralData }

// Known reports true.
func (p *LiteralDataPacket) Known() bool { return true }

// ForYourEyesOnly reports whether the file name is the special console
// sentinel, telling the consumer to display the data without storing it.
func (p *LiteralDataPacket) ForYourEyesOnly() bool {
	return p.FileName == consoleFileName
}

func (p *LiteralDataPacket) appendBody(dst []byte) ([]byte, error) {
	if len(p.FileName) > MaxLiteralFileName {
		return nil, fmt.Errorf("pgpwire: literal file name is %d bytes, maximum is %d", len(p.FileName), MaxLiteralFileName)
	}
	dst = append(dst, p.Format, byte(len(p.FileName)))
	dst = append(dst, p.FileName...)
	dst = append(dst, byte(p.Time>>24), byte(p.Time>>16), byte(p.Time>>8), byte(p.Time))
	return append(dst, p.Data...), nil
}
