package pgpwire

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ASCII armor block types. See RFC 4880, section 6.2.
const (
	ArmorTypeMessage    = "PGP MESSAGE"
	ArmorTypePublicKey  = "PGP PUBLIC KEY BLOCK"
	ArmorTypePrivateKey = "PGP PRIVATE KEY BLOCK"
	ArmorTypeSignature  = "PGP SIGNATURE"
)

// ErrInvalidArmor is returned when an armored block is malformed.
var ErrInvalidArmor = errors.New("invalid armor")

// ErrArmorChecksum is returned when an armored block's CRC-24 does not
// match its contents.
var ErrArmorChecksum = errors.New("armor checksum mismatch")

const (
	armorLineLength = 64

	crc24Init = 0xB704CE
	crc24Poly = 0x1864CFB
)

// ArmorBlock is a decoded ASCII armor block.
type ArmorBlock struct {
	// Type is the block type between BEGIN/END markers, e.g. "PGP MESSAGE".
	Type string
	// Headers holds the armor header key-value pairs.
	Headers map[string]string
	// Data is the decoded binary payload, normally a packet stream.
	Data []byte
}

// crc24 computes the OpenPGP radix-64 checksum. See RFC 4880,
// section 6.1.
func crc24(data []byte) uint32 {
	crc := uint32(crc24Init)
	for _, b := range data {
		crc ^= uint32(b) << 16
		for i := 0; i < 8; i++ {
			crc <<= 1
			if crc&0x1000000 != 0 {
				crc ^= crc24Poly
			}
		}
	}
	return crc & 0xFFFFFF
}

// Armor encodes data as an ASCII armor block of the given type. Headers
// are emitted in sorted key order so equal inputs armor identically.
func Armor(blockType string, headers map[string]string, data []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "-----BEGIN %s-----\n", blockType)

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s: %s\n", k, headers[k])
	}
	buf.WriteByte('\n')

	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > armorLineLength {
		buf.WriteString(encoded[:armorLineLength])
		buf.WriteByte('\n')
		encoded = encoded[armorLineLength:]
	}
	if len(encoded) > 0 {
		buf.WriteString(encoded)
		buf.WriteByte('\n')
	}

	crc := crc24(data)
	var crcBytes [3]byte
	crcBytes[0] = byte(crc >> 16)
	crcBytes[1] = byte(crc >> 8)
	crcBytes[2] = byte(crc)
	buf.WriteByte('=')
	buf.WriteString(base64.StdEncoding.EncodeToString(crcBytes[:]))
	buf.WriteByte('\n')

	fmt.Fprintf(&buf, "-----END %s-----\n", blockType)
	return buf.Bytes()
}

// Unarmor decodes the first ASCII armor block found in input. The CRC-24
// line is optional (newer emitters omit it) but is verified when present.
func Unarmor(input []byte) (*ArmorBlock, error) {
	lines := strings.Split(string(input), "\n")
	i := 0
	for i < len(lines) && !strings.HasPrefix(strings.TrimRight(lines[i], "\r"), "-----BEGIN ") {
		i++
	}
	if i == len(lines) {
		return nil, fmt.Errorf("%w: no BEGIN marker", ErrInvalidArmor)
	}
	first := strings.TrimRight(lines[i], "\r")
	blockType := strings.TrimSuffix(strings.TrimPrefix(first, "-----BEGIN "), "-----")
	if strings.HasSuffix(blockType, "-") || blockType == "" {
		return nil, fmt.Errorf("%w: malformed BEGIN marker", ErrInvalidArmor)
	}
	endMarker := "-----END " + blockType + "-----"
	i++

	headers := make(map[string]string)
	for ; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == "" {
			i++
			break
		}
		k, v, ok := strings.Cut(line, ": ")
		if !ok {
			// Blocks without headers may go straight into the payload.
			break
		}
		headers[k] = v
	}

	var b64 strings.Builder
	checksum := ""
	ended := false
	for ; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		switch {
		case line == endMarker:
			ended = true
		case strings.HasPrefix(line, "="):
			checksum = line[1:]
		case line != "":
			b64.WriteString(line)
		}
		if ended {
			break
		}
	}
	if !ended {
		return nil, fmt.Errorf("%w: missing END marker", ErrInvalidArmor)
	}

	data, err := base64.StdEncoding.DecodeString(b64.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArmor, err)
	}
	if checksum != "" {
		want, err := base64.StdEncoding.DecodeString(checksum)
		if err != nil || len(want) != 3 {
			return nil, fmt.Errorf("%w: malformed checksum line", ErrInvalidArmor)
		}
		got := crc24(data)
		if want[0] != byte(got>>16) || want[1] != byte(got>>8) || want[2] != byte(got) {
			return nil, ErrArmorChecksum
		}
	}
	if len(headers) == 0 {
		headers = nil
	}
	return &ArmorBlock{Type: blockType, Headers: headers, Data: data}, nil
}
