package pgpwire

import (
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Tag is an OpenPGP packet tag number. See RFC 4880, section 4.3.
type Tag uint8

const (
	TagReserved                   Tag = 0
	TagPublicKeyEncryptedKey      Tag = 1
	TagSignature                  Tag = 2
	TagSymmetricKeyEncryptedKey   Tag = 3
	TagOnePassSignature           Tag = 4
	TagSecretKey                  Tag = 5
	TagPublicKey                  Tag = 6
	TagSecretSubkey               Tag = 7
	TagCompressedData             Tag = 8
	TagSymmetricallyEncryptedData Tag = 9
	TagMarker                     Tag = 10
	TagLiteralData                Tag = 11
	TagTrust                      Tag = 12
	TagUserID                     Tag = 13
	TagPublicSubkey               Tag = 14
	TagUserAttribute              Tag = 17
	TagSymEncryptedIntegrityData  Tag = 18
	TagModificationDetectionCode  Tag = 19
)

func (t Tag) String() string {
	switch t {
	case TagPublicKeyEncryptedKey:
		return "public-key encrypted session key"
	case TagSignature:
		return "signature"
	case TagSymmetricKeyEncryptedKey:
		return "symmetric-key encrypted session key"
	case TagOnePassSignature:
		return "one-pass signature"
	case TagSecretKey:
		return "secret key"
	case TagPublicKey:
		return "public key"
	case TagSecretSubkey:
		return "secret subkey"
	case TagCompressedData:
		return "compressed data"
	case TagSymmetricallyEncryptedData:
		return "symmetrically encrypted data"
	case TagMarker:
		return "marker"
	case TagLiteralData:
		return "literal data"
	case TagTrust:
		return "trust"
	case TagUserID:
		return "user ID"
	case TagPublicSubkey:
		return "public subkey"
	case TagUserAttribute:
		return "user attribute"
	case TagSymEncryptedIntegrityData:
		return "symmetrically encrypted integrity protected data"
	case TagModificationDetectionCode:
		return "modification detection code"
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// LengthMode records how a packet header encoded its body length.
type LengthMode int

const (
	// LengthDefinite: a single explicit body length.
	LengthDefinite LengthMode = iota
	// LengthIndeterminate: the body extends to the end of the enclosing
	// unit. Legal only in old-format headers.
	LengthIndeterminate
	// LengthPartial: the body arrived as a chain of length-prefixed chunks.
	// Legal only in new-format headers.
	LengthPartial
)

// Header is a decoded packet header.
type Header struct {
	Tag       Tag
	OldFormat bool
	Mode      LengthMode
	// Chunks holds the chunk sizes for LengthPartial, in wire order
	// including the terminal chunk. For LengthDefinite it holds the single
	// body length. Empty for LengthIndeterminate.
	Chunks []uint32
}

// readHeader decodes one packet header and carves out the full logical
// body. For definite and indeterminate lengths the returned body aliases
// the input buffer; a partial-length body is reassembled into a fresh
// buffer. bodyBase is the absolute offset of the first body byte, used to
// keep error offsets absolute (it is the offset of the first chunk for
// partial bodies).
func readHeader(in *cursor.Cursor, cfg *parseConfig) (hdr Header, body []byte, bodyBase int, err error) {
	tagOff := in.Position()
	b, err := in.Byte()
	if err != nil {
		return Header{}, nil, 0, wrapBounds(err)
	}
	if b&0x80 == 0 {
		return Header{}, nil, 0, &ParseError{
			Kind:   KindUnsupportedCombination,
			Offset: tagOff,
			Detail: fmt.Sprintf("tag octet %#02x has bit 7 clear", b),
		}
	}

	if b&0x40 == 0 {
		// Old format: four-bit tag, two-bit length type.
		hdr.OldFormat = true
		hdr.Tag = Tag(b >> 2 & 0x0F)
		if hdr.Tag == TagReserved {
			return Header{}, nil, 0, &ParseError{
				Kind:   KindUnsupportedCombination,
				Offset: tagOff,
				Detail: "tag 0 is reserved",
			}
		}
		length, indeterminate, err := readOldLength(in, b&0x03)
		if err != nil {
			return Header{}, nil, 0, err
		}
		if indeterminate {
			hdr.Mode = LengthIndeterminate
			bodyBase = in.Position()
			return hdr, in.Rest(), bodyBase, nil
		}
		hdr.Mode = LengthDefinite
		hdr.Chunks = []uint32{length}
		body, bodyBase, err = takeBody(in, length, cfg)
		return hdr, body, bodyBase, err
	}

	// New format: six-bit tag.
	hdr.Tag = Tag(b & 0x3F)
	if hdr.Tag == TagReserved {
		return Header{}, nil, 0, &ParseError{
			Kind:   KindUnsupportedCombination,
			Offset: tagOff,
			Detail: "tag 0 is reserved",
		}
	}
	nl, err := readNewLength(in)
	if err != nil {
		return Header{}, nil, 0, err
	}
	if !nl.Partial {
		hdr.Mode = LengthDefinite
		hdr.Chunks = []uint32{nl.Length}
		body, bodyBase, err = takeBody(in, nl.Length, cfg)
		return hdr, body, bodyBase, err
	}

	// Partial lengths: reassemble the chunk chain into one logical body.
	// Every chunk size is validated against the remaining input before it
	// is trusted as a read count, so a hostile chain cannot run away.
	hdr.Mode = LengthPartial
	bodyBase = in.Position()
	var total uint64
	for {
		total += uint64(nl.Length)
		if total > cfg.maxPacketLength {
			return Header{}, nil, 0, &ParseError{
				Kind:      KindLengthOutOfRange,
				Offset:    in.Position(),
				Declared:  total,
				Available: cfg.maxPacketLength,
				Detail:    "reassembled body exceeds maximum packet length",
			}
		}
		chunk, err := in.Take(int(nl.Length))
		if err != nil {
			return Header{}, nil, 0, wrapBounds(err)
		}
		hdr.Chunks = append(hdr.Chunks, nl.Length)
		body = append(body, chunk...)
		if !nl.Partial {
			return hdr, body, bodyBase, nil
		}
		nl, err = readNewLength(in)
		if err != nil {
			return Header{}, nil, 0, err
		}
	}
}

// takeBody validates a definite body length against the remaining input and
// the configured maximum, then slices exactly that many bytes.
func takeBody(in *cursor.Cursor, length uint32, cfg *parseConfig) ([]byte, int, error) {
	if uint64(length) > cfg.maxPacketLength {
		return nil, 0, &ParseError{
			Kind:      KindLengthOutOfRange,
			Offset:    in.Position(),
			Declared:  uint64(length),
			Available: cfg.maxPacketLength,
			Detail:    "declared body exceeds maximum packet length",
		}
	}
	base := in.Position()
	body, err := in.Take(int(length))
	if err != nil {
		return nil, 0, wrapBounds(err)
	}
	return body, base, nil
}
