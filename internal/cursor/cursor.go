// Package cursor provides a bounds-checked read head over an immutable byte
// buffer. It is the only component that touches raw input directly: every
// read is validated against the end of the buffer before any byte is
// consumed, so higher layers can trust the slices they receive.
//
// A Cursor never copies the underlying buffer; Take and Rest return
// subslices of the original input. The offset advances monotonically and no
// backward seeking is exposed, which keeps one-pass decoding easy to reason
// about and makes error offsets unambiguous.
package cursor

import "fmt"

// Cursor is a read head over a finite byte range. The zero value is an
// exhausted cursor; use New or NewAt to create a usable one.
type Cursor struct {
	buf  []byte
	off  int
	base int
}

// New returns a cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewAt returns a cursor over buf whose reported positions are offset by
// base. It is used when buf is a slice carved out of a larger input, so
// error offsets stay absolute.
func NewAt(buf []byte, base int) *Cursor {
	return &Cursor{buf: buf, base: base}
}

// BoundsError reports an attempt to read past the end of the input.
type BoundsError struct {
	// Offset is the position at which the read was attempted.
	Offset int
	// Need is the number of bytes the read required.
	Need int
	// Have is the number of bytes that were available.
	Have int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("input exhausted at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// Position returns the current offset, including any base offset supplied
// to NewAt.
func (c *Cursor) Position() int {
	return c.base + c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Peek returns the next byte without consuming it. The second return value
// is false when the input is exhausted.
func (c *Cursor) Peek() (byte, bool) {
	if c.off >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.off], true
}

// Byte consumes and returns the next byte.
func (c *Cursor) Byte() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, &BoundsError{Offset: c.Position(), Need: 1, Have: 0}
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// Take consumes exactly n bytes and returns them as a subslice of the
// underlying buffer. Callers must not modify the returned slice.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, &BoundsError{Offset: c.Position(), Need: n, Have: len(c.buf) - c.off}
	}
	out := c.buf[c.off : c.off+n]
	c.off += n
	return out, nil
}

// Uint16 consumes two bytes and returns them as a big-endian integer.
func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// Uint32 consumes four bytes and returns them as a big-endian integer.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Rest consumes and returns all remaining bytes. It never fails; the result
// is empty when the cursor is exhausted.
func (c *Cursor) Rest() []byte {
	out := c.buf[c.off:]
	c.off = len(c.buf)
	return out
}
