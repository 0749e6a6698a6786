// Package pgpwire encodes and decodes the OpenPGP packet wire format
// defined by RFC 4880: packet headers in both the old and new framing,
// every standard packet tag, and the type-tagged subpackets embedded in
// signature packets.
//
// The package is a structural codec only. It turns bytes into typed
// packet records and back; it never executes a cryptographic algorithm,
// never decides trust, and never touches the network or a keyring. Those
// concerns belong to the callers consuming the records it produces.
//
// Basic usage:
//
//	p, n, err := pgpwire.Parse(buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf = buf[n:] // advance to the next packet
//
//	switch p := p.(type) {
//	case *pgpwire.LiteralDataPacket:
//	    fmt.Println("literal data:", len(p.Data), "bytes")
//	case *pgpwire.SignaturePacket:
//	    fmt.Println("signature by", p.PubKeyAlgo)
//	}
//
// # Round-trip fidelity
//
// Re-serializing any parsed packet reproduces the original body
// byte-for-byte, including packets and subpackets whose type this package
// does not recognize: those decode to UnknownPacket and UnknownSubpacket,
// which preserve the raw tag or type number, the critical flag, and the
// raw bytes. Unknown types are deliberately not an error; forward
// compatibility requires that a stream written by a newer implementation
// survives a decode/encode pass here unchanged.
//
// Headers are not preserved verbatim: Serialize always emits a new-format
// header with the minimal definite length, so output is deterministic
// regardless of whether the input used old-format lengths or
// partial-length chunks.
//
// # Safety on hostile input
//
// Every length read from the wire is validated against the remaining
// input before it is trusted as a read count, so a malformed or
// adversarial buffer produces a *ParseError and nothing else: no panics,
// no reads past the buffer, no unbounded loops. Parse failures carry the
// byte offset at which they were detected and match the sentinel errors
// ErrTruncated, ErrLengthOutOfRange, ErrTooLong and
// ErrUnsupportedCombination via errors.Is.
//
// # Concurrency
//
// Parsing and serialization are synchronous and share no mutable state.
// Distinct buffers may be parsed concurrently from any number of
// goroutines; limits are plain per-call parameters, never package
// globals.
package pgpwire
