package pgpwire

const (
	// DefaultMaxPacketLength is the default cap on a single logical packet
	// body, including bodies reassembled from partial-length chunks.
	DefaultMaxPacketLength = 1 << 30

	// DefaultMaxSubpacketLength is the default cap on a single signature
	// subpacket, before the per-type maxima are applied.
	DefaultMaxSubpacketLength = 1 << 24
)

// parseConfig holds configuration for a single parse. All limits are
// explicit per-call state; the package keeps no ambient globals, so
// concurrent parses never interact.
type parseConfig struct {
	maxPacketLength    uint64
	maxSubpacketLength uint64
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		maxPacketLength:    DefaultMaxPacketLength,
		maxSubpacketLength: DefaultMaxSubpacketLength,
	}
}

// ParseOption configures a parse.
type ParseOption func(*parseConfig)

// WithMaxPacketLength caps the size of a single logical packet body. Bodies
// whose declared (or reassembled) length exceeds n fail with
// ErrLengthOutOfRange.
func WithMaxPacketLength(n uint64) ParseOption {
	return func(c *parseConfig) {
		if n > 0 {
			c.maxPacketLength = n
		}
	}
}

// WithMaxSubpacketLength caps the size of a single signature subpacket.
// Per-type maxima still apply below this ceiling.
func WithMaxSubpacketLength(n uint64) ParseOption {
	return func(c *parseConfig) {
		if n > 0 {
			c.maxSubpacketLength = n
		}
	}
}
