package rollcrc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPolynomial is returned when the generator polynomial is zero.
	ErrInvalidPolynomial = errors.New("polynomial must be nonzero")

	// ErrInvalidWindowSize is returned when the window size is less than 1.
	ErrInvalidWindowSize = errors.New("window size must be greater than 0")

	// ErrInvalidBufferSize is returned when bufferSize is 0 or negative.
	ErrInvalidBufferSize = errors.New("bufferSize must be greater than 0")

	// ErrNotSeeded is returned when an operation requires a seeded window.
	ErrNotSeeded = errors.New("window is not seeded")

	// ErrAlreadySeeded is returned when Seed is called on a seeded window.
	// Call Reset first to reuse the window for a new stream.
	ErrAlreadySeeded = errors.New("window is already seeded")

	// ErrSeedLength is returned when the seed slice does not cover exactly
	// one window.
	ErrSeedLength = errors.New("seed length must equal window size")

	// ErrPatternLength is returned when a search pattern does not cover
	// exactly one window.
	ErrPatternLength = errors.New("pattern length must equal window size")
)

// DefaultBufferSize is the default internal buffer size for the streaming
// Scanner (64 KiB).
const DefaultBufferSize = 64 * 1024

// Option is a function that configures a Table or Scanner.
type Option func(*config) error

// config holds the configuration shared by table construction and the
// streaming scanner. The word width lives in the type parameter of MakeTable
// and friends, so options stay non-generic.
type config struct {
	reflected  bool
	init       uint64
	bufferSize int
}

// defaultConfig returns the standard configuration: reflected bit order with
// an all-ones init and final XOR, matching CRC-32/ISO-HDLC and friends.
func defaultConfig() config {
	return config{
		reflected:  true,
		init:       ^uint64(0),
		bufferSize: DefaultBufferSize,
	}
}

// WithReflected selects the bit-ordering convention. The default (true)
// matches the widely used reflected CRC standards (CRC-32/ISO-HDLC,
// CRC-64/XZ, CRC-16/ARC, ...); false selects the normal MSB-first
// convention. The polynomial passed to MakeTable must use the matching
// representation.
func WithReflected(reflected bool) Option {
	return func(c *config) error {
		c.reflected = reflected

		return nil
	}
}

// WithInit sets the register init value, which is also used as the final
// XOR. The default is all-ones, yielding standard closed CRC values within
// the window. Zero gives the raw "open" polynomial remainder. The value is
// truncated to the table's word width.
func WithInit(init uint64) Option {
	return func(c *config) error {
		c.init = init

		return nil
	}
}

// WithBufferSize sets the internal buffer size for the streaming Scanner.
// The buffer is grown to hold at least one window if the given size is
// smaller. Table construction ignores this option.
func WithBufferSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, size)
		}

		c.bufferSize = size

		return nil
	}
}
