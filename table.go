package rollcrc

import "fmt"

// Word constrains the CRC register width. The width that would otherwise be
// a runtime bit-width knob is carried by the type parameter instead, so an
// unsupported width is unrepresentable.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Generator polynomials for common CRC standards, in reflected form. Use
// them with the default (reflected) convention; with WithReflected(false)
// supply a normal-form polynomial instead (e.g. 0x04C11DB7 for CRC-32).
const (
	Poly8Maxim       uint8  = 0x8C
	Poly16IBM        uint16 = 0xA001
	Poly16Kermit     uint16 = 0x8408
	Poly32IEEE       uint32 = 0xEDB88320
	Poly32Castagnoli uint32 = 0x82F63B78
	Poly64ISO        uint64 = 0xD800000000000000
	Poly64ECMA       uint64 = 0xC96C5795D7870F42
)

// Table holds the precomputed lookup tables for rolling a CRC over a
// fixed-size window. A Table is immutable after construction and may be
// shared by any number of Windows and Scanners across goroutines.
type Table[W Word] struct {
	// front is the standard byte-wise CRC table: front[b] is the raw
	// remainder contribution of byte b entering the register.
	front [256]W

	// rear[b] is the remainder of b multiplied by x^(8*window), i.e. the
	// contribution byte b still makes to the register after window-1
	// further bytes. XORing it cancels the byte leaving the window.
	rear [256]W

	// cond closes a raw register value into a standard CRC: the init value
	// propagated through one window of bytes, folded with the final XOR.
	cond W

	window    int
	shift     uint // register width minus 8
	reflected bool
	init      W
}

// MakeTable precomputes the base and rolling tables for the given generator
// polynomial and window size. The register width is the type parameter W;
// construction fails with ErrInvalidPolynomial for a zero polynomial and
// ErrInvalidWindowSize for a window smaller than one byte.
func MakeTable[W Word](poly W, window int, opts ...Option) (*Table[W], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if poly == 0 {
		return nil, ErrInvalidPolynomial
	}

	if window < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, window)
	}

	t := &Table[W]{
		window:    window,
		shift:     wordBits[W]() - 8,
		reflected: cfg.reflected,
		init:      W(cfg.init),
	}

	t.buildFront(poly)
	t.buildRear()
	t.buildConditioning()

	return t, nil
}

// Window returns the window size the table was built for.
func (t *Table[W]) Window() int {
	return t.window
}

// Reflected reports whether the table uses the reflected bit convention.
func (t *Table[W]) Reflected() bool {
	return t.reflected
}

// update folds one byte into a raw register value. This is the standard
// one-lookup-per-byte CRC step in the table's bit convention.
func (t *Table[W]) update(crc W, b byte) W {
	// The byte shift is split in two so vet accepts it when W is uint8;
	// shifting by the full width yields zero either way.
	if t.reflected {
		return t.front[byte(crc)^b] ^ (crc >> 4 >> 4)
	}

	return t.front[byte(crc>>t.shift)^b] ^ (crc << 4 << 4)
}

// buildFront fills the standard CRC table by bit-by-bit polynomial division,
// eight shift-and-XOR iterations per byte value.
func (t *Table[W]) buildFront(poly W) {
	if t.reflected {
		for i := range t.front {
			crc := W(i)
			for j := 0; j < 8; j++ {
				if crc&1 != 0 {
					crc = (crc >> 1) ^ poly
				} else {
					crc >>= 1
				}
			}

			t.front[i] = crc
		}

		return
	}

	top := W(1) << (t.shift + 7)

	for i := range t.front {
		crc := W(i) << t.shift
		for j := 0; j < 8; j++ {
			if crc&top != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}

		t.front[i] = crc
	}
}

// buildRear derives the rolling table from the base table. For each byte
// value the base contribution is pushed through window-1 zero-byte steps,
// giving the remainder of that byte weighted by x^(8*window). Entries for
// non-power-of-two byte values follow by linearity of CRC over XOR.
func (t *Table[W]) buildRear() {
	for i := 1; i < 256; i <<= 1 {
		crc := t.front[i]
		for j := 1; j < t.window; j++ {
			crc = t.update(crc, 0)
		}

		for j := 0; j < i; j++ {
			t.rear[j+i] = crc ^ t.rear[j]
		}
	}
}

// buildConditioning precomputes the open-to-closed correction for one
// window: the init value propagated across window bytes, plus the final XOR
// (which equals init in the standard conventions).
func (t *Table[W]) buildConditioning() {
	crc := t.init
	for i := 0; i < t.window; i++ {
		crc = t.update(crc, 0)
	}

	t.cond = crc ^ t.init
}

// Checksum computes the ordinary, non-rolling CRC of p under the table's
// polynomial and convention. It accepts buffers of any length and matches
// hash/crc32 and hash/crc64 for the corresponding standard polynomials.
func Checksum[W Word](t *Table[W], p []byte) W {
	crc := t.init
	for _, b := range p {
		crc = t.update(crc, b)
	}

	return crc ^ t.init
}

// Hashes returns the CRC of every window position of p, rolling a single
// window across the slice. It returns nil when p is shorter than one window.
func Hashes[W Word](t *Table[W], p []byte) []W {
	if len(p) < t.window {
		return nil
	}

	win := NewWindow(t)
	if err := win.Seed(p[:t.window]); err != nil {
		return nil
	}

	out := make([]W, len(p)-t.window+1)
	out[0], _ = win.Sum()

	for i := t.window; i < len(p); i++ {
		out[i-t.window+1], _ = win.Roll(p[i])
	}

	return out
}

// wordBits returns the width of W in bits.
func wordBits[W Word]() uint {
	n := uint(0)
	for v := ^W(0); v != 0; v >>= 1 {
		n++
	}

	return n
}
