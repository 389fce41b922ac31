package rollcrc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Finder locates occurrences of a fixed byte pattern using the rolling
// checksum as a filter. Candidate positions whose window CRC matches the
// pattern's CRC are verified byte-wise, so a match is never a CRC collision.
//
// The pattern length must equal the table's window size. A Finder is
// immutable and safe for concurrent use.
type Finder[W Word] struct {
	table   *Table[W]
	pattern []byte
	target  W
}

// NewFinder creates a Finder for the given pattern. Fails with
// ErrPatternLength when the pattern does not cover exactly one window.
func NewFinder[W Word](t *Table[W], pattern []byte) (*Finder[W], error) {
	if len(pattern) != t.window {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPatternLength, len(pattern), t.window)
	}

	f := &Finder[W]{
		table:   t,
		pattern: append([]byte(nil), pattern...),
	}
	f.target = Checksum(t, f.pattern)

	return f, nil
}

// Sum returns the CRC of the pattern.
func (f *Finder[W]) Sum() W {
	return f.target
}

// FindAll returns the offsets of all occurrences of the pattern in p.
func (f *Finder[W]) FindAll(p []byte) []int {
	size := f.table.window
	if len(p) < size {
		return nil
	}

	win := NewWindow(f.table)
	if err := win.Seed(p[:size]); err != nil {
		return nil
	}

	var out []int

	sum, _ := win.Sum()
	if sum == f.target && bytes.Equal(p[:size], f.pattern) {
		out = append(out, 0)
	}

	for i := size; i < len(p); i++ {
		sum, _ = win.Roll(p[i])
		if sum != f.target {
			continue
		}

		start := i - size + 1
		if bytes.Equal(p[start:i+1], f.pattern) {
			out = append(out, start)
		}
	}

	return out
}

// FindReader scans the stream r and returns the offsets of all occurrences
// of the pattern. A stream shorter than the pattern yields no matches.
func (f *Finder[W]) FindReader(r io.Reader) ([]uint64, error) {
	scanner, err := NewScanner(r, f.table)
	if err != nil {
		return nil, err
	}

	var out []uint64

	scratch := make([]byte, 0, f.table.window)

	for {
		sum, err := scanner.Next()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return out, nil
		}

		if err != nil {
			return out, err
		}

		if sum.Value != f.target {
			continue
		}

		scratch = scanner.WindowBytes(scratch[:0])
		if bytes.Equal(scratch, f.pattern) {
			out = append(out, sum.Offset)
		}
	}
}
