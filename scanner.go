package rollcrc

import (
	"errors"
	"io"
)

// Sum is the checksum of one window position in a stream.
type Sum[W Word] struct {
	Offset uint64 // Stream offset of the first byte of the window
	Value  W      // CRC of the window at that position
}

// Scanner provides a streaming API over an io.Reader, yielding one Sum per
// window position. The first Next seeds the window from the leading bytes of
// the stream; each following Next rolls the window forward by one byte.
//
// For in-memory data, Hashes is simpler and avoids the internal buffer.
type Scanner[W Word] struct {
	win    Window[W] // Rolling engine (embedded by value to avoid an extra allocation)
	reader io.Reader // Input stream

	buf    []byte // Internal buffer
	cursor int    // Current position in buffer
	offset uint64 // Count of bytes consumed from the stream
	eof    bool   // EOF reached
}

// NewScanner creates a Scanner that reads from r and rolls a window backed
// by the given table. The buffer size can be tuned with WithBufferSize; it
// is grown to hold at least one window.
func NewScanner[W Word](r io.Reader, t *Table[W], opts ...Option) (*Scanner[W], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.bufferSize < t.window {
		cfg.bufferSize = t.window
	}

	return &Scanner[W]{
		win: Window[W]{
			table: t,
			ring:  make([]byte, t.window),
		},
		reader: r,
		buf:    make([]byte, cfg.bufferSize),
		cursor: cfg.bufferSize, // Start with empty buffer (triggers initial read)
	}, nil
}

// fillBuffer ensures at least min bytes are buffered, or as many as the
// stream has left. It moves unconsumed data to the front and reads more from
// the reader.
func (s *Scanner[W]) fillBuffer(min int) error {
	n := len(s.buf) - s.cursor
	if n >= min {
		return nil
	}

	// Move unconsumed data to the front of buffer
	copy(s.buf[:n], s.buf[s.cursor:])
	s.cursor = 0

	if s.eof {
		s.buf = s.buf[:n]

		return nil
	}

	// Fill the rest of the buffer
	m, err := io.ReadFull(s.reader, s.buf[n:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		s.buf = s.buf[:n+m]
		s.eof = true
	} else if err != nil {
		return err
	}

	return nil
}

// seed consumes one full window from the stream to seed the rolling engine.
func (s *Scanner[W]) seed() error {
	size := s.win.Size()

	if err := s.fillBuffer(size); err != nil {
		return err
	}

	n := len(s.buf) - s.cursor
	if n == 0 {
		return io.EOF
	}

	if n < size {
		// Stream shorter than one window: no valid window hash exists.
		return io.ErrUnexpectedEOF
	}

	if err := s.win.Seed(s.buf[s.cursor : s.cursor+size]); err != nil {
		return err
	}

	s.cursor += size
	s.offset += uint64(size)

	return nil
}

// Next returns the checksum of the next window position. The first call
// returns the hash of the stream's leading window; each following call
// slides the window by one byte. It returns io.EOF once the stream is
// exhausted, and io.ErrUnexpectedEOF when the stream is shorter than one
// window.
func (s *Scanner[W]) Next() (Sum[W], error) {
	size := uint64(s.win.Size())

	if !s.win.Seeded() {
		if err := s.seed(); err != nil {
			return Sum[W]{}, err
		}

		value, err := s.win.Sum()
		if err != nil {
			return Sum[W]{}, err
		}

		return Sum[W]{Offset: s.offset - size, Value: value}, nil
	}

	if err := s.fillBuffer(1); err != nil {
		return Sum[W]{}, err
	}

	if s.cursor >= len(s.buf) {
		return Sum[W]{}, io.EOF
	}

	b := s.buf[s.cursor]
	s.cursor++
	s.offset++

	value, err := s.win.Roll(b)
	if err != nil {
		return Sum[W]{}, err
	}

	return Sum[W]{Offset: s.offset - size, Value: value}, nil
}

// WindowBytes appends the current window contents, oldest byte first, to dst
// and returns the result. It returns dst unchanged before the first Next.
func (s *Scanner[W]) WindowBytes(dst []byte) []byte {
	return s.win.Bytes(dst)
}

// Offset returns the number of bytes consumed from the stream so far.
func (s *Scanner[W]) Offset() uint64 {
	return s.offset
}

// Size returns the window size in bytes.
func (s *Scanner[W]) Size() int {
	return s.win.Size()
}

// Reset resets the scanner to start processing a new stream. The reader is
// replaced with the provided one, and all state is cleared.
func (s *Scanner[W]) Reset(r io.Reader) {
	s.reader = r
	s.win.Reset()
	s.buf = s.buf[:cap(s.buf)] // Restore buffer to full capacity
	s.cursor = len(s.buf)      // Start with empty buffer
	s.offset = 0
	s.eof = false
}
