package rollcrc

import "fmt"

// Window is a rolling CRC engine over a fixed-size window of bytes. After
// seeding, each Roll slides the window forward by one byte in O(1) time and
// returns the CRC of the new window contents.
//
// A Window is a single-stream state machine and is not safe for concurrent
// use; the Table it was built from is, so share the Table and give each
// stream its own Window.
type Window[W Word] struct {
	table *Table[W]

	// crc is the raw, unconditioned register for the current window; Sum
	// and Roll close it with the table's conditioning on the way out.
	crc W

	// ring holds the current window contents; head indexes the oldest byte,
	// the one displaced by the next Roll.
	ring   []byte
	head   int
	seeded bool
}

// NewWindow creates an unseeded Window backed by the given table.
func NewWindow[W Word](t *Table[W]) *Window[W] {
	return &Window[W]{
		table: t,
		ring:  make([]byte, t.window),
	}
}

// Seed loads the initial window contents and computes its base CRC with the
// standard byte-wise algorithm. The slice must cover exactly one window.
// Seeding an already seeded Window fails with ErrAlreadySeeded; call Reset
// first to start a new stream.
func (w *Window[W]) Seed(p []byte) error {
	if w.seeded {
		return ErrAlreadySeeded
	}

	if len(p) != len(w.ring) {
		return fmt.Errorf("%w: got %d, want %d", ErrSeedLength, len(p), len(w.ring))
	}

	crc := W(0)
	for _, b := range p {
		crc = w.table.update(crc, b)
	}

	w.crc = crc
	copy(w.ring, p)
	w.head = 0
	w.seeded = true

	return nil
}

// Roll slides the window forward by one byte and returns the CRC of the new
// window. The update happens in two steps: the departing byte's weighted
// contribution is cancelled via the rear table, then the incoming byte is
// folded in with the ordinary one-lookup step. Fails with ErrNotSeeded
// before Seed.
func (w *Window[W]) Roll(b byte) (W, error) {
	if !w.seeded {
		return 0, ErrNotSeeded
	}

	t := w.table

	// Cancel the outgoing byte, then fold in the incoming one.
	crc := w.crc ^ t.rear[w.ring[w.head]]
	crc = t.update(crc, b)
	w.crc = crc

	w.ring[w.head] = b

	w.head++
	if w.head == len(w.ring) {
		w.head = 0
	}

	return crc ^ t.cond, nil
}

// Sum returns the CRC of the current window without advancing it. Fails
// with ErrNotSeeded before Seed.
func (w *Window[W]) Sum() (W, error) {
	if !w.seeded {
		return 0, ErrNotSeeded
	}

	return w.crc ^ w.table.cond, nil
}

// Bytes appends the current window contents, oldest byte first, to dst and
// returns the result. It returns dst unchanged when the window is unseeded.
func (w *Window[W]) Bytes(dst []byte) []byte {
	if !w.seeded {
		return dst
	}

	dst = append(dst, w.ring[w.head:]...)

	return append(dst, w.ring[:w.head]...)
}

// Reset clears the window contents and register and returns the Window to
// the unseeded state. The table binding is kept, so the Window can be
// reseeded for a new stream.
func (w *Window[W]) Reset() {
	w.crc = 0
	w.head = 0
	w.seeded = false

	for i := range w.ring {
		w.ring[i] = 0
	}
}

// Size returns the window size in bytes.
func (w *Window[W]) Size() int {
	return len(w.ring)
}

// Seeded reports whether the window has been seeded.
func (w *Window[W]) Seeded() bool {
	return w.seeded
}
