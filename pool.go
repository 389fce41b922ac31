package rollcrc

import (
	"io"
	"sync"
)

// WindowPool is a pool of Window instances sharing one table, for reuse in
// high-throughput scenarios with many short-lived streams.
type WindowPool[W Word] struct {
	pool  sync.Pool
	table *Table[W]
}

// NewWindowPool creates a WindowPool whose windows are backed by the given
// table.
func NewWindowPool[W Word](t *Table[W]) *WindowPool[W] {
	return &WindowPool[W]{
		table: t,
	}
}

// Get retrieves an unseeded Window from the pool, or creates a new one if
// the pool is empty.
func (p *WindowPool[W]) Get() *Window[W] {
	if v := p.pool.Get(); v != nil {
		win := v.(*Window[W])
		win.Reset()

		return win
	}

	return NewWindow(p.table)
}

// Put returns a Window to the pool for reuse.
// The window should not be used after being returned to the pool.
func (p *WindowPool[W]) Put(w *Window[W]) {
	w.Reset()
	p.pool.Put(w)
}

// ScannerPool is a pool of Scanner instances sharing one table and options.
type ScannerPool[W Word] struct {
	pool  sync.Pool
	table *Table[W]
	opts  []Option
}

// NewScannerPool creates a ScannerPool with the given options. All scanners
// created from this pool share the table and use these options.
func NewScannerPool[W Word](t *Table[W], opts ...Option) (*ScannerPool[W], error) {
	// Validate options by creating a test scanner
	if _, err := NewScanner(nil, t, opts...); err != nil {
		return nil, err
	}

	return &ScannerPool[W]{
		table: t,
		opts:  opts,
	}, nil
}

// Get retrieves a Scanner from the pool, or creates a new one if the pool is
// empty. The scanner is configured with the given reader and ready to use.
func (p *ScannerPool[W]) Get(r io.Reader) (*Scanner[W], error) {
	if v := p.pool.Get(); v != nil {
		scanner := v.(*Scanner[W])
		scanner.Reset(r)

		return scanner, nil
	}

	return NewScanner(r, p.table, p.opts...)
}

// Put returns a Scanner to the pool for reuse.
// The scanner should not be used after being returned to the pool.
func (p *ScannerPool[W]) Put(s *Scanner[W]) {
	// Clear the reader to avoid holding references
	s.reader = nil
	p.pool.Put(s)
}
