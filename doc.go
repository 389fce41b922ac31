// Package rollcrc computes CRCs over fixed-size, rolling windows of bytes.
//
// # Overview
//
// A rolling hash is a sequence of hashes of successive fixed-size windows of
// a stream, where each one-byte shift is computed in O(1) time from the
// previous hash and the outgoing/incoming bytes, independent of the window
// size. Rolling CRCs are useful for deduplication, rsync-style delta
// encoding, similarity detection, and streaming pattern search.
//
// The windowed values are ordinary CRCs: with the default configuration and
// the IEEE polynomial, every hash equals hash/crc32's checksum of the same
// window bytes. The register width (8, 16, 32 or 64 bits) is selected by the
// type parameter.
//
// # Quick Start
//
// Roll a 64-byte CRC-32 window over a stream:
//
//	table, _ := rollcrc.MakeTable(rollcrc.Poly32IEEE, 64)
//	scanner, _ := rollcrc.NewScanner(reader, table)
//	for {
//	    sum, err := scanner.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // sum.Value is the CRC of the window starting at sum.Offset
//	}
//
// Byte-at-a-time control with the low-level engine:
//
//	win := rollcrc.NewWindow(table)
//	_ = win.Seed(data[:64])
//	for _, b := range data[64:] {
//	    sum, _ := win.Roll(b)
//	    // ...
//	}
//
// # Algorithm
//
// Two 256-entry tables are precomputed per (polynomial, window size) pair.
// The front table is the standard byte-wise CRC table. The rear table holds,
// for each byte value, its remainder weighted by x^(8*window) — the
// contribution that byte still makes to the register once the whole window
// has passed over it. Rolling is then two XORs and two table lookups per
// byte: cancel the departing byte with the rear table, fold in the arriving
// byte with the front table. The construction follows Igor Pavlov and Bulat
// Ziganshin's rolling CRC technique and relies only on the linearity of CRC
// over XOR.
//
// # Thread Safety
//
// Tables are immutable after construction and may be shared freely across
// goroutines. Windows and Scanners mutate per-stream state and need one
// instance per stream (or external locking). For high-throughput scenarios
// with many streams, WindowPool and ScannerPool recycle instances.
package rollcrc
