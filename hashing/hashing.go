// SPDX-License-Identifier: MIT

package hashing

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// OffsetBasis is the FNV-1a 64-bit offset basis, i.e. the digest of empty input.
const OffsetBasis uint64 = 0xcbf29ce484222325

// FNV1a returns the FNV-1a 64-bit digest of data.
// FNV1a(nil) == OffsetBasis.
// Complexity: O(len(data)).
func FNV1a(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // hash.Hash never returns an error
	return h.Sum64()
}

// Writer accumulates fixed-width fields and digests them with FNV-1a.
// The zero value is not usable; call NewWriter.
type Writer struct {
	h   hash.Hash64
	buf [8]byte // scratch for little-endian encoding
}

// NewWriter returns an empty Writer whose Sum64 equals OffsetBasis.
func NewWriter() *Writer {
	return &Writer{h: fnv.New64a()}
}

// Uint8 appends a single byte.
func (w *Writer) Uint8(v uint8) *Writer {
	w.buf[0] = v
	_, _ = w.h.Write(w.buf[:1])
	return w
}

// Uint32 appends v as 4 little-endian bytes.
func (w *Writer) Uint32(v uint32) *Writer {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	_, _ = w.h.Write(w.buf[:4])
	return w
}

// Uint64 appends v as 8 little-endian bytes.
func (w *Writer) Uint64(v uint64) *Writer {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	_, _ = w.h.Write(w.buf[:])
	return w
}

// Float64 appends the exact IEEE-754 bit pattern of v (8 little-endian bytes).
func (w *Writer) Float64(v float64) *Writer {
	return w.Uint64(math.Float64bits(v))
}

// Bool appends 1 or 0 widened to a uint64.
func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.Uint64(1)
	}
	return w.Uint64(0)
}

// Bytes appends raw bytes.
func (w *Writer) Bytes(p []byte) *Writer {
	_, _ = w.h.Write(p)
	return w
}

// Sum64 returns the digest of everything written so far.
// The Writer remains usable; further writes extend the same stream.
func (w *Writer) Sum64() uint64 {
	return w.h.Sum64()
}
