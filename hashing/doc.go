// SPDX-License-Identifier: MIT

// Package hashing provides the deterministic 64-bit fingerprint used across
// proxima: FNV-1a over little-endian field encodings.
//
// What is it for?
//
//	Coordinates, proximity proofs and group summaries are content-addressed
//	by a 64-bit digest so that two parties holding equal values always
//	derive the same key. The digest is NOT a cryptographic commitment:
//	FNV-1a is fast and well distributed but trivially invertible by search.
//
// Encoding:
//
//	Every field is appended in little-endian byte order. Floats contribute
//	their exact IEEE-754 bit pattern (math.Float64bits), so +0 and -0 hash
//	differently and NaN payloads are preserved. Booleans contribute a full
//	uint64 (0 or 1) to keep record layouts aligned.
//
// Usage:
//
//	w := hashing.NewWriter()
//	w.Float64(x)
//	w.Float64(y)
//	sum := w.Sum64()
//
// Complexity: O(n) in the number of bytes written, O(1) extra memory.
package hashing
