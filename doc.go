// SPDX-License-Identifier: MIT

// Package proxima estimates network proximity between parties without
// knowing where they are, and answers "who is close to me?" quickly.
//
// 🚀 What is proxima?
//
//	A small, deterministic library built from five layers:
//		• hashing:   FNV-1a 64 and a little-endian field writer for proofs
//		• vivaldi:   synthetic 2-D coordinates with a height term, refined
//		             from measured round-trip times
//		• kdtree:    an immutable arena KD-tree with nearest, range and
//		             k-nearest queries over Vivaldi distance
//		• proximity: pairwise proofs, bounded groups and a Scanner that
//		             discovers mutually close groups over an index
//		• presence:  sessions, identity commitments, 18-byte events and
//		             crossing records for parties that met
//
// ✨ Properties
//
//   - Pure functions over plain values; no global state.
//   - Built trees are read-only and safe for concurrent queries.
//   - Identical inputs give identical results and hashes on every platform.
//
// Quick ASCII example:
//
//	   (1)──3──(2)            (5)
//	     \     /
//	      4   5
//	       \ /
//	       (3)
//
//	Parties 1, 2 and 3 are pairwise within 5 and form a group under a
//	threshold of 10; party 5 is left out.
//
//	go get github.com/katalvlaran/proxima
package proxima
