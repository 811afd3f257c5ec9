// SPDX-License-Identifier: MIT

// Package vivaldi implements synthetic 2-D network coordinates with a
// non-negative height term, in the style of the Vivaldi system.
//
// 🚀 What is a Vivaldi coordinate?
//
//	A point (x, y) in a synthetic plane plus a height h ≥ 0 that absorbs
//	per-node estimation error (access-link latency, jitter). The predicted
//	distance between two parties is
//
//	    d(a, b) = √((a.x−b.x)² + (a.y−b.y)²) + a.h + b.h
//
//	Heights are added, not combined geometrically, so d is NOT a metric:
//	two nodes with large heights may each look far from a third node while
//	being planar neighbours. The model depends on that, and so does every
//	pruning bound built on top of it (see package kdtree).
//
// ✨ Operations:
//   - New / NewWithHeight — validated construction (negative height → 0).
//   - Distance, Planar    — predicted and height-free separation.
//   - Fingerprint         — FNV-1a digest of the exact bit patterns.
//   - Update              — one spring-relaxation step toward a measurement.
//   - Relax               — repeated Update with a decaying step schedule.
//
// ⚙️ Usage:
//
//	me := vivaldi.MustNew(0, 0)
//	peer := vivaldi.MustNew(10, 0)
//	if err := me.Update(peer, 20.0, 0.1); err != nil {
//	  // only non-finite measurements or steps are rejected
//	}
//
// Errors:
//   - ErrInvalidCoordinate — a non-finite value, or one beyond MaxMagnitude
//     (1e150), reached a constructor or an update. It is the only failure
//     kind; everything else is total, and Distance is always finite.
//
// Concurrency:
//
//	Coordinate is a value type. A coordinate mutated through Update or Relax
//	must have a single owner; callers serialize concurrent updates.
package vivaldi
