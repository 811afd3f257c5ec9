// SPDX-License-Identifier: MIT

package vivaldi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/proxima/hashing"
)

// New returns the coordinate (x, y) with zero height.
// Returns ErrInvalidCoordinate if x or y is NaN, ±Inf or beyond ±MaxMagnitude.
func New(x, y float64) (Coordinate, error) {
	return NewWithHeight(x, y, 0)
}

// NewWithHeight returns (x, y) with height max(h, 0).
// A negative height is clamped, never rejected; a non-finite component or one
// beyond MaxMagnitude is rejected.
func NewWithHeight(x, y, h float64) (Coordinate, error) {
	if !usable(x) || !usable(y) || !finite(h) || h > MaxMagnitude {
		return Coordinate{}, fmt.Errorf("%w: (%v, %v; %v)", ErrInvalidCoordinate, x, y, h)
	}
	if h < 0 {
		h = 0
	}

	return Coordinate{x: x, y: y, height: h}, nil
}

// MustNew is New for literal values; it panics on ErrInvalidCoordinate.
func MustNew(x, y float64) Coordinate {
	c, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewWithHeight is NewWithHeight for literal values; it panics on ErrInvalidCoordinate.
func MustNewWithHeight(x, y, h float64) Coordinate {
	c, err := NewWithHeight(x, y, h)
	if err != nil {
		panic(err)
	}
	return c
}

// Distance returns the predicted distance between a and b:
//
//	√((a.x−b.x)² + (a.y−b.y)²) + a.height + b.height
//
// Symmetric and ≥ 0. Distance(a, a) == 2·a.height.
// Heights are summed first so the result is bit-for-bit symmetric.
// Complexity: O(1).
func Distance(a, b Coordinate) float64 {
	return Planar(a, b) + (a.height + b.height)
}

// Planar returns the Euclidean separation of a and b ignoring heights.
// It is a lower bound of Distance(a, b) and of any single-axis gap.
func Planar(a, b Coordinate) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// DistanceTo is the method form of Distance.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return Distance(c, o)
}

// Fingerprint returns the FNV-1a digest of the little-endian bit patterns of
// x, y and height, in that order (24 bytes). Equal coordinates always produce
// equal fingerprints. It is a content address, not a commitment.
func (c Coordinate) Fingerprint() uint64 {
	return hashing.NewWriter().
		Float64(c.x).
		Float64(c.y).
		Float64(c.height).
		Sum64()
}

// Update applies one spring-relaxation step pulling c toward consistency with
// a measured distance to other.
//
// Algorithm:
//  1. predicted = Distance(c, other); e = measured − predicted.
//  2. If Planar(c, other) < Epsilon the points coincide and no direction
//     exists: move both axes by step·e·0.5.
//  3. Otherwise move c along the unit vector (c − other)/|c − other| by step·e.
//     A positive error pushes c away from other, a negative one pulls it in.
//  4. height += step·(e − height), then clamp to ≥ 0.
//
// A single call is not expected to converge; repeated calls with a small,
// decreasing step drive Distance(c, other) toward measured (see Relax).
//
// Errors:
//   - ErrInvalidCoordinate if measured or step is not finite, or if the
//     step would move c beyond MaxMagnitude. c is left unchanged.
//
// Complexity: O(1).
func (c *Coordinate) Update(other Coordinate, measured, step float64) error {
	if !finite(measured) || !finite(step) {
		return fmt.Errorf("%w: update measured=%v step=%v", ErrInvalidCoordinate, measured, step)
	}

	next, ok := c.relaxed(other, measured, step)
	if !ok {
		return fmt.Errorf("%w: update from %s toward %s overflows", ErrInvalidCoordinate, c, other)
	}
	*c = next

	return nil
}

// relaxed computes the result of one Update step without mutating c.
// ok is false when the result would leave the MaxMagnitude box.
func (c Coordinate) relaxed(other Coordinate, measured, step float64) (next Coordinate, ok bool) {
	e := measured - Distance(c, other)
	next = c

	dx, dy := c.x-other.x, c.y-other.y
	planar := math.Hypot(dx, dy)
	if planar < Epsilon {
		nudge := step * e * 0.5
		next.x += nudge
		next.y += nudge
	} else {
		scale := step * e / planar
		next.x += scale * dx
		next.y += scale * dy
	}

	next.height += step * (e - next.height)
	if next.height < 0 {
		next.height = 0
	}

	return next, usable(next.x) && usable(next.y) && usable(next.height)
}

// usable reports whether v is finite and within ±MaxMagnitude.
func usable(v float64) bool {
	return math.Abs(v) <= MaxMagnitude
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
