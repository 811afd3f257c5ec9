// SPDX-License-Identifier: MIT

package vivaldi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate indicates that a NaN or ±Inf value was supplied where a
// finite coordinate component, measurement or step is required, or that a
// component falls outside ±MaxMagnitude.
// Usage: if errors.Is(err, ErrInvalidCoordinate) { /* drop the sample */ }.
var ErrInvalidCoordinate = errors.New("vivaldi: invalid coordinate")

// MaxMagnitude bounds |x|, |y| and height. Within it every Distance, and the
// difference of any two components, stays finite.
const MaxMagnitude = 1e150

// Epsilon is the planar separation below which two coordinates are treated as
// coincident by Update: no unit vector exists, so a fixed diagonal nudge is used.
const Epsilon = 1e-15

// Coordinate is a synthetic 2-D position plus a non-negative height.
//
// Invariants (enforced by every constructor and by Update):
//   - |x|, |y| ≤ MaxMagnitude;
//   - 0 ≤ height ≤ MaxMagnitude.
//
// The zero value is the origin with zero height and is valid.
type Coordinate struct {
	x, y   float64
	height float64
}

// X returns the first planar component.
func (c Coordinate) X() float64 { return c.x }

// Y returns the second planar component.
func (c Coordinate) Y() float64 { return c.y }

// Height returns the non-negative error term.
func (c Coordinate) Height() float64 { return c.height }

// String renders the coordinate as "(x, y; h)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g; %g)", c.x, c.y, c.height)
}

// Sample is one observed distance (usually a round-trip time) to a peer.
type Sample struct {
	Peer     Coordinate // peer's current coordinate
	Measured float64    // observed distance; must be finite
}

// RelaxResult summarizes a Relax run.
//
// Rounds    – number of full passes over the samples that were applied.
// Residual  – mean |Measured − Distance| after the last applied round.
// Converged – true if Residual dropped to the tolerance before MaxRounds.
type RelaxResult struct {
	Rounds    int
	Residual  float64
	Converged bool
}

// Options configures Relax.
//
// InitialStep – step used in round 0; 0 < s ≤ 1.
// Decay       – multiplicative step decay per round; 0 < d ≤ 1.
// MinStep     – floor for the decayed step; > 0.
// MaxRounds   – upper bound on passes over the samples; ≥ 1.
// Tolerance   – residual at which the loop stops early; ≥ 0.
type Options struct {
	InitialStep float64
	Decay       float64
	MinStep     float64
	MaxRounds   int
	Tolerance   float64
}

// Option represents a functional option for configuring Relax.
type Option func(*Options)

// DefaultOptions returns the relaxation defaults.
//
// Defaults:
//   - InitialStep: 0.25
//   - Decay:       0.95
//   - MinStep:     0.01
//   - MaxRounds:   200
//   - Tolerance:   1e-3
func DefaultOptions() Options {
	return Options{
		InitialStep: 0.25,
		Decay:       0.95,
		MinStep:     0.01,
		MaxRounds:   200,
		Tolerance:   1e-3,
	}
}

// WithInitialStep sets the round-0 step. Panics unless 0 < s ≤ 1.
func WithInitialStep(s float64) Option {
	if !(s > 0 && s <= 1) {
		panic(fmt.Sprintf("vivaldi: WithInitialStep(%v) out of (0,1]", s))
	}
	return func(o *Options) {
		o.InitialStep = s
	}
}

// WithDecay sets the per-round decay factor. Panics unless 0 < d ≤ 1.
func WithDecay(d float64) Option {
	if !(d > 0 && d <= 1) {
		panic(fmt.Sprintf("vivaldi: WithDecay(%v) out of (0,1]", d))
	}
	return func(o *Options) {
		o.Decay = d
	}
}

// WithMinStep sets the floor of the decayed step. Panics unless s > 0 and finite.
func WithMinStep(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("vivaldi: WithMinStep(%v) must be positive", s))
	}
	return func(o *Options) {
		o.MinStep = s
	}
}

// WithMaxRounds bounds the number of passes. Panics if n < 1.
func WithMaxRounds(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("vivaldi: WithMaxRounds(%d) must be ≥ 1", n))
	}
	return func(o *Options) {
		o.MaxRounds = n
	}
}

// WithTolerance sets the early-exit residual. Panics if t is negative or not finite.
func WithTolerance(t float64) Option {
	if !(t >= 0) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("vivaldi: WithTolerance(%v) must be finite and ≥ 0", t))
	}
	return func(o *Options) {
		o.Tolerance = t
	}
}
