// SPDX-License-Identifier: MIT

package vivaldi

import (
	"fmt"
	"math"
)

// Relax repeatedly applies Update against a fixed set of samples with a
// decaying step, the way a measurement loop converges a local coordinate.
//
// Schedule:
//
//	step(r) = max(InitialStep · Decay^r, MinStep)   for round r = 0, 1, …
//
// Each round applies Update once per sample, in order. After the round the
// residual (mean |Measured − Distance|) is computed; the loop stops as soon
// as it is ≤ Tolerance or after MaxRounds rounds.
//
// Edge cases:
//   - No samples: returns a zero RelaxResult and leaves c unchanged.
//   - Any non-finite Measured: ErrInvalidCoordinate before c is touched.
//   - An overflowing round: ErrInvalidCoordinate; c keeps the value of the
//     last fully applied round.
//
// Complexity: O(MaxRounds · len(samples)) time, O(1) extra memory.
func Relax(c *Coordinate, samples []Sample, opts ...Option) (RelaxResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var res RelaxResult
	if len(samples) == 0 {
		return res, nil
	}
	for i, s := range samples {
		if !finite(s.Measured) {
			return res, fmt.Errorf("%w: sample %d measured=%v", ErrInvalidCoordinate, i, s.Measured)
		}
	}

	step := math.Max(cfg.InitialStep, cfg.MinStep)
	for r := 0; r < cfg.MaxRounds; r++ {
		next := *c
		for i, s := range samples {
			if err := next.Update(s.Peer, s.Measured, step); err != nil {
				return res, fmt.Errorf("relax round %d sample %d: %w", r, i, err)
			}
		}
		*c = next

		res.Rounds = r + 1
		res.Residual = residual(*c, samples)
		if res.Residual <= cfg.Tolerance {
			res.Converged = true
			break
		}
		step = math.Max(step*cfg.Decay, cfg.MinStep)
	}

	return res, nil
}

// Residual returns the mean absolute error between each sample's measurement
// and the distance c currently predicts for that peer. Zero for no samples.
func Residual(c Coordinate, samples []Sample) float64 {
	return residual(c, samples)
}

func residual(c Coordinate, samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += math.Abs(s.Measured - Distance(c, s.Peer))
	}
	return sum / float64(len(samples))
}
