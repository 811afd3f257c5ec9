// SPDX-License-Identifier: MIT

package proximity

import (
	"fmt"

	"github.com/katalvlaran/proxima/hashing"
	"github.com/katalvlaran/proxima/vivaldi"
)

// Prove checks whether a and b lie within threshold of each other.
//
// The content hash is FNV-1a over the little-endian encoding of
// distance, threshold, FingerprintA, FingerprintB and Proximate (as u64).
// Swapping a and b changes the fingerprints' order and therefore the hash,
// but not Distance or Proximate.
func Prove(a, b vivaldi.Coordinate, threshold float64) (Proof, error) {
	if !validThreshold(threshold) {
		return Proof{}, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	d := vivaldi.Distance(a, b)
	p := Proof{
		Distance:     d,
		Threshold:    threshold,
		Proximate:    d <= threshold,
		FingerprintA: a.Fingerprint(),
		FingerprintB: b.Fingerprint(),
	}
	p.ContentHash = hashing.NewWriter().
		Float64(p.Distance).
		Float64(p.Threshold).
		Uint64(p.FingerprintA).
		Uint64(p.FingerprintB).
		Bool(p.Proximate).
		Sum64()

	return p, nil
}
