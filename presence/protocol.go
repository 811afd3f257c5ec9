// SPDX-License-Identifier: MIT

package presence

import (
	"fmt"

	"github.com/katalvlaran/proxima/proximity"
	"github.com/katalvlaran/proxima/vivaldi"
)

// Party is one side of a presence exchange.
type Party struct {
	ID     uint32
	Coord  vivaldi.Coordinate
	Secret uint64
}

// Execute runs the two-party protocol at timestamp ts.
//
// Steps:
//  1. proximity.Prove(a, b, Threshold); ErrNotProximate if too far.
//  2. Each party commits to its secret under NonceFor(ID) and answers its
//     challenge from Challenges(ts).
//  3. The event gets FlagMutual (if RequireMutual), FlagVerified (both proofs
//     verified) and FlagProximate.
//  4. The parts are sealed into a CrossingRecord.
//
// Deterministic: equal inputs give equal records.
func Execute(a, b Party, ts int64, opts ...Option) (CrossingRecord, error) {
	cfg := buildOptions(opts)

	prox, err := proximity.Prove(a.Coord, b.Coord, cfg.Threshold)
	if err != nil {
		return CrossingRecord{}, err
	}
	if !prox.Proximate {
		return CrossingRecord{}, fmt.Errorf("%w: %d↔%d distance %v > %v",
			ErrNotProximate, a.ID, b.ID, prox.Distance, prox.Threshold)
	}

	chA, chB := Challenges(ts)
	proofA := ProveIdentity(a.Secret, Commit(a.Secret, NonceFor(a.ID), ts), chA)
	proofB := ProveIdentity(b.Secret, Commit(b.Secret, NonceFor(b.ID), ts), chB)

	ev := NewEvent(a.ID, b.ID, ts)
	if cfg.RequireMutual {
		ev.Set(FlagMutual)
	}
	if proofA.Verified && proofB.Verified {
		ev.Set(FlagVerified)
	}
	ev.Set(FlagProximate)

	return NewCrossingRecord(ev, proofA, proofB, prox), nil
}
