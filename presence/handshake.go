// SPDX-License-Identifier: MIT

package presence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/proxima/kdtree"
	"github.com/katalvlaran/proxima/proximity"
)

// Directory resolves indexed IDs to full parties (coordinates and secrets).
type Directory interface {
	Party(id uint32) (Party, bool)
}

// Parties is a map-backed Directory.
type Parties map[uint32]Party

// Party implements Directory.
func (p Parties) Party(id uint32) (Party, bool) {
	x, ok := p[id]
	return x, ok
}

// Handshake runs one complete session for local against the parties
// indexed in t, at timestamp now.
//
// Flow:
//  1. sc.InRange picks the closest other party (ties by ascending ID).
//     None: the session closes with CloseProximityFailed and ErrNoPeer.
//  2. Discover the peer and resolve it in dir; a missing peer closes with
//     CloseCancelled and ErrUnknownParty.
//  3. BeginExchange, then Execute with the scanner's threshold. The
//     directory's coordinates are used, so a stale index can still fail with
//     ErrNotProximate (CloseProximityFailed).
//  4. An unverified record closes with CloseVerificationFailed.
//  5. Verify, then Close with CloseSuccess.
//
// The session is returned in every case so callers can inspect how it ended.
func Handshake(sc *proximity.Scanner, t *kdtree.Tree, dir Directory, local Party, now int64, opts ...Option) (*Session, CrossingRecord, error) {
	opts = withScannerThreshold(sc, opts)
	s := NewSession(local.ID, now, opts...)

	peer, ok := closestOther(sc.InRange(t, local.Coord), local.ID)
	if !ok {
		_ = s.Close(CloseProximityFailed, now)
		return s, CrossingRecord{}, fmt.Errorf("%w: party %d", ErrNoPeer, local.ID)
	}
	if err := s.Discover(peer.ID, now); err != nil {
		return s, CrossingRecord{}, err
	}

	remote, ok := dir.Party(peer.ID)
	if !ok {
		_ = s.Close(CloseCancelled, now)
		return s, CrossingRecord{}, fmt.Errorf("%w: %d", ErrUnknownParty, peer.ID)
	}
	if err := s.BeginExchange(now); err != nil {
		return s, CrossingRecord{}, err
	}

	rec, err := Execute(local, remote, now, opts...)
	if err != nil {
		reason := CloseCancelled
		if errors.Is(err, ErrNotProximate) {
			reason = CloseProximityFailed
		}
		_ = s.Close(reason, now)
		return s, CrossingRecord{}, err
	}
	if !rec.FullyVerified() {
		_ = s.Close(CloseVerificationFailed, now)
		return s, rec, fmt.Errorf("%w: %d↔%d", ErrVerificationFailed, local.ID, remote.ID)
	}

	if err := s.Verify(now); err != nil {
		return s, rec, err
	}
	_ = s.Close(CloseSuccess, now)

	return s, rec, nil
}

// Crossings discovers local's group with sc.Discover and runs Execute with
// every other member, in the group's admission order. Every member must be
// in dir.
func Crossings(sc *proximity.Scanner, t *kdtree.Tree, dir Directory, local Party, now int64, opts ...Option) ([]CrossingRecord, error) {
	opts = withScannerThreshold(sc, opts)

	g, err := sc.Discover(t, local.ID, local.Coord)
	if err != nil {
		return nil, err
	}

	out := make([]CrossingRecord, 0, g.Len()-1)
	for _, m := range g.Members() {
		if m.ID == local.ID {
			continue
		}
		remote, ok := dir.Party(m.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownParty, m.ID)
		}
		rec, err := Execute(local, remote, now, opts...)
		if err != nil {
			return nil, fmt.Errorf("crossing %d↔%d: %w", local.ID, m.ID, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// withScannerThreshold appends the scanner's threshold so discovery and
// Execute agree. It never writes into the caller's slice.
func withScannerThreshold(sc *proximity.Scanner, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithThreshold(sc.Config().ProximityThreshold))
}

func closestOther(hits []kdtree.Neighbor, self uint32) (kdtree.Neighbor, bool) {
	var best kdtree.Neighbor
	found := false
	for _, h := range hits {
		if h.ID == self {
			continue
		}
		if !found || h.Distance < best.Distance || (h.Distance == best.Distance && h.ID < best.ID) {
			best, found = h, true
		}
	}
	return best, found
}
