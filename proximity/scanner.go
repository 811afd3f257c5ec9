// SPDX-License-Identifier: MIT

package proximity

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/proxima/kdtree"
	"github.com/katalvlaran/proxima/vivaldi"
)

// Scanner runs proximity queries over kdtree indexes with a fixed Config.
type Scanner struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// ScannerOption customises a Scanner.
type ScannerOption func(*Scanner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics attaches Prometheus collectors. nil disables metrics.
func WithMetrics(m *Metrics) ScannerOption {
	return func(s *Scanner) { s.metrics = m }
}

// NewScanner validates cfg and applies opts. By default the scanner logs
// nowhere and records no metrics.
func NewScanner(cfg Config, opts ...ScannerOption) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scanner{
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the scanner's configuration.
func (s *Scanner) Config() Config { return s.cfg }

// Nearest is t.Nearest(q) with metrics.
func (s *Scanner) Nearest(t *kdtree.Tree, q vivaldi.Coordinate) (kdtree.Neighbor, bool) {
	start := time.Now()
	n, ok := t.Nearest(q)
	s.metrics.observeQuery(kindNearest, start)
	return n, ok
}

// InRange returns every indexed party within the configured threshold of q.
func (s *Scanner) InRange(t *kdtree.Tree, q vivaldi.Coordinate) []kdtree.Neighbor {
	start := time.Now()
	out := t.RangeQuery(q, s.cfg.ProximityThreshold)
	s.metrics.observeQuery(kindRange, start)
	return out
}

// Discover builds the group around the local party.
//
// Algorithm:
//  1. Seed the group with (localID, local).
//  2. Candidates are the KNearest closest indexed parties with ID != localID
//     and distance ≤ threshold, each ID counted once (its closest copy).
//     Copies of localID and repeated IDs do not use up the KNearest budget.
//     Each candidate must also appear in RangeQuery(local, threshold).
//  3. Walk candidates in ascending distance; admit one when its distance to
//     every admitted member is ≤ threshold. Stop at MaxGroupSize.
//
// The result always contains the local party first. An empty or nil tree
// yields a group of one.
func (s *Scanner) Discover(t *kdtree.Tree, localID uint32, local vivaldi.Coordinate) (*Group, error) {
	start := time.Now()
	defer s.metrics.observeQuery(kindDiscover, start)

	g := NewGroup(s.cfg)
	if err := g.Add(localID, local, s.now().UnixNano()); err != nil {
		return nil, err
	}

	candidates := s.candidates(t, localID, local)
	s.metrics.observeCandidates(len(candidates))

	for _, c := range candidates {
		if g.Len() >= MaxGroupSize {
			break
		}
		if !s.fitsAll(g, c.Coord) {
			s.log.Debug("discover_reject", "local_id", localID, "candidate", c.ID, "distance", c.Distance)
			continue
		}
		if err := g.Add(c.ID, c.Coord, s.now().UnixNano()); err != nil {
			return nil, err
		}
	}

	s.log.Debug("discover_done",
		"local_id", localID,
		"candidates", len(candidates),
		"members", g.Len(),
		"elapsed", time.Since(start))

	return g, nil
}

// Summarize discovers the local party's group and proves it.
// A party with no close neighbours gets ErrTooFewMembers.
func (s *Scanner) Summarize(t *kdtree.Tree, localID uint32, local vivaldi.Coordinate) (GroupProof, error) {
	g, err := s.Discover(t, localID, local)
	if err != nil {
		return GroupProof{}, err
	}
	p, err := g.Prove()
	if err != nil {
		s.log.Debug("summarize_skipped", "local_id", localID, "members", g.Len(), "err", err)
		return GroupProof{}, err
	}
	s.metrics.observeProof(p)
	s.log.Info("group_proven",
		"local_id", localID,
		"group_id", p.GroupID,
		"members", p.MemberCount,
		"max_distance", p.MaxDistance,
		"all_proximate", p.AllProximate)

	return p, nil
}

// candidates returns up to KNearest distinct in-range parties, ascending.
//
// Every in-range entry precedes every out-of-range one in k-nearest order,
// so asking for KNearest plus the number of in-range entries that will be
// skipped (local copies and repeated IDs) reaches KNearest distinct parties
// whenever that many are in range.
func (s *Scanner) candidates(t *kdtree.Tree, localID uint32, local vivaldi.Coordinate) []kdtree.Match {
	k := s.cfg.KNearest
	thr := s.cfg.ProximityThreshold

	inRange := make(map[uint32]struct{})
	skipped := 0
	for _, n := range t.RangeQuery(local, thr) {
		if _, dup := inRange[n.ID]; dup || n.ID == localID {
			skipped++
		}
		inRange[n.ID] = struct{}{}
	}

	seen := make(map[uint32]struct{}, k)
	out := make([]kdtree.Match, 0, k)
	for _, m := range t.KNearestEntries(local, k+skipped) {
		if len(out) == k || m.Distance > thr {
			break
		}
		if _, dup := seen[m.ID]; dup || m.ID == localID {
			continue
		}
		if _, ok := inRange[m.ID]; !ok {
			s.log.Warn("discover_mismatch", "local_id", localID, "candidate", m.ID, "distance", m.Distance)
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (s *Scanner) fitsAll(g *Group, c vivaldi.Coordinate) bool {
	for _, m := range g.members {
		if vivaldi.Distance(m.Coord, c) > s.cfg.ProximityThreshold {
			return false
		}
	}
	return true
}
