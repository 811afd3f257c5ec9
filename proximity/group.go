// SPDX-License-Identifier: MIT

package proximity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/proxima/hashing"
	"github.com/katalvlaran/proxima/kdtree"
	"github.com/katalvlaran/proxima/vivaldi"
)

// Group is a bounded set of members with unique IDs, kept in join order.
type Group struct {
	cfg     Config
	members []Member
}

// NewGroup returns an empty group governed by cfg. cfg is checked by Prove.
func NewGroup(cfg Config) *Group {
	return &Group{cfg: cfg, members: make([]Member, 0, 8)}
}

// Config returns the configuration the group was created with.
func (g *Group) Config() Config { return g.cfg }

// Add appends a member. It fails with ErrGroupFull at MaxGroupSize members
// and with ErrDuplicateMember when id is already present.
func (g *Group) Add(id uint32, coord vivaldi.Coordinate, joinedAt int64) error {
	if len(g.members) >= MaxGroupSize {
		return fmt.Errorf("%w: add %d", ErrGroupFull, id)
	}
	if g.Contains(id) {
		return fmt.Errorf("%w: add %d", ErrDuplicateMember, id)
	}
	g.members = append(g.members, Member{ID: id, Coord: coord, JoinedAt: joinedAt})
	return nil
}

// Remove deletes the member with id, keeping the others in join order.
func (g *Group) Remove(id uint32) error {
	for i, m := range g.members {
		if m.ID == id {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: remove %d", ErrMemberNotFound, id)
}

// Len returns the member count.
func (g *Group) Len() int { return len(g.members) }

// Contains reports whether id is a member.
func (g *Group) Contains(id uint32) bool {
	for _, m := range g.members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the member IDs in ascending order.
func (g *Group) IDs() []uint32 {
	ids := make([]uint32, len(g.members))
	for i, m := range g.members {
		ids[i] = m.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Members returns a copy of the members in join order.
func (g *Group) Members() []Member {
	out := make([]Member, len(g.members))
	copy(out, g.members)
	return out
}

// MaxPairwiseDistance returns the largest distance between two distinct
// members, or 0 with fewer than two members. O(n²).
func (g *Group) MaxPairwiseDistance() float64 {
	var maxD float64
	for i := 0; i < len(g.members); i++ {
		for j := i + 1; j < len(g.members); j++ {
			if d := vivaldi.Distance(g.members[i].Coord, g.members[j].Coord); d > maxD {
				maxD = d
			}
		}
	}
	return maxD
}

// AllProximate reports whether every pair lies within the threshold.
func (g *Group) AllProximate() bool {
	return g.MaxPairwiseDistance() <= g.cfg.ProximityThreshold
}

// ID hashes the ascending member IDs (u32 little-endian each). It depends on
// membership only, not on join order or coordinates.
func (g *Group) ID() uint64 {
	w := hashing.NewWriter()
	for _, id := range g.IDs() {
		w.Uint32(id)
	}
	return w.Sum64()
}

// Prove summarises the group.
//
// The content hash is FNV-1a over the little-endian encoding of GroupID,
// MaxDistance, Threshold, MemberCount (as u8) and AllProximate (as u64).
// It fails with ErrInvalidConfig for a bad configuration and with
// ErrTooFewMembers below Config.MinMembers.
func (g *Group) Prove() (GroupProof, error) {
	if err := g.cfg.Validate(); err != nil {
		return GroupProof{}, fmt.Errorf("prove: %w", err)
	}
	if len(g.members) < g.cfg.MinMembers {
		return GroupProof{}, fmt.Errorf("%w: have %d, need %d", ErrTooFewMembers, len(g.members), g.cfg.MinMembers)
	}

	maxD := g.MaxPairwiseDistance()
	p := GroupProof{
		GroupID:      g.ID(),
		MemberCount:  len(g.members),
		MaxDistance:  maxD,
		Threshold:    g.cfg.ProximityThreshold,
		AllProximate: maxD <= g.cfg.ProximityThreshold,
	}
	p.ContentHash = hashing.NewWriter().
		Uint64(p.GroupID).
		Float64(p.MaxDistance).
		Float64(p.Threshold).
		Uint8(uint8(p.MemberCount)).
		Bool(p.AllProximate).
		Sum64()

	return p, nil
}

// Index builds a kdtree over the current members. The tree is a snapshot;
// later Add or Remove calls do not affect it.
func (g *Group) Index() *kdtree.Tree {
	entries := make([]kdtree.Entry, len(g.members))
	for i, m := range g.members {
		entries[i] = kdtree.Entry{ID: m.ID, Coord: m.Coord}
	}
	return kdtree.Build(entries)
}
