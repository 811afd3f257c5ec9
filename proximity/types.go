// SPDX-License-Identifier: MIT

package proximity

import (
	"errors"

	"github.com/katalvlaran/proxima/vivaldi"
)

// Sentinel errors.
var (
	// ErrInvalidThreshold indicates a NaN, infinite or negative threshold.
	ErrInvalidThreshold = errors.New("proximity: invalid threshold")

	// ErrGroupFull indicates the group already holds MaxGroupSize members.
	ErrGroupFull = errors.New("proximity: group is full")

	// ErrDuplicateMember indicates the ID is already a member.
	ErrDuplicateMember = errors.New("proximity: duplicate member")

	// ErrMemberNotFound indicates the ID is not a member.
	ErrMemberNotFound = errors.New("proximity: member not found")

	// ErrTooFewMembers indicates a group below Config.MinMembers.
	ErrTooFewMembers = errors.New("proximity: too few members")

	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("proximity: invalid config")
)

// MaxGroupSize bounds a group so pairwise checks stay O(64²).
const MaxGroupSize = 64

// Defaults used by DefaultConfig.
const (
	DefaultThreshold  = 10.0
	DefaultMinMembers = 2
	DefaultKNearest   = MaxGroupSize - 1
)

// Proof is the outcome of a pairwise proximity check.
type Proof struct {
	Distance     float64
	Threshold    float64
	Proximate    bool // Distance <= Threshold
	FingerprintA uint64
	FingerprintB uint64
	ContentHash  uint64
}

// Member is one party in a Group.
type Member struct {
	ID       uint32
	Coord    vivaldi.Coordinate
	JoinedAt int64 // unix nanoseconds, caller supplied
}

// GroupProof summarises a group at the moment Group.Prove was called.
type GroupProof struct {
	GroupID      uint64
	MemberCount  int
	MaxDistance  float64
	Threshold    float64
	AllProximate bool
	ContentHash  uint64
}
