// SPDX-License-Identifier: MIT

package presence

import (
	"github.com/katalvlaran/proxima/hashing"
	"github.com/katalvlaran/proxima/proximity"
)

// CrossingStatus is the lifecycle stage of a crossing record.
type CrossingStatus uint8

// Crossing stages, in order.
const (
	StatusInitiated CrossingStatus = iota // one party started
	StatusMutual                          // both parties confirmed
	StatusVerified                        // both identity proofs verified
	StatusRecorded                        // event carries the verified flag
	StatusRevoked                         // withdrawn by a party
)

var statusNames = [...]string{"initiated", "mutual", "verified", "recorded", "revoked"}

// String returns the lower-case stage name.
func (s CrossingStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// CrossingRecord is the full evidence that two parties met.
type CrossingRecord struct {
	Event       Event
	ProofA      IdentityProof
	ProofB      IdentityProof
	Proximity   proximity.Proof
	ContentHash uint64
	revoked     bool
}

// NewCrossingRecord seals the parts with a content hash: FNV-1a over the
// encoded event followed by ProofA.Response, ProofB.Response,
// Proximity.ContentHash and Proximity.Distance, each little-endian.
func NewCrossingRecord(ev Event, a, b IdentityProof, prox proximity.Proof) CrossingRecord {
	enc, _ := ev.MarshalBinary()
	h := hashing.NewWriter().
		Bytes(enc).
		Uint64(a.Response).
		Uint64(b.Response).
		Uint64(prox.ContentHash).
		Float64(prox.Distance).
		Sum64()

	return CrossingRecord{Event: ev, ProofA: a, ProofB: b, Proximity: prox, ContentHash: h}
}

// FullyVerified reports both identities verified and the parties proximate.
func (r CrossingRecord) FullyVerified() bool {
	return r.ProofA.Verified && r.ProofB.Verified && r.Proximity.Proximate
}

// Revoke marks the record withdrawn. The content hash is unchanged.
func (r *CrossingRecord) Revoke() { r.revoked = true }

// Status derives the lifecycle stage from the record's contents.
func (r CrossingRecord) Status() CrossingStatus {
	switch {
	case r.revoked:
		return StatusRevoked
	case !r.Event.Has(FlagMutual):
		return StatusInitiated
	case !r.ProofA.Verified || !r.ProofB.Verified:
		return StatusMutual
	case !r.Event.Has(FlagVerified):
		return StatusVerified
	default:
		return StatusRecorded
	}
}
