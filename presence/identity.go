// SPDX-License-Identifier: MIT

package presence

import "github.com/katalvlaran/proxima/hashing"

// Commitment binds a party to its secret without revealing it.
type Commitment struct {
	Hash      uint64 // H(secret ‖ nonce)
	Nonce     uint64
	Timestamp int64
}

// Commit returns the commitment H(secret ‖ nonce) made at ts.
func Commit(secret, nonce uint64, ts int64) Commitment {
	return Commitment{Hash: pairHash(secret, nonce), Nonce: nonce, Timestamp: ts}
}

// Verify reports whether secret opens the commitment.
func (c Commitment) Verify(secret uint64) bool {
	return pairHash(secret, c.Nonce) == c.Hash
}

// IdentityProof answers a challenge against a commitment.
type IdentityProof struct {
	Challenge  uint64
	Response   uint64 // H(secret ‖ challenge)
	Commitment uint64 // Commitment.Hash the proof refers to
	Verified   bool   // secret opened the commitment
}

// ProveIdentity answers challenge with secret and records whether secret
// opens c.
func ProveIdentity(secret uint64, c Commitment, challenge uint64) IdentityProof {
	return IdentityProof{
		Challenge:  challenge,
		Response:   pairHash(secret, challenge),
		Commitment: c.Hash,
		Verified:   c.Verify(secret),
	}
}

// WellFormed reports whether no field of the proof is zero.
func (p IdentityProof) WellFormed() bool {
	return p.Challenge != 0 && p.Response != 0 && p.Commitment != 0
}

// NonceFor derives a party's commitment nonce from its ID.
func NonceFor(id uint32) uint64 {
	return hashing.NewWriter().Uint32(id).Sum64()
}

// Challenges derives the two protocol challenges from a timestamp.
func Challenges(ts int64) (a, b uint64) {
	h := hashing.NewWriter().Uint64(uint64(ts)).Sum64()
	return h ^ 0xAAAA_AAAA_AAAA_AAAA, h ^ 0x5555_5555_5555_5555
}

func pairHash(a, b uint64) uint64 {
	return hashing.NewWriter().Uint64(a).Uint64(b).Sum64()
}
