// SPDX-License-Identifier: MIT

// Package presence records that two parties met: it checks proximity,
// exchanges hash-commitment identity proofs, and emits a compact event plus a
// full crossing record, all under a small session state machine.
//
// 🚀 Pieces:
//
//   - Commit / ProveIdentity: commitment H(secret‖nonce) and response
//     H(secret‖challenge), with H = FNV-1a 64 over little-endian words.
//   - Event: the 18-byte wire form
//     [type u8][flags u8][party A u32][party B u32][timestamp u64], all LE.
//   - CrossingRecord: event + both identity proofs + the proximity proof,
//     sealed with a content hash; Status derives its lifecycle stage.
//   - Execute: the two-party protocol (proximity, identities, event, record).
//   - Session: Idle → Discovering → Exchanging → Verified → Closed with
//     per-phase timeouts and a bounded retry counter.
//   - Handshake / Crossings: run sessions against a kdtree index through a
//     proximity.Scanner.
//
// State machine:
//
//	Idle ──Discover──▶ Discovering ──BeginExchange──▶ Exchanging ──Verify──▶ Verified
//	  │                    │                              │                     │
//	  └────────────────────┴──────────────Close───────────┴─────────────────────┴──▶ Closed
//
//	Any other transition fails with ErrInvalidTransition and changes nothing.
//
// Options (functional, validated at construction; invalid values panic):
//
//   - WithThreshold(d)         proximity threshold, default 10.0
//   - WithRequireMutual(b)     set the mutual flag on events, default true
//   - WithDiscoveryTimeout(d)  default 5s
//   - WithExchangeTimeout(d)   default 10s
//   - WithMaxRetries(n)        default 3
//
// Timestamps are caller-supplied unix nanoseconds; nothing here reads a clock.
// The identity proofs are commitments, not zero-knowledge proofs: anyone who
// learns a secret can forge responses for it.
package presence
