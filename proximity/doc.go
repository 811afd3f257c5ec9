// SPDX-License-Identifier: MIT

// Package proximity turns Vivaldi distances into presence evidence: pairwise
// proofs, bounded groups whose members are all mutually close, and a Scanner
// that discovers such groups over a kdtree index.
//
// 🚀 What it provides:
//
//   - Prove(a, b, threshold): a deterministic Proof that two coordinates are
//     (or are not) within threshold, sealed with an FNV-1a content hash.
//   - Group: up to MaxGroupSize members with unique IDs. MaxPairwiseDistance,
//     AllProximate and Prove summarise it; ID hashes the sorted member IDs so
//     the same membership always yields the same group identifier.
//   - Scanner: Nearest and InRange pass-throughs plus Discover, which seeds a
//     group with the local party and greedily admits the closest indexed
//     parties that keep every pair within threshold.
//   - Config: threshold, minimum members and k, loadable from YAML.
//   - Metrics: optional Prometheus collectors for scanner activity.
//
// Determinism:
//
//	Proofs hash little-endian encodings of their fields, so equal inputs give
//	equal hashes on every platform. Discovery order follows kdtree.KNearest
//	(ascending distance, then ascending ID).
//
// Errors:
//
//   - ErrInvalidThreshold: non-finite or negative threshold passed to Prove.
//   - ErrGroupFull / ErrDuplicateMember: Group.Add refused the member.
//   - ErrMemberNotFound: Group.Remove on an absent ID.
//   - ErrTooFewMembers: Group.Prove below Config.MinMembers.
//   - ErrInvalidConfig: Config.Validate, LoadConfig, NewScanner.
//
// Concurrency:
//
//	Group is not safe for concurrent mutation. A Scanner holds only its
//	configuration, logger and metrics, and may be shared between goroutines.
package proximity
