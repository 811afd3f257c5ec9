// SPDX-License-Identifier: MIT

package presence

import (
	"fmt"
	"time"

	"github.com/katalvlaran/proxima/hashing"
)

// State is a session phase.
type State uint8

// Session phases.
const (
	StateIdle        State = iota // waiting for a peer
	StateDiscovering              // peer found, proximity being checked
	StateExchanging               // identity proofs in flight
	StateVerified                 // both parties verified
	StateClosed                   // terminal
)

var stateNames = [...]string{"idle", "discovering", "exchanging", "verified", "closed"}

// String returns the lower-case phase name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// CloseReason records why a session closed.
type CloseReason uint8

// Close reasons. CloseNone is reported while the session is active.
const (
	CloseNone CloseReason = iota
	CloseSuccess
	CloseTimeout
	CloseCancelled
	CloseProximityFailed
	CloseVerificationFailed
)

var reasonNames = [...]string{"none", "success", "timeout", "cancelled", "proximity_failed", "verification_failed"}

// String returns the snake-case reason name.
func (r CloseReason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Session tracks one presence exchange. It is not safe for concurrent use.
type Session struct {
	id        uint64
	state     State
	localID   uint32
	remoteID  uint32
	hasRemote bool
	entered   int64 // when the current state began
	created   int64
	retries   int
	reason    CloseReason
	opts      Options
	hash      uint64
}

// NewSession opens an Idle session for localID at now. The session ID is
// FNV-1a over LE(localID u32, now u64).
func NewSession(localID uint32, now int64, opts ...Option) *Session {
	s := &Session{
		id:      hashing.NewWriter().Uint32(localID).Uint64(uint64(now)).Sum64(),
		state:   StateIdle,
		localID: localID,
		entered: now,
		created: now,
		opts:    buildOptions(opts),
	}
	s.rehash()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uint64 { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// LocalID returns the owning party.
func (s *Session) LocalID() uint32 { return s.localID }

// RemoteID returns the peer chosen by Discover, if any.
func (s *Session) RemoteID() (uint32, bool) { return s.remoteID, s.hasRemote }

// Retries returns the retries used in the current phase.
func (s *Session) Retries() int { return s.retries }

// CloseReason returns why the session closed, or CloseNone.
func (s *Session) CloseReason() CloseReason { return s.reason }

// Options returns the session's options.
func (s *Session) Options() Options { return s.opts }

// ContentHash is FNV-1a over LE(id u64, state u8, localID u32,
// state-entered u64, retries u32). It changes on every transition and retry.
func (s *Session) ContentHash() uint64 { return s.hash }

// Active reports whether the session is not closed.
func (s *Session) Active() bool { return s.state != StateClosed }

// Discover moves Idle → Discovering with the chosen peer.
func (s *Session) Discover(remoteID uint32, now int64) error {
	if err := s.expect(StateIdle, StateDiscovering); err != nil {
		return err
	}
	s.remoteID, s.hasRemote = remoteID, true
	s.enter(StateDiscovering, now)
	return nil
}

// BeginExchange moves Discovering → Exchanging once proximity holds.
func (s *Session) BeginExchange(now int64) error {
	if err := s.expect(StateDiscovering, StateExchanging); err != nil {
		return err
	}
	s.enter(StateExchanging, now)
	return nil
}

// Verify moves Exchanging → Verified once both identities check out.
func (s *Session) Verify(now int64) error {
	if err := s.expect(StateExchanging, StateVerified); err != nil {
		return err
	}
	s.enter(StateVerified, now)
	return nil
}

// Close ends the session from any active state. A second Close fails and
// keeps the first reason.
func (s *Session) Close(reason CloseReason, now int64) error {
	if s.state == StateClosed {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, s.state, StateClosed)
	}
	s.reason = reason
	s.enter(StateClosed, now)
	return nil
}

// TimedOut reports whether the current phase exceeded its timeout at now.
// Idle, Verified and Closed never time out.
func (s *Session) TimedOut(now int64) bool {
	elapsed := s.StateDuration(now)
	switch s.state {
	case StateDiscovering:
		return elapsed > s.opts.DiscoveryTimeout
	case StateExchanging:
		return elapsed > s.opts.ExchangeTimeout
	default:
		return false
	}
}

// Retry consumes one retry of the current phase. Transitions reset the
// counter; ErrRetriesExhausted once MaxRetries are used.
func (s *Session) Retry() error {
	if s.retries >= s.opts.MaxRetries {
		return fmt.Errorf("%w: %d of %d used", ErrRetriesExhausted, s.retries, s.opts.MaxRetries)
	}
	s.retries++
	s.rehash()
	return nil
}

// StateDuration returns the time spent in the current state, 0 if now is
// earlier than its start.
func (s *Session) StateDuration(now int64) time.Duration {
	return since(s.entered, now)
}

// Age returns the time since the session was created, 0 if now is earlier.
func (s *Session) Age(now int64) time.Duration {
	return since(s.created, now)
}

func (s *Session) expect(from, to State) error {
	if s.state != from {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, s.state, to)
	}
	return nil
}

func (s *Session) enter(st State, now int64) {
	s.state = st
	s.entered = now
	s.retries = 0
	s.rehash()
}

func (s *Session) rehash() {
	s.hash = hashing.NewWriter().
		Uint64(s.id).
		Uint8(uint8(s.state)).
		Uint32(s.localID).
		Uint64(uint64(s.entered)).
		Uint32(uint32(s.retries)).
		Sum64()
}

func since(start, now int64) time.Duration {
	if now <= start {
		return 0
	}
	return time.Duration(now - start)
}
