// SPDX-License-Identifier: MIT

package presence

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors.
var (
	// ErrInvalidTransition indicates a session method called in the wrong state.
	ErrInvalidTransition = errors.New("presence: invalid session transition")

	// ErrRetriesExhausted indicates Retry beyond Options.MaxRetries.
	ErrRetriesExhausted = errors.New("presence: retries exhausted")

	// ErrInvalidEvent indicates an encoded event of the wrong length.
	ErrInvalidEvent = errors.New("presence: invalid event encoding")

	// ErrNotProximate indicates the two parties are farther apart than the threshold.
	ErrNotProximate = errors.New("presence: parties not proximate")

	// ErrNoPeer indicates no other party was found within the threshold.
	ErrNoPeer = errors.New("presence: no peer in range")

	// ErrUnknownParty indicates an indexed ID missing from the Directory.
	ErrUnknownParty = errors.New("presence: unknown party")

	// ErrVerificationFailed indicates an identity proof did not verify.
	ErrVerificationFailed = errors.New("presence: identity verification failed")
)

// Options configures sessions and protocol runs.
type Options struct {
	Threshold        float64       // proximity threshold for Execute
	RequireMutual    bool          // set FlagMutual on emitted events
	DiscoveryTimeout time.Duration // max time in Discovering
	ExchangeTimeout  time.Duration // max time in Exchanging
	MaxRetries       int           // Retry budget per phase
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns threshold 10, mutual events, 5s discovery, 10s
// exchange and three retries.
func DefaultOptions() Options {
	return Options{
		Threshold:        10.0,
		RequireMutual:    true,
		DiscoveryTimeout: 5 * time.Second,
		ExchangeTimeout:  10 * time.Second,
		MaxRetries:       3,
	}
}

// WithThreshold sets the proximity threshold. Panics unless finite and ≥ 0.
func WithThreshold(d float64) Option {
	if !(d >= 0) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("presence: WithThreshold(%v) must be finite and ≥ 0", d))
	}
	return func(o *Options) { o.Threshold = d }
}

// WithRequireMutual controls the mutual flag on emitted events.
func WithRequireMutual(b bool) Option {
	return func(o *Options) { o.RequireMutual = b }
}

// WithDiscoveryTimeout bounds the Discovering phase. Panics if d <= 0.
func WithDiscoveryTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("presence: WithDiscoveryTimeout(%v) must be positive", d))
	}
	return func(o *Options) { o.DiscoveryTimeout = d }
}

// WithExchangeTimeout bounds the Exchanging phase. Panics if d <= 0.
func WithExchangeTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("presence: WithExchangeTimeout(%v) must be positive", d))
	}
	return func(o *Options) { o.ExchangeTimeout = d }
}

// WithMaxRetries sets the retry budget. Panics if n < 0.
func WithMaxRetries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("presence: WithMaxRetries(%d) must be ≥ 0", n))
	}
	return func(o *Options) { o.MaxRetries = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
