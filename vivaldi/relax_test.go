// SPDX-License-Identifier: MIT

package vivaldi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proxima/vivaldi"
)

// samplesFrom builds exact measurements from a hidden true position to each peer.
func samplesFrom(truth vivaldi.Coordinate, peers ...vivaldi.Coordinate) []vivaldi.Sample {
	out := make([]vivaldi.Sample, len(peers))
	for i, p := range peers {
		out[i] = vivaldi.Sample{Peer: p, Measured: vivaldi.Distance(truth, p)}
	}
	return out
}

func TestRelax_NoSamples(t *testing.T) {
	c := vivaldi.MustNew(1, 1)
	res, err := vivaldi.Relax(&c, nil)
	require.NoError(t, err)
	assert.Equal(t, vivaldi.RelaxResult{}, res)
	assert.Equal(t, vivaldi.MustNew(1, 1), c)
}

func TestRelax_AlreadyConsistent(t *testing.T) {
	c := vivaldi.MustNew(0, 0)
	samples := []vivaldi.Sample{{Peer: vivaldi.MustNew(3, 4), Measured: 5}}

	res, err := vivaldi.Relax(&c, samples)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Rounds)
	assert.InDelta(t, 0.0, res.Residual, 1e-12)
}

func TestRelax_SinglePeerConverges(t *testing.T) {
	c := vivaldi.MustNew(0, 0)
	samples := []vivaldi.Sample{{Peer: vivaldi.MustNew(5, 0), Measured: 8}}

	res, err := vivaldi.Relax(&c, samples)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Rounds, 1)
	assert.LessOrEqual(t, res.Rounds, vivaldi.DefaultOptions().MaxRounds)
	assert.Less(t, math.Abs(vivaldi.Distance(c, samples[0].Peer)-8), 1.0)
	assert.InDelta(t, vivaldi.Residual(c, samples), res.Residual, 1e-12)
}

func TestRelax_ReducesResidual(t *testing.T) {
	truth := vivaldi.MustNew(3, 4)
	samples := samplesFrom(truth,
		vivaldi.MustNew(10, 0),
		vivaldi.MustNew(0, 10),
		vivaldi.MustNew(-10, 0),
		vivaldi.MustNew(0, -10),
	)
	c := vivaldi.MustNew(0, 0)
	initial := vivaldi.Residual(c, samples)
	require.Greater(t, initial, 0.0)

	res, err := vivaldi.Relax(&c, samples, vivaldi.WithMaxRounds(400))
	require.NoError(t, err)
	assert.Less(t, res.Residual, initial/2)
	assert.GreaterOrEqual(t, c.Height(), 0.0)
}

func TestRelax_RejectsNonFiniteSampleWithoutMutation(t *testing.T) {
	c := vivaldi.MustNewWithHeight(1, 2, 0.5)
	before := c
	samples := []vivaldi.Sample{
		{Peer: vivaldi.MustNew(5, 0), Measured: 3},
		{Peer: vivaldi.MustNew(0, 5), Measured: math.NaN()},
	}
	_, err := vivaldi.Relax(&c, samples)
	assert.ErrorIs(t, err, vivaldi.ErrInvalidCoordinate)
	assert.Equal(t, before, c)
}

func TestRelax_MaxRoundsBound(t *testing.T) {
	c := vivaldi.MustNew(0, 0)
	samples := []vivaldi.Sample{{Peer: vivaldi.MustNew(5, 0), Measured: 80}}
	res, err := vivaldi.Relax(&c, samples, vivaldi.WithMaxRounds(3), vivaldi.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rounds)
	assert.False(t, res.Converged)
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { vivaldi.WithInitialStep(0) })
	assert.Panics(t, func() { vivaldi.WithInitialStep(1.5) })
	assert.Panics(t, func() { vivaldi.WithDecay(0) })
	assert.Panics(t, func() { vivaldi.WithDecay(math.NaN()) })
	assert.Panics(t, func() { vivaldi.WithMinStep(0) })
	assert.Panics(t, func() { vivaldi.WithMaxRounds(0) })
	assert.Panics(t, func() { vivaldi.WithTolerance(-1) })
	assert.Panics(t, func() { vivaldi.WithTolerance(math.Inf(1)) })

	assert.NotPanics(t, func() {
		opts := vivaldi.DefaultOptions()
		for _, o := range []vivaldi.Option{
			vivaldi.WithInitialStep(1),
			vivaldi.WithDecay(1),
			vivaldi.WithMinStep(0.5),
			vivaldi.WithMaxRounds(1),
			vivaldi.WithTolerance(0),
		} {
			o(&opts)
		}
		assert.Equal(t, vivaldi.Options{InitialStep: 1, Decay: 1, MinStep: 0.5, MaxRounds: 1, Tolerance: 0}, opts)
	})
}

func TestRelax_FirstRoundRespectsMinStep(t *testing.T) {
	peer := vivaldi.MustNew(10, 0)
	samples := []vivaldi.Sample{{Peer: peer, Measured: 20}}

	c := vivaldi.MustNew(0, 0)
	res, err := vivaldi.Relax(&c, samples,
		vivaldi.WithInitialStep(0.001),
		vivaldi.WithMinStep(0.1),
		vivaldi.WithMaxRounds(1),
		vivaldi.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rounds)

	want := vivaldi.MustNew(0, 0)
	require.NoError(t, want.Update(peer, 20, 0.1))
	assert.Equal(t, want, c)
	assert.InDelta(t, -1.0, c.X(), 1e-12)
}
