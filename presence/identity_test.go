// SPDX-License-Identifier: MIT

package presence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/proxima/hashing"
	"github.com/katalvlaran/proxima/presence"
)

func TestCommit_Verify(t *testing.T) {
	c := presence.Commit(12345, 99, 1_000_000)
	assert.True(t, c.Verify(12345))
	assert.False(t, c.Verify(12346))
	assert.Equal(t, uint64(99), c.Nonce)
	assert.Equal(t, int64(1_000_000), c.Timestamp)
}

func TestCommit_HashLayout(t *testing.T) {
	c := presence.Commit(7, 11, 0)
	assert.Equal(t, hashing.NewWriter().Uint64(7).Uint64(11).Sum64(), c.Hash)
	assert.Equal(t, c, presence.Commit(7, 11, 0))
	assert.NotEqual(t, c.Hash, presence.Commit(7, 12, 0).Hash, "nonce must matter")
}

func TestProveIdentity(t *testing.T) {
	c := presence.Commit(42, 5, 0)

	good := presence.ProveIdentity(42, c, 777)
	assert.True(t, good.Verified)
	assert.True(t, good.WellFormed())
	assert.Equal(t, c.Hash, good.Commitment)
	assert.Equal(t, hashing.NewWriter().Uint64(42).Uint64(777).Sum64(), good.Response)

	bad := presence.ProveIdentity(43, c, 777)
	assert.False(t, bad.Verified)
	assert.NotEqual(t, good.Response, bad.Response)
}

func TestIdentityProof_WellFormed(t *testing.T) {
	assert.False(t, presence.IdentityProof{}.WellFormed())
	assert.False(t, presence.IdentityProof{Challenge: 1, Response: 1}.WellFormed())
	assert.True(t, presence.IdentityProof{Challenge: 1, Response: 1, Commitment: 1}.WellFormed())
}

func TestNonceAndChallenges(t *testing.T) {
	assert.Equal(t, hashing.NewWriter().Uint32(9).Sum64(), presence.NonceFor(9))
	assert.NotEqual(t, presence.NonceFor(9), presence.NonceFor(10))

	a, b := presence.Challenges(500)
	h := hashing.NewWriter().Uint64(500).Sum64()
	assert.Equal(t, h^0xAAAA_AAAA_AAAA_AAAA, a)
	assert.Equal(t, h^0x5555_5555_5555_5555, b)
	assert.NotEqual(t, a, b)
}
