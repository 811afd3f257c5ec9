// SPDX-License-Identifier: MIT

package proximity_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proxima/proximity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := proximity.DefaultConfig()
	assert.Equal(t, 10.0, cfg.ProximityThreshold)
	assert.Equal(t, 2, cfg.MinMembers)
	assert.Equal(t, proximity.MaxGroupSize-1, cfg.KNearest)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	mod := func(f func(*proximity.Config)) proximity.Config {
		c := proximity.DefaultConfig()
		f(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  proximity.Config
		ok   bool
	}{
		{"defaults", proximity.DefaultConfig(), true},
		{"zero threshold", mod(func(c *proximity.Config) { c.ProximityThreshold = 0 }), true},
		{"negative threshold", mod(func(c *proximity.Config) { c.ProximityThreshold = -1 }), false},
		{"nan threshold", mod(func(c *proximity.Config) { c.ProximityThreshold = math.NaN() }), false},
		{"inf threshold", mod(func(c *proximity.Config) { c.ProximityThreshold = math.Inf(1) }), false},
		{"min members 1", mod(func(c *proximity.Config) { c.MinMembers = 1 }), false},
		{"min members max", mod(func(c *proximity.Config) { c.MinMembers = proximity.MaxGroupSize }), true},
		{"min members over max", mod(func(c *proximity.Config) { c.MinMembers = proximity.MaxGroupSize + 1 }), false},
		{"k zero", mod(func(c *proximity.Config) { c.KNearest = 0 }), false},
		{"k one", mod(func(c *proximity.Config) { c.KNearest = 1 }), true},
		{"k too large", mod(func(c *proximity.Config) { c.KNearest = proximity.MaxGroupSize }), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, proximity.ErrInvalidConfig)
			}
		})
	}
}

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := proximity.ParseConfig([]byte("proximity_threshold: 4.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.ProximityThreshold)
	assert.Equal(t, proximity.DefaultMinMembers, cfg.MinMembers)
	assert.Equal(t, proximity.DefaultKNearest, cfg.KNearest)
}

func TestParseConfig_Full(t *testing.T) {
	doc := `
proximity_threshold: 25
min_members: 3
k_nearest: 16
`
	cfg, err := proximity.ParseConfig([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, proximity.Config{ProximityThreshold: 25, MinMembers: 3, KNearest: 16}, cfg)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := proximity.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, proximity.DefaultConfig(), cfg)
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "radius: 3\n",
		"wrong type":    "min_members: lots\n",
		"out of domain": "min_members: 1\n",
		"negative":      "proximity_threshold: -2\n",
		"malformed":     "proximity_threshold: [1, 2\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := proximity.LoadConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, proximity.ErrInvalidConfig)
		})
	}
}
