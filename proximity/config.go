// SPDX-License-Identifier: MIT

package proximity

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config holds the proximity knobs shared by Group and Scanner.
//
// YAML form:
//
//	proximity_threshold: 10.0
//	min_members: 2
//	k_nearest: 63
type Config struct {
	// ProximityThreshold is the largest Vivaldi distance that counts as close.
	ProximityThreshold float64 `yaml:"proximity_threshold"`

	// MinMembers is the smallest group Group.Prove accepts.
	MinMembers int `yaml:"min_members"`

	// KNearest caps how many candidates Scanner.Discover considers.
	KNearest int `yaml:"k_nearest"`
}

// DefaultConfig returns threshold 10.0, two members and k = MaxGroupSize−1.
func DefaultConfig() Config {
	return Config{
		ProximityThreshold: DefaultThreshold,
		MinMembers:         DefaultMinMembers,
		KNearest:           DefaultKNearest,
	}
}

// Validate checks every field against its domain:
// threshold finite and ≥ 0, 2 ≤ MinMembers ≤ MaxGroupSize,
// 1 ≤ KNearest ≤ MaxGroupSize−1.
func (c Config) Validate() error {
	if !validThreshold(c.ProximityThreshold) {
		return fmt.Errorf("%w: proximity_threshold %v", ErrInvalidConfig, c.ProximityThreshold)
	}
	if c.MinMembers < 2 || c.MinMembers > MaxGroupSize {
		return fmt.Errorf("%w: min_members %d not in [2, %d]", ErrInvalidConfig, c.MinMembers, MaxGroupSize)
	}
	if c.KNearest < 1 || c.KNearest > MaxGroupSize-1 {
		return fmt.Errorf("%w: k_nearest %d not in [1, %d]", ErrInvalidConfig, c.KNearest, MaxGroupSize-1)
	}
	return nil
}

// LoadConfig decodes YAML from r on top of DefaultConfig, so absent keys keep
// their defaults. Unknown keys and invalid values yield ErrInvalidConfig.
// Empty input returns the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseConfig is LoadConfig over an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

func validThreshold(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}
