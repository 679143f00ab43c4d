// Package config loads and saves the CLI's own tunables — RNG salt
// overrides, a default scale name, a default chord root octave and a
// default tempo. No other package of this module reads these values.
// This is CLI convenience configuration, never
// pattern-engine state: the engine itself stays stateless regardless of
// what this package loads (spec §5).
package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/cyclepattern/internal/music"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config is the shape of the CLI's JSON config document.
type Config struct {
	// SaltOverrides maps a combinator name (e.g. "degrade") to an RNG
	// salt; SaltFor resolves a name against it, falling back to a given
	// built-in salt. The pattern package's combinators use the rng salt
	// constants directly and do not consult this map.
	SaltOverrides map[string]uint64 `json:"salt_overrides,omitempty"`

	DefaultScale       string  `json:"default_scale,omitempty"`
	DefaultChordOctave int     `json:"default_chord_octave,omitempty"`
	DefaultTempo       float64 `json:"default_tempo,omitempty"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		DefaultScale:       "major",
		DefaultChordOctave: music.DefaultRootOctave,
		DefaultTempo:       120,
	}
}

// Load reads and parses a JSON config file at path, layering it over
// Default() so a partial file only overrides what it sets.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as JSON to path.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// SaltFor resolves the salt a named combinator should use: the config's
// override if one is set, otherwise fallback (the combinator's built-in
// default salt).
func (c Config) SaltFor(name string, fallback uint64) uint64 {
	if c.SaltOverrides == nil {
		return fallback
	}
	if s, ok := c.SaltOverrides[name]; ok {
		return s
	}
	return fallback
}
