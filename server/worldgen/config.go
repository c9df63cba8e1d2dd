// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/mesh"
	"github.com/SoftbearStudios/terragen/server/terrain/noise"
	"io"
	"os"
)

const (
	// MaxMapSize bounds the noise map width and height.
	MaxMapSize = 2048
	MaxScale   = 512
	MaxOctaves = 8

	MaxLacunarity = 16
)

// Config is everything needed to generate a Model.
// Asset paths are optional; relative paths are resolved by the AssetLoader.
type Config struct {
	// Noise.Width and Noise.Height are in vertices, so the terrain is one quad smaller.
	Noise         noise.Config   `json:"noise"`
	MaxChunkSize  int            `json:"maxChunkSize"`
	VerticalScale float32        `json:"verticalScale"`
	Curve         mesh.Keyframes `json:"curve,omitempty"` // empty is linear
	Transposed    bool           `json:"transposed,omitempty"`
	Bands         terrain.Bands  `json:"bands"`
	Shaded        bool           `json:"shaded"`

	IslandMask      string `json:"islandMask,omitempty"`
	SecondaryMask   string `json:"secondaryMask,omitempty"`
	TemperatureMask string `json:"temperatureMask,omitempty"`
	Palette         string `json:"palette,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Noise: noise.Config{
			Width:       257,
			Height:      257,
			Scale:       64,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2,
			Basis:       noise.Perlin,
		},
		MaxChunkSize:  mesh.DefaultMaxChunkSize,
		VerticalScale: mesh.DefaultVerticalScale,
		Curve:         mesh.DefaultCurve(),
		Bands:         terrain.DefaultBands(),
		Shaded:        true,
	}
}

func (cfg *Config) Validate() error {
	if err := cfg.Noise.Validate(); err != nil {
		return err
	}

	n := &cfg.Noise
	if n.Width < 2 || n.Width > MaxMapSize {
		return &terrain.ConfigError{Field: "width", Value: n.Width, Reason: fmt.Sprintf("must be in [2, %d]", MaxMapSize)}
	}
	if n.Height < 2 || n.Height > MaxMapSize {
		return &terrain.ConfigError{Field: "height", Value: n.Height, Reason: fmt.Sprintf("must be in [2, %d]", MaxMapSize)}
	}
	if n.Scale > MaxScale {
		return &terrain.ConfigError{Field: "scale", Value: n.Scale, Reason: fmt.Sprintf("must be at most %d", MaxScale)}
	}
	if n.Octaves > MaxOctaves {
		return &terrain.ConfigError{Field: "octaves", Value: n.Octaves, Reason: fmt.Sprintf("must be at most %d", MaxOctaves)}
	}
	if n.Persistence < 0 || n.Persistence > 1 {
		return &terrain.ConfigError{Field: "persistence", Value: n.Persistence, Reason: "must be in [0, 1]"}
	}
	if n.Lacunarity < 0 || n.Lacunarity > MaxLacunarity {
		return &terrain.ConfigError{Field: "lacunarity", Value: n.Lacunarity, Reason: fmt.Sprintf("must be in [0, %d]", MaxLacunarity)}
	}

	if err := mesh.ValidateMaxChunkSize(cfg.MaxChunkSize); err != nil {
		return err
	}
	if !(cfg.VerticalScale > 0) {
		return &terrain.ConfigError{Field: "verticalScale", Value: cfg.VerticalScale, Reason: "must be positive"}
	}
	if len(cfg.Curve) > 0 {
		if err := cfg.Curve.Validate(); err != nil {
			return err
		}
	}
	if len(cfg.Bands) == 0 {
		return &terrain.ConfigError{Field: "bands", Value: 0, Reason: "need at least one band"}
	}
	return nil
}

// curve returns the height curve of the assembler.
func (cfg *Config) curve() mesh.Curve {
	if len(cfg.Curve) == 0 {
		return mesh.Linear
	}
	return cfg.Curve
}

// LoadConfig decodes a JSON config over DefaultConfig and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return LoadConfig(f)
}
