// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise generates seeded fractal noise fields.
package noise

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
	"math"
	"math/rand"
)

// offsetRange bounds the random per-octave sampling offsets.
const offsetRange = 100000

// Config fully determines a generated field.
type Config struct {
	Seed        int64       `json:"seed"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Scale       float32     `json:"scale"`
	Octaves     int         `json:"octaves"`
	Persistence float32     `json:"persistence"`
	Lacunarity  float32     `json:"lacunarity"`
	Offset      world.Vec2f `json:"offset"`
	Basis       Basis       `json:"basis,omitempty"`
}

func (cfg *Config) Validate() error {
	if cfg.Width <= 0 {
		return &terrain.ConfigError{Field: "width", Value: cfg.Width, Reason: "must be positive"}
	}
	if cfg.Height <= 0 {
		return &terrain.ConfigError{Field: "height", Value: cfg.Height, Reason: "must be positive"}
	}
	if !(cfg.Scale > 0) {
		return &terrain.ConfigError{Field: "scale", Value: cfg.Scale, Reason: "must be positive"}
	}
	if cfg.Octaves < 1 {
		return &terrain.ConfigError{Field: "octaves", Value: cfg.Octaves, Reason: "must be at least 1"}
	}
	if _, err := cfg.Basis.sampler(); err != nil {
		return err
	}
	return nil
}

// Generate returns a fractal noise field normalized to [0, 1].
// Identical configs produce bit-identical grids.
func Generate(cfg Config) (*terrain.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	basis, _ := cfg.Basis.sampler()

	// The seed only affects sampling offsets, never the basis itself
	rng := rand.New(rand.NewSource(cfg.Seed))
	octaveOffsets := make([][2]float64, cfg.Octaves)
	for i := range octaveOffsets {
		octaveOffsets[i][0] = float64(rng.Intn(2*offsetRange)-offsetRange) + float64(cfg.Offset.X)
		octaveOffsets[i][1] = float64(rng.Intn(2*offsetRange)-offsetRange) + float64(cfg.Offset.Y)
	}

	scale := float64(cfg.Scale)
	persistence := float64(cfg.Persistence)
	lacunarity := float64(cfg.Lacunarity)

	heights := make([]float64, cfg.Width*cfg.Height)
	minHeight := math.MaxFloat64
	maxHeight := -math.MaxFloat64

	for j := 0; j < cfg.Height; j++ {
		for i := 0; i < cfg.Width; i++ {
			frequency := 1.0
			amplitude := 1.0
			noiseHeight := 0.0

			for _, offset := range octaveOffsets {
				x := float64(i)/scale*frequency + offset[0]
				y := float64(j)/scale*frequency + offset[1]

				noiseHeight += (basis.sample(x, y)*2 - 1) * amplitude

				amplitude *= persistence
				frequency *= lacunarity
			}

			minHeight = math.Min(minHeight, noiseHeight)
			maxHeight = math.Max(maxHeight, noiseHeight)
			heights[i+j*cfg.Width] = noiseHeight
		}
	}

	return terrain.GridFunc(cfg.Width, cfg.Height, func(x, y int) float32 {
		return float32(inverseLerp(minHeight, maxHeight, heights[x+y*cfg.Width]))
	})
}
