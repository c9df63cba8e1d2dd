// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/noise"
	"golang.org/x/sync/errgroup"
)

// Masks are optional grids that shape the terrain. Each must match the noise size.
type Masks struct {
	Island      *terrain.Grid
	Secondary   *terrain.Grid
	Temperature *terrain.Grid
}

// Fields are the grids derived from one noise config.
type Fields struct {
	Height      *terrain.Grid // normalized base noise
	Elevation   *terrain.Grid // Height shaped by the masks
	Moisture    *terrain.Grid
	Temperature *terrain.Grid
}

// MoistureConfig derives the moisture noise from the base noise.
func MoistureConfig(base noise.Config) noise.Config {
	base.Seed--
	base.Persistence -= 0.1
	base.Lacunarity -= 0.2
	return base
}

// TemperatureConfig derives the temperature noise from the base noise.
func TemperatureConfig(base noise.Config) noise.Config {
	base.Seed -= 2
	base.Scale += 40
	if base.Octaves > 1 {
		base.Octaves--
	}
	base.Persistence -= 0.2
	base.Lacunarity -= 0.3
	return base
}

// NewFields generates the noise fields and combines them with masks.
func NewFields(base noise.Config, masks Masks) (*Fields, error) {
	var raw, moisture, temp *terrain.Grid

	var group errgroup.Group
	group.Go(func() (err error) {
		raw, err = noise.Generate(base)
		return
	})
	group.Go(func() (err error) {
		moisture, err = noise.Generate(MoistureConfig(base))
		return
	})
	group.Go(func() (err error) {
		temp, err = noise.Generate(TemperatureConfig(base))
		return
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return combine(raw, moisture, temp, masks)
}

// combine applies the fixed pipeline. Every step clamps, so the order matters.
func combine(raw, moisture, temp *terrain.Grid, masks Masks) (*Fields, error) {
	height := terrain.Normalize(raw)
	elevation := height

	var err error
	if masks.Island != nil {
		if elevation, err = terrain.Difference(elevation, terrain.Invert(terrain.AddScalar(masks.Island, 0.35))); err != nil {
			return nil, fmt.Errorf("island mask: %w", err)
		}
	}
	if masks.Secondary != nil {
		if elevation, err = terrain.Difference(elevation, terrain.MulScalar(terrain.Invert(masks.Secondary), 0.5)); err != nil {
			return nil, fmt.Errorf("secondary mask: %w", err)
		}
	}

	cold, err := terrain.Blend(terrain.MulScalar(height, 0.4), terrain.MulScalar(terrain.Invert(temp), 0.6))
	if err != nil {
		return nil, err
	}
	if cold, err = terrain.Sum(cold, terrain.MulScalar(moisture, 0.1)); err != nil {
		return nil, err
	}
	if masks.Temperature != nil {
		if cold, err = terrain.Blend(cold, terrain.Invert(masks.Temperature)); err != nil {
			return nil, fmt.Errorf("temperature mask: %w", err)
		}
	}

	return &Fields{
		Height:      height,
		Elevation:   elevation,
		Moisture:    moisture,
		Temperature: terrain.Invert(terrain.Normalize(cold)),
	}, nil
}
