// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/mesh"
	"github.com/SoftbearStudios/terragen/server/worldgen"
)

type (
	// Generated announces a new current model.
	Generated struct {
		ID     string          `json:"id"`
		Seed   int64           `json:"seed"`
		Layout mesh.Layout     `json:"layout"`
		Millis int64           `json:"millis"` // generation time
		Config worldgen.Config `json:"config"`
	}

	// Biome answers PickBiome. Sample is omitted outside the terrain.
	Biome struct {
		X                 float32              `json:"x"`
		Z                 float32              `json:"z"`
		ModelID           string               `json:"modelID"`
		Sample            *terrain.BiomeSample `json:"sample,omitempty"`
		ActualTemperature float32              `json:"actualTemperature,omitempty"`
	}

	// Error reports a rejected request or a failed generation.
	Error struct {
		Message string `json:"message"`
	}
)

func init() {
	registerOutbound(
		Generated{},
		Biome{},
		Error{},
	)
}

func generatedOf(model *worldgen.Model) Generated {
	return Generated{
		ID:     model.ID.String(),
		Seed:   model.Config.Noise.Seed,
		Layout: model.Layout(),
		Millis: model.Duration.Milliseconds(),
		Config: model.Config,
	}
}

func (generated Generated) Pool() {}
func (biome Biome) Pool()         {}
func (err Error) Pool()           {}
