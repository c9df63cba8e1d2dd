// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	jsoniter "github.com/json-iterator/go"
)

// Make sure to register in init function
type (
	// Generate regenerates the terrain. Config is decoded over the defaults;
	// without one, the hub's current config is reused.
	Generate struct {
		Config jsoniter.RawMessage `json:"config,omitempty"`
		Seed   *int64              `json:"seed,omitempty"`
		Random bool                `json:"random,omitempty"` // pick a random seed
	}

	// PickBiome asks for the biome of the vertex under a world position.
	PickBiome struct {
		X float32 `json:"x"`
		Z float32 `json:"z"`
	}

	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}
)

func init() {
	registerInbound(
		Generate{},
		PickBiome{},
	)
}

func (data Generate) config(current worldgen.Config) (worldgen.Config, error) {
	cfg := current
	if len(data.Config) > 0 {
		var err error
		if cfg, err = worldgen.LoadConfig(bytes.NewReader(data.Config)); err != nil {
			return cfg, err
		}
	}

	if data.Random {
		cfg.Noise.Seed = worldgen.RandomSeed()
	} else if data.Seed != nil {
		cfg.Noise.Seed = *data.Seed
	}
	return cfg, cfg.Validate()
}

func (data Generate) Inbound(h *Hub, client Client) {
	cfg, err := data.config(h.config)
	if err != nil {
		client.Send(Error{Message: err.Error()})
		return
	}
	h.generate(cfg)
}

func (data PickBiome) Inbound(h *Hub, client Client) {
	model := h.generator.Model()
	if model == nil {
		client.Send(Error{Message: errNoModel.Error()})
		return
	}

	sample, ok := model.BiomeAt(data.X, data.Z)
	biome := Biome{X: data.X, Z: data.Z, ModelID: model.ID.String()}
	if ok {
		biome.Sample = &sample
		biome.ActualTemperature = sample.ActualTemperature()
	}
	client.Send(biome)
}
