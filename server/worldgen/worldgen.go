// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package worldgen turns a Config into a fully assembled terrain Model.
package worldgen

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/compressed"
	"github.com/SoftbearStudios/terragen/server/terrain/mesh"
	"github.com/gofrs/uuid"
	"image"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Model is a generated terrain. It is read-only and safe for concurrent use.
type Model struct {
	ID         uuid.UUID
	Config     Config
	Fields     *Fields
	Classifier *terrain.Classifier
	Created    time.Time
	Duration   time.Duration // how long generation took

	assembler *mesh.Assembler
}

// Generate builds a Model from a config and its decoded assets.
func Generate(cfg Config, assets Assets) (*Model, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fields, err := NewFields(cfg.Noise, assets.Masks)
	if err != nil {
		return nil, err
	}

	classifier := &terrain.Classifier{
		Bands:   cfg.Bands,
		Palette: assets.Palette,
		Shaded:  cfg.Shaded,
	}

	assembler, err := mesh.NewAssembler(cfg.MaxChunkSize)
	if err != nil {
		return nil, err
	}
	assembler.Curve = cfg.curve()
	assembler.VerticalScale = cfg.VerticalScale

	// One vertex per cell
	width, height := cfg.Noise.Width-1, cfg.Noise.Height-1
	if cfg.Transposed {
		assembler.Orientation = mesh.ZX
		width, height = height, width
	}
	if err = assembler.Partition(width, height); err != nil {
		return nil, err
	}
	if err = assembler.Build(mesh.Input{
		Elevation:   fields.Elevation,
		Temperature: fields.Temperature,
		Classifier:  classifier,
	}); err != nil {
		return nil, fmt.Errorf("assembling chunks: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	return &Model{
		ID:         id,
		Config:     cfg,
		Fields:     fields,
		Classifier: classifier,
		Created:    start,
		Duration:   time.Since(start),
		assembler:  assembler,
	}, nil
}

// Render draws one of the model's fields.
func (model *Model) Render(mode terrain.DrawMode) (*image.RGBA, error) {
	f := model.Fields
	switch mode {
	case terrain.DrawHeight:
		return terrain.RenderHeight(f.Height), nil
	case terrain.DrawColour:
		return terrain.RenderBands(f.Height, model.Classifier.Bands, false), nil
	case terrain.DrawTemperature:
		return terrain.RenderTemperature(f.Temperature), nil
	case terrain.DrawMoisture:
		return terrain.RenderMoisture(f.Moisture), nil
	case terrain.DrawIsland:
		return terrain.RenderBands(f.Elevation, model.Classifier.Bands, false), nil
	case terrain.DrawBiome:
		return terrain.RenderBiomes(f.Elevation, f.Temperature, model.Classifier)
	default:
		return nil, &terrain.ConfigError{Field: "draw mode", Value: mode, Reason: "unknown"}
	}
}

// BiomeAt returns the biome of the vertex at a world position.
func (model *Model) BiomeAt(x, z float32) (terrain.BiomeSample, bool) {
	return model.assembler.BiomeAt(x, z)
}

func (model *Model) Layout() mesh.Layout {
	return model.assembler.Layout()
}

func (model *Model) Chunks() []*mesh.Chunk {
	return model.assembler.Chunks()
}

func (model *Model) Chunk(n, m int) (*mesh.Chunk, bool) {
	return model.assembler.Chunk(n, m)
}

// Heightmap compresses the elevation for transport. Pool the result when done.
func (model *Model) Heightmap() *terrain.Data {
	return compressed.EncodeGrid(model.Fields.Elevation)
}

func (model *Model) String() string {
	layout := model.Layout()
	return fmt.Sprintf("model %s: seed %d, %dx%d, %d chunks, took %s",
		model.ID, model.Config.Noise.Seed, model.Config.Noise.Width, model.Config.Noise.Height, layout.Chunks(), model.Duration)
}

// Generator keeps the last successfully generated Model.
type Generator struct {
	loader AssetLoader

	mutex sync.RWMutex
	model *Model
}

func NewGenerator(loader AssetLoader) *Generator {
	return &Generator{loader: loader}
}

// Generate loads assets and generates a model. The current model is only replaced on success.
func (g *Generator) Generate(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	assets, err := g.loader.Load(&cfg)
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	model, err := Generate(cfg, assets)
	if err != nil {
		return nil, err
	}

	g.mutex.Lock()
	g.model = model
	g.mutex.Unlock()

	log.Println(model)
	return model, nil
}

// Model returns the current model, or nil if none was generated.
func (g *Generator) Model() *Model {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.model
}

var (
	seedRand  = rand.New(rand.NewSource(time.Now().UnixNano()))
	seedMutex sync.Mutex
)

// RandomSeed returns a new seed for Config.Noise.Seed.
func RandomSeed() int64 {
	seedMutex.Lock()
	defer seedMutex.Unlock()
	return int64(int32(seedRand.Uint32()))
}
