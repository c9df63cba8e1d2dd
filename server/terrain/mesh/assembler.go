// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh assembles chunked terrain geometry from elevation and temperature grids.
package mesh

import (
	"errors"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
	"golang.org/x/sync/errgroup"
	"runtime"
)

// DefaultVerticalScale converts a curved height to meters.
const DefaultVerticalScale = 40

// ErrNotPartitioned is returned by Build before Partition.
var ErrNotPartitioned = errors.New("assembler is not partitioned")

type State int

const (
	Unconfigured State = iota
	Partitioned
	Built
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Partitioned:
		return "partitioned"
	case Built:
		return "built"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Orientation selects how global vertex (x, z) indexes the grids.
type Orientation int

const (
	// XZ samples grid (x, z).
	XZ Orientation = iota
	// ZX samples grid (z, x), i.e. the grids are transposed.
	ZX
)

// Input is read by every chunk of a Build. Grids are never modified.
type Input struct {
	Elevation   *terrain.Grid
	Temperature *terrain.Grid
	Classifier  *terrain.Classifier
}

// Assembler turns grids into chunks. It is not safe for concurrent use.
// A failed Build leaves the previously built chunks in place.
type Assembler struct {
	Curve         Curve
	VerticalScale float32
	Orientation   Orientation

	maxChunkSize int
	state        State
	pending      Layout // set by Partition
	layout       Layout // layout of chunks
	chunks       []*Chunk
}

// NewAssembler validates maxChunkSize against VertexLimit.
func NewAssembler(maxChunkSize int) (*Assembler, error) {
	if err := ValidateMaxChunkSize(maxChunkSize); err != nil {
		return nil, err
	}
	return &Assembler{
		Curve:         Linear,
		VerticalScale: DefaultVerticalScale,
		maxChunkSize:  maxChunkSize,
	}, nil
}

func (a *Assembler) State() State {
	return a.state
}

func (a *Assembler) MaxChunkSize() int {
	return a.maxChunkSize
}

// Partition plans the chunk grid of the next Build.
func (a *Assembler) Partition(width, height int) error {
	layout, err := Partition(width, height, a.maxChunkSize)
	if err != nil {
		return err
	}
	a.pending = layout
	a.state = Partitioned
	return nil
}

// Build builds every chunk of the partitioned layout, replacing any previous chunks.
func (a *Assembler) Build(in Input) error {
	if a.state == Unconfigured {
		return ErrNotPartitioned
	}
	layout := a.pending
	if err := a.checkInput(layout, in); err != nil {
		return err
	}

	chunks := make([]*Chunk, layout.Chunks())

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))

	for n := 0; n < layout.Columns; n++ {
		for m := 0; m < layout.Rows; m++ {
			n, m := n, m
			group.Go(func() error {
				c, err := a.buildChunk(layout, n, m, in)
				if err != nil {
					return err
				}
				chunks[n*layout.Rows+m] = c
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return err
	}

	a.layout = layout
	a.chunks = chunks
	a.state = Built
	return nil
}

// Reset discards all chunks.
func (a *Assembler) Reset() {
	a.pending = Layout{}
	a.layout = Layout{}
	a.chunks = nil
	a.state = Unconfigured
}

func (a *Assembler) checkInput(layout Layout, in Input) error {
	if in.Elevation == nil || in.Temperature == nil {
		return &terrain.ConfigError{Field: "input", Value: nil, Reason: "elevation and temperature are required"}
	}
	if in.Classifier == nil {
		return &terrain.ConfigError{Field: "input", Value: nil, Reason: "classifier is required"}
	}
	if a.Curve == nil {
		return &terrain.ConfigError{Field: "curve", Value: nil, Reason: "required"}
	}
	if !in.Elevation.SameSize(in.Temperature) {
		return &terrain.DimensionError{
			Width:       in.Elevation.Width(),
			Height:      in.Elevation.Height(),
			OtherWidth:  in.Temperature.Width(),
			OtherHeight: in.Temperature.Height(),
		}
	}

	// One vertex more than quads along each axis
	width, height := layout.Width+1, layout.Height+1
	if a.Orientation == ZX {
		width, height = height, width
	}
	if in.Elevation.Width() < width || in.Elevation.Height() < height {
		return &terrain.ConfigError{
			Field:  "grid size",
			Value:  fmt.Sprintf("%dx%d", in.Elevation.Width(), in.Elevation.Height()),
			Reason: fmt.Sprintf("need at least %dx%d vertices", width, height),
		}
	}
	return nil
}

func (a *Assembler) sample(g *terrain.Grid, gx, gz int) (float32, error) {
	if a.Orientation == ZX {
		return g.Sample(gz, gx)
	}
	return g.Sample(gx, gz)
}

func (a *Assembler) buildChunk(layout Layout, n, m int, in Input) (*Chunk, error) {
	c := newChunk(layout, n, m)

	for i, z := 0, 0; z <= c.Height; z++ {
		for x := 0; x <= c.Width; x, i = x+1, i+1 {
			gx, gz := layout.Global(n, m, x, z)

			height, err := a.sample(in.Elevation, gx, gz)
			if err != nil {
				return nil, fmt.Errorf("chunk (%d, %d) elevation: %w", n, m, err)
			}
			temperature, err := a.sample(in.Temperature, gx, gz)
			if err != nil {
				return nil, fmt.Errorf("chunk (%d, %d) temperature: %w", n, m, err)
			}

			actualHeight := a.Curve.Evaluate(height) * a.VerticalScale

			c.Vertices[i] = vec3(float32(x), actualHeight, float32(z))
			// Axes are swapped to match the sampling convention
			c.UVs[i] = vec2(float32(gz)/float32(layout.Height), float32(gx)/float32(layout.Width))
			c.Biomes[i] = terrain.BiomeSample{
				NormalizedHeight: height,
				ActualHeight:     actualHeight,
				Temperature:      temperature,
				Color:            in.Classifier.Color(height, temperature),
			}
		}
	}

	c.Triangles = triangles(c.Width, c.Height)
	return c, nil
}

// triangles winds two triangles per quad of a (xSize+1)*(zSize+1) vertex grid.
func triangles(xSize, zSize int) [][3]uint32 {
	tris := make([][3]uint32, 0, xSize*zSize*2)
	row := uint32(xSize + 1)

	var v uint32
	for z := 0; z < zSize; z++ {
		for x := 0; x < xSize; x++ {
			tris = append(tris,
				[3]uint32{v, v + row, v + 1},
				[3]uint32{v + 1, v + row, v + row + 1},
			)
			v++
		}
		v++
	}
	return tris
}

// Layout returns the layout of the built chunks.
func (a *Assembler) Layout() Layout {
	return a.layout
}

// Chunks returns the built chunks ordered by column then row.
func (a *Assembler) Chunks() []*Chunk {
	chunks := make([]*Chunk, len(a.chunks))
	copy(chunks, a.chunks)
	return chunks
}

// Chunk returns built chunk (n, m).
func (a *Assembler) Chunk(n, m int) (*Chunk, bool) {
	if a.chunks == nil || n < 0 || m < 0 || n >= a.layout.Columns || m >= a.layout.Rows {
		return nil, false
	}
	return a.chunks[n*a.layout.Rows+m], true
}

// BiomeAt returns the biome sample of the vertex at floor(worldX), floor(worldZ).
// The owning chunk is floor(worldX / maxChunkSize), floor(worldZ / maxChunkSize).
func (a *Assembler) BiomeAt(worldX, worldZ float32) (terrain.BiomeSample, bool) {
	p := world.Vec2f{X: worldX, Y: worldZ}.Floor()
	if a.chunks == nil || !a.layout.Bounds().ContainsPoint(p) {
		return terrain.BiomeSample{}, false
	}

	n, m, x, z, ok := a.layout.Locate(int(p.X), int(p.Y))
	if !ok {
		return terrain.BiomeSample{}, false
	}
	c, _ := a.Chunk(n, m)
	return c.Biome(x, z), true
}
