// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is the geometry of one chunk. It is read-only once built.
type Chunk struct {
	N      int `json:"n"` // column
	M      int `json:"m"` // row
	Width  int `json:"width"`
	Height int `json:"height"`

	// Origin is the world position of local vertex (0, 0).
	Origin mgl32.Vec3 `json:"origin"`
	// Vertices are relative to Origin, in x+z*(Width+1) order.
	Vertices  []mgl32.Vec3          `json:"vertices"`
	Triangles [][3]uint32           `json:"triangles"`
	UVs       []mgl32.Vec2          `json:"uvs"`
	Biomes    []terrain.BiomeSample `json:"biomes"`
}

func newChunk(layout Layout, n, m int) *Chunk {
	width, height := layout.ChunkSize(n, m)
	ox, oz := layout.Origin(n, m)
	vertices := (width + 1) * (height + 1)

	return &Chunk{
		N:        n,
		M:        m,
		Width:    width,
		Height:   height,
		Origin:   vec3(float32(ox), 0, float32(oz)),
		Vertices: make([]mgl32.Vec3, vertices),
		UVs:      make([]mgl32.Vec2, vertices),
		Biomes:   make([]terrain.BiomeSample, vertices),
	}
}

// Index of local vertex (x, z).
func (c *Chunk) Index(x, z int) int {
	return x + z*(c.Width+1)
}

// Biome returns the sample of local vertex (x, z).
func (c *Chunk) Biome(x, z int) terrain.BiomeSample {
	return c.Biomes[c.Index(x, z)]
}

// WorldVertex returns local vertex (x, z) in world space.
func (c *Chunk) WorldVertex(x, z int) mgl32.Vec3 {
	return c.Origin.Add(c.Vertices[c.Index(x, z)])
}

// Bounds is the chunk's footprint on the terrain plane.
func (c *Chunk) Bounds() world.AABB {
	return world.AABBFrom(c.Origin.X(), c.Origin.Z(), float32(c.Width), float32(c.Height))
}

func vec3(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

func vec2(x, y float32) mgl32.Vec2 {
	return mgl32.Vec2{x, y}
}
