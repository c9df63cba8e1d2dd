// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
)

const (
	// VertexLimit is the most vertices a single chunk mesh may have.
	VertexLimit = 65534

	// DefaultMaxChunkSize is the default number of quads per chunk axis.
	DefaultMaxChunkSize = 204
)

// Layout partitions a width*height quad terrain into chunks of at most MaxChunkSize quads per axis.
// Chunk (n, m) is column n along x and row m along z.
type Layout struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	MaxChunkSize int `json:"maxChunkSize"`
	Columns      int `json:"columns"`
	Rows         int `json:"rows"`
}

// ValidateMaxChunkSize checks that a chunk of maxChunkSize quads per axis fits under VertexLimit.
func ValidateMaxChunkSize(maxChunkSize int) error {
	if maxChunkSize <= 0 {
		return &terrain.ConfigError{Field: "maxChunkSize", Value: maxChunkSize, Reason: "must be positive"}
	}
	if vertices := (maxChunkSize + 1) * (maxChunkSize + 1); vertices > VertexLimit {
		return &terrain.ConfigError{Field: "maxChunkSize", Value: maxChunkSize, Reason: "chunk would exceed the vertex limit"}
	}
	return nil
}

// Partition computes the chunk grid.
func Partition(width, height, maxChunkSize int) (Layout, error) {
	if err := ValidateMaxChunkSize(maxChunkSize); err != nil {
		return Layout{}, err
	}
	if width <= 0 {
		return Layout{}, &terrain.ConfigError{Field: "terrain width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return Layout{}, &terrain.ConfigError{Field: "terrain height", Value: height, Reason: "must be positive"}
	}

	return Layout{
		Width:        width,
		Height:       height,
		MaxChunkSize: maxChunkSize,
		Columns:      ceilDiv(width, maxChunkSize),
		Rows:         ceilDiv(height, maxChunkSize),
	}, nil
}

// Chunks is the total number of chunks.
func (l Layout) Chunks() int {
	return l.Columns * l.Rows
}

// ChunkSize returns the number of quads of chunk (n, m) along x and z.
func (l Layout) ChunkSize(n, m int) (width, height int) {
	return l.axisSize(n, l.Width), l.axisSize(m, l.Height)
}

// axisSize is maxChunkSize except for the last chunk, which takes the remainder.
func (l Layout) axisSize(index, total int) int {
	if index < total/l.MaxChunkSize {
		return l.MaxChunkSize
	}
	return total % l.MaxChunkSize
}

// Origin is the global coordinate of local vertex (0, 0) of chunk (n, m).
func (l Layout) Origin(n, m int) (x, z int) {
	return n * l.MaxChunkSize, m * l.MaxChunkSize
}

// Global converts local vertex (x, z) of chunk (n, m) to global vertex coordinates.
// It is the only place chunk-local coordinates are offset, so chunks that share an
// edge read exactly the same cells.
func (l Layout) Global(n, m, x, z int) (gx, gz int) {
	ox, oz := l.Origin(n, m)
	return ox + x, oz + z
}

// Locate returns the chunk and local vertex that own global vertex (gx, gz).
// A vertex on a shared edge resolves to the chunk it starts; the far edge resolves to the last chunk.
func (l Layout) Locate(gx, gz int) (n, m, x, z int, ok bool) {
	if gx < 0 || gz < 0 || gx > l.Width || gz > l.Height {
		return
	}
	n = minInt(gx/l.MaxChunkSize, l.Columns-1)
	m = minInt(gz/l.MaxChunkSize, l.Rows-1)
	ox, oz := l.Origin(n, m)
	return n, m, gx - ox, gz - oz, true
}

// Bounds is the footprint of every vertex on the terrain plane.
func (l Layout) Bounds() world.AABB {
	return world.AABBFrom(0, 0, float32(l.Width), float32(l.Height))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
