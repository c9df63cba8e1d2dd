// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compressed packs heightmaps into 4 bit run length encoded snapshots.
package compressed

import (
	"errors"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
	"io"
)

// Precision is the largest difference between a cell and its decoded value.
const Precision = 16.0 / 255

var errMalformed = errors.New("malformed terrain data")

// Encode compresses the rectangle (x, y, width, height) of g, clamped to the grid.
// The returned data should be pooled when no longer needed.
func Encode(g *terrain.Grid, x, y, width, height int) *terrain.Data {
	raw, stride := g.Bytes(x, y, width, height)

	data := terrain.NewData()
	buffer := Buffer{
		buf: data.Data,
	}
	buffer.Grow(len(raw))
	_, _ = buffer.Write(raw)

	rows := 0
	if stride > 0 {
		rows = len(raw) / stride
	}

	x = clampInt(x, 0, g.Width())
	y = clampInt(y, 0, g.Height())
	data.AABB = world.AABBFrom(float32(x), float32(y), float32(stride), float32(rows))
	data.Data = buffer.Bytes()
	data.Stride = stride
	data.Length = len(raw)
	return data
}

// EncodeGrid compresses all of g.
func EncodeGrid(g *terrain.Grid) *terrain.Data {
	return Encode(g, 0, 0, g.Width(), g.Height())
}

// Decode returns the uncompressed bytes of data.
func Decode(data *terrain.Data) ([]byte, error) {
	if data.Length < 0 || data.Stride < 0 || (data.Stride == 0) != (data.Length == 0) || (data.Stride > 0 && data.Length%data.Stride != 0) {
		return nil, fmt.Errorf("%w: stride %d length %d", errMalformed, data.Stride, data.Length)
	}

	var buffer Buffer
	buffer.Reset(data.Data)

	raw := make([]byte, data.Length)
	if _, err := io.ReadFull(&buffer, raw); err != nil {
		return nil, fmt.Errorf("%w: %s", errMalformed, err)
	}
	return raw, nil
}

// DecodeGrid reconstructs a grid from data, accurate to Precision.
func DecodeGrid(data *terrain.Data) (*terrain.Grid, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if data.Length == 0 {
		return nil, fmt.Errorf("%w: empty", errMalformed)
	}

	width := data.Stride
	return terrain.GridFunc(width, len(raw)/width, func(x, y int) float32 {
		return float32(raw[x+y*width]) * (1.0 / 255)
	})
}

// Ratio is the compressed size of data over its uncompressed size.
func Ratio(data *terrain.Data) float32 {
	if data.Length == 0 {
		return 0
	}
	return float32(len(data.Data)) / float32(data.Length)
}

func clampInt(i, minimum, maximum int) int {
	if i < minimum {
		return minimum
	}
	if i > maximum {
		return maximum
	}
	return i
}
