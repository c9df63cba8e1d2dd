// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain holds the scalar grid, its algebra and biome classification.
package terrain

import (
	"github.com/SoftbearStudios/terragen/server/world"
	"sync"
)

// Data describes part of a heightmap quantized to bytes.
// It may be in a compressed format.
type Data struct {
	world.AABB
	Data   []byte `json:"data"`   // Data is a possibly compressed terrain heightmap.
	Stride int    `json:"stride"` // Stride is width of Data.
	Length int    `json:"length"` // Length is uncompressed length of Data for faster reading.
}

var dataPool = sync.Pool{
	New: func() interface{} {
		return &Data{
			Data: make([]byte, 0, 2048),
		}
	},
}

func NewData() *Data {
	return dataPool.Get().(*Data)
}

func (data *Data) Pool() {
	*data = Data{
		Data: data.Data[:0],
	}
	dataPool.Put(data)
}

// Bytes quantizes the rectangle (x, y, width, height) of g to bytes (0 -> 0, 1 -> 255).
// The rectangle is clamped to the grid.
func (g *Grid) Bytes(x, y, width, height int) (buf []byte, stride int) {
	x = clampInt(x, 0, g.width)
	y = clampInt(y, 0, g.height)
	width = clampInt(width, 0, g.width-x)
	height = clampInt(height, 0, g.height-y)

	buf = make([]byte, 0, width*height)
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			buf = append(buf, floatToByte(g.values[i+j*g.width]))
		}
	}
	return buf, width
}
