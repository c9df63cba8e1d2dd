// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/terragen/server/world"
	"github.com/chewxy/math32"
	"math"
)

// Grid is a dense width*height scalar field.
// Every value is in [0, 1]; writes are clamped, never rejected.
// A Grid is never mutated after construction, so it is safe to share between goroutines.
type Grid struct {
	width  int
	height int
	values []float32 // values[x+y*width]
}

// NewGrid returns a zeroed grid.
func NewGrid(width, height int) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return newGrid(width, height), nil
}

// FromValues copies and clamps values (in x+y*width order) into a new grid.
func FromValues(width, height int, values []float32) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(values) != width*height {
		return nil, &ConfigError{Field: "values", Value: len(values), Reason: "length must equal width*height"}
	}

	g := newGrid(width, height)
	for i, v := range values {
		g.values[i] = world.Clamp01(v)
	}
	return g, nil
}

// GridFunc builds a grid by evaluating f at every cell.
func GridFunc(width, height int, f func(x, y int) float32) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	g := newGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.set(x, y, f(x, y))
		}
	}
	return g, nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		values: make([]float32, width*height),
	}
}

func checkSize(width, height int) error {
	if width <= 0 {
		return &ConfigError{Field: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return &ConfigError{Field: "height", Value: height, Reason: "must be positive"}
	}
	return nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// At returns the value at (x, y). It panics with an *IndexError if out of range.
func (g *Grid) At(x, y int) float32 {
	v, err := g.Sample(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// Sample returns the value at (x, y), or an *IndexError if out of range.
func (g *Grid) Sample(x, y int) (float32, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, &IndexError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.values[x+y*g.width], nil
}

// set is the only write path.
func (g *Grid) set(x, y int, v float32) {
	g.values[x+y*g.width] = world.Clamp01(v)
}

// Values returns a copy of the cells in x+y*width order.
func (g *Grid) Values() []float32 {
	values := make([]float32, len(g.values))
	copy(values, g.values)
	return values
}

// Range returns the minimum and maximum cell.
func (g *Grid) Range() (minimum, maximum float32) {
	minimum = math.MaxFloat32
	maximum = -math.MaxFloat32
	for _, v := range g.values {
		if v < minimum {
			minimum = v
		}
		if v > maximum {
			maximum = v
		}
	}
	return
}

// SameSize is true if both grids have equal width and height.
func (g *Grid) SameSize(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}

// Equal is true if both grids have the same size and bit-identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for i, v := range g.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is like Equal with an absolute tolerance per cell.
func (g *Grid) ApproxEqual(other *Grid, tolerance float32) bool {
	if !g.SameSize(other) {
		return false
	}
	for i, v := range g.values {
		if math32.Abs(v-other.values[i]) > tolerance {
			return false
		}
	}
	return true
}
