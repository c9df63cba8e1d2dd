// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/SoftbearStudios/terragen/server/world"

// Grid algebra. Every function returns a new grid and leaves its operands untouched.
// Results are clamped after every step, so the order of a chain matters.

// Invert returns 1-a.
func Invert(a *Grid) *Grid {
	return a.mapValues(func(v float32) float32 {
		return 1 - v
	})
}

// Normalize stretches a so that its minimum becomes 0 and its maximum 1.
// A flat grid normalizes to all zeros.
func Normalize(a *Grid) *Grid {
	minimum, maximum := a.Range()
	return a.mapValues(func(v float32) float32 {
		return world.InverseLerp(minimum, maximum, v)
	})
}

// Blend returns the average of a and b.
func Blend(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(va, vb float32) float32 {
		return va*0.5 + vb*0.5
	})
}

// Sum returns a+b.
func Sum(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(va, vb float32) float32 {
		return va + vb
	})
}

// Difference returns a-b.
func Difference(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(va, vb float32) float32 {
		return va - vb
	})
}

func AddScalar(a *Grid, k float32) *Grid {
	return a.mapValues(func(v float32) float32 {
		return v + k
	})
}

func SubScalar(a *Grid, k float32) *Grid {
	return a.mapValues(func(v float32) float32 {
		return v - k
	})
}

func MulScalar(a *Grid, k float32) *Grid {
	return a.mapValues(func(v float32) float32 {
		return v * k
	})
}

// DivScalar returns a/k. Dividing by zero saturates positive cells to 1 and zero cells to 0.
func DivScalar(a *Grid, k float32) *Grid {
	return a.mapValues(func(v float32) float32 {
		return v / k
	})
}

func (g *Grid) mapValues(f func(v float32) float32) *Grid {
	out := newGrid(g.width, g.height)
	for i, v := range g.values {
		out.values[i] = world.Clamp01(f(v))
	}
	return out
}

func zip(a, b *Grid, f func(va, vb float32) float32) (*Grid, error) {
	if !a.SameSize(b) {
		return nil, &DimensionError{
			Width:       a.width,
			Height:      a.height,
			OtherWidth:  b.width,
			OtherHeight: b.height,
		}
	}

	out := newGrid(a.width, a.height)
	for i, va := range a.values {
		out.values[i] = world.Clamp01(f(va, b.values[i]))
	}
	return out, nil
}
