// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import "math"

// Vec2f is a position or offset on the terrain plane.
// X runs along the terrain width and Y along its depth (world Z).
type Vec2f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

// InverseLerp maps value from [a, b] to [0, 1], clamped.
// Returns 0 if a == b.
func InverseLerp(a, b, value float32) float32 {
	if a == b {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

func (vec Vec2f) Floor() Vec2f {
	// Use math.Floor instead because it uses assembly
	vec.X = float32(math.Floor(float64(vec.X)))
	vec.Y = float32(math.Floor(float64(vec.Y)))
	return vec
}
