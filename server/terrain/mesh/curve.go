// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/world"
)

// Curve remaps a normalized height before vertical scaling.
type Curve interface {
	Evaluate(t float32) float32
}

// CurveFunc adapts a function to a Curve.
type CurveFunc func(t float32) float32

func (f CurveFunc) Evaluate(t float32) float32 {
	return f(t)
}

// Linear is the identity curve.
var Linear Curve = CurveFunc(func(t float32) float32 {
	return t
})

// Key is a control point of Keyframes.
type Key struct {
	Time  float32 `json:"time"`
	Value float32 `json:"value"`
}

// Keyframes eases between keys with smoothstep. Keys must be sorted by Time.
// Outside the first and last key the curve is flat.
type Keyframes []Key

// DefaultCurve flattens the sea floor and shore and raises land steeply.
func DefaultCurve() Keyframes {
	return Keyframes{
		{Time: 0, Value: 0},
		{Time: terrain.OceanLevel, Value: 0.05},
		{Time: terrain.SandLevel, Value: 0.08},
		{Time: 1, Value: 1},
	}
}

func (keys Keyframes) Validate() error {
	if len(keys) == 0 {
		return &terrain.ConfigError{Field: "curve", Value: 0, Reason: "needs at least one key"}
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Time <= keys[i-1].Time {
			return &terrain.ConfigError{Field: "curve", Value: keys[i].Time, Reason: "key times must be increasing"}
		}
		if keys[i].Value < keys[i-1].Value {
			return &terrain.ConfigError{Field: "curve", Value: keys[i].Value, Reason: "key values must not decrease"}
		}
	}
	return nil
}

func (keys Keyframes) Evaluate(t float32) float32 {
	if len(keys) == 0 {
		return t
	}
	if t <= keys[0].Time {
		return keys[0].Value
	}
	for i := 1; i < len(keys); i++ {
		next := keys[i]
		if t == next.Time {
			return next.Value
		}
		if t < next.Time {
			prev := keys[i-1]
			return world.Lerp(prev.Value, next.Value, smoothstep(world.InverseLerp(prev.Time, next.Time, t)))
		}
	}
	return keys[len(keys)-1].Value
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
