// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"image"
	"strings"
)

// DrawMode selects which field a display renders.
type DrawMode int

const (
	DrawHeight DrawMode = iota
	DrawColour
	DrawTemperature
	DrawMoisture
	DrawIsland
	DrawBiome
)

var drawModeNames = [...]string{
	DrawHeight:      "height",
	DrawColour:      "colour",
	DrawTemperature: "temperature",
	DrawMoisture:    "moisture",
	DrawIsland:      "island",
	DrawBiome:       "biome",
}

var drawModeAliases = map[string]DrawMode{
	"noise": DrawHeight,
	"color": DrawColour,
}

// DrawModes lists every draw mode.
func DrawModes() []DrawMode {
	modes := make([]DrawMode, len(drawModeNames))
	for i := range modes {
		modes[i] = DrawMode(i)
	}
	return modes
}

func ParseDrawMode(name string) (DrawMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range drawModeNames {
		if n == name {
			return DrawMode(i), nil
		}
	}
	if mode, ok := drawModeAliases[name]; ok {
		return mode, nil
	}
	return 0, &ConfigError{Field: "draw mode", Value: name, Reason: "unknown"}
}

func (mode DrawMode) String() string {
	if mode < 0 || int(mode) >= len(drawModeNames) {
		return fmt.Sprintf("DrawMode(%d)", int(mode))
	}
	return drawModeNames[mode]
}

// GradientKey is a color stop of a Gradient.
type GradientKey struct {
	Time  float32
	Color ColorVec
}

// Gradient blends linearly between keys sorted by Time.
type Gradient []GradientKey

// TemperatureGradient runs from freezing (pale pink) to scorching (dark red).
var TemperatureGradient = Gradient{
	{0, RGB(254, 245, 255)},
	{0.12, RGB(255, 51, 223)},
	{0.28, RGB(2, 13, 195)},
	{0.47, RGB(25, 196, 236)},
	{0.62, RGB(185, 242, 107)},
	{0.75, RGB(233, 175, 11)},
	{0.87, RGB(242, 29, 29)},
	{1, RGB(138, 5, 5)},
}

func (gradient Gradient) Evaluate(t float32) ColorVec {
	if len(gradient) == 0 {
		return ColorVec{}
	}
	if t <= gradient[0].Time {
		return gradient[0].Color
	}
	for i := 1; i < len(gradient); i++ {
		next := gradient[i]
		if t == next.Time {
			return next.Color
		}
		if t < next.Time {
			prev := gradient[i-1]
			return prev.Color.Lerp(next.Color, (t-prev.Time)/(next.Time-prev.Time))
		}
	}
	return gradient[len(gradient)-1].Color
}

var (
	black  = Gray(0)
	white  = Gray(255)
	yellow = RGB(255, 235, 4)
	cyan   = RGB(0, 255, 255)
)

// RenderFunc renders a grid by mapping each cell to a color.
func RenderFunc(g *Grid, f func(v float32) ColorVec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for j := 0; j < g.height; j++ {
		for i := 0; i < g.width; i++ {
			img.SetRGBA(i, j, f(g.values[i+j*g.width]).Color())
		}
	}
	return img
}

// RenderHeight renders g from black (0) to white (1).
func RenderHeight(g *Grid) *image.RGBA {
	return RenderFunc(g, func(v float32) ColorVec {
		return black.Lerp(white, v)
	})
}

func RenderTemperature(g *Grid) *image.RGBA {
	return RenderFunc(g, TemperatureGradient.Evaluate)
}

// RenderMoisture renders g from yellow (dry) to cyan (wet).
func RenderMoisture(g *Grid) *image.RGBA {
	return RenderFunc(g, func(v float32) ColorVec {
		return yellow.Lerp(cyan, v)
	})
}

// RenderBands colors g by height band.
func RenderBands(g *Grid, bands Bands, shaded bool) *image.RGBA {
	return RenderFunc(g, func(v float32) ColorVec {
		return bands.Color(v, shaded)
	})
}

// RenderBiomes colors every cell with the classifier given height and temperature.
func RenderBiomes(height, temperature *Grid, classifier *Classifier) (*image.RGBA, error) {
	if !height.SameSize(temperature) {
		return nil, &DimensionError{
			Width:       height.width,
			Height:      height.height,
			OtherWidth:  temperature.width,
			OtherHeight: temperature.height,
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, height.width, height.height))
	for j := 0; j < height.height; j++ {
		for i := 0; i < height.width; i++ {
			k := i + j*height.width
			img.SetRGBA(i, j, classifier.Color(height.values[k], temperature.values[k]).Color())
		}
	}
	return img, nil
}
