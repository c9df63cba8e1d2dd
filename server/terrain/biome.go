// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/world"
	"math"
)

// Band is a height threshold with the colors of the terrain below it.
type Band struct {
	Name   string   `json:"name"`
	Height float32  `json:"height"` // upper bound (inclusive)
	Color  ColorVec `json:"color"`
	Shaded ColorVec `json:"shaded"`
}

// Bands are scanned in order; the first band whose Height >= h wins.
// Order is authoritative even if heights are not sorted.
type Bands []Band

// DefaultBands returns the default ocean to snow ramp.
func DefaultBands() Bands {
	return Bands{
		{Name: "deep water", Height: DeepLevel, Color: RGB(0, 50, 115), Shaded: RGB(0, 30, 80)},
		{Name: "water", Height: OceanLevel, Color: RGB(0, 75, 130), Shaded: RGB(0, 50, 100)},
		{Name: "sand", Height: SandLevel, Color: RGB(194, 178, 128), Shaded: RGB(150, 135, 90)},
		{Name: "grass", Height: GrassLevel, Color: RGB(90, 180, 30), Shaded: RGB(50, 120, 20)},
		{Name: "forest", Height: ForestLevel, Color: RGB(50, 120, 30), Shaded: RGB(30, 80, 20)},
		{Name: "rock", Height: RockLevel, Color: RGB(105, 110, 115), Shaded: RGB(70, 70, 75)},
		{Name: "snow", Height: SnowLevel, Color: Gray(220), Shaded: Gray(170)},
	}
}

// Classify returns the band of height h.
// Heights above every bound fall into the last band, and empty Bands return a zero Band.
func (bands Bands) Classify(h float32) Band {
	for _, band := range bands {
		if h <= band.Height {
			return band
		}
	}
	if len(bands) == 0 {
		return Band{}
	}
	return bands[len(bands)-1]
}

// Color returns the color of height h, optionally shaded towards the band's darker color.
func (bands Bands) Color(h float32, shaded bool) ColorVec {
	band := bands.Classify(h)
	if !shaded {
		return band.Color
	}
	return band.Color.Lerp(band.Shaded, world.Clamp01((1.1-h)*1.5))
}

// Palette is a read-only image indexed by (temperature, height).
type Palette struct {
	width  int
	height int
	pixels []ColorVec // pixels[x+y*width]
}

// NewPalette copies pixels (x+y*width order) into a palette.
func NewPalette(width, height int, pixels []ColorVec) (*Palette, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, &ConfigError{Field: "palette", Value: len(pixels), Reason: "length must equal width*height"}
	}

	p := &Palette{width: width, height: height, pixels: make([]ColorVec, len(pixels))}
	copy(p.pixels, pixels)
	return p, nil
}

func (p *Palette) Width() int {
	return p.width
}

func (p *Palette) Height() int {
	return p.height
}

// Pixel returns the palette color at (x, y), clamped to the palette bounds.
func (p *Palette) Pixel(x, y int) ColorVec {
	x = clampInt(x, 0, p.width-1)
	y = clampInt(y, 0, p.height-1)
	return p.pixels[x+y*p.width]
}

// Lookup returns the nearest pixel to (t*width, h*height) with h and t clamped to [0, 0.99].
func (p *Palette) Lookup(h, t float32) ColorVec {
	h = clamp(h, 0, 0.99)
	t = clamp(t, 0, 0.99)
	x := int(math.Round(float64(t * float32(p.width))))
	y := int(math.Round(float64(h * float32(p.height))))
	return p.Pixel(x, y)
}

// Classifier colors a (height, temperature) sample.
// The palette takes precedence; Bands are the fallback.
type Classifier struct {
	Bands   Bands
	Palette *Palette
	Shaded  bool
}

func (c *Classifier) Color(h, t float32) ColorVec {
	if c.Palette != nil {
		return c.Palette.Lookup(h, t)
	}
	return c.Bands.Color(h, c.Shaded)
}

// BiomeSample is the terrain data of one vertex.
type BiomeSample struct {
	NormalizedHeight float32  `json:"normalizedHeight"`
	ActualHeight     float32  `json:"actualHeight"` // after the height curve, in meters
	Temperature      float32  `json:"temperature"`
	Color            ColorVec `json:"color"`
}

// ActualTemperature is the temperature in degrees Celsius.
func (s BiomeSample) ActualTemperature() float32 {
	return s.Temperature*80 - 30
}

func (s BiomeSample) String() string {
	return fmt.Sprintf("Height: %.2f (%.2fm)\nTemperature: %.2f (%.1f°C)\nBiome Colour: %s",
		s.NormalizedHeight, s.ActualHeight, s.Temperature, s.ActualTemperature(), s.Color)
}

func clamp(f, minimum, maximum float32) float32 {
	if f < minimum {
		return minimum
	}
	if f > maximum {
		return maximum
	}
	return f
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
