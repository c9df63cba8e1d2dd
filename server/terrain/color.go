// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/world"
	"image/color"
	"strconv"
)

// ColorVec is a linear RGBA color with channels in [0, 1].
type ColorVec [4]float32

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	return RGBA(r, g, b, 255)
}

func RGBA(r, g, b, a byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor, float32(a) * factor}
}

// ColorVecOf converts any color.Color to a (non-premultiplied) ColorVec.
func ColorVecOf(c color.Color) ColorVec {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (vec ColorVec) String() string {
	return fmt.Sprintf("RGBA(%.3f, %.3f, %.3f, %.3f)", vec[0], vec[1], vec[2], vec[3])
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] = world.Lerp(vec[i], other[i], factor)
	}
	return vec
}

// Grayscale is the perceived luminance of the color.
func (vec ColorVec) Grayscale() float32 {
	return 0.299*vec[0] + 0.587*vec[1] + 0.114*vec[2]
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: floatToByte(vec[3])}
}

// Hex formats the color as #rrggbbaa.
func (vec ColorVec) Hex() string {
	c := vec.Color()
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses #rrggbb or #rrggbbaa.
func ParseHex(s string) (ColorVec, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return ColorVec{}, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorVec{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGBA(byte(n>>24), byte(n>>16), byte(n>>8), byte(n)), nil
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f*255 + 0.5)
}
