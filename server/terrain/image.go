// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "image"

// MaskFromImage converts an already decoded image to a grid of its grayscale values.
func MaskFromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	return GridFunc(bounds.Dx(), bounds.Dy(), func(x, y int) float32 {
		return ColorVecOf(img.At(bounds.Min.X+x, bounds.Min.Y+y)).Grayscale()
	})
}

// PaletteFromImage copies an already decoded image into a Palette.
func PaletteFromImage(img image.Image) (*Palette, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]ColorVec, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels = append(pixels, ColorVecOf(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return NewPalette(width, height, pixels)
}
