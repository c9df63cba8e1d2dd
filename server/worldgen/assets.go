// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
)

// Assets are the decoded images a Config refers to.
type Assets struct {
	Masks
	Palette *terrain.Palette
}

// AssetLoader resolves the asset paths of a Config.
type AssetLoader interface {
	Load(cfg *Config) (Assets, error)
}

// DirLoader loads PNG or JPEG assets relative to a directory.
type DirLoader string

func (dir DirLoader) Load(cfg *Config) (assets Assets, err error) {
	if assets.Island, err = dir.mask("island mask", cfg.IslandMask); err != nil {
		return
	}
	if assets.Secondary, err = dir.mask("secondary mask", cfg.SecondaryMask); err != nil {
		return
	}
	if assets.Temperature, err = dir.mask("temperature mask", cfg.TemperatureMask); err != nil {
		return
	}
	if cfg.Palette != "" {
		var img image.Image
		if img, err = dir.decode(cfg.Palette); err != nil {
			return assets, fmt.Errorf("palette: %w", err)
		}
		if assets.Palette, err = terrain.PaletteFromImage(img); err != nil {
			return assets, fmt.Errorf("palette: %w", err)
		}
	}
	return
}

func (dir DirLoader) mask(name, path string) (*terrain.Grid, error) {
	if path == "" {
		return nil, nil
	}
	img, err := dir.decode(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	g, err := terrain.MaskFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

func (dir DirLoader) decode(path string) (image.Image, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(dir), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// StaticAssets ignores the paths of a Config and always returns the same assets.
type StaticAssets Assets

func (assets StaticAssets) Load(*Config) (Assets, error) {
	return Assets(assets), nil
}
