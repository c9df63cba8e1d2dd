// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"errors"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/compressed"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Noise = testNoise()
	cfg.MaxChunkSize = 8
	return cfg
}

func TestGenerate(t *testing.T) {
	model, err := Generate(testConfig(), Assets{})
	if err != nil {
		t.Fatal(err)
	}

	// 32x16 quads
	layout := model.Layout()
	if layout.Columns != 4 || layout.Rows != 2 {
		t.Errorf("expected 4x2 chunks, got %dx%d", layout.Columns, layout.Rows)
	}
	if len(model.Chunks()) != 8 {
		t.Errorf("expected 8 chunks, got %d", len(model.Chunks()))
	}

	for _, mode := range terrain.DrawModes() {
		img, err := model.Render(mode)
		if err != nil {
			t.Fatal(err)
		}
		if size := img.Bounds().Size(); size.X != 33 || size.Y != 17 {
			t.Errorf("expected %s to be 33x17, got %v", mode, size)
		}
	}
	if _, err := model.Render(terrain.DrawMode(100)); err == nil {
		t.Error("expected unknown draw mode to fail")
	}

	biome, ok := model.BiomeAt(31.5, 3.2)
	if !ok {
		t.Fatal("expected biome")
	}
	if h := model.Fields.Elevation.At(31, 3); biome.NormalizedHeight != h {
		t.Errorf("expected height %v, got %v", h, biome.NormalizedHeight)
	}
	if c := model.Classifier.Color(biome.NormalizedHeight, biome.Temperature); biome.Color != c {
		t.Errorf("expected color %s, got %s", c, biome.Color)
	}
}

func TestGenerate_Transposed(t *testing.T) {
	cfg := testConfig()
	cfg.Transposed = true

	model, err := Generate(cfg, Assets{})
	if err != nil {
		t.Fatal(err)
	}

	layout := model.Layout()
	if layout.Width != 16 || layout.Height != 32 {
		t.Errorf("expected 16x32 quads, got %dx%d", layout.Width, layout.Height)
	}

	biome, _ := model.BiomeAt(3, 31)
	if h := model.Fields.Elevation.At(31, 3); biome.NormalizedHeight != h {
		t.Errorf("expected transposed height %v, got %v", h, biome.NormalizedHeight)
	}
}

func TestGenerate_Heightmap(t *testing.T) {
	model, err := Generate(testConfig(), Assets{})
	if err != nil {
		t.Fatal(err)
	}

	data := model.Heightmap()
	defer data.Pool()

	decoded, err := compressed.DecodeGrid(data)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.ApproxEqual(model.Fields.Elevation, compressed.Precision) {
		t.Error("expected heightmap to decode to elevation")
	}
}

func TestGenerate_Palette(t *testing.T) {
	red := terrain.RGB(255, 0, 0)
	palette, err := terrain.NewPalette(1, 1, []terrain.ColorVec{red})
	if err != nil {
		t.Fatal(err)
	}

	model, err := Generate(testConfig(), Assets{Palette: palette})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range model.Chunks() {
		for _, biome := range c.Biomes {
			if biome.Color != red {
				t.Fatalf("expected palette color, got %s", biome.Color)
			}
		}
	}
}

type failingLoader struct{}

var errNoAssets = errors.New("no assets")

func (failingLoader) Load(*Config) (Assets, error) {
	return Assets{}, errNoAssets
}

func TestGenerator_KeepsLastModel(t *testing.T) {
	g := NewGenerator(StaticAssets{})
	if g.Model() != nil {
		t.Error("expected no model")
	}

	first, err := g.Generate(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Model() != first {
		t.Error("expected first model to be current")
	}

	// Invalid config
	bad := testConfig()
	bad.Noise.Octaves = 0
	if _, err := g.Generate(bad); err == nil {
		t.Error("expected invalid config to fail")
	}

	// Mismatched mask
	mask := constantGrid(t, 5, 5, 1)
	g.loader = StaticAssets{Masks: Masks{Island: mask}}
	if _, err := g.Generate(testConfig()); !errors.Is(err, terrain.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}

	g.loader = failingLoader{}
	if _, err := g.Generate(testConfig()); !errors.Is(err, errNoAssets) {
		t.Errorf("expected asset error, got %v", err)
	}

	if g.Model() != first {
		t.Error("expected failures to keep the first model")
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()

	img := image.NewGray(image.Rect(0, 0, 33, 17))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	writePNG(t, filepath.Join(dir, "island.png"), img)

	palette := image.NewRGBA(image.Rect(0, 0, 2, 2))
	palette.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	writePNG(t, filepath.Join(dir, "palette.png"), palette)

	cfg := testConfig()
	cfg.IslandMask = "island.png"
	cfg.Palette = "palette.png"

	assets, err := DirLoader(dir).Load(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if assets.Island == nil || assets.Island.Width() != 33 || assets.Island.At(5, 5) < 0.99 {
		t.Error("expected white island mask")
	}
	if assets.Palette == nil || assets.Palette.Pixel(1, 1) != terrain.RGB(10, 20, 30) {
		t.Error("expected palette pixel")
	}

	cfg.SecondaryMask = "missing.png"
	if _, err := DirLoader(dir).Load(&cfg); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected missing file, got %v", err)
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	a, err := Generate(testConfig(), Assets{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(testConfig(), Assets{})
	if err != nil {
		t.Fatal(err)
	}

	if a.Layout() != b.Layout() {
		t.Fatalf("expected same layout, got %+v and %+v", a.Layout(), b.Layout())
	}
	if !reflect.DeepEqual(a.Chunks(), b.Chunks()) {
		t.Error("expected identical chunks for the same config")
	}
	if !a.Fields.Elevation.Equal(b.Fields.Elevation) || !a.Fields.Temperature.Equal(b.Fields.Temperature) {
		t.Error("expected identical fields for the same config")
	}
}

func TestRandomSeed(t *testing.T) {
	seen := make(map[int64]bool)
	var negative bool
	for i := 0; i < 256; i++ {
		seed := RandomSeed()
		seen[seed] = true
		negative = negative || seed < 0
	}
	if len(seen) < 2 {
		t.Error("expected different seeds")
	}
	if !negative {
		t.Error("expected some negative seeds")
	}
}

func BenchmarkGenerate(b *testing.B) {
	cfg := DefaultConfig()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(cfg, Assets{}); err != nil {
			b.Fatal(err)
		}
	}
}
