// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"errors"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/mesh"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"width", func(cfg *Config) { cfg.Noise.Width = 1 }},
		{"height", func(cfg *Config) { cfg.Noise.Height = MaxMapSize + 1 }},
		{"scale", func(cfg *Config) { cfg.Noise.Scale = 0 }},
		{"max scale", func(cfg *Config) { cfg.Noise.Scale = MaxScale + 1 }},
		{"octaves", func(cfg *Config) { cfg.Noise.Octaves = MaxOctaves + 1 }},
		{"persistence", func(cfg *Config) { cfg.Noise.Persistence = 1.5 }},
		{"lacunarity", func(cfg *Config) { cfg.Noise.Lacunarity = -0.5 }},
		{"max lacunarity", func(cfg *Config) { cfg.Noise.Lacunarity = MaxLacunarity + 1 }},
		{"basis", func(cfg *Config) { cfg.Noise.Basis = "worley" }},
		{"maxChunkSize", func(cfg *Config) { cfg.MaxChunkSize = 255 }},
		{"verticalScale", func(cfg *Config) { cfg.VerticalScale = 0 }},
		{"curve", func(cfg *Config) { cfg.Curve = mesh.Keyframes{{Time: 1, Value: 0}, {Time: 0, Value: 1}} }},
		{"bands", func(cfg *Config) { cfg.Bands = nil }},
	}

	for _, test := range tests {
		cfg := DefaultConfig()
		test.modify(&cfg)

		var configErr *terrain.ConfigError
		if err := cfg.Validate(); !errors.As(err, &configErr) {
			t.Errorf("%s: expected config error, got %v", test.name, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	const input = `{
		"noise": {"seed": 42, "width": 65, "height": 33, "scale": 20, "octaves": 3, "persistence": 0.4, "lacunarity": 2.5, "basis": "simplex"},
		"bands": [
			{"name": "water", "height": 0.4, "color": "#004b82", "shaded": [0, 0.2, 0.4]},
			{"name": "land", "height": 1, "color": "#5ab41eff", "shaded": "#326414"}
		],
		"transposed": true
	}`

	cfg, err := LoadConfig(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Noise.Seed != 42 || cfg.Noise.Width != 65 || cfg.Noise.Basis != "simplex" {
		t.Errorf("expected noise config to be decoded, got %+v", cfg.Noise)
	}
	if !cfg.Transposed {
		t.Error("expected transposed")
	}

	// Defaults are kept
	if cfg.MaxChunkSize != mesh.DefaultMaxChunkSize {
		t.Errorf("expected default max chunk size, got %d", cfg.MaxChunkSize)
	}

	if len(cfg.Bands) != 2 {
		t.Fatalf("expected 2 bands, got %d", len(cfg.Bands))
	}
	if expected := terrain.RGB(0, 75, 130); cfg.Bands[0].Color != expected {
		t.Errorf("expected %s, got %s", expected, cfg.Bands[0].Color)
	}
	if expected := (terrain.ColorVec{0, 0.2, 0.4, 1}); cfg.Bands[0].Shaded != expected {
		t.Errorf("expected %s, got %s", expected, cfg.Bands[0].Shaded)
	}
	if expected := terrain.RGB(50, 100, 20); cfg.Bands[1].Shaded != expected {
		t.Errorf("expected %s, got %s", expected, cfg.Bands[1].Shaded)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []string{
		`{"noise": {"width": 0}}`,
		`{"unknown": 1}`,
		`{"bands": [{"color": "#nothex"}]}`,
		`{"bands": [{"color": 5}]}`,
		`not json`,
	}

	for _, input := range tests {
		if _, err := LoadConfig(strings.NewReader(input)); err == nil {
			t.Errorf("expected LoadConfig(%s) to fail", input)
		}
	}
}

func TestColorVec_JSON(t *testing.T) {
	band := terrain.Band{Name: "sand", Height: 0.45, Color: terrain.RGB(194, 178, 128), Shaded: terrain.RGBA(1, 2, 3, 4)}

	buf, err := json.Marshal(band)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), `"#c2b280ff"`) || !strings.Contains(string(buf), `"#01020304"`) {
		t.Errorf("expected hex colors, got %s", buf)
	}

	var decoded terrain.Band
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != band {
		t.Errorf("expected %+v, got %+v", band, decoded)
	}
}
