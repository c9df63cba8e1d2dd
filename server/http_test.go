// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/compressed"
	"github.com/SoftbearStudios/terragen/server/terrain/mesh"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testHub(t *testing.T) *Hub {
	generator := worldgen.NewGenerator(worldgen.StaticAssets{})
	hub := NewHub(HubOptions{Generator: generator, Config: testConfig()})
	if _, err := generator.Generate(testConfig()); err != nil {
		t.Fatal(err)
	}
	return hub
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestServe_NoModel(t *testing.T) {
	hub := NewHub(HubOptions{Generator: worldgen.NewGenerator(worldgen.StaticAssets{})})
	for _, target := range []string{"/map", "/biome?x=1&z=1", "/chunk?n=0&m=0", "/heightmap"} {
		if code := get(t, hub.Handler(), target).Code; code != http.StatusServiceUnavailable {
			t.Errorf("expected %s to be unavailable, got %d", target, code)
		}
	}
}

func TestServeMap(t *testing.T) {
	handler := testHub(t).Handler()

	for _, mode := range terrain.DrawModes() {
		response := get(t, handler, "/map?mode="+mode.String())
		if response.Code != http.StatusOK {
			t.Fatalf("expected %s to render, got %d", mode, response.Code)
		}
		img, err := png.Decode(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if size := img.Bounds().Size(); size.X != 33 || size.Y != 33 {
			t.Errorf("expected 33x33, got %v", size)
		}
	}

	if code := get(t, handler, "/map?mode=sepia").Code; code != http.StatusBadRequest {
		t.Errorf("expected bad request, got %d", code)
	}
}

func TestServeBiome(t *testing.T) {
	handler := testHub(t).Handler()

	tests := []struct {
		target string
		code   int
	}{
		{"/biome?x=1&z=2.5", http.StatusOK},
		{"/biome?x=32&z=32", http.StatusOK},
		{"/biome?x=33&z=0", http.StatusNotFound},
		{"/biome?x=1", http.StatusBadRequest},
	}

	for _, test := range tests {
		response := get(t, handler, test.target)
		if response.Code != test.code {
			t.Errorf("expected %s: %d, got %d", test.target, test.code, response.Code)
			continue
		}
		if test.code != http.StatusOK {
			continue
		}

		var biome Biome
		if err := json.NewDecoder(response.Body).Decode(&biome); err != nil {
			t.Fatal(err)
		}
		if biome.Sample == nil {
			t.Errorf("expected sample for %s", test.target)
		}
	}
}

func TestServeChunk(t *testing.T) {
	handler := testHub(t).Handler()

	response := get(t, handler, "/chunk?n=1&m=0")
	if response.Code != http.StatusOK {
		t.Fatalf("expected chunk, got %d", response.Code)
	}

	var chunk mesh.Chunk
	if err := json.NewDecoder(response.Body).Decode(&chunk); err != nil {
		t.Fatal(err)
	}
	if chunk.N != 1 || chunk.M != 0 || len(chunk.Vertices) != 17*17 || len(chunk.Triangles) != 16*16*2 {
		t.Errorf("unexpected chunk (%d, %d) with %d vertices", chunk.N, chunk.M, len(chunk.Vertices))
	}

	if code := get(t, handler, "/chunk?n=2&m=0").Code; code != http.StatusNotFound {
		t.Errorf("expected not found, got %d", code)
	}
}

func TestServeHeightmap(t *testing.T) {
	hub := testHub(t)

	response := get(t, hub.Handler(), "/heightmap")
	if response.Code != http.StatusOK {
		t.Fatalf("expected heightmap, got %d", response.Code)
	}

	var data terrain.Data
	if err := json.NewDecoder(response.Body).Decode(&data); err != nil {
		t.Fatal(err)
	}
	g, err := compressed.DecodeGrid(&data)
	if err != nil {
		t.Fatal(err)
	}
	if !g.ApproxEqual(hub.generator.Model().Fields.Elevation, compressed.Precision) {
		t.Error("expected heightmap to match elevation")
	}
}
