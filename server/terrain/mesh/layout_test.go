// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"errors"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		width, height, maxChunkSize int
		columns, rows               int
		lastWidth, lastHeight       int
	}{
		{450, 450, 204, 3, 3, 42, 42},
		{408, 100, 204, 2, 1, 204, 100},
		{1, 1, 204, 1, 1, 1, 1},
		{10, 7, 3, 4, 3, 1, 1},
		{9, 9, 3, 3, 3, 3, 3},
	}

	for _, test := range tests {
		layout, err := Partition(test.width, test.height, test.maxChunkSize)
		if err != nil {
			t.Fatal(err)
		}
		if layout.Columns != test.columns || layout.Rows != test.rows {
			t.Errorf("expected %dx%d chunks for %dx%d/%d, got %dx%d", test.columns, test.rows,
				test.width, test.height, test.maxChunkSize, layout.Columns, layout.Rows)
		}

		// Every chunk but the last is full size
		for n := 0; n < layout.Columns-1; n++ {
			if w, _ := layout.ChunkSize(n, 0); w != test.maxChunkSize {
				t.Errorf("expected column %d width %d, got %d", n, test.maxChunkSize, w)
			}
		}
		w, h := layout.ChunkSize(layout.Columns-1, layout.Rows-1)
		if w != test.lastWidth || h != test.lastHeight {
			t.Errorf("expected last chunk %dx%d, got %dx%d", test.lastWidth, test.lastHeight, w, h)
		}
	}
}

func TestPartition_450(t *testing.T) {
	layout, _ := Partition(450, 10, 204)
	expected := []int{204, 204, 42}
	if layout.Columns != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), layout.Columns)
	}
	for n, e := range expected {
		if w, _ := layout.ChunkSize(n, 0); w != e {
			t.Errorf("expected column %d width %d, got %d", n, e, w)
		}
	}
}

func TestPartition_Invalid(t *testing.T) {
	tests := []struct {
		width, height, maxChunkSize int
	}{
		{100, 100, 0},
		{100, 100, -1},
		{100, 100, 255}, // 256*256 vertices
		{0, 100, 204},
		{100, -5, 204},
	}

	for _, test := range tests {
		_, err := Partition(test.width, test.height, test.maxChunkSize)
		var configErr *terrain.ConfigError
		if !errors.As(err, &configErr) {
			t.Errorf("expected Partition(%d, %d, %d) config error, got %v", test.width, test.height, test.maxChunkSize, err)
		}
	}

	// Largest size under the limit
	if err := ValidateMaxChunkSize(254); err != nil {
		t.Errorf("expected 254 to be valid, got %v", err)
	}
}

// Every vertex of every chunk must map into the (width+1)*(height+1) vertex grid,
// and every global vertex must be covered.
func TestPartition_InBounds(t *testing.T) {
	for maxChunkSize := 1; maxChunkSize <= 9; maxChunkSize++ {
		for width := 1; width <= 25; width++ {
			for height := 1; height <= 25; height += 3 {
				layout, err := Partition(width, height, maxChunkSize)
				if err != nil {
					t.Fatal(err)
				}

				covered := make([]bool, (width+1)*(height+1))
				for n := 0; n < layout.Columns; n++ {
					for m := 0; m < layout.Rows; m++ {
						w, h := layout.ChunkSize(n, m)
						if w <= 0 || h <= 0 || w > maxChunkSize || h > maxChunkSize {
							t.Fatalf("chunk (%d, %d) of %dx%d/%d has size %dx%d", n, m, width, height, maxChunkSize, w, h)
						}
						for z := 0; z <= h; z++ {
							for x := 0; x <= w; x++ {
								gx, gz := layout.Global(n, m, x, z)
								if gx < 0 || gz < 0 || gx > width || gz > height {
									t.Fatalf("chunk (%d, %d) vertex (%d, %d) maps outside %dx%d: (%d, %d)", n, m, x, z, width, height, gx, gz)
								}
								covered[gx+gz*(width+1)] = true
							}
						}
					}
				}

				for i, c := range covered {
					if !c {
						t.Fatalf("%dx%d/%d: vertex %d not covered", width, height, maxChunkSize, i)
					}
				}
			}
		}
	}
}

func TestLayout_Locate(t *testing.T) {
	layout, _ := Partition(450, 408, 204)

	tests := []struct {
		gx, gz      int
		n, m, x, z int
		ok          bool
	}{
		{0, 0, 0, 0, 0, 0, true},
		{203, 5, 0, 0, 203, 5, true},
		{204, 5, 1, 0, 0, 5, true},
		{450, 408, 2, 1, 42, 204, true},
		{451, 0, 0, 0, 0, 0, false},
		{-1, 0, 0, 0, 0, 0, false},
	}

	for _, test := range tests {
		n, m, x, z, ok := layout.Locate(test.gx, test.gz)
		if ok != test.ok {
			t.Errorf("expected Locate(%d, %d) ok %v", test.gx, test.gz, test.ok)
			continue
		}
		if ok && (n != test.n || m != test.m || x != test.x || z != test.z) {
			t.Errorf("expected Locate(%d, %d): (%d, %d) (%d, %d), got (%d, %d) (%d, %d)",
				test.gx, test.gz, test.n, test.m, test.x, test.z, n, m, x, z)
		}
	}
}
