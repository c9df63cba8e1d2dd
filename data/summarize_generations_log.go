// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"encoding/csv"
	"fmt"
	"github.com/SoftbearStudios/terragen/server"
	"log"
	"os"
	"sort"
)

// This is an internal script used to condense a generation log (server -log flag)
// into mean generation time per map size

type size struct {
	width  int
	height int
}

type totals struct {
	generations int
	millis      int64
	chunks      int
}

func main() {
	// File sourced from server filesystem
	f, err := os.Open("terragen-generations.log")
	if err != nil {
		log.Fatal(err)
	}
	entries, err := server.ReadLog(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	bySize := make(map[size]*totals)
	for _, entry := range entries {
		s := size{width: entry.Width, height: entry.Height}
		t, ok := bySize[s]
		if !ok {
			t = new(totals)
			bySize[s] = t
		}
		t.generations++
		t.millis += entry.Millis
		t.chunks += entry.Chunks
	}

	sizes := make([]size, 0, len(bySize))
	for s := range bySize {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool {
		return sizes[i].width*sizes[i].height < sizes[j].width*sizes[j].height
	})

	o, err := os.Create("terragen-generations.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer o.Close()
	w := csv.NewWriter(o)

	// Header
	_ = w.Write([]string{"width", "height", "generations", "millis", "chunks"})

	for _, s := range sizes {
		t := bySize[s]
		_ = w.Write([]string{
			fmt.Sprint(s.width),
			fmt.Sprint(s.height),
			fmt.Sprint(t.generations),
			fmt.Sprint(float32(t.millis) / float32(t.generations)),
			fmt.Sprint(float32(t.chunks) / float32(t.generations)),
		})
	}

	w.Flush()
	if err = w.Error(); err != nil {
		log.Fatal(err)
	}
}
