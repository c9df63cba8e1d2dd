// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"flag"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/cloud"
	"github.com/SoftbearStudios/terragen/server/cloud/db"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/terrain/compressed"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sort"
	"strconv"
	"time"
)

func main() {
	var (
		cpuProfile string
		configPath string
		modeName   string
		out        string
		seed       string
		upload     bool
		stats      bool
		list       bool
		id         string
	)

	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&configPath, "config", "", "terrain config `file` (JSON), defaults if empty")
	flag.StringVar(&modeName, "mode", terrain.DrawBiome.String(), "draw mode")
	flag.StringVar(&out, "out", "out.png", "output `file`")
	flag.StringVar(&seed, "seed", "", "override the config seed (integer or \"random\")")
	flag.BoolVar(&upload, "upload", false, "upload the snapshot and record the generation")
	flag.BoolVar(&stats, "stats", false, "print chunk and compression statistics")
	flag.BoolVar(&list, "list", false, "list recorded generations (of -seed, if set) instead of generating")
	flag.StringVar(&id, "id", "", "with -list, show only the generation with this model ID")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if list {
		if err := listGenerations(seed, id); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(configPath, modeName, out, seed, upload, stats); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, modeName, out, seed string, upload, stats bool) error {
	mode, err := terrain.ParseDrawMode(modeName)
	if err != nil {
		return err
	}

	cfg := worldgen.DefaultConfig()
	assetsDir := "."
	if configPath != "" {
		if cfg, err = worldgen.LoadConfigFile(configPath); err != nil {
			return err
		}
		assetsDir = filepath.Dir(configPath)
	}

	switch seed {
	case "":
	case "random":
		cfg.Noise.Seed = worldgen.RandomSeed()
	default:
		if cfg.Noise.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return fmt.Errorf("invalid seed %q: %w", seed, err)
		}
	}

	model, err := worldgen.NewGenerator(worldgen.DirLoader(assetsDir)).Generate(cfg)
	if err != nil {
		return err
	}

	img, err := model.Render(mode)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return err
	}
	if err = os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}

	if stats {
		layout := model.Layout()
		fmt.Printf("%dx%d chunks (%d) of at most %d in %s\n", layout.Columns, layout.Rows, layout.Chunks(), layout.MaxChunkSize, model.Duration)

		data := model.Heightmap()
		fmt.Printf("compressed to %.0f%% (%dkb)\n", 100*compressed.Ratio(data), len(data.Data)/1024)
		data.Pool()
	}

	if upload {
		c, err := cloud.New()
		if err != nil {
			return fmt.Errorf("cloud: %w", err)
		}
		if err = c.RecordGeneration(model); err != nil {
			return err
		}
		if err = c.UploadTerrainSnapshot(model, buf.Bytes()); err != nil {
			return err
		}
		fmt.Println("uploaded", cloud.SnapshotKey(model))
	}
	return nil
}

func listGenerations(seed, id string) error {
	c, err := cloud.New()
	if err != nil {
		return fmt.Errorf("cloud: %w", err)
	}

	if id != "" {
		generation, err := c.Generation(id)
		if err != nil {
			return err
		}
		printGeneration(generation)
		fmt.Println(generation.Config)
		return nil
	}

	var filter *int64
	if seed != "" {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", seed, err)
		}
		filter = &s
	}

	generations, err := c.Generations(filter)
	if err != nil {
		return err
	}
	sort.Slice(generations, func(i, j int) bool {
		return generations[i].Created < generations[j].Created
	})

	for _, generation := range generations {
		printGeneration(generation)
	}
	return nil
}

func printGeneration(generation db.Generation) {
	fmt.Printf("%s %s seed=%d %dx%d chunks=%d %dms %s\n",
		time.Unix(generation.Created, 0).UTC().Format(time.RFC3339), generation.ID,
		generation.Seed, generation.Width, generation.Height, generation.Chunks, generation.Millis, generation.Snapshot)
}
