// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"image/png"
	"log"
	"net/http"
	"strconv"
)

func (h *Hub) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	buf, ok := h.statusJSON.Load().([]byte)
	if ok {
		_, _ = w.Write(buf)
	}
}

func (h *Hub) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	h.register <- NewSocketClient(conn)
}

// ServeMap renders the current model as a PNG (?mode=height|colour|temperature|moisture|island|biome).
func (h *Hub) ServeMap(w http.ResponseWriter, r *http.Request) {
	model := h.model(w)
	if model == nil {
		return
	}

	mode := terrain.DrawBiome
	if name := r.URL.Query().Get("mode"); name != "" {
		var err error
		if mode, err = terrain.ParseDrawMode(name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	img, err := model.Render(mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "image/png")
	if err = png.Encode(w, img); err != nil {
		log.Println("png error", err)
	}
}

// ServeBiome returns the biome under ?x=&z=.
func (h *Hub) ServeBiome(w http.ResponseWriter, r *http.Request) {
	model := h.model(w)
	if model == nil {
		return
	}

	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 32)
	z, errZ := strconv.ParseFloat(r.URL.Query().Get("z"), 32)
	if errX != nil || errZ != nil {
		http.Error(w, "x and z are required", http.StatusBadRequest)
		return
	}

	sample, ok := model.BiomeAt(float32(x), float32(z))
	if !ok {
		http.Error(w, "outside of terrain", http.StatusNotFound)
		return
	}
	h.writeJSON(w, Biome{X: float32(x), Z: float32(z), ModelID: model.ID.String(), Sample: &sample, ActualTemperature: sample.ActualTemperature()})
}

// ServeChunk returns the geometry of chunk ?n=&m=.
func (h *Hub) ServeChunk(w http.ResponseWriter, r *http.Request) {
	model := h.model(w)
	if model == nil {
		return
	}

	n, errN := strconv.Atoi(r.URL.Query().Get("n"))
	m, errM := strconv.Atoi(r.URL.Query().Get("m"))
	if errN != nil || errM != nil {
		http.Error(w, "n and m are required", http.StatusBadRequest)
		return
	}

	chunk, ok := model.Chunk(n, m)
	if !ok {
		http.Error(w, "no such chunk", http.StatusNotFound)
		return
	}
	h.writeJSON(w, chunk)
}

// ServeHeightmap returns the compressed elevation of the current model.
func (h *Hub) ServeHeightmap(w http.ResponseWriter, r *http.Request) {
	model := h.model(w)
	if model == nil {
		return
	}

	data := model.Heightmap()
	defer data.Pool()
	h.writeJSON(w, data)
}

// Handler routes every endpoint of the hub.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.ServeIndex)
	mux.HandleFunc("/ws", h.ServeSocket)
	mux.HandleFunc("/map", h.ServeMap)
	mux.HandleFunc("/biome", h.ServeBiome)
	mux.HandleFunc("/chunk", h.ServeChunk)
	mux.HandleFunc("/heightmap", h.ServeHeightmap)
	return mux
}

func (h *Hub) model(w http.ResponseWriter) *worldgen.Model {
	model := h.generator.Model()
	if model == nil {
		http.Error(w, errNoModel.Error(), http.StatusServiceUnavailable)
	}
	return model
}

func (h *Hub) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("json error", err)
	}
}
