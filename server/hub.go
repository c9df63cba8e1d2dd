// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/terrain"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"image/png"
	"log"
	"sync/atomic"
	"time"
)

const statusPeriod = time.Second * 5

var errNoModel = errors.New("no terrain generated yet")

type HubOptions struct {
	// Cloud may be Offline{}
	Cloud     Cloud
	Generator *worldgen.Generator
	// Config of the first model
	Config worldgen.Config
}

// Hub maintains the set of active clients and regenerates terrain on request.
// Only the hub goroutine touches its fields; models are read through the Generator.
type Hub struct {
	cloud     Cloud
	generator *worldgen.Generator
	config    worldgen.Config // most recently requested
	clients   ClientList

	// generating is true while a generation goroutine runs.
	generating bool
	// pending is generated next, replacing any older pending request.
	pending *worldgen.Config

	// Served atomically by HTTP
	statusJSON atomic.Value

	// Inbound channels
	inbound    chan SignedInbound
	register   chan Client
	unregister chan Client
	generated  chan generation

	statusTicker *time.Ticker
}

type generation struct {
	model *worldgen.Model
	err   error
}

func NewHub(options HubOptions) *Hub {
	if options.Cloud == nil {
		options.Cloud = Offline{}
	}
	if options.Generator == nil {
		options.Generator = worldgen.NewGenerator(worldgen.DirLoader("."))
	}

	return &Hub{
		cloud:        options.Cloud,
		generator:    options.Generator,
		config:       options.Config,
		inbound:      make(chan SignedInbound, 16),
		register:     make(chan Client, 8),
		unregister:   make(chan Client, 16),
		generated:    make(chan generation, 1),
		statusTicker: time.NewTicker(statusPeriod),
	}
}

func (h *Hub) Run() {
	log.Println("hub started with", h.cloud)
	h.generate(h.config)
	h.status()

	for {
		select {
		case client := <-h.register:
			h.clients.Add(client)
			client.Data().Hub = h
			client.Init()

			if model := h.generator.Model(); model != nil {
				client.Send(generatedOf(model))
			}
		case client := <-h.unregister:
			client.Close()
			client.Data().Hub = nil
			h.clients.Remove(client)
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)

			for {
				// If not same hub the message is old
				if h == in.Client.Data().Hub {
					in.Inbound(h, in.Client)
				}

				if n--; n < 0 {
					break
				}

				in = <-h.inbound
			}
		case result := <-h.generated:
			h.generating = false
			h.finish(result)

			if h.pending != nil {
				cfg := *h.pending
				h.pending = nil
				h.generate(cfg)
			}
		case <-h.statusTicker.C:
			h.status()
		}
	}
}

// Model returns the current model, or nil before the first generation.
func (h *Hub) Model() *worldgen.Model {
	return h.generator.Model()
}

// Register adds a client. It may be called from any goroutine.
func (h *Hub) Register(client Client) {
	h.register <- client
}

// Unregister removes a client. It may be called from any goroutine.
func (h *Hub) Unregister(client Client) {
	h.unregister <- client
}

// Receive queues a decoded message from client. Messages that aren't inbound are dropped.
func (h *Hub) Receive(client Client, message Message) bool {
	in, ok := message.Data.(inbound)
	if !ok {
		return false
	}
	h.inbound <- SignedInbound{Client: client, inbound: in}
	return true
}

// generate starts generating cfg, or queues it if a generation is running.
func (h *Hub) generate(cfg worldgen.Config) {
	h.config = cfg

	if h.generating {
		h.pending = &cfg
		return
	}
	h.generating = true

	go func() {
		model, err := h.generator.Generate(cfg)
		h.generated <- generation{model: model, err: err}
	}()
}

func (h *Hub) finish(result generation) {
	if result.err != nil {
		log.Println("generation error:", result.err)
		h.clients.Broadcast(Error{Message: result.err.Error()})
		return
	}

	h.clients.Broadcast(generatedOf(result.model))
	go h.upload(result.model)
}

// upload sends a snapshot and record of model to the cloud. It is called on its own goroutine.
func (h *Hub) upload(model *worldgen.Model) {
	if err := h.cloud.RecordGeneration(model); err != nil {
		fmt.Println("error recording generation:", err)
	}

	img, err := model.Render(terrain.DrawBiome)
	if err != nil {
		fmt.Println("error rendering snapshot:", err)
		return
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		fmt.Println("error encoding snapshot:", err)
		return
	}

	if err = h.cloud.UploadTerrainSnapshot(model, buf.Bytes()); err != nil {
		fmt.Println("error uploading snapshot:", err)
	}
}

type status struct {
	Clients    int    `json:"clients"`
	Generating bool   `json:"generating"`
	Model      string `json:"model,omitempty"`
	Seed       int64  `json:"seed"`
}

func (h *Hub) status() {
	s := status{
		Clients:    h.clients.Len,
		Generating: h.generating,
	}
	if model := h.generator.Model(); model != nil {
		s.Model = model.ID.String()
		s.Seed = model.Config.Noise.Seed
	}

	statusJSON, err := json.Marshal(s)
	if err != nil {
		fmt.Println("error marshaling status:", err)
		return
	}
	h.statusJSON.Store(statusJSON)
}
