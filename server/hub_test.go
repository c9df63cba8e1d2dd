// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"testing"
	"time"
)

func testConfig() worldgen.Config {
	cfg := worldgen.DefaultConfig()
	cfg.Noise.Seed = 3
	cfg.Noise.Width = 33
	cfg.Noise.Height = 33
	cfg.Noise.Scale = 10
	cfg.MaxChunkSize = 16
	return cfg
}

// testClient records every message it is sent.
type testClient struct {
	ClientData
	messages chan Outbound
}

func newTestClient() *testClient {
	return &testClient{messages: make(chan Outbound, 16)}
}

func (client *testClient) Init()  {}
func (client *testClient) Close() {}

func (client *testClient) Send(out Outbound) {
	client.messages <- out
}

func (client *testClient) Destroy() {
	client.Hub.unregister <- client
}

func (client *testClient) Data() *ClientData {
	return &client.ClientData
}

func (client *testClient) next(t *testing.T) Outbound {
	select {
	case out := <-client.messages:
		return out
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestClientList(t *testing.T) {
	var list ClientList
	a, b, c := newTestClient(), newTestClient(), newTestClient()
	list.Add(a)
	list.Add(b)
	list.Add(c)

	if list.Len != 3 || list.First != a || list.Last != c {
		t.Fatal("expected a, b, c")
	}

	if next := list.Remove(b); next != c {
		t.Error("expected c after b")
	}
	if a.Next != c || c.Previous != a {
		t.Error("expected a <-> c")
	}

	list.Remove(c)
	if list.Last != a || list.Len != 1 {
		t.Error("expected only a")
	}

	list.Broadcast(Error{Message: "hi"})
	if out := <-a.messages; out.(Error).Message != "hi" {
		t.Errorf("expected broadcast, got %v", out)
	}

	list.Remove(a)
	if list.First != nil || list.Last != nil || list.Len != 0 {
		t.Error("expected empty list")
	}
}

func TestHub(t *testing.T) {
	hub := NewHub(HubOptions{
		Generator: worldgen.NewGenerator(worldgen.StaticAssets{}),
		Config:    testConfig(),
	})
	go hub.Run()

	client := newTestClient()
	hub.Register(client)

	generated, ok := client.next(t).(Generated)
	if !ok || generated.Seed != 3 {
		t.Fatalf("expected first model, got %#v", generated)
	}
	if generated.Layout.Columns != 2 || generated.Layout.Rows != 2 {
		t.Errorf("expected 2x2 chunks, got %dx%d", generated.Layout.Columns, generated.Layout.Rows)
	}

	seed := int64(5)
	hub.inbound <- SignedInbound{Client: client, inbound: Generate{Seed: &seed}}
	if generated, ok = client.next(t).(Generated); !ok || generated.Seed != 5 {
		t.Fatalf("expected regenerated model, got %#v", generated)
	}

	// Rejected before generation
	hub.inbound <- SignedInbound{Client: client, inbound: Generate{Config: []byte(`{"maxChunkSize": 0}`)}}
	if _, ok := client.next(t).(Error); !ok {
		t.Fatal("expected error")
	}

	hub.inbound <- SignedInbound{Client: client, inbound: PickBiome{X: 4, Z: 4}}
	biome, ok := client.next(t).(Biome)
	if !ok || biome.Sample == nil || biome.ModelID != generated.ID {
		t.Fatalf("expected biome of current model, got %#v", biome)
	}

	if hub.Receive(client, Message{Data: InvalidInbound{messageType: "teleport"}}) {
		t.Error("expected invalid inbound to be dropped")
	}

	if !hub.Receive(client, Message{Data: PickBiome{X: -4, Z: 4}}) {
		t.Fatal("expected pickBiome to be received")
	}
	if biome, ok = client.next(t).(Biome); !ok || biome.Sample != nil {
		t.Fatalf("expected no sample outside the terrain, got %#v", biome)
	}
}
