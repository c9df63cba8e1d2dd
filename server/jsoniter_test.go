// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	"strings"
	"testing"
)

func TestJsonIter_Outbound(t *testing.T) {
	sample := terrain.BiomeSample{NormalizedHeight: 0.5, ActualHeight: 20, Temperature: 0.25, Color: terrain.RGB(255, 0, 128)}
	message := Message{Data: Biome{X: 1.5, Z: 2, ModelID: "abc", Sample: &sample, ActualTemperature: sample.ActualTemperature()}}

	const expected = `{"data":{"x":1.5,"z":2,"modelID":"abc","sample":{"normalizedHeight":0.5,"actualHeight":20,"temperature":0.25,"color":"#ff0080ff"},"actualTemperature":-10},"type":"biome"}`

	buf, err := json.Marshal(message)
	if err != nil {
		t.Fatal("error marshaling:", err)
	}
	if string(buf) != expected {
		t.Errorf("different output:\nexpected: %s\ngot:      %s", expected, buf)
	}

	buf, err = json.Marshal(Message{Data: Error{Message: "nope"}})
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `{"data":{"message":"nope"},"type":"error"}` {
		t.Errorf("unexpected error message %s", buf)
	}
}

func TestJsonIter_Inbound(t *testing.T) {
	tests := []string{
		`{"type": "generate", "data": {"seed": 12, "config": {"noise": {"width": 65}}}}`,
		`{"data": {"seed": 12, "config": {"noise": {"width": 65}}}, "type": "generate"}`,
	}

	for _, input := range tests {
		var message Message
		if err := json.Unmarshal([]byte(input), &message); err != nil {
			t.Fatal(err)
		}

		generate, ok := message.Data.(Generate)
		if !ok {
			t.Fatalf("expected Generate, got %T", message.Data)
		}
		if generate.Seed == nil || *generate.Seed != 12 {
			t.Errorf("expected seed 12, got %v", generate.Seed)
		}
		if !strings.Contains(string(generate.Config), `"width": 65`) {
			t.Errorf("expected raw config, got %s", generate.Config)
		}
	}

	var message Message
	if err := json.Unmarshal([]byte(`{"type": "pickBiome", "data": {"x": 3, "z": 4.5}}`), &message); err != nil {
		t.Fatal(err)
	}
	if pick, ok := message.Data.(PickBiome); !ok || pick.X != 3 || pick.Z != 4.5 {
		t.Errorf("expected PickBiome{3, 4.5}, got %#v", message.Data)
	}

	// Messages without data
	message = Message{}
	if err := json.Unmarshal([]byte(`{"type": "generate"}`), &message); err != nil {
		t.Fatal(err)
	}
	if _, ok := message.Data.(Generate); !ok {
		t.Errorf("expected Generate, got %T", message.Data)
	}
}

func TestJsonIter_InvalidInbound(t *testing.T) {
	var message Message
	if err := json.Unmarshal([]byte(`{"type": "invalidInbound", "data": {}}`), &message); err != nil {
		t.Fatal(err)
	}
	if invalid, ok := message.Data.(InvalidInbound); !ok || invalid.messageType != "invalidInbound" {
		t.Errorf("expected InvalidInbound, got %#v", message.Data)
	}

	if err := json.Unmarshal([]byte(`{"data": {}}`), &message); err == nil {
		t.Error("expected error without message type")
	}
}

func TestGenerate_Config(t *testing.T) {
	current := testConfig()
	seed := int64(99)

	cfg, err := Generate{Seed: &seed}.config(current)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Noise.Seed != 99 || cfg.Noise.Width != current.Noise.Width {
		t.Errorf("expected current config with seed 99, got %+v", cfg.Noise)
	}

	cfg, err = Generate{Config: []byte(`{"noise": {"width": 65, "height": 9}}`)}.config(current)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Noise.Width != 65 || cfg.Noise.Height != 9 {
		t.Errorf("expected 65x9, got %dx%d", cfg.Noise.Width, cfg.Noise.Height)
	}

	if _, err = (Generate{Config: []byte(`{"noise": {"octaves": 0}}`)}).config(current); err == nil {
		t.Error("expected invalid config to fail")
	}
}
