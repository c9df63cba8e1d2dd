// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import "testing"

func TestKeyframes_Evaluate(t *testing.T) {
	keys := Keyframes{{0, 0}, {0.5, 0.1}, {1, 1}}
	if err := keys.Validate(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		t, value float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.05},
		{0.5, 0.1},
		{0.75, 0.55},
		{1, 1},
		{2, 1},
	}

	for _, test := range tests {
		if v := keys.Evaluate(test.t); v-test.value > 1e-6 || test.value-v > 1e-6 {
			t.Errorf("expected Evaluate(%v): %v, got %v", test.t, test.value, v)
		}
	}
}

func TestKeyframes_EvaluateAtKeys(t *testing.T) {
	curve := DefaultCurve()
	for _, key := range curve {
		if v := curve.Evaluate(key.Time); v != key.Value {
			t.Errorf("expected Evaluate(%v): %v, got %v", key.Time, key.Value, v)
		}
	}
}

func TestKeyframes_Monotonic(t *testing.T) {
	curve := DefaultCurve()
	if err := curve.Validate(); err != nil {
		t.Fatal(err)
	}

	prev := curve.Evaluate(0)
	for i := 1; i <= 1000; i++ {
		v := curve.Evaluate(float32(i) / 1000)
		if v < prev {
			t.Fatalf("curve decreases at %v: %v < %v", float32(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestKeyframes_Validate(t *testing.T) {
	invalid := []Keyframes{
		{},
		{{0.5, 0}, {0.5, 1}},
		{{0, 1}, {1, 0}},
	}

	for _, keys := range invalid {
		if err := keys.Validate(); err == nil {
			t.Errorf("expected %v to be invalid", keys)
		}
	}
}
