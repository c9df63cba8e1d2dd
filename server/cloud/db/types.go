// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Generation is one generated terrain.
type Generation struct {
	ID          string  `dynamo:"id"`
	Created     int64   `dynamo:"created"` // unix seconds
	Region      string  `dynamo:"region"`
	Seed        int64   `dynamo:"seed"`
	Width       int     `dynamo:"width"`
	Height      int     `dynamo:"height"`
	Scale       float32 `dynamo:"scale"`
	Octaves     int     `dynamo:"octaves"`
	Persistence float32 `dynamo:"persistence"`
	Lacunarity  float32 `dynamo:"lacunarity"`
	Chunks      int     `dynamo:"chunks"`
	Millis      int64   `dynamo:"millis"`
	Config      string  `dynamo:"config"` // JSON
	Snapshot    string  `dynamo:"snapshot,omitempty"`
	TTL         int64   `dynamo:"ttl,omitempty"`
}
