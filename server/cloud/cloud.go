// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud stores generated terrain in DynamoDB and S3.
package cloud

import (
	"errors"
	"fmt"
	"github.com/SoftbearStudios/terragen/server/cloud/db"
	"github.com/SoftbearStudios/terragen/server/cloud/fs"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"strings"
	"time"
)

const (
	// LatestSnapshot is overwritten by every upload.
	LatestSnapshot = "terrain.png"
	snapshotCache  = 10
	archiveCache   = 60 * 60 * 24
)

var errOffline = errors.New("cloud is offline")

// A nil cloud is valid to use with any methods (acts as a no-op)
type Cloud struct {
	region   string
	ttl      time.Duration
	database db.Database
	fs       fs.Filesystem
}

func (cloud *Cloud) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	if cloud == nil {
		builder.WriteString("offline")
	} else {
		builder.WriteString(cloud.region)
	}
	builder.WriteByte(']')
	return builder.String()
}

// Returns nil cloud on error
func New() (*Cloud, error) {
	userData, err := loadUserData()
	if err != nil {
		return nil, err
	}

	session, err := getAWSSession(userData.Region)
	if err != nil {
		return nil, err
	}

	cloud := &Cloud{
		region: userData.Region,
		ttl:    time.Duration(userData.TTL) * 24 * time.Hour,
	}

	cloud.database, err = db.NewDynamoDBDatabase(session, userData.Stage)
	if err != nil {
		return nil, err
	}
	cloud.fs, err = fs.NewS3Filesystem(session, userData.Stage)
	if err != nil {
		return nil, err
	}
	return cloud, nil
}

// SnapshotKey is where the snapshot of model is archived.
func SnapshotKey(model *worldgen.Model) string {
	return "snapshots/" + model.ID.String() + ".png"
}

// UploadTerrainSnapshot archives png and replaces the latest snapshot.
func (cloud *Cloud) UploadTerrainSnapshot(model *worldgen.Model, png []byte) error {
	if cloud == nil {
		return nil
	}
	if err := cloud.fs.UploadStaticFile(SnapshotKey(model), archiveCache, png); err != nil {
		return err
	}
	return cloud.fs.UploadStaticFile(LatestSnapshot, snapshotCache, png)
}

func (cloud *Cloud) RecordGeneration(model *worldgen.Model) error {
	if cloud == nil {
		return nil
	}
	generation, err := cloud.generationOf(model)
	if err != nil {
		return err
	}
	return cloud.database.PutGeneration(generation)
}

// Generations returns every recorded generation, or only those of seed if not nil.
func (cloud *Cloud) Generations(seed *int64) ([]db.Generation, error) {
	if cloud == nil {
		return nil, nil
	}
	if seed != nil {
		return cloud.database.ReadGenerationsBySeed(*seed)
	}
	return cloud.database.ReadGenerations()
}

// Generation returns the record of one generation by model ID.
func (cloud *Cloud) Generation(id string) (db.Generation, error) {
	if cloud == nil {
		return db.Generation{}, errOffline
	}
	return cloud.database.ReadGeneration(id)
}

func (cloud *Cloud) generationOf(model *worldgen.Model) (db.Generation, error) {
	configJSON, err := worldgen.JSON().MarshalToString(model.Config)
	if err != nil {
		return db.Generation{}, fmt.Errorf("encoding config: %w", err)
	}

	noise := model.Config.Noise
	generation := db.Generation{
		ID:          model.ID.String(),
		Created:     model.Created.Unix(),
		Region:      cloud.region,
		Seed:        noise.Seed,
		Width:       noise.Width,
		Height:      noise.Height,
		Scale:       noise.Scale,
		Octaves:     noise.Octaves,
		Persistence: noise.Persistence,
		Lacunarity:  noise.Lacunarity,
		Chunks:      model.Layout().Chunks(),
		Millis:      model.Duration.Milliseconds(),
		Config:      configJSON,
		Snapshot:    SnapshotKey(model),
	}
	if cloud.ttl > 0 {
		generation.TTL = model.Created.Add(cloud.ttl).Unix()
	}
	return generation, nil
}
