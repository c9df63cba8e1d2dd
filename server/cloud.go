// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"github.com/SoftbearStudios/terragen/server/worldgen"
)

// Cloud stores generated terrain somewhere durable.
type Cloud interface {
	fmt.Stringer
	UploadTerrainSnapshot(model *worldgen.Model, png []byte) error // takes an encoded PNG
	RecordGeneration(model *worldgen.Model) error
}

// Offline is a Cloud that optionally appends generations to a local CSV log.
type Offline struct {
	LogFile string
}

func (offline Offline) String() string {
	if offline.LogFile != "" {
		return "offline (" + offline.LogFile + ")"
	}
	return "offline"
}

func (offline Offline) UploadTerrainSnapshot(model *worldgen.Model, png []byte) error {
	return nil
}

func (offline Offline) RecordGeneration(model *worldgen.Model) error {
	if offline.LogFile == "" {
		return nil
	}
	return AppendLog(offline.LogFile, model)
}
