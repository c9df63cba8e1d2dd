// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Normalized heights of the default bands.
const (
	DeepLevel   = 0.3
	OceanLevel  = 0.4
	SandLevel   = OceanLevel + 0.05
	GrassLevel  = SandLevel + 0.2
	ForestLevel = GrassLevel + 0.1
	RockLevel   = ForestLevel + 0.15
	SnowLevel   = 1.0
)
