// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

type Database interface {
	PutGeneration(generation Generation) error
	ReadGeneration(id string) (generation Generation, err error)
	ReadGenerations() (generations []Generation, err error)
	ReadGenerationsBySeed(seed int64) (generations []Generation, err error)
}
