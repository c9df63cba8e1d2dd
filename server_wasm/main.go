// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/SoftbearStudios/terragen/server"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"log"
)

func main() {
	hub := server.NewHub(server.HubOptions{
		Cloud:     server.Offline{},
		Generator: worldgen.NewGenerator(worldgen.StaticAssets{}),
		Config:    worldgen.DefaultConfig(),
	})

	log.Println("terrain WASM server started")

	hub.Register(&localClient)

	hub.Run()
}
