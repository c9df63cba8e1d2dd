// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"github.com/SoftbearStudios/terragen/server"
	"github.com/SoftbearStudios/terragen/server/cloud"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	"golang.org/x/net/netutil"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
)

func main() {
	var (
		port           int
		maxConnections int
		configPath     string
		assetsDir      string
		logFile        string
		offline        bool
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.StringVar(&configPath, "config", "", "terrain config `file` (JSON), defaults if empty")
	flag.StringVar(&assetsDir, "assets", ".", "directory that mask and palette paths are relative to")
	flag.StringVar(&logFile, "log", "", "append generations to this CSV `file` when offline")
	flag.BoolVar(&offline, "offline", false, "never connect to the cloud")
	flag.Parse()

	cfg := worldgen.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = worldgen.LoadConfigFile(configPath); err != nil {
			log.Fatal("invalid config: ", err)
		}
	}

	var c server.Cloud = server.Offline{LogFile: logFile}
	if !offline {
		awsCloud, err := cloud.New()
		if err != nil {
			// Cloud is not required for server to function, just log an error
			log.Printf("Cloud error: %v\n", err)
		} else {
			c = awsCloud
		}
	}

	hub := server.NewHub(server.HubOptions{
		Cloud:     c,
		Generator: worldgen.NewGenerator(worldgen.DirLoader(assetsDir)),
		Config:    cfg,
	})

	go hub.Run()

	if port < 0 {
		log.Println("terrain generation started")
		// Block forever
		<-make(chan struct{})
	}

	log.Printf("terrain server started on http://localhost:%d\n", port)

	http.Handle("/", hub.Handler())

	l, err := net.Listen("tcp", fmt.Sprint(":", port))

	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
