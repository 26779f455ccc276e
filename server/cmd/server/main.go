package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/softlock-games/viewfinder/server/core"
	"github.com/softlock-games/viewfinder/shared/netconfig"
	"github.com/softlock-games/viewfinder/shared/protocol"
	"github.com/softlock-games/viewfinder/shared/stagedata"
)

func main() {
	port := flag.Uint("port", netconfig.DefaultPort, "Websocket port for viewers")
	apiPort := flag.Uint("apiport", netconfig.DefaultAPIPort, "HTTP port for the control API")
	tickRate := flag.Int("tickrate", netconfig.DefaultTickRate, "Rig tick rate (updates per second)")
	name := flag.String("name", "Viewfinder Director", "Director display name")
	version := flag.String("version", "", "Required viewer version (empty = accept any)")
	stagePath := flag.String("stage", "", "Path to a TMX stage file (empty = standard rig only)")
	autoCycle := flag.Float64("autocycle", 5, "Seconds between automatic cuts (0 = off)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	var stage *stagedata.Stage
	if *stagePath != "" {
		dir, file := filepath.Split(*stagePath)
		if dir == "" {
			dir = "."
		}
		var err error
		stage, err = stagedata.LoadStage(os.DirFS(dir), file)
		if err != nil {
			log.Fatalf("Failed to load stage %q: %v", *stagePath, err)
		}
		log.Printf("[director] stage %q: %dx%d, %d props, %d camera spots",
			stage.Name, stage.Width, stage.Height, len(stage.Props), len(stage.Cameras))
	}

	server, err := core.NewServer(*tickRate, *name, *version, stage, *autoCycle)
	if err != nil {
		log.Fatalf("Failed to build rig: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rig", core.RigStatus(server))
	mux.HandleFunc("POST /rig/activate", core.ActivateCamera(server))
	mux.HandleFunc("POST /rig/zoom", core.ZoomCamera(server))
	mux.HandleFunc("GET /health", core.Health())

	go func() {
		addr := fmt.Sprintf(":%d", *apiPort)
		log.Printf("[director] control API on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("[director] control API error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down director...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting director %q on port %d (tick rate: %d/s, version: %s)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Director error: %v", err)
	}
}
