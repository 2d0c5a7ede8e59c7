package main

import (
	"embed"
	"flag"
	"log"

	"witswagers/internal/config"
	"witswagers/internal/engine"
	"witswagers/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	port := flag.Int("port", 8080, "server port")
	configPath := flag.String("config", "", "optional YAML config with rounds, labels and a custom question pack")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		cfg = loaded
	}

	srv := server.New(*port, cfg, static)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
