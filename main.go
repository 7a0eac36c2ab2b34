package main

import (
	"log"

	"LocalPaint/internal/config"
	"LocalPaint/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Starting %s with settings:\n%s", cfg.Title, cfg)
	ui.RunApp(cfg)
}
