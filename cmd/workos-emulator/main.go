package main

import (
	"log"

	"github.com/aussiebroadwan/workos/internal/emulator/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize emulator: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("emulator error: %v", err)
	}
}
