package main

import (
	"log"

	"github.com/delvepad/ai-delvepad/internal/config"
	"github.com/delvepad/ai-delvepad/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("%s v%s starting...", ui.AppName, version)

	opts, err := config.LoadLaunchOptions()
	if err != nil {
		log.Printf("Using default launch options: %v", err)
	}

	ui.Launch(opts)
}
