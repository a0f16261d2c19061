package main

import (
	"github.com/delvepad/ai-delvepad/internal/config"
	"github.com/delvepad/ai-delvepad/internal/ui"
)

// Demo launcher: built-in defaults with the sample catalog switched on
func main() {
	opts := config.DefaultLaunchOptions()
	opts.SampleCatalog = true

	ui.Launch(opts)
}
