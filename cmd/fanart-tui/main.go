package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/tvdb-fanart/internal/config"
	"github.com/handiism/tvdb-fanart/internal/logging"
	"github.com/handiism/tvdb-fanart/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs only go to the configured file.
	logger, closer := logging.New(settings.Logging, nil)
	if closer != nil {
		defer closer.Close()
	}

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
