package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sl1tools/sl1probe/internal/config"
	"github.com/sl1tools/sl1probe/pkg/probes"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sl1probe: %v\n", err)
		os.Exit(1)
	}

	// Probe outcomes never change the exit status; a rejected query is a
	// finding, not a failure.
	if err := probes.Run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "sl1probe: %v\n", err)
		os.Exit(1)
	}
}
