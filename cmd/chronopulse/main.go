package main

import (
	"fmt"
	"os"

	"chronopulse/internal/cli"
	"chronopulse/internal/config"
	"chronopulse/internal/repository/kv"
	"chronopulse/internal/session"
)

func main() {
	// Load configuration: defaults, then config file, then environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Open the data store
	repo, err := kv.NewWithSeeds(cfg.GetStoragePath(), kv.SeedDefaults{
		ProjectName:  cfg.Seed.ProjectName,
		ActivityName: cfg.Seed.ActivityName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data store: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// The manager owns the collections for the lifetime of the process
	manager := session.NewManager(repo, cfg)
	defer manager.Flush()

	root := cli.NewRootCommand(manager, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		manager.Flush()
		os.Exit(1)
	}
}
