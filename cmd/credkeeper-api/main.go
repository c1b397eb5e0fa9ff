package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/config"
	"github.com/eliziario/credkeeper/internal/credentials"
	"github.com/eliziario/credkeeper/internal/keystore"
	"github.com/eliziario/credkeeper/internal/logging"
	"github.com/eliziario/credkeeper/pkg/api"
)

func main() {
	address := flag.String("address", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Settings.Server.Address = *address
	}

	logger := logging.NewLogger("credkeeper-api", cfg.Settings.Logging)

	cdc, err := codec.New()
	if err != nil {
		logger.WithError(err).Error("Failed to initialize codec")
		fmt.Fprintf(os.Stderr, "Failed to initialize codec: %v\n", err)
		os.Exit(1)
	}

	store := keystore.NewKeyring(cfg.Settings.Service, cfg.Settings.RequireBiometric)
	cache := credentials.NewCache()

	server := api.NewServer(cfg, store, cache, cdc, logger)
	if err := server.Run(); err != nil {
		logger.WithError(err).Error("Server stopped")
		fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
		os.Exit(1)
	}
}
