package main

import (
	"fmt"
	"os"

	"github.com/eliziario/credkeeper/internal/config"
	"github.com/eliziario/credkeeper/internal/keystore"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <target>\n", os.Args[0])
		os.Exit(1)
	}

	target := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	store := keystore.NewKeyring(cfg.Settings.Service, false)
	existed, err := store.Delete(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to delete credentials: %v\n", err)
		os.Exit(1)
	}

	if existed {
		fmt.Printf("Credentials deleted for %s\n", target)
	} else {
		fmt.Printf("No stored credentials for %s\n", target)
	}
}
