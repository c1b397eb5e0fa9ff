package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/config"
	"github.com/eliziario/credkeeper/internal/credentials"
	"github.com/eliziario/credkeeper/internal/keystore"
	"github.com/eliziario/credkeeper/internal/prompt"
)

// Runs one full request/confirm cycle against the real keyring, the way an
// embedding application would.
func main() {
	useTUI := flag.Bool("tui", false, "use the full-screen prompt instead of line input")
	forceUI := flag.Bool("force-ui", false, "prompt even when a saved credential exists")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-tui] [-force-ui] <target>\n", os.Args[0])
		os.Exit(1)
	}
	target := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cdc, err := codec.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize codec: %v\n", err)
		os.Exit(1)
	}

	var prompter prompt.Prompter = prompt.NewTerminal()
	if *useTUI {
		prompter = prompt.NewTUI()
	}

	store := keystore.NewKeyring(cfg.Settings.Service, cfg.Settings.RequireBiometric)
	session := credentials.NewSession(store, credentials.NewCache(), cdc, prompter)
	session.MainInstruction = fmt.Sprintf("Enter credentials for %s", target)
	if tgt, ok := cfg.GetTarget(target); ok {
		if tgt.Instruction != "" {
			session.MainInstruction = tgt.Instruction
		}
		session.SupplementaryText = tgt.Supplementary
	}

	result, err := session.Request(target, credentials.Options{
		UseInstanceCache:          cfg.Settings.Prompt.UseInstanceCache,
		ShowSaveOption:            cfg.Settings.Prompt.ShowSaveOption,
		ForceUIOnSavedCredentials: *forceUI || cfg.Settings.Prompt.ForceUIOnSavedCredentials,
	})
	if err != nil {
		if credentials.IsCancelled(err) {
			fmt.Println("Cancelled.")
			return
		}
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}

	source := "prompt"
	if result.FromCache {
		source = "cache"
	}
	fmt.Printf("Got credentials for %s (username %s, from %s)\n", target, result.Credential.Username, source)

	if err := session.Confirm(true); err != nil {
		fmt.Fprintf(os.Stderr, "Confirm failed: %v\n", err)
		os.Exit(1)
	}
	if session.IsSaveChecked() {
		fmt.Println("Credentials saved.")
	}
}
