package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/config"
	"github.com/eliziario/credkeeper/internal/keystore"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <target> <username>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s App_server.example.com alice\n", os.Args[0])
		os.Exit(1)
	}

	target := os.Args[1]
	username := os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Prompt for password
	fmt.Printf("Enter password for %s@%s: ", username, target)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println() // New line after password input

	password := string(passwordBytes)
	if password == "" {
		fmt.Fprintf(os.Stderr, "Password cannot be empty\n")
		os.Exit(1)
	}

	cdc, err := codec.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize codec: %v\n", err)
		os.Exit(1)
	}

	secret, err := cdc.Encrypt(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to protect password: %v\n", err)
		os.Exit(1)
	}

	store := keystore.NewKeyring(cfg.Settings.Service, cfg.Settings.RequireBiometric)
	if err := store.Write(target, username, secret); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to store credentials: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Credentials stored successfully for %s@%s\n", username, target)
}
