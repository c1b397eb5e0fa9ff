//go:build !darwin

package keystore

// Windows Credential Manager prompts for authentication on its own when
// required, and other platforms have no biometric hook here.
func authenticate() error {
	return nil
}
