//go:build darwin

package keystore

import (
	"fmt"

	"github.com/ansxuman/go-touchid"
)

func authenticate() error {
	ok, err := touchid.Auth(touchid.DeviceTypeBiometrics, "credkeeper needs to access your saved credentials")
	if err != nil {
		return fmt.Errorf("biometric authentication failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("biometric authentication was cancelled or failed")
	}
	return nil
}
