//go:build !windows

package keystore

import (
	"errors"

	"github.com/zalando/go-keyring"
)

func (k *Keyring) writeEntry(target, username string, data []byte) error {
	if err := keyring.Set(k.service, target, string(data)); err != nil {
		return &StoreError{Op: "write", Err: err}
	}
	return nil
}

func (k *Keyring) readEntry(target string) ([]byte, error) {
	value, err := keyring.Get(k.service, target)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "read", Err: err}
	}
	return decodeEntry(value)
}

func (k *Keyring) deleteEntry(target string) (bool, error) {
	if err := keyring.Delete(k.service, target); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return false, nil
		}
		return false, &StoreError{Op: "delete", Err: err}
	}
	return true, nil
}
