//go:build windows

package keystore

import (
	"errors"
	"syscall"

	"github.com/danieljoos/wincred"
)

// The Credential Manager reports ERROR_NOT_FOUND for missing records.
const errNotFound = syscall.Errno(1168)

func (k *Keyring) writeEntry(target, username string, data []byte) error {
	cred := wincred.NewGenericCredential(k.entryName(target))
	cred.UserName = username
	cred.CredentialBlob = data
	// Enterprise persistence survives local-profile resets and roams with
	// the user profile.
	cred.Persist = wincred.PersistEnterprise

	if err := cred.Write(); err != nil {
		return &StoreError{Op: "write", Code: statusCode(err), Err: err}
	}
	return nil
}

func (k *Keyring) readEntry(target string) ([]byte, error) {
	cred, err := wincred.GetGenericCredential(k.entryName(target))
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "read", Code: statusCode(err), Err: err}
	}
	return cred.CredentialBlob, nil
}

func (k *Keyring) deleteEntry(target string) (bool, error) {
	cred, err := wincred.GetGenericCredential(k.entryName(target))
	if err != nil {
		if errors.Is(err, errNotFound) {
			return false, nil
		}
		return false, &StoreError{Op: "delete", Code: statusCode(err), Err: err}
	}
	if err := cred.Delete(); err != nil {
		if errors.Is(err, errNotFound) {
			return false, nil
		}
		return false, &StoreError{Op: "delete", Code: statusCode(err), Err: err}
	}
	return true, nil
}

func (k *Keyring) entryName(target string) string {
	return k.service + ":" + target
}

func statusCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
