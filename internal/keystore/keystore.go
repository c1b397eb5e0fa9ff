package keystore

import (
	"errors"
	"fmt"
)

// ErrNotFound is the distinguished non-error outcome for a missing record.
var ErrNotFound = errors.New("no stored credential for target")

// StoreError wraps a platform credential-store failure with the originating
// status code. Code is zero when the backend does not report numeric codes.
type StoreError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *StoreError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("credential store %s failed (status %d): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("credential store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Record is one stored credential. Secret is the codec's opaque ciphertext;
// this package never sees a cleartext password.
type Record struct {
	Username string
	Secret   []byte
}

// Store is the contract over an OS-level named-credential store. Calls are
// blocking and synchronous; latency is OS-dependent.
type Store interface {
	// Write creates or overwrites the record for target.
	Write(target, username string, secret []byte) error

	// Read returns the record for target, or ErrNotFound.
	Read(target string) (*Record, error)

	// Delete removes the record for target. A missing record is not an
	// error; it yields false.
	Delete(target string) (bool, error)
}
