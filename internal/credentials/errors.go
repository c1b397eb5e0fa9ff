package credentials

import (
	"errors"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/keystore"
	"github.com/eliziario/credkeeper/internal/prompt"
)

// The failure taxonomy for credential operations. Store and prompt failures
// carry the originating platform status code; codes with no specific mapping
// pass through unchanged for diagnostics.
var (
	// ErrInvalidTarget rejects an empty target name.
	ErrInvalidTarget = errors.New("credential target must not be empty")

	// ErrInvalidState rejects a confirm with no matching prompt or cache
	// hit, or a second confirm after the token was consumed.
	ErrInvalidState = errors.New("confirm is only valid after a successful request for the same target")

	// ErrCancelled is the clean negative outcome of a dismissed prompt.
	ErrCancelled = prompt.ErrCancelled

	// ErrNotFound reports no stored record for the target.
	ErrNotFound = keystore.ErrNotFound

	// ErrDecryption reports a record that does not decode under the
	// current user identity. Request tolerates it as "not found".
	ErrDecryption = codec.ErrDecryption
)

// StoreError is a platform credential-store failure with its status code.
type StoreError = keystore.StoreError

// PromptError is a platform failure while presenting the prompt.
type PromptError = prompt.PromptError

// IsCancelled reports whether err is the user dismissing the prompt, which
// callers treat as a normal declined outcome.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
