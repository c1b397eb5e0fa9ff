package prompt

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user dismisses the prompt. It is a
// normal negative outcome, not a failure.
var ErrCancelled = errors.New("prompt cancelled by user")

// PromptError wraps a platform failure while presenting the prompt itself,
// carrying the originating status code when one is available.
type PromptError struct {
	Code uint32
	Err  error
}

func (e *PromptError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("credential prompt failed (status %d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("credential prompt failed: %v", e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }

// WindowHandle is an opaque platform window handle. Zero means no owner
// window.
type WindowHandle uintptr

// Request carries everything the modal prompt needs to render. Username,
// Password and SaveChecked pre-populate the form.
type Request struct {
	Owner             WindowHandle
	MainInstruction   string
	SupplementaryText string
	ShowSave          bool
	Username          string
	Password          string
	SaveChecked       bool
}

// Response holds the values the user accepted.
type Response struct {
	Username    string
	Password    string
	SaveChecked bool
}

// Prompter presents a modal credential prompt and blocks until the user
// accepts or cancels.
type Prompter interface {
	Prompt(req Request) (*Response, error)
}
