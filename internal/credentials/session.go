package credentials

import (
	"errors"
	"fmt"

	"github.com/eliziario/credkeeper/internal/codec"
	"github.com/eliziario/credkeeper/internal/keystore"
	"github.com/eliziario/credkeeper/internal/prompt"
)

// Session orchestrates one credential prompt at a time: consult caches,
// optionally invoke the modal prompt, stage the result, then commit on
// Confirm. A Session is not safe for concurrent use; the injected Cache is
// shared between sessions and is.
type Session struct {
	store    keystore.Store
	cache    *Cache
	codec    *codec.Codec
	prompter prompt.Prompter

	// Prompt chrome, settable between requests.
	Owner             prompt.WindowHandle
	MainInstruction   string
	SupplementaryText string

	target       string
	credential   Credential
	saveChecked  bool
	useCache     bool
	confirmToken string
}

// NewSession wires a session to its collaborators. cache may be nil to
// disable instance caching entirely.
func NewSession(store keystore.Store, cache *Cache, cdc *codec.Codec, prompter prompt.Prompter) *Session {
	return &Session{
		store:    store,
		cache:    cache,
		codec:    cdc,
		prompter: prompter,
	}
}

// Request obtains credentials for target, prompting only when neither cache
// tier has usable data. A successful return arms Confirm for this target;
// the caller validates the credentials and then confirms or rejects
// persistence.
func (s *Session) Request(target string, opts Options) (*Result, error) {
	if target == "" {
		return nil, ErrInvalidTarget
	}

	// Any new request invalidates prior prompt state.
	s.target = target
	s.credential = Credential{}
	s.saveChecked = false
	s.confirmToken = ""
	s.useCache = opts.UseInstanceCache

	// Instance-cache hit wins over everything, including a forced UI.
	if opts.UseInstanceCache && s.cache != nil {
		if cred, ok := s.cache.Get(target); ok {
			s.credential = cred
			s.saveChecked = true
			s.confirmToken = target
			return &Result{Credential: cred, FromCache: true}, nil
		}
	}

	req := prompt.Request{
		Owner:             s.Owner,
		MainInstruction:   s.MainInstruction,
		SupplementaryText: s.SupplementaryText,
		ShowSave:          opts.ShowSaveOption,
	}

	hadStored := false
	if opts.ShowSaveOption {
		cred, err := s.readStored(target)
		if err != nil {
			return nil, err
		}
		if cred != nil {
			hadStored = true
			if !opts.ForceUIOnSavedCredentials {
				s.credential = *cred
				s.saveChecked = true
				s.confirmToken = target
				return &Result{Credential: *cred, FromCache: true}, nil
			}
			req.Username = cred.Username
			req.Password = cred.Password
			req.SaveChecked = true
		}
	}

	resp, err := s.prompter.Prompt(req)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return nil, ErrCancelled
		}
		var perr *prompt.PromptError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &prompt.PromptError{Err: err}
	}

	s.credential = Credential{Username: resp.Username, Password: resp.Password}
	s.saveChecked = resp.SaveChecked
	if opts.ShowSaveOption {
		s.confirmToken = target
	}

	// The user unchecked save for a target that had a stored record:
	// delete it now rather than waiting for Confirm, so a later rejected
	// confirm still leaves no stale record behind.
	if hadStored && !resp.SaveChecked {
		if _, err := s.store.Delete(target); err != nil {
			return nil, err
		}
	}

	return &Result{Credential: s.credential, FromCache: false}, nil
}

// Confirm commits or rejects persistence of the credentials from the most
// recent successful Request. It is single-use: a second call without a new
// request fails with ErrInvalidState.
func (s *Session) Confirm(accept bool) error {
	if s.confirmToken == "" || s.confirmToken != s.target {
		return ErrInvalidState
	}
	s.confirmToken = ""

	if !accept || !s.saveChecked {
		return nil
	}

	secret, err := s.codec.Encrypt(s.credential.Password)
	if err != nil {
		return fmt.Errorf("failed to protect credential: %w", err)
	}
	if err := s.store.Write(s.target, s.credential.Username, secret); err != nil {
		return err
	}

	// Best-effort local memory; cannot fail.
	if s.useCache && s.cache != nil {
		s.cache.Set(s.target, s.credential)
	}
	return nil
}

// DeleteCredential removes target from both cache tiers, reporting whether
// either removal found something.
func (s *Session) DeleteCredential(target string) (bool, error) {
	if target == "" {
		return false, ErrInvalidTarget
	}

	removed := false
	if s.cache != nil {
		removed = s.cache.Remove(target)
	}

	existed, err := s.store.Delete(target)
	if err != nil {
		return false, err
	}
	return removed || existed, nil
}

// IsSaveChecked reports the save-checkbox state from the most recent prompt
// or cache hit.
func (s *Session) IsSaveChecked() bool {
	return s.saveChecked
}

// readStored fetches and decodes the stored record for target. A missing
// record, or one that does not decode under the current user identity,
// yields (nil, nil): both are tolerated as "no usable stored credential".
func (s *Session) readStored(target string) (*Credential, error) {
	rec, err := s.store.Read(target)
	if err != nil {
		if errors.Is(err, keystore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	password, err := s.codec.Decrypt(rec.Secret)
	if err != nil {
		if errors.Is(err, codec.ErrDecryption) {
			return nil, nil
		}
		return nil, err
	}
	return &Credential{Username: rec.Username, Password: password}, nil
}
