package keystore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

const DefaultService = "credkeeper"

// Keyring stores records in the OS credential store. On Windows it talks to
// the Credential Manager directly so writes can request enterprise
// persistence; everywhere else it goes through the system keyring.
type Keyring struct {
	service          string
	requireBiometric bool
}

func NewKeyring(service string, requireBiometric bool) *Keyring {
	if service == "" {
		service = DefaultService
	}
	return &Keyring{
		service:          service,
		requireBiometric: requireBiometric,
	}
}

// storedRecord is the JSON shape kept inside a keyring entry.
type storedRecord struct {
	Username string `json:"username"`
	Secret   []byte `json:"secret"`
}

func (k *Keyring) Write(target, username string, secret []byte) error {
	data, err := json.Marshal(storedRecord{Username: username, Secret: secret})
	if err != nil {
		return &StoreError{Op: "write", Err: fmt.Errorf("failed to encode record: %w", err)}
	}
	return k.writeEntry(target, username, data)
}

func (k *Keyring) Read(target string) (*Record, error) {
	if k.requireBiometric {
		if err := authenticate(); err != nil {
			return nil, &StoreError{Op: "read", Err: err}
		}
	}

	data, err := k.readEntry(target)
	if err != nil {
		return nil, err
	}

	var rec storedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// A record written by a foreign application. Report it as absent
		// rather than failing the lookup.
		return nil, ErrNotFound
	}
	return &Record{Username: rec.Username, Secret: rec.Secret}, nil
}

func (k *Keyring) Delete(target string) (bool, error) {
	return k.deleteEntry(target)
}

// decodeEntry handles the base64 prefix go-keyring applies to values that
// are not valid UTF-8.
func decodeEntry(value string) ([]byte, error) {
	if strings.HasPrefix(value, "go-keyring-base64:") {
		encoded := strings.TrimPrefix(value, "go-keyring-base64:")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 entry: %w", err)
		}
		return decoded, nil
	}
	return []byte(value), nil
}
