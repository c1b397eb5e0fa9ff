//go:build !windows

package keystore

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func newTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	keyring.MockInit()
	return NewKeyring("credkeeper-test", false)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestKeyring(t)
	secret := []byte{0x01, 0x02, 0xfe, 0xff}

	if err := store.Write("App_test", "alice", secret); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	rec, err := store.Read("App_test")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if rec.Username != "alice" {
		t.Errorf("Expected username alice, got %q", rec.Username)
	}
	if len(rec.Secret) != len(secret) {
		t.Fatalf("Secret length mismatch: expected %d, got %d", len(secret), len(rec.Secret))
	}
	for i := range secret {
		if rec.Secret[i] != secret[i] {
			t.Errorf("Secret byte %d mismatch: expected %x, got %x", i, secret[i], rec.Secret[i])
		}
	}
}

func TestWriteOverwrites(t *testing.T) {
	store := newTestKeyring(t)

	if err := store.Write("App_test", "alice", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("App_test", "bob", []byte("new")); err != nil {
		t.Fatal(err)
	}

	rec, err := store.Read("App_test")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Username != "bob" {
		t.Errorf("Expected overwritten username bob, got %q", rec.Username)
	}
}

func TestReadMissingRecord(t *testing.T) {
	store := newTestKeyring(t)

	_, err := store.Read("App_absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	store := newTestKeyring(t)

	if err := store.Write("App_test", "alice", []byte("secret")); err != nil {
		t.Fatal(err)
	}

	existed, err := store.Delete("App_test")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !existed {
		t.Error("Expected first delete to find the record")
	}

	existed, err = store.Delete("App_test")
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if existed {
		t.Error("Expected second delete to find nothing")
	}
}

func TestReadForeignEntry(t *testing.T) {
	store := newTestKeyring(t)

	// An entry written by another application, not in our record shape.
	if err := keyring.Set("credkeeper-test", "App_foreign", "just a password"); err != nil {
		t.Fatal(err)
	}

	_, err := store.Read("App_foreign")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected foreign entry to read as ErrNotFound, got %v", err)
	}
}

func TestDecodeEntryBase64Prefix(t *testing.T) {
	data, err := decodeEntry("go-keyring-base64:aGVsbG8=")
	if err != nil {
		t.Fatalf("decodeEntry failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected decoded value hello, got %q", data)
	}

	data, err = decodeEntry("plain value")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "plain value" {
		t.Errorf("Expected passthrough, got %q", data)
	}
}

func TestStoreErrorFormatsCode(t *testing.T) {
	err := &StoreError{Op: "write", Code: 1326, Err: errors.New("logon failure")}
	if got := err.Error(); got != "credential store write failed (status 1326): logon failure" {
		t.Errorf("Unexpected error string: %q", got)
	}

	err = &StoreError{Op: "read", Err: errors.New("backend unavailable")}
	if got := err.Error(); got != "credential store read failed: backend unavailable" {
		t.Errorf("Unexpected error string: %q", got)
	}
}
