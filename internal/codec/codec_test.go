package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := ForIdentity("1000", "tester")

	for _, password := range []string{"secret", "", "pa ss wörd ✓", "with\x00null"} {
		blob, err := c.Encrypt(password)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", password, err)
		}

		got, err := c.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt failed for %q: %v", password, err)
		}
		if got != password {
			t.Errorf("Round trip mismatch: expected %q, got %q", password, got)
		}
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	c := ForIdentity("1000", "tester")

	a, err := c.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("Expected distinct blobs for repeated encryption of the same password")
	}
}

func TestDecryptForeignIdentity(t *testing.T) {
	blob, err := ForIdentity("1000", "tester").Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	_, err = ForIdentity("9999", "someone-else").Decrypt(blob)
	if !errors.Is(err, ErrDecryption) {
		t.Errorf("Expected ErrDecryption, got %v", err)
	}
}

func TestDecryptTamperedBlob(t *testing.T) {
	c := ForIdentity("1000", "tester")
	blob, err := c.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	blob[len(blob)-1] ^= 0xff
	if _, err := c.Decrypt(blob); !errors.Is(err, ErrDecryption) {
		t.Errorf("Expected ErrDecryption for tampered blob, got %v", err)
	}
}

func TestDecryptGarbage(t *testing.T) {
	c := ForIdentity("1000", "tester")

	for _, blob := range [][]byte{nil, {}, []byte("short"), []byte("not-a-credential-blob-at-all")} {
		if _, err := c.Decrypt(blob); !errors.Is(err, ErrDecryption) {
			t.Errorf("Expected ErrDecryption for %q, got %v", blob, err)
		}
	}
}

func TestNewUsesCurrentUser(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	blob, err := c.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decrypt(blob)
	if err != nil {
		t.Fatal(err)
	}
	if got != "secret" {
		t.Errorf("Expected round trip for current user, got %q", got)
	}
}
