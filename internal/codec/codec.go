package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os/user"

	"golang.org/x/crypto/pbkdf2"
)

// ErrDecryption indicates the blob was not produced by this codec under the
// current user identity. Callers treat it as "no usable stored credential".
var ErrDecryption = errors.New("credential blob could not be decrypted")

const (
	keyIterations = 64_000
	keySize       = 32 // AES-256
)

// magic identifies blobs written by this codec; bump the last byte on any
// format change.
var magic = []byte{'C', 'K', 'B', '1'}

// appSalt keeps derived keys specific to this application. It is not a
// secret; the user identity is the secret input.
var appSalt = []byte("credkeeper.v1.password-protection")

// Codec encrypts and decrypts password blobs with a key derived from the
// current OS user identity. No key material is ever written into the blob
// itself, so records only decode for the user that wrote them.
type Codec struct {
	key []byte
}

// New returns a codec keyed to the current OS user.
func New() (*Codec, error) {
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	return ForIdentity(u.Uid, u.Username), nil
}

// ForIdentity returns a codec keyed to an explicit identity. Used by tests to
// simulate records written under a different user.
func ForIdentity(uid, username string) *Codec {
	secret := append([]byte(uid), 0)
	secret = append(secret, []byte(username)...)
	return &Codec{
		key: pbkdf2.Key(secret, appSalt, keyIterations, keySize, sha256.New),
	}
}

// Encrypt seals password into an opaque blob bound to the codec's user
// identity. Layout: magic | nonce | AES-256-GCM ciphertext.
func (c *Codec) Encrypt(password string) ([]byte, error) {
	aead, err := c.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(magic)+len(nonce)+len(password)+aead.Overhead())
	blob = append(blob, magic...)
	blob = append(blob, nonce...)
	return aead.Seal(blob, nonce, []byte(password), magic), nil
}

// Decrypt opens a blob produced by Encrypt. Blobs written by another
// application or under a different user identity fail with ErrDecryption.
func (c *Codec) Decrypt(blob []byte) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	if len(blob) < len(magic)+aead.NonceSize() {
		return "", ErrDecryption
	}
	for i, b := range magic {
		if blob[i] != b {
			return "", ErrDecryption
		}
	}

	nonce := blob[len(magic) : len(magic)+aead.NonceSize()]
	ciphertext := blob[len(magic)+aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, magic)
	if err != nil {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}

func (c *Codec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
