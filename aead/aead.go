// Package aead implements single-shot authenticated encryption with
// associated data over ChaCha20-Poly1305. It is the chunk codec driven by the
// stream layer, and is usable directly for one-buffer messages.
package aead

import (
	"crypto/cipher"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/mc256/sodium-wrapper/buf"
	"github.com/mc256/sodium-wrapper/secret"
)

const (
	// KeySize is the required key length in bytes.
	KeySize = chacha20poly1305.KeySize

	// NonceSize is the required nonce length in bytes.
	NonceSize = chacha20poly1305.NonceSize

	// Overhead is the length of the authentication tag prepended to every
	// sealed chunk.
	Overhead = chacha20poly1305.Overhead
)

var (
	// ErrKeySize is returned when constructing a Cryptor with a key of the
	// wrong length.
	ErrKeySize = errors.New("aead: key must be 32 bytes")

	// ErrNonceSize is returned when a nonce of the wrong length is supplied.
	ErrNonceSize = errors.New("aead: nonce must be 12 bytes")

	// ErrAuthentication is returned when a chunk fails to verify. No
	// plaintext is ever returned alongside it.
	ErrAuthentication = errors.New("aead: message authentication failed")

	// ErrChunkTooShort is returned when a chunk is shorter than the
	// authentication tag alone.
	ErrChunkTooShort = errors.New("aead: chunk shorter than authentication tag")
)

// Cryptor seals and opens individual chunks under a fixed key. It is
// stateless per call: the caller owns nonce uniqueness.
type Cryptor struct {
	aead cipher.AEAD
}

// New builds a Cryptor from the given key. The key length is validated here;
// nothing else about the key is retained beyond the cipher schedule.
func New(key *secret.Key) (*Cryptor, error) {
	if key.Size() != KeySize {
		return nil, ErrKeySize
	}
	var a cipher.AEAD
	err := key.With(func(k []byte) error {
		var err error
		a, err = chacha20poly1305.New(k)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "aead: initialize cipher")
	}
	return &Cryptor{aead: a}, nil
}

// Seal encrypts plaintext and returns tag‖ciphertext. The header participates
// in the tag but is not part of the output. Output length is
// len(plaintext)+Overhead.
func (c *Cryptor) Seal(header, plaintext []byte, nonce secret.Nonce) ([]byte, error) {
	if nonce.Size() != NonceSize {
		return nil, ErrNonceSize
	}
	// The cipher produces ciphertext‖tag; the wire format carries the tag
	// first.
	sealed := c.aead.Seal(nil, nonce, plaintext, header)
	return buf.Rotate(sealed, len(plaintext)), nil
}

// Open verifies and decrypts a tag‖ciphertext chunk produced by Seal under
// the same header, key and nonce. It returns ErrAuthentication if the tag
// does not verify, and never partial plaintext.
func (c *Cryptor) Open(header, chunk []byte, nonce secret.Nonce) ([]byte, error) {
	if nonce.Size() != NonceSize {
		return nil, ErrNonceSize
	}
	if len(chunk) < Overhead {
		return nil, ErrChunkTooShort
	}
	plaintext, err := c.aead.Open(nil, nonce, buf.Rotate(chunk, Overhead), header)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
