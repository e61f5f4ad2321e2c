// Package auth computes and verifies secret-key message authentication
// codes. The construction is HMAC-SHA-512-256, matching NaCl's crypto_auth.
package auth

import (
	"github.com/pkg/errors"
	naclauth "golang.org/x/crypto/nacl/auth"

	"github.com/mc256/sodium-wrapper/secret"
)

const (
	// KeySize is the required key length in bytes.
	KeySize = naclauth.KeySize

	// Size is the MAC length in bytes.
	Size = naclauth.Size
)

var (
	// ErrKeySize is returned when the key has the wrong length.
	ErrKeySize = errors.New("auth: key must be 32 bytes")

	// ErrMACSize is returned when a MAC of the wrong length is presented
	// for verification.
	ErrMACSize = errors.New("auth: mac must be 32 bytes")
)

// Sum computes the MAC of message under key.
func Sum(message []byte, key *secret.Key) ([]byte, error) {
	if key.Size() != KeySize {
		return nil, ErrKeySize
	}
	var mac []byte
	err := key.With(func(kb []byte) error {
		var k [KeySize]byte
		copy(k[:], kb)
		defer secret.Wipe(k[:])
		m := naclauth.Sum(message, &k)
		mac = m[:]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mac, nil
}

// Verify reports whether mac authenticates message under key, in constant
// time. A false return carries no error; sizes that cannot possibly verify
// do.
func Verify(message, mac []byte, key *secret.Key) (bool, error) {
	if key.Size() != KeySize {
		return false, ErrKeySize
	}
	if len(mac) != Size {
		return false, ErrMACSize
	}
	var ok bool
	err := key.With(func(kb []byte) error {
		var k [KeySize]byte
		copy(k[:], kb)
		defer secret.Wipe(k[:])
		var m [Size]byte
		copy(m[:], mac)
		ok = naclauth.Verify(m[:], message, &k)
		return nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}
