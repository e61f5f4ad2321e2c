// Package keypair generates curve25519 public/private key pairs, randomly,
// deterministically from a seed, or derived from an existing private key.
package keypair

import (
	"crypto/sha512"

	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"

	"github.com/mc256/sodium-wrapper/buf"
	"github.com/mc256/sodium-wrapper/secret"
)

const (
	// PublicKeySize is the public key length in bytes.
	PublicKeySize = 32

	// PrivateKeySize is the private key length in bytes.
	PrivateKeySize = 32

	// SeedSize is the seed length for deterministic generation.
	SeedSize = 32
)

var (
	// ErrPrivateKeySize is returned when a private key has the wrong length.
	ErrPrivateKeySize = errors.New("keypair: private key must be 32 bytes")

	// ErrSeedSize is returned when a seed has the wrong length.
	ErrSeedSize = errors.New("keypair: seed must be 32 bytes")
)

// KeyPair is a curve25519 key pair. The private half lives in guarded
// memory; the public half is plain bytes.
type KeyPair struct {
	public  []byte
	private *secret.Key
}

// Generate generates a key pair from the system random source.
func Generate() (*KeyPair, error) {
	return fromPrivateBytes(secret.Rand(PrivateKeySize))
}

// FromSeed deterministically derives a key pair from a 32-byte seed: the
// private key is the first half of SHA-512(seed). The seed is wiped.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, ErrSeedSize
	}
	d := sha512.Sum512(seed)
	secret.Wipe(seed)
	priv := buf.Clone(d[:PrivateKeySize])
	secret.Wipe(d[:])
	return fromPrivateBytes(priv)
}

// FromPrivateKey derives the public key from a previously generated private
// key and rebuilds the pair. The private key bytes are wiped.
func FromPrivateKey(private []byte) (*KeyPair, error) {
	if len(private) != PrivateKeySize {
		return nil, ErrPrivateKeySize
	}
	return fromPrivateBytes(private)
}

// fromPrivateBytes consumes priv: the public key is derived by scalar
// multiplication with the curve base point, then priv moves into guarded
// memory and is wiped.
func fromPrivateBytes(priv []byte) (*KeyPair, error) {
	// The curve25519 library clamps the required bits of the scalar, so raw
	// random bytes are a valid private key.
	//
	// Reference: https://github.com/golang/crypto/blob/master/curve25519/curve25519.go#L792-L798
	//
	//	func scalarMult(out, in, base *[32]byte) {
	//		var e [32]byte
	//
	//		copy(e[:], in[:])
	//		e[0] &= 248
	//		e[31] &= 127
	//		e[31] |= 64
	//
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, errors.Wrap(err, "keypair: derive public key")
	}
	sk, err := secret.KeyFromBytes(priv)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		public:  pub,
		private: sk,
	}, nil
}

// Public returns the public key bytes.
func (kp *KeyPair) Public() []byte {
	return buf.Clone(kp.public)
}

// Private returns the guarded private key.
func (kp *KeyPair) Private() *secret.Key {
	return kp.private
}

// Destroy wipes the private key. The pair is unusable afterwards.
func (kp *KeyPair) Destroy() {
	kp.private.Destroy()
}
