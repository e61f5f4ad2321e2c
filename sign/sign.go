// Package sign provides public-key signatures over Ed25519, in attached and
// detached form, plus blockwise signing and verification of streams.
package sign

import (
	"crypto/rand"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/pkg/errors"

	"github.com/mc256/sodium-wrapper/buf"
	"github.com/mc256/sodium-wrapper/secret"
)

const (
	// PublicKeySize is the public key length in bytes.
	PublicKeySize = ed25519.PublicKeySize

	// PrivateKeySize is the private key length in bytes.
	PrivateKeySize = ed25519.PrivateKeySize

	// SignatureSize is the signature length in bytes.
	SignatureSize = ed25519.SignatureSize

	// SeedSize is the seed length for deterministic key generation.
	SeedSize = ed25519.SeedSize
)

var (
	// ErrPublicKeySize is returned when a public key has the wrong length.
	ErrPublicKeySize = errors.New("sign: public key must be 32 bytes")

	// ErrSeedSize is returned when a seed has the wrong length.
	ErrSeedSize = errors.New("sign: seed must be 32 bytes")

	// ErrSignature is returned when a signature does not verify on an
	// attached message.
	ErrSignature = errors.New("sign: signature verification failed")

	// ErrSignatureSize is returned when a signed message is too short to
	// carry a signature, or a detached signature has the wrong length.
	ErrSignatureSize = errors.New("sign: signature must be 64 bytes")
)

// KeyPair is an Ed25519 signing key pair. The private half lives in guarded
// memory; the public half is plain bytes.
type KeyPair struct {
	public  ed25519.PublicKey
	private *secret.Key
}

// GenerateKeyPair generates a key pair from the system random source.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "sign: generate key pair")
	}
	return newKeyPair(pub, priv)
}

// KeyPairFromSeed deterministically derives a key pair from a 32-byte seed.
// The seed is wiped.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, ErrSeedSize
	}
	priv := ed25519.NewKeyFromSeed(seed)
	secret.Wipe(seed)
	pub := make([]byte, PublicKeySize)
	copy(pub, priv[SeedSize:])
	return newKeyPair(pub, priv)
}

func newKeyPair(pub ed25519.PublicKey, priv ed25519.PrivateKey) (*KeyPair, error) {
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

func (kp *KeyPair) sign(message []byte) ([]byte, error) {
	var sig []byte
	err := kp.private.With(func(pk []byte) error {
		sig = ed25519.Sign(ed25519.PrivateKey(pk), message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// Sign returns signature‖message. The message travels with its signature and
// is recovered by Open.
func Sign(message []byte, kp *KeyPair) ([]byte, error) {
	sig, err := kp.sign(message)
	if err != nil {
		return nil, err
	}
	signed := make([]byte, 0, SignatureSize+len(message))
	signed = append(signed, sig...)
	signed = append(signed, message...)
	return signed, nil
}

// Open verifies a signature‖message produced by Sign and returns the
// message. ErrSignature is returned on verification failure; no message
// bytes are returned with it.
func Open(signed, public []byte) ([]byte, error) {
	if len(public) != PublicKeySize {
		return nil, ErrPublicKeySize
	}
	if len(signed) < SignatureSize {
		return nil, ErrSignatureSize
	}
	sig, message := buf.Consume(signed, SignatureSize)
	if !ed25519.Verify(ed25519.PublicKey(public), message, sig) {
		return nil, ErrSignature
	}
	return buf.Clone(message), nil
}

// Detached returns the bare signature of message.
func Detached(message []byte, kp *KeyPair) ([]byte, error) {
	return kp.sign(message)
}

// VerifyDetached reports whether sig is a valid signature of message under
// the given public key.
func VerifyDetached(message, sig, public []byte) (bool, error) {
	if len(public) != PublicKeySize {
		return false, ErrPublicKeySize
	}
	if len(sig) != SignatureSize {
		return false, ErrSignatureSize
	}
	return ed25519.Verify(ed25519.PublicKey(public), message, sig), nil
}
