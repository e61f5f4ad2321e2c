package secret

import "crypto/subtle"

// Nonce is a fixed-width public value fed to an AEAD alongside the key.
// Nonces are not secret, but reusing one under the same key is fatal to the
// scheme, so every user of this type follows a strict increment discipline.
type Nonce []byte

// NewNonce generates a random nonce of the given size.
func NewNonce(size int) Nonce {
	return Nonce(Rand(size))
}

// NonceFromBytes copies b into a new Nonce.
func NonceFromBytes(b []byte) Nonce {
	n := make(Nonce, len(b))
	copy(n, b)
	return n
}

// Size returns the nonce width in bytes.
func (n Nonce) Size() int {
	return len(n)
}

// Clone returns an independent copy of the nonce. Callers that need a running
// counter clone the base nonce and increment the copy, leaving the base
// untouched for a later pass over the same stream.
func (n Nonce) Clone() Nonce {
	return NonceFromBytes(n)
}

// Increment adds one to the nonce, treating the full width as a big-endian
// counter. The counter space is assumed never to be exhausted.
func (n Nonce) Increment() {
	for i := len(n) - 1; i >= 0; i-- {
		n[i]++
		if n[i] != 0 {
			return
		}
	}
}

// Equal reports whether two nonces match, in constant time.
func (n Nonce) Equal(other Nonce) bool {
	return subtle.ConstantTimeCompare(n, other) == 1
}
