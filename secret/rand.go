package secret

import (
	"crypto/rand"

	"github.com/awnumar/memguard"
)

// Rand generates n bytes of cryptographic random. Panics if the read fails.
func Rand(n int) []byte {
	x := make([]byte, n)
	_, err := rand.Read(x)
	if err != nil {
		panic(err)
	}
	return x
}

// Wipe zeroes b.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
