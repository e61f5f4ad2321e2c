package sodium

import "github.com/pkg/errors"

var (
	// ErrBlockSize is returned when constructing a StreamCryptor with a
	// blocksize below 1.
	ErrBlockSize = errors.New("sodium: blocksize must be at least 1")

	// ErrHashSize is returned when the digest trailer size is outside the
	// range supported by the keyed hash.
	ErrHashSize = errors.New("sodium: digest size out of range")

	// ErrIntegrity is returned when the recomputed stream digest does not
	// match the trailer. Every chunk verified individually; the stream as a
	// whole was truncated, reordered or had its trailer corrupted.
	ErrIntegrity = errors.New("sodium: stream digest mismatch")

	// ErrTruncated is returned when the ciphertext stream is shorter than
	// the digest trailer alone.
	ErrTruncated = errors.New("sodium: stream shorter than digest trailer")
)
