// Package check provides error checking helpers.
package check

import (
	"io"

	"github.com/pkg/errors"

	sodium "github.com/mc256/sodium-wrapper"
	"github.com/mc256/sodium-wrapper/aead"
	"github.com/mc256/sodium-wrapper/log"
)

// EOF checks if err was caused by io.EOF.
func EOF(err error) bool {
	return errors.Cause(err) == io.EOF
}

// Auth checks if err was caused by a chunk failing to authenticate,
// including truncation mid-chunk.
func Auth(err error) bool {
	cause := errors.Cause(err)
	return cause == aead.ErrAuthentication || cause == aead.ErrChunkTooShort
}

// Integrity checks if err was caused by stream-level integrity failure: a
// digest mismatch or a stream too short to carry its trailer.
func Integrity(err error) bool {
	cause := errors.Cause(err)
	return cause == sodium.ErrIntegrity || cause == sodium.ErrTruncated
}

// Config checks if err was caused by invalid construction parameters.
func Config(err error) bool {
	cause := errors.Cause(err)
	switch cause {
	case sodium.ErrBlockSize, sodium.ErrHashSize, aead.ErrKeySize, aead.ErrNonceSize:
		return true
	}
	return false
}

// MustClose closes c and panics on error.
func MustClose(c io.Closer) {
	if err := c.Close(); err != nil {
		panic(err)
	}
}

// Close closes c and logs an error, if it occurs.
func Close(logger log.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Err(logger, err, "close failed")
	}
}
