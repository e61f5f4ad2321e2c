package sodium

import (
	"crypto/subtle"
	"hash"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/mc256/sodium-wrapper/aead"
	"github.com/mc256/sodium-wrapper/log"
	"github.com/mc256/sodium-wrapper/secret"
)

const (
	// KeySize is the required encryption key length in bytes.
	KeySize = aead.KeySize

	// NonceSize is the required base nonce length in bytes.
	NonceSize = aead.NonceSize

	// MACSize is the length of the authentication tag carried by every
	// chunk.
	MACSize = aead.Overhead

	// MinHashSize and MaxHashSize bound the digest trailer length.
	MinHashSize = 16
	MaxHashSize = blake2b.Size

	// DefaultHashSize is the digest trailer length used unless overridden.
	DefaultHashSize = blake2b.Size256
)

// header is the constant associated data bound into every chunk's tag. It is
// empty, but the associated-data channel stays exercised for extension.
var header []byte

// StreamCryptor encrypts and decrypts streams of unbounded length in
// authenticated chunks, appending a keyed digest over the whole ciphertext so
// truncation is detected.
//
// A StreamCryptor is immutable after construction. Each Encrypt or Decrypt
// call builds its own running state, so independent operations may run on the
// same configuration from separate goroutines.
type StreamCryptor struct {
	codec     *aead.Cryptor
	digestKey *secret.Key
	base      secret.Nonce
	blockSize int
	hashSize  int
	logger    log.Logger
	metrics   *Metrics
}

// Option configures a StreamCryptor.
type Option func(*StreamCryptor)

// WithLogger attaches a logger. Operations log summaries at debug level.
func WithLogger(l log.Logger) Option {
	return func(s *StreamCryptor) {
		s.logger = log.ForComponent(l, "streamcryptor")
	}
}

// WithMetrics attaches byte and chunk counters.
func WithMetrics(m *Metrics) Option {
	return func(s *StreamCryptor) {
		s.metrics = m
	}
}

// WithHashSize overrides the digest trailer length. Producer and consumer of
// a stream must agree on it.
func WithHashSize(n int) Option {
	return func(s *StreamCryptor) {
		s.hashSize = n
	}
}

// NewStreamCryptor builds a StreamCryptor from an encryption key, a digest
// key, a base nonce and a blocksize. All parameters are validated here; a
// configuration that constructs successfully cannot fail later for
// configuration reasons.
//
// The same (key, digestKey, nonce, blocksize) configuration must be presented
// to decrypt a stream it encrypted; none of the four travel in the stream.
func NewStreamCryptor(key, digestKey *secret.Key, nonce secret.Nonce, blockSize int, opts ...Option) (*StreamCryptor, error) {
	if blockSize < 1 {
		return nil, ErrBlockSize
	}
	if nonce.Size() != NonceSize {
		return nil, aead.ErrNonceSize
	}

	codec, err := aead.New(key)
	if err != nil {
		return nil, err
	}

	s := &StreamCryptor{
		codec:     codec,
		digestKey: digestKey,
		base:      nonce.Clone(),
		blockSize: blockSize,
		hashSize:  DefaultHashSize,
		logger:    log.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hashSize < MinHashSize || s.hashSize > MaxHashSize {
		return nil, ErrHashSize
	}

	// Probe the digest configuration now so key problems surface at
	// construction.
	if _, err := s.newDigest(); err != nil {
		return nil, err
	}

	return s, nil
}

// BlockSize returns the plaintext bytes carried per full chunk.
func (s *StreamCryptor) BlockSize() int {
	return s.blockSize
}

// HashSize returns the digest trailer length in bytes.
func (s *StreamCryptor) HashSize() int {
	return s.hashSize
}

func (s *StreamCryptor) newDigest() (hash.Hash, error) {
	var d hash.Hash
	err := s.digestKey.With(func(k []byte) error {
		var err error
		d, err = blake2b.New(s.hashSize, k)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "sodium: initialize stream digest")
	}
	return d, nil
}

// operation is the running state of one encrypt or decrypt pass: the nonce
// counter seeded from the base nonce and the digest over ciphertext chunks.
// Built fresh per call and discarded, so a StreamCryptor carries nothing
// between operations.
type operation struct {
	nonce  secret.Nonce
	digest hash.Hash
	chunks int64
}

func (s *StreamCryptor) newOperation() (*operation, error) {
	d, err := s.newDigest()
	if err != nil {
		return nil, err
	}
	return &operation{
		nonce:  s.base.Clone(),
		digest: d,
	}, nil
}

// Encrypt reads plaintext from src until EOF and writes the ciphertext
// stream, trailer included, to dst.
//
// The source is consumed in blocks of at most blocksize bytes; every block
// becomes one tag‖ciphertext chunk under the running nonce. The final chunk
// is always emitted, even for an empty source, where it degenerates to a bare
// tag. Failures abort immediately; bytes already written to dst stay written.
func (s *StreamCryptor) Encrypt(dst io.Writer, src io.Reader) error {
	op, err := s.newOperation()
	if err != nil {
		return err
	}

	if s.metrics != nil {
		src = s.metrics.Plaintext.WrapReader(src)
		dst = s.metrics.Ciphertext.WrapWriter(dst)
	}

	out := newDigestWriter(dst, op.digest)
	block := make([]byte, s.blockSize)
	var plaintextBytes int64

	for {
		n, rerr := io.ReadFull(src, block)
		plaintextBytes += int64(n)

		switch rerr {
		case nil:
			// Full block. More input may remain, so the running nonce
			// advances behind it.
			if err := s.sealChunk(out, op, block); err != nil {
				return err
			}
			op.nonce.Increment()
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			// Source exhausted. Exactly one final chunk is emitted from
			// whatever remains, possibly zero bytes, under the current
			// nonce. No further chunk will use this nonce, so it is not
			// incremented.
			if err := s.sealChunk(out, op, block[:n]); err != nil {
				return err
			}
		default:
			return errors.Wrap(rerr, "sodium: read plaintext")
		}
		break
	}

	if _, err := dst.Write(out.Sum(nil)); err != nil {
		return errors.Wrap(err, "sodium: write digest trailer")
	}

	s.logger.Debug("stream encrypted",
		"chunks", op.chunks,
		"plaintext_bytes", plaintextBytes,
	)
	return nil
}

func (s *StreamCryptor) sealChunk(out io.Writer, op *operation, block []byte) error {
	chunk, err := s.codec.Seal(header, block, op.nonce)
	if err != nil {
		return err
	}
	if _, err := out.Write(chunk); err != nil {
		return errors.Wrap(err, "sodium: write ciphertext chunk")
	}
	op.chunks++
	if s.metrics != nil {
		s.metrics.Chunks.Inc(1)
	}
	return nil
}

// Decrypt reads a ciphertext stream produced by Encrypt under the same
// configuration and writes the recovered plaintext to dst.
//
// The source must support seeking: the digest trailer is anchored to the end
// of the stream, so its offset is determined up front and chunks are then
// streamed against an explicit bytes-remaining counter. The recomputed digest
// is compared to the trailer only after every chunk verified; a mismatch
// surfaces as ErrIntegrity. Plaintext already written to dst stays written on
// failure.
func (s *StreamCryptor) Decrypt(dst io.Writer, src io.ReadSeeker) error {
	op, err := s.newOperation()
	if err != nil {
		return err
	}

	// Phase one: locate and save the trailer.
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return errors.Wrap(err, "sodium: seek to stream end")
	}
	if end < int64(s.hashSize) {
		return ErrTruncated
	}
	if _, err := src.Seek(end-int64(s.hashSize), io.SeekStart); err != nil {
		return errors.Wrap(err, "sodium: seek to digest trailer")
	}
	saved := make([]byte, s.hashSize)
	if _, err := io.ReadFull(src, saved); err != nil {
		return errors.Wrap(err, "sodium: read digest trailer")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "sodium: seek to stream start")
	}

	// Phase two: stream chunks. remaining counts ciphertext bytes before
	// the trailer, so the final chunk sizes itself without re-deriving
	// positions mid-loop.
	if s.metrics != nil {
		dst = s.metrics.Plaintext.WrapWriter(dst)
	}
	remaining := end - int64(s.hashSize)
	chunkSize := MACSize + s.blockSize
	chunk := make([]byte, chunkSize)
	var plaintextBytes int64

	for remaining > 0 {
		n := chunkSize
		if remaining < int64(chunkSize) {
			n = int(remaining)
		}
		if _, err := io.ReadFull(src, chunk[:n]); err != nil {
			return errors.Wrap(err, "sodium: read ciphertext chunk")
		}

		plaintext, err := s.codec.Open(header, chunk[:n], op.nonce)
		if err != nil {
			return err
		}
		digestFold(op.digest, chunk[:n])

		if _, err := dst.Write(plaintext); err != nil {
			return errors.Wrap(err, "sodium: write plaintext")
		}
		plaintextBytes += int64(len(plaintext))
		op.chunks++
		if s.metrics != nil {
			s.metrics.Chunks.Inc(1)
			_, _ = s.metrics.Ciphertext.Write(chunk[:n])
		}

		remaining -= int64(n)
		if remaining > 0 {
			op.nonce.Increment()
		}
	}

	// Phase three: the digest authenticates the stream's length. Each
	// chunk's own tag cannot detect dropped trailing chunks.
	if subtle.ConstantTimeCompare(op.digest.Sum(nil), saved) != 1 {
		return ErrIntegrity
	}

	s.logger.Debug("stream decrypted",
		"chunks", op.chunks,
		"plaintext_bytes", plaintextBytes,
	)
	return nil
}
