package sign

import (
	"crypto/sha512"
	"io"

	"github.com/pkg/errors"
)

// ErrBlockSize is returned when constructing a stream signer or verifier
// with a blocksize below 1.
var ErrBlockSize = errors.New("sign: blocksize must be at least 1")

// StreamSigner signs streams of unbounded length. The stream is folded
// through SHA-512 in blocks of at most blocksize bytes and the digest is
// signed, so memory use is constant regardless of stream length.
type StreamSigner struct {
	kp        *KeyPair
	blockSize int
}

// NewStreamSigner builds a StreamSigner reading in blocks of blocksize.
func NewStreamSigner(kp *KeyPair, blockSize int) (*StreamSigner, error) {
	if blockSize < 1 {
		return nil, ErrBlockSize
	}
	return &StreamSigner{
		kp:        kp,
		blockSize: blockSize,
	}, nil
}

// Sign consumes src until EOF and returns the signature of the stream.
func (s *StreamSigner) Sign(src io.Reader) ([]byte, error) {
	digest, err := foldStream(src, s.blockSize)
	if err != nil {
		return nil, err
	}
	return s.kp.sign(digest)
}

// StreamVerifier verifies signatures produced by StreamSigner, reading the
// stream in blocks of at most blocksize bytes.
type StreamVerifier struct {
	public    []byte
	blockSize int
}

// NewStreamVerifier builds a StreamVerifier for the given public key.
func NewStreamVerifier(public []byte, blockSize int) (*StreamVerifier, error) {
	if len(public) != PublicKeySize {
		return nil, ErrPublicKeySize
	}
	if blockSize < 1 {
		return nil, ErrBlockSize
	}
	return &StreamVerifier{
		public:    public,
		blockSize: blockSize,
	}, nil
}

// Verify consumes src until EOF and reports whether sig signs the stream.
func (v *StreamVerifier) Verify(src io.Reader, sig []byte) (bool, error) {
	if len(sig) != SignatureSize {
		return false, ErrSignatureSize
	}
	digest, err := foldStream(src, v.blockSize)
	if err != nil {
		return false, err
	}
	return VerifyDetached(digest, sig, v.public)
}

// foldStream reads src blockwise and returns its SHA-512 digest.
func foldStream(src io.Reader, blockSize int) ([]byte, error) {
	h := sha512.New()
	block := make([]byte, blockSize)
	for {
		n, rerr := io.ReadFull(src, block)
		if n > 0 {
			h.Write(block[:n])
		}
		switch rerr {
		case nil:
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			return h.Sum(nil), nil
		default:
			return nil, errors.Wrap(rerr, "sign: read stream")
		}
	}
}
