package aead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mc256/sodium-wrapper/secret"
)

func testKey(t *testing.T) *secret.Key {
	t.Helper()
	b := make([]byte, KeySize)
	for i := range b {
		b[i] = byte(i)
	}
	k, err := secret.KeyFromBytes(b)
	require.NoError(t, err)
	return k
}

func testNonce() secret.Nonce {
	return secret.NonceFromBytes([]byte{
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5,
		0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
	})
}

func TestSealOpenRoundTrip(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	for _, plaintext := range [][]byte{nil, []byte("x"), []byte("hello, chunk")} {
		chunk, err := c.Seal(nil, plaintext, testNonce())
		require.NoError(t, err)
		require.Len(t, chunk, len(plaintext)+Overhead)

		recovered, err := c.Open(nil, chunk, testNonce())
		require.NoError(t, err)
		assert.Equal(t, []byte(plaintext), []byte(recovered))
	}
}

func TestSealDeterministic(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	a, err := c.Seal(nil, []byte("payload"), testNonce())
	require.NoError(t, err)
	b, err := c.Seal(nil, []byte("payload"), testNonce())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOpenTampered(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	chunk, err := c.Seal(nil, []byte("payload"), testNonce())
	require.NoError(t, err)

	for i := range chunk {
		tampered := make([]byte, len(chunk))
		copy(tampered, chunk)
		tampered[i] ^= 0x80

		_, err := c.Open(nil, tampered, testNonce())
		require.Equal(t, ErrAuthentication, err, "byte %d", i)
	}
}

func TestOpenWrongNonce(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	chunk, err := c.Seal(nil, []byte("payload"), testNonce())
	require.NoError(t, err)

	wrong := testNonce()
	wrong.Increment()
	_, err = c.Open(nil, chunk, wrong)
	assert.Equal(t, ErrAuthentication, err)
}

func TestOpenWrongHeader(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	chunk, err := c.Seal([]byte("header"), []byte("payload"), testNonce())
	require.NoError(t, err)

	recovered, err := c.Open([]byte("header"), chunk, testNonce())
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), recovered)

	_, err = c.Open([]byte("other"), chunk, testNonce())
	assert.Equal(t, ErrAuthentication, err)
}

func TestOpenTooShort(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	_, err = c.Open(nil, make([]byte, Overhead-1), testNonce())
	assert.Equal(t, ErrChunkTooShort, err)
}

func TestNewKeySize(t *testing.T) {
	k, err := secret.KeyFromBytes(make([]byte, 16))
	require.NoError(t, err)
	_, err = New(k)
	assert.Equal(t, ErrKeySize, err)
}

func TestNonceSize(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	short := secret.NonceFromBytes(make([]byte, NonceSize-1))
	_, err = c.Seal(nil, []byte("payload"), short)
	assert.Equal(t, ErrNonceSize, err)
	_, err = c.Open(nil, make([]byte, Overhead), short)
	assert.Equal(t, ErrNonceSize, err)
}
