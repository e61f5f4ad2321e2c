package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceIncrement(t *testing.T) {
	cases := []struct {
		before []byte
		after  []byte
	}{
		{[]byte{0x00, 0x00, 0x00}, []byte{0x00, 0x00, 0x01}},
		{[]byte{0x00, 0x00, 0xff}, []byte{0x00, 0x01, 0x00}},
		{[]byte{0x00, 0xff, 0xff}, []byte{0x01, 0x00, 0x00}},
		{[]byte{0x12, 0x34, 0x56}, []byte{0x12, 0x34, 0x57}},
		{[]byte{0xff, 0xff, 0xff}, []byte{0x00, 0x00, 0x00}},
	}
	for _, c := range cases {
		n := NonceFromBytes(c.before)
		n.Increment()
		assert.Equal(t, Nonce(c.after), n)
	}
}

func TestNonceSequenceDistinct(t *testing.T) {
	n := NonceFromBytes(make([]byte, 12))
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		require.False(t, seen[string(n)])
		seen[string(n)] = true
		n.Increment()
	}
}

func TestNonceCloneIndependent(t *testing.T) {
	base := NonceFromBytes([]byte{0x01, 0x02, 0x03})
	running := base.Clone()
	running.Increment()

	assert.Equal(t, Nonce([]byte{0x01, 0x02, 0x03}), base)
	assert.Equal(t, Nonce([]byte{0x01, 0x02, 0x04}), running)
}

func TestNonceEqual(t *testing.T) {
	a := NewNonce(12)
	require.Equal(t, 12, a.Size())
	assert.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b.Increment()
	assert.False(t, a.Equal(b))
}
