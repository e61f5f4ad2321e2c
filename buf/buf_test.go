package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsume(t *testing.T) {
	head, rest := Consume([]byte("abcdef"), 2)
	assert.Equal(t, []byte("ab"), head)
	assert.Equal(t, []byte("cdef"), rest)
}

func TestClone(t *testing.T) {
	b := []byte{1, 2, 3}
	c := Clone(b)
	assert.Equal(t, b, c)
	c[0] = 9
	assert.Equal(t, byte(1), b[0])
}

func TestRotate(t *testing.T) {
	b := []byte("TAGpayload")
	assert.Equal(t, []byte("payloadTAG"), Rotate(b, 3))
	assert.Equal(t, b, Rotate(Rotate(b, 3), len(b)-3))
	assert.Equal(t, []byte("TAG"), Rotate([]byte("TAG"), 0))
	assert.Equal(t, []byte{}, Rotate(nil, 0))
}
