// Package buf contains helpers for manipulating byte buffers.
package buf

// Consume n bytes of b and return the rest.
func Consume(b []byte, n int) ([]byte, []byte) {
	return b[:n], b[n:]
}

// Clone returns a copy of b in freshly allocated memory.
func Clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Rotate returns head‖tail of b rearranged as tail‖head, where head is the
// first n bytes. Used to move an authentication tag between the front and the
// back of a sealed chunk.
func Rotate(b []byte, n int) []byte {
	r := make([]byte, 0, len(b))
	r = append(r, b[n:]...)
	r = append(r, b[:n]...)
	return r
}
