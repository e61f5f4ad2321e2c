// Package secret provides protected containers for key material and the
// nonce type shared by the crypto packages.
package secret

import (
	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

// ErrKeyDestroyed is returned when a key is used after Destroy.
var ErrKeyDestroyed = errors.New("secret: key has been destroyed")

// Key holds secret bytes in guarded memory. The backing pages are locked
// against swap and surrounded by canaries; the key is read-only after
// construction and can additionally be moved to a no-access state while idle.
//
// The zero value is not usable; construct with NewKey or KeyFromBytes.
type Key struct {
	buf  *memguard.LockedBuffer
	enc  *memguard.Enclave
	size int
}

// NewKey generates a key of the given size from the system random source.
// The key starts out read-only.
func NewKey(size int) (*Key, error) {
	if size < 1 {
		return nil, errors.New("secret: key size must be at least 1")
	}
	b := memguard.NewBufferRandom(size)
	b.Freeze()
	return &Key{buf: b, size: size}, nil
}

// KeyFromBytes moves the given bytes into a guarded buffer. The source slice
// is wiped. The key starts out read-only.
func KeyFromBytes(b []byte) (*Key, error) {
	if len(b) < 1 {
		return nil, errors.New("secret: key size must be at least 1")
	}
	lb := memguard.NewBufferFromBytes(b)
	lb.Freeze()
	return &Key{buf: lb, size: lb.Size()}, nil
}

// Size returns the key length in bytes. Valid in any state, including
// no-access.
func (k *Key) Size() int {
	return k.size
}

// With exposes the key bytes to fn for the duration of the call. If the key
// is in the no-access state it is opened for the call and sealed again before
// With returns, so idle keys stay unreadable. fn must not retain the slice.
func (k *Key) With(fn func([]byte) error) error {
	if k.enc != nil {
		lb, err := k.enc.Open()
		if err != nil {
			return errors.Wrap(err, "secret: open sealed key")
		}
		defer func() {
			k.enc = lb.Seal()
		}()
		return fn(lb.Bytes())
	}
	if k.buf == nil || !k.buf.IsAlive() {
		return ErrKeyDestroyed
	}
	return fn(k.buf.Bytes())
}

// ReadOnly moves the key to the read-only state, opening it first if it was
// in the no-access state.
func (k *Key) ReadOnly() error {
	if k.enc != nil {
		lb, err := k.enc.Open()
		if err != nil {
			return errors.Wrap(err, "secret: open sealed key")
		}
		k.buf, k.enc = lb, nil
	}
	if k.buf == nil || !k.buf.IsAlive() {
		return ErrKeyDestroyed
	}
	k.buf.Freeze()
	return nil
}

// Mutable moves the key to the read-write state.
func (k *Key) Mutable() error {
	if err := k.ReadOnly(); err != nil {
		return err
	}
	k.buf.Melt()
	return nil
}

// NoAccess seals the key into an encrypted enclave. The plaintext key bytes
// leave memory until the next With, ReadOnly or Mutable call.
func (k *Key) NoAccess() error {
	if k.enc != nil {
		return nil
	}
	if k.buf == nil || !k.buf.IsAlive() {
		return ErrKeyDestroyed
	}
	k.enc = k.buf.Seal()
	k.buf = nil
	return nil
}

// Destroy wipes the key material. The key is unusable afterwards.
func (k *Key) Destroy() {
	if k.enc != nil {
		if lb, err := k.enc.Open(); err == nil {
			lb.Destroy()
		}
		k.enc = nil
	}
	if k.buf != nil {
		k.buf.Destroy()
		k.buf = nil
	}
}
