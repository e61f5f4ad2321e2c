// Package telemetry provides monitoring utilities.
package telemetry

import (
	"io"

	"github.com/uber-go/tally"
)

// Bandwidth counts bytes moving through a reader or writer.
type Bandwidth struct {
	c tally.Counter
}

// NewBandwidth builds a Bandwidth publishing to the given counter.
func NewBandwidth(c tally.Counter) *Bandwidth {
	return &Bandwidth{
		c: c,
	}
}

func (b *Bandwidth) Write(d []byte) (int, error) {
	n := len(d)
	b.c.Inc(int64(n))
	return n, nil
}

// WrapReader counts everything read from r.
func (b *Bandwidth) WrapReader(r io.Reader) io.Reader {
	return io.TeeReader(r, b)
}

// WrapWriter counts everything written to w.
func (b *Bandwidth) WrapWriter(w io.Writer) io.Writer {
	return io.MultiWriter(w, b)
}
