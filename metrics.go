package sodium

import (
	"github.com/uber-go/tally"

	"github.com/mc256/sodium-wrapper/telemetry"
)

// Metrics is an optional bundle of counters updated by stream operations.
type Metrics struct {
	Plaintext  *telemetry.Bandwidth
	Ciphertext *telemetry.Bandwidth
	Chunks     tally.Counter
}

// NewMetrics builds stream metrics under the given scope.
func NewMetrics(scope tally.Scope) *Metrics {
	return &Metrics{
		Plaintext:  telemetry.NewBandwidth(scope.Counter("plaintext_bytes")),
		Ciphertext: telemetry.NewBandwidth(scope.Counter("ciphertext_bytes")),
		Chunks:     scope.Counter("chunks"),
	}
}
