package transmit

import "time"

// Config controls transmitter batching, retries, and rate limiting.
// All values are overridable; zero values select the defaults.
type Config struct {
	// Endpoint is the ingestion URL. Empty means offline mode: batches go
	// straight to the failed-batch queue for later replay.
	Endpoint string

	// APIKey is sent as a bearer token on every batch.
	APIKey string

	// DeviceFingerprint identifies this device to the ingestion layer.
	DeviceFingerprint string

	// MaxBatchSize is the maximum events per batch.
	MaxBatchSize int

	// FlushInterval is the periodic flush cadence.
	FlushInterval time.Duration

	// MaxRetries bounds retransmission attempts per batch on 5xx.
	MaxRetries int

	// RetryBase is the initial backoff; doubles per retry.
	RetryBase time.Duration

	// PerMinuteLimit caps accepted events per rolling minute; excess is
	// dropped at enqueue (the explicit overflow valve).
	PerMinuteLimit int
}

// withDefaults fills zero fields with the built-in defaults.
func (c Config) withDefaults() Config {
	if c.MaxBatchSize <= 0 {
		c.MaxBatchSize = 100
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 10 * time.Second
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RetryBase <= 0 {
		c.RetryBase = time.Second
	}
	if c.PerMinuteLimit <= 0 {
		c.PerMinuteLimit = 1000
	}
	return c
}
