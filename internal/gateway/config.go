package gateway

import "time"

// Config holds transport reliability knobs for discovery and fetch.
type Config struct {
	ConnectTimeout   time.Duration
	ReadTimeout      time.Duration
	FetchAttempts    int
	DiscoveryTimeout time.Duration
	DiscoveryRetries int
	BroadcastPort    int
}

// DefaultConfig returns the defaults the gateway firmware tolerates well:
// short reads with a few retries rather than one long wait.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:   5 * time.Second,
		ReadTimeout:      2 * time.Second,
		FetchAttempts:    3,
		DiscoveryTimeout: 5 * time.Second,
		DiscoveryRetries: 3,
		BroadcastPort:    46000,
	}
}
