package livedata

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecolink/gwbridge/internal/observability"
	"github.com/ecolink/gwbridge/internal/protocol"
	"github.com/rs/zerolog/log"
)

// FetchFunc performs one live-data round trip against the gateway.
type FetchFunc func(ctx context.Context) (map[string]protocol.DeviceReadings, error)

// Cache owns the current snapshot and decides when a refresh is due.
// The lock only guards the staleness check and the snapshot swap; the
// network fetch runs outside it, so concurrent stale readers may each
// fetch and the last completed fetch wins. That duplicate window is
// bounded by one round trip and keeps readers from ever blocking on I/O.
type Cache struct {
	mu           sync.Mutex
	snap         Snapshot
	pollInterval time.Duration
	fetch        FetchFunc

	now func() time.Time
}

func NewCache(fetch FetchFunc, pollInterval time.Duration) *Cache {
	return &Cache{
		fetch:        fetch,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// PollInterval returns the minimum time between two real fetches.
func (c *Cache) PollInterval() time.Duration {
	return c.pollInterval
}

// EnsureFresh serves the cached snapshot when it is younger than the
// poll interval, otherwise performs one fetch and installs the result.
// On failure the previous snapshot is left untouched and keeps serving
// reads; the error surfaces to the caller.
func (c *Cache) EnsureFresh(ctx context.Context) error {
	c.mu.Lock()
	fresh := c.snap.Time.Add(c.pollInterval).After(c.now())
	c.mu.Unlock()
	if fresh {
		observability.RecordCacheHit()
		return nil
	}

	capturedAt := c.now()
	started := time.Now()
	devices, err := c.fetch(ctx)
	result := classifyFetch(err)
	observability.RecordFetch(result, time.Since(started))
	if err != nil {
		if result == "decode" {
			// Protocol drift, not a flaky network: the field table no
			// longer matches the firmware. Worth a louder signal.
			log.Error().Err(err).Msg("live-data decode failed, field table out of sync?")
		} else {
			log.Warn().Err(err).Msg("live-data fetch failed, serving last snapshot")
		}
		return err
	}

	c.mu.Lock()
	c.snap = Snapshot{Time: capturedAt, Devices: devices}
	c.mu.Unlock()
	log.Debug().Int("devices", len(devices)).Time("captured_at", capturedAt).
		Msg("snapshot installed")
	return nil
}

// Read returns the current snapshot. The contained device map is shared
// but never mutated after install.
func (c *Cache) Read() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

func classifyFetch(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, protocol.ErrUnknownFieldTag), errors.Is(err, protocol.ErrTruncatedField):
		return "decode"
	case errors.Is(err, protocol.ErrShortFrame),
		errors.Is(err, protocol.ErrChecksumMismatch),
		errors.Is(err, protocol.ErrHeaderMismatch),
		errors.Is(err, protocol.ErrCommandMismatch),
		errors.Is(err, protocol.ErrLengthMismatch):
		return "frame"
	default:
		return "transport"
	}
}
