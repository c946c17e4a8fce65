package livedata

import (
	"time"

	"github.com/ecolink/gwbridge/internal/protocol"
)

// Snapshot pairs one successful decode with its capture timestamp.
// Snapshots are never mutated after install; the cache swaps whole
// snapshots, so readers can hold one without copying. A device absent
// from the newest frame is absent from the snapshot.
type Snapshot struct {
	Time    time.Time
	Devices map[string]protocol.DeviceReadings
}

// Empty reports whether no fetch has succeeded yet. The zero capture
// time is the synthetic epoch that forces the first query to fetch.
func (s Snapshot) Empty() bool {
	return s.Time.IsZero()
}
