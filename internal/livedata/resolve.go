package livedata

import (
	"strings"
	"time"

	"github.com/ecolink/gwbridge/internal/protocol"
)

// APIVersion identifies the shape of the whole-snapshot view.
const APIVersion = "v1"

// Overview is the whole-snapshot view answered for the root path.
type Overview struct {
	APIVersion          string                             `json:"api_version"`
	CapturedAt          time.Time                          `json:"captured_at"`
	PollIntervalSeconds float64                            `json:"poll_interval_seconds"`
	Devices             map[string]protocol.DeviceReadings `json:"devices"`
}

// Resolve maps a /-delimited path onto the current snapshot:
// no segments yield the whole-snapshot view, one segment a device's
// reading set, two segments a single scaled value. Matching is
// lowercase-normalized and empty segments (duplicate or trailing
// separators) are ignored. Misses return found=false.
func (c *Cache) Resolve(path string) (any, bool) {
	segments := splitPath(path)
	snap := c.Read()

	switch len(segments) {
	case 0:
		return Overview{
			APIVersion:          APIVersion,
			CapturedAt:          snap.Time,
			PollIntervalSeconds: c.pollInterval.Seconds(),
			Devices:             snap.Devices,
		}, true
	case 1:
		readings, ok := snap.Devices[segments[0]]
		if !ok {
			return nil, false
		}
		return readings, true
	case 2:
		readings, ok := snap.Devices[segments[0]]
		if !ok {
			return nil, false
		}
		value, ok := readings[protocol.Kind(segments[1])]
		if !ok {
			return nil, false
		}
		return value, true
	default:
		return nil, false
	}
}

func splitPath(path string) []string {
	parts := strings.Split(strings.ToLower(path), "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
