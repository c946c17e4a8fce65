package livedata

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ecolink/gwbridge/internal/protocol"
)

func outdoorReadings() map[string]protocol.DeviceReadings {
	return map[string]protocol.DeviceReadings{
		"outdoor": {protocol.KindTemperature: 23.5, protocol.KindHumidity: 55},
	}
}

func TestEnsureFreshFetchesOncePerInterval(t *testing.T) {
	var fetches int
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base

	c := NewCache(func(context.Context) (map[string]protocol.DeviceReadings, error) {
		fetches++
		return outdoorReadings(), nil
	}, 180*time.Second)
	c.now = func() time.Time { return current }

	if err := c.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("expected 1 fetch, got %d", fetches)
	}

	current = base.Add(10 * time.Second)
	if err := c.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("cached ensure: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("cache hit performed I/O: %d fetches", fetches)
	}

	current = base.Add(181 * time.Second)
	if err := c.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("stale ensure: %v", err)
	}
	if fetches != 2 {
		t.Fatalf("expected exactly one refetch, got %d total", fetches)
	}
	if got := c.Read().Time; !got.Equal(current) {
		t.Fatalf("snapshot timestamp: got %v want %v", got, current)
	}
}

func TestEnsureFreshFailureRetainsSnapshot(t *testing.T) {
	var fail bool
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base

	c := NewCache(func(context.Context) (map[string]protocol.DeviceReadings, error) {
		if fail {
			return nil, errors.New("gateway: connect failed")
		}
		return outdoorReadings(), nil
	}, 180*time.Second)
	c.now = func() time.Time { return current }

	if err := c.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	seeded := c.Read()

	fail = true
	current = base.Add(time.Hour)
	if err := c.EnsureFresh(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}

	after := c.Read()
	if !after.Time.Equal(seeded.Time) {
		t.Fatalf("failed refresh replaced the snapshot: %v vs %v", after.Time, seeded.Time)
	}
	if after.Devices["outdoor"][protocol.KindTemperature] != 23.5 {
		t.Fatalf("stale snapshot no longer serves readings")
	}
}

func TestEnsureFreshFirstFetchFailure(t *testing.T) {
	c := NewCache(func(context.Context) (map[string]protocol.DeviceReadings, error) {
		return nil, errors.New("gateway: connect failed")
	}, 180*time.Second)

	if err := c.EnsureFresh(context.Background()); err == nil {
		t.Fatalf("expected error before first successful fetch")
	}
	if !c.Read().Empty() {
		t.Fatalf("expected empty snapshot")
	}
}

func TestEnsureFreshDecodeFailureKeepsOldState(t *testing.T) {
	var drift bool
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base

	c := NewCache(func(context.Context) (map[string]protocol.DeviceReadings, error) {
		if drift {
			return nil, protocol.ErrUnknownFieldTag
		}
		return outdoorReadings(), nil
	}, 180*time.Second)
	c.now = func() time.Time { return current }

	if err := c.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	drift = true
	current = base.Add(time.Hour)
	err := c.EnsureFresh(context.Background())
	if !errors.Is(err, protocol.ErrUnknownFieldTag) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if c.Read().Empty() {
		t.Fatalf("decode failure must not drop the last good snapshot")
	}
}

func TestConcurrentReadersObserveConsistentSnapshots(t *testing.T) {
	c := NewCache(func(context.Context) (map[string]protocol.DeviceReadings, error) {
		return outdoorReadings(), nil
	}, time.Nanosecond)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_ = c.EnsureFresh(context.Background())
				snap := c.Read()
				if snap.Empty() {
					continue
				}
				if snap.Devices["outdoor"][protocol.KindHumidity] != 55 {
					t.Error("torn snapshot observed")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestClassifyFetch(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{protocol.ErrUnknownFieldTag, "decode"},
		{protocol.ErrTruncatedField, "decode"},
		{protocol.ErrChecksumMismatch, "frame"},
		{protocol.ErrLengthMismatch, "frame"},
		{errors.New("dial tcp: timeout"), "transport"},
	}
	for _, tc := range cases {
		if got := classifyFetch(tc.err); got != tc.want {
			t.Fatalf("classifyFetch(%v): got %q want %q", tc.err, got, tc.want)
		}
	}
}
