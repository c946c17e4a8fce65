package gateway

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ecolink/gwbridge/internal/protocol"
	"github.com/rs/zerolog/log"
)

// readBufferSize bounds a single live-data response. The largest frame
// the field table can describe is far below this.
const readBufferSize = 2048

// Client fetches live data from one gateway. It opens a fresh TCP
// connection per attempt; the device closes idle connections quickly
// enough that pooling is not worth carrying.
type Client struct {
	addr string
	cfg  Config
}

func NewClient(addr string, cfg Config) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("gateway: address is required")
	}
	if cfg.FetchAttempts < 1 {
		cfg.FetchAttempts = 1
	}
	return &Client{addr: addr, cfg: cfg}, nil
}

// Addr returns the gateway address this client talks to.
func (c *Client) Addr() string {
	return c.addr
}

// Fetch performs one live-data request/response exchange and decodes the
// payload into per-device readings. A timed-out read is retried up to
// cfg.FetchAttempts times on a fresh connection; any other transport,
// frame, or decode failure aborts immediately.
func (c *Client) Fetch(ctx context.Context) (map[string]protocol.DeviceReadings, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.FetchAttempts; attempt++ {
		raw, err := c.exchange(ctx)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				log.Debug().Int("attempt", attempt).Int("attempts", c.cfg.FetchAttempts).
					Str("addr", c.addr).Msg("live-data read timed out")
				lastErr = err
				continue
			}
			return nil, err
		}
		payload, err := protocol.ParsePayload(raw, protocol.CmdLiveData)
		if err != nil {
			return nil, err
		}
		return protocol.DecodeLiveData(payload)
	}
	return nil, fmt.Errorf("%w: %d attempts to %s: %v", ErrFetchTimeout, c.cfg.FetchAttempts, c.addr, lastErr)
}

// exchange runs one connect/request/read cycle and returns the raw frame.
func (c *Client) exchange(ctx context.Context) ([]byte, error) {
	dialer := net.Dialer{Timeout: c.cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnectFailed, c.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.cfg.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnectFailed, c.addr, err)
	}
	if _, err := conn.Write(protocol.BuildRequest(protocol.CmdLiveData)); err != nil {
		return nil, err
	}

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
