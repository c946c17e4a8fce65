package gateway

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ecolink/gwbridge/internal/protocol"
	"github.com/rs/zerolog/log"
)

// deviceFamilyPrefix is the start of the ASCII station name every
// supported gateway reports in its discovery reply.
const deviceFamilyPrefix = "GW"

// minDiscoveryReplyLen guards the fixed offsets below: IPv4 at 11..14,
// TCP port at 15..16, station name from 18 to the second-to-last byte.
const minDiscoveryReplyLen = 41

// Discovered identifies a gateway located on the local network.
type Discovered struct {
	IP   net.IP
	Port uint16
	Name string
}

// Addr returns the host:port of the gateway's TCP live-data service.
func (d Discovered) Addr() string {
	return net.JoinHostPort(d.IP.String(), strconv.Itoa(int(d.Port)))
}

// Discover broadcasts a probe on the local network and waits for the
// first gateway to answer. Each retry waits cfg.DiscoveryTimeout for a
// reply; a malformed reply fails discovery rather than being skipped.
func Discover(cfg Config) (Discovered, error) {
	dest := &net.UDPAddr{IP: net.IPv4bcast, Port: cfg.BroadcastPort}
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return Discovered{}, fmt.Errorf("%w: %v", ErrDiscoveryFailed, err)
	}
	defer conn.Close()

	probe := protocol.BuildRequest(protocol.CmdBroadcast)
	buf := make([]byte, 1024)
	attempts := max(cfg.DiscoveryRetries, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		if _, err := conn.WriteToUDP(probe, dest); err != nil {
			return Discovered{}, fmt.Errorf("%w: send probe: %v", ErrDiscoveryFailed, err)
		}
		if err := conn.SetReadDeadline(time.Now().Add(cfg.DiscoveryTimeout)); err != nil {
			return Discovered{}, fmt.Errorf("%w: %v", ErrDiscoveryFailed, err)
		}
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				log.Debug().Int("attempt", attempt).Int("retries", attempts).
					Msg("discovery probe timed out")
				continue
			}
			return Discovered{}, fmt.Errorf("%w: %v", ErrDiscoveryFailed, err)
		}

		found, err := parseDiscoveryReply(buf[:n])
		if err != nil {
			return Discovered{}, err
		}
		log.Info().Str("name", found.Name).Str("addr", found.Addr()).
			Str("reply_from", from.String()).Msg("gateway discovered")
		return found, nil
	}
	return Discovered{}, ErrDiscoveryFailed
}

// parseDiscoveryReply extracts the gateway identity from a broadcast
// reply. Offsets are fixed by the device firmware.
func parseDiscoveryReply(raw []byte) (Discovered, error) {
	if len(raw) < minDiscoveryReplyLen {
		return Discovered{}, fmt.Errorf("%w: reply too short (%d bytes)", ErrDiscoveryFailed, len(raw))
	}
	name := string(raw[18 : len(raw)-1])
	if !strings.HasPrefix(strings.ToUpper(name), deviceFamilyPrefix) {
		return Discovered{}, fmt.Errorf("%w: unexpected station name %q", ErrDiscoveryFailed, name)
	}
	return Discovered{
		IP:   net.IPv4(raw[11], raw[12], raw[13], raw[14]),
		Port: binary.BigEndian.Uint16(raw[15:17]),
		Name: name,
	}, nil
}
