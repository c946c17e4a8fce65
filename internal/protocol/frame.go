package protocol

import (
	"encoding/binary"
	"fmt"
)

// Fixed frame header shared by every request and response.
const (
	headerByte0 byte = 0xFF
	headerByte1 byte = 0xFF
)

// Command codes.
const (
	CmdBroadcast byte = 0x12
	CmdLiveData  byte = 0x27
)

// requestLength covers the command and length bytes only; the header and
// checksum are excluded. All requests carry an empty body, so it is fixed.
const requestLength byte = 0x03

// minResponseLen is header(2) + command(1) + length(2) + checksum(1).
const minResponseLen = 6

// BuildRequest frames an empty-body command:
// [header:2][command:1][length:1][checksum:1].
func BuildRequest(cmd byte) []byte {
	b := []byte{headerByte0, headerByte1, cmd, requestLength, 0}
	b[4] = Checksum(b[2:4])
	return b
}

// ParsePayload validates a raw response frame against cmd and returns the
// payload with header, command, length, and checksum stripped.
//
// Checks run in a fixed order: frame size, checksum, header, command,
// declared length. The checksum covers everything after the header up to
// the checksum byte itself; the declared length is the total frame size
// minus the 2-byte header.
func ParsePayload(raw []byte, cmd byte) ([]byte, error) {
	if len(raw) < minResponseLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(raw))
	}
	last := len(raw) - 1
	if got := Checksum(raw[2:last]); got != raw[last] {
		return nil, fmt.Errorf("%w: got 0x%02X want 0x%02X", ErrChecksumMismatch, got, raw[last])
	}
	if raw[0] != headerByte0 || raw[1] != headerByte1 {
		return nil, fmt.Errorf("%w: 0x%02X%02X", ErrHeaderMismatch, raw[0], raw[1])
	}
	if raw[2] != cmd {
		return nil, fmt.Errorf("%w: got 0x%02X want 0x%02X", ErrCommandMismatch, raw[2], cmd)
	}
	declared := int(binary.BigEndian.Uint16(raw[3:5]))
	if declared != len(raw)-2 {
		return nil, fmt.Errorf("%w: declared %d, frame holds %d", ErrLengthMismatch, declared, len(raw)-2)
	}
	return raw[5:last], nil
}
