package protocol

import (
	"encoding/binary"
	"fmt"
)

// DeviceReadings maps a sensor kind to its scaled value for one device.
type DeviceReadings map[Kind]float64

// DecodeLiveData parses a validated live-data payload into per-device
// readings. The payload is a flat sequence of [tag:1][value:Size] fields;
// fields are consumed from the front until the payload is exhausted.
//
// Decoding fails only on protocol drift: an unknown tag or a field whose
// declared size runs past the end of the payload. Presence-only kinds
// (the low-battery bitmask) are consumed but never surfaced as readings.
func DecodeLiveData(payload []byte) (map[string]DeviceReadings, error) {
	devices := make(map[string]DeviceReadings)
	for i := 0; i < len(payload); {
		tag := payload[i]
		i++
		desc, ok := fieldTable[tag]
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02X at offset %d", ErrUnknownFieldTag, tag, i-1)
		}
		if len(payload)-i < desc.Size {
			return nil, fmt.Errorf("%w: tag 0x%02X wants %d bytes, %d remain",
				ErrTruncatedField, tag, desc.Size, len(payload)-i)
		}
		raw := payload[i : i+desc.Size]
		i += desc.Size

		if desc.Kind == KindBattery {
			continue
		}

		var value float64
		switch desc.Size {
		case 1:
			value = float64(raw[0])
		case 2:
			value = float64(int16(binary.BigEndian.Uint16(raw)))
		}
		if tenthsScaled(desc.Kind) {
			value /= 10
		}

		readings, ok := devices[desc.Device]
		if !ok {
			readings = make(DeviceReadings)
			devices[desc.Device] = readings
		}
		readings[desc.Kind] = value
	}
	return devices, nil
}
