package protocol

// Kind names one sensor category carried by a live-data field.
type Kind string

const (
	KindTemperature      Kind = "temperature"
	KindHumidity         Kind = "humidity"
	KindPressureAbsolute Kind = "pressure_absolute"
	KindPressureRelative Kind = "pressure_relative"
	KindBattery          Kind = "battery"
)

// FieldDescriptor describes one live-data field tag: which device the
// reading belongs to, what kind it is, and how many payload bytes it
// occupies. 1-byte fields decode as unsigned, 2-byte fields as signed,
// both big-endian.
type FieldDescriptor struct {
	Device string
	Kind   Kind
	Size   int
}

// fieldTable is the versioned wire contract for live-data payloads,
// tag byte -> descriptor. It must agree with the field set reported by
// the gateway firmware. Append-only configuration, not logic.
var fieldTable = map[byte]FieldDescriptor{
	0x01: {Device: "indoor", Kind: KindTemperature, Size: 2},
	0x02: {Device: "outdoor", Kind: KindTemperature, Size: 2},
	0x06: {Device: "indoor", Kind: KindHumidity, Size: 1},
	0x07: {Device: "outdoor", Kind: KindHumidity, Size: 1},
	0x08: {Device: "indoor", Kind: KindPressureAbsolute, Size: 2},
	0x09: {Device: "indoor", Kind: KindPressureRelative, Size: 2},

	0x1A: {Device: "channel_1", Kind: KindTemperature, Size: 2},
	0x1B: {Device: "channel_2", Kind: KindTemperature, Size: 2},
	0x1C: {Device: "channel_3", Kind: KindTemperature, Size: 2},
	0x1D: {Device: "channel_4", Kind: KindTemperature, Size: 2},
	0x1E: {Device: "channel_5", Kind: KindTemperature, Size: 2},
	0x1F: {Device: "channel_6", Kind: KindTemperature, Size: 2},
	0x20: {Device: "channel_7", Kind: KindTemperature, Size: 2},
	0x21: {Device: "channel_8", Kind: KindTemperature, Size: 2},

	0x22: {Device: "channel_1", Kind: KindHumidity, Size: 1},
	0x23: {Device: "channel_2", Kind: KindHumidity, Size: 1},
	0x24: {Device: "channel_3", Kind: KindHumidity, Size: 1},
	0x25: {Device: "channel_4", Kind: KindHumidity, Size: 1},
	0x26: {Device: "channel_5", Kind: KindHumidity, Size: 1},
	0x27: {Device: "channel_6", Kind: KindHumidity, Size: 1},
	0x28: {Device: "channel_7", Kind: KindHumidity, Size: 1},
	0x29: {Device: "channel_8", Kind: KindHumidity, Size: 1},

	// Low-battery bitmask for the whole sensor set. Consumed for length
	// accounting but never surfaced as a reading; the wire table does not
	// attribute its bits to named devices.
	0x4C: {Device: "console", Kind: KindBattery, Size: 16},
}

// tenthsScaled reports whether a kind is wire-encoded in tenths of its
// unit. Temperature is tenths of a degree Celsius, pressure tenths of a
// hectopascal; humidity is already whole percent.
func tenthsScaled(k Kind) bool {
	switch k {
	case KindTemperature, KindPressureAbsolute, KindPressureRelative:
		return true
	default:
		return false
	}
}
