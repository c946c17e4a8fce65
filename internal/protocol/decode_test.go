package protocol

import (
	"errors"
	"testing"
)

func TestDecodeLiveDataOutdoorPair(t *testing.T) {
	// Outdoor temperature 23.5C (raw 235, tenths) and humidity 55%.
	payload := []byte{0x02, 0x00, 0xEB, 0x07, 0x37}
	devices, err := DecodeLiveData(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	outdoor, ok := devices["outdoor"]
	if !ok {
		t.Fatalf("expected outdoor device, got %v", devices)
	}
	if got := outdoor[KindTemperature]; got != 23.5 {
		t.Fatalf("temperature: got %v want 23.5", got)
	}
	if got := outdoor[KindHumidity]; got != 55 {
		t.Fatalf("humidity: got %v want 55", got)
	}
}

func TestDecodeLiveDataNegativeTemperature(t *testing.T) {
	// Raw int16 -105 decodes to -10.5C.
	payload := []byte{0x1C, 0xFF, 0x97}
	devices, err := DecodeLiveData(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := devices["channel_3"][KindTemperature]; got != -10.5 {
		t.Fatalf("channel_3 temperature: got %v want -10.5", got)
	}
}

func TestDecodeLiveDataPressureScaling(t *testing.T) {
	// Absolute 1013.2 hPa, relative 1020.0 hPa, both tenths on the wire.
	payload := []byte{0x08, 0x27, 0x94, 0x09, 0x27, 0xD8}
	devices, err := DecodeLiveData(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	indoor := devices["indoor"]
	if got := indoor[KindPressureAbsolute]; got != 1013.2 {
		t.Fatalf("absolute pressure: got %v want 1013.2", got)
	}
	if got := indoor[KindPressureRelative]; got != 1020.0 {
		t.Fatalf("relative pressure: got %v want 1020.0", got)
	}
}

func TestDecodeLiveDataBatteryConsumedNotSurfaced(t *testing.T) {
	payload := []byte{0x4C}
	payload = append(payload, make([]byte, 16)...)
	payload = append(payload, 0x07, 0x37)
	devices, err := DecodeLiveData(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := devices["console"]; ok {
		t.Fatalf("battery bitmask must not surface as a device")
	}
	if got := devices["outdoor"][KindHumidity]; got != 55 {
		t.Fatalf("field after battery block lost: got %v", got)
	}
}

func TestDecodeLiveDataUnknownTag(t *testing.T) {
	_, err := DecodeLiveData([]byte{0x02, 0x00, 0xEB, 0xFF, 0x00})
	if !errors.Is(err, ErrUnknownFieldTag) {
		t.Fatalf("expected ErrUnknownFieldTag, got %v", err)
	}
}

func TestDecodeLiveDataTruncatedField(t *testing.T) {
	_, err := DecodeLiveData([]byte{0x02, 0x00})
	if !errors.Is(err, ErrTruncatedField) {
		t.Fatalf("expected ErrTruncatedField, got %v", err)
	}
	_, err = DecodeLiveData([]byte{0x4C, 0x00, 0x01})
	if !errors.Is(err, ErrTruncatedField) {
		t.Fatalf("expected ErrTruncatedField on short battery block, got %v", err)
	}
}

func TestDecodeLiveDataEmptyPayload(t *testing.T) {
	devices, err := DecodeLiveData(nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(devices) != 0 {
		t.Fatalf("expected no devices, got %v", devices)
	}
}
