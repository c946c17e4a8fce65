// Package protocol owns the gateway wire contract and parsing primitives.
//
// Ownership boundary:
// - checksum and frame primitives
// - the field descriptor table (single source of truth for live-data tags)
// - live-data payload decoding
//
// No I/O happens here; transport lives in internal/gateway.
package protocol
