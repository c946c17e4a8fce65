// Package gateway owns transport to the physical sensor gateway.
//
// Ownership boundary:
// - one-shot UDP broadcast discovery
// - the per-fetch TCP client (connect, request, bounded read, retries)
//
// Frame construction and validation belong to internal/protocol.
package gateway
