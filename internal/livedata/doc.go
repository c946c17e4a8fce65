// Package livedata owns the decoded sensor state and access to it.
//
// Ownership boundary:
// - the immutable Snapshot model
// - the time-bounded cache controller mediating concurrent reads
// - path resolution against the current snapshot
package livedata
