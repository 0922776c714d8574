// Package snapshot provides a compact binary form of a profile document.
//
// A snapshot is the element tree a model writes, captured by a [Recorder] and
// encoded as deterministic CBOR with integer keys. Each snapshot carries a
// random ID, the time it was taken and a BLAKE2b-256 digest of its elements;
// [Unmarshal] rejects snapshots whose digest does not match.
//
// [Replay] feeds a snapshot back through an attr.Handler exactly as the XML
// decoder would, so models need no snapshot-specific parsing.
package snapshot
