package models

import "time"

// Node is the unit of storage exposed by a node store. The path under
// which a node lives is a sequence of opaque PathCodec-derived segments;
// the value is an opaque byte blob (ciphertext or public key material).
// The store assigns and enforces the version for conditional writes.
type Node struct {
	// Path is the slash-joined opaque path the node is addressed by.
	Path string `json:"path"`

	// Value is the stored blob. The store never interprets it.
	Value []byte `json:"value"`

	// Version is the store-side write counter for this path, starting
	// at 1 on first write. Conditional puts compare against it.
	Version uint64 `json:"version"`

	// UpdatedAt is when the node was last written.
	UpdatedAt time.Time `json:"updatedAt"`
}
