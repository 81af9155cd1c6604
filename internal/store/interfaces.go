// Package store defines the node-store contract the core operates
// against, plus the two bundled implementations: an in-memory store for
// tests and single-process use, and a remote client speaking to a relay.
//
// The store is treated as fully untrusted: every value it holds is
// either ciphertext or public key material, and every path is an opaque
// derived segment. Confidentiality never depends on store behavior; the
// only property the core relies on is the conditional-write versioning.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/node_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// CancelFunc detaches a subscription registered with Subscribe.
type CancelFunc func()

// NodeStore is the abstract replicated key-value node store.
type NodeStore interface {
	// Get returns the node at path, or ErrNotFound.
	Get(ctx context.Context, path []string) (models.Node, error)

	// Put writes value at path if and only if the node's current version
	// equals expectedVersion (0 for a node that must not exist yet).
	// On success the returned node carries version expectedVersion+1.
	// A mismatch returns ErrVersionConflict and changes nothing. This is
	// the store's atomic compare-and-swap primitive; all optimistic
	// concurrency in the core reduces to it.
	Put(ctx context.Context, path []string, value []byte, expectedVersion uint64) (models.Node, error)

	// List returns all nodes whose path begins with prefix, in
	// unspecified order. Used for branch enumeration under a document's
	// branch namespace.
	List(ctx context.Context, prefix []string) ([]models.Node, error)

	// Subscribe registers callback to run on every write under path
	// (exact node or any descendant) until the returned CancelFunc is
	// called or ctx is done. Delivery is best-effort and asynchronous;
	// callers re-Get on notification rather than trusting the payload
	// to be the latest state.
	Subscribe(ctx context.Context, path []string, callback func(models.Node)) (CancelFunc, error)
}
