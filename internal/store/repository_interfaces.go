package store

//go:generate mockgen -source=repository_interfaces.go -destination=../mock/node_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// NodeRepository - серверное хранилище узлов реле.
//
// Paths arrive in their slash-joined wire form; the repository never
// interprets them beyond prefix matching. Values are opaque blobs.
type NodeRepository interface {
	// GetNode returns the node stored at path, or ErrNotFound.
	GetNode(ctx context.Context, path string) (models.Node, error)

	// PutNode writes value at path if the node's current version equals
	// expectedVersion (0 for create-only). A mismatch returns
	// ErrVersionConflict and leaves the row untouched. Every successful
	// write is also appended to the change log consumed by ChangesAfter.
	PutNode(ctx context.Context, path string, value []byte, expectedVersion uint64) (models.Node, error)

	// ListNodes returns all nodes at prefix or below it, ordered by path.
	ListNodes(ctx context.Context, prefix string) ([]models.Node, error)

	// ChangesAfter returns writes under path that landed after the given
	// change cursor, plus the new cursor value. An unchanged cursor with
	// no nodes means nothing happened; callers poll again.
	ChangesAfter(ctx context.Context, path string, after uint64) ([]models.Node, uint64, error)
}
