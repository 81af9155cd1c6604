package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/models"
)

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	node, err := s.Put(ctx, []string{"a", "b"}, []byte("payload"), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), node.Version)

	got, err := s.Get(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got.Value)
	assert.Equal(t, uint64(1), got.Version)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), []string{"nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PutVersionMismatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, []string{"doc"}, []byte("v1"), 0)
	require.NoError(t, err)

	// create-again and stale-version writes both conflict
	_, err = s.Put(ctx, []string{"doc"}, []byte("v2"), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = s.Put(ctx, []string{"doc"}, []byte("v2"), 2)
	assert.ErrorIs(t, err, ErrVersionConflict)

	node, err := s.Put(ctx, []string{"doc"}, []byte("v2"), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), node.Version)
}

// TestMemoryStore_ConcurrentCAS races many writers against the same
// expected version: exactly one must win.
func TestMemoryStore_ConcurrentCAS(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, []string{"doc"}, []byte("base"), 0)
	require.NoError(t, err)

	const writers = 16
	var wg sync.WaitGroup
	results := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Put(ctx, []string{"doc"}, []byte("update"), 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrVersionConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactly one CAS write must succeed")
	assert.Equal(t, writers-1, conflicts)
}

func TestMemoryStore_List(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, []string{"docs", "d1", "branches", "b1"}, []byte("b1"), 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, []string{"docs", "d1", "branches", "b2"}, []byte("b2"), 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, []string{"docs", "d2", "branches", "b3"}, []byte("b3"), 0)
	require.NoError(t, err)

	nodes, err := s.List(ctx, []string{"docs", "d1", "branches"})
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestMemoryStore_SubscribeNotifiesOnDescendantWrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var mu sync.Mutex
	var seen []models.Node

	cancel, err := s.Subscribe(ctx, []string{"docs", "d1"}, func(n models.Node) {
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer cancel()

	_, err = s.Put(ctx, []string{"docs", "d1", "branches", "b1"}, []byte("x"), 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, []string{"docs", "d2"}, []byte("y"), 0)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1, "only the subscribed subtree should notify")
	assert.Equal(t, "docs/d1/branches/b1", seen[0].Path)
}

func TestMemoryStore_SubscribeCancelStopsDelivery(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	calls := 0
	cancel, err := s.Subscribe(ctx, []string{"docs"}, func(models.Node) { calls++ })
	require.NoError(t, err)

	cancel()

	_, err = s.Put(ctx, []string{"docs", "d1"}, []byte("x"), 0)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestMemoryStore_EmptyPath(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = s.Put(ctx, nil, []byte("x"), 0)
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = s.List(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyPath)
}
