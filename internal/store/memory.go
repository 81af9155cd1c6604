// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/models"
)

// memoryStore is a process-local NodeStore. It backs tests and the
// single-process mode of the client, and is the reference for the
// conditional-write semantics every other implementation must match.
type memoryStore struct {
	mu       sync.RWMutex
	nodes    map[string]models.Node
	watchers map[int64]*watcher
	nextID   int64
}

type watcher struct {
	prefix   string
	callback func(models.Node)
}

// NewMemoryStore constructs an empty in-memory NodeStore.
func NewMemoryStore() NodeStore {
	return &memoryStore{
		nodes:    make(map[string]models.Node),
		watchers: make(map[int64]*watcher),
		nextID:   1,
	}
}

// JoinPath flattens path segments into the canonical slash-joined form
// used as the storage key and on the relay wire.
func JoinPath(path []string) string {
	return strings.Join(path, "/")
}

func (s *memoryStore) Get(_ context.Context, path []string) (models.Node, error) {
	if len(path) == 0 {
		return models.Node{}, ErrEmptyPath
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.nodes[JoinPath(path)]
	if !ok {
		return models.Node{}, ErrNotFound
	}
	return node, nil
}

func (s *memoryStore) Put(_ context.Context, path []string, value []byte, expectedVersion uint64) (models.Node, error) {
	if len(path) == 0 {
		return models.Node{}, ErrEmptyPath
	}
	key := JoinPath(path)

	s.mu.Lock()

	current := uint64(0)
	if existing, ok := s.nodes[key]; ok {
		current = existing.Version
	}
	if current != expectedVersion {
		s.mu.Unlock()
		return models.Node{}, ErrVersionConflict
	}

	node := models.Node{
		Path:      key,
		Value:     append([]byte(nil), value...),
		Version:   expectedVersion + 1,
		UpdatedAt: time.Now(),
	}
	s.nodes[key] = node

	notify := s.matchingWatchers(key)
	s.mu.Unlock()

	// watchers run outside the lock so a callback may safely re-enter
	// the store
	for _, w := range notify {
		w.callback(node)
	}

	return node, nil
}

func (s *memoryStore) List(_ context.Context, prefix []string) ([]models.Node, error) {
	if len(prefix) == 0 {
		return nil, ErrEmptyPath
	}
	key := JoinPath(prefix) + "/"

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Node
	for path, node := range s.nodes {
		if strings.HasPrefix(path, key) || path == JoinPath(prefix) {
			out = append(out, node)
		}
	}
	return out, nil
}

func (s *memoryStore) Subscribe(ctx context.Context, path []string, callback func(models.Node)) (CancelFunc, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = &watcher{prefix: JoinPath(path), callback: callback}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	return cancel, nil
}

// matchingWatchers must be called with the lock held.
func (s *memoryStore) matchingWatchers(key string) []*watcher {
	var out []*watcher
	for _, w := range s.watchers {
		if key == w.prefix || strings.HasPrefix(key, w.prefix+"/") {
			out = append(out, w)
		}
	}
	return out
}
