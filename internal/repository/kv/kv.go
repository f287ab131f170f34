// Package kv defines the durable blob-store boundary the booking collection
// persists through, plus the local implementations. Remote backends live in
// the sibling redis and postgres packages.
package kv

import (
	"context"
	"sync"
)

// Store is a named-blob store. Get reports presence explicitly; a missing
// key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process Store, used by tests and the demo's default
// configuration.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *Memory) Put(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(val))
	copy(stored, val)
	m.blobs[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}
