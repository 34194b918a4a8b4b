package storage

import (
	"context"
	"io"
	"sync"
)

// MemoryStore is an in-memory ObjectStore for tests and for running the API
// without S3 credentials. PutErr, when set, makes every Put fail with it.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	BaseURL string
	PutErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		BaseURL: "https://images.local",
	}
}

func (m *MemoryStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MemoryStore) PublicURL(key string) string {
	return m.BaseURL + "/" + key
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
