package store

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func (m *memoryBackend) Load(_ context.Context, keys []string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.values[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

func (m *memoryBackend) Save(_ context.Context, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = append([]byte(nil), v...)
	}
	return nil
}

func (m *memoryBackend) Close() error {
	return nil
}

// NewMemoryBackend keeps the document in process memory; nothing survives a restart.
func NewMemoryBackend() Backend {
	return &memoryBackend{values: make(map[string][]byte)}
}
