package store

import (
	"context"
	"sync"
)

// Memory is a map-backed DocumentRepo.
type Memory struct {
	mu   sync.Mutex
	docs map[string]Record
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{docs: map[string]Record{}}
}

func (m *Memory) Load(_ context.Context, key string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.docs[key]
	if !ok {
		return nil, nil
	}
	rec.Data = append([]byte(nil), rec.Data...)
	return &rec, nil
}

func (m *Memory) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.Data = append([]byte(nil), rec.Data...)
	m.docs[rec.Key] = cp
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

func (m *Memory) Close() error { return nil }
