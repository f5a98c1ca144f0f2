// Package storage abstracts the S3-compatible object store used for audio
// fragments and assembled artifacts. The flow engine only ever needs Get and
// Put; everything transport-level stays behind this interface.
package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when the object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore 提供对象存储的最小读写接口。
type ObjectStore interface {
	// Get returns the object's bytes or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Memory is an in-process ObjectStore for tests and storage-less local runs.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string

	// GetCalls counts Get invocations, handy for asserting that a code path
	// performed no storage round-trip.
	GetCalls int
}

// NewMemory creates an empty in-memory store whose Put URLs are rooted at
// baseURL.
func NewMemory(baseURL string) *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Get implements ObjectStore.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	m.GetCalls++
	data, ok := m.objects[key]
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Put implements ObjectStore.
func (m *Memory) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	copied := make([]byte, len(data))
	copy(copied, data)

	m.mu.Lock()
	m.objects[key] = copied
	m.mu.Unlock()

	return m.baseURL + "/" + key, nil
}

// Object returns the stored bytes for key, for test assertions.
func (m *Memory) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

// Keys lists stored object keys, for test assertions.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for key := range m.objects {
		keys = append(keys, key)
	}
	return keys
}
