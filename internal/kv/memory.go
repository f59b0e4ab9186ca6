package kv

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process medium. A MaxBytes ceiling, when set, bounds the
// sum of stored key and value lengths the way a browser local store bounds
// its namespace.
type Memory struct {
	mu       sync.Mutex
	values   map[string]string
	maxBytes int64
}

// NewMemory creates an in-memory medium. maxBytes <= 0 means unbounded.
func NewMemory(maxBytes int64) *Memory {
	return &Memory{
		values:   map[string]string{},
		maxBytes: maxBytes,
	}
}

// Get returns the value for key and whether it exists.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key. It fails with ErrMediumFull when the write
// would push total stored bytes over the configured ceiling.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxBytes > 0 {
		total := int64(len(key) + len(value))
		for k, v := range m.values {
			if k == key {
				continue
			}
			total += int64(len(k) + len(v))
		}
		if total > m.maxBytes {
			return fmt.Errorf("%w: %d bytes would exceed %d byte limit", ErrMediumFull, total, m.maxBytes)
		}
	}

	m.values[key] = value
	return nil
}

// Delete removes key. Missing keys are ignored.
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Close is a no-op for the in-memory medium.
func (m *Memory) Close() error {
	return nil
}

var _ Medium = (*Memory)(nil)
