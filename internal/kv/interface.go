package kv

import (
	"context"
	"errors"
)

// ErrMediumFull is returned by mediums that enforce their own capacity
// ceiling when a write would exceed it.
var ErrMediumFull = errors.New("storage medium is full")

// Medium is the whole-value key/value abstraction backing the local
// persistence provider. Values are always read and written in full; there
// are no partial or streamed writes.
type Medium interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Missing keys are ignored.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the medium.
	Close() error
}
