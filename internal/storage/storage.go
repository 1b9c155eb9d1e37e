// Package storage provides the client-local key-value backends the
// attendance store persists into.
package storage

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by Set when a value does not fit the backend.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a minimal key-value store. Set replaces the whole value for a
// key in a single write; Remove of a missing key is not an error.
type Backend interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes key.
	Remove(key string) error
}

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
	KindNone   = "none"
)

// Kinds lists the backend names accepted by configuration.
var Kinds = []string{KindFile, KindSQLite, KindMemory, KindNone}

// ValidKind reports whether kind names a known backend.
func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type quotaBackend struct {
	Backend
	maxBytes int
}

// WithQuota wraps b so that any Set larger than maxBytes fails with
// ErrQuotaExceeded. A maxBytes of zero or less returns b unchanged.
func WithQuota(b Backend, maxBytes int) Backend {
	if b == nil || maxBytes <= 0 {
		return b
	}
	return &quotaBackend{Backend: b, maxBytes: maxBytes}
}

func (q *quotaBackend) Set(key string, value []byte) error {
	if len(value) > q.maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrQuotaExceeded, len(value), q.maxBytes)
	}
	return q.Backend.Set(key, value)
}

// Unwrap exposes the decorated backend.
func (q *quotaBackend) Unwrap() Backend {
	return q.Backend
}
