// Package memory provides an in-process implementation of storage.Backend.
package memory

import (
	"github.com/fitfriend/fitfriend/internal/storage"
)

var _ storage.Backend = (*Backend)(nil)

// Backend keeps values in a map. Nothing survives the process.
type Backend struct {
	values map[string][]byte
}

// New returns an empty memory backend.
func New() *Backend {
	return &Backend{values: make(map[string][]byte)}
}

func (b *Backend) Get(key string) ([]byte, bool, error) {
	v, ok := b.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (b *Backend) Set(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	b.values[key] = v
	return nil
}

func (b *Backend) Remove(key string) error {
	delete(b.values, key)
	return nil
}
