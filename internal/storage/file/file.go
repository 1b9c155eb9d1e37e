// Package file stores each key as a JSON file under a data directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fitfriend/fitfriend/internal/storage"
)

var _ storage.Backend = (*Backend)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Backend writes one <key>.json file per key in Dir.
type Backend struct {
	Dir string
}

// New returns a file backend rooted at dir. The directory is created on
// the first write.
func New(dir string) *Backend {
	return &Backend{Dir: dir}
}

// Path returns the file that holds key.
func (b *Backend) Path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

func (b *Backend) Get(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes value to a temp file in the same directory and renames it over
// the previous file.
func (b *Backend) Set(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.Dir, "."+key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, b.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (b *Backend) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := os.Remove(b.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
