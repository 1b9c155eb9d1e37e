package attendance

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned by Decode when the persisted value is not a
// list of well-formed entries.
var ErrMalformed = errors.New("malformed attendance data")

// StorageWriteError reports a failed write to the storage backend. The
// attempted change is not durable.
type StorageWriteError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("%s: writing '%s' failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
