// ABOUTME: Store interface for named JSON/text blobs.
// ABOUTME: Backends: flat files (default), Badger KV, and Charm KV.
package blob

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Read when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// Info describes a blob without reading it. ModTime is zero for KV
// backends, which keep no per-key modification time.
type Info struct {
	Exists  bool
	ModTime time.Time
}

// Store persists named blobs. Writes replace the whole blob; there is no
// partial update or locking, so callers own any read-modify-write
// serialization.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Stat(key string) (Info, error)
	Close() error
}
