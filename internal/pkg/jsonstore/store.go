// Package jsonstore persists each entity collection as a single
// pretty-printed JSON array file. Every logical operation is a whole-file
// read-modify-write; there is no indexing and no cross-collection
// transaction. A per-collection mutex serializes writers within this
// process, which is the only concurrency guarantee offered — a second
// process writing the same file still races.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arda/campusconnect/internal/pkg/logger"
)

// Collection binds a record type to its backing JSON file.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection returns a collection stored at <dataDir>/<name>.json.
// The file is created lazily on the first save.
func NewCollection[T any](dataDir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dataDir, name+".json")}
}

// LoadAll returns every record in file order. An absent or unparsable file
// yields an empty collection, never an error.
func (c *Collection[T]) LoadAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// SaveAll overwrites the backing file with the full record set.
func (c *Collection[T]) SaveAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(records)
}

// Update runs one read-modify-write cycle under the collection lock.
// If fn returns an error nothing is written and the error is propagated.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.loadLocked())
	if err != nil {
		return err
	}
	return c.saveLocked(records)
}

func (c *Collection[T]) loadLocked() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn().Err(err).Str("path", c.path).Msg("Collection file is unparsable, treating as empty")
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func (c *Collection[T]) saveLocked(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection file %s: %w", filepath.Base(c.path), err)
	}
	return nil
}
