/*
Package storage implements the persistent key-value store behind history,
saved templates, reviews, submissions, and rate-limit counters.

The core depends only on the Store interface, never on a concrete mechanism,
so tests substitute an in-memory fake. The production implementation is
SQLite at <data dir>/ai-finder.db using modernc.org/sqlite (pure Go, no CGo),
with graceful degradation: if the database cannot be opened, operations
become no-ops instead of failing the whole program.
*/
package storage

// Store is a minimal key-value contract: opaque bytes per key.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases underlying resources.
	Close() error
}
