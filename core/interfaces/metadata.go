// ABOUTME: Project metadata store port for namespaced key/value persistence
// ABOUTME: Backs the attribution ledger's merge-by-id project storage

package interfaces

// MetadataStore defines the interface for the host project's namespaced
// key/value metadata storage. The attribution code stores a single
// JSON-serialized array of records per (namespace, key) pair.
type MetadataStore interface {
	// ReadEntry returns the value stored under (namespace, key).
	// The bool result is false when no entry exists.
	ReadEntry(namespace, key string) (string, bool, error)

	// WriteEntry stores value under (namespace, key), replacing any
	// existing entry.
	WriteEntry(namespace, key, value string) error

	// RemoveEntry deletes the entry under (namespace, key).
	// Removing a missing entry is not an error.
	RemoveEntry(namespace, key string) error
}
