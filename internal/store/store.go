// Package store provides persistence for saved goout programs and REPL history.
package store

// Store is the interface for program persistence.
type Store interface {
	// Get retrieves a saved program source by name. Returns "" if not found.
	Get(name string) (string, error)
	// Put saves a program source by name, overwriting if it exists.
	Put(name, source string) error
	// Delete removes a saved program by name.
	Delete(name string) error
	// List returns all saved program names in lexical order.
	List() ([]string, error)
	// AppendHistory records one submitted REPL program.
	AppendHistory(source string) error
	// History returns the most recent history entries, newest first.
	// A limit of 0 returns everything.
	History(limit int) ([]string, error)
	// Close releases resources.
	Close() error
}
