// Package goout provides the public API for the goout interpreter.
package goout

import (
	"io"

	"nickandperla.net/goout/internal/eval"
	"nickandperla.net/goout/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err == nil {
			r.store = s
		}
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.store = store.NewMemory()
	}
}

// WithStore configures a custom store.
func WithStore(s store.Store) Option {
	return func(r *Runtime) {
		r.store = s
	}
}

// WithStdin reads 입력 lines from an io.Reader.
func WithStdin(reader io.Reader) Option {
	return func(r *Runtime) {
		r.input = reader
	}
}

// WithStdout writes program output to an io.Writer.
func WithStdout(writer io.Writer) Option {
	return func(r *Runtime) {
		r.output = writer
	}
}

// WithInputReader sets a custom reader for 입력 statements.
func WithInputReader(reader eval.InputReader) Option {
	return func(r *Runtime) {
		r.inputReader = reader
	}
}

// Store interface for custom stores.
type Store = store.Store
