package goout

import (
	"io"
	"os"

	"nickandperla.net/goout/internal/eval"
	"nickandperla.net/goout/internal/store"
)

// Runtime is the goout interpreter runtime.
type Runtime struct {
	interpreter *eval.Interpreter
	store       store.Store
	input       io.Reader
	output      io.Writer
	inputReader eval.InputReader
}

// New creates a new goout runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}

	for _, opt := range opts {
		opt(r)
	}

	// Build interpreter options
	evalOpts := []eval.Option{}
	if r.output != nil {
		evalOpts = append(evalOpts, eval.WithOutput(r.output))
	}
	if r.inputReader != nil {
		evalOpts = append(evalOpts, eval.WithInputReader(r.inputReader))
	} else if r.input != nil {
		evalOpts = append(evalOpts, eval.WithInput(r.input))
	}

	r.interpreter = eval.New(evalOpts...)
	return r
}

// Run parses and executes a complete goout program text.
func (r *Runtime) Run(source string) error {
	return r.interpreter.Run(source)
}

// RunReader executes a goout program from a reader.
func (r *Runtime) RunReader(reader io.Reader) error {
	src, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return r.Run(string(src))
}

// RunFile executes a goout program file.
func (r *Runtime) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.Run(string(src))
}

// Store returns the configured program store, or nil.
func (r *Runtime) Store() store.Store {
	return r.store
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
