// Package eval implements the goout environment, expression evaluator, and
// statement executor.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"nickandperla.net/goout/internal/parser"
)

// InputReader reads one line of user input, after showing the prompt.
type InputReader func(prompt string) (string, error)

// OutputWriter writes program output (for 출력 and 입력 prompts).
type OutputWriter func(text string) error

// Interpreter executes goout programs.
type Interpreter struct {
	inputReader  InputReader
	outputWriter OutputWriter
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithInputReader sets the reader used by 입력 statements.
func WithInputReader(r InputReader) Option {
	return func(ip *Interpreter) { ip.inputReader = r }
}

// WithOutputWriter sets the writer used by 출력 statements.
func WithOutputWriter(w OutputWriter) Option {
	return func(ip *Interpreter) { ip.outputWriter = w }
}

// WithInput reads input lines from an io.Reader.
func WithInput(r io.Reader) Option {
	buf := bufio.NewReader(r)
	return func(ip *Interpreter) {
		ip.inputReader = func(prompt string) (string, error) {
			if prompt != "" {
				if err := ip.outputWriter(prompt); err != nil {
					return "", err
				}
			}
			return buf.ReadString('\n')
		}
	}
}

// WithOutput writes program output to an io.Writer.
func WithOutput(w io.Writer) Option {
	return func(ip *Interpreter) {
		ip.outputWriter = func(text string) error {
			_, err := io.WriteString(w, text)
			return err
		}
	}
}

// New creates an Interpreter with the given options. By default it reads
// from stdin and writes to stdout.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{
		outputWriter: func(text string) error {
			_, err := fmt.Print(text)
			return err
		},
	}
	for _, opt := range opts {
		opt(ip)
	}
	if ip.inputReader == nil {
		stdin := bufio.NewReader(os.Stdin)
		ip.inputReader = func(prompt string) (string, error) {
			if prompt != "" {
				if err := ip.outputWriter(prompt); err != nil {
					return "", err
				}
			}
			return stdin.ReadString('\n')
		}
	}
	return ip
}

// Run parses and executes a complete program text against a fresh root scope.
func (ip *Interpreter) Run(src string) error {
	stmts, err := parser.Parse(src)
	if err != nil {
		return err
	}
	return ip.Exec(stmts, NewEnv(nil))
}
