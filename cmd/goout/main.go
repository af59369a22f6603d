// Command goout is the goout interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"nickandperla.net/goout/pkg/goout"
)

const fileExt = ".goout"

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

func main() {
	var (
		dbPath  = flag.String("db", "goout.db", "SQLite database path for the REPL store")
		noColor = flag.Bool("no-color", false, "Disable colored diagnostics")
	)
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	switch flag.NArg() {
	case 0:
		// No file: REPL on a terminal, otherwise execute piped input whole.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			runREPL(*dbPath)
			return
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			errColor.Fprintf(os.Stderr, "입력을 읽을 수 없습니다: %v\n", err)
			os.Exit(1)
		}
		runtime := goout.New()
		report(runtime.Run(string(src)))

	case 1:
		path := flag.Arg(0)
		if !strings.HasSuffix(path, fileExt) {
			warnColor.Fprintf(os.Stderr, "경고: 파일 확장자는 %s 이어야 합니다.\n", fileExt)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			errColor.Fprintf(os.Stderr, "파일을 읽을 수 없습니다: %v\n", err)
			os.Exit(1)
		}
		runtime := goout.New()
		report(runtime.Run(string(src)))

	default:
		fmt.Fprintf(os.Stderr, "사용법: goout <program%s>\n", fileExt)
		os.Exit(1)
	}
}

// report prints a syntax or runtime failure and exits non-zero.
func report(err error) {
	if err == nil {
		return
	}
	errColor.Fprintln(os.Stderr, err)
	os.Exit(1)
}
