package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"nickandperla.net/goout/internal/ast"
	"nickandperla.net/goout/pkg/goout"
)

func printBanner() {
	fmt.Println("goout REPL (Ctrl+D로 종료)")
	fmt.Printf("프로그램은 %q으로 시작하고 %q로 끝납니다.\n", ast.StartMarker, ast.EndMarker)
	fmt.Println("명령: :save <이름>  :load <이름>  :list  :history  :quit")
	fmt.Println()
}

// runREPL buffers lines until the end marker, then executes the whole
// buffered program. Meta commands are only recognized outside a program.
func runREPL(dbPath string) {
	runtime := goout.New(goout.WithSQLiteStore(dbPath))
	defer runtime.Close()

	printBanner()

	reader := bufio.NewReader(os.Stdin)
	var program []string
	var lastProgram string

	for {
		if len(program) > 0 {
			fmt.Print("... ")
		} else {
			fmt.Print(">>> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)

		if len(program) == 0 {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				if quit := metaCommand(runtime, &lastProgram, trimmed); quit {
					return
				}
				continue
			}
		}

		program = append(program, line)
		if trimmed != ast.EndMarker {
			continue
		}

		src := strings.Join(program, "\n")
		program = nil
		lastProgram = src

		if s := runtime.Store(); s != nil {
			s.AppendHistory(src)
		}
		if err := runtime.Run(src); err != nil {
			errColor.Fprintln(os.Stderr, err)
		}
	}
}

// metaCommand handles one ":" command. Returns true to exit the REPL.
func metaCommand(runtime *goout.Runtime, lastProgram *string, input string) bool {
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)
	s := runtime.Store()

	switch cmd {
	case ":quit", ":q":
		return true

	case ":save":
		switch {
		case s == nil:
			fmt.Println("저장소가 없습니다.")
		case arg == "":
			fmt.Println("사용법: :save <이름>")
		case *lastProgram == "":
			fmt.Println("저장할 프로그램이 없습니다.")
		default:
			if err := s.Put(arg, *lastProgram); err != nil {
				errColor.Fprintln(os.Stderr, err)
			} else {
				fmt.Printf("저장됨: %s\n", arg)
			}
		}

	case ":load":
		switch {
		case s == nil:
			fmt.Println("저장소가 없습니다.")
		case arg == "":
			fmt.Println("사용법: :load <이름>")
		default:
			src, err := s.Get(arg)
			if err != nil {
				errColor.Fprintln(os.Stderr, err)
			} else if src == "" {
				fmt.Printf("저장된 프로그램이 없습니다: %s\n", arg)
			} else {
				*lastProgram = src
				if err := runtime.Run(src); err != nil {
					errColor.Fprintln(os.Stderr, err)
				}
			}
		}

	case ":list":
		if s == nil {
			fmt.Println("저장소가 없습니다.")
			break
		}
		names, err := s.List()
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			break
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case ":history":
		if s == nil {
			fmt.Println("저장소가 없습니다.")
			break
		}
		entries, err := s.History(10)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			break
		}
		for _, e := range entries {
			fmt.Println(e)
			fmt.Println()
		}

	default:
		fmt.Printf("알 수 없는 명령: %s\n", cmd)
	}
	return false
}
