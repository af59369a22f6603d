package goout_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nickandperla.net/goout/pkg/goout"
)

const hello = "시작!\nGO척결.출력(\"안녕하세요\")\n장한울을 혁명적으로 특검해야 한다\n"

func TestRun(t *testing.T) {
	var out strings.Builder
	rt := goout.New(goout.WithStdout(&out))
	defer rt.Close()

	if err := rt.Run(hello); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "안녕하세요\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRunReader(t *testing.T) {
	var out strings.Builder
	rt := goout.New(goout.WithStdout(&out))
	defer rt.Close()

	if err := rt.RunReader(strings.NewReader(hello)); err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	if out.String() != "안녕하세요\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.goout")
	if err := os.WriteFile(path, []byte(hello), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	rt := goout.New(goout.WithStdout(&out))
	defer rt.Close()

	if err := rt.RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if out.String() != "안녕하세요\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	rt := goout.New()
	defer rt.Close()
	if err := rt.RunFile(filepath.Join(t.TempDir(), "없음.goout")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWithStdin(t *testing.T) {
	var out strings.Builder
	rt := goout.New(
		goout.WithStdout(&out),
		goout.WithStdin(strings.NewReader("한울\n")),
	)
	defer rt.Close()

	err := rt.Run("시작!\nGO척결.입력(이름, \"이름: \")\nGO척결.출력(이름)\n장한울을 혁명적으로 특검해야 한다\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "이름: 한울\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestWithInputReader(t *testing.T) {
	var prompts []string
	var out strings.Builder
	rt := goout.New(
		goout.WithStdout(&out),
		goout.WithInputReader(func(prompt string) (string, error) {
			prompts = append(prompts, prompt)
			return "7", nil
		}),
	)
	defer rt.Close()

	err := rt.Run("시작!\nGO척결.입력(x, \"값: \", \"정수\")\nGO척결.출력(x * x)\n장한울을 혁명적으로 특검해야 한다\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "49\n" {
		t.Errorf("got %q", out.String())
	}
	if len(prompts) != 1 || prompts[0] != "값: " {
		t.Errorf("prompts = %v", prompts)
	}
}

func TestMemoryStore(t *testing.T) {
	rt := goout.New(goout.WithMemoryStore())
	defer rt.Close()

	s := rt.Store()
	if s == nil {
		t.Fatal("expected a store")
	}
	if err := s.Put("p", hello); err != nil {
		t.Fatalf("Put: %v", err)
	}
	src, err := s.Get("p")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if src != hello {
		t.Errorf("got %q", src)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goout.db")
	rt := goout.New(goout.WithSQLiteStore(path))
	defer rt.Close()

	if rt.Store() == nil {
		t.Fatal("expected a store")
	}
	if err := rt.Store().AppendHistory(hello); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
}

func TestNoStore(t *testing.T) {
	rt := goout.New()
	if rt.Store() != nil {
		t.Error("expected nil store by default")
	}
	if err := rt.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	rt := goout.New(goout.WithStdout(&strings.Builder{}))
	defer rt.Close()

	err := rt.Run("GO척결.출력(1)")
	if !goout.IsSyntaxError(err) {
		t.Errorf("expected syntax error, got %v", err)
	}

	err = rt.Run("시작!\nGO척결.출력(1 / 0)\n장한울을 혁명적으로 특검해야 한다\n")
	if !goout.IsRuntimeError(err) {
		t.Errorf("expected runtime error, got %v", err)
	}
	if goout.IsSyntaxError(err) {
		t.Error("runtime error misreported as syntax error")
	}
}
