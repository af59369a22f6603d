package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

// each test runs against every Store implementation
func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLite(filepath.Join(t.TempDir(), "goout.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sq,
	}
}

func TestPutGetDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Put("인사", "시작!\n..."); err != nil {
				t.Fatalf("Put: %v", err)
			}
			src, err := s.Get("인사")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if src != "시작!\n..." {
				t.Errorf("got %q", src)
			}

			// overwrite
			if err := s.Put("인사", "v2"); err != nil {
				t.Fatalf("Put: %v", err)
			}
			src, _ = s.Get("인사")
			if src != "v2" {
				t.Errorf("overwrite lost: %q", src)
			}

			if err := s.Delete("인사"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			src, err = s.Get("인사")
			if err != nil {
				t.Fatalf("Get after delete: %v", err)
			}
			if src != "" {
				t.Errorf("expected empty after delete, got %q", src)
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			src, err := s.Get("없음")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if src != "" {
				t.Errorf("missing name should read as empty, got %q", src)
			}
		})
	}
}

func TestListSorted(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"c", "a", "b"} {
				if err := s.Put(n, "src"); err != nil {
					t.Fatalf("Put: %v", err)
				}
			}
			names, err := s.List()
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
				t.Errorf("got %v", names)
			}
		})
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, src := range []string{"first", "second", "third"} {
				if err := s.AppendHistory(src); err != nil {
					t.Fatalf("AppendHistory: %v", err)
				}
			}
			all, err := s.History(0)
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if !reflect.DeepEqual(all, []string{"third", "second", "first"}) {
				t.Errorf("got %v", all)
			}
			two, err := s.History(2)
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if !reflect.DeepEqual(two, []string{"third", "second"}) {
				t.Errorf("got %v", two)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goout.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := s.Put("p", "src"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	src, err := s.Get("p")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if src != "src" {
		t.Errorf("got %q", src)
	}
}

func TestSQLiteMetadata(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "goout.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer s.Close()

	v, err := s.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if v != SchemaVersion {
		t.Errorf("schema_version = %q, want %q", v, SchemaVersion)
	}

	if err := s.SetMetadata("k", "v1"); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	if err := s.SetMetadata("k", "v2"); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	v, _ = s.GetMetadata("k")
	if v != "v2" {
		t.Errorf("got %q", v)
	}
}
