package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadAllFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.vitl")
	if err := os.WriteFile(path, []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "let x = 1;" {
		t.Errorf("ReadAll() = %q", data)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll("/does/not/exist.vitl"); err == nil {
		t.Error("expected error reading a nonexistent file")
	}
}

func TestDirname(t *testing.T) {
	tests := []struct{ path, want string }{
		{"a/b/c.vitl", "a/b"},
		{"c.vitl", "."},
		{"a/b/", "a"},
		{"", "."},
	}
	for _, tt := range tests {
		if got := Dirname(tt.path); got != tt.want {
			t.Errorf("Dirname(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMkdirAllPIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")
	if err := MkdirAllP(target); err != nil {
		t.Fatalf("first MkdirAllP: %v", err)
	}
	if err := MkdirAllP(target); err != nil {
		t.Fatalf("second MkdirAllP should also succeed: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Errorf("expected %s to exist as a directory", target)
	}
}

func TestWriteAllCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "a.out")
	if err := WriteAll(path, []byte("payload")); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("got %q, want %q", data, "payload")
	}
}

func TestWriteAllReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.out")
	if err := WriteAll(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(path, []byte("second")); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("got %q, want %q", data, "second")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	if Exists(path) {
		t.Error("Exists() true for a file that hasn't been created yet")
	}
	os.WriteFile(path, []byte("x"), 0o644)
	if !Exists(path) {
		t.Error("Exists() false for a file that was just created")
	}
}
