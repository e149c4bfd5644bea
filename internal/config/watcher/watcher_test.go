package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "piecebuf.toml")
	if err := os.WriteFile(path, []byte("[editor]\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[editor]\nhistory_limit = 5\n"), 0o644); err != nil {
		t.Fatalf("rewriting file: %v", err)
	}

	select {
	case ev := <-w.Events():
		if ev.Path != w.Path() {
			t.Errorf("expected event for %s, got %s", w.Path(), ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherSeesCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "piecebuf.toml")

	// The file does not exist yet; watching the directory still works.
	w, err := New(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[repl]\n"), 0o644); err != nil {
		t.Fatalf("creating file: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for create event")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "piecebuf.toml")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("noise"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for sibling write: %v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "piecebuf.toml")

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}
