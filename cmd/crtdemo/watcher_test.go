package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitChanged(w *OptionsWatcher, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if w.Changed() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestOptionsWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crt.json")

	w, err := NewOptionsWatcher(path)
	if err != nil {
		t.Fatalf("NewOptionsWatcher: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Fatal("Changed() before any write")
	}

	if err := os.WriteFile(path, []byte(`{"noise": 0.1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitChanged(w, 2*time.Second) {
		t.Fatal("write not reported")
	}
}

func TestOptionsWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewOptionsWatcher(filepath.Join(dir, "crt.json"))
	if err != nil {
		t.Fatalf("NewOptionsWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if waitChanged(w, 200*time.Millisecond) {
		t.Error("change to another file was reported")
	}
}

func TestOptionsWatcherCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "crt.json")

	w, err := NewOptionsWatcher(path)
	if err != nil {
		t.Fatalf("NewOptionsWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
