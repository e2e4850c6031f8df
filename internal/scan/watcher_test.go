package scan

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// startWatch runs a watcher in the background and returns its emissions
func startWatch(t *testing.T, w *Watcher, ctx context.Context) (<-chan string, <-chan error) {
	t.Helper()

	got := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Items(ctx, func(name, path string) {
			got <- name
		})
	}()

	// Let the watch register before the test starts creating files
	time.Sleep(100 * time.Millisecond)

	return got, done
}

func TestWatcher_EmitsNewFiles(t *testing.T) {
	dir := t.TempDir()
	filter := NewFilter([]string{".jpg", ".png"})
	w := NewWatcher(dir, filter, WatchConfig{Settle: 50 * time.Millisecond}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, done := startWatch(t, w, ctx)

	writeFile(t, dir, "new.jpg")

	select {
	case name := <-got:
		if name != "new.jpg" {
			t.Errorf("expected new.jpg, got %s", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not emit the new file")
	}

	// Ineligible files must stay silent
	writeFile(t, dir, "notes.txt")
	select {
	case name := <-got:
		t.Errorf("unexpected emission %q", name)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcher_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	filter := NewFilter([]string{".jpg"})
	w := NewWatcher(dir, filter, WatchConfig{Settle: 100 * time.Millisecond}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, _ := startWatch(t, w, ctx)

	// Three quick writes to the same file must settle into one emission
	for i := 0; i < 3; i++ {
		writeFile(t, dir, "burst.jpg")
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case name := <-got:
		if name != "burst.jpg" {
			t.Errorf("expected burst.jpg, got %s", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not emit the settled file")
	}

	select {
	case name := <-got:
		t.Errorf("file %s emitted a second time", name)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_IncludeExisting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "old.jpg")
	writeFile(t, dir, "notes.txt")

	filter := NewFilter([]string{".jpg"})
	w := NewWatcher(dir, filter, WatchConfig{
		Settle:          50 * time.Millisecond,
		IncludeExisting: true,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, _ := startWatch(t, w, ctx)

	select {
	case name := <-got:
		if name != "old.jpg" {
			t.Errorf("expected old.jpg, got %s", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("existing file was not emitted")
	}

	select {
	case name := <-got:
		t.Errorf("unexpected second emission %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "absent"), NewFilter([]string{".jpg"}), WatchConfig{}, testLogger())

	err := w.Items(context.Background(), func(name, path string) {
		t.Errorf("unexpected emission of %s", name)
	})
	if err == nil {
		t.Fatal("expected error for a missing directory")
	}
	if !strings.Contains(err.Error(), "watching") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestWatcher_DefaultSettle(t *testing.T) {
	w := NewWatcher(t.TempDir(), NewFilter(nil), WatchConfig{}, testLogger())
	if w.config.Settle != DefaultSettle {
		t.Errorf("expected settle default %s, got %s", DefaultSettle, w.config.Settle)
	}
}
