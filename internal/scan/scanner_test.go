package scan

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// testLogger returns a logger that swallows output so test runs stay quiet
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile drops a small file into dir and returns its path
func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("test data"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestScanner_Items(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "b.png")
	writeFile(t, dir, "a.jpg")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, ".hidden.jpg")
	if err := os.Mkdir(filepath.Join(dir, "album.jpg"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	scanner := NewScanner(dir, NewFilter([]string{".jpg", ".png"}), testLogger())

	var names []string
	var paths []string
	err := scanner.Items(context.Background(), func(name, path string) {
		names = append(names, name)
		paths = append(paths, path)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// os.ReadDir sorts by name, so the emission order is fixed
	want := []string{"a.jpg", "b.png"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("emitted names %v, want %v", names, want)
	}

	for i, path := range paths {
		if want := filepath.Join(dir, names[i]); path != want {
			t.Errorf("path %d: got %s, want %s", i, path, want)
		}
	}
}

func TestScanner_EmptyDirectory(t *testing.T) {
	scanner := NewScanner(t.TempDir(), NewFilter([]string{".jpg"}), testLogger())

	count := 0
	err := scanner.Items(context.Background(), func(name, path string) {
		count++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no emissions from an empty directory, got %d", count)
	}
}

func TestScanner_MissingDirectory(t *testing.T) {
	scanner := NewScanner(filepath.Join(t.TempDir(), "absent"), NewFilter([]string{".jpg"}), testLogger())

	err := scanner.Items(context.Background(), func(name, path string) {
		t.Errorf("unexpected emission of %s", name)
	})
	if err == nil {
		t.Fatal("expected error for a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "reading input directory") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestScanner_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewScanner(dir, NewFilter([]string{".jpg"}), testLogger())

	count := 0
	err := scanner.Items(ctx, func(name, path string) {
		count++
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if count != 0 {
		t.Errorf("expected no emissions after cancellation, got %d", count)
	}
}
