package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTextCachesAfterFirstLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	store := NewStore(path, nil)

	got, err := store.Text()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if got != "original" {
		t.Fatalf("got %q, want original", got)
	}

	// The cache must survive changes to the backing file.
	if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
		t.Fatalf("rewrite corpus: %v", err)
	}
	got, err = store.Text()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got != "original" {
		t.Fatalf("cache not used, got %q", got)
	}
}

func TestTextRetriesAfterFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	store := NewStore(path, nil)

	if _, err := store.Text(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if err := os.WriteFile(path, []byte("now present"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	got, err := store.Text()
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if got != "now present" {
		t.Fatalf("got %q, want now present", got)
	}
}
