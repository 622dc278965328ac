package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectPapers(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", "b.md", "c.pdf", "nested/d.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("flat", func(t *testing.T) {
		paths, err := collectPapers(dir, false)
		if err != nil {
			t.Fatalf("collectPapers: %v", err)
		}
		if len(paths) != 2 {
			t.Errorf("got %d paths, want 2: %v", len(paths), paths)
		}
	})

	t.Run("recursive", func(t *testing.T) {
		paths, err := collectPapers(dir, true)
		if err != nil {
			t.Fatalf("collectPapers: %v", err)
		}
		if len(paths) != 3 {
			t.Errorf("got %d paths, want 3: %v", len(paths), paths)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		if _, err := collectPapers(filepath.Join(dir, "absent"), false); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
