package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"paper.txt", true},
		{"paper.TXT", true},
		{"notes.md", true},
		{"draft.text", true},
		{"paper.pdf", false},
		{"paper.docx", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("utf8 content", func(t *testing.T) {
		path := filepath.Join(dir, "utf8.txt")
		content := "A paper about ﬁnite elements\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if got != content {
			t.Errorf("got %q, want %q", got, content)
		}
	})

	t.Run("latin1 fallback", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.txt")
		// "résumé" encoded as ISO 8859-1: é = 0xE9, invalid as UTF-8.
		raw := []byte{'r', 0xE9, 's', 'u', 'm', 0xE9}
		if err := os.WriteFile(path, raw, 0644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if got != "résumé" {
			t.Errorf("got %q, want %q", got, "résumé")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(dir, "paper.pdf")); err == nil {
			t.Error("expected error for unsupported extension")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(dir, "absent.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestDetectTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		path string
		want string
	}{
		{
			"first plausible line",
			"A Comparative Study of Sparse Solvers\n\nAbstract\n...",
			"paper.txt",
			"A Comparative Study of Sparse Solvers",
		},
		{
			"skips short lines",
			"Draft\nv2\nConvergence of Multigrid Methods on Anisotropic Meshes\n",
			"paper.txt",
			"Convergence of Multigrid Methods on Anisotropic Meshes",
		},
		{
			"falls back to file name",
			"x\ny\nz\n",
			"/data/sparse_solver-comparison.txt",
			"Sparse Solver Comparison",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTitle(tt.text, tt.path); got != tt.want {
				t.Errorf("DetectTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
