package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddGitignoreEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	added, err := AddGitignoreEntry(dir, "thoughts/", "# Maximal AI working notes")
	if err != nil {
		t.Fatalf("AddGitignoreEntry() error = %v", err)
	}
	if !added {
		t.Error("expected line to be added")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "node_modules/\n# Maximal AI working notes\nthoughts/\n"
	if string(content) != want {
		t.Errorf("content = %q, want %q", string(content), want)
	}
}

func TestAddGitignoreEntry_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := AddGitignoreEntry(dir, "thoughts/", "# Maximal AI working notes"); err != nil {
			t.Fatalf("AddGitignoreEntry() run %d error = %v", i+1, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if count := strings.Count(string(content), "thoughts/"); count != 1 {
		t.Errorf("expected 1 occurrence of thoughts/, found %d:\n%s", count, string(content))
	}
	if count := strings.Count(string(content), "# Maximal AI working notes"); count != 1 {
		t.Errorf("expected 1 comment line, found %d:\n%s", count, string(content))
	}
}

func TestAddGitignoreEntry_NoFileIsNoop(t *testing.T) {
	dir := t.TempDir()

	added, err := AddGitignoreEntry(dir, "thoughts/", "")
	if err != nil {
		t.Fatalf("AddGitignoreEntry() error = %v", err)
	}
	if added {
		t.Error("nothing should be added when .gitignore is absent")
	}
	if _, err := os.Stat(filepath.Join(dir, ".gitignore")); !os.IsNotExist(err) {
		t.Error(".gitignore must not be created")
	}
}

func TestAddGitignoreEntry_ExactMatchOnly(t *testing.T) {
	// Trailing-slash variants are distinct lines by design.
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("thoughts\n"), 0644); err != nil {
		t.Fatal(err)
	}

	added, err := AddGitignoreEntry(dir, "thoughts/", "")
	if err != nil {
		t.Fatalf("AddGitignoreEntry() error = %v", err)
	}
	if !added {
		t.Error("thoughts/ should be treated as distinct from thoughts")
	}
}

func TestAddGitignoreEntry_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("vendor/"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := AddGitignoreEntry(dir, "thoughts/", ""); err != nil {
		t.Fatalf("AddGitignoreEntry() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "vendor/\nthoughts/\n" {
		t.Errorf("content = %q", string(content))
	}
}

func TestAddGitignoreEntry_NoComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := AddGitignoreEntry(dir, ".claude/config.yaml", ""); err != nil {
		t.Fatalf("AddGitignoreEntry() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != ".claude/config.yaml\n" {
		t.Errorf("content = %q", string(content))
	}
}
