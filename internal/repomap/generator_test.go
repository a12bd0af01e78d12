package repomap

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n\nfunc main() {}\n")
	writeFile(t, filepath.Join(root, "internal/types/types.go"), "package types\n")
	writeFile(t, filepath.Join(root, "internal/server/server.go"), "package server\n")
	writeFile(t, filepath.Join(root, "internal/server/server_test.go"), "package server\n")
	writeFile(t, filepath.Join(root, "node_modules/dep/index.js"), "x\n")
	writeFile(t, filepath.Join(root, "README.bin"), "not indexed\n")
	return root
}

func TestGenerate(t *testing.T) {
	root := setupTree(t)
	out := filepath.Join(t.TempDir(), DefaultOutputName)

	m, err := Generate(root, out, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if m.Meta.FilesIndexed != 4 {
		t.Errorf("FilesIndexed = %d, want 4 (files: %+v)", m.Meta.FilesIndexed, m.Files)
	}

	// Entry point ranks first.
	if m.Files[0].Path != "main.go" || m.Files[0].Type != "entry_point" {
		t.Errorf("first entry = %+v, want main.go entry_point", m.Files[0])
	}

	// Output is parseable YAML mirroring the returned map.
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Map
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Files) != len(m.Files) {
		t.Errorf("decoded %d files, want %d", len(decoded.Files), len(m.Files))
	}
}

func TestGenerate_MissingSource(t *testing.T) {
	out := filepath.Join(t.TempDir(), DefaultOutputName)
	if _, err := Generate(filepath.Join(t.TempDir(), "nope"), out, nil); err == nil {
		t.Fatal("expected error for missing source directory")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "entry_point"},
		{"cmd/tool/run.go", "entry_point"},
		{"internal/types/types.go", "domain_model"},
		{"internal/server/server.go", "service"},
		{"internal/server/server_test.go", "test"},
		{"tests/conftest.py", "test"},
		{"docs/guide.md", "config"},
	}
	for _, tt := range tests {
		if got := classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRank_TestsBelowEntryPoints(t *testing.T) {
	entry := rank(FileEntry{Path: "main.go", Type: "entry_point"})
	test := rank(FileEntry{Path: "a_test.go", Type: "test"})
	if entry <= test {
		t.Errorf("entry_point rank %v should exceed test rank %v", entry, test)
	}
}

func TestTrimToBudget(t *testing.T) {
	var files []FileEntry
	for i := 0; i < 200; i++ {
		files = append(files, FileEntry{
			Path: filepath.Join("pkg", "deeply", "nested", "file"+string(rune('a'+i%26))+".go"),
			Rank: 5, Type: "service", Lines: 100,
		})
	}

	trimmed := trimToBudget(files, 50)
	if len(trimmed) >= len(files) {
		t.Errorf("expected trimming below %d entries, got %d", len(files), len(trimmed))
	}
	if len(trimmed) == 0 {
		t.Error("trimming must keep at least one entry")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.TokenBudget != 2000 {
		t.Errorf("TokenBudget = %d, want 2000", cfg.TokenBudget)
	}
	if len(cfg.SourceDirs) == 0 {
		t.Error("expected default source dirs")
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, "source_dirs:\n  - internal\ntoken_budget: 500\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.TokenBudget != 500 {
		t.Errorf("TokenBudget = %d, want 500", cfg.TokenBudget)
	}
	if len(cfg.SourceDirs) != 1 || cfg.SourceDirs[0] != "internal" {
		t.Errorf("SourceDirs = %v", cfg.SourceDirs)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, "{broken yaml")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
