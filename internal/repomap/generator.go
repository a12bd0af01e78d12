package repomap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

// DefaultOutputName is the generated map file at a project root.
const DefaultOutputName = "REPOMAP.yaml"

//go:embed schema/repomap.schema.json
var repomapSchemaBytes []byte

// sourceExtensions are the file types worth indexing.
var sourceExtensions = map[string]bool{
	".go": true, ".py": true, ".ts": true, ".tsx": true, ".js": true,
	".jsx": true, ".rs": true, ".java": true, ".rb": true, ".sh": true,
	".sql": true, ".proto": true, ".yaml": true, ".yml": true, ".md": true,
}

// FileEntry is one indexed source file.
type FileEntry struct {
	Path  string  `yaml:"path" json:"path"`
	Rank  float64 `yaml:"rank" json:"rank"`
	Type  string  `yaml:"type" json:"type"`
	Lines int     `yaml:"lines" json:"lines"`
}

// Meta describes a generation run.
type Meta struct {
	GeneratedAt  string `yaml:"generated_at" json:"generated_at"`
	Source       string `yaml:"source" json:"source"`
	FilesIndexed int    `yaml:"files_indexed" json:"files_indexed"`
	TokenBudget  int    `yaml:"token_budget" json:"token_budget"`
}

// Map is the full REPOMAP document.
type Map struct {
	Meta  Meta        `yaml:"meta" json:"meta"`
	Files []FileEntry `yaml:"files" json:"files"`
}

// Generate scans sourceDir, builds the ranked index, and writes it to
// outputPath after schema validation.
func Generate(sourceDir, outputPath string, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	info, err := os.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source directory %s not found", sourceDir)
	}

	m, err := build(sourceDir, cfg)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding repomap: %w", err)
	}

	if err := validateMap(m); err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return m, nil
}

// build walks the tree, indexes source files, ranks them, and trims the
// listing to the token budget.
func build(sourceDir string, cfg *Config) (*Map, error) {
	var files []FileEntry

	err := filepath.WalkDir(sourceDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != sourceDir && (strings.HasPrefix(d.Name(), ".") || cfg.excluded(d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(d.Name())] || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			return relErr
		}

		lines, countErr := countLines(path)
		if countErr != nil {
			return countErr
		}

		entry := FileEntry{
			Path:  filepath.ToSlash(rel),
			Type:  classify(rel),
			Lines: lines,
		}
		entry.Rank = rank(entry)
		files = append(files, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceDir, err)
	}

	// Highest rank first; stable path order within a rank.
	sort.Slice(files, func(i, j int) bool {
		if files[i].Rank != files[j].Rank {
			return files[i].Rank > files[j].Rank
		}
		return files[i].Path < files[j].Path
	})

	files = trimToBudget(files, cfg.TokenBudget)

	return &Map{
		Meta: Meta{
			GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
			Source:       filepath.ToSlash(sourceDir),
			FilesIndexed: len(files),
			TokenBudget:  cfg.TokenBudget,
		},
		Files: files,
	}, nil
}

// classify buckets a file by its role in the tree.
func classify(relPath string) string {
	base := filepath.Base(relPath)
	slash := filepath.ToSlash(relPath)

	switch {
	case strings.HasSuffix(base, "_test.go"), strings.Contains(slash, "tests/"), strings.HasPrefix(base, "test_"):
		return "test"
	case base == "main.go", strings.HasPrefix(slash, "cmd/"), base == "cli.py", base == "__main__.py":
		return "entry_point"
	case strings.Contains(slash, "model"), strings.Contains(slash, "types"), strings.Contains(slash, "schema"):
		return "domain_model"
	case filepath.Ext(base) == ".md", filepath.Ext(base) == ".yaml", filepath.Ext(base) == ".yml":
		return "config"
	default:
		return "service"
	}
}

// rank scores a file 0–10. Entry points first, then domain models,
// shallow paths above deep ones, tests last.
func rank(e FileEntry) float64 {
	var score float64
	switch e.Type {
	case "entry_point":
		score = 10
	case "domain_model":
		score = 7
	case "service":
		score = 5
	case "config":
		score = 3
	case "test":
		score = 1
	}

	depth := float64(strings.Count(filepath.ToSlash(e.Path), "/"))
	score -= depth * 0.5
	if score < 0 {
		score = 0
	}
	return score
}

// trimToBudget drops the lowest-ranked entries until the serialized map
// fits the token budget (roughly four bytes per token).
func trimToBudget(files []FileEntry, budget int) []FileEntry {
	for len(files) > 1 {
		data, err := yaml.Marshal(Map{Files: files})
		if err != nil || len(data)/4 <= budget {
			break
		}
		files = files[:len(files)-1]
	}
	return files
}

// validateMap checks the generated document against the embedded schema.
// A failure here is a generator bug, not user error.
func validateMap(m *Map) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(repomapSchemaBytes))
	if err != nil {
		return fmt.Errorf("unmarshaling repomap schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("repomap.schema.json", doc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile("repomap.schema.json")
	if err != nil {
		return fmt.Errorf("compiling repomap schema: %w", err)
	}

	jsonData, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding repomap for validation: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing repomap for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("generated repomap failed schema validation: %w", err)
	}
	return nil
}

// countLines counts newline-terminated lines in a file.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}
	return n, nil
}
