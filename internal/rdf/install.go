package rdf

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/maximal-ai/maximal/internal/repomap"
	"github.com/maximal-ai/maximal/internal/scaffold"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options adjust an RDF install run.
type Options struct {
	// DryRun previews created paths without writing anything.
	DryRun bool
	// SourceDir is the tree scaffolded by layer 3 and indexed by
	// layer 4. Defaults to the install root.
	SourceDir string
	// ExternalDocsPath, when set, is referenced by layer 2 output.
	ExternalDocsPath string
}

// Result reports what an RDF install run did (or, under DryRun, would do).
type Result struct {
	Dirs      []string // directories created
	Files     []string // files written
	Preserved []string // user-owned files left untouched (.new sibling written)
	Skipped   []string // existing files left as-is
}

// Install applies the selected layers to root. Layers are independent;
// each creates its directories and files idempotently.
func Install(root string, layers []int, opts Options) (*Result, error) {
	if opts.SourceDir == "" {
		opts.SourceDir = root
	}

	result := &Result{}
	for _, n := range layers {
		layer, ok := layerByNumber(n)
		if !ok {
			return nil, fmt.Errorf("unknown layer %d", n)
		}

		var err error
		switch layer.Number {
		case 1:
			err = installCoreDocs(root, opts, result)
		case 2:
			err = installAIGuidance(root, opts, result)
		case 3:
			err = installFolderDocs(root, opts, result)
		case 4:
			err = installRepomap(root, opts, result)
		case 5:
			err = installDecisions(root, opts, result)
		}
		if err != nil {
			return nil, fmt.Errorf("installing layer %d (%s): %w", layer.Number, layer.Name, err)
		}
	}
	return result, nil
}

// Layer 1: docs/AGENTS.md (user-owned) and .repomap.yaml (skip if present).
func installCoreDocs(root string, opts Options, result *Result) error {
	if err := ensureDir(root, "docs", opts, result); err != nil {
		return err
	}

	agents, err := render("agents.md.tmpl", nil)
	if err != nil {
		return err
	}
	if err := writeUserOwned(root, "docs/AGENTS.md", agents, opts, result); err != nil {
		return err
	}

	cfg, err := render("repomap-config.yaml.tmpl", nil)
	if err != nil {
		return err
	}
	return writeIfAbsent(root, repomap.ConfigFileName, cfg, opts, result)
}

// Layer 2: docs/ai/ guidance seeds.
func installAIGuidance(root string, opts Options, result *Result) error {
	for _, dir := range []string{"docs/ai/protocols", "docs/ai/checklists", "docs/ai/prompts"} {
		if err := ensureDir(root, dir, opts, result); err != nil {
			return err
		}
	}

	data := struct{ ExternalDocsPath string }{opts.ExternalDocsPath}
	seeds := map[string]string{
		"docs/ai/protocols/README.md":        "protocols-readme.md.tmpl",
		"docs/ai/checklists/verification.md": "checklist.md.tmpl",
		"docs/ai/prompts/README.md":          "prompts-readme.md.tmpl",
	}
	for dest, tmpl := range seeds {
		content, err := render(tmpl, data)
		if err != nil {
			return err
		}
		if err := writeIfAbsent(root, dest, content, opts, result); err != nil {
			return err
		}
	}
	return nil
}

// Layer 3: docs/templates/ plus .folder.md scaffolding of the source tree.
func installFolderDocs(root string, opts Options, result *Result) error {
	if err := ensureDir(root, "docs/templates", opts, result); err != nil {
		return err
	}

	tmplContent, err := render("doc-template.md.tmpl", nil)
	if err != nil {
		return err
	}
	if err := writeIfAbsent(root, "docs/templates/document.md", tmplContent, opts, result); err != nil {
		return err
	}

	scaffolded, err := scaffold.All(opts.SourceDir, opts.DryRun)
	if err != nil {
		return err
	}
	for _, dir := range scaffolded.Created {
		result.Files = append(result.Files, filepath.Join(dir, scaffold.FolderDocName))
	}
	return nil
}

// Layer 4: generate REPOMAP.yaml from the source tree.
func installRepomap(root string, opts Options, result *Result) error {
	outPath := filepath.Join(root, repomap.DefaultOutputName)
	if opts.DryRun {
		result.Files = append(result.Files, outPath)
		return nil
	}

	cfg, err := repomap.LoadConfig(filepath.Join(root, repomap.ConfigFileName))
	if err != nil {
		return err
	}
	if _, err := repomap.Generate(opts.SourceDir, outPath, cfg); err != nil {
		return err
	}
	result.Files = append(result.Files, outPath)
	return nil
}

// Layer 5: architecture decision records.
func installDecisions(root string, opts Options, result *Result) error {
	if err := ensureDir(root, "docs/architecture/decisions", opts, result); err != nil {
		return err
	}

	adr, err := render("adr.md.tmpl", struct{ Date string }{time.Now().Format("2006-01-02")})
	if err != nil {
		return err
	}
	return writeIfAbsent(root, "docs/architecture/decisions/0001-record-architecture-decisions.md", adr, opts, result)
}

// render executes an embedded template with data.
func render(name string, data any) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func ensureDir(root, rel string, opts Options, result *Result) error {
	path := filepath.Join(root, rel)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	result.Dirs = append(result.Dirs, rel)
	if opts.DryRun {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// writeIfAbsent writes a managed seed file only when it does not exist.
func writeIfAbsent(root, rel string, content []byte, opts Options, result *Result) error {
	path := filepath.Join(root, rel)
	if _, err := os.Stat(path); err == nil {
		result.Skipped = append(result.Skipped, rel)
		return nil
	}
	result.Files = append(result.Files, rel)
	if opts.DryRun {
		return nil
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeUserOwned writes a file the operator may customize. An existing
// copy is never modified; a .new sibling carries the fresh content.
func writeUserOwned(root, rel string, content []byte, opts Options, result *Result) error {
	path := filepath.Join(root, rel)
	if _, err := os.Stat(path); err == nil {
		result.Preserved = append(result.Preserved, rel)
		if opts.DryRun {
			return nil
		}
		if err := os.WriteFile(path+".new", content, 0644); err != nil {
			return fmt.Errorf("writing %s.new: %w", path, err)
		}
		return nil
	}

	result.Files = append(result.Files, rel)
	if opts.DryRun {
		return nil
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
