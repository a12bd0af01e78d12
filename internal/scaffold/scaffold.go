package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// FolderDocName is the per-directory documentation file.
const FolderDocName = ".folder.md"

// AutoMarker separates preserved human content from the regenerated
// listing. Everything from this line down is owned by the generator.
const AutoMarker = "<!-- AUTO-GENERATED BELOW: do not edit, regenerated by maximal-ai scaffold -->"

//go:embed templates/folder.md.tmpl
var folderTemplate string

// skippedDirs are never scaffolded or descended into.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	"testdata":     true,
}

// templateData feeds the folder.md template.
type templateData struct {
	Name  string
	Files []string
}

// Result reports a scaffolding run.
type Result struct {
	Created []string // directories that received a new .folder.md
	Updated []string // directories whose listing was regenerated
}

// Scan walks root and returns directories lacking a .folder.md, root
// first. Hidden directories and well-known build/dependency dirs are
// skipped.
func Scan(root string) ([]string, error) {
	dirs, err := scanDirs(root)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, dir := range dirs {
		if !hasFolderDoc(dir) {
			missing = append(missing, dir)
		}
	}
	return missing, nil
}

// scanDirs returns every scaffoldable directory under root, root first.
func scanDirs(root string) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || skippedDirs[d.Name()]) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return dirs, nil
}

func hasFolderDoc(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FolderDocName))
	return err == nil
}

// Generate creates or refreshes the .folder.md for one directory.
// created is true when no .folder.md existed before.
func Generate(dir string) (created bool, err error) {
	docPath := filepath.Join(dir, FolderDocName)

	listing, err := fileListing(dir)
	if err != nil {
		return false, err
	}

	existing, readErr := os.ReadFile(docPath)
	if readErr != nil && !os.IsNotExist(readErr) {
		return false, fmt.Errorf("reading %s: %w", docPath, readErr)
	}

	if readErr == nil {
		// Preserve everything above the marker, regenerate below it.
		content := regenerate(string(existing), listing)
		if err := os.WriteFile(docPath, []byte(content), 0644); err != nil {
			return false, fmt.Errorf("writing %s: %w", docPath, err)
		}
		return false, nil
	}

	tmpl, err := template.New("folder.md").Parse(folderTemplate)
	if err != nil {
		return false, fmt.Errorf("parsing folder.md template: %w", err)
	}

	var buf bytes.Buffer
	data := templateData{Name: filepath.Base(dir), Files: listing}
	if err := tmpl.Execute(&buf, data); err != nil {
		return false, fmt.Errorf("executing folder.md template: %w", err)
	}

	if err := os.WriteFile(docPath, buf.Bytes(), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", docPath, err)
	}
	return true, nil
}

// All scaffolds every directory under root that lacks a .folder.md and
// refreshes listings in those that have one. With dryRun, nothing is
// written; Created and Updated report what a real run would do.
func All(root string, dryRun bool) (*Result, error) {
	result := &Result{}

	dirs, err := scanDirs(root)
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if dryRun {
			if hasFolderDoc(dir) {
				result.Updated = append(result.Updated, dir)
			} else {
				result.Created = append(result.Created, dir)
			}
			continue
		}

		created, err := Generate(dir)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created = append(result.Created, dir)
		} else {
			result.Updated = append(result.Updated, dir)
		}
	}
	return result, nil
}

// regenerate splices a fresh listing below the auto marker, keeping all
// content above it. Files that predate the marker convention get the
// marker appended.
func regenerate(existing string, files []string) string {
	head := existing
	if idx := strings.Index(existing, AutoMarker); idx >= 0 {
		head = existing[:idx]
	} else if !strings.HasSuffix(head, "\n") {
		head += "\n"
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString(AutoMarker + "\n\n## Files\n\n")
	for _, f := range files {
		b.WriteString("- `" + f + "`\n")
	}
	return b.String()
}

// fileListing returns the sorted regular files of dir, excluding hidden
// files and the folder doc itself.
func fileListing(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}
