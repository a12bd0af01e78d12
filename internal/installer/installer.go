package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximal-ai/maximal/internal/manifest"
)

// Options adjust a single install run.
type Options struct {
	// SkipGitignore disables .gitignore patching.
	SkipGitignore bool
}

// Result reports what an install run did.
type Result struct {
	Dirs           []string // directories created (or confirmed)
	Installed      []string // managed files written
	Preserved      []string // user-owned files left untouched (.new sibling written)
	GitignoreAdded []string // lines appended to .gitignore
}

// Install applies a manifest from payloadDir into projectRoot.
// The first failed copy aborts the run with an error.
func Install(m *manifest.Manifest, payloadDir, projectRoot string, opts Options) (*Result, error) {
	if _, err := os.Stat(payloadDir); err != nil {
		return nil, fmt.Errorf("payload directory %s not found: %w", payloadDir, err)
	}

	result := &Result{}

	for _, dir := range m.Directories {
		dest := filepath.Join(projectRoot, dir)
		if err := os.MkdirAll(dest, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dest, err)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	for _, entry := range m.Files {
		src := filepath.Join(payloadDir, entry.Source)
		dest := filepath.Join(projectRoot, entry.Dest)

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", filepath.Dir(dest), err)
		}

		mode := os.FileMode(0644)
		if entry.Executable {
			mode = 0755
		}

		if entry.UserOwned && fileExists(dest) {
			// Never clobber a user-owned file; hand the operator a
			// .new sibling to merge by hand.
			if err := copyFile(src, dest+".new", mode); err != nil {
				return nil, fmt.Errorf("writing %s.new: %w", dest, err)
			}
			result.Preserved = append(result.Preserved, entry.Dest)
			continue
		}

		if err := copyFile(src, dest, mode); err != nil {
			return nil, fmt.Errorf("installing %s: %w", entry.Dest, err)
		}
		result.Installed = append(result.Installed, entry.Dest)
	}

	if !opts.SkipGitignore {
		for _, entry := range m.Gitignore {
			added, err := AddGitignoreEntry(projectRoot, entry.Line, entry.Comment)
			if err != nil {
				return nil, err
			}
			if added {
				result.GitignoreAdded = append(result.GitignoreAdded, entry.Line)
			}
		}
	}

	return result, nil
}
