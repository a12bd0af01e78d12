package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AddGitignoreEntry appends a literal line to the project's .gitignore,
// preceded by an optional comment line. The line is added only if not
// already present (exact match, modulo surrounding whitespace). When no
// .gitignore exists the call is a no-op: the project has opted out of
// git ignore rules and the installer does not create one.
func AddGitignoreEntry(projectRoot, line, comment string) (added bool, err error) {
	gitignorePath := filepath.Join(projectRoot, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading .gitignore: %w", err)
	}

	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == line {
			return false, nil // already present
		}
	}

	var b strings.Builder
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		b.WriteString("\n")
	}
	if comment != "" {
		b.WriteString(comment + "\n")
	}
	b.WriteString(line + "\n")

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening .gitignore for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return false, fmt.Errorf("writing to .gitignore: %w", err)
	}

	return true, nil
}
