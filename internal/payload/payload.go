// Package payload manages the payload repository holding the installable
// file sets. It handles cloning, pulling, and freshness tracking.
package payload

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/maximal-ai/maximal/internal/config"
)

const (
	// freshnessFile is the timestamp marker written after each sync.
	freshnessFile = ".payload-updated"

	// DefaultMaxAge is the staleness threshold for update hints.
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// RepoURL returns the payload repository URL, checking (in order):
// the <PREFIX>_PAYLOAD_REPO_URL env var, the payload_repo config key,
// and the built-in branding default.
func RepoURL() string {
	if v := os.Getenv(branding.EnvVar("PAYLOAD_REPO_URL")); v != "" {
		return v
	}
	if v := config.Get("payload_repo"); v != "" {
		return v
	}
	return branding.PayloadRepoURL()
}

// Clone performs a shallow clone of the payload repository into targetDir.
// The clone is atomic: it writes to a .tmp directory first and renames on
// success. On failure the .tmp directory is cleaned up.
func Clone(targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir := targetDir + tmpSuffix
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	cmd := exec.Command("git", "clone", "--depth=1", RepoURL(), tmpDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("cloning payload repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing payload dir: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing payload clone: %w", err)
	}

	WriteFreshnessMarker(targetDir)
	return nil
}

// Update pulls the latest changes in the payload directory. When the
// directory is not a git checkout yet, it clones instead.
func Update(payloadDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	gitDir := filepath.Join(payloadDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return Clone(payloadDir)
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = payloadDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pulling payload updates: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	WriteFreshnessMarker(payloadDir)
	return nil
}

// WriteFreshnessMarker records the current Unix timestamp in payloadDir.
func WriteFreshnessMarker(payloadDir string) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(filepath.Join(payloadDir, freshnessFile), []byte(ts), 0644)
}

// ReadFreshnessMarker returns the last sync time, or the zero time when
// the marker is missing or unreadable.
func ReadFreshnessMarker(payloadDir string) time.Time {
	data, err := os.ReadFile(filepath.Join(payloadDir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale reports whether the payload was last synced more than maxAge ago.
// A missing marker counts as stale.
func IsStale(payloadDir string, maxAge time.Duration) bool {
	last := ReadFreshnessMarker(payloadDir)
	if last.IsZero() {
		return true
	}
	return time.Since(last) > maxAge
}

func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
