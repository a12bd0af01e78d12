package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	// DefaultUsername is the hard fallback when no other source yields a value.
	DefaultUsername = "user"

	// EnvUsername is the environment variable consulted after the project config.
	EnvUsername = "RPI_USERNAME"

	// ConfigDirName and ConfigFileName locate the per-project config.
	ConfigDirName  = ".claude"
	ConfigFileName = "config.yaml"
)

// projectConfig is the persisted per-project record. A single key by design.
type projectConfig struct {
	Username string `yaml:"username"`
}

// lookup is one step in the resolution chain. ok is false when the
// source has no value.
type lookup func() (value string, ok bool)

// ConfigPath returns the project config file path (<root>/.claude/config.yaml).
func ConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ConfigDirName, ConfigFileName)
}

// Resolve returns the username for a project. First non-empty source wins:
//
//  1. username key in <root>/.claude/config.yaml
//  2. RPI_USERNAME environment variable
//  3. git user.name, normalized (spaces → hyphens, then lowercased)
//  4. the literal "user"
//
// Resolution is read-only and always terminates with a value.
func Resolve(projectRoot string) string {
	chain := []lookup{
		func() (string, bool) { return fromProjectConfig(projectRoot) },
		fromEnv,
		fromGitIdentity,
	}
	for _, step := range chain {
		if v, ok := step(); ok {
			return v
		}
	}
	return DefaultUsername
}

// Persist writes the resolved username to <root>/.claude/config.yaml.
// An existing config file is never touched; created reports whether a
// new file was written.
func Persist(projectRoot, username string) (created bool, err error) {
	path := ConfigPath(projectRoot)
	if _, statErr := os.Stat(path); statErr == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(projectConfig{Username: username})
	if err != nil {
		return false, fmt.Errorf("encoding project config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// Normalize converts a display name to the stored username form:
// spaces become hyphens, then the result is lowercased.
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

func fromProjectConfig(projectRoot string) (string, bool) {
	data, err := os.ReadFile(ConfigPath(projectRoot))
	if err != nil {
		return "", false
	}

	var cfg projectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", false
	}
	if cfg.Username == "" {
		return "", false
	}
	return cfg.Username, true
}

func fromEnv() (string, bool) {
	if v := os.Getenv(EnvUsername); v != "" {
		return v, true
	}
	return "", false
}

func fromGitIdentity() (string, bool) {
	name := gitUserName()
	if name == "" {
		return "", false
	}
	normalized := Normalize(name)
	if normalized == "" {
		return "", false
	}
	return normalized, true
}
