// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package; Go's //go:embed bakes it
// into the binary at build time.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	PayloadDir  string `yaml:"payload_dir"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	PayloadRepo string `yaml:"payload_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "maximal-ai",
			DisplayName: "Maximal AI",
			Description: "Installer for the Maximal AI workflow kit",
			HomeDir:     ".maximal-ai",
			EnvPrefix:   "MAXIMAL_AI",
			PayloadDir:  "dev/maximal-ai",
			GoModule:    "github.com/maximal-ai/maximal",
			GitHubRepo:  "maximal-ai/maximal",
			PayloadRepo: "https://github.com/maximal-ai/workflow-kit.git",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "maximal-ai").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Maximal AI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".maximal-ai").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MAXIMAL_AI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PayloadDir returns the default payload location relative to $HOME
// (e.g., "dev/maximal-ai"). Overridden by the MAXIMAL_AI_HOME env var.
func PayloadDir() string { load(); return defaults.PayloadDir }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// PayloadRepoURL returns the clone URL of the payload repository.
func PayloadRepoURL() string { load(); return defaults.PayloadRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "MAXIMAL_AI_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
