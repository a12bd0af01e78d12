package repomap

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ConfigFileName is the repomap configuration file at a project root.
const ConfigFileName = ".repomap.yaml"

// Config controls repomap generation. Zero values fall back to defaults.
type Config struct {
	SourceDirs  []string `yaml:"source_dirs"`
	Exclude     []string `yaml:"exclude"`
	TokenBudget int      `yaml:"token_budget"`
}

// DefaultConfig matches the template installed by the RDF framework.
func DefaultConfig() *Config {
	return &Config{
		SourceDirs:  []string{"src"},
		Exclude:     []string{".git", "node_modules", "vendor", "__pycache__", ".venv"},
		TokenBudget: 2000,
	}
}

// LoadConfig reads .repomap.yaml from path. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.TokenBudget <= 0 {
		cfg.TokenBudget = DefaultConfig().TokenBudget
	}
	return cfg, nil
}

// excluded reports whether a path segment matches the exclude list.
func (c *Config) excluded(name string) bool {
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}
