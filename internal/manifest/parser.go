package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Path returns the manifest path for a payload directory.
func Path(payloadDir string) string {
	return filepath.Join(payloadDir, FileName)
}

// Parse reads and decodes a manifest file.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return parseBytes(path, data)
}

// parseBytes decodes manifest bytes. path is used in error messages only.
func parseBytes(path string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s missing required 'name' field", path)
	}
	if len(m.Files) == 0 && len(m.Directories) == 0 {
		return nil, fmt.Errorf("manifest %s declares nothing to install", path)
	}

	return &m, nil
}

// Load parses and schema-validates the manifest at a payload root.
// Validation issues are returned as a single wrapped error. The file is
// read once; the validated bytes are the ones decoded.
func Load(payloadDir string) (*Manifest, error) {
	path := Path(payloadDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s is invalid: %s", path, result.Issues[0].String())
	}

	return parseBytes(path, data)
}
