package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// Keys recognized in the global config file.
	KeyPayloadDir       = "payload_dir"
	KeyExternalDocsPath = "external_docs_path"
)

// Dir returns the path to the global config directory (~/.maximal-ai/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.maximal-ai/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// PayloadDir resolves the installer payload directory.
//
// Resolution order:
//  1. MAXIMAL_AI_HOME environment variable
//  2. payload_dir key in the global config file
//  3. $HOME/dev/maximal-ai
func PayloadDir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	if v := viper.GetString(KeyPayloadDir); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return branding.PayloadDir()
	}
	return filepath.Join(home, branding.PayloadDir())
}

// ExternalDocsPath returns the optional cross-repository documentation
// root. Empty string when unset.
func ExternalDocsPath() string {
	if v := os.Getenv("EXTERNAL_DOCS_PATH"); v != "" {
		return v
	}
	return viper.GetString(KeyExternalDocsPath)
}
