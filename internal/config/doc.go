// Package config manages the global configuration file at
// ~/.maximal-ai/config.yaml and resolves the installer payload and
// external documentation paths from config and environment.
package config
