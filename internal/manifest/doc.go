// Package manifest parses and validates install manifests. A payload
// ships an install.yaml listing the files, directories, and gitignore
// entries a kit installs; manifests are validated against an embedded
// JSON Schema and gated on the CLI version before use.
package manifest
