// Package updater implements self-update from GitHub releases: version
// discovery, platform asset selection, checksum-verified download, and
// atomic binary replacement with rollback.
package updater
