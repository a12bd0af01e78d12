// Package installer copies a kit payload into a target project. Installs
// are additive and re-runnable: managed files are plainly overwritten,
// user-owned files are preserved with a .new sibling, and gitignore
// entries are appended only when absent. Any copy failure aborts the
// install immediately; there is no rollback, re-running is the recovery.
package installer
