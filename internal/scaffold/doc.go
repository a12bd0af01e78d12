// Package scaffold creates and refreshes .folder.md files: per-directory
// documentation stubs with a human-authored section and an auto-generated
// file listing. Human content above the generation marker is never
// overwritten; only the listing below it is regenerated.
package scaffold
