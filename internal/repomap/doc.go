// Package repomap generates REPOMAP.yaml, a ranked index of a source
// tree for AI agents. Files are classified by role, ranked by a simple
// heuristic, trimmed to a token budget, and the output is validated
// against an embedded JSON Schema before it is written.
package repomap
