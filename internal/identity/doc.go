// Package identity resolves the username recorded in installed projects.
// Resolution walks an ordered chain of lookups (project config file,
// environment, git identity) and falls back to a fixed default, so it
// always terminates with a value.
package identity
