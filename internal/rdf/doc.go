// Package rdf installs the Repo Documentation Framework: five
// independently selectable layers of documentation scaffolding, from
// core agent docs through folder documentation, repomap generation,
// and architecture decision records.
package rdf
