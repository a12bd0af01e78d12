// Package cli wires the cobra command tree: the interactive root menu,
// the rpi-workflow and rdf-framework installers, the complete combo,
// and the supporting scaffold, repomap, validate, config, doctor, and
// version commands.
package cli
