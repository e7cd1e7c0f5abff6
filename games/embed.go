// Package games bundles the built-in world definitions so the binary
// runs without external data files.
package games

import "embed"

//go:embed stranded
var FS embed.FS

// StrandedDir is the path of the bundled world inside FS.
const StrandedDir = "stranded"
