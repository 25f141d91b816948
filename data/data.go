// Package data holds the question set shipped with the binary. It seeds an
// empty question store on first run.
package data

import _ "embed"

// BundledName is the source name reported for the bundled set.
const BundledName = "bundled.yaml"

//go:embed questions.yaml
var bundled []byte

// Bundled returns a copy of the bundled YAML source.
func Bundled() []byte {
	out := make([]byte, len(bundled))
	copy(out, bundled)
	return out
}
