// Package sym defines canonical glyphs for casegraph CLI surfaces.
// These symbols are stable across command help and summary output.
package sym

// Command glyphs.
const (
	Build   = "⊕" // build — construct objects and serialize the graph
	Classes = "∈" // classes — catalog membership listing
	Graph   = "⊛" // graph — the shared node graph
)

// registry is the canonical glyph set, used to keep symbols distinct.
var registry = []string{Build, Classes, Graph}

// All returns every registered glyph.
func All() []string {
	out := make([]string, len(registry))
	copy(out, registry)
	return out
}
