package graph

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/casework/casegraph/errors"
)

// DatetimeLayout is the textual datetime pattern used throughout the
// system: UTC with microsecond precision and a literal Z suffix.
const DatetimeLayout = "2006-01-02T15:04:05.000000Z"

const xsdNamespace = "http://www.w3.org/2001/XMLSchema#"

// Serialize writes the document as JSON-LD: an @context carrying the
// vocabulary prefixes and an @graph array holding one entry per node in
// creation order. Output is deterministic for a fixed graph; serializing
// the same document twice yields identical bytes.
func (d *Document) Serialize(w io.Writer) error {
	root := map[string]any{
		"@context": map[string]any{
			"@vocab": d.namespace,
			"case":   d.namespace,
			"xsd":    xsdNamespace,
		},
		"@graph": d.graphEntries(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", d.indent)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "failed to serialize graph")
	}
	return nil
}

// SerializeString returns the JSON-LD document as a string.
func (d *Document) SerializeString() (string, error) {
	var sb strings.Builder
	if err := d.Serialize(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (d *Document) graphEntries() []any {
	entries := make([]any, 0, len(d.nodes))
	for _, n := range d.nodes {
		entries = append(entries, d.nodeEntry(n))
	}
	return entries
}

func (d *Document) nodeEntry(n *Node) map[string]any {
	entry := map[string]any{
		"@id":   nodeIRI(n),
		"@type": n.typeName,
	}
	for _, name := range n.order {
		values := n.props[name]
		encoded := make([]any, 0, len(values))
		for _, v := range values {
			encoded = append(encoded, encodeValue(v))
		}
		if len(encoded) == 1 {
			entry[name] = encoded[0]
		} else {
			entry[name] = encoded
		}
	}
	return entry
}

// nodeIRI renders a node's serialized identity. Blank nodes get the
// JSON-LD blank-node prefix.
func nodeIRI(n *Node) string {
	if n.blank {
		return "_:" + n.id
	}
	return n.id
}

func encodeValue(v any) any {
	switch val := v.(type) {
	case *Node:
		return map[string]any{"@id": nodeIRI(val)}
	case time.Time:
		return map[string]any{
			"@type":  "xsd:dateTime",
			"@value": val.UTC().Format(DatetimeLayout),
		}
	default:
		return val
	}
}
