package graph

import (
	"time"
)

// Category classifies a node by its structural role in the ontology.
// Property bundles may only attach to core entities; validators rely on
// the category to enforce that and to distinguish reference kinds.
type Category int

const (
	// CategoryCore is a primary entity: a directly observable or
	// assertable real-world or digital object (a trace, an action).
	CategoryCore Category = iota

	// CategoryContext is a contextual entity: investigative context
	// rather than an observed object (a provenance record).
	CategoryContext

	// CategoryPropertyBundle is a typed attachment to a core entity
	// carrying a cohesive group of domain properties.
	CategoryPropertyBundle

	// CategoryDuck is a structural helper: an anonymous reusable value
	// shape (a hash, a dictionary entry) with no independent identity.
	CategoryDuck

	// CategorySub is a dependent child entity attachable only to an
	// already-constructed instance of a specific parent class.
	CategorySub
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryCore:
		return "CoreObject"
	case CategoryContext:
		return "ContextObject"
	case CategoryPropertyBundle:
		return "PropertyBundle"
	case CategoryDuck:
		return "DuckObject"
	case CategorySub:
		return "SubObject"
	default:
		return "Unknown"
	}
}

// creationTimeProperty returns the auto-stamped creation property name for
// the category, or "" for categories that are not stamped.
func (c Category) creationTimeProperty() string {
	switch c {
	case CategoryCore:
		return "CoreObjectCreationTime"
	case CategoryContext:
		return "ContextObjectCreationTime"
	case CategoryDuck:
		return "DuckObjectCreationTime"
	case CategorySub:
		return "SubObjectCreationTime"
	default:
		// Property bundles are blank nodes referenced from their owner
		// and carry no creation stamp.
		return ""
	}
}

// Props is the set of named property values supplied at node creation.
// Nil values are skipped, matching optional properties that were never set.
type Props map[string]any

// Node is a single node in the shared graph: an identity, a category, an
// ontology type name, and its property triples. Nodes are created through
// a Document and are append-only; properties may be added but never
// removed.
type Node struct {
	id       string
	blank    bool
	category Category
	typeName string
	props    map[string][]any
	order    []string

	doc *Document
}

// ID returns the node's opaque identifier.
func (n *Node) ID() string { return n.id }

// Blank reports whether the node has blank (non-addressable) identity.
func (n *Node) Blank() bool { return n.blank }

// Category returns the node's structural category.
func (n *Node) Category() Category { return n.category }

// Type returns the ontology class name asserted on the node.
func (n *Node) Type() string { return n.typeName }

// Values returns the recorded values for a property, in insertion order.
func (n *Node) Values(name string) []any {
	return n.props[name]
}

// PropertyNames returns the node's property names in first-set order.
func (n *Node) PropertyNames() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Add records a property on the node.
//
// Nil values are ignored. Slice values are flattened, one triple per
// element (element order is not semantically meaningful). Node values are
// recorded as references; time.Time values are normalized to UTC;
// everything else is stored as a literal.
func (n *Node) Add(name string, value any) {
	if value == nil {
		return
	}
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			n.Add(name, item)
		}
		return
	case []string:
		for _, item := range v {
			n.Add(name, item)
		}
		return
	case []*Node:
		for _, item := range v {
			n.Add(name, item)
		}
		return
	case *Node:
		if v == nil {
			return
		}
		n.append(name, v)
	case time.Time:
		n.append(name, v.UTC())
	default:
		n.append(name, v)
	}
}

func (n *Node) append(name string, value any) {
	if _, seen := n.props[name]; !seen {
		n.order = append(n.order, name)
	}
	n.props[name] = append(n.props[name], value)
}

// CreatePropertyBundle creates a blank-identity bundle node of the given
// type, attaches the supplied properties to it, and records the bundle as
// a propertyBundle reference on this node. The caller is responsible for
// ensuring the owner is a core entity; the graph layer does not enforce
// category rules.
func (n *Node) CreatePropertyBundle(typeName string, props Props) *Node {
	bundle := n.doc.newNode(typeName, CategoryPropertyBundle, true, props)
	n.Add("propertyBundle", bundle)
	return bundle
}
