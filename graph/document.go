// Package graph implements the shared CASE graph: an append-only set of
// typed nodes and their property triples, serializable as a JSON-LD
// document. Validation lives above this layer; by the time a node is
// created here it is final and is never rolled back.
package graph

import (
	"time"

	"github.com/google/uuid"
)

// Namespace is the default CASE vocabulary namespace.
const Namespace = "http://case.example.org/core#"

// Document owns every node created during one construction session.
// Nodes are appended in creation order and never removed.
type Document struct {
	namespace string
	indent    string
	nodes     []*Node
	newID     func() string
	now       func() time.Time
}

// Option configures a Document.
type Option func(*Document)

// WithNamespace overrides the vocabulary namespace used in serialization.
func WithNamespace(ns string) Option {
	return func(d *Document) { d.namespace = ns }
}

// WithIndent overrides the indentation string used when serializing.
func WithIndent(indent string) Option {
	return func(d *Document) { d.indent = indent }
}

// WithIDSource injects the node-identifier generator. Tests inject a fixed
// sequence to make serialized output reproducible.
func WithIDSource(fn func() string) Option {
	return func(d *Document) { d.newID = fn }
}

// WithClock injects the time source used for creation-time stamps.
func WithClock(fn func() time.Time) Option {
	return func(d *Document) { d.now = fn }
}

// NewDocument creates an empty document backed by an in-memory graph.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		namespace: Namespace,
		indent:    "  ",
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Namespace returns the document's vocabulary namespace.
func (d *Document) Namespace() string { return d.namespace }

// Nodes returns all nodes in creation order.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int { return len(d.nodes) }

// CategoryCounts returns how many nodes of each category the document holds.
func (d *Document) CategoryCounts() map[Category]int {
	counts := make(map[Category]int)
	for _, n := range d.nodes {
		counts[n.category]++
	}
	return counts
}

// newNode creates a node, asserts its type, stamps the per-category
// creation time, appends the supplied properties (nil values skipped), and
// adds the node to the graph. There is no rollback: callers validate
// before creating.
func (d *Document) newNode(typeName string, category Category, blank bool, props Props) *Node {
	n := &Node{
		id:       d.newID(),
		blank:    blank,
		category: category,
		typeName: typeName,
		props:    make(map[string][]any),
		doc:      d,
	}
	if stamp := category.creationTimeProperty(); stamp != "" {
		n.Add(stamp, d.now().UTC())
	}
	for name, value := range props {
		n.Add(name, value)
	}
	d.nodes = append(d.nodes, n)
	return n
}

// CreateCoreObject creates a primary-entity node of the given type.
func (d *Document) CreateCoreObject(typeName string, props Props) *Node {
	return d.newNode(typeName, CategoryCore, false, props)
}

// CreateContextObject creates a contextual-entity node of the given type.
func (d *Document) CreateContextObject(typeName string, props Props) *Node {
	return d.newNode(typeName, CategoryContext, false, props)
}

// CreateDuckObject creates a structural-helper node of the given type.
func (d *Document) CreateDuckObject(typeName string, props Props) *Node {
	return d.newNode(typeName, CategoryDuck, false, props)
}

// CreateSubObject creates a dependent child-entity node of the given type.
// The owning relationship is recorded by the caller, not here.
func (d *Document) CreateSubObject(typeName string, props Props) *Node {
	return d.newNode(typeName, CategorySub, false, props)
}
