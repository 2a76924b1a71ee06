package nlg

import (
	"sort"
	"strings"

	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
)

// Convention is the calling convention of a catalog constructor, derived
// from its class-name prefix family.
type Convention int

const (
	// ConventionDocument constructors (core_, context_, duck_) create
	// top-level nodes scoped to the document.
	ConventionDocument Convention = iota

	// ConventionBundle constructors (propbundle_) attach a property
	// bundle to an owning core entity.
	ConventionBundle

	// ConventionChild constructors (core_sub_, propbundle_sub_,
	// duck_sub_) create a dependent node owned by an already-built
	// parent, with the document still in scope.
	ConventionChild
)

// DocumentFunc is the signature of a document-scoped constructor.
type DocumentFunc func(*graph.Document, Properties) (*graph.Node, error)

// BundleFunc is the signature of a property-bundle constructor.
type BundleFunc func(*graph.Node, Properties) (*graph.Node, error)

// ChildFunc is the signature of a child-class constructor.
type ChildFunc func(*graph.Document, *graph.Node, Properties) (*graph.Node, error)

// Entry is one registered catalog class.
type Entry struct {
	Name       string
	Convention Convention

	document DocumentFunc
	bundle   BundleFunc
	child    ChildFunc
}

// Construct invokes the entry with the convention-appropriate arguments.
// owner is ignored for document-scoped classes and must be non-nil for
// bundle and child classes.
func (e Entry) Construct(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	switch e.Convention {
	case ConventionDocument:
		return e.document(d, p)
	case ConventionBundle:
		if owner == nil {
			return nil, errors.Wrapf(errors.ErrEmptyStack, "%s requires an owning entity", e.Name)
		}
		return e.bundle(owner, p)
	case ConventionChild:
		if owner == nil {
			return nil, errors.Wrapf(errors.ErrEmptyStack, "%s requires an owning parent", e.Name)
		}
		return e.child(d, owner, p)
	default:
		return nil, errors.AssertionFailedf("unhandled convention %d for %s", e.Convention, e.Name)
	}
}

var registry = make(map[string]Entry)

// conventionFor derives the calling convention from the class-name prefix.
// Child classes are detected first: every *_sub_* family takes a parent.
func conventionFor(name string) Convention {
	if strings.Contains(name, "sub_") {
		return ConventionChild
	}
	if strings.HasPrefix(name, "propbundle_") {
		return ConventionBundle
	}
	return ConventionDocument
}

func registerDocument(name string, fn DocumentFunc) {
	registry[name] = Entry{Name: name, Convention: ConventionDocument, document: fn}
}

func registerBundle(name string, fn BundleFunc) {
	registry[name] = Entry{Name: name, Convention: ConventionBundle, bundle: fn}
}

func registerChild(name string, fn ChildFunc) {
	registry[name] = Entry{Name: name, Convention: ConventionChild, child: fn}
}

func init() {
	registerCore()
	registerCoreSubs()
	registerContext()
	registerPropertyBundles()
	registerPropertyBundleSubs()
	registerDucks()
	registerDuckSubs()

	// The registry is the single source of truth for conventions; the
	// prefix rule and the registration kind must agree for every class.
	for name, entry := range registry {
		if conventionFor(name) != entry.Convention {
			panic("nlg: class " + name + " registered under the wrong convention")
		}
	}
}

// Lookup resolves a class-name token to its catalog entry.
func Lookup(name string) (Entry, error) {
	entry, ok := registry[name]
	if !ok {
		return Entry{}, &UnknownClassError{Class: name}
	}
	return entry, nil
}

// Classes returns every registered class name in sorted order.
func Classes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
