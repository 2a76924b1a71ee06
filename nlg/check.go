// Package nlg implements the CASE natural language glossary: one
// validating constructor per ontology class. Constructors enforce the
// glossary's cardinality and type rules and, on success, materialize a
// node of the correct category in the shared graph. Validation happens
// strictly before node creation, so a failed call leaves no partial node
// behind.
//
// Several glossary properties have no defined check yet; those pass
// through unchecked. That is deliberate ontology incompleteness carried
// over from the glossary, not a gap to be tightened.
package nlg

import (
	"sort"
	"time"

	"github.com/casework/casegraph/graph"
)

// Properties is the coerced, named property set for one constructor call,
// keyed by the config-facing snake_case property name. Values are the
// coercion layer's primitives (string, bool, int, time.Time), node
// references, or []any collections of either.
type Properties map[string]any

// checker walks a constructor's declared properties in order, required
// first. The first failed check wins; later checks become no-ops.
type checker struct {
	class string
	props Properties
	seen  map[string]bool
	err   error
}

func check(class string, props Properties) *checker {
	return &checker{
		class: class,
		props: props,
		seen:  make(map[string]bool, len(props)),
	}
}

// Err finalizes the check: any recorded failure is returned first, then
// any supplied property that no declared check consumed.
func (c *checker) Err() error {
	if c.err != nil {
		return c.err
	}
	var undeclared []string
	for name := range c.props {
		if !c.seen[name] {
			undeclared = append(undeclared, name)
		}
	}
	if len(undeclared) > 0 {
		sort.Strings(undeclared)
		return &UndeclaredPropertyError{Class: c.class, Property: undeclared[0]}
	}
	return nil
}

func (c *checker) fail(property, expected string) {
	if c.err == nil {
		c.err = &PropertyTypeError{Class: c.class, Property: property, Expected: expected}
	}
}

func (c *checker) take(name string) (any, bool) {
	c.seen[name] = true
	v, ok := c.props[name]
	return v, ok
}

// Any consumes a property without checking it. Used for glossary
// properties that have no defined check.
func (c *checker) Any(name string) any {
	v, _ := c.take(name)
	return v
}

// RequiredAny enforces presence only. Used for required glossary
// properties whose value check is not yet defined (URIs, for instance).
func (c *checker) RequiredAny(name string) any {
	v, ok := c.take(name)
	if c.err != nil {
		return nil
	}
	if !ok {
		c.err = &MissingPropertyError{Class: c.class, Property: name}
		return nil
	}
	return v
}

// --- scalar primitives ---

func (c *checker) scalar(name, expected string, required bool, accept func(any) bool) any {
	v, ok := c.take(name)
	if c.err != nil {
		return nil
	}
	if !ok {
		if required {
			c.err = &MissingPropertyError{Class: c.class, Property: name}
		}
		return nil
	}
	if !accept(v) {
		c.fail(name, expected)
		return nil
	}
	return v
}

func isString(v any) bool { _, ok := v.(string); return ok }
func isBool(v any) bool   { _, ok := v.(bool); return ok }
func isInt(v any) bool    { _, ok := v.(int); return ok }
func isTime(v any) bool   { _, ok := v.(time.Time); return ok }
func isFloat(v any) bool  { _, ok := v.(float64); return ok }

// RequiredString checks an "exactly one String" property.
func (c *checker) RequiredString(name string) any {
	return c.scalar(name, "String", true, isString)
}

// OptionalString checks an "at most one String" property.
func (c *checker) OptionalString(name string) any {
	return c.scalar(name, "String", false, isString)
}

// RequiredBool checks an "exactly one Bool" property.
func (c *checker) RequiredBool(name string) any {
	return c.scalar(name, "Bool", true, isBool)
}

// OptionalBool checks an "at most one Bool" property.
func (c *checker) OptionalBool(name string) any {
	return c.scalar(name, "Bool", false, isBool)
}

// RequiredInt checks an "exactly one Integer" property.
func (c *checker) RequiredInt(name string) any {
	return c.scalar(name, "Integer", true, isInt)
}

// OptionalInt checks an "at most one Integer" property.
func (c *checker) OptionalInt(name string) any {
	return c.scalar(name, "Integer", false, isInt)
}

func isPositiveInt(v any) bool {
	i, ok := v.(int)
	return ok && i > 0
}

// OptionalPositiveInt checks an "at most one PositiveInteger" property.
func (c *checker) OptionalPositiveInt(name string) any {
	return c.scalar(name, "PositiveInteger", false, isPositiveInt)
}

// OptionalLong checks an "at most one Long" property. The coercion layer
// carries whole numbers as int regardless of declared width.
func (c *checker) OptionalLong(name string) any {
	return c.scalar(name, "Long", false, isInt)
}

// OptionalFloat checks an "at most one Float" property.
func (c *checker) OptionalFloat(name string) any {
	return c.scalar(name, "Float", false, isFloat)
}

// RequiredTime checks an "exactly one Datetime" property.
func (c *checker) RequiredTime(name string) any {
	return c.scalar(name, "Datetime", true, isTime)
}

// OptionalTime checks an "at most one Datetime" property.
func (c *checker) OptionalTime(name string) any {
	return c.scalar(name, "Datetime", false, isTime)
}

// --- node references ---

// refAccept builds the acceptance check for a reference property: the
// value must be a node of the category, and, when typeNames are given, of
// one of those ontology types.
func refAccept(category graph.Category, typeNames ...string) func(any) bool {
	return func(v any) bool {
		n, ok := v.(*graph.Node)
		if !ok || n == nil || n.Category() != category {
			return false
		}
		if len(typeNames) == 0 {
			return true
		}
		for _, t := range typeNames {
			if n.Type() == t {
				return true
			}
		}
		return false
	}
}

func refExpected(category graph.Category, typeNames ...string) string {
	if len(typeNames) == 0 {
		return category.String()
	}
	expected := typeNames[0]
	for _, t := range typeNames[1:] {
		expected += " or " + t
	}
	return expected
}

// RequiredRef checks an "exactly one occurrence of <class>" property.
func (c *checker) RequiredRef(name string, category graph.Category, typeNames ...string) any {
	return c.scalar(name, refExpected(category, typeNames...), true, refAccept(category, typeNames...))
}

// OptionalRef checks an "at most one occurrence of <class>" property.
func (c *checker) OptionalRef(name string, category graph.Category, typeNames ...string) any {
	return c.scalar(name, refExpected(category, typeNames...), false, refAccept(category, typeNames...))
}

// --- collections ---

func (c *checker) list(name, expected string, required bool, accept func(any) bool) any {
	v, ok := c.take(name)
	if c.err != nil {
		return nil
	}
	if !ok {
		if required {
			c.err = &MissingPropertyError{Class: c.class, Property: name}
		}
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		c.fail(name, expected)
		return nil
	}
	for _, item := range items {
		if !accept(item) {
			c.fail(name, expected)
			return nil
		}
	}
	return items
}

// RequiredStringList checks an "at least one String" property.
func (c *checker) RequiredStringList(name string) any {
	return c.list(name, "List of String", true, isString)
}

// OptionalStringList checks an "any number of String" property.
func (c *checker) OptionalStringList(name string) any {
	return c.list(name, "List of String", false, isString)
}

// OptionalIntList checks an "any number of Int" property.
func (c *checker) OptionalIntList(name string) any {
	return c.list(name, "List of Integer", false, isInt)
}

// OptionalBoolList checks an "any number of Bool" property.
func (c *checker) OptionalBoolList(name string) any {
	return c.list(name, "List of Bool", false, isBool)
}

// OptionalTimeList checks an "any number of Datetime" property.
func (c *checker) OptionalTimeList(name string) any {
	return c.list(name, "List of Datetime", false, isTime)
}

// RequiredRefList checks an "at least one occurrence of <class>" property.
func (c *checker) RequiredRefList(name string, category graph.Category, typeNames ...string) any {
	expected := "List of " + refExpected(category, typeNames...)
	return c.list(name, expected, true, refAccept(category, typeNames...))
}

// OptionalRefList checks an "any number of occurrences of <class>" property.
func (c *checker) OptionalRefList(name string, category graph.Category, typeNames ...string) any {
	expected := "List of " + refExpected(category, typeNames...)
	return c.list(name, expected, false, refAccept(category, typeNames...))
}

// --- owner assertions for bundle/child constructors ---

// ownerError reports a bundle or child constructor whose owning node is of
// the wrong category or type.
func ownerError(class string, category graph.Category, typeNames ...string) error {
	return &PropertyTypeError{
		Class:    class,
		Property: "owner",
		Expected: refExpected(category, typeNames...),
	}
}

func checkOwner(class string, owner *graph.Node, category graph.Category, typeNames ...string) error {
	if !refAccept(category, typeNames...)(owner) {
		return ownerError(class, category, typeNames...)
	}
	return nil
}
