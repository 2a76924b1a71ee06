package nlg

import "fmt"

// MissingPropertyError reports a required property that was absent at
// construction time.
type MissingPropertyError struct {
	Class    string
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("[%s] %s is required.", e.Class, e.Property)
}

// PropertyTypeError reports a supplied property that failed its declared
// kind, shape, or range check.
type PropertyTypeError struct {
	Class    string
	Property string
	Expected string
}

func (e *PropertyTypeError) Error() string {
	return fmt.Sprintf("[%s] %s must be of type %s.", e.Class, e.Property, e.Expected)
}

// UndeclaredPropertyError reports a property name the class does not
// declare. The catalog is closed: no constructor accepts properties beyond
// its declared set.
type UndeclaredPropertyError struct {
	Class    string
	Property string
}

func (e *UndeclaredPropertyError) Error() string {
	return fmt.Sprintf("[%s] %s is not a declared property.", e.Class, e.Property)
}

// UnknownClassError reports a class-name token that does not resolve to a
// catalog constructor.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class: %s", e.Class)
}
