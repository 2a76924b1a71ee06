// Package parser reads line-oriented construction configs and drives the
// nlg catalog against a shared graph document. A config describes objects
// as property lines, nesting markers, and cross-reference tags; the
// parser coerces raw values and dispatches each completed object to its
// validating constructor.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
)

// Kind is a config value's declared scalar type.
type Kind int

const (
	KindStr Kind = iota
	KindBool
	KindInt
	KindDatetime
)

// String returns the config-facing tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// listPrefix marks a list-typed value tag; elements are coerced with the
// scalar kind after the prefix.
const listPrefix = "list:"

// listSeparator is the literal token between list elements.
const listSeparator = "[ | ]"

// ConversionError reports a raw config value that could not be coerced to
// its declared kind.
type ConversionError struct {
	Value  string
	Kind   Kind
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %s", e.Value, e.Kind, e.Reason)
}

// ParseKind resolves a value tag to its kind and list flag. The tag set
// is closed; anything else is an error.
func ParseKind(tag string) (Kind, bool, error) {
	scalar := tag
	list := strings.HasPrefix(tag, listPrefix)
	if list {
		scalar = strings.TrimPrefix(tag, listPrefix)
	}
	switch scalar {
	case "str":
		return KindStr, list, nil
	case "bool":
		return KindBool, list, nil
	case "int":
		return KindInt, list, nil
	case "datetime":
		return KindDatetime, list, nil
	default:
		return 0, false, errors.Wrapf(errors.ErrInvalidInput, "unknown value tag %q", tag)
	}
}

// Convert coerces a raw config value to the given kind. List values are
// split on the literal element separator and coerced per element,
// returning []any.
func Convert(raw string, kind Kind, list bool) (any, error) {
	if !list {
		return convertScalar(raw, kind)
	}
	parts := strings.Split(strings.TrimSpace(raw), listSeparator)
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		v, err := convertScalar(part, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func convertScalar(raw string, kind Kind) (any, error) {
	switch kind {
	case KindStr:
		return strings.Trim(raw, `"`), nil
	case KindBool:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, &ConversionError{Value: raw, Kind: kind, Reason: "not a boolean token"}
		}
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ConversionError{Value: raw, Kind: kind, Reason: "not a base-10 integer"}
		}
		return i, nil
	case KindDatetime:
		t, err := time.Parse(graph.DatetimeLayout, raw)
		if err != nil {
			return nil, &ConversionError{Value: raw, Kind: kind, Reason: "not a " + graph.DatetimeLayout + " datetime"}
		}
		return t.UTC(), nil
	default:
		return nil, &ConversionError{Value: raw, Kind: kind, Reason: "unhandled kind"}
	}
}
