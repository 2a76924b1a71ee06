package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
	"github.com/casework/casegraph/logger"
	"github.com/casework/casegraph/nlg"
)

// Config line markers.
const (
	assignMarker  = "[==]"
	rootMarker    = "||||"
	embedMarker   = "|~~|"
	objTagMarker  = "[{OBJ-TAG}]"
	objRefMarker  = "[{OBJ-REF}]"
	listRefMarker = "[{list:OBJ-REF}]"
	bindLast      = "|^^|"
	bindLastList  = "list:|^^|"
)

// UnresolvedReferenceError reports a cross-reference tag that no
// previously closed object was filed under.
type UnresolvedReferenceError struct {
	Tag string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved object reference %q", e.Tag)
}

// stackEntry is one ancestor on a nesting stack: the class token it was
// constructed as and the resulting node.
type stackEntry struct {
	Key  string
	Node *graph.Node
}

// ParserState drives one construction run. It accumulates property lines
// into a pending map, tracks the two nesting stacks (root-level `||||`
// and embedded `|~~|`), and files closed top-level objects in the cluster
// table for later cross-reference.
type ParserState struct {
	doc *graph.Document

	class string
	props nlg.Properties
	tmp   nlg.Properties
	flip  bool

	rootStack []stackEntry
	rootDepth int
	propStack []stackEntry
	propDepth int

	tag        string
	pendingRef any
	clusters   map[string]any
	last       *graph.Node

	open bool
	line int
}

// New creates a parser state over the given document.
func New(doc *graph.Document) *ParserState {
	return &ParserState{
		doc:      doc,
		props:    make(nlg.Properties),
		clusters: make(map[string]any),
	}
}

// ParseFile parses the named config file into the document.
func (p *ParserState) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open config %s", path)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads config lines from r until EOF. Any failure aborts the run;
// the document may hold nodes constructed before the failure, and the
// caller must not serialize it.
func (p *ParserState) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.handleLine(scanner.Text()); err != nil {
			return errors.Wrapf(err, "config line %d", p.line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read config")
	}
	// An object still open at EOF is flushed as if a closing blank line
	// had been read.
	if p.open {
		if err := p.closeObject(); err != nil {
			return errors.Wrapf(err, "config line %d", p.line)
		}
	}
	return nil
}

func (p *ParserState) handleLine(line string) error {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "" && !p.open:
		return nil

	case strings.Contains(line, objTagMarker),
		strings.Contains(line, objRefMarker),
		strings.Contains(line, listRefMarker):
		return p.handleReferenceLine(trimmed)

	case trimmed == "":
		return p.closeObject()

	case strings.Contains(line, rootMarker):
		return p.handleRootBoundary(line)

	case strings.Contains(line, embedMarker):
		return p.handleEmbedBoundary(line)

	default:
		return p.handleProperty(trimmed)
	}
}

// handleReferenceLine records a filing tag or resolves a previously filed
// cluster. A resolved reference with a `Class.prop[==]` prefix is
// assigned into the pending property map; a bare reference is held as the
// pending cross-reference value.
func (p *ParserState) handleReferenceLine(line string) error {
	p.open = true

	if strings.Contains(line, objTagMarker) {
		_, after, _ := strings.Cut(line, objTagMarker)
		p.tag = strings.TrimSpace(after)
		return nil
	}

	var resolved any
	if strings.Contains(line, listRefMarker) {
		_, after, _ := strings.Cut(line, listRefMarker)
		tags := strings.Split(strings.TrimSpace(after), listSeparator)
		nodes := make([]any, 0, len(tags))
		for _, t := range tags {
			node, ok := p.clusters[strings.TrimSpace(t)]
			if !ok {
				return &UnresolvedReferenceError{Tag: strings.TrimSpace(t)}
			}
			nodes = append(nodes, node)
		}
		resolved = nodes
	} else {
		_, after, _ := strings.Cut(line, objRefMarker)
		t := strings.TrimSpace(after)
		node, ok := p.clusters[t]
		if !ok {
			return &UnresolvedReferenceError{Tag: t}
		}
		resolved = node
	}

	if prefix, _, found := strings.Cut(line, assignMarker); found {
		class, prop, ok := strings.Cut(strings.TrimSpace(prefix), ".")
		if !ok {
			return errors.Wrapf(errors.ErrInvalidInput, "malformed reference prefix %q", prefix)
		}
		p.class = class
		p.props[prop] = resolved
		return nil
	}
	p.pendingRef = resolved
	return nil
}

// handleRootBoundary processes a `||||`^n line: descend pushes the node
// constructed from the pending map, ascend and same-depth dispatch it
// against the current stack top.
func (p *ParserState) handleRootBoundary(line string) error {
	depth := strings.Count(line, rootMarker)
	switch {
	case depth > p.rootDepth:
		p.rootDepth++
		if err := p.dispatch(false); err != nil {
			return err
		}
		p.rootStack = append(p.rootStack, stackEntry{Key: p.class, Node: p.last})
	case depth < p.rootDepth:
		p.rootDepth--
		if err := p.dispatch(false); err != nil {
			return err
		}
	default:
		if err := p.dispatch(false); err != nil {
			return err
		}
	}
	return nil
}

// handleEmbedBoundary processes a `|~~|`^n line. The first marker of a
// pair parks the parent's pending map so the embedded object's properties
// accumulate separately; the second constructs the embedded object and
// restores the parent map.
func (p *ParserState) handleEmbedBoundary(line string) error {
	if !p.flip {
		p.tmp = p.props
		p.props = make(nlg.Properties)
		p.flip = true
		return nil
	}

	depth := strings.Count(line, embedMarker)
	switch {
	case depth > p.propDepth:
		p.propDepth++
		if err := p.dispatch(true); err != nil {
			return err
		}
		p.propStack = append(p.propStack, stackEntry{Key: p.class, Node: p.last})
	case depth < p.propDepth:
		p.propDepth--
		if err := p.dispatch(true); err != nil {
			return err
		}
	default:
		if err := p.dispatch(true); err != nil {
			return err
		}
	}
	p.props = p.tmp
	p.tmp = nil
	p.flip = false
	return nil
}

// handleProperty coerces one `Class.prop[==][{tag}]raw` line into the
// pending property map.
func (p *ParserState) handleProperty(line string) error {
	left, right, found := strings.Cut(line, assignMarker)
	if !found {
		return errors.Wrapf(errors.ErrInvalidInput, "expected %s in %q", assignMarker, line)
	}
	class, prop, ok := strings.Cut(left, ".")
	if !ok {
		return errors.Wrapf(errors.ErrInvalidInput, "expected Class.property in %q", left)
	}
	tagged, raw, ok := strings.Cut(right, "}]")
	if !ok {
		return errors.Wrapf(errors.ErrInvalidInput, "expected [{tag}] in %q", right)
	}
	typeTag := strings.TrimPrefix(tagged, "[{")
	raw = strings.TrimSpace(raw)

	p.open = true
	p.class = class

	// Class.[==][{}] is the no-property marker: the class is recorded and
	// the pending map stays empty, forcing a childless construction.
	if prop == "" && raw == "" && typeTag == "" {
		return nil
	}

	switch typeTag {
	case bindLast:
		p.props[prop] = p.last
	case bindLastList:
		p.props[prop] = []any{p.last}
	default:
		kind, list, err := ParseKind(typeTag)
		if err != nil {
			return err
		}
		value, err := Convert(raw, kind, list)
		if err != nil {
			return err
		}
		p.props[prop] = value
	}
	return nil
}

// closeObject flushes the object open at root scope, files it under its
// tag, and resets all transient state. An untagged object is constructed
// but not filed.
func (p *ParserState) closeObject() error {
	if err := p.dispatch(false); err != nil {
		return err
	}

	filed := p.last
	if len(p.rootStack) > 0 {
		filed = p.rootStack[0].Node
	}
	if p.tag != "" {
		p.clusters[p.tag] = filed
	}

	p.rootStack = nil
	p.rootDepth = 0
	p.propStack = nil
	p.propDepth = 0
	p.tag = ""
	p.pendingRef = nil
	p.class = ""
	p.open = false
	return nil
}

// dispatch resolves the pending class in the catalog and constructs it
// with the convention-appropriate owner. Bundle and child classes built
// from an empty property map attach to the most recently constructed
// node; otherwise the owner comes from the active nesting stack at
// depth-1.
func (p *ParserState) dispatch(embedded bool) error {
	if p.class == "" {
		return errors.Wrap(errors.ErrInvalidInput, "object boundary with no pending class")
	}
	entry, err := nlg.Lookup(p.class)
	if err != nil {
		return err
	}

	var owner *graph.Node
	if entry.Convention != nlg.ConventionDocument {
		if len(p.props) == 0 {
			owner = p.last
		} else {
			stack, depth := p.rootStack, p.rootDepth
			if embedded {
				stack, depth = p.propStack, p.propDepth
			}
			ref := depth - 1
			if ref < 0 || ref >= len(stack) {
				return errors.Wrapf(errors.ErrEmptyStack, "%s at nesting depth %d", p.class, depth)
			}
			owner = stack[ref].Node
		}
	}

	node, err := entry.Construct(p.doc, owner, p.props)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("constructed", "class", p.class, "category", node.Category().String(), "type", node.Type())
	p.last = node
	p.props = make(nlg.Properties)
	return nil
}
