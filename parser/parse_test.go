package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
)

func parseConfig(t *testing.T, config string) *graph.Document {
	t.Helper()
	doc := graph.NewDocument()
	require.NoError(t, New(doc).Parse(strings.NewReader(config)))
	return doc
}

func nodesOfType(d *graph.Document, typeName string) []*graph.Node {
	var out []*graph.Node
	for _, n := range d.Nodes() {
		if n.Type() == typeName {
			out = append(out, n)
		}
	}
	return out
}

func TestParseSingleObject(t *testing.T) {
	doc := parseConfig(t, `
core_Trace.has_changed[==][{bool}]false
`)

	traces := nodesOfType(doc, "Trace")
	require.Len(t, traces, 1)
	assert.Equal(t, []any{false}, traces[0].Values("HasChanged"))
}

func TestParseFlushesOpenObjectAtEOF(t *testing.T) {
	// No trailing blank line.
	doc := parseConfig(t, `core_Trace.has_changed[==][{bool}]true`)

	require.Equal(t, 1, doc.Len())
	assert.Equal(t, []any{true}, doc.Nodes()[0].Values("HasChanged"))
}

func TestParseChildlessMarkerUsesLastObject(t *testing.T) {
	doc := parseConfig(t, `
core_Action.[==][{}]

core_sub_ForensicAction.[==][{}]
`)

	require.Len(t, nodesOfType(doc, "Action"), 1)
	children := nodesOfType(doc, "ForensicAction")
	require.Len(t, children, 1)
	assert.Equal(t, graph.CategorySub, children[0].Category())
}

func TestParseRootNestingAttachesBundleToParent(t *testing.T) {
	doc := parseConfig(t, `
core_Trace.has_changed[==][{bool}]false
||||
propbundle_Account.account_id[==][{str}]"acct-7"
`)

	traces := nodesOfType(doc, "Trace")
	require.Len(t, traces, 1)
	bundles := nodesOfType(doc, "Account")
	require.Len(t, bundles, 1)

	assert.True(t, bundles[0].Blank())
	assert.Equal(t, []any{bundles[0]}, traces[0].Values("propertyBundle"))
	assert.Equal(t, []any{"acct-7"}, bundles[0].Values("AccoundID"))
}

func TestParseTagAndReference(t *testing.T) {
	doc := parseConfig(t, `
[{OBJ-TAG}]vocab1
core_ControlledVocabulary.value[==][{str}]"allocated"

core_Trace.has_changed[==][{bool}]false
core_Trace.state[==][{OBJ-REF}]vocab1
`)

	vocab := nodesOfType(doc, "ControlledVocabulary")
	require.Len(t, vocab, 1)
	traces := nodesOfType(doc, "Trace")
	require.Len(t, traces, 1)

	assert.Equal(t, []any{vocab[0]}, traces[0].Values("State"))
}

func TestParseListReference(t *testing.T) {
	doc := parseConfig(t, `
[{OBJ-TAG}]step1
core_Action.[==][{}]

[{OBJ-TAG}]step2
core_Action.[==][{}]

core_Action.subaction_refs[==][{list:OBJ-REF}]step1[ | ]step2
`)

	actions := nodesOfType(doc, "Action")
	require.Len(t, actions, 3)

	parent := actions[2]
	assert.Equal(t, []any{actions[0], actions[1]}, parent.Values("SubactionRefs"))
}

func TestParseUnresolvedReference(t *testing.T) {
	doc := graph.NewDocument()
	err := New(doc).Parse(strings.NewReader(`
core_Trace.has_changed[==][{bool}]false
core_Trace.state[==][{OBJ-REF}]nosuch
`))
	require.Error(t, err)

	var unresolved *UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "nosuch", unresolved.Tag)
	assert.Contains(t, err.Error(), "config line 3")
}

func TestParseBindLast(t *testing.T) {
	doc := parseConfig(t, `
duck_DictionaryEntry.key[==][{str}]"HOME"
duck_DictionaryEntry.value[==][{str}]"/root"

duck_Dictionary.entry[==][{|^^|}]
`)

	entries := nodesOfType(doc, "DictionaryEntry")
	require.Len(t, entries, 1)
	dicts := nodesOfType(doc, "Dictionary")
	require.Len(t, dicts, 1)

	assert.Equal(t, []any{entries[0]}, dicts[0].Values("Entry"))
}

func TestParseEmbeddedObject(t *testing.T) {
	doc := parseConfig(t, `
|~~|
duck_DictionaryEntry.key[==][{str}]"PATH"
duck_DictionaryEntry.value[==][{str}]"/usr/bin"
|~~|
duck_Dictionary.entry[==][{|^^|}]
`)

	entries := nodesOfType(doc, "DictionaryEntry")
	require.Len(t, entries, 1)
	dicts := nodesOfType(doc, "Dictionary")
	require.Len(t, dicts, 1)
	assert.Equal(t, []any{entries[0]}, dicts[0].Values("Entry"))
}

func TestParseConstructionErrorCarriesLine(t *testing.T) {
	doc := graph.NewDocument()
	err := New(doc).Parse(strings.NewReader(`core_Trace.has_changed[==][{bool}]maybe`))
	require.Error(t, err)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Contains(t, err.Error(), "config line 1")
}

func TestParseValidationFailureAborts(t *testing.T) {
	doc := graph.NewDocument()
	err := New(doc).Parse(strings.NewReader(`
core_ControlledVocabulary.constraining_vocabulary_name[==][{str}]"missing value"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value is required")
}

func TestParseUnknownClass(t *testing.T) {
	doc := graph.NewDocument()
	err := New(doc).Parse(strings.NewReader(`core_Imaginary.name[==][{str}]"x"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown class: core_Imaginary")
}

func TestParseBoundaryWithNoClass(t *testing.T) {
	doc := graph.NewDocument()
	err := New(doc).Parse(strings.NewReader("||||\n"))
	require.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestParseEndToEndSerialization(t *testing.T) {
	config := `
[{OBJ-TAG}]state1
core_ControlledVocabulary.value[==][{str}]"allocated"

core_Trace.has_changed[==][{bool}]false
core_Trace.state[==][{OBJ-REF}]state1
||||
propbundle_Account.account_id[==][{str}]"acct-7"
propbundle_Account.created_time[==][{datetime}]2023-06-15T08:30:00.000000Z
`

	build := func() (string, error) {
		seq := 0
		doc := graph.NewDocument(
			graph.WithIDSource(func() string {
				seq++
				return fmt.Sprintf("node-%d", seq)
			}),
			graph.WithClock(func() time.Time {
				return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			}),
		)
		if err := New(doc).Parse(strings.NewReader(config)); err != nil {
			return "", err
		}
		return doc.SerializeString()
	}

	first, err := build()
	require.NoError(t, err)
	second, err := build()
	require.NoError(t, err)

	// Injected identity and clock make the output byte-stable.
	assert.Equal(t, first, second)
	assert.Contains(t, first, `"@type": "Trace"`)
	assert.Contains(t, first, `"AccoundID": "acct-7"`)
	assert.Contains(t, first, `"@value": "2023-06-15T08:30:00.000000Z"`)
}
