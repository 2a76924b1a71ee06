package nlg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casework/casegraph/errors"
	"github.com/casework/casegraph/graph"
)

func testDoc() *graph.Document {
	return graph.NewDocument(
		graph.WithClock(func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func mustConstruct(t *testing.T, d *graph.Document, owner *graph.Node, class string, p Properties) *graph.Node {
	t.Helper()
	entry, err := Lookup(class)
	require.NoError(t, err)
	node, err := entry.Construct(d, owner, p)
	require.NoError(t, err)
	return node
}

func TestLookupUnknownClass(t *testing.T) {
	_, err := Lookup("core_NoSuchThing")

	var unknown *UnknownClassError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "core_NoSuchThing", unknown.Class)
}

func TestClassesSortedAndComplete(t *testing.T) {
	names := Classes()
	require.NotEmpty(t, names)
	assert.True(t, sortedStrings(names))

	// Spot-check one class per prefix family.
	for _, want := range []string{
		"core_Trace",
		"core_sub_ForensicAction",
		"context_ProvenanceRecord",
		"propbundle_File",
		"propbundle_sub_Address",
		"duck_Hash",
		"duck_sub_ArrayOfAction",
	} {
		assert.Contains(t, names, want)
	}
}

func sortedStrings(names []string) bool {
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			return false
		}
	}
	return true
}

func TestCoreTraceConstruction(t *testing.T) {
	d := testDoc()

	node := mustConstruct(t, d, nil, "core_Trace", Properties{"has_changed": true})

	assert.Equal(t, graph.CategoryCore, node.Category())
	assert.Equal(t, "Trace", node.Type())
	assert.Equal(t, []any{true}, node.Values("HasChanged"))
	require.Len(t, node.Values("CoreObjectCreationTime"), 1)
}

func TestCoreTraceValidation(t *testing.T) {
	tests := []struct {
		name    string
		props   Properties
		wantErr string
	}{
		{
			name:    "missing required has_changed",
			props:   Properties{},
			wantErr: "[core_Trace] has_changed is required.",
		},
		{
			name:    "has_changed wrong kind",
			props:   Properties{"has_changed": "yes"},
			wantErr: "[core_Trace] has_changed must be of type Bool.",
		},
		{
			name:    "undeclared property",
			props:   Properties{"has_changed": false, "color": "red"},
			wantErr: "[core_Trace] color is not a declared property.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDoc()
			entry, err := Lookup("core_Trace")
			require.NoError(t, err)

			_, err = entry.Construct(d, nil, tt.props)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			// Validation failures never leave partial nodes behind.
			assert.Zero(t, d.Len())
		})
	}
}

func TestReferencePropertiesCheckCategoryAndType(t *testing.T) {
	d := testDoc()
	vocab := mustConstruct(t, d, nil, "core_ControlledVocabulary", Properties{"value": "allocated"})
	identity := mustConstruct(t, d, nil, "core_Identity", Properties{})

	entry, err := Lookup("core_Trace")
	require.NoError(t, err)

	node, err := entry.Construct(d, nil, Properties{"has_changed": false, "state": vocab})
	require.NoError(t, err)
	assert.Equal(t, []any{vocab}, node.Values("State"))

	_, err = entry.Construct(d, nil, Properties{"has_changed": false, "state": identity})
	require.Error(t, err)
	assert.Equal(t, "[core_Trace] state must be of type ControlledVocabulary.", err.Error())

	_, err = entry.Construct(d, nil, Properties{"has_changed": false, "state": "allocated"})
	require.Error(t, err)
}

func TestPropertyBundleRequiresCoreOwner(t *testing.T) {
	d := testDoc()
	trace := mustConstruct(t, d, nil, "core_Trace", Properties{"has_changed": false})
	provenance := mustConstruct(t, d, nil, "context_ProvenanceRecord", Properties{"exhibit_number": "EX-001"})

	entry, err := Lookup("propbundle_Account")
	require.NoError(t, err)

	bundle, err := entry.Construct(d, trace, Properties{"account_id": "acct-100"})
	require.NoError(t, err)
	assert.True(t, bundle.Blank())
	assert.Equal(t, graph.CategoryPropertyBundle, bundle.Category())
	assert.Equal(t, []any{bundle}, trace.Values("propertyBundle"))

	// Context entities cannot own bundles.
	_, err = entry.Construct(d, provenance, Properties{"account_id": "acct-100"})
	require.Error(t, err)
	assert.Equal(t, "[propbundle_Account] owner must be of type CoreObject.", err.Error())

	// A bundle without any owner on the stack is a structural error.
	_, err = entry.Construct(d, nil, Properties{"account_id": "acct-100"})
	require.ErrorIs(t, err, errors.ErrEmptyStack)
}

func TestChildConstructorChecksParentType(t *testing.T) {
	d := testDoc()
	action := mustConstruct(t, d, nil, "core_Action", Properties{})
	trace := mustConstruct(t, d, nil, "core_Trace", Properties{"has_changed": false})

	entry, err := Lookup("core_sub_ForensicAction")
	require.NoError(t, err)

	child, err := entry.Construct(d, action, Properties{})
	require.NoError(t, err)
	assert.Equal(t, graph.CategorySub, child.Category())
	assert.Equal(t, "ForensicAction", child.Type())

	_, err = entry.Construct(d, trace, Properties{})
	require.Error(t, err)
	assert.Equal(t, "[core_sub_ForensicAction] owner must be of type Action.", err.Error())
}

func TestStringListValidation(t *testing.T) {
	d := testDoc()
	trace := mustConstruct(t, d, nil, "core_Trace", Properties{"has_changed": false})

	entry, err := Lookup("propbundle_PathRelation")
	require.NoError(t, err)

	bundle, err := entry.Construct(d, trace, Properties{"path": []any{"C:\\", "Windows"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"C:\\", "Windows"}, bundle.Values("Path"))

	_, err = entry.Construct(d, trace, Properties{"path": []any{"C:\\", 7}})
	require.Error(t, err)
	assert.Equal(t, "[propbundle_PathRelation] path must be of type List of String.", err.Error())

	_, err = entry.Construct(d, trace, Properties{})
	require.Error(t, err)
	assert.Equal(t, "[propbundle_PathRelation] path is required.", err.Error())
}

func TestMultiRequiredOmissions(t *testing.T) {
	// duck_DictionaryEntry requires both key and value; omitting either
	// one names the omitted property.
	tests := []struct {
		name    string
		props   Properties
		wantErr string
	}{
		{
			name:    "key omitted",
			props:   Properties{"value": "/root"},
			wantErr: "[duck_DictionaryEntry] key is required.",
		},
		{
			name:    "value omitted",
			props:   Properties{"key": "HOME"},
			wantErr: "[duck_DictionaryEntry] value is required.",
		},
		{
			name:    "both omitted reports the first declared",
			props:   Properties{},
			wantErr: "[duck_DictionaryEntry] key is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDoc()
			entry, err := Lookup("duck_DictionaryEntry")
			require.NoError(t, err)

			_, err = entry.Construct(d, nil, tt.props)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestDatetimePropertiesStoreUTC(t *testing.T) {
	d := testDoc()
	loc := time.FixedZone("CET", 3600)

	node := mustConstruct(t, d, nil, "core_Action", Properties{
		"start_time": time.Date(2024, 3, 1, 13, 0, 0, 0, loc),
	})

	values := node.Values("StartTime")
	require.Len(t, values, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), values[0])
}

func TestDuckDictionaryEntryChain(t *testing.T) {
	d := testDoc()

	entryNode := mustConstruct(t, d, nil, "duck_DictionaryEntry", Properties{
		"key":   "HOME",
		"value": "/root",
	})
	dict := mustConstruct(t, d, nil, "duck_Dictionary", Properties{"entry": entryNode})

	assert.Equal(t, graph.CategoryDuck, dict.Category())
	assert.Equal(t, []any{entryNode}, dict.Values("Entry"))
}

func TestConventionPrefixAgreement(t *testing.T) {
	for _, name := range Classes() {
		entry, err := Lookup(name)
		require.NoError(t, err)

		switch {
		case strings.Contains(name, "sub_"):
			assert.Equal(t, ConventionChild, entry.Convention, name)
		case strings.HasPrefix(name, "propbundle_"):
			assert.Equal(t, ConventionBundle, entry.Convention, name)
		default:
			assert.Equal(t, ConventionDocument, entry.Convention, name)
		}
	}
}
