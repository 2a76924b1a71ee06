package graph

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// testDocument returns a document with deterministic identity and clock so
// assertions can name exact IDs and stamps.
func testDocument() *Document {
	seq := 0
	return NewDocument(
		WithIDSource(func() string {
			seq++
			return fmt.Sprintf("node-%d", seq)
		}),
		WithClock(func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestCreationStampPerCategory(t *testing.T) {
	tests := []struct {
		name      string
		create    func(*Document) *Node
		stampProp string
	}{
		{
			name:      "core objects stamp CoreObjectCreationTime",
			create:    func(d *Document) *Node { return d.CreateCoreObject("Trace", nil) },
			stampProp: "CoreObjectCreationTime",
		},
		{
			name:      "context objects stamp ContextObjectCreationTime",
			create:    func(d *Document) *Node { return d.CreateContextObject("ProvenanceRecord", nil) },
			stampProp: "ContextObjectCreationTime",
		},
		{
			name:      "duck objects stamp DuckObjectCreationTime",
			create:    func(d *Document) *Node { return d.CreateDuckObject("Hash", nil) },
			stampProp: "DuckObjectCreationTime",
		},
		{
			name:      "sub objects stamp SubObjectCreationTime",
			create:    func(d *Document) *Node { return d.CreateSubObject("ForensicAction", nil) },
			stampProp: "SubObjectCreationTime",
		},
	}

	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDocument()
			n := tt.create(d)

			values := n.Values(tt.stampProp)
			if len(values) != 1 {
				t.Fatalf("expected one %s value, got %d", tt.stampProp, len(values))
			}
			stamp, ok := values[0].(time.Time)
			if !ok {
				t.Fatalf("expected time.Time stamp, got %T", values[0])
			}
			if !stamp.Equal(want) {
				t.Errorf("expected stamp %v, got %v", want, stamp)
			}
		})
	}
}

func TestPropertyBundleIsBlankAndUnstamped(t *testing.T) {
	d := testDocument()
	owner := d.CreateCoreObject("Trace", nil)

	bundle := owner.CreatePropertyBundle("FileSystem", Props{"FileSystemType": "ntfs"})

	if !bundle.Blank() {
		t.Error("expected bundle to have blank identity")
	}
	if bundle.Category() != CategoryPropertyBundle {
		t.Errorf("expected PropertyBundle category, got %v", bundle.Category())
	}
	if len(bundle.Values("PropertyBundleCreationTime")) != 0 {
		t.Error("property bundles must not carry a creation stamp")
	}

	// The owner records the bundle as a propertyBundle reference.
	refs := owner.Values("propertyBundle")
	if len(refs) != 1 || refs[0] != bundle {
		t.Errorf("expected one propertyBundle reference to the bundle, got %v", refs)
	}
}

func TestAddFlattensAndSkipsNil(t *testing.T) {
	d := testDocument()
	n := d.CreateCoreObject("Tool", nil)

	n.Add("References", []any{"one", "two"})
	n.Add("References", "three")
	n.Add("Creator", nil)

	got := n.Values("References")
	if len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Errorf("expected flattened values in order, got %v", got)
	}
	if len(n.Values("Creator")) != 0 {
		t.Error("nil values must be skipped")
	}
}

func TestAddNormalizesTimeToUTC(t *testing.T) {
	d := testDocument()
	n := d.CreateCoreObject("Action", nil)

	loc := time.FixedZone("PST", -8*3600)
	n.Add("StartTime", time.Date(2024, 3, 1, 4, 0, 0, 0, loc))

	values := n.Values("StartTime")
	if len(values) != 1 {
		t.Fatalf("expected one StartTime value, got %d", len(values))
	}
	stamp := values[0].(time.Time)
	if stamp.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", stamp.Location())
	}
	if stamp.Hour() != 12 {
		t.Errorf("expected 12:00 UTC, got %v", stamp)
	}
}

func TestCategoryCounts(t *testing.T) {
	d := testDocument()
	d.CreateCoreObject("Trace", nil)
	d.CreateCoreObject("Action", nil)
	d.CreateContextObject("ProvenanceRecord", nil)
	d.CreateCoreObject("Trace", nil).CreatePropertyBundle("File", nil)

	counts := d.CategoryCounts()
	if counts[CategoryCore] != 3 {
		t.Errorf("expected 3 core objects, got %d", counts[CategoryCore])
	}
	if counts[CategoryContext] != 1 {
		t.Errorf("expected 1 context object, got %d", counts[CategoryContext])
	}
	if counts[CategoryPropertyBundle] != 1 {
		t.Errorf("expected 1 property bundle, got %d", counts[CategoryPropertyBundle])
	}
	if d.Len() != 5 {
		t.Errorf("expected 5 nodes total, got %d", d.Len())
	}
}

func TestSerializeDeterministic(t *testing.T) {
	build := func() string {
		d := testDocument()
		trace := d.CreateCoreObject("Trace", Props{"HasChanged": false})
		trace.CreatePropertyBundle("Account", Props{"AccountIssuerRef": trace})
		out, err := d.SerializeString()
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		return out
	}

	if first, second := build(), build(); first != second {
		t.Error("expected byte-identical output across identical builds")
	}
}

func TestSerializeShape(t *testing.T) {
	d := testDocument()
	trace := d.CreateCoreObject("Trace", Props{"HasChanged": true})
	trace.CreatePropertyBundle("Account", nil)

	out, err := d.SerializeString()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	for _, want := range []string{
		`"@vocab": "` + Namespace + `"`,
		`"@type": "Trace"`,
		// Creation stamps serialize as typed xsd:dateTime literals.
		`"@type": "xsd:dateTime"`,
		`"@value": "2024-03-01T12:00:00.000000Z"`,
		// Blank bundle identity carries the JSON-LD blank prefix.
		`"@id": "_:node-2"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized output missing %s\n%s", want, out)
		}
	}
}

func TestWithNamespaceOverride(t *testing.T) {
	d := NewDocument(WithNamespace("http://example.org/custom#"))
	d.CreateCoreObject("Trace", nil)

	out, err := d.SerializeString()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(out, `"@vocab": "http://example.org/custom#"`) {
		t.Error("expected overridden namespace in @context")
	}
}

func TestWithIndent(t *testing.T) {
	d := NewDocument(WithIndent("\t"))
	d.CreateCoreObject("Trace", nil)

	out, err := d.SerializeString()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(out, "\n\t\"@context\"") {
		t.Error("expected tab indentation in output")
	}
}
