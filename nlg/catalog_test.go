package nlg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casework/casegraph/graph"
)

// catalogSeeds holds the referenced nodes a minimal fixture may need:
// one node per category/type that any required reference check accepts.
type catalogSeeds struct {
	doc *graph.Document

	trace          *graph.Node
	action         *graph.Node
	vocab          *graph.Node
	location       *graph.Node
	hash           *graph.Node
	dictEntry      *graph.Node
	ctrlDictEntry  *graph.Node
	ctrlDict       *graph.Node
	buildInfo      *graph.Node
	arrayOfObjects *graph.Node
	identityBundle *graph.Node
}

func newCatalogSeeds() catalogSeeds {
	d := graph.NewDocument()
	trace := d.CreateCoreObject("Trace", nil)
	return catalogSeeds{
		doc:            d,
		trace:          trace,
		action:         d.CreateCoreObject("Action", nil),
		vocab:          d.CreateCoreObject("ControlledVocabulary", nil),
		location:       d.CreateCoreObject("Location", nil),
		hash:           d.CreateDuckObject("Hash", nil),
		dictEntry:      d.CreateDuckObject("DictionaryEntry", nil),
		ctrlDictEntry:  d.CreateDuckObject("ControlledDictionaryEntry", nil),
		ctrlDict:       d.CreateDuckObject("ControlledDictionary", nil),
		buildInfo:      d.CreateDuckObject("BuildInformationType", nil),
		arrayOfObjects: d.CreateDuckObject("ArrayOfObject", nil),
		identityBundle: trace.CreatePropertyBundle("Identity", nil),
	}
}

// minimalProps returns the smallest property set that satisfies every
// required check of the class; classes absent from the switch require
// nothing. Every key in the returned map is a required property.
func minimalProps(class string, s catalogSeeds) Properties {
	birthDate := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

	switch class {
	case "core_ControlledVocabulary":
		return Properties{"value": "allocated"}
	case "core_MarkingDefinition":
		return Properties{"definition_type": "statement"}
	case "core_Relationship":
		return Properties{"is_directional": true, "target_ref": s.trace, "source_ref": []any{s.trace}}
	case "core_Trace":
		return Properties{"has_changed": true}
	case "context_Grouping":
		return Properties{"context_strings": []any{"evidence"}}
	case "context_Investigation":
		return Properties{"investigation_form": s.vocab}
	case "propbundle_Account":
		return Properties{"account_id": "acct-1"}
	case "propbundle_ApplicationAccount":
		return Properties{"application_ref": s.trace}
	case "propbundle_Attachment":
		return Properties{"url": "http://example.org/a"}
	case "propbundle_Authorization":
		return Properties{"authorization_type": s.vocab}
	case "propbundle_AutonomousSystem":
		return Properties{"number": 64512}
	case "propbundle_Build":
		return Properties{"build_information": s.buildInfo}
	case "propbundle_Confidence":
		return Properties{"value": s.vocab}
	case "propbundle_DigitalSignatureInfo":
		return Properties{"signature_exists": true}
	case "propbundle_DomainName":
		return Properties{"value": "example.org"}
	case "propbundle_EmailAccount":
		return Properties{"email_address_ref": s.trace}
	case "propbundle_EmailAddress":
		return Properties{"value": "a@example.org"}
	case "propbundle_EmailMessage":
		return Properties{"is_mime_encoded": true, "is_multipart": false}
	case "propbundle_EncodedStream":
		return Properties{"encoding_method": "base64"}
	case "propbundle_Event":
		return Properties{"application_ref": s.trace}
	case "propbundle_EXIF":
		return Properties{"exif_data": []any{s.ctrlDict}}
	case "propbundle_ExtractedStrings":
		return Properties{"strings": []any{"kernel32"}}
	case "propbundle_FilePermissions":
		return Properties{"owner_ref": s.trace}
	case "propbundle_GeolocationEntry":
		return Properties{"application_ref": s.trace}
	case "propbundle_GeolocationLog":
		return Properties{"application_ref": s.trace}
	case "propbundle_GeolocationTrack":
		return Properties{"application_ref": s.trace}
	case "propbundle_HTTPConnection":
		return Properties{"request_method": "GET", "request_value": "/index.html"}
	case "propbundle_Image":
		return Properties{"image_type": "EWF"}
	case "propbundle_IPV4Address":
		return Properties{"value": "10.0.0.1"}
	case "propbundle_IPV6Address":
		return Properties{"value": "::1"}
	case "propbundle_Library":
		return Properties{"library_type": s.vocab}
	case "propbundle_MACAddress":
		// Bool per the published check.
		return Properties{"value": true}
	case "propbundle_Memory":
		return Properties{"is_injected": false, "is_mapped": true, "is_protected": false, "is_volatile": true}
	case "propbundle_Mutex":
		return Properties{"is_named": true}
	case "propbundle_Note":
		return Properties{"application_ref": s.trace}
	case "propbundle_PathRelation":
		return Properties{"path": []any{"C:", "Windows"}}
	case "propbundle_PhoneAccount":
		return Properties{"phone_number": "+15555550100"}
	case "propbundle_PhoneCall":
		return Properties{"application_ref": s.trace}
	case "propbundle_SMSMessage":
		return Properties{"is_read": false}
	case "propbundle_SymbolicLink":
		return Properties{"target_file_ref": s.trace}
	case "propbundle_URL":
		return Properties{"full_value": "http://example.org/"}
	case "propbundle_WindowsAccount":
		return Properties{"groups": []any{"Administrators"}}
	case "propbundle_WindowsActiveDirectoryAccount":
		return Properties{"object_guid": "7c0e4ab5"}
	case "propbundle_WindowsPEBinaryFile":
		return Properties{"machine": "0x8664"}
	case "propbundle_WindowsRegistryHive":
		return Properties{"hive_type": "HKEY_LOCAL_MACHINE"}
	case "propbundle_WindowsRegistryKey":
		return Properties{"key": `SOFTWARE\Microsoft`}
	case "propbundle_WindowsService":
		return Properties{"service_name": "Spooler"}
	case "propbundle_WindowsVolume":
		return Properties{"drive_letter": "C"}
	case "propbundle_sub_Address":
		return Properties{"address_ref": s.location}
	case "propbundle_sub_BirthInformation":
		return Properties{"birth_date": birthDate}
	case "duck_AlternateDataStream":
		return Properties{"name": "zone.identifier"}
	case "duck_ArrayOfHash":
		return Properties{"hashes": []any{s.hash}}
	case "duck_ArrayOfObject":
		return Properties{"objects": []any{s.trace}}
	case "duck_ArrayOfString":
		return Properties{"strings": []any{"alpha"}}
	case "duck_BuildUtilityType":
		return Properties{"build_utility_name": "make"}
	case "duck_ConfigurationSettingType":
		return Properties{"item_name": "timeout", "item_value": "30"}
	case "duck_ControlledDictionary":
		return Properties{"entry": []any{s.ctrlDictEntry}}
	case "duck_ControlledDictionaryEntry":
		return Properties{"key": s.vocab, "value": "tcp"}
	case "duck_Dictionary":
		return Properties{"entry": s.dictEntry}
	case "duck_DictionaryEntry":
		return Properties{"key": "HOME", "value": "/root"}
	case "duck_Hash":
		return Properties{"hash_method": s.vocab}
	case "duck_LibraryType":
		return Properties{"library_name": "zlib", "library_version": "1.2.11"}
	case "duck_WindowsPEFileHeader":
		return Properties{"machine": "0x8664"}
	case "duck_WindowsPESection":
		return Properties{"name": ".text"}
	case "duck_WindowsRegistryValue":
		return Properties{"name": "InstallPath"}
	default:
		return Properties{}
	}
}

// catalogOwner returns the owner seed the class's calling convention and
// owner check demand.
func catalogOwner(class string, s catalogSeeds) *graph.Node {
	switch {
	case strings.HasPrefix(class, "core_sub_"):
		return s.action
	case strings.HasPrefix(class, "propbundle_sub_"):
		return s.identityBundle
	case strings.HasPrefix(class, "duck_sub_"):
		return s.arrayOfObjects
	case strings.HasPrefix(class, "propbundle_"):
		return s.trace
	default:
		return nil
	}
}

// catalogCategory returns the node category the class's family must
// materialize.
func catalogCategory(class string) graph.Category {
	switch {
	case strings.Contains(class, "sub_"):
		return graph.CategorySub
	case strings.HasPrefix(class, "propbundle_"):
		return graph.CategoryPropertyBundle
	case strings.HasPrefix(class, "context_"):
		return graph.CategoryContext
	case strings.HasPrefix(class, "duck_"):
		return graph.CategoryDuck
	default:
		return graph.CategoryCore
	}
}

func TestCatalogConstructsEveryClass(t *testing.T) {
	for _, class := range Classes() {
		t.Run(class, func(t *testing.T) {
			s := newCatalogSeeds()
			entry, err := Lookup(class)
			require.NoError(t, err)

			node, err := entry.Construct(s.doc, catalogOwner(class, s), minimalProps(class, s))
			require.NoError(t, err)
			require.NotNil(t, node)

			wantCategory := catalogCategory(class)
			assert.Equal(t, wantCategory, node.Category())
			assert.Equal(t, wantCategory == graph.CategoryPropertyBundle, node.Blank())
		})
	}
}

func TestCatalogRequiredPropertyOmissions(t *testing.T) {
	for _, class := range Classes() {
		nameSeeds := newCatalogSeeds()
		for required := range minimalProps(class, nameSeeds) {
			t.Run(class+"/without_"+required, func(t *testing.T) {
				s := newCatalogSeeds()
				entry, err := Lookup(class)
				require.NoError(t, err)

				props := minimalProps(class, s)
				delete(props, required)

				_, err = entry.Construct(s.doc, catalogOwner(class, s), props)
				require.Error(t, err)

				var missing *MissingPropertyError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, class, missing.Class)
				assert.Equal(t, required, missing.Property)
			})
		}
	}
}
