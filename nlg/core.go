package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Core classes: primary entities scoped to the document.

func registerCore() {
	registerDocument("core_Action", coreAction)
	registerDocument("core_Assertion", coreAssertion)
	registerDocument("core_Bundle", coreBundle)
	registerDocument("core_ControlledVocabulary", coreControlledVocabulary)
	registerDocument("core_Identity", coreIdentity)
	registerDocument("core_Location", coreLocation)
	registerDocument("core_MarkingDefinition", coreMarkingDefinition)
	registerDocument("core_Relationship", coreRelationship)
	registerDocument("core_Role", coreRole)
	registerDocument("core_Tool", coreTool)
	registerDocument("core_Trace", coreTrace)
}

func registerCoreSubs() {
	registerChild("core_sub_ActionLifecycle", coreSubActionLifecycle)
	registerChild("core_sub_ForensicAction", coreSubForensicAction)
}

// coreAction builds an Action: something that has been done or performed.
//
// ActionStatus: at most one ControlledVocabulary. StartTime, EndTime: at
// most one Datetime each. Errors: any number of values of any type.
// ActionCount: at most one positive integer. SubactionRefs: any number of
// Action references.
func coreAction(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_Action", p)
	actionStatus := c.OptionalRef("action_status", graph.CategoryCore, "ControlledVocabulary")
	startTime := c.OptionalTime("start_time")
	endTime := c.OptionalTime("end_time")
	errs := c.Any("errors") // no defined check
	actionCount := c.OptionalPositiveInt("action_count")
	subactionRefs := c.OptionalRefList("subaction_refs", graph.CategoryCore, "Action")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Action", graph.Props{
		"ActionStatus":  actionStatus,
		"StartTime":     startTime,
		"EndTime":       endTime,
		"Errors":        errs,
		"ActionCount":   actionCount,
		"SubactionRefs": subactionRefs,
	}), nil
}

func coreAssertion(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("core_Assertion", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Assertion", nil), nil
}

func coreBundle(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("core_Bundle", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Bundle", nil), nil
}

// coreControlledVocabulary builds a constrained vocabulary value; most
// reference-typed properties across the catalog point at one of these.
func coreControlledVocabulary(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_ControlledVocabulary", p)
	value := c.RequiredString("value")
	constrainingVocabularyName := c.OptionalString("constraining_vocabulary_name")
	constrainingVocabularyRef := c.Any("constraining_vocabulary_ref") // URI; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("ControlledVocabulary", graph.Props{
		"Value":                      value,
		"ConstrainingVocabularyName": constrainingVocabularyName,
		"ConstrainingVocabularyRef":  constrainingVocabularyRef,
	}), nil
}

func coreIdentity(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("core_Identity", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Identity", nil), nil
}

func coreLocation(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("core_Location", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Location", nil), nil
}

func coreMarkingDefinition(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_MarkingDefinition", p)
	definitionType := c.RequiredString("definition_type")
	definition := c.OptionalRefList("definition", graph.CategoryDuck, "MarkingModel")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("MarkingDefinition", graph.Props{
		"DefinitionType": definitionType,
		"Definition":     definition,
	}), nil
}

// coreRelationship asserts how two or more core entities relate.
func coreRelationship(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_Relationship", p)
	isDirectional := c.RequiredBool("is_directional")
	targetRef := c.RequiredRef("target_ref", graph.CategoryCore)
	sourceRef := c.RequiredRefList("source_ref", graph.CategoryCore)
	startTime := c.OptionalTimeList("start_time")
	endTime := c.OptionalTimeList("end_time")
	kindOfRelationship := c.OptionalRef("kind_of_relationship", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Relationship", graph.Props{
		"IsDirectional":      isDirectional,
		"TargetRef":          targetRef,
		"SourceRef":          sourceRef,
		"StartTime":          startTime,
		"EndTime":            endTime,
		"KindOfRelationship": kindOfRelationship,
	}), nil
}

func coreRole(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("core_Role", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Role", nil), nil
}

func coreTool(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_Tool", p)
	name := c.OptionalString("name")
	version := c.OptionalString("version")
	toolType := c.OptionalString("tool_type")
	servicePack := c.OptionalString("service_pack")
	creator := c.OptionalString("creator")
	references := c.Any("references") // URI list; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Tool", graph.Props{
		"Name":        name,
		"Version":     version,
		"ToolType":    toolType,
		"ServicePack": servicePack,
		"Creator":     creator,
		"References":  references,
	}), nil
}

// coreTrace builds a Trace: an observed digital artifact.
func coreTrace(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("core_Trace", p)
	hasChanged := c.RequiredBool("has_changed")
	state := c.OptionalRef("state", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateCoreObject("Trace", graph.Props{
		"HasChanged": hasChanged,
		"State":      state,
	}), nil
}

// --- core children ---

// coreSubActionLifecycle attaches to an Action. The glossary forbids the
// owning action to carry its usual fields here; that check is not yet
// defined, so only the owner type is verified.
func coreSubActionLifecycle(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	if err := checkOwner("core_sub_ActionLifecycle", owner, graph.CategoryCore, "Action"); err != nil {
		return nil, err
	}
	if err := check("core_sub_ActionLifecycle", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("ActionLifecycle", nil), nil
}

func coreSubForensicAction(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	if err := checkOwner("core_sub_ForensicAction", owner, graph.CategoryCore, "Action"); err != nil {
		return nil, err
	}
	// Nothing else to check yet.
	if err := check("core_sub_ForensicAction", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("ForensicAction", nil), nil
}
