package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Context classes: investigative context rather than observed objects.
// No context children exist in the glossary yet.

func registerContext() {
	registerDocument("context_Grouping", contextGrouping)
	registerDocument("context_Investigation", contextInvestigation)
	registerDocument("context_ProvenanceRecord", contextProvenanceRecord)
}

func contextGrouping(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("context_Grouping", p)
	contextStrings := c.RequiredStringList("context_strings")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateContextObject("Grouping", graph.Props{
		"ContextStrings": contextStrings,
	}), nil
}

func contextInvestigation(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("context_Investigation", p)
	investigationForm := c.RequiredRef("investigation_form", graph.CategoryCore, "ControlledVocabulary")
	investigationStatus := c.OptionalRef("investigation_status", graph.CategoryCore, "ControlledVocabulary")
	startTime := c.OptionalTime("start_time")
	endTime := c.OptionalTime("end_time")
	focus := c.OptionalStringList("focus")
	objectRefs := c.OptionalRefList("object_refs", graph.CategoryCore)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateContextObject("Investigation", graph.Props{
		"InvestigationForm":   investigationForm,
		"InvestigationStatus": investigationStatus,
		"StartTime":           startTime,
		"EndTime":             endTime,
		"Focus":               focus,
		"ObjectRefs":          objectRefs,
	}), nil
}

func contextProvenanceRecord(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("context_ProvenanceRecord", p)
	exhibitNumber := c.OptionalString("exhibit_number")
	objectRefs := c.OptionalRefList("object_refs", graph.CategoryCore)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateContextObject("ProvenanceRecord", graph.Props{
		"ExhibitNumber": exhibitNumber,
		"ObjectRefs":    objectRefs,
	}), nil
}
