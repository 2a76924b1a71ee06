package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundle children. Every child here attaches to an Identity
// bundle.

func propbundleSubAddress(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Address"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	c := check(class, p)
	c.RequiredRef("address_ref", graph.CategoryCore, "Location") // checked but not materialized
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Address", nil), nil
}

func propbundleSubAffiliation(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Affiliation"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Affiliation", nil), nil
}

func propbundleSubBirthInformation(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_BirthInformation"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	c := check(class, p)
	c.RequiredTime("birth_date") // checked but not materialized
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("BirthInformation", nil), nil
}

func propbundleSubCountriesOfResidence(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_CountriesOfResidence"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("CountriesOfResidence", nil), nil
}

func propbundleSubEvents(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Events"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Events", nil), nil
}

func propbundleSubIdentifier(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Identifier"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Identifier", nil), nil
}

func propbundleSubLanguages(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Languages"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Languages", nil), nil
}

func propbundleSubNationality(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Nationality"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Nationality", nil), nil
}

func propbundleSubOccupation(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Occupation"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Occupation", nil), nil
}

func propbundleSubOrganizationDetails(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_OrganizationDetails"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("OrganizationDetails", nil), nil
}

func propbundleSubPersonalDetails(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_PersonalDetails"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	// PhysicalInfo matches the published vocabulary for this class.
	return d.CreateSubObject("PhysicalInfo", nil), nil
}

func propbundleSubQualification(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Qualification"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Qualification", nil), nil
}

func propbundleSubRelationship(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Relationship"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Relationship", nil), nil
}

func propbundleSubSimpleName(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_SimpleName"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	c := check(class, p)
	familyName := c.Any("family_name")
	givenName := c.Any("given_name")
	honorificPrefix := c.Any("honorific_prefix")
	honorificSuffix := c.Any("honorific_suffix")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// ForensicAction matches the published vocabulary for this class.
	return d.CreateSubObject("ForensicAction", graph.Props{
		"FamilyName":      familyName,
		"GivenName":       givenName,
		"HonorificPrefix": honorificPrefix,
		"HonorificSuffix": honorificSuffix,
	}), nil
}

func propbundleSubVisa(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_sub_Visa"
	if err := checkOwner(class, owner, graph.CategoryPropertyBundle, "Identity"); err != nil {
		return nil, err
	}
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("Visa", nil), nil
}
