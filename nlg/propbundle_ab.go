package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, A through B. Bundles attach facets to an owning core
// entity rather than standing alone in the graph.

func propbundleAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Account"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	accountID := c.RequiredString("account_id")
	expirationTime := c.OptionalTime("expiration_time")
	createdTime := c.OptionalTime("created_time")
	accountType := c.OptionalRef("account_type", graph.CategoryCore, "ControlledVocabulary")
	accountIssuerRef := c.OptionalRef("account_issuer_ref", graph.CategoryCore)
	isActive := c.OptionalBool("is_active")
	modifiedTime := c.OptionalTime("modified_time")
	ownerRef := c.OptionalRef("owner_ref", graph.CategoryCore)
	if err := c.Err(); err != nil {
		return nil, err
	}
	// AccoundID matches the published vocabulary, misspelling included.
	return owner.CreatePropertyBundle("Account", graph.Props{
		"AccoundID":        accountID,
		"ExpirationTime":   expirationTime,
		"CreatedTime":      createdTime,
		"AccountType":      accountType,
		"AccountIssuerRef": accountIssuerRef,
		"IsActive":         isActive,
		"ModifiedTime":     modifiedTime,
		"OwnerRef":         ownerRef,
	}), nil
}

func propbundleAccountAuthentication(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_AccountAuthentication"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	password := c.OptionalString("password")
	passwordType := c.OptionalString("password_type")
	passwordLastChanged := c.OptionalTime("password_last_changed")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("AccountAuthentication", graph.Props{
		"Password":            password,
		"PasswordType":        passwordType,
		"PasswordLastChanged": passwordLastChanged,
	}), nil
}

func propbundleActionReferences(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ActionReferences"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	environmentRef := c.OptionalRef("environment_ref", graph.CategoryCore)
	resultRefs := c.OptionalRefList("result_refs", graph.CategoryCore)
	performerRefs := c.OptionalRef("performer_refs", graph.CategoryCore)
	participantRefs := c.OptionalRefList("participant_refs", graph.CategoryCore)
	objectRefs := c.OptionalRefList("object_refs", graph.CategoryCore)
	locationRefs := c.OptionalRefList("location_refs", graph.CategoryCore, "Location")
	instrumentRefs := c.OptionalRefList("instrument_refs", graph.CategoryCore)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ActionReferences", graph.Props{
		"EnvironmentRef":  environmentRef,
		"ResultRefs":      resultRefs,
		"PerformerRefs":   performerRefs,
		"ParticipantRefs": participantRefs,
		"ObjectRefs":      objectRefs,
		"LocationRefs":    locationRefs,
		"InstrumentRefs":  instrumentRefs,
	}), nil
}

func propbundleApplication(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Application"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationIdentifier := c.OptionalString("application_identifier")
	version := c.OptionalString("version")
	operatingSystemRef := c.OptionalRef("operating_system_ref", graph.CategoryCore, "Trace")
	numberOfLaunches := c.OptionalPositiveInt("number_of_launches")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Application", graph.Props{
		"ApplicationIdentifier": applicationIdentifier,
		"Version":               version,
		"OperatingSystemRef":    operatingSystemRef,
		"NumberOfLaunches":      numberOfLaunches,
	}), nil
}

func propbundleApplicationAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ApplicationAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ApplicationAccount", graph.Props{
		"ApplicationRef": applicationRef,
	}), nil
}

func propbundleArchiveFile(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ArchiveFile"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	version := c.OptionalString("version")
	comment := c.OptionalString("comment")
	archiveType := c.OptionalString("archive_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ArchiveFile", graph.Props{
		"Version":     version,
		"Comment":     comment,
		"ArchiveType": archiveType,
	}), nil
}

func propbundleAttachment(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Attachment"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	url := c.RequiredAny("url") // URI; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Attachment", graph.Props{
		"URL": url,
	}), nil
}

func propbundleAudio(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Audio"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	audioFormat := c.OptionalString("audio_format")
	audioType := c.OptionalString("audio_type")
	bitRate := c.OptionalLong("bit_rate")
	duration := c.OptionalLong("duration")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Audio", graph.Props{
		"AudioFormat": audioFormat,
		"AudioType":   audioType,
		"BitRate":     bitRate,
		"Duration":    duration,
	}), nil
}

func propbundleAuthorization(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Authorization"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	authorizationType := c.RequiredRef("authorization_type", graph.CategoryCore, "ControlledVocabulary")
	authorizationIdentifier := c.OptionalString("authorization_identifier")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Authorization", graph.Props{
		"AuthorizationType":       authorizationType,
		"AuthorizationIdentifier": authorizationIdentifier,
	}), nil
}

func propbundleAutonomousSystem(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_AutonomousSystem"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	number := c.RequiredInt("number")
	asHandle := c.OptionalString("as_handle")
	regionalInternetRegistry := c.OptionalRef("regional_internet_registry", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("AutonomousSystem", graph.Props{
		"Number":                   number,
		"AsHandle":                 asHandle,
		"RegionalInternetRegistry": regionalInternetRegistry,
	}), nil
}

func propbundleBrowserBookmark(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_BrowserBookmark"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	accessedTime := c.OptionalTime("accessed_time")
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	createdTime := c.OptionalTime("created_time")
	modifiedTime := c.OptionalTime("modified_time")
	bookmarkPath := c.OptionalString("bookmark_path")
	urlTargeted := c.Any("url_targeted") // URL; no defined check
	visitCount := c.OptionalInt("visit_count")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("BrowserBookmark", graph.Props{
		"AccessedTime":   accessedTime,
		"ApplicationRef": applicationRef,
		"CreatedTime":    createdTime,
		"ModifiedTime":   modifiedTime,
		"BookmarkPath":   bookmarkPath,
		"URLTargeted":    urlTargeted,
		"VisitCount":     visitCount,
	}), nil
}

func propbundleBrowserCookie(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_BrowserCookie"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	accessedTime := c.OptionalTime("accessed_time")
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	createdTime := c.OptionalTime("created_time")
	expirationTime := c.OptionalTime("expiration_time")
	domainRef := c.OptionalRef("domain_ref", graph.CategoryCore, "Trace")
	cookieName := c.OptionalString("cookie_name")
	cookiePath := c.OptionalString("cookie_path")
	isSecure := c.OptionalBool("is_secure")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("BrowserCookie", graph.Props{
		"AccessedTime":   accessedTime,
		"ApplicationRef": applicationRef,
		"CreatedTime":    createdTime,
		"ExpirationTime": expirationTime,
		"DomainRef":      domainRef,
		"CookieName":     cookieName,
		"CookiePath":     cookiePath,
		"IsSecure":       isSecure,
	}), nil
}

func propbundleBuild(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Build"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	buildInformation := c.RequiredRef("build_information", graph.CategoryDuck, "BuildInformationType")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Build", graph.Props{
		"BuildInformation": buildInformation,
	}), nil
}
