package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, S through V.

func propbundleSimpleAddress(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_SimpleAddress"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	street := c.OptionalString("street")
	locality := c.OptionalString("locality")
	region := c.OptionalString("region")
	postalCode := c.OptionalString("postal_code")
	country := c.OptionalString("country")
	addressType := c.OptionalString("address_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("SimpleAddress", graph.Props{
		"Street":      street,
		"Locality":    locality,
		"Region":      region,
		"PostalCode":  postalCode,
		"Country":     country,
		"AddressType": addressType,
	}), nil
}

func propbundleSMSMessage(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_SMSMessage"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isRead := c.RequiredBool("is_read")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("SMSMessage", graph.Props{
		"IsRead": isRead,
	}), nil
}

func propbundleSoftware(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Software"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	version := c.OptionalString("version")
	language := c.OptionalString("language")
	manufacturer := c.OptionalString("manufacturer")
	swid := c.OptionalString("swid")
	cpeid := c.OptionalString("cpeid")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Software", graph.Props{
		"Version":      version,
		"Language":     language,
		"Manufacturer": manufacturer,
		"SWID":         swid,
		"CPEID":        cpeid,
	}), nil
}

func propbundleSQLiteBlob(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_SQLiteBlob"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	columnName := c.OptionalString("column_name")
	rowCondition := c.OptionalString("row_condition")
	rowIndex := c.OptionalPositiveInt("row_index")
	tableName := c.OptionalString("table_name")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("SQLiteBlob", graph.Props{
		"ColumnName":   columnName,
		"RowCondition": rowCondition,
		"RowIndex":     rowIndex,
		"TableName":    tableName,
	}), nil
}

func propbundleSymbolicLink(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_SymbolicLink"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	targetFileRef := c.RequiredRef("target_file_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("SymbolicLink", graph.Props{
		"TargetFileRef": targetFileRef,
	}), nil
}

func propbundleTCPConnection(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_TCPConnection"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	sourceFlags := c.Any("source_flags")           // HexBinary; no defined check
	destinationFlags := c.Any("destination_flags") // HexBinary; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("TCPConnection", graph.Props{
		"SourceFlags":      sourceFlags,
		"DestinationFlags": destinationFlags,
	}), nil
}

func propbundleToolConfigurationType(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ToolConfigurationType"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	configurationSettings := c.OptionalRefList("configuration_settings", graph.CategoryDuck, "ConfigurationSettingType")
	dependencies := c.OptionalRefList("dependencies", graph.CategoryDuck, "DependencyType")
	usageContextAssumptions := c.Any("usage_context_assumptions") // StructuredText; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ToolConfigurationType", graph.Props{
		"ConfigurationSettings":   configurationSettings,
		"Dependencies":            dependencies,
		"UsageContextAssumptions": usageContextAssumptions,
	}), nil
}

func propbundleUNIXAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UNIXAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	gid := c.OptionalInt("gid")
	groups := c.OptionalStringList("groups")
	shell := c.OptionalString("shell")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UNIXAccount", graph.Props{
		"GID":    gid,
		"Groups": groups,
		"Shell":  shell,
	}), nil
}

func propbundleUNIXFilePermissions(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UNIXFilePermissions"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	// Nothing else to check yet.
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UNIXFilePermissions", nil), nil
}

func propbundleUNIXProcess(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UNIXProcess"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	openFileDescriptorRefs := c.OptionalIntList("open_file_descriptor_refs")
	priority := c.OptionalPositiveInt("priority")
	ruid := c.OptionalPositiveInt("ruid")
	sessionID := c.OptionalPositiveInt("session_id")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UNIXProcess", graph.Props{
		"OpenFileDescriptorRefs": openFileDescriptorRefs,
		"Priority":               priority,
		"RUID":                   ruid,
		"SessionID":              sessionID,
	}), nil
}

func propbundleUNIXVolume(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UNIXVolume"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	mountPoint := c.OptionalString("mount_point")
	options := c.OptionalString("options")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UNIXVolume", graph.Props{
		"MountPoint": mountPoint,
		"Options":    options,
	}), nil
}

func propbundleURL(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_URL"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	fullValue := c.RequiredString("full_value")
	scheme := c.OptionalString("scheme")
	userNameRef := c.OptionalRef("user_name_ref", graph.CategoryCore, "Trace")
	passwordRef := c.OptionalRef("password_ref", graph.CategoryCore, "Trace")
	hostRef := c.OptionalRef("host_ref", graph.CategoryCore, "Trace")
	port := c.OptionalLong("port")
	path := c.OptionalString("path")
	query := c.OptionalString("query")
	fragment := c.OptionalString("fragment")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("URL", graph.Props{
		"FullValue":   fullValue,
		"Scheme":      scheme,
		"UserNameRef": userNameRef,
		"PasswordRef": passwordRef,
		"HostRef":     hostRef,
		"Port":        port,
		"Path":        path,
		"Query":       query,
		"Fragment":    fragment,
	}), nil
}

func propbundleUserAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UserAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	homeDirectory := c.OptionalString("home_directory")
	isServiceAccount := c.OptionalBool("is_service_account")
	isPrivileged := c.OptionalBool("is_privileged")
	canEscalatePrivileges := c.OptionalBool("can_escalate_privileges")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UserAccount", graph.Props{
		"HomeDirectory":         homeDirectory,
		"IsServiceAccount":      isServiceAccount,
		"IsPrivileged":          isPrivileged,
		"CanEscalatePrivileges": canEscalatePrivileges,
	}), nil
}

func propbundleUserSession(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_UserSession"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	effectiveGroup := c.OptionalString("effective_group")
	effectiveGroupID := c.OptionalString("effective_group_id")
	effectiveUserRef := c.OptionalRef("effective_user_ref", graph.CategoryCore, "Trace")
	loginTime := c.OptionalTime("login_time")
	logoutTime := c.OptionalTime("logout_time")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("UserSession", graph.Props{
		"EffectiveGroup":   effectiveGroup,
		"EffectiveGroupID": effectiveGroupID,
		"EffectiveUserRef": effectiveUserRef,
		"LoginTime":        loginTime,
		"LogoutTime":       logoutTime,
	}), nil
}

func propbundleVolume(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Volume"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	volumeID := c.OptionalString("volume_id")
	// Declared as Long in the vocabulary but the published check is for
	// String; kept as published.
	sectorSize := c.OptionalString("sector_size")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Volume", graph.Props{
		"VolumeID":   volumeID,
		"SectorSize": sectorSize,
	}), nil
}
