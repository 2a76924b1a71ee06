package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, W through X.

func propbundleWhoIs(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WhoIs"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	lookupDate := c.OptionalTime("lookup_date")
	domainNameRef := c.OptionalRef("domain_name_ref", graph.CategoryCore, "Trace")
	domainID := c.OptionalString("domain_id")
	serverNameRef := c.OptionalRef("server_name_ref", graph.CategoryCore, "Trace")
	ipAddressRef := c.OptionalRef("ip_address_ref", graph.CategoryCore, "Trace")
	nameServerRefs := c.OptionalRefList("name_server_refs", graph.CategoryCore, "Trace")
	updatedDate := c.OptionalTime("updated_date")
	creationDate := c.OptionalTime("creation_date")
	expirationDate := c.OptionalTime("expiration_date")
	sponsoringRegistrar := c.OptionalString("sponsoring_registrar")
	registrarInfo := c.OptionalRef("registrar_info", graph.CategoryDuck, "WhoIsRegistrarInfoType")
	registrantIDs := c.OptionalStringList("registrant_ids")
	contactInfo := c.OptionalRefList("contact_info", graph.CategoryDuck, "WhoIsContactType")
	remarks := c.OptionalString("remarks")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WhoIs", graph.Props{
		"LookupDate":          lookupDate,
		"DomainNameRef":       domainNameRef,
		"DomainID":            domainID,
		"ServerNameRef":       serverNameRef,
		"IPAddressRef":        ipAddressRef,
		"NameServerRefs":      nameServerRefs,
		"UpdatedDate":         updatedDate,
		"CreationDate":        creationDate,
		"ExpirationDate":      expirationDate,
		"SponsoringRegistrar": sponsoringRegistrar,
		"RegistrarInfo":       registrarInfo,
		"RegistrantIDs":       registrantIDs,
		"ContactInfo":         contactInfo,
		"Remarks":             remarks,
	}), nil
}

func propbundleWindowsAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	groups := c.RequiredStringList("groups")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsAccount", graph.Props{
		"Groups": groups,
	}), nil
}

func propbundleWindowsActiveDirectoryAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsActiveDirectoryAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	objectGUID := c.RequiredString("object_guid")
	activeDirectoryGroups := c.OptionalStringList("active_directory_groups")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsActiveDirectoryAccount", graph.Props{
		"ObjectGUID":            objectGUID,
		"ActiveDirectoryGroups": activeDirectoryGroups,
	}), nil
}

func propbundleWindowsComputerSpecification(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsComputerSpecification"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	domain := c.OptionalStringList("domain")
	globalFlagList := c.OptionalRefList("global_flag_list", graph.CategoryDuck, "GlobalFlagType")
	netBIOSName := c.OptionalString("net_bios_name")
	msProductID := c.OptionalString("ms_product_id")
	msProductName := c.OptionalString("ms_product_name")
	registeredOrganizationRef := c.OptionalRef("registered_organization_ref", graph.CategoryCore, "Identity")
	registeredOwnerRef := c.Any("registered_owner_ref") // Identity; no defined check
	windowsDirectoryRef := c.OptionalRef("windows_directory_ref", graph.CategoryCore, "Trace")
	windowsSystemDirectoryRef := c.OptionalRef("windows_system_directory_ref", graph.CategoryCore, "Trace")
	windowsTempDirectoryRef := c.OptionalRef("windows_temp_directory_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsComputerSpecification", graph.Props{
		"Domain":                    domain,
		"GlobalFlagList":            globalFlagList,
		"NetBIOSName":               netBIOSName,
		"MsProductID":               msProductID,
		"MsProductName":             msProductName,
		"RegisteredOrganizationRef": registeredOrganizationRef,
		"RegisteredOwnerRef":        registeredOwnerRef,
		"WindowsDirectoryRef":       windowsDirectoryRef,
		"WindowsSystemDirectoryRef": windowsSystemDirectoryRef,
		"WindowsTempDirectoryRef":   windowsTempDirectoryRef,
	}), nil
}

func propbundleWindowsPEBinaryFile(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsPEBinaryFile"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	machine := c.RequiredAny("machine") // HexBinary; no defined check
	peType := c.OptionalRef("pe_type", graph.CategoryCore, "ControlledVocabulary")
	impHash := c.OptionalString("imp_hash")
	numberOfSections := c.OptionalInt("number_of_sections")
	datetimeStamp := c.OptionalTime("datetime_stamp")
	pointerToSymbolTable := c.OptionalInt("pointer_to_symbol_table")
	sizeOfOptionalHeader := c.OptionalInt("size_of_optional_header")
	characteristics := c.Any("characteristics") // HexBinary; no defined check
	fileHeaderHashes := c.OptionalRefList("file_header_hashes", graph.CategoryDuck, "Hash")
	optionalHeader := c.OptionalRef("optional_header", graph.CategoryDuck, "WindowsPEOptionalHeader")
	sections := c.OptionalRefList("sections", graph.CategoryDuck, "WindowsPESection")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// The published vocabulary emits the symbol table pointer under both
	// keys.
	return owner.CreatePropertyBundle("WindowsPEBinaryFile", graph.Props{
		"Machine":              machine,
		"PEType":               peType,
		"ImpHash":              impHash,
		"NumberOfSections":     numberOfSections,
		"DatetimeStamp":        datetimeStamp,
		"PointerToSymbolTable": pointerToSymbolTable,
		"NumberOfSymbols":      pointerToSymbolTable,
		"SizeOfOptionalHeader": sizeOfOptionalHeader,
		"Characteristics":      characteristics,
		"FileHeaderHashes":     fileHeaderHashes,
		"OptionalHeader":       optionalHeader,
		"Sections":             sections,
	}), nil
}

func propbundleWindowsPrefetch(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsPrefetch"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationFileName := c.OptionalString("application_file_name")
	prefetchHash := c.OptionalString("prefetch_hash")
	timesExecuted := c.OptionalLong("times_executed")
	firstRun := c.OptionalTime("first_run")
	lastRun := c.OptionalTime("last_run")
	volumeRef := c.OptionalRef("volume_ref", graph.CategoryCore, "Trace")
	accessedFileRefs := c.OptionalRefList("accessed_file_refs", graph.CategoryCore, "Trace")
	accessedDirectoryRefs := c.OptionalRefList("accessed_directory_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsPrefetch", graph.Props{
		"ApplicationFileName":   applicationFileName,
		"PrefetchHash":          prefetchHash,
		"TimesExecuted":         timesExecuted,
		"FirstRun":              firstRun,
		"LastRun":               lastRun,
		"VolumeRef":             volumeRef,
		"AccessedFileRefs":      accessedFileRefs,
		"AccessedDirectoryRefs": accessedDirectoryRefs,
	}), nil
}

func propbundleWindowsProcess(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsProcess"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	aslrEnabled := c.OptionalBool("aslr_enabled")
	depEnabled := c.OptionalBool("dep_enabled")
	priority := c.OptionalString("priority")
	ownerSID := c.OptionalString("owner_sid")
	windowTitle := c.OptionalString("window_title")
	startupInfo := c.OptionalRef("startup_info", graph.CategoryDuck, "Dictionary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsProcess", graph.Props{
		"ASLREnabled": aslrEnabled,
		"DEPEnabled":  depEnabled,
		"Priority":    priority,
		"OwnerSID":    ownerSID,
		"WindowTitle": windowTitle,
		"StartupInfo": startupInfo,
	}), nil
}

func propbundleWindowsRegistryHive(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsRegistryHive"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	hiveType := c.RequiredString("hive_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsRegistryHive", graph.Props{
		"HiveType": hiveType,
	}), nil
}

func propbundleWindowsRegistryKey(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsRegistryKey"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	key := c.RequiredString("key")
	values := c.OptionalRefList("values", graph.CategoryPropertyBundle, "WindowsRegistryHive")
	modifiedTime := c.OptionalTime("modified_time")
	creatorRef := c.OptionalRef("creator_ref", graph.CategoryCore, "Trace")
	numberOfSubkeys := c.OptionalInt("number_of_subkeys")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsRegistryKey", graph.Props{
		"Key":             key,
		"Values":          values,
		"ModifiedTime":    modifiedTime,
		"CreatorRef":      creatorRef,
		"NumberOfSubkeys": numberOfSubkeys,
	}), nil
}

func propbundleWindowsService(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsService"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	serviceName := c.RequiredString("service_name")
	descriptions := c.OptionalStringList("descriptions")
	displayName := c.OptionalString("display_name")
	groupName := c.OptionalString("group_name")
	startCommandLine := c.OptionalString("start_command_line")
	startType := c.OptionalRef("start_type", graph.CategoryCore, "ControlledVocabulary")
	serviceType := c.OptionalRef("service_type", graph.CategoryCore, "ControlledVocabulary")
	serviceStatus := c.OptionalRef("service_status", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsService", graph.Props{
		"ServiceName":      serviceName,
		"Descriptions":     descriptions,
		"DisplayName":      displayName,
		"GroupName":        groupName,
		"StartCommandLine": startCommandLine,
		"StartType":        startType,
		"ServiceType":      serviceType,
		"ServiceStatus":    serviceStatus,
	}), nil
}

func propbundleWindowsTask(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsTask"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	imageName := c.OptionalString("image_name")
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	parameters := c.OptionalString("parameters")
	accountRef := c.OptionalRef("account_ref", graph.CategoryCore, "Trace")
	accountRunLevel := c.OptionalString("account_run_level")
	accountLogonType := c.OptionalString("account_logon_type")
	creator := c.OptionalString("creator")
	createdTime := c.OptionalTime("created_time")
	mostRecentRunTime := c.OptionalTime("most_recent_run_time")
	exitCode := c.OptionalLong("exit_code")
	maxRunTime := c.OptionalLong("max_run_time")
	nextRunTime := c.OptionalTime("next_run_time")
	actionList := c.OptionalRefList("action_list", graph.CategoryDuck, "TaskActionType")
	triggerList := c.OptionalRefList("trigger_list", graph.CategoryDuck, "TriggerType")
	comment := c.OptionalString("comment")
	workingDirectory := c.OptionalRef("working_directory", graph.CategoryCore, "Trace")
	workItemDataRef := c.OptionalRef("work_item_data_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsTask", graph.Props{
		"ImageName":         imageName,
		"ApplicationRef":    applicationRef,
		"Parameters":        parameters,
		"AccountRef":        accountRef,
		"AccountRunLevel":   accountRunLevel,
		"AccountLogonType":  accountLogonType,
		"Creator":           creator,
		"CreatedTime":       createdTime,
		"MostRecentRunTime": mostRecentRunTime,
		"ExitCode":          exitCode,
		"MaxRunTime":        maxRunTime,
		"NextRunTime":       nextRunTime,
		"ActionList":        actionList,
		"TriggerList":       triggerList,
		"Comment":           comment,
		"WorkingDirectory":  workingDirectory,
		"WorkItemDataRef":   workItemDataRef,
	}), nil
}

func propbundleWindowsThread(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsThread"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	threadID := c.OptionalPositiveInt("thread_id")
	runningStatus := c.OptionalRef("running_status", graph.CategoryCore, "ControlledVocabulary")
	threadContext := c.OptionalString("context")
	priority := c.OptionalInt("priority")
	creationFlags := c.Any("creation_flags") // HexBinary; no defined check
	creationTime := c.OptionalTime("creation_time")
	startAddress := c.Any("start_address")         // HexBinary; no defined check
	parameterAddress := c.Any("parameter_address") // HexBinary; no defined check
	securityAttributes := c.OptionalString("security_attributes")
	stackSize := c.OptionalPositiveInt("stack_size")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsThread", graph.Props{
		"ThreadID":           threadID,
		"RunningStatus":      runningStatus,
		"Context":            threadContext,
		"Priority":           priority,
		"CreationFlags":      creationFlags,
		"CreationTime":       creationTime,
		"StartAddress":       startAddress,
		"ParameterAddress":   parameterAddress,
		"SecurityAttributes": securityAttributes,
		"StackSize":          stackSize,
	}), nil
}

func propbundleWindowsVolume(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WindowsVolume"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	driveLetter := c.RequiredString("drive_letter")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WindowsVolume", graph.Props{
		"DriveLetter": driveLetter,
	}), nil
}

func propbundleWirelessNetworkConnection(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_WirelessNetworkConnection"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	baseStation := c.OptionalString("base_station")
	ssid := c.OptionalString("ssid")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("WirelessNetworkConnection", graph.Props{
		"BaseStation": baseStation,
		"SSID":        ssid,
	}), nil
}

func propbundleX509Certificate(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_X509Certificate"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isSelfSigned := c.OptionalBool("is_self_signed")
	version := c.OptionalString("version")
	serialNumber := c.OptionalString("serial_number")
	signatureAlgorithm := c.OptionalString("signature_algorithm")
	signature := c.OptionalString("signature")
	issuer := c.OptionalString("issuer")
	issuerHash := c.OptionalRef("issuer_hash", graph.CategoryDuck, "Hash")
	validityNotBefore := c.OptionalTime("validity_not_before")
	validityNotAfter := c.OptionalTime("validity_not_after")
	subject := c.OptionalString("subject")
	subjectHash := c.OptionalRef("subject_hash", graph.CategoryDuck, "Hash")
	subjectPublicKeyAlgorithm := c.OptionalString("subject_public_key_algorithm")
	subjectPublicKeyModulus := c.OptionalString("subject_public_key_modulus")
	subjectPublicKeyExponent := c.OptionalInt("subject_public_key_exponent")
	extensions := c.OptionalRef("x509v3_extensions", graph.CategoryDuck, "X509V3Extensions")
	thumbprintHash := c.OptionalRef("thumbprint_hash", graph.CategoryDuck, "Hash")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("X509Certificate", graph.Props{
		"IsSelfSigned":              isSelfSigned,
		"Version":                   version,
		"SerialNumber":              serialNumber,
		"SignatureAlgorithm":        signatureAlgorithm,
		"Signature":                 signature,
		"Issuer":                    issuer,
		"IssuerHash":                issuerHash,
		"ValidityNotBefore":         validityNotBefore,
		"ValidityNotAfter":          validityNotAfter,
		"Subject":                   subject,
		"SubjectHash":               subjectHash,
		"SubjectPublicKeyAlgorithm": subjectPublicKeyAlgorithm,
		"SubjectPublicKeyModulus":   subjectPublicKeyModulus,
		"SubjectPublicKeyExponent":  subjectPublicKeyExponent,
		"Extensions":                extensions,
		"ThumbprintHash":            thumbprintHash,
	}), nil
}
