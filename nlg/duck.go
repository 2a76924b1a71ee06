package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Duck objects are reusable structured values shared across the
// document. They are regular addressable nodes stamped with
// DuckObjectCreationTime; only property bundles have blank identity.

func duckAlternateDataStream(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_AlternateDataStream", p)
	name := c.RequiredString("name")
	// Declared as ArrayOfHash in the vocabulary but the published check
	// is for AlternateDataStream; kept as published.
	hashes := c.OptionalRef("hashes", graph.CategoryDuck, "AlternateDataStream")
	size := c.OptionalInt("size")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// The lowercase size key matches the published vocabulary.
	return d.CreateDuckObject("AlternateDataStream", graph.Props{
		"Name":   name,
		"Hashes": hashes,
		"size":   size,
	}), nil
}

func duckArrayOfHash(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ArrayOfHash", p)
	hashes := c.RequiredRefList("hashes", graph.CategoryDuck, "Hash")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ArrayOfHash", graph.Props{
		"Hashes": hashes,
	}), nil
}

func duckArrayOfObject(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ArrayOfObject", p)
	objects := c.RequiredRefList("objects", graph.CategoryCore)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ArrayOfObject", graph.Props{
		"Objects": objects,
	}), nil
}

func duckArrayOfString(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ArrayOfString", p)
	strings := c.RequiredStringList("strings")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ArrayOfString", graph.Props{
		"Strings": strings,
	}), nil
}

func duckBuildConfigurationType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_BuildConfigurationType", p)
	configurationSettingDescription := c.OptionalString("configuration_setting_description")
	configurationSettings := c.OptionalRefList("configuration_settings", graph.CategoryDuck, "ConfigurationSettingType")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("BuildConfigurationType", graph.Props{
		"ConfigurationSettingDescription": configurationSettingDescription,
		"ConfigurationSettings":           configurationSettings,
	}), nil
}

func duckBuildInformationType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_BuildInformationType", p)
	buildID := c.OptionalString("build_id")
	buildProject := c.OptionalString("build_project")
	buildUtility := c.OptionalRef("build_utility", graph.CategoryDuck, "BuildUtilityType")
	buildVersion := c.OptionalString("build_version")
	buildLabel := c.OptionalString("build_label")
	compilers := c.OptionalRefList("compilers", graph.CategoryDuck, "CompilerType")
	compilationDate := c.OptionalTime("compilation_date")
	buildConfiguration := c.OptionalRefList("build_configuration", graph.CategoryDuck, "BuildConfigurationType")
	buildScript := c.OptionalString("build_script")
	libraries := c.OptionalRefList("libraries", graph.CategoryDuck, "LibraryType")
	buildOutputLog := c.OptionalString("build_output_log")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// BuildUtilities matches the published vocabulary key.
	return d.CreateDuckObject("BuildInformationType", graph.Props{
		"BuildID":            buildID,
		"BuildProject":       buildProject,
		"BuildUtilities":     buildUtility,
		"BuildVersion":       buildVersion,
		"BuildLabel":         buildLabel,
		"Compilers":          compilers,
		"CompilationDate":    compilationDate,
		"BuildConfiguration": buildConfiguration,
		"BuildScript":        buildScript,
		"Libraries":          libraries,
		"BuildOutputLog":     buildOutputLog,
	}), nil
}

func duckBuildUtilityType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_BuildUtilityType", p)
	buildUtilityName := c.RequiredString("build_utility_name")
	swid := c.OptionalString("swid")
	cpeid := c.OptionalString("cpeid")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("BuildUtilityType", graph.Props{
		"BuildUtilityName": buildUtilityName,
		"SWID":             swid,
		"CPEID":            cpeid,
	}), nil
}

func duckCompilerType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_CompilerType", p)
	compilerInformalDescription := c.Any("compiler_informal_description")
	swid := c.OptionalString("swid")
	cpeid := c.OptionalString("cpeid")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("CompilerType", graph.Props{
		"CompilerInformalDescription": compilerInformalDescription,
		"SWID":                        swid,
		"CPEID":                       cpeid,
	}), nil
}

func duckConfigurationSettingType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ConfigurationSettingType", p)
	itemName := c.RequiredString("item_name")
	itemValue := c.RequiredString("item_value")
	itemType := c.OptionalString("item_type")
	itemDescription := c.OptionalString("item_description")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ConfigurationSettingType", graph.Props{
		"ItemName":        itemName,
		"ItemValue":       itemValue,
		"ItemType":        itemType,
		"ItemDescription": itemDescription,
	}), nil
}

func duckControlledDictionary(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ControlledDictionary", p)
	entry := c.RequiredRefList("entry", graph.CategoryDuck, "ControlledDictionaryEntry")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ControlledDictionary", graph.Props{
		"Entry": entry,
	}), nil
}

func duckControlledDictionaryEntry(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_ControlledDictionaryEntry", p)
	key := c.RequiredRef("key", graph.CategoryCore, "ControlledVocabulary")
	value := c.RequiredString("value")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("ControlledDictionaryEntry", graph.Props{
		"Key":   key,
		"Value": value,
	}), nil
}

func duckDataRange(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_DataRange", p)
	rangeOffsetType := c.OptionalString("range_offset_type")
	rangeOffset := c.OptionalInt("range_offset")
	rangeSize := c.OptionalLong("range_size")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("DataRange", graph.Props{
		"RangeOffsetType": rangeOffsetType,
		"RangeOffset":     rangeOffset,
		"RangeSize":       rangeSize,
	}), nil
}

func duckDependencyType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_DependencyType", p)
	dependencyDescription := c.Any("dependency_description")
	dependencyType := c.OptionalString("dependency_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("DependencyType", graph.Props{
		"DependencyDescription": dependencyDescription,
		"DependencyType":        dependencyType,
	}), nil
}

func duckDictionary(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_Dictionary", p)
	// Entry is checked as a single DictionaryEntry despite the plural
	// wording in the vocabulary.
	entry := c.RequiredRef("entry", graph.CategoryDuck, "DictionaryEntry")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("Dictionary", graph.Props{
		"Entry": entry,
	}), nil
}

func duckDictionaryEntry(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_DictionaryEntry", p)
	key := c.RequiredString("key")
	value := c.RequiredString("value")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("DictionaryEntry", graph.Props{
		"Key":   key,
		"Value": value,
	}), nil
}

func duckGlobalFlagType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_GlobalFlagType", p)
	abbreviation := c.OptionalString("abbreviation")
	destination := c.OptionalString("destination")
	hexadecimalValue := c.Any("hexadecimal_value") // HexBinary; no defined check
	symbolicName := c.OptionalString("symbolic_name")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("GlobalFlagType", graph.Props{
		"Abbreviation":     abbreviation,
		"Destination":      destination,
		"HexadecimalValue": hexadecimalValue,
		"SymbolicName":     symbolicName,
	}), nil
}

func duckGranularMarking(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_GranularMarking", p)
	contentSelectors := c.OptionalStringList("content_selectors")
	markingReferences := c.OptionalRefList("marking_references", graph.CategoryCore, "MarkingDefinition")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("GranularMarking", graph.Props{
		"ContentSelectors":  contentSelectors,
		"MarkingReferences": markingReferences,
	}), nil
}

func duckHash(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_Hash", p)
	hashMethod := c.RequiredRef("hash_method", graph.CategoryCore, "ControlledVocabulary")
	hashValue := c.Any("hash_value") // HexBinary; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("Hash", graph.Props{
		"HashMethod": hashMethod,
		"HashValue":  hashValue,
	}), nil
}

func duckIComHandlerActionType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_IComHandlerActionType", p)
	comData := c.OptionalString("com_data")
	comClassID := c.OptionalString("com_class_id")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("IComHandlerActionType", graph.Props{
		"ComData":    comData,
		"ComClassID": comClassID,
	}), nil
}

func duckLibraryType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_LibraryType", p)
	libraryName := c.RequiredString("library_name")
	libraryVersion := c.RequiredString("library_version")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("LibraryType", graph.Props{
		"LibraryName":    libraryName,
		"LibraryVersion": libraryVersion,
	}), nil
}

func duckMarkingModel(d *graph.Document, p Properties) (*graph.Node, error) {
	// Nothing else to check yet.
	if err := check("duck_MarkingModel", p).Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("MarkingModel", nil), nil
}

func duckMIMEPartType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_MIMEPartType", p)
	body := c.OptionalString("body")
	contentType := c.OptionalString("content_type")
	bodyRawRef := c.OptionalRef("body_raw_ref", graph.CategoryCore, "Trace")
	contentDisposition := c.OptionalString("content_disposition")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("MIMEPartType", graph.Props{
		"Body":               body,
		"ContentType":        contentType,
		"BodyRawRef":         bodyRawRef,
		"ContentDisposition": contentDisposition,
	}), nil
}

func duckTaskActionType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_TaskActionType", p)
	actionID := c.OptionalString("action_id")
	iEmailActionRef := c.OptionalRef("iemail_action_ref", graph.CategoryCore, "Trace")
	iComHandlerAction := c.OptionalRef("icom_handler_action", graph.CategoryDuck, "IComHandlerActionType")
	iExecAction := c.OptionalRef("iexec_action", graph.CategoryDuck, "IExecActionType")
	iShowMessageAction := c.OptionalRef("ishow_message_action", graph.CategoryDuck, "IShowMessageActionType")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("TaskActionType", graph.Props{
		"ActionID":           actionID,
		"iEmailActionRef":    iEmailActionRef,
		"iComHandlerAction":  iComHandlerAction,
		"iExecAction":        iExecAction,
		"iShowMessageAction": iShowMessageAction,
	}), nil
}

func duckTriggerType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_TriggerType", p)
	isEnabled := c.OptionalBool("is_enabled")
	triggerBeginTime := c.OptionalTime("trigger_begin_time")
	triggerDelay := c.OptionalString("trigger_delay")
	triggerEndTime := c.OptionalTime("trigger_end_time")
	triggerMaxRunTime := c.OptionalString("trigger_max_run_time")
	triggerSessionChangeType := c.OptionalString("trigger_session_change_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// TriggerSessionChangedTime matches the published vocabulary key.
	return d.CreateDuckObject("TriggerType", graph.Props{
		"IsEnabled":                 isEnabled,
		"TriggerBeginTime":          triggerBeginTime,
		"TriggerDelay":              triggerDelay,
		"TriggerEndTime":            triggerEndTime,
		"TriggerMaxRunTime":         triggerMaxRunTime,
		"TriggerSessionChangedTime": triggerSessionChangeType,
	}), nil
}

func duckWhoIsContactType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WhoIsContactType", p)
	contactID := c.OptionalString("contact_id")
	contactName := c.OptionalString("contact_name")
	emailAddressRef := c.OptionalRef("email_address_ref", graph.CategoryCore, "Trace")
	phoneNumberRef := c.OptionalRef("phone_number_ref", graph.CategoryCore, "Trace")
	faxNumberRef := c.OptionalRef("fax_number_ref", graph.CategoryCore, "Trace")
	c.OptionalRef("address_ref", graph.CategoryCore, "Location") // checked but not materialized
	contactOrganization := c.OptionalRef("contact_organization", graph.CategoryCore, "Identity")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("WhoIsContactType", graph.Props{
		"ContactID":           contactID,
		"ContactName":         contactName,
		"EmailAddressRef":     emailAddressRef,
		"PhoneNumberRef":      phoneNumberRef,
		"FaxNumberRef":        faxNumberRef,
		"ContactOrganization": contactOrganization,
	}), nil
}

func duckWhoIsRegistrarInfoType(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WhoIsRegistrarInfoType", p)
	registrarID := c.OptionalString("registrar_id")
	registrarGUID := c.OptionalString("registrar_guid")
	whoIsServerRef := c.OptionalRef("who_is_server_ref", graph.CategoryCore, "Trace")
	referralURLRef := c.OptionalRef("referral_url_ref", graph.CategoryCore, "Trace")
	registrarName := c.OptionalString("registrar_name")
	emailAddressRef := c.OptionalRef("email_address_ref", graph.CategoryCore, "Trace")
	phoneNumberRef := c.OptionalRef("phone_number_ref", graph.CategoryCore, "Trace")
	addressRef := c.OptionalRef("address_ref", graph.CategoryCore, "Location")
	contactInfoRefs := c.OptionalRefList("contact_info_refs", graph.CategoryDuck, "WhoIsContactType")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// EmailAddress matches the published vocabulary key.
	return d.CreateDuckObject("WhoIsRegistrarInfoType", graph.Props{
		"RegistrarID":     registrarID,
		"RegistrarGUID":   registrarGUID,
		"WhoIsServerRef":  whoIsServerRef,
		"ReferralURLRef":  referralURLRef,
		"RegistrarName":   registrarName,
		"EmailAddress":    emailAddressRef,
		"PhoneNumberRef":  phoneNumberRef,
		"AddressRef":      addressRef,
		"ContactInfoRefs": contactInfoRefs,
	}), nil
}

func duckWindowsPEFileHeader(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WindowsPEFileHeader", p)
	machine := c.RequiredAny("machine")                      // HexBinary; no defined check
	numberOfSections := c.Any("number_of_sections")          // HexBinary; no defined check
	timeDateStamp := c.Any("time_date_stamp")                // no defined check
	pointerToSymbolTable := c.Any("pointer_to_symbol_table") // HexBinary; no defined check
	numberOfSymbols := c.Any("number_of_symbols")            // HexBinary; no defined check
	sizeOfOptionalHeader := c.Any("size_of_optional_header") // HexBinary; no defined check
	characteristics := c.Any("characteristics")              // HexBinary; no defined check
	hashes := c.OptionalRefList("hashes", graph.CategoryDuck, "Hash")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("WindowsPEFileHeader", graph.Props{
		"Machine":              machine,
		"NumberOfSections":     numberOfSections,
		"TimeDateStamp":        timeDateStamp,
		"PointerToSymbolTable": pointerToSymbolTable,
		"NumberOfSymbols":      numberOfSymbols,
		"SizeOfOptionalHeader": sizeOfOptionalHeader,
		"Characteristics":      characteristics,
		"Hashes":               hashes,
	}), nil
}

// All optional header fields are HexBinary with no defined check.
func duckWindowsPEOptionalHeader(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WindowsPEOptionalHeader", p)
	magic := c.Any("magic")
	majorLinkerVersion := c.Any("major_linker_version")
	minorLinkerVersion := c.Any("minor_linker_version")
	sizeOfCode := c.Any("size_of_code")
	sizeOfInitializedData := c.Any("size_of_initialized_data")
	sizeOfUninitializedData := c.Any("size_of_uninitialized_data")
	addressOfEntryPoint := c.Any("address_of_entry_point")
	baseOfCode := c.Any("base_of_code")
	imageBase := c.Any("image_base")
	sectionAlignment := c.Any("section_alignment")
	fileAlignment := c.Any("file_alignment")
	majorOSVersion := c.Any("major_os_version")
	minorOSVersion := c.Any("minor_os_version")
	majorImageVersion := c.Any("major_image_version")
	minorImageVersion := c.Any("minor_image_version")
	majorSubsystemVersion := c.Any("major_subsystem_version")
	minorSubsystemVersion := c.Any("minor_subsystem_version")
	win32VersionValue := c.Any("win32_version_value")
	sizeOfImage := c.Any("size_of_image")
	sizeOfHeaders := c.Any("size_of_headers")
	checksum := c.Any("checksum")
	subsystem := c.Any("subsystem")
	dllCharacteristics := c.Any("dll_characteristics")
	sizeOfStackReserve := c.Any("size_of_stack_reserve")
	sizeOfStackCommit := c.Any("size_of_stack_commit")
	sizeOfHeapReserve := c.Any("size_of_heap_reserve")
	sizeOfHeapCommit := c.Any("size_of_heap_commit")
	loaderFlags := c.Any("loader_flags")
	numberOfRVAAndSizes := c.Any("number_of_rva_and_sizes")
	hashes := c.OptionalRefList("hashes", graph.CategoryDuck, "Hash")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("WindowsPEOptionalHeader", graph.Props{
		"Magic":                   magic,
		"MajorLinkerVersion":      majorLinkerVersion,
		"MinorLinkerVersion":      minorLinkerVersion,
		"SizeOfCode":              sizeOfCode,
		"SizeOfInitializedData":   sizeOfInitializedData,
		"SizeOfUninitializedData": sizeOfUninitializedData,
		"AddressOfEntryPoint":     addressOfEntryPoint,
		"BaseOfCode":              baseOfCode,
		"ImageBase":               imageBase,
		"SectionAlignment":        sectionAlignment,
		"FileAlignment":           fileAlignment,
		"MajorOSVersion":          majorOSVersion,
		"MinorOSVersion":          minorOSVersion,
		"MajorImageVersion":       majorImageVersion,
		"MinorImageVersion":       minorImageVersion,
		"MajorSubsystemVersion":   majorSubsystemVersion,
		"MinorSubsystemVersion":   minorSubsystemVersion,
		"Win32VersionValue":       win32VersionValue,
		"SizeOfImage":             sizeOfImage,
		"SizeOfHeaders":           sizeOfHeaders,
		"Checksum":                checksum,
		"Subsystem":               subsystem,
		"DLLCharacteristics":      dllCharacteristics,
		"SizeOfStackReserve":      sizeOfStackReserve,
		"SizeOfStackCommit":       sizeOfStackCommit,
		"SizeOfHeapReserve":       sizeOfHeapReserve,
		"SizeOfHeapCommit":        sizeOfHeapCommit,
		"LoaderFlags":             loaderFlags,
		"NumberOfRVAAndSizes":     numberOfRVAAndSizes,
		"Hashes":                  hashes,
	}), nil
}

func duckWindowsPESection(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WindowsPESection", p)
	name := c.RequiredString("name")
	size := c.OptionalInt("size")
	entropy := c.OptionalFloat("entropy")
	hashes := c.OptionalRefList("hashes", graph.CategoryDuck, "Hash")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("WindowsPESection", graph.Props{
		"Name":    name,
		"Size":    size,
		"Entropy": entropy,
		"Hashes":  hashes,
	}), nil
}

func duckWindowsRegistryValue(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_WindowsRegistryValue", p)
	name := c.RequiredString("name")
	data := c.OptionalString("data")
	dataType := c.OptionalRef("data_type", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("WindowsRegistryValue", graph.Props{
		"Name":     name,
		"Data":     data,
		"DataType": dataType,
	}), nil
}

func duckX509V3Extensions(d *graph.Document, p Properties) (*graph.Node, error) {
	c := check("duck_X509V3Extensions", p)
	basicConstraints := c.OptionalString("basic_constraints")
	nameConstraints := c.OptionalString("name_constraints")
	policyConstraints := c.OptionalString("policy_constraints")
	keyUsage := c.OptionalString("key_usage")
	extendedKeyUsage := c.OptionalString("extended_key_usage")
	subjectKeyIdentifier := c.OptionalString("subject_key_identifier")
	authorityKeyIdentifier := c.OptionalString("authority_key_identifier")
	subjectAlternativeName := c.OptionalString("subject_alternative_name")
	issuerAlternativeName := c.OptionalString("issuer_alternative_name")
	c.OptionalString("subject_directory_attributes") // checked; vocabulary emits SubjectAlternativeName here
	crlDistributionPoints := c.OptionalString("crl_distribution_points")
	inhibitAnyPolicy := c.OptionalString("inhibit_any_policy")
	privateKeyUsagePeriodNotBefore := c.OptionalTime("private_key_usage_period_not_before")
	privateKeyUsagePeriodNotAfter := c.OptionalTime("private_key_usage_period_not_after")
	certificatePolicies := c.OptionalString("certificate_policies")
	policyMappings := c.OptionalString("policy_mappings")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d.CreateDuckObject("X509V3Extensions", graph.Props{
		"BasicConstraints":               basicConstraints,
		"NameConstraints":                nameConstraints,
		"PolicyConstraints":              policyConstraints,
		"KeyUsage":                       keyUsage,
		"ExtendedKeyUsage":               extendedKeyUsage,
		"SubjectKeyIdentifier":           subjectKeyIdentifier,
		"AuthorityKeyIdentifier":         authorityKeyIdentifier,
		"SubjectAlternativeName":         subjectAlternativeName,
		"IssuerAlternativeName":          issuerAlternativeName,
		"SubjectDirectoryAttributes":     subjectAlternativeName,
		"CRLDistributionPoints":          crlDistributionPoints,
		"InhibitAnyPolicy":               inhibitAnyPolicy,
		"PrivateKeyUsagePeriodNotBefore": privateKeyUsagePeriodNotBefore,
		"PrivateKeyUsagePeriodNotAfter":  privateKeyUsagePeriodNotAfter,
		"CertificatePolicies":            certificatePolicies,
		"PolicyMappings":                 policyMappings,
	}), nil
}

// --- duck children ---

func duckSubArrayOfAction(d *graph.Document, owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "duck_sub_ArrayOfAction"
	if err := checkOwner(class, owner, graph.CategoryDuck, "ArrayOfObject"); err != nil {
		return nil, err
	}
	// Nothing else to check yet.
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return d.CreateSubObject("ArrayOfAction", nil), nil
}
