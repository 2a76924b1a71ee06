package nlg

func registerPropertyBundles() {
	registerBundle("propbundle_Account", propbundleAccount)
	registerBundle("propbundle_AccountAuthentication", propbundleAccountAuthentication)
	registerBundle("propbundle_ActionReferences", propbundleActionReferences)
	registerBundle("propbundle_Application", propbundleApplication)
	registerBundle("propbundle_ApplicationAccount", propbundleApplicationAccount)
	registerBundle("propbundle_ArchiveFile", propbundleArchiveFile)
	registerBundle("propbundle_Attachment", propbundleAttachment)
	registerBundle("propbundle_Audio", propbundleAudio)
	registerBundle("propbundle_Authorization", propbundleAuthorization)
	registerBundle("propbundle_AutonomousSystem", propbundleAutonomousSystem)
	registerBundle("propbundle_BrowserBookmark", propbundleBrowserBookmark)
	registerBundle("propbundle_BrowserCookie", propbundleBrowserCookie)
	registerBundle("propbundle_Build", propbundleBuild)
	registerBundle("propbundle_Calendar", propbundleCalendar)
	registerBundle("propbundle_CalendarEntry", propbundleCalendarEntry)
	registerBundle("propbundle_CompressedStream", propbundleCompressedStream)
	registerBundle("propbundle_ComputerSpecification", propbundleComputerSpecification)
	registerBundle("propbundle_Confidence", propbundleConfidence)
	registerBundle("propbundle_Contact", propbundleContact)
	registerBundle("propbundle_ContentData", propbundleContentData)
	registerBundle("propbundle_Device", propbundleDevice)
	registerBundle("propbundle_DigitalAccount", propbundleDigitalAccount)
	registerBundle("propbundle_DigitalSignatureInfo", propbundleDigitalSignatureInfo)
	registerBundle("propbundle_Disk", propbundleDisk)
	registerBundle("propbundle_DiskPartition", propbundleDiskPartition)
	registerBundle("propbundle_DomainName", propbundleDomainName)
	registerBundle("propbundle_EXIF", propbundleEXIF)
	registerBundle("propbundle_EmailAccount", propbundleEmailAccount)
	registerBundle("propbundle_EmailAddress", propbundleEmailAddress)
	registerBundle("propbundle_EmailMessage", propbundleEmailMessage)
	registerBundle("propbundle_EncodedStream", propbundleEncodedStream)
	registerBundle("propbundle_EncryptedStream", propbundleEncryptedStream)
	registerBundle("propbundle_EnvironmentVariable", propbundleEnvironmentVariable)
	registerBundle("propbundle_Event", propbundleEvent)
	registerBundle("propbundle_ExtInode", propbundleExtInode)
	registerBundle("propbundle_ExtractedStrings", propbundleExtractedStrings)
	registerBundle("propbundle_File", propbundleFile)
	registerBundle("propbundle_FilePermissions", propbundleFilePermissions)
	registerBundle("propbundle_Filesystem", propbundleFilesystem)
	registerBundle("propbundle_Fragment", propbundleFragment)
	registerBundle("propbundle_GPSCoordinates", propbundleGPSCoordinates)
	registerBundle("propbundle_GeolocationEntry", propbundleGeolocationEntry)
	registerBundle("propbundle_GeolocationLog", propbundleGeolocationLog)
	registerBundle("propbundle_GeolocationTrack", propbundleGeolocationTrack)
	registerBundle("propbundle_HTTPConnection", propbundleHTTPConnection)
	registerBundle("propbundle_ICMPConnection", propbundleICMPConnection)
	registerBundle("propbundle_IPV4Address", propbundleIPV4Address)
	registerBundle("propbundle_IPV6Address", propbundleIPV6Address)
	registerBundle("propbundle_Identity", propbundleIdentity)
	registerBundle("propbundle_Image", propbundleImage)
	registerBundle("propbundle_LatLongCoordinates", propbundleLatLongCoordinates)
	registerBundle("propbundle_Library", propbundleLibrary)
	registerBundle("propbundle_MACAddress", propbundleMACAddress)
	registerBundle("propbundle_MFTRecord", propbundleMFTRecord)
	registerBundle("propbundle_Memory", propbundleMemory)
	registerBundle("propbundle_Message", propbundleMessage)
	registerBundle("propbundle_MessageThread", propbundleMessageThread)
	registerBundle("propbundle_Mutex", propbundleMutex)
	registerBundle("propbundle_NTFSFilePermissions", propbundleNTFSFilePermissions)
	registerBundle("propbundle_NTFSFileSystem", propbundleNTFSFileSystem)
	registerBundle("propbundle_NetworkConnection", propbundleNetworkConnection)
	registerBundle("propbundle_NetworkFlow", propbundleNetworkFlow)
	registerBundle("propbundle_NetworkInterface", propbundleNetworkInterface)
	registerBundle("propbundle_Note", propbundleNote)
	registerBundle("propbundle_OperatingSystem", propbundleOperatingSystem)
	registerBundle("propbundle_PDFFile", propbundlePDFFile)
	registerBundle("propbundle_PathRelation", propbundlePathRelation)
	registerBundle("propbundle_PhoneAccount", propbundlePhoneAccount)
	registerBundle("propbundle_PhoneCall", propbundlePhoneCall)
	registerBundle("propbundle_Process", propbundleProcess)
	registerBundle("propbundle_RasterPicture", propbundleRasterPicture)
	registerBundle("propbundle_SMSMessage", propbundleSMSMessage)
	registerBundle("propbundle_SQLiteBlob", propbundleSQLiteBlob)
	registerBundle("propbundle_SimpleAddress", propbundleSimpleAddress)
	registerBundle("propbundle_Software", propbundleSoftware)
	registerBundle("propbundle_SymbolicLink", propbundleSymbolicLink)
	registerBundle("propbundle_TCPConnection", propbundleTCPConnection)
	registerBundle("propbundle_ToolConfigurationType", propbundleToolConfigurationType)
	registerBundle("propbundle_UNIXAccount", propbundleUNIXAccount)
	registerBundle("propbundle_UNIXFilePermissions", propbundleUNIXFilePermissions)
	registerBundle("propbundle_UNIXProcess", propbundleUNIXProcess)
	registerBundle("propbundle_UNIXVolume", propbundleUNIXVolume)
	registerBundle("propbundle_URL", propbundleURL)
	registerBundle("propbundle_UserAccount", propbundleUserAccount)
	registerBundle("propbundle_UserSession", propbundleUserSession)
	registerBundle("propbundle_Volume", propbundleVolume)
	registerBundle("propbundle_WhoIs", propbundleWhoIs)
	registerBundle("propbundle_WindowsAccount", propbundleWindowsAccount)
	registerBundle("propbundle_WindowsActiveDirectoryAccount", propbundleWindowsActiveDirectoryAccount)
	registerBundle("propbundle_WindowsComputerSpecification", propbundleWindowsComputerSpecification)
	registerBundle("propbundle_WindowsPEBinaryFile", propbundleWindowsPEBinaryFile)
	registerBundle("propbundle_WindowsPrefetch", propbundleWindowsPrefetch)
	registerBundle("propbundle_WindowsProcess", propbundleWindowsProcess)
	registerBundle("propbundle_WindowsRegistryHive", propbundleWindowsRegistryHive)
	registerBundle("propbundle_WindowsRegistryKey", propbundleWindowsRegistryKey)
	registerBundle("propbundle_WindowsService", propbundleWindowsService)
	registerBundle("propbundle_WindowsTask", propbundleWindowsTask)
	registerBundle("propbundle_WindowsThread", propbundleWindowsThread)
	registerBundle("propbundle_WindowsVolume", propbundleWindowsVolume)
	registerBundle("propbundle_WirelessNetworkConnection", propbundleWirelessNetworkConnection)
	registerBundle("propbundle_X509Certificate", propbundleX509Certificate)
}

func registerPropertyBundleSubs() {
	registerChild("propbundle_sub_Address", propbundleSubAddress)
	registerChild("propbundle_sub_Affiliation", propbundleSubAffiliation)
	registerChild("propbundle_sub_BirthInformation", propbundleSubBirthInformation)
	registerChild("propbundle_sub_CountriesOfResidence", propbundleSubCountriesOfResidence)
	registerChild("propbundle_sub_Events", propbundleSubEvents)
	registerChild("propbundle_sub_Identifier", propbundleSubIdentifier)
	registerChild("propbundle_sub_Languages", propbundleSubLanguages)
	registerChild("propbundle_sub_Nationality", propbundleSubNationality)
	registerChild("propbundle_sub_Occupation", propbundleSubOccupation)
	registerChild("propbundle_sub_OrganizationDetails", propbundleSubOrganizationDetails)
	registerChild("propbundle_sub_PersonalDetails", propbundleSubPersonalDetails)
	registerChild("propbundle_sub_Qualification", propbundleSubQualification)
	registerChild("propbundle_sub_Relationship", propbundleSubRelationship)
	registerChild("propbundle_sub_SimpleName", propbundleSubSimpleName)
	registerChild("propbundle_sub_Visa", propbundleSubVisa)
}

func registerDucks() {
	registerDocument("duck_AlternateDataStream", duckAlternateDataStream)
	registerDocument("duck_ArrayOfHash", duckArrayOfHash)
	registerDocument("duck_ArrayOfObject", duckArrayOfObject)
	registerDocument("duck_ArrayOfString", duckArrayOfString)
	registerDocument("duck_BuildConfigurationType", duckBuildConfigurationType)
	registerDocument("duck_BuildInformationType", duckBuildInformationType)
	registerDocument("duck_BuildUtilityType", duckBuildUtilityType)
	registerDocument("duck_CompilerType", duckCompilerType)
	registerDocument("duck_ConfigurationSettingType", duckConfigurationSettingType)
	registerDocument("duck_ControlledDictionary", duckControlledDictionary)
	registerDocument("duck_ControlledDictionaryEntry", duckControlledDictionaryEntry)
	registerDocument("duck_DataRange", duckDataRange)
	registerDocument("duck_DependencyType", duckDependencyType)
	registerDocument("duck_Dictionary", duckDictionary)
	registerDocument("duck_DictionaryEntry", duckDictionaryEntry)
	registerDocument("duck_GlobalFlagType", duckGlobalFlagType)
	registerDocument("duck_GranularMarking", duckGranularMarking)
	registerDocument("duck_Hash", duckHash)
	registerDocument("duck_IComHandlerActionType", duckIComHandlerActionType)
	registerDocument("duck_LibraryType", duckLibraryType)
	registerDocument("duck_MIMEPartType", duckMIMEPartType)
	registerDocument("duck_MarkingModel", duckMarkingModel)
	registerDocument("duck_TaskActionType", duckTaskActionType)
	registerDocument("duck_TriggerType", duckTriggerType)
	registerDocument("duck_WhoIsContactType", duckWhoIsContactType)
	registerDocument("duck_WhoIsRegistrarInfoType", duckWhoIsRegistrarInfoType)
	registerDocument("duck_WindowsPEFileHeader", duckWindowsPEFileHeader)
	registerDocument("duck_WindowsPEOptionalHeader", duckWindowsPEOptionalHeader)
	registerDocument("duck_WindowsPESection", duckWindowsPESection)
	registerDocument("duck_WindowsRegistryValue", duckWindowsRegistryValue)
	registerDocument("duck_X509V3Extensions", duckX509V3Extensions)
}

func registerDuckSubs() {
	registerChild("duck_sub_ArrayOfAction", duckSubArrayOfAction)
}
