package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, G through M.

func propbundleGeolocationEntry(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_GeolocationEntry"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	createdTime := c.OptionalTime("created_time")
	locationRef := c.OptionalRef("location_ref", graph.CategoryCore, "Location")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("GeolocationEntry", graph.Props{
		"ApplicationRef": applicationRef,
		"CreatedTime":    createdTime,
		"LocationRef":    locationRef,
	}), nil
}

func propbundleGeolocationLog(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_GeolocationLog"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	createdTime := c.OptionalTime("created_time")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("GeolocationLog", graph.Props{
		"ApplicationRef": applicationRef,
		"CreatedTime":    createdTime,
	}), nil
}

func propbundleGeolocationTrack(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_GeolocationTrack"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	startTime := c.OptionalTime("start_time")
	endTime := c.OptionalTime("end_time")
	geolocationEntryRefs := c.OptionalRefList("geolocation_entry_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// Filed under Geolocation in the published vocabulary.
	return owner.CreatePropertyBundle("Geolocation", graph.Props{
		"ApplicationRef":       applicationRef,
		"EndTime":              endTime,
		"GeolocationEntryRefs": geolocationEntryRefs,
		"StartTime":            startTime,
	}), nil
}

func propbundleGPSCoordinates(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_GPSCoordinates"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	hdop := c.OptionalFloat("hdop")
	pdop := c.OptionalFloat("pdop")
	tdop := c.OptionalFloat("tdop")
	vdop := c.OptionalFloat("vdop")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("GPSCoordinates", graph.Props{
		"HDOP": hdop,
		"PDOP": pdop,
		"TDOP": tdop,
		"VDOP": vdop,
	}), nil
}

func propbundleHTTPConnection(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_HTTPConnection"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	requestMethod := c.RequiredString("request_method")
	requestValue := c.RequiredString("request_value")
	c.OptionalString("http_request_header") // checked but not materialized
	httpRequestVersion := c.OptionalString("http_request_version")
	httpMessageBodyLength := c.OptionalInt("http_message_body_length")
	httpMessageBodyDataRef := c.OptionalRef("http_message_body_data_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("HTTPConnection", graph.Props{
		"RequestMethod":          requestMethod,
		"RequestValue":           requestValue,
		"RequestVersion":         httpRequestVersion,
		"HTTPRequestVersion":     httpRequestVersion,
		"HTTPMessageBodyLength":  httpMessageBodyLength,
		"HTTPMessageBodyDataRef": httpMessageBodyDataRef,
	}), nil
}

func propbundleICMPConnection(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ICMPConnection"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	icmpType := c.Any("icmp_type") // HexBinary; no defined check
	icmpCode := c.Any("icmp_code") // HexBinary; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ICMPConnection", graph.Props{
		"ICMPType": icmpType,
		"ICMPCode": icmpCode,
	}), nil
}

func propbundleIdentity(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Identity"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	// Nothing else to check yet.
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Identity", nil), nil
}

func propbundleImage(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Image"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	imageType := c.RequiredString("image_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Image", graph.Props{
		"ImageType": imageType,
	}), nil
}

func propbundleIPV4Address(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_IPV4Address"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	value := c.RequiredString("value")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("IPV4Address", graph.Props{
		"Value": value,
	}), nil
}

func propbundleIPV6Address(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_IPV6Address"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	value := c.RequiredString("value")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("IPV6Address", graph.Props{
		"Value": value,
	}), nil
}

func propbundleLatLongCoordinates(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_LatLongCoordinates"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	latitude := c.OptionalFloat("latitude")
	longitude := c.OptionalFloat("longitude")
	altitude := c.OptionalFloat("altitude")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("LatLongCoordinates", graph.Props{
		"Latitude":  latitude,
		"Longitude": longitude,
		"Altitude":  altitude,
	}), nil
}

func propbundleLibrary(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Library"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	libraryType := c.RequiredRef("library_type", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Library", graph.Props{
		"LibraryType": libraryType,
	}), nil
}

func propbundleMACAddress(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_MACAddress"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	// The vocabulary declares a String here but the published check is
	// for Bool; kept as published.
	value := c.RequiredBool("value")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("MACAddress", graph.Props{
		"Value": value,
	}), nil
}

func propbundleMemory(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Memory"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isInjected := c.RequiredBool("is_injected")
	isMapped := c.RequiredBool("is_mapped")
	isProtected := c.RequiredBool("is_protected")
	isVolatile := c.RequiredBool("is_volatile")
	regionSize := c.Any("region_size")                  // no defined check
	regionStartAddress := c.Any("region_start_address") // HexBinary; no defined check
	regionEndAddress := c.Any("region_end_address")     // HexBinary; no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Memory", graph.Props{
		"IsInjected":         isInjected,
		"IsMapped":           isMapped,
		"IsProtected":        isProtected,
		"IsVolatile":         isVolatile,
		"RegionSize":         regionSize,
		"RegionStartAddress": regionStartAddress,
		"RegionEndAddress":   regionEndAddress,
	}), nil
}

func propbundleMessage(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Message"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	fromRef := c.OptionalRef("from_ref", graph.CategoryCore, "Trace")
	toRefs := c.OptionalRefList("to_refs", graph.CategoryCore, "Trace")
	messageText := c.OptionalString("message_text")
	messageID := c.OptionalString("message_id")
	messageType := c.OptionalString("message_type")
	sessionID := c.OptionalString("session_id")
	sentTime := c.OptionalTime("sent_time")
	participantRefs := c.OptionalRefList("participant_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Message", graph.Props{
		"ApplicationRef":  applicationRef,
		"FromRef":         fromRef,
		"ToRefs":          toRefs,
		"MessageText":     messageText,
		"MessageID":       messageID,
		"MessageType":     messageType,
		"SessionID":       sessionID,
		"SentTime":        sentTime,
		"ParticipantRefs": participantRefs,
	}), nil
}

func propbundleMessageThread(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_MessageThread"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	messageRefs := c.OptionalRefList("message_refs", graph.CategoryDuck, "ArrayOfObject")
	visibility := c.OptionalBool("visibility")
	participantRefs := c.OptionalRefList("participant_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("MessageThread", graph.Props{
		"MessageRefs":     messageRefs,
		"Visibility":      visibility,
		"ParticipantRefs": participantRefs,
	}), nil
}

func propbundleMFTRecord(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_MFTRecord"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	mftFileID := c.OptionalInt("mft_file_id")
	mftParentID := c.OptionalInt("mft_parent_id")
	ntfsHardLinkCount := c.OptionalInt("ntfs_hard_link_count")
	mftRecordChangeTime := c.OptionalTime("mft_record_change_time")
	ntfsOwnerSID := c.OptionalString("ntfs_owner_sid")
	ntfsOwnerID := c.OptionalString("ntfs_owner_id")
	mftFlags := c.OptionalInt("mft_flags")
	mftFilenameCreatedTime := c.OptionalTime("mft_filename_created_time")
	mftFilenameModifiedTime := c.OptionalTime("mft_filename_modified_time")
	mftFilenameAccessedTime := c.OptionalTime("mft_filename_accessed_time")
	mftFilenameRecordChangeTime := c.OptionalTime("mft_filename_record_change_time")
	mftFilenameLength := c.OptionalInt("mft_filename_length")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("MFTRecord", graph.Props{
		"MFTFileID":                   mftFileID,
		"MFTParentID":                 mftParentID,
		"NTFSHardLinkCount":           ntfsHardLinkCount,
		"MFTRecordChangeTime":         mftRecordChangeTime,
		"NTFSOwnerSID":                ntfsOwnerSID,
		"NTFSOwnerID":                 ntfsOwnerID,
		"MFTFlags":                    mftFlags,
		"MFTFileNameCreatedTime":      mftFilenameCreatedTime,
		"MFTFileNameModifiedTime":     mftFilenameModifiedTime,
		"MFTFileNameAccessedTime":     mftFilenameAccessedTime,
		"MFTFileNameRecordChangeTime": mftFilenameRecordChangeTime,
		"MFTFileNameLength":           mftFilenameLength,
	}), nil
}

func propbundleMutex(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Mutex"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isNamed := c.RequiredBool("is_named")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Mutex", graph.Props{
		"IsNamed": isNamed,
	}), nil
}
