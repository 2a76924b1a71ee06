package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, N through R.

func propbundleNetworkConnection(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_NetworkConnection"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isActive := c.OptionalBool("is_active")
	startTime := c.OptionalTime("start_time")
	endTime := c.OptionalTime("end_time")
	sourceRefs := c.OptionalRefList("source_refs", graph.CategoryCore)
	destinationRefs := c.OptionalRefList("destination_refs", graph.CategoryCore)
	sourcePort := c.OptionalInt("source_port")
	destinationPort := c.OptionalInt("destination_port")
	protocols := c.OptionalRef("protocols", graph.CategoryDuck, "ControlledDictionary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("NetworkConnection", graph.Props{
		"IsActive":        isActive,
		"StartTime":       startTime,
		"EndTime":         endTime,
		"SourceRefs":      sourceRefs,
		"DestinationRefs": destinationRefs,
		"SourcePort":      sourcePort,
		"DestinationPort": destinationPort,
		"Protocols":       protocols,
	}), nil
}

func propbundleNetworkFlow(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_NetworkFlow"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	sourceBytes := c.OptionalInt("source_bytes")
	destinationBytes := c.OptionalInt("destination_bytes")
	sourcePackets := c.OptionalInt("source_packets")
	destinationPackets := c.OptionalInt("destination_packets")
	sourcePayloadRefs := c.OptionalRef("source_payload_refs", graph.CategoryCore, "Trace")
	destinationPayloadRefs := c.OptionalRef("destination_payload_refs", graph.CategoryCore, "Trace")
	ipfix := c.OptionalRef("ipfix", graph.CategoryDuck, "Dictionary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("NetworkFlow", graph.Props{
		"SourceBytes":            sourceBytes,
		"DestinationBytes":       destinationBytes,
		"SourcePackets":          sourcePackets,
		"DestinationPackets":     destinationPackets,
		"SourcePayloadRefs":      sourcePayloadRefs,
		"DestinationPayloadRefs": destinationPayloadRefs,
		"IPFIX":                  ipfix,
	}), nil
}

func propbundleNetworkInterface(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_NetworkInterface"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	adapterName := c.OptionalString("adapter_name")
	dhcpLeaseExpires := c.OptionalTime("dhcp_lease_expires")
	dhcpLeaseObtained := c.OptionalTime("dhcp_lease_obtained")
	dhcpServerRefs := c.OptionalRefList("dhcp_server_refs", graph.CategoryCore, "Trace")
	ipGatewayRefs := c.OptionalRefList("ip_gateway_refs", graph.CategoryCore, "Trace")
	ipRefs := c.OptionalRefList("ip_refs", graph.CategoryCore, "Trace")
	macAddressRef := c.OptionalRef("mac_address_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("NetworkInterface", graph.Props{
		"AdapterName":       adapterName,
		"DHCPLeaseExpires":  dhcpLeaseExpires,
		"DHCPLeaseObtained": dhcpLeaseObtained,
		"DHCPServerRefs":    dhcpServerRefs,
		"IPGatewayRefs":     ipGatewayRefs,
		"IPRefs":            ipRefs,
		"MACAddressRef":     macAddressRef,
	}), nil
}

func propbundleNote(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Note"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	categories := c.OptionalStringList("categories")
	createdTime := c.OptionalTime("created_time")
	modifiedTime := c.OptionalTime("modified_time")
	labels := c.OptionalStringList("labels")
	text := c.OptionalString("text")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Note", graph.Props{
		"ApplicationRef": applicationRef,
		"Categories":     categories,
		"CreatedTime":    createdTime,
		"ModifiedTime":   modifiedTime,
		"Labels":         labels,
		"Text":           text,
	}), nil
}

func propbundleNTFSFilePermissions(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_NTFSFilePermissions"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	// Nothing else to check yet.
	if err := check(class, p).Err(); err != nil {
		return nil, err
	}
	// Singular in the published vocabulary.
	return owner.CreatePropertyBundle("NTFSFilePermission", nil), nil
}

func propbundleNTFSFileSystem(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_NTFSFileSystem"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	sid := c.OptionalString("sid")
	alternateDataStreams := c.OptionalRefList("alternate_data_streams", graph.CategoryDuck, "AlternateDataStream")
	entryID := c.OptionalLong("entry_id")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("NTFSFileSystem", graph.Props{
		"SID":                  sid,
		"AlternateDataStreams": alternateDataStreams,
		"EntryID":              entryID,
	}), nil
}

func propbundleOperatingSystem(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_OperatingSystem"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	manufacturer := c.OptionalString("manufacturer")
	version := c.OptionalString("version")
	bitness := c.OptionalRef("bitness", graph.CategoryDuck, "ControlledDictionary")
	environmentVariables := c.OptionalRef("environment_variables", graph.CategoryDuck, "Dictionary")
	installDate := c.OptionalTime("install_date")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("OperatingSystem", graph.Props{
		"Manufacturer":         manufacturer,
		"Version":              version,
		"Bitness":              bitness,
		"EnvironmentVariables": environmentVariables,
		"InstallDate":          installDate,
	}), nil
}

func propbundlePathRelation(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_PathRelation"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	path := c.RequiredStringList("path")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("PathRelationship", graph.Props{
		"Path": path,
	}), nil
}

func propbundlePDFFile(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_PDFFile"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	version := c.OptionalString("version")
	isOptimized := c.OptionalBool("is_optimized")
	documentInformationDictionary := c.OptionalRef("document_information_dictionary", graph.CategoryDuck, "ControlledDictionary")
	pdfIDZero := c.OptionalStringList("pdf_id_zero")
	pdfIDOne := c.OptionalString("pdf_id_one")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("PDFFile", graph.Props{
		"Version":                       version,
		"IsOptimized":                   isOptimized,
		"DocumentInformationDictionary": documentInformationDictionary,
		"PDFIDZero":                     pdfIDZero,
		"PDFIDOne":                      pdfIDOne,
	}), nil
}

func propbundlePhoneAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_PhoneAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	phoneNumber := c.RequiredString("phone_number")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("PhoneAccount", graph.Props{
		"PhoneNumber": phoneNumber,
	}), nil
}

func propbundlePhoneCall(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_PhoneCall"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	callType := c.OptionalString("call_type")
	duration := c.OptionalLong("duration")
	startTime := c.OptionalTime("start_time")
	endTime := c.OptionalTime("end_time")
	fromRef := c.OptionalRef("from_ref", graph.CategoryCore, "Trace")
	toRef := c.OptionalRef("to_ref", graph.CategoryCore, "Trace")
	participantRefs := c.OptionalRefList("participant_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("PhoneCall", graph.Props{
		"ApplicationRef": applicationRef,
		"CallType":       callType,
		"Duration":       duration,
		"StartTime":      startTime,
		"EndTime":        endTime,
		"FromRef":        fromRef,
		"ToRef":          toRef,
		"ParticipantRef": participantRefs,
	}), nil
}

func propbundleProcess(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Process"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	arguments := c.OptionalStringList("arguments")
	binaryRef := c.OptionalRef("binary_ref", graph.CategoryCore, "Trace")
	createdTime := c.OptionalTime("created_time")
	creatorUserRef := c.OptionalRef("creator_user_ref", graph.CategoryCore, "Trace")
	currentWorkingDirectory := c.OptionalString("current_working_directory")
	environmentVariables := c.OptionalRef("environment_variables", graph.CategoryDuck, "Dictionary")
	exitStatus := c.OptionalLong("exit_status")
	exitTime := c.OptionalTime("exit_time")
	isHidden := c.OptionalBool("is_hidden")
	parentRef := c.OptionalRef("parent_ref", graph.CategoryCore, "Trace")
	pid := c.OptionalInt("pid")
	status := c.OptionalString("status")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Process", graph.Props{
		"Arguments":               arguments,
		"BinaryRef":               binaryRef,
		"CreatedTime":             createdTime,
		"CreatorUserRef":          creatorUserRef,
		"CurrentWorkingDirectory": currentWorkingDirectory,
		"EnvironmentVariables":    environmentVariables,
		"ExitStatus":              exitStatus,
		"ExitTime":                exitTime,
		"IsHidden":                isHidden,
		"ParentRef":               parentRef,
		"PID":                     pid,
		"Status":                  status,
	}), nil
}

func propbundleRasterPicture(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_RasterPicture"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	pictureHeight := c.OptionalInt("picture_height")
	pictureWidth := c.OptionalInt("picture_width")
	bitsPerPixel := c.OptionalInt("bits_per_pixel")
	imageCompressionMethod := c.OptionalString("image_compression_method")
	cameraRef := c.OptionalRef("camera_ref", graph.CategoryCore, "Trace")
	pictureType := c.OptionalString("picture_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("RasterPicture", graph.Props{
		"PictureHeight":          pictureHeight,
		"PictureWidth":           pictureWidth,
		"BitsPerPixel":           bitsPerPixel,
		"ImageCompressionMethod": imageCompressionMethod,
		"CameraRef":              cameraRef,
		"PictureType":            pictureType,
	}), nil
}
