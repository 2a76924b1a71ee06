package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, C through D.

func propbundleCalendar(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Calendar"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	calendarOwner := c.OptionalRef("owner", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Calendar", graph.Props{
		"ApplicationRef": applicationRef,
		"Owner":          calendarOwner,
	}), nil
}

func propbundleCalendarEntry(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_CalendarEntry"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	attendantRefs := c.OptionalRefList("attendant_refs", graph.CategoryCore)
	categories := c.OptionalStringList("categories")
	createdTime := c.OptionalTime("created_time")
	modifiedTime := c.OptionalTime("modified_time")
	duration := c.OptionalTime("duration")
	endTime := c.OptionalTime("end_time")
	startTime := c.OptionalTime("start_time")
	labels := c.OptionalStringList("labels")
	locationRef := c.OptionalRef("location_ref", graph.CategoryCore, "Location")
	ownerRef := c.OptionalRef("owner_ref", graph.CategoryCore, "Identity")
	isPrivate := c.OptionalBool("is_private")
	recurrence := c.OptionalString("recurrence")
	remindTime := c.OptionalTime("remind_time")
	eventStatus := c.OptionalString("event_status")
	subject := c.OptionalString("subject")
	eventType := c.OptionalString("event_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("CalendarEntry", graph.Props{
		"ApplicationRef": applicationRef,
		"AttendantRefs":  attendantRefs,
		"Categories":     categories,
		"CreatedTime":    createdTime,
		"ModifiedTime":   modifiedTime,
		"Duration":       duration,
		"EndTime":        endTime,
		"StartTime":      startTime,
		"Labels":         labels,
		"LocationRef":    locationRef,
		"OwnerRef":       ownerRef,
		"IsPrivate":      isPrivate,
		"Recurrence":     recurrence,
		"RemindTime":     remindTime,
		"EventStatus":    eventStatus,
		"Subject":        subject,
		"EventType":      eventType,
	}), nil
}

func propbundleCompressedStream(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_CompressedStream"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	compressionMethod := c.OptionalString("compression_method")
	compressionRatio := c.OptionalFloat("compression_ratio")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("CompressedStream", graph.Props{
		"CompressionMethod": compressionMethod,
		"CompressionRatio":  compressionRatio,
	}), nil
}

func propbundleComputerSpecification(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ComputerSpecification"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	availableRAM := c.OptionalLong("available_ram")
	biosDate := c.OptionalTime("bios_date")
	biosManufacturer := c.OptionalString("bios_manufacturer")
	biosReleaseDate := c.OptionalTime("bios_release_date")
	biosSerialNumber := c.OptionalString("bios_serial_number")
	biosVersion := c.OptionalString("bios_version")
	currentSystemDate := c.Any("current_system_date") // no defined check
	hostname := c.Any("hostname")                     // no defined check
	localTime := c.OptionalTime("local_time")
	networkInterfaceRefs := c.OptionalRefList("network_interface_refs", graph.CategoryCore, "Trace")
	processorArchitecture := c.OptionalString("processor_architecture")
	cpuFamily := c.OptionalString("cpu_family")
	cpu := c.OptionalString("cpu")
	gpuFamily := c.OptionalString("gpu_family")
	c.OptionalString("gpu") // checked but not materialized
	systemTime := c.OptionalTime("system_time")
	timezoneDST := c.OptionalString("timezone_dst")
	timezoneStandard := c.OptionalString("timezone_standard")
	totalRAM := c.OptionalLong("total_ram")
	uptime := c.OptionalString("uptime")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ComputerSpecification", graph.Props{
		"AvailableRAM":          availableRAM,
		"BIOSDate":              biosDate,
		"BIOSManufacturer":      biosManufacturer,
		"BIOSReleaseDate":       biosReleaseDate,
		"BIOSSerialNumber":      biosSerialNumber,
		"BIOSVersion":           biosVersion,
		"CurrentSystemDate":     currentSystemDate,
		"Hostname":              hostname,
		"LocalTime":             localTime,
		"NetworkInterfaceRefs":  networkInterfaceRefs,
		"ProcessorArchitecture": processorArchitecture,
		"CPUFamily":             cpuFamily,
		"CPU":                   cpu,
		"GPUFamily":             gpuFamily,
		"SystemTime":            systemTime,
		"TimezoneDST":           timezoneDST,
		"TimezoneStandard":      timezoneStandard,
		"TotalRAM":              totalRAM,
		"Uptime":                uptime,
	}), nil
}

func propbundleConfidence(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Confidence"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	value := c.RequiredRef("value", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Confidence", graph.Props{
		"Value": value,
	}), nil
}

func propbundleContact(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Contact"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	contactID := c.OptionalString("contact_id")
	emailAddressRefs := c.OptionalRefList("email_address_refs", graph.CategoryCore, "Trace")
	firstName := c.OptionalString("first_name")
	lastName := c.OptionalString("last_name")
	middleName := c.OptionalString("middle_name")
	contactName := c.OptionalString("contact_name")
	phoneNumbers := c.OptionalStringList("phone_numbers")
	contactType := c.OptionalString("contact_type")
	screenName := c.OptionalString("screen_name")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Contact", graph.Props{
		"ApplicationRef":   applicationRef,
		"ContactID":        contactID,
		"EmailAddressRefs": emailAddressRefs,
		"FirstName":        firstName,
		"LastName":         lastName,
		"MiddleName":       middleName,
		"ContactName":      contactName,
		"PhoneNumbers":     phoneNumbers,
		"ContactType":      contactType,
		"ScreenName":       screenName,
	}), nil
}

func propbundleContentData(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ContentData"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	byteOrder := c.OptionalRef("byte_order", graph.CategoryCore, "ControlledVocabulary")
	mimeClass := c.OptionalString("mime_class")
	mimeType := c.OptionalString("mime_type")
	magicNumber := c.OptionalString("magic_number")
	sizeInBytes := c.OptionalLong("size_in_bytes")
	dataPayload := c.OptionalString("data_payload")
	dataPayloadRefURL := c.OptionalRef("data_payload_ref_url", graph.CategoryCore, "Trace")
	entropy := c.OptionalFloat("entropy")
	hashes := c.OptionalRefList("hashes", graph.CategoryDuck, "Hash")
	isEncrypted := c.OptionalBool("is_encrypted")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ContentData", graph.Props{
		"ByteOrder":         byteOrder,
		"MIMEClass":         mimeClass,
		"MIMEType":          mimeType,
		"MagicNumber":       magicNumber,
		"SizeInBytes":       sizeInBytes,
		"DataPayload":       dataPayload,
		"DataPayloadRefURL": dataPayloadRefURL,
		"Entropy":           entropy,
		"Hashes":            hashes,
		"IsEncrypted":       isEncrypted,
	}), nil
}

func propbundleDevice(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Device"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	deviceType := c.OptionalRef("device_type", graph.CategoryCore, "ControlledVocabulary")
	manufacturer := c.OptionalString("manufacturer")
	model := c.OptionalString("model")
	serialNumber := c.OptionalString("serial_number")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Device", graph.Props{
		"DeviceType":   deviceType,
		"Manufacturer": manufacturer,
		"Model":        model,
		"SerialNumber": serialNumber,
	}), nil
}

func propbundleDigitalAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_DigitalAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	accountLogin := c.OptionalStringList("account_login")
	firstLoginTime := c.OptionalTime("first_login_time")
	lastLoginTime := c.OptionalTime("last_login_time")
	isDisabled := c.OptionalBool("is_disabled")
	displayName := c.OptionalString("display_name")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("DigitalAccount", graph.Props{
		"AccountLogin":   accountLogin,
		"FirstLoginTime": firstLoginTime,
		"LastLoginTime":  lastLoginTime,
		"IsDisabled":     isDisabled,
		"DisplayName":    displayName,
	}), nil
}

func propbundleDigitalSignatureInfo(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_DigitalSignatureInfo"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	signatureExists := c.RequiredBool("signature_exists")
	signatureVerified := c.OptionalBool("signature_verified")
	certificateIssuer := c.OptionalRef("certificate_issuer", graph.CategoryCore, "Identity")
	certificateSubject := c.OptionalRef("certificate_subject", graph.CategoryCore, "Identity")
	signatureDescription := c.OptionalString("signature_description")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("DigitalSignatureInfo", graph.Props{
		"SignatureExists":      signatureExists,
		"SignatureVerified":    signatureVerified,
		"CertificateIssuer":    certificateIssuer,
		"CertificateSubject":   certificateSubject,
		"SignatureDescription": signatureDescription,
	}), nil
}

func propbundleDisk(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Disk"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	diskSize := c.OptionalLong("disk_size")
	diskType := c.OptionalRef("disk_type", graph.CategoryDuck, "ControlledDictionary")
	freeSpace := c.OptionalLong("free_space")
	// PartitionRefs is checked as a single Trace despite the plural name.
	partitionRefs := c.OptionalRef("partition_refs", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Disk", graph.Props{
		"DiskSize":      diskSize,
		"DiskType":      diskType,
		"FreeSpace":     freeSpace,
		"PartitionRefs": partitionRefs,
	}), nil
}

func propbundleDiskPartition(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_DiskPartition"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	mountPoint := c.OptionalString("mount_point")
	partitionID := c.OptionalInt("partition_id")
	partitionLength := c.OptionalLong("partition_length")
	partitionOffset := c.OptionalLong("partition_offset")
	spaceLeft := c.OptionalLong("space_left")
	spaceUsed := c.OptionalLong("space_used")
	totalSpace := c.OptionalLong("total_space")
	diskPartitionType := c.OptionalRef("disk_partition_type", graph.CategoryDuck, "ControlledDictionary")
	createdTime := c.OptionalTime("created_time")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("DiskPartition", graph.Props{
		"MountPoint":        mountPoint,
		"PartitionID":       partitionID,
		"PartitionLength":   partitionLength,
		"PartitionOffset":   partitionOffset,
		"SpaceLeft":         spaceLeft,
		"SpaceUsed":         spaceUsed,
		"TotalSpace":        totalSpace,
		"DiskPartitionType": diskPartitionType,
		"CreatedTime":       createdTime,
	}), nil
}

func propbundleDomainName(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_DomainName"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	value := c.RequiredString("value")
	isTLD := c.OptionalBool("is_tld")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("DomainName", graph.Props{
		"Value": value,
		"IsTLD": isTLD,
	}), nil
}
