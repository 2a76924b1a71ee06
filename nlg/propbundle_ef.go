package nlg

import (
	"github.com/casework/casegraph/graph"
)

// Property bundles, E through F.

func propbundleEmailAccount(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EmailAccount"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	emailAddressRef := c.RequiredRef("email_address_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EmailAccount", graph.Props{
		"EmailAddressRef": emailAddressRef,
	}), nil
}

func propbundleEmailAddress(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EmailAddress"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	value := c.RequiredString("value")
	displayName := c.OptionalString("display_name")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EmailAddress", graph.Props{
		"Value":       value,
		"DisplayName": displayName,
	}), nil
}

func propbundleEmailMessage(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EmailMessage"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isMIMEEncoded := c.RequiredBool("is_mime_encoded")
	isMultipart := c.RequiredBool("is_multipart")
	applicationRef := c.OptionalRef("application_ref", graph.CategoryCore, "Trace")
	bccRefs := c.OptionalRefList("bcc_refs", graph.CategoryCore, "Trace")
	ccRefs := c.OptionalRefList("cc_refs", graph.CategoryCore, "Trace")
	body := c.OptionalString("body")
	bodyMultipart := c.OptionalRefList("body_multipart", graph.CategoryDuck, "MIMEPartType")
	bodyRawRef := c.OptionalRef("body_raw_ref", graph.CategoryCore, "Trace")
	categories := c.OptionalStringList("categories")
	contentDisposition := c.OptionalString("content_disposition")
	contentType := c.OptionalString("content_type")
	fromRef := c.OptionalRef("from_ref", graph.CategoryCore, "Trace")
	toRefs := c.OptionalRefList("to_refs", graph.CategoryCore, "Trace")
	headerRawRef := c.OptionalRef("header_raw_ref", graph.CategoryCore, "Trace")
	inReplyToRefs := c.OptionalRef("in_reply_to_refs", graph.CategoryCore, "Trace")
	isRead := c.OptionalBool("is_read")
	labels := c.OptionalStringList("labels")
	messageIDRef := c.OptionalRef("message_id_ref", graph.CategoryCore, "Trace")
	modifiedTime := c.OptionalTime("modified_time")
	otherHeaders := c.OptionalRef("other_headers", graph.CategoryDuck, "Dictionary")
	priority := c.OptionalString("priority")
	receivedLines := c.OptionalStringList("received_lines")
	receivedTime := c.OptionalTime("received_time")
	references := c.OptionalRefList("references", graph.CategoryCore, "Trace")
	senderRef := c.OptionalRef("sender_ref", graph.CategoryCore, "Trace")
	sentTime := c.OptionalTime("sent_time")
	subject := c.OptionalString("subject")
	xMailer := c.OptionalString("x_mailer")
	xOriginatingIP := c.OptionalRef("x_originating_ip", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EmailMessage", graph.Props{
		"IsMIMEEncoded":      isMIMEEncoded,
		"IsMultipart":        isMultipart,
		"ApplicationRef":     applicationRef,
		"BCCRefs":            bccRefs,
		"CCRefs":             ccRefs,
		"Body":               body,
		"BodyMultipart":      bodyMultipart,
		"BodyRawRef":         bodyRawRef,
		"Categories":         categories,
		"ContentDisposition": contentDisposition,
		"ContentType":        contentType,
		"FromRef":            fromRef,
		"ToRefs":             toRefs,
		"HeaderRawRef":       headerRawRef,
		"InReplyToRefs":      inReplyToRefs,
		"IsRead":             isRead,
		"Labels":             labels,
		"MessageIDRef":       messageIDRef,
		"ModifiedTime":       modifiedTime,
		"OtherHeaders":       otherHeaders,
		"Priority":           priority,
		"ReceivedLines":      receivedLines,
		"ReceivedTime":       receivedTime,
		"References":         references,
		"SenderRef":          senderRef,
		"SentTime":           sentTime,
		"Subject":            subject,
		"xMailer":            xMailer,
		"xOriginatingIP":     xOriginatingIP,
	}), nil
}

func propbundleEncodedStream(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EncodedStream"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	encodingMethod := c.RequiredString("encoding_method")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EncodedStream", graph.Props{
		"EncodingMethod": encodingMethod,
	}), nil
}

func propbundleEncryptedStream(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EncryptedStream"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	encryptionIV := c.Any("encryption_iv")   // HexBinary; no defined check
	encryptionKey := c.Any("encryption_key") // HexBinary; no defined check
	encryptionMethod := c.OptionalRef("encryption_method", graph.CategoryCore, "ControlledVocabulary")
	encryptionMode := c.OptionalRef("encryption_mode", graph.CategoryCore, "ControlledVocabulary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EncryptedStream", graph.Props{
		"EncryptionIV":     encryptionIV,
		"EncryptionKey":    encryptionKey,
		"EncryptionMethod": encryptionMethod,
		"EncryptionMode":   encryptionMode,
	}), nil
}

func propbundleEnvironmentVariable(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EnvironmentVariable"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	name := c.Any("name")   // no defined check
	value := c.Any("value") // no defined check
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EnvironmentVariable", graph.Props{
		"Name":  name,
		"Value": value,
	}), nil
}

func propbundleEvent(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Event"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	applicationRef := c.RequiredRef("application_ref", graph.CategoryCore, "Trace")
	cyberActionRef := c.Any("cyber_action_ref") // CyberAction; no defined check
	categories := c.OptionalStringList("categories")
	computerName := c.OptionalString("computer_name")
	createdTime := c.OptionalTime("created_time")
	eventID := c.OptionalString("event_id")
	eventText := c.OptionalString("event_text")
	eventType := c.OptionalString("event_type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Event", graph.Props{
		"ApplicationRef": applicationRef,
		"CyberActionRef": cyberActionRef,
		"Categories":     categories,
		"ComputerName":   computerName,
		"CreatedTime":    createdTime,
		"EventID":        eventID,
		"EventText":      eventText,
		"EventType":      eventType,
	}), nil
}

func propbundleEXIF(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_EXIF"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	exifData := c.RequiredRefList("exif_data", graph.CategoryDuck, "ControlledDictionary")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("EXIF", graph.Props{
		"EXIFData": exifData,
	}), nil
}

func propbundleExtInode(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ExtInode"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	inodeID := c.OptionalInt("inode_id")
	fileType := c.OptionalInt("file_type")
	deletionTime := c.OptionalTime("deletion_time")
	inodeChangeTime := c.OptionalTime("inode_change_time")
	permissions := c.OptionalInt("permissions")
	sgid := c.OptionalInt("sgid")
	suid := c.OptionalInt("suid")
	flags := c.OptionalInt("flags")
	hardLinkCount := c.OptionalInt("hard_link_count")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("ExtInode", graph.Props{
		"InodeID":         inodeID,
		"FileType":        fileType,
		"DeletionTime":    deletionTime,
		"InodeChangeTime": inodeChangeTime,
		"Permissions":     permissions,
		"SGID":            sgid,
		"SUID":            suid,
		"Flags":           flags,
		"HardLinkCount":   hardLinkCount,
	}), nil
}

func propbundleExtractedStrings(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_ExtractedStrings"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	strings := c.RequiredStringList("strings")
	if err := c.Err(); err != nil {
		return nil, err
	}
	// The published vocabulary files this under ExtInode.
	return owner.CreatePropertyBundle("ExtInode", graph.Props{
		"Strings": strings,
	}), nil
}

func propbundleFile(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_File"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	isDirectory := c.OptionalBoolList("is_directory")
	filename := c.OptionalStringList("filename")
	filepath := c.Any("filepath") // no defined check
	filesystemType := c.OptionalRef("filesystem_type", graph.CategoryCore, "ControlledVocabulary")
	createdTime := c.OptionalTime("created_time")
	modifiedTime := c.OptionalTime("modified_time")
	accessedTime := c.OptionalTime("accessed_time")
	metadataChangeTime := c.OptionalTime("metadata_change_time")
	extension := c.OptionalString("extension")
	sizeInBytes := c.OptionalInt("size_in_bytes")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("File", graph.Props{
		"IsDirectory":        isDirectory,
		"Filename":           filename,
		"Filepath":           filepath,
		"FilesystemType":     filesystemType,
		"CreatedTime":        createdTime,
		"ModifiedTime":       modifiedTime,
		"AccessedTime":       accessedTime,
		"MetadataChangeTime": metadataChangeTime,
		"Extension":          extension,
		"SizeInBytes":        sizeInBytes,
	}), nil
}

func propbundleFilePermissions(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_FilePermissions"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	ownerRef := c.RequiredRef("owner_ref", graph.CategoryCore, "Trace")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("FilePermissions", graph.Props{
		"OwnerRef": ownerRef,
	}), nil
}

func propbundleFilesystem(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Filesystem"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	filesystemType := c.OptionalRef("filesystem_type", graph.CategoryCore, "ControlledVocabulary")
	clusterSize := c.OptionalInt("cluster_size")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Filesystem", graph.Props{
		"FilesystemType": filesystemType,
		"ClusterSize":    clusterSize,
	}), nil
}

func propbundleFragment(owner *graph.Node, p Properties) (*graph.Node, error) {
	const class = "propbundle_Fragment"
	if err := checkOwner(class, owner, graph.CategoryCore); err != nil {
		return nil, err
	}
	c := check(class, p)
	fragmentIndex := c.OptionalIntList("fragment_index")
	totalFragments := c.OptionalIntList("total_fragments")
	if err := c.Err(); err != nil {
		return nil, err
	}
	return owner.CreatePropertyBundle("Fragment", graph.Props{
		"FragmentIndex":  fragmentIndex,
		"TotalFragments": totalFragments,
	}), nil
}
