package s3cmd

// Payload returns the exact byte sequence dispatched as the request body for the given command. Content carrying
// commands have their payload returned verbatim; the multipart completion document is the only payload which is
// computed rather than copied. Commands without a body return nil.
//
// Extraction is total over the closed command set, there is no error path.
func Payload(command Command) []byte {
	switch cmd := command.(type) {
	case PutObject:
		return cmd.Content
	case UploadPart:
		return cmd.Content
	case PutObjectTagging:
		return cmd.Tags
	case CompleteMultipartUpload:
		return []byte(cmd.Upload.String())
	}

	return nil
}

// ContentTypeOf returns the media type dispatched in the 'Content-Type' header for the given command, empty when the
// command carries no body.
func ContentTypeOf(command Command) string {
	switch cmd := command.(type) {
	case PutObject:
		if cmd.ContentType != "" {
			return cmd.ContentType
		}

		return "application/octet-stream"
	case UploadPart:
		return "application/octet-stream"
	case PutObjectTagging, CompleteMultipartUpload:
		return "application/xml"
	}

	return ""
}
