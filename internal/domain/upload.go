package domain

import "strings"

// PDFContentType is the only declared media type the upload endpoint accepts.
const PDFContentType = "application/pdf"

// DefaultMaxUploadSize is 5 MiB, matching the public API contract.
const DefaultMaxUploadSize = 5 << 20

// FileMeta describes an incoming multipart file before any bytes are kept.
type FileMeta struct {
	Name        string
	Size        int64
	ContentType string
}

// ValidatePDF checks the declared content type and size of an upload.
// maxBytes <= 0 falls back to DefaultMaxUploadSize.
// Only the declared type is checked; the endpoint acknowledges, it does not
// persist, so sniffing buys nothing here.
func ValidatePDF(meta FileMeta, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadSize
	}

	ct := meta.ContentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.ToLower(strings.TrimSpace(ct))

	if ct != PDFContentType {
		return ErrUnsupportedFileType()
	}
	if meta.Size > maxBytes {
		return ErrFileTooLarge()
	}
	return nil
}
