package extract

import "strings"

// Format is the extraction strategy selected for an upload.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatDOCX        Format = "docx"
	FormatImage       Format = "image"
	FormatJSON        Format = "json"
	FormatUnsupported Format = "unsupported"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeJSON = "application/json"
)

// Detect classifies a declared media type. It is total: anything it does not
// recognise, including "", is FormatUnsupported.
func Detect(mediaType string) Format {
	clean := normalizeMimeType(mediaType)
	switch clean {
	case MimePDF:
		return FormatPDF
	case MimeDOCX:
		return FormatDOCX
	case MimeJSON:
		return FormatJSON
	}
	if sub, ok := strings.CutPrefix(clean, "image/"); ok && sub != "" {
		return FormatImage
	}
	return FormatUnsupported
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
