package export

import "strings"

// Format is an output format of the export pipeline.
type Format string

// Supported formats. FormatGDocs is remote and produces no local bytes.
const (
	FormatHTML  Format = "html"
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatGDocs Format = "gdocs"
)

// LocalFormats lists the formats that render to bytes, in export order.
var LocalFormats = []Format{FormatHTML, FormatPDF, FormatDOCX}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatHTML, FormatPDF, FormatDOCX, FormatGDocs:
		return f, nil
	default:
		return "", &UnsupportedFormatError{Format: name}
	}
}

// Extension is the file extension used in the output filename.
func (f Format) Extension() string {
	return string(f)
}

// ContentType is the MIME type of the rendered bytes.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return ""
	}
}

// IsLocal reports whether the format renders to bytes.
func (f Format) IsLocal() bool {
	return f == FormatHTML || f == FormatPDF || f == FormatDOCX
}
