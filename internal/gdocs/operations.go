package gdocs

import "strings"

// Named paragraph styles and alignments understood by the Docs API.
const (
	StyleHeading1   = "HEADING_1"
	AlignmentCenter = "CENTER"
)

// Operation is one entry of a batch. The concrete type is InsertText,
// UpdateParagraphStyle or UpdateTextStyle.
type Operation interface {
	operation()
}

// InsertText inserts Text so that its first character lands at Index.
type InsertText struct {
	Index int64
	Text  string
}

// ParagraphStyle holds the paragraph properties the renderer sets
type ParagraphStyle struct {
	NamedStyleType string
	Alignment      string
}

// Fields returns the update mask for the non-zero properties.
func (s ParagraphStyle) Fields() string {
	var fields []string
	if s.NamedStyleType != "" {
		fields = append(fields, "namedStyleType")
	}
	if s.Alignment != "" {
		fields = append(fields, "alignment")
	}
	return strings.Join(fields, ",")
}

// UpdateParagraphStyle applies Style to every paragraph overlapping Range.
type UpdateParagraphStyle struct {
	Range Range
	Style ParagraphStyle
}

// TextStyle holds the character properties the renderer sets
type TextStyle struct {
	Bold       bool
	Italic     bool
	FontSizePt float64
}

// Fields returns the update mask for the non-zero properties.
func (s TextStyle) Fields() string {
	var fields []string
	if s.Bold {
		fields = append(fields, "bold")
	}
	if s.Italic {
		fields = append(fields, "italic")
	}
	if s.FontSizePt > 0 {
		fields = append(fields, "fontSize")
	}
	return strings.Join(fields, ",")
}

// UpdateTextStyle applies Style to the characters in Range.
type UpdateTextStyle struct {
	Range Range
	Style TextStyle
}

func (InsertText) operation()           {}
func (UpdateParagraphStyle) operation() {}
func (UpdateTextStyle) operation()      {}
