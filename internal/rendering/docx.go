package rendering

import (
	"bytes"
	"io"
	"strings"

	"github.com/jonathan/harvard-cv/internal/cv"
)

// Font and size constants for the Harvard layout (sizes in points).
const (
	headingFont      = "Georgia"
	nameSize         = 22
	contactSize      = 10
	sectionTitleSize = 13
	technologiesSize = 10
	sectionSpaceBef  = 12
	sectionSpaceAft  = 6
	pageMarginInches = 0.75
	separatorWidth   = 80
)

// Alignment is the horizontal alignment of a paragraph
type Alignment string

// Paragraph alignments.
const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
)

// Run is a span of uniformly formatted text. A "\t" inside Text becomes a
// tab character; "\n" becomes a line break.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64 // points; 0 inherits the paragraph default
	Font   string
}

// Paragraph is one block of the DOCX body
type Paragraph struct {
	Runs        []Run
	Align       Alignment
	Bullet      bool
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	// DateTab adds a right-aligned tab stop at the text-area edge.
	DateTab bool
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is the paragraph tree serialized into a .docx package
type Document struct {
	MarginInches float64
	Paragraphs   []Paragraph
}

func (d *Document) add(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

func (d *Document) spacer() {
	d.add(Paragraph{})
}

func (d *Document) bullets(items []string) {
	for _, item := range items {
		d.add(Paragraph{Bullet: true, Runs: []Run{{Text: item}}})
	}
}

// BuildDOCX lays out rec as a Harvard-style paragraph tree.
func BuildDOCX(rec *cv.Record) *Document {
	doc := &Document{MarginInches: pageMarginInches}

	doc.add(Paragraph{
		Align: AlignCenter,
		Runs:  []Run{{Text: rec.Profile.FullName(), Bold: true, Size: nameSize, Font: headingFont}},
	})
	doc.add(Paragraph{
		Align: AlignCenter,
		Runs:  []Run{{Text: strings.Join(rec.ContactParts(), " | "), Size: contactSize}},
	})
	doc.add(Paragraph{Runs: []Run{{Text: strings.Repeat("_", separatorWidth)}}})

	if rec.Profile.Summary != "" {
		doc.add(Paragraph{Runs: []Run{{Text: rec.Profile.Summary}}})
	}

	for _, section := range rec.Sections() {
		doc.add(Paragraph{
			SpaceBefore: sectionSpaceBef,
			SpaceAfter:  sectionSpaceAft,
			Runs:        []Run{{Text: section.Title(), Bold: true, Size: sectionTitleSize, Font: headingFont}},
		})

		if section == cv.SectionSkills {
			for _, line := range rec.SkillLines() {
				doc.add(Paragraph{Runs: []Run{
					{Text: line.Label + ": ", Bold: true},
					{Text: strings.Join(line.Items, ", ")},
				}})
			}
			continue
		}

		for _, entry := range rec.Entries(section) {
			addDOCXEntry(doc, entry)
		}
	}

	return doc
}

func addDOCXEntry(doc *Document, entry cv.Entry) {
	switch e := entry.(type) {
	case cv.EducationEntry:
		doc.add(datedLine(e.Institution, cv.FormatRange(e.StartDate, e.EndDate)))
		subtitle := e.Degree
		if e.Location != "" {
			subtitle += ", " + e.Location
		}
		if subtitle != "" {
			doc.add(Paragraph{Runs: []Run{{Text: subtitle, Italic: true}}})
		}
		doc.bullets(e.Details)
		doc.spacer()

	case cv.ExperienceEntry:
		doc.add(datedLine(e.Company+" — "+e.Role, cv.FormatRange(e.StartDate, e.EndDate)))
		if e.Location != "" {
			doc.add(Paragraph{Runs: []Run{{Text: e.Location, Italic: true}}})
		}
		doc.bullets(e.Bullets)
		doc.spacer()

	case cv.CertificationEntry:
		doc.add(datedLine(e.Name, e.Date))
		issuer := e.Issuer
		if e.CredentialID != "" {
			issuer += ", Credential: " + e.CredentialID
		}
		if issuer != "" {
			doc.add(Paragraph{Runs: []Run{{Text: issuer, Italic: true}}})
		}
		// Certifications are packed without a spacer paragraph.

	case cv.ProjectEntry:
		title := Paragraph{Runs: []Run{{Text: e.Name, Bold: true}}}
		if e.URL != "" {
			title.Runs = append(title.Runs, Run{Text: " (" + e.URL + ")"})
		}
		doc.add(title)
		if e.Impact != "" {
			doc.add(Paragraph{Runs: []Run{{Text: e.Impact}}})
		}
		if len(e.Technologies) > 0 {
			doc.add(Paragraph{Runs: []Run{{
				Text: "Technologies: " + strings.Join(e.Technologies, ", "),
				Size: technologiesSize,
			}}})
		}
		doc.spacer()
	}
}

// datedLine is a bold title run followed by a tab and the date, if any.
func datedLine(title, date string) Paragraph {
	p := Paragraph{DateTab: true, Runs: []Run{{Text: title, Bold: true}}}
	if date != "" {
		p.Runs = append(p.Runs, Run{Text: "\t" + date})
	}
	return p
}

// DOCX renders rec into a complete .docx package.
func DOCX(rec *cv.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := BuildDOCX(rec).WritePackage(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDOCX writes the .docx package for rec to w. The package is built in
// memory first so a failure never leaves a half-written archive behind.
func RenderDOCX(w io.Writer, rec *cv.Record) error {
	data, err := DOCX(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &SerializationError{Part: "output stream", Cause: err}
	}
	return nil
}
