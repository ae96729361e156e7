package gdocs

import (
	"strings"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/mattn/go-runewidth"
)

// DefaultLineWidth is the column width used to right-align dates and to
// size section rules.
const DefaultLineWidth = 80

// Font sizes in points.
const (
	nameFontSize    = 24
	sectionFontSize = 13
)

// widthCondition pins East Asian ambiguous characters (such as the en-dash)
// to one column regardless of the process locale.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

const (
	contactSeparator = " • "
	ruleChar         = "─"
	bulletPrefix     = "  • "
)

// Builder appends operations against a Cursor. Every insert happens at the
// cursor, and every style range is captured from the cursor before the
// insert that advances past it, so ranges never point at shifted text.
type Builder struct {
	cursor    *Cursor
	ops       []Operation
	lineWidth int
}

// NewBuilder returns an empty Builder; lineWidth <= 0 uses DefaultLineWidth.
func NewBuilder(lineWidth int) *Builder {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	return &Builder{cursor: NewCursor(), lineWidth: lineWidth}
}

// Operations returns the operations appended so far.
func (b *Builder) Operations() []Operation {
	return b.ops
}

// Cursor exposes the current insertion index.
func (b *Builder) Cursor() int64 {
	return b.cursor.Index()
}

// Insert appends text at the cursor and returns the range it occupies.
func (b *Builder) Insert(text string) Range {
	if text == "" {
		return Range{Start: b.cursor.Index(), End: b.cursor.Index()}
	}
	span := b.cursor.Span(text)
	b.ops = append(b.ops, InsertText{Index: span.Start, Text: text})
	b.cursor.Advance(span.Len())
	return span
}

// InsertLine inserts text followed by a newline and returns the range of
// text alone, so styles never cover the paragraph break.
func (b *Builder) InsertLine(text string) Range {
	span := b.Insert(text + "\n")
	return Range{Start: span.Start, End: span.End - 1}
}

// StyleText appends a text style over r. Empty ranges are skipped.
func (b *Builder) StyleText(r Range, style TextStyle) {
	if r.Empty() || style.Fields() == "" {
		return
	}
	b.ops = append(b.ops, UpdateTextStyle{Range: r, Style: style})
}

// StyleParagraph appends a paragraph style over r. Empty ranges are skipped.
func (b *Builder) StyleParagraph(r Range, style ParagraphStyle) {
	if r.Empty() || style.Fields() == "" {
		return
	}
	b.ops = append(b.ops, UpdateParagraphStyle{Range: r, Style: style})
}

// BuildOperations lays out rec as an ordered operation list.
func BuildOperations(rec *cv.Record, lineWidth int) []Operation {
	b := NewBuilder(lineWidth)

	name := b.InsertLine(rec.Profile.FullName())
	b.StyleParagraph(name, ParagraphStyle{NamedStyleType: StyleHeading1, Alignment: AlignmentCenter})
	b.StyleText(name, TextStyle{Bold: true, FontSizePt: nameFontSize})

	if contact := rec.RemoteContactParts(); len(contact) > 0 {
		line := b.InsertLine(strings.Join(contact, contactSeparator))
		b.StyleParagraph(line, ParagraphStyle{Alignment: AlignmentCenter})
	}

	b.Insert("\n")

	if rec.Profile.Summary != "" {
		b.Insert(rec.Profile.Summary + "\n\n")
	}

	for _, section := range rec.Sections() {
		b.section(rec, section)
	}

	return b.ops
}

func (b *Builder) section(rec *cv.Record, section cv.Section) {
	title := b.InsertLine(section.Title())
	b.StyleText(title, TextStyle{Bold: true, FontSizePt: sectionFontSize})
	b.InsertLine(strings.Repeat(ruleChar, b.lineWidth))

	if section == cv.SectionSkills {
		for _, line := range rec.SkillLines() {
			label := line.Label + ": "
			span := b.InsertLine(label + strings.Join(line.Items, ", "))
			b.StyleText(span.Prefix(label), TextStyle{Bold: true})
		}
	} else {
		for _, entry := range rec.Entries(section) {
			b.entry(entry)
		}
	}

	b.Insert("\n")
}

func (b *Builder) entry(entry cv.Entry) {
	switch e := entry.(type) {
	case cv.EducationEntry:
		header := b.InsertLine(b.padded(joinNonEmpty(e.Institution, e.Location), cv.FormatRange(e.StartDate, e.EndDate)))
		b.StyleText(header.Prefix(e.Institution), TextStyle{Bold: true})
		if e.Degree != "" {
			b.StyleText(b.InsertLine(e.Degree), TextStyle{Italic: true})
		}

	case cv.ExperienceEntry:
		header := b.InsertLine(b.padded(joinNonEmpty(e.Company, e.Location), cv.FormatRange(e.StartDate, e.EndDate)))
		b.StyleText(header.Prefix(e.Company), TextStyle{Bold: true})
		if e.Role != "" {
			b.StyleText(b.InsertLine(e.Role), TextStyle{Italic: true})
		}
		for _, bullet := range e.Bullets {
			b.InsertLine(bulletPrefix + bullet)
		}

	case cv.ProjectEntry:
		b.StyleText(b.InsertLine(e.Name), TextStyle{Bold: true})
		if e.Impact != "" {
			b.InsertLine(e.Impact)
		}
		if len(e.Technologies) > 0 {
			b.InsertLine("Technologies: " + strings.Join(e.Technologies, ", "))
		}

	case cv.CertificationEntry:
		text := joinNonEmpty(e.Name, e.Issuer)
		if e.Date != "" {
			text += " (" + e.Date + ")"
		}
		line := b.InsertLine(text)
		b.StyleText(line.Prefix(e.Name), TextStyle{Bold: true})
	}

	b.Insert("\n")
}

// padded right-aligns date against the line width. Width is measured in
// terminal display columns, so accented and wide characters pad correctly.
// Undated lines are padded to the full width. Overlong lines keep a single
// space before the date.
func (b *Builder) padded(left, date string) string {
	gap := b.lineWidth - widthCondition.StringWidth(left) - widthCondition.StringWidth(date)
	if date == "" {
		return left + strings.Repeat(" ", max(gap, 0))
	}
	return left + strings.Repeat(" ", max(gap, 1)) + date
}

// joinNonEmpty returns "head — tail", or head alone when tail is empty.
func joinNonEmpty(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " — " + tail
}
