// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/export"
	"github.com/jonathan/harvard-cv/internal/gdocs"
	"github.com/mattn/go-runewidth"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// widthCondition measures box-drawing characters as one column in any locale.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", widthCondition.FillRight(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines by display width
		line = widthCondition.Truncate(line, inner, "...")
		fmt.Fprintf(p.out, "│ %s │\n", widthCondition.FillRight(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs the sections of a normalized record in render order.
func (p *Printer) PrintRecord(rec *cv.Record) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", rec.Profile.FullName()))
	if contact := rec.ContactParts(); len(contact) > 0 {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", strings.Join(contact, " | ")))
	}
	sb.WriteString("\n")

	sections := rec.Sections()
	if len(sections) == 0 {
		sb.WriteString("No sections to render\n")
	}
	for _, section := range sections {
		if section == cv.SectionSkills {
			sb.WriteString(fmt.Sprintf("%s (%d lines)\n", section.Title(), len(rec.SkillLines())))
			continue
		}

		entries := rec.Entries(section)
		sb.WriteString(fmt.Sprintf("%s (%d)\n", section.Title(), len(entries)))
		count := min(len(entries), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", entryLabel(entries[i])))
		}
		if len(entries) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
		}
	}

	p.printBox("NORMALIZED CV", strings.TrimSuffix(sb.String(), "\n"))
}

func entryLabel(entry cv.Entry) string {
	switch e := entry.(type) {
	case cv.EducationEntry:
		return dated(e.Institution, cv.FormatRange(e.StartDate, e.EndDate))
	case cv.ExperienceEntry:
		return dated(e.Company, cv.FormatRange(e.StartDate, e.EndDate))
	case cv.ProjectEntry:
		return e.Name
	case cv.CertificationEntry:
		return dated(e.Name, e.Date)
	default:
		return ""
	}
}

func dated(label, date string) string {
	if date == "" {
		return label
	}
	return label + " (" + date + ")"
}

// PrintOperations outputs a summary of a remote document batch.
func (p *Printer) PrintOperations(ops []gdocs.Operation) {
	if len(ops) == 0 {
		return
	}

	var inserts, paragraphStyles, textStyles int
	var end int64 = gdocs.FirstIndex
	for _, op := range ops {
		switch o := op.(type) {
		case gdocs.InsertText:
			inserts++
			end = o.Index + gdocs.TextLength(o.Text)
		case gdocs.UpdateParagraphStyle:
			paragraphStyles++
		case gdocs.UpdateTextStyle:
			textStyles++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total operations:  %d\n", len(ops)))
	sb.WriteString(fmt.Sprintf("  Inserts:           %d\n", inserts))
	sb.WriteString(fmt.Sprintf("  Paragraph styles:  %d\n", paragraphStyles))
	sb.WriteString(fmt.Sprintf("  Text styles:       %d\n", textStyles))
	sb.WriteString(fmt.Sprintf("Final index:       %d", end))

	p.printBox("DOCUMENT OPERATIONS", sb.String())
}

// PrintArtifacts outputs the rendered files with their sizes.
func (p *Printer) PrintArtifacts(artifacts []*export.Artifact) {
	if len(artifacts) == 0 {
		return
	}

	var sb strings.Builder
	for _, a := range artifacts {
		sb.WriteString(fmt.Sprintf("%-5s %s (%s)\n", a.Format, a.Filename, formatBytes(len(a.Data))))
	}

	p.printBox("RENDERED ARTIFACTS", strings.TrimSuffix(sb.String(), "\n"))
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
