// Package gdocs renders a CV into a Google Docs document through one batch of
// insert and style operations whose indices are tracked by a Cursor.
package gdocs

import "unicode/utf16"

// FirstIndex is where body text starts in a new document; index 0 is reserved.
const FirstIndex int64 = 1

// TextLength is the number of document index positions text occupies.
// Docs indices count UTF-16 code units, not bytes.
func TextLength(text string) int64 {
	var n int64
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += int64(l)
		} else {
			n++ // invalid UTF-8 decodes to U+FFFD, one unit
		}
	}
	return n
}

// Range is a half-open [Start, End) span of document indices.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of positions in r.
func (r Range) Len() int64 {
	return r.End - r.Start
}

// Empty reports whether r covers nothing.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Prefix returns the leading part of r covering text.
func (r Range) Prefix(text string) Range {
	end := r.Start + TextLength(text)
	if end > r.End {
		end = r.End
	}
	return Range{Start: r.Start, End: end}
}

// Cursor is the next insertion index. It only moves forward.
type Cursor struct {
	index int64
}

// NewCursor returns a cursor at FirstIndex.
func NewCursor() *Cursor {
	return &Cursor{index: FirstIndex}
}

// Index returns the current insertion point.
func (c *Cursor) Index() int64 {
	return c.index
}

// Span snapshots the range text will occupy if inserted now.
func (c *Cursor) Span(text string) Range {
	return Range{Start: c.index, End: c.index + TextLength(text)}
}

// Advance moves the cursor past n inserted positions.
func (c *Cursor) Advance(n int64) {
	if n > 0 {
		c.index += n
	}
}
