package gdocs

import (
	"fmt"
	"slices"
	"unicode/utf16"
)

// StyledSpan records the text a style operation covered when it was applied.
type StyledSpan struct {
	Range     Range
	Text      string
	Paragraph *ParagraphStyle
	TextStyle *TextStyle
}

// Replayed is a document rebuilt from an operation list.
type Replayed struct {
	Text  string
	Spans []StyledSpan
}

// Replay applies ops in order to an empty buffer whose first position is
// FirstIndex. Style ranges are resolved against the buffer as it stands when
// the style operation is reached.
func Replay(ops []Operation) (*Replayed, error) {
	var buf []uint16
	out := &Replayed{}

	for i, op := range ops {
		switch o := op.(type) {
		case InsertText:
			at := o.Index - FirstIndex
			if at < 0 || at > int64(len(buf)) {
				return nil, &ReplayError{Position: i, Message: fmt.Sprintf("insert index %d outside [%d, %d]", o.Index, FirstIndex, int64(len(buf))+FirstIndex)}
			}
			buf = slices.Insert(buf, int(at), utf16.Encode([]rune(o.Text))...)

		case UpdateParagraphStyle:
			text, err := rangeText(buf, o.Range, i)
			if err != nil {
				return nil, err
			}
			style := o.Style
			out.Spans = append(out.Spans, StyledSpan{Range: o.Range, Text: text, Paragraph: &style})

		case UpdateTextStyle:
			text, err := rangeText(buf, o.Range, i)
			if err != nil {
				return nil, err
			}
			style := o.Style
			out.Spans = append(out.Spans, StyledSpan{Range: o.Range, Text: text, TextStyle: &style})

		default:
			return nil, &ReplayError{Position: i, Message: fmt.Sprintf("unknown operation %T", op)}
		}
	}

	out.Text = string(utf16.Decode(buf))
	return out, nil
}

func rangeText(buf []uint16, r Range, position int) (string, error) {
	start, end := r.Start-FirstIndex, r.End-FirstIndex
	if r.Empty() || start < 0 || end > int64(len(buf)) {
		return "", &ReplayError{Position: position, Message: fmt.Sprintf("style range [%d, %d) outside text of length %d", r.Start, r.End, len(buf))}
	}
	return string(utf16.Decode(buf[start:end])), nil
}
