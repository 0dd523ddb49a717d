package token

import "fmt"

// Location is a point in source text.
type Location struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// Start is the location of the first byte of a compilation unit.
var Start = Location{Line: 1, Column: 1}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before reports whether l precedes o in (line, column) order.
func (l Location) Before(o Location) bool {
	if l.Line != o.Line {
		return l.Line < o.Line
	}
	return l.Column < o.Column
}

// Advance returns the location reached after consuming text from l.
// Columns count characters, so a multi-byte rune moves the column by one.
func (l Location) Advance(text string) Location {
	for _, r := range text {
		if r == '\n' {
			l.Line++
			l.Column = 1
		} else {
			l.Column++
		}
	}
	l.Offset += len(text)
	return l
}

// Span is a half-open byte range [Start, End) in source text.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end), clamping end so it never precedes start.
func NewSpan(start, end int) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int { return s.End - s.Start }

// Cover returns the smallest span containing both s and o.
func (s Span) Cover(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// Slice returns the text covered by s, or "" when s falls outside src.
func (s Span) Slice(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
