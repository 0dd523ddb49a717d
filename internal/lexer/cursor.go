package lexer

import (
	"strings"
	"unicode/utf8"

	"carbide/internal/token"
)

// Cursor walks UTF-8 source text. Its location is updated incrementally as
// characters are consumed and is never recomputed from the start.
type Cursor struct {
	src  string
	pos  int // index into src
	base token.Location
	loc  token.Location
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) *Cursor {
	return NewCursorAt(src, token.Start)
}

// NewCursorAt returns a cursor over src whose first byte is reported at base.
// Offsets are base.Offset plus the index into src.
func NewCursorAt(src string, base token.Location) *Cursor {
	return &Cursor{src: src, base: base, loc: base}
}

// Peek returns the byte under the cursor, or 0 at end of input.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n int) byte {
	if i := c.pos + n; i < len(c.src) {
		return c.src[i]
	}
	return 0
}

// PeekRune decodes the character under the cursor.
func (c *Cursor) PeekRune() (rune, int) {
	if c.AtEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.src[c.pos:])
}

// Next consumes one character and returns it.
func (c *Cursor) Next() rune {
	r, size := c.PeekRune()
	if size == 0 {
		return 0
	}
	c.pos += size
	c.loc.Offset += size
	if r == '\n' {
		c.loc.Line++
		c.loc.Column = 1
	} else {
		c.loc.Column++
	}
	return r
}

// Match consumes b if it is the next byte.
func (c *Cursor) Match(b byte) bool {
	if c.AtEnd() || c.src[c.pos] != b {
		return false
	}
	c.Next()
	return true
}

func (c *Cursor) HasPrefix(s string) bool { return strings.HasPrefix(c.src[c.pos:], s) }

func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

// Location is the position of the next unconsumed character.
func (c *Cursor) Location() token.Location { return c.loc }

// Offset is the absolute offset of the next unconsumed character.
func (c *Cursor) Offset() int { return c.loc.Offset }

// Slice returns the source between two absolute offsets.
func (c *Cursor) Slice(start, end int) string {
	return c.src[start-c.base.Offset : end-c.base.Offset]
}

// EndOffset is the absolute offset just past the last byte of the source.
func (c *Cursor) EndOffset() int { return c.base.Offset + len(c.src) }
