package lexer

import (
	"strings"

	"carbide/internal/errors"
	"carbide/internal/token"
)

// scanString scans a double-quoted literal. Content containing an unescaped
// '{' becomes an INTERPOLATED_STRING whose parts are split here; the
// interpolated code itself is left raw for the parser.
func (l *Lexer) scanString() (token.Token, *errors.Diagnostic) {
	l.cur.Next()
	content := l.cur.Location()
	interpolated := false

	for {
		if l.cur.AtEnd() {
			d := errors.NewUnclosedString(l.spanFrom(1), l.start, l.cur.EndOffset())
			return token.Token{}, &d
		}
		c := l.cur.Peek()
		if c == '"' {
			break
		}
		if c == '\\' {
			l.cur.Next()
			if !l.cur.AtEnd() {
				l.cur.Next()
			}
			continue
		}
		if c == '{' {
			interpolated = true
		}
		l.cur.Next()
	}

	raw := l.cur.Slice(content.Offset, l.cur.Offset())
	l.cur.Next()

	if !interpolated {
		tok := l.makeToken(token.STRING)
		tok.Str = Unescape(raw)
		return tok, nil
	}

	tok := l.makeToken(token.INTERPOLATED_STRING)
	parts, d := splitInterpolation(raw, content, tok.Span)
	if d != nil {
		return token.Token{}, d
	}
	tok.Parts = parts
	return tok, nil
}

// splitInterpolation breaks raw string content into text and code parts.
// base is the location of raw's first byte. Braces nest by counting.
func splitInterpolation(raw string, base token.Location, str token.Span) ([]token.StringPart, *errors.Diagnostic) {
	var parts []token.StringPart
	text := 0

	flush := func(end int) {
		if end > text {
			parts = append(parts, token.StringPart{
				Kind:   token.TEXT,
				Value:  Unescape(raw[text:end]),
				Offset: base.Offset + text,
				Start:  base.Advance(raw[:text]),
			})
		}
	}

	for i := 0; i < len(raw); {
		switch raw[i] {
		case '\\':
			i += 2
		case '{':
			open := i
			depth := 1
			j := i + 1
			for ; j < len(raw) && depth > 0; j++ {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
			}
			if depth > 0 {
				loc := base.Advance(raw[:open])
				d := errors.NewUnmatchedBrace(token.Span{Start: loc.Offset, End: loc.Offset + 1}, loc, str)
				return nil, &d
			}

			flush(open)
			parts = append(parts, token.StringPart{
				Kind:   token.INTERPOLATION,
				Value:  raw[open+1 : j-1],
				Offset: base.Offset + open + 1,
				Start:  base.Advance(raw[:open+1]),
			})
			i = j
			text = j
		default:
			i++
		}
	}
	flush(len(raw))
	return parts, nil
}

// Unescape decodes \n \t \r \\ \" \' and \0. Any other escape is kept as
// written, backslash included.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
