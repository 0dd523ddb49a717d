// Package lexer turns source text into tokens.
//
// The scanner is a single forward pass over a Cursor. In the default mode
// every malformed region produces one diagnostic and scanning resumes at the
// next character that can start a token. The strict mode stops at the first
// diagnostic and returns it as an error.
package lexer

import (
	"unicode/utf8"

	"carbide/internal/errors"
	"carbide/internal/token"
)

// Result is the output of a recovering lex.
type Result struct {
	Tokens      []token.Token
	Diagnostics errors.Diagnostics
}

func (r Result) HasErrors() bool { return len(r.Diagnostics) > 0 }

// Lexer holds the state of one scan. A Lexer is not reusable.
type Lexer struct {
	cur    *Cursor
	strict bool

	start  token.Location // start of the token being scanned
	tokens []token.Token
	diags  errors.Diagnostics
}

// New creates a recovering lexer over src.
func New(src string) *Lexer {
	return NewAt(src, token.Start)
}

// NewAt creates a recovering lexer whose tokens are positioned as if src
// began at base in some enclosing text.
func NewAt(src string, base token.Location) *Lexer {
	return &Lexer{cur: NewCursorAt(src, base)}
}

// Lex scans src, collecting every diagnostic.
func Lex(src string) Result {
	return New(src).Scan()
}

// LexStrict scans src and fails with the first diagnostic. Partial tokens
// are discarded on failure.
func LexStrict(src string) ([]token.Token, error) {
	return LexStrictAt(src, token.Start)
}

// LexStrictAt is LexStrict for a fragment that begins at base.
func LexStrictAt(src string, base token.Location) ([]token.Token, error) {
	l := NewAt(src, base)
	l.strict = true
	res := l.Scan()
	if err := res.Diagnostics.Err(); err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

// Scan runs the lexer to the end of input.
func (l *Lexer) Scan() Result {
	for {
		l.start = l.cur.Location()
		if d := l.skipTrivia(); d != nil {
			if !l.fail(*d) {
				break
			}
			continue
		}
		if l.cur.AtEnd() {
			break
		}

		l.start = l.cur.Location()
		tok, d := l.scanToken()
		if d != nil {
			if !l.fail(*d) {
				break
			}
			continue
		}
		l.tokens = append(l.tokens, tok)
	}
	return Result{Tokens: l.tokens, Diagnostics: l.diags}
}

// fail records d and resynchronizes. It reports whether scanning continues.
func (l *Lexer) fail(d errors.Diagnostic) bool {
	l.diags = append(l.diags, d)
	if l.strict {
		return false
	}
	l.recover()
	return true
}

// recover guarantees at least one character has been consumed since the
// failed token began, then skips to a character that can start a token.
func (l *Lexer) recover() {
	if l.cur.Offset() == l.start.Offset && !l.cur.AtEnd() {
		l.cur.Next()
	}
	for !l.cur.AtEnd() && !isTokenStart(l.cur.Peek()) {
		l.cur.Next()
	}
}

func (l *Lexer) skipTrivia() *errors.Diagnostic {
	for !l.cur.AtEnd() {
		switch {
		case isWhitespace(l.cur.Peek()):
			l.cur.Next()
		case l.cur.HasPrefix("//"):
			for !l.cur.AtEnd() && l.cur.Peek() != '\n' {
				l.cur.Next()
			}
		case l.cur.HasPrefix("/*"):
			if d := l.skipBlockComment(); d != nil {
				return d
			}
		default:
			return nil
		}
	}
	return nil
}

// skipBlockComment consumes a possibly nested block comment.
func (l *Lexer) skipBlockComment() *errors.Diagnostic {
	start := l.cur.Location()
	l.cur.Next()
	l.cur.Next()

	for depth := 1; depth > 0; {
		switch {
		case l.cur.AtEnd():
			span := token.Span{Start: start.Offset, End: start.Offset + 2}
			d := errors.NewUnclosedComment(span, start, l.cur.EndOffset())
			return &d
		case l.cur.HasPrefix("/*"):
			l.cur.Next()
			l.cur.Next()
			depth++
		case l.cur.HasPrefix("*/"):
			l.cur.Next()
			l.cur.Next()
			depth--
		default:
			l.cur.Next()
		}
	}
	return nil
}

func (l *Lexer) scanToken() (token.Token, *errors.Diagnostic) {
	c := l.cur.Peek()

	switch {
	case c >= utf8.RuneSelf:
		r, size := l.cur.PeekRune()
		l.cur.Next()
		d := errors.NewNonASCIIChar(r, l.spanFrom(size), l.start)
		return token.Token{}, &d
	case isAlpha(c) || c == '_':
		return l.scanIdentifier(), nil
	case c == '"':
		return l.scanString()
	case isDigit(c):
		return l.scanNumber()
	case l.cur.HasPrefix("->"):
		return l.consume(2, token.THIN_ARROW), nil
	case l.cur.HasPrefix("=>"):
		return l.consume(2, token.FAT_ARROW), nil
	case token.IsOperatorStart(c):
		return l.scanOperator()
	case token.IsPunctStart(c):
		kind, _ := token.LookupPunct(c)
		return l.consume(1, kind), nil
	}

	d := errors.NewUnexpectedChar(rune(c), l.spanFrom(1), l.start)
	return token.Token{}, &d
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlphaNumeric(l.cur.Peek()) {
		l.cur.Next()
	}
	tok := l.makeToken(token.IDENTIFIER)
	if kw, ok := token.LookupKeyword(tok.Lexeme); ok {
		tok.Kind = token.KEYWORD
		tok.Keyword = kw
	}
	return tok
}

// scanOperator matches the two-character spelling first, then one character.
func (l *Lexer) scanOperator() (token.Token, *errors.Diagnostic) {
	for _, n := range []int{2, 1} {
		if l.cur.PeekAt(n-1) == 0 {
			continue
		}
		lit := l.peekString(n)
		if op, ok := token.LookupBinary(lit); ok {
			tok := l.consume(n, token.BINARY_OP)
			tok.BinaryOp = op
			return tok, nil
		}
		if op, ok := token.LookupUnary(lit); ok {
			tok := l.consume(n, token.UNARY_OP)
			tok.UnaryOp = op
			return tok, nil
		}
	}

	d := errors.NewUnexpectedChar(rune(l.cur.Peek()), l.spanFrom(1), l.start)
	return token.Token{}, &d
}

func (l *Lexer) peekString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = l.cur.PeekAt(i)
	}
	return string(b)
}

// consume advances n bytes and returns a token of kind covering them.
func (l *Lexer) consume(n int, kind token.Kind) token.Token {
	for i := 0; i < n; i++ {
		l.cur.Next()
	}
	return l.makeToken(kind)
}

// makeToken builds a token from the current token start to the cursor.
func (l *Lexer) makeToken(kind token.Kind) token.Token {
	end := l.cur.Location()
	return token.Token{
		Kind:   kind,
		Span:   token.Span{Start: l.start.Offset, End: end.Offset},
		Start:  l.start,
		End:    end,
		Lexeme: l.cur.Slice(l.start.Offset, end.Offset),
	}
}

// spanFrom returns a span of n bytes starting at the current token start.
func (l *Lexer) spanFrom(n int) token.Span {
	return token.Span{Start: l.start.Offset, End: l.start.Offset + n}
}

// spanToCursor covers the current token start up to the cursor.
func (l *Lexer) spanToCursor() token.Span {
	return token.Span{Start: l.start.Offset, End: l.cur.Offset()}
}

func isTokenStart(c byte) bool {
	return isWhitespace(c) || isAlphaNumeric(c) || c == '/' ||
		token.IsOperatorStart(c) || token.IsPunctStart(c)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
