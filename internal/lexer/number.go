package lexer

import (
	"strconv"

	"carbide/internal/errors"
	"carbide/internal/token"
)

// scanNumber handles 0x hex, 0b binary, integer and float literals. A second
// '.' ends a float so that it can be lexed as a PERIOD.
func (l *Lexer) scanNumber() (token.Token, *errors.Diagnostic) {
	if l.cur.Peek() == '0' {
		switch l.cur.PeekAt(1) {
		case 'x':
			return l.scanRadix(16, token.HEX, isHexDigit, errors.NewInvalidHexLiteral)
		case 'b':
			return l.scanRadix(2, token.BINARY, isBinaryDigit, errors.NewInvalidBinaryLiteral)
		}
	}

	isFloat := false
	for {
		c := l.cur.Peek()
		if isDigit(c) {
			l.cur.Next()
		} else if c == '.' && !isFloat {
			isFloat = true
			l.cur.Next()
		} else {
			break
		}
	}

	if isFloat {
		tok := l.makeToken(token.FLOAT)
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			d := errors.NewInvalidFloatLiteral(tok.Lexeme, tok.Span, l.start)
			return token.Token{}, &d
		}
		tok.Float = v
		return tok, nil
	}

	tok := l.makeToken(token.INT)
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		d := errors.NewInvalidIntegerLiteral(tok.Lexeme, tok.Span, l.start)
		return token.Token{}, &d
	}
	tok.Int = v
	return tok, nil
}

type literalError func(lit string, span token.Span, loc token.Location) errors.Diagnostic

func (l *Lexer) scanRadix(base int, kind token.Kind, digit func(byte) bool, empty literalError) (token.Token, *errors.Diagnostic) {
	l.cur.Next()
	l.cur.Next()
	digitsStart := l.cur.Offset()
	for digit(l.cur.Peek()) {
		l.cur.Next()
	}

	lit := l.cur.Slice(l.start.Offset, l.cur.Offset())
	if l.cur.Offset() == digitsStart {
		d := empty(lit, l.spanToCursor(), l.start)
		return token.Token{}, &d
	}

	tok := l.makeToken(kind)
	v, err := strconv.ParseInt(lit[2:], base, 64)
	if err != nil {
		d := errors.NewInvalidIntegerLiteral(lit, tok.Span, l.start)
		return token.Token{}, &d
	}
	tok.Int = v
	return tok, nil
}
