package errors

import (
	"fmt"

	"carbide/internal/token"
)

// Lexer diagnostic constructors. Each takes the span of the offending text
// and the location where it begins.

func NewNonASCIIChar(c rune, span token.Span, loc token.Location) Diagnostic {
	return New(NonASCIIChar, span, loc).
		Message("Non ASCII char `%c` at [%s]", c, loc).
		WithLabel(span, fmt.Sprintf("Remove '%c'", c)).
		WithChar(c).
		Build()
}

func NewUnexpectedChar(c rune, span token.Span, loc token.Location) Diagnostic {
	return New(UnexpectedChar, span, loc).
		Message("Unexpected character `%c` at [%s]", c, loc).
		WithLabel(span, fmt.Sprintf("Remove '%c'", c)).
		WithChar(c).
		Build()
}

func NewLexUnexpectedEOF(span token.Span, loc token.Location) Diagnostic {
	return New(LexUnexpectedEOF, span, loc).
		Message("Unexpected end of input at [%s]", loc).
		WithLabel(span, "input ends here").
		Build()
}

func NewInvalidHexLiteral(lit string, span token.Span, loc token.Location) Diagnostic {
	return New(InvalidHexLiteral, span, loc).
		Message("Invalid hex literal `%s` at [%s]", lit, loc).
		WithLabel(span, "expected hex digits after '0x'").
		WithLiteral(lit).
		WithNote("Examples: 0xFF, 0x1a2b, 0x0").
		Build()
}

func NewInvalidBinaryLiteral(lit string, span token.Span, loc token.Location) Diagnostic {
	return New(InvalidBinaryLiteral, span, loc).
		Message("Invalid binary literal `%s` at [%s]", lit, loc).
		WithLabel(span, "expected binary digits after '0b'").
		WithLiteral(lit).
		WithNote("Examples: 0b1010, 0b11111111, 0b0").
		Build()
}

func NewInvalidFloatLiteral(lit string, span token.Span, loc token.Location) Diagnostic {
	return New(InvalidFloatLiteral, span, loc).
		Message("Invalid float literal `%s` at [%s]", lit, loc).
		WithLabel(span, "not a valid float").
		WithLiteral(lit).
		WithNote("Valid examples: 3.14, 0.5, 1.0").
		Build()
}

func NewInvalidIntegerLiteral(lit string, span token.Span, loc token.Location) Diagnostic {
	return New(InvalidIntegerLiteral, span, loc).
		Message("Invalid integer literal `%s` at [%s]", lit, loc).
		WithLabel(span, "does not fit in a 64-bit integer").
		WithLiteral(lit).
		Build()
}

// NewUnclosedComment anchors at the opening "/*"; eof is the end of input.
func NewUnclosedComment(span token.Span, loc token.Location, eof int) Diagnostic {
	return New(UnclosedComment, span, loc).
		Message("Unclosed comment at [%s]", loc).
		WithLabel(span, "Block comment starts here").
		WithSecondary(token.Span{Start: eof, End: eof}, "Add '*/' here").
		Build()
}

// NewUnclosedString anchors at the opening quote; eof is the end of input.
func NewUnclosedString(span token.Span, loc token.Location, eof int) Diagnostic {
	return New(UnclosedString, span, loc).
		Message("Unclosed string at [%s]", loc).
		WithLabel(span, "String starts here").
		WithSecondary(token.Span{Start: eof, End: eof}, "Add closing \" here").
		Build()
}

// NewUnmatchedBrace points at the '{' that is never closed.
func NewUnmatchedBrace(span token.Span, loc token.Location, str token.Span) Diagnostic {
	return New(UnmatchedBrace, span, loc).
		Message("Unmatched brace in interpolated string at [%s]", loc).
		WithLabel(span, "this '{' is never closed").
		WithSecondary(str, "in this string").
		WithNote("String interpolation syntax: \"Hello {name}\"").
		Build()
}
