package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbide/internal/token"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "E0000", ErrorLexer.String())
	assert.Equal(t, "E0003", ErrorUnexpectedChar.String())
	assert.Equal(t, "E1050", ErrorRecursionLimitExceeded.String())
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		input    string
		expected Code
	}{
		{"E0003", ErrorUnexpectedChar},
		{"e1030", ErrorInvalidAssignmentTarget},
		{"7", ErrorUnclosedComment},
	}
	for _, tt := range tests {
		c, err := ParseCode(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, c)
	}

	_, err := ParseCode("EXYZ")
	assert.Error(t, err)
}

func TestCodeRangesAreDisjoint(t *testing.T) {
	for k := NonASCIIChar; k <= RecursionLimitExceeded; k++ {
		switch k.Stage() {
		case StageLexer:
			assert.True(t, IsLexer(k.Code()), k.String())
			assert.Equal(t, "Lexer", Category(k.Code()))
		case StageParser:
			assert.True(t, IsParser(k.Code()), k.String())
			assert.Equal(t, "Parser", Category(k.Code()))
		}
	}
}

func TestEveryCodeHasDescription(t *testing.T) {
	for _, c := range Codes() {
		assert.NotEqual(t, "Unknown error", Description(c), c.String())
	}
	assert.Equal(t, "Unknown error", Description(Code(4242)))
	assert.Equal(t, "Unknown", Category(Code(4242)))
}

func TestKindMetadata(t *testing.T) {
	tests := []struct {
		kind Kind
		code Code
		help string
	}{
		{UnclosedString, ErrorUnclosedString, "Strings must be closed with a quote"},
		{UnclosedComment, ErrorUnclosedComment, "Block comments must be closed with '*/'"},
		{InvalidHexLiteral, ErrorInvalidNumber, "Hex literals must have at least one digit"},
		{ParseUnexpectedEOF, ErrorParseUnexpectedEOF, "Try closing any unclosed parentheses, braces, or quotes."},
		{LexUnexpectedEOF, ErrorLexUnexpectedEOF, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.kind.Code(), tt.kind.String())
		assert.Equal(t, tt.help, tt.kind.Help(), tt.kind.String())
	}
	assert.Equal(t, "UnexpectedEOF", LexUnexpectedEOF.String())
	assert.Equal(t, StageParser, ParseUnexpectedEOF.Stage())
}

func TestBuilder(t *testing.T) {
	span := token.Span{Start: 4, End: 9}
	loc := token.Location{Line: 1, Column: 5, Offset: 4}

	b := New(ExpectedExpression, span, loc).
		Message("Expected expression at [%s]", loc).
		WithLabel(span, "here").
		WithSecondary(token.Span{Start: 0, End: 12}, "in this string").
		WithNote("first").
		WithNote("second")
	d := b.Build()

	assert.Equal(t, "Expected expression at [1:5]", d.Message)
	assert.Equal(t, ErrorExpectedExpression, d.Code())
	assert.Equal(t, span, d.PrimaryLabel().Span)
	require.Len(t, d.SecondaryLabels(), 1)
	assert.Equal(t, "in this string", d.SecondaryLabels()[0].Message)
	assert.Equal(t, []string{"first", "second"}, d.Notes)

	// later builder calls must not leak into an already built diagnostic
	b.WithNote("third")
	assert.Len(t, d.Notes, 2)
}

func TestPrimaryLabelFallback(t *testing.T) {
	d := Diagnostic{Kind: UnexpectedChar, Span: token.Span{Start: 2, End: 3}}
	l := d.PrimaryLabel()
	assert.True(t, l.Primary)
	assert.Equal(t, token.Span{Start: 2, End: 3}, l.Span)
	assert.Empty(t, d.SecondaryLabels())
}

func TestLexerConstructors(t *testing.T) {
	loc := token.Location{Line: 1, Column: 9, Offset: 8}
	d := NewUnexpectedChar('@', token.Span{Start: 8, End: 9}, loc)

	assert.Equal(t, UnexpectedChar, d.Kind)
	assert.Equal(t, '@', d.Char)
	assert.Equal(t, "Unexpected character `@` at [1:9]", d.Message)
	assert.Equal(t, "error[E0003]: Unexpected character `@` at [1:9]", d.Error())
	assert.Equal(t, "Remove '@'", d.PrimaryLabel().Message)

	d = NewUnclosedString(token.Span{Start: 0, End: 1}, token.Start, 6)
	require.Len(t, d.SecondaryLabels(), 1)
	assert.Equal(t, token.Span{Start: 6, End: 6}, d.SecondaryLabels()[0].Span)

	d = NewInvalidHexLiteral("0x", token.Span{Start: 0, End: 2}, token.Start)
	assert.Equal(t, "0x", d.Literal)
	assert.Equal(t, ErrorInvalidNumber, d.Code())
}

func TestParserConstructors(t *testing.T) {
	d := NewUnexpectedToken("';'", "identifier 'y'", token.Span{Start: 3, End: 4}, token.Start)
	assert.Equal(t, "Expected ';', but found identifier 'y'", d.Message)
	assert.Equal(t, "';'", d.Expected)
	assert.Equal(t, "identifier 'y'", d.Found)

	d = NewTooManyArguments(255, token.Span{}, token.Start)
	assert.Equal(t, 255, d.Limit)
	assert.Equal(t, StageParser, d.Stage())
}

func TestAsDiagnostic(t *testing.T) {
	d := NewBreakOutsideLoop(token.Span{Start: 0, End: 5}, token.Start)

	got, ok := AsDiagnostic(fmt.Errorf("parsing: %w", d))
	require.True(t, ok)
	assert.Equal(t, BreakOutsideLoop, got.Kind)

	got, ok = AsDiagnostic(&d)
	require.True(t, ok)
	assert.Equal(t, BreakOutsideLoop, got.Kind)

	_, ok = AsDiagnostic(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestDiagnostics(t *testing.T) {
	var ds Diagnostics
	assert.NoError(t, ds.Err())

	ds = append(ds,
		NewUnexpectedChar('@', token.Span{Start: 0, End: 1}, token.Start),
		NewUnclosedString(token.Span{Start: 2, End: 3}, token.Start, 3),
	)
	assert.True(t, ds.HasKind(UnclosedString))
	assert.False(t, ds.HasKind(UnmatchedBrace))
	assert.Equal(t, []Kind{UnexpectedChar, UnclosedString}, ds.Kinds())
	assert.EqualError(t, ds.Err(), ds[0].Error())
}
