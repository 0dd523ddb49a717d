package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the stable numeric identifier of a diagnostic kind. Codes are used
// in rendered reports and in documentation, so existing values never change.
//
// Code ranges:
// E0000-E0999: Lexer errors
// E1000-E1999: Parser errors
type Code uint16

const (
	// E0000: Lexer error without a more specific code
	ErrorLexer Code = 0

	// E0001: Character outside the ASCII range
	ErrorNonASCIIChar Code = 1

	// E0002: Input ended inside a token
	ErrorLexUnexpectedEOF Code = 2

	// E0003: Character that cannot start a token
	ErrorUnexpectedChar Code = 3

	// E0004: String literal without a closing quote
	ErrorUnclosedString Code = 4

	// E0005: Unbalanced '{' in an interpolated string
	ErrorUnmatchedBrace Code = 5

	// E0006: Malformed numeric literal (integer, float, hex, binary)
	ErrorInvalidNumber Code = 6

	// E0007: Block comment without a closing '*/'
	ErrorUnclosedComment Code = 7
)

const (
	// E1000: Parser error without a more specific code
	ErrorParser Code = 1000

	// E1001: Input ended where more tokens were required
	ErrorParseUnexpectedEOF Code = 1001

	// E1002: Token does not fit the grammar here
	ErrorUnexpectedToken Code = 1002

	// E1010-E1019: Missing syntactic elements
	ErrorExpectedIdentifier Code = 1010
	ErrorExpectedExpression Code = 1011

	// E1020-E1029: Arity limits
	ErrorTooManyParameters Code = 1020
	ErrorTooManyArguments  Code = 1021

	// E1030: Left side of '=' is not assignable
	ErrorInvalidAssignmentTarget Code = 1030

	// E1040-E1049: Statements used outside their context
	ErrorBreakOutsideLoop      Code = 1040
	ErrorContinueOutsideLoop   Code = 1041
	ErrorReturnOutsideFunction Code = 1042

	// E1050: Nesting deeper than the configured limit
	ErrorRecursionLimitExceeded Code = 1050
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

// ParseCode accepts "E0003", "e0003" or "3".
func ParseCode(s string) (Code, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "E"), "e")
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: %w", s, err)
	}
	return Code(n), nil
}

// Description returns a human-readable description of the error code.
func Description(c Code) string {
	switch c {
	case ErrorLexer:
		return "The lexer could not make sense of the input"
	case ErrorNonASCIIChar:
		return "Source text may only contain ASCII characters"
	case ErrorLexUnexpectedEOF:
		return "Input ended in the middle of a token"
	case ErrorUnexpectedChar:
		return "Character cannot start any token"
	case ErrorUnclosedString:
		return "String literal is missing its closing quote"
	case ErrorUnmatchedBrace:
		return "Interpolated string has a '{' without a matching '}'"
	case ErrorInvalidNumber:
		return "Numeric literal is malformed or out of range"
	case ErrorUnclosedComment:
		return "Block comment is missing its closing '*/'"
	case ErrorParser:
		return "The parser could not make sense of the input"
	case ErrorParseUnexpectedEOF:
		return "Input ended before the construct was complete"
	case ErrorUnexpectedToken:
		return "Token is not valid at this position"
	case ErrorExpectedIdentifier:
		return "A name was required here"
	case ErrorExpectedExpression:
		return "A value or expression was required here"
	case ErrorTooManyParameters:
		return "Function declares more parameters than allowed"
	case ErrorTooManyArguments:
		return "Call passes more arguments than allowed"
	case ErrorInvalidAssignmentTarget:
		return "Left side of an assignment cannot be assigned to"
	case ErrorBreakOutsideLoop:
		return "'break' used outside of a loop"
	case ErrorContinueOutsideLoop:
		return "'continue' used outside of a loop"
	case ErrorReturnOutsideFunction:
		return "'return' used outside of a function"
	case ErrorRecursionLimitExceeded:
		return "Expressions or blocks are nested too deeply"
	default:
		return "Unknown error"
	}
}

// Category returns the compiler stage that owns the code.
func Category(c Code) string {
	switch {
	case IsLexer(c):
		return "Lexer"
	case IsParser(c):
		return "Parser"
	default:
		return "Unknown"
	}
}

func IsLexer(c Code) bool  { return c < 1000 }
func IsParser(c Code) bool { return c >= 1000 && c < 2000 }

// Codes lists every assigned code in ascending order.
func Codes() []Code {
	return []Code{
		ErrorLexer, ErrorNonASCIIChar, ErrorLexUnexpectedEOF, ErrorUnexpectedChar,
		ErrorUnclosedString, ErrorUnmatchedBrace, ErrorInvalidNumber, ErrorUnclosedComment,
		ErrorParser, ErrorParseUnexpectedEOF, ErrorUnexpectedToken,
		ErrorExpectedIdentifier, ErrorExpectedExpression,
		ErrorTooManyParameters, ErrorTooManyArguments,
		ErrorInvalidAssignmentTarget,
		ErrorBreakOutsideLoop, ErrorContinueOutsideLoop, ErrorReturnOutsideFunction,
		ErrorRecursionLimitExceeded,
	}
}
