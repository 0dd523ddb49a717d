package errors

import (
	"carbide/internal/token"
)

// Parser diagnostic constructors

func NewParseUnexpectedEOF(expected string, span token.Span, loc token.Location) Diagnostic {
	return New(ParseUnexpectedEOF, span, loc).
		Message("Unexpected end of input, expected %s", expected).
		WithLabel(span, "expected "+expected).
		WithExpected(expected, "end of input").
		Build()
}

func NewUnexpectedToken(expected, found string, span token.Span, loc token.Location) Diagnostic {
	return New(UnexpectedToken, span, loc).
		Message("Expected %s, but found %s", expected, found).
		WithLabel(span, "expected "+expected).
		WithExpected(expected, found).
		Build()
}

func NewExpectedIdentifier(found string, span token.Span, loc token.Location) Diagnostic {
	return New(ExpectedIdentifier, span, loc).
		Message("Expected identifier, but found %s at [%s]", found, loc).
		WithLabel(span, "expected a name here").
		WithFound(found).
		Build()
}

func NewExpectedExpression(found string, span token.Span, loc token.Location) Diagnostic {
	return New(ExpectedExpression, span, loc).
		Message("Expected expression at [%s]", loc).
		WithLabel(span, "found "+found).
		WithFound(found).
		Build()
}

func NewInvalidAssignmentTarget(span token.Span, loc token.Location) Diagnostic {
	return New(InvalidAssignmentTarget, span, loc).
		Message("Invalid assignment target at [%s]", loc).
		WithLabel(span, "cannot assign to this expression").
		Build()
}

func NewTooManyParameters(limit int, span token.Span, loc token.Location) Diagnostic {
	return New(TooManyParameters, span, loc).
		Message("Too many parameters at [%s], the limit is %d", loc, limit).
		WithLabel(span, "parameter over the limit").
		WithLimit(limit).
		Build()
}

func NewTooManyArguments(limit int, span token.Span, loc token.Location) Diagnostic {
	return New(TooManyArguments, span, loc).
		Message("Too many arguments at [%s], the limit is %d", loc, limit).
		WithLabel(span, "argument over the limit").
		WithLimit(limit).
		Build()
}

func NewBreakOutsideLoop(span token.Span, loc token.Location) Diagnostic {
	return New(BreakOutsideLoop, span, loc).
		Message("`break` outside of a loop at [%s]", loc).
		WithLabel(span, "cannot `break` here").
		Build()
}

func NewContinueOutsideLoop(span token.Span, loc token.Location) Diagnostic {
	return New(ContinueOutsideLoop, span, loc).
		Message("`continue` outside of a loop at [%s]", loc).
		WithLabel(span, "cannot `continue` here").
		Build()
}

func NewReturnOutsideFunction(span token.Span, loc token.Location) Diagnostic {
	return New(ReturnOutsideFunction, span, loc).
		Message("`return` outside of a function at [%s]", loc).
		WithLabel(span, "cannot `return` here").
		Build()
}

func NewRecursionLimitExceeded(limit int, span token.Span, loc token.Location) Diagnostic {
	return New(RecursionLimitExceeded, span, loc).
		Message("Nesting depth exceeds the limit of %d at [%s]", limit, loc).
		WithLabel(span, "nested too deeply").
		WithLimit(limit).
		Build()
}
