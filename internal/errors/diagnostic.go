package errors

import (
	stderrors "errors"
	"fmt"

	"carbide/internal/token"
)

// Stage identifies which front-end pass produced a diagnostic.
type Stage int

const (
	StageLexer Stage = iota
	StageParser
)

func (s Stage) String() string {
	if s == StageParser {
		return "parser"
	}
	return "lexer"
}

// Kind enumerates every diagnostic the lexer and parser can produce.
type Kind int

const (
	// Lexer kinds
	NonASCIIChar Kind = iota + 1
	LexUnexpectedEOF
	UnexpectedChar
	InvalidFloatLiteral
	InvalidIntegerLiteral
	InvalidHexLiteral
	InvalidBinaryLiteral
	UnclosedComment
	UnclosedString
	UnmatchedBrace

	// Parser kinds
	ParseUnexpectedEOF
	UnexpectedToken
	ExpectedIdentifier
	ExpectedExpression
	InvalidAssignmentTarget
	TooManyParameters
	TooManyArguments
	BreakOutsideLoop
	ContinueOutsideLoop
	ReturnOutsideFunction
	RecursionLimitExceeded
)

type kindInfo struct {
	name  string
	code  Code
	stage Stage
	help  string
}

var kinds = [...]kindInfo{
	NonASCIIChar:          {"NonASCIIChar", ErrorNonASCIIChar, StageLexer, "Only ASCII characters are allowed"},
	LexUnexpectedEOF:      {"UnexpectedEOF", ErrorLexUnexpectedEOF, StageLexer, ""},
	UnexpectedChar:        {"UnexpectedChar", ErrorUnexpectedChar, StageLexer, "This character is not valid in this context"},
	InvalidFloatLiteral:   {"InvalidFloatLiteral", ErrorInvalidNumber, StageLexer, "Floats can only have one decimal point"},
	InvalidIntegerLiteral: {"InvalidIntegerLiteral", ErrorInvalidNumber, StageLexer, "Integer is invalid"},
	InvalidHexLiteral:     {"InvalidHexLiteral", ErrorInvalidNumber, StageLexer, "Hex literals must have at least one digit"},
	InvalidBinaryLiteral:  {"InvalidBinaryLiteral", ErrorInvalidNumber, StageLexer, "Binary literals must have at least one digit"},
	UnclosedComment:       {"UnclosedComment", ErrorUnclosedComment, StageLexer, "Block comments must be closed with '*/'"},
	UnclosedString:        {"UnclosedString", ErrorUnclosedString, StageLexer, "Strings must be closed with a quote"},
	UnmatchedBrace:        {"UnmatchedBrace", ErrorUnmatchedBrace, StageLexer, "Each '{' needs a matching '}'"},

	ParseUnexpectedEOF:      {"UnexpectedEOF", ErrorParseUnexpectedEOF, StageParser, "Try closing any unclosed parentheses, braces, or quotes."},
	UnexpectedToken:         {"UnexpectedToken", ErrorUnexpectedToken, StageParser, "Check for missing operators, delimiters, or keywords."},
	ExpectedIdentifier:      {"ExpectedIdentifier", ErrorExpectedIdentifier, StageParser, "Identifiers must start with a letter or underscore."},
	ExpectedExpression:      {"ExpectedExpression", ErrorExpectedExpression, StageParser, "You might have forgotten to include a value or expression."},
	InvalidAssignmentTarget: {"InvalidAssignmentTarget", ErrorInvalidAssignmentTarget, StageParser, "Only variables or fields can appear on the left side of an assignment."},
	TooManyParameters:       {"TooManyParameters", ErrorTooManyParameters, StageParser, "Reduce the number of parameters to fit within the allowed limit."},
	TooManyArguments:        {"TooManyArguments", ErrorTooManyArguments, StageParser, "Reduce the number of arguments to match the function signature."},
	BreakOutsideLoop:        {"BreakOutsideLoop", ErrorBreakOutsideLoop, StageParser, "`break` can only appear inside a loop."},
	ContinueOutsideLoop:     {"ContinueOutsideLoop", ErrorContinueOutsideLoop, StageParser, "`continue` can only appear inside a loop."},
	ReturnOutsideFunction:   {"ReturnOutsideFunction", ErrorReturnOutsideFunction, StageParser, "`return` can only appear inside a function."},
	RecursionLimitExceeded:  {"RecursionLimitExceeded", ErrorRecursionLimitExceeded, StageParser, "Split deeply nested expressions into smaller pieces using `let`."},
}

func (k Kind) info() kindInfo {
	if k > 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return kindInfo{name: "Unknown", code: ErrorLexer}
}

func (k Kind) String() string { return k.info().name }

// Code returns the stable code for k.
func (k Kind) Code() Code { return k.info().code }

// Help returns the static remediation text for k, or "" if there is none.
func (k Kind) Help() string { return k.info().help }

func (k Kind) Stage() Stage { return k.info().stage }

// Label attaches a message to a span of the source. The primary label marks
// where the problem is; secondary labels point at related code.
type Label struct {
	Span    token.Span
	Message string
	Primary bool
}

// Diagnostic is an immutable description of one lexical or syntactic error.
// It carries no reference to the lexer or parser that produced it.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Span     token.Span
	Location token.Location
	Labels   []Label
	Notes    []string

	// Kind-specific payload; zero when not applicable.
	Char     rune   // NonASCIIChar, UnexpectedChar
	Literal  string // invalid number literals
	Expected string // UnexpectedToken
	Found    string // UnexpectedToken, ExpectedIdentifier, ExpectedExpression
	Limit    int    // TooManyParameters, TooManyArguments, RecursionLimitExceeded
}

func (d Diagnostic) Code() Code   { return d.Kind.Code() }
func (d Diagnostic) Help() string { return d.Kind.Help() }
func (d Diagnostic) Stage() Stage { return d.Kind.Stage() }

// Error implements error so strict entry points can return a Diagnostic.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("error[%s]: %s", d.Code(), d.Message)
}

// PrimaryLabel returns the primary label, synthesizing one from Span when the
// diagnostic was built without labels.
func (d Diagnostic) PrimaryLabel() Label {
	for _, l := range d.Labels {
		if l.Primary {
			return l
		}
	}
	return Label{Span: d.Span, Primary: true}
}

// SecondaryLabels returns the non-primary labels in insertion order.
func (d Diagnostic) SecondaryLabels() []Label {
	var out []Label
	for _, l := range d.Labels {
		if !l.Primary {
			out = append(out, l)
		}
	}
	return out
}

// AsDiagnostic extracts a Diagnostic from an error chain.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var d Diagnostic
	if stderrors.As(err, &d) {
		return d, true
	}
	var p *Diagnostic
	if stderrors.As(err, &p) && p != nil {
		return *p, true
	}
	return Diagnostic{}, false
}

// Diagnostics is an ordered list of diagnostics from one pass.
type Diagnostics []Diagnostic

// HasKind reports whether any diagnostic has kind k.
func (ds Diagnostics) HasKind(k Kind) bool {
	for _, d := range ds {
		if d.Kind == k {
			return true
		}
	}
	return false
}

// Kinds returns the kind of each diagnostic in order.
func (ds Diagnostics) Kinds() []Kind {
	out := make([]Kind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}

// Err returns the first diagnostic as an error, or nil.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds[0]
}
