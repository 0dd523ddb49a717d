package errors

import (
	"fmt"

	"carbide/internal/token"
)

// Builder provides a fluent interface for assembling diagnostics.
type Builder struct {
	d Diagnostic
}

// New starts a diagnostic of kind k whose primary span is span, beginning at loc.
func New(k Kind, span token.Span, loc token.Location) *Builder {
	return &Builder{d: Diagnostic{Kind: k, Span: span, Location: loc}}
}

// Message sets the human-readable message.
func (b *Builder) Message(format string, args ...any) *Builder {
	b.d.Message = fmt.Sprintf(format, args...)
	return b
}

// WithLabel adds the primary label. The diagnostic's span is updated to match.
func (b *Builder) WithLabel(span token.Span, message string) *Builder {
	b.d.Span = span
	b.d.Labels = append(b.d.Labels, Label{Span: span, Message: message, Primary: true})
	return b
}

// WithSecondary adds a label pointing at related source.
func (b *Builder) WithSecondary(span token.Span, message string) *Builder {
	b.d.Labels = append(b.d.Labels, Label{Span: span, Message: message})
	return b
}

// WithNote adds a note to the diagnostic
func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *Builder) WithChar(c rune) *Builder {
	b.d.Char = c
	return b
}

func (b *Builder) WithLiteral(lit string) *Builder {
	b.d.Literal = lit
	return b
}

func (b *Builder) WithExpected(expected, found string) *Builder {
	b.d.Expected = expected
	b.d.Found = found
	return b
}

func (b *Builder) WithFound(found string) *Builder {
	b.d.Found = found
	return b
}

func (b *Builder) WithLimit(limit int) *Builder {
	b.d.Limit = limit
	return b
}

// Build returns the completed diagnostic
func (b *Builder) Build() Diagnostic {
	d := b.d
	d.Labels = append([]Label(nil), b.d.Labels...)
	d.Notes = append([]string(nil), b.d.Notes...)
	return d
}
