package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"carbide/internal/errors"
	"carbide/internal/report"
	"carbide/internal/token"
)

// ConvertDiagnostics turns lexer and parser diagnostics into LSP
// diagnostics. The result is never nil so that publishing it clears
// diagnostics the editor already shows.
func ConvertDiagnostics(f *report.File, uri protocol.DocumentUri, diags errors.Diagnostics) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, convert(f, uri, d))
	}
	return out
}

func convert(f *report.File, uri protocol.DocumentUri, d errors.Diagnostic) protocol.Diagnostic {
	message := d.Message
	if help := d.Help(); help != "" {
		message += "\n" + help
	}

	pd := protocol.Diagnostic{
		Range:    spanRange(f, d.PrimaryLabel().Span),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: d.Code().String()},
		Source:   ptrString("carbide-" + d.Stage().String()),
		Message:  message,
	}

	for _, l := range d.SecondaryLabels() {
		pd.RelatedInformation = append(pd.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{URI: uri, Range: spanRange(f, l.Span)},
			Message:  l.Message,
		})
	}
	for _, note := range d.Notes {
		pd.Message += "\nnote: " + note
	}
	return pd
}

// spanRange converts a byte span to a 0-based LSP range. Empty spans are
// widened to one character so editors have something to underline.
func spanRange(f *report.File, span token.Span) protocol.Range {
	startLine, startCol := f.Position(span.Start)
	endLine, endCol := f.Position(span.End)
	if span.Len() == 0 {
		endLine, endCol = startLine, startCol+1
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(startLine - 1), Character: uint32(startCol - 1)},
		End:   protocol.Position{Line: uint32(endLine - 1), Character: uint32(endCol - 1)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
