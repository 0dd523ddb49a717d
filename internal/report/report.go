// Package report renders lexer and parser diagnostics for people and tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"carbide/internal/errors"
)

// Renderer writes the diagnostics of one file to w.
type Renderer interface {
	Render(w io.Writer, f *File, diags errors.Diagnostics) error
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text or json)", s)
}

// Options configures the renderer returned by New.
type Options struct {
	Color        bool
	ContextLines int
}

func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{Color: opts.Color, ContextLines: opts.ContextLines}, nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}

// Summary is the closing line printed after a failed run.
func Summary(name string, n int) string {
	switch n {
	case 0:
		return fmt.Sprintf("%s: no problems found", name)
	case 1:
		return fmt.Sprintf("could not parse %s due to 1 previous error", name)
	}
	return fmt.Sprintf("could not parse %s due to %d previous errors", name, n)
}
