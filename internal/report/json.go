package report

import (
	"encoding/json"
	"io"

	"carbide/internal/errors"
)

// JSONRenderer writes one object per file with a stable field layout:
//
//	{"file": "main.cb", "diagnostics": [{"code": "E0003", ...}]}
type JSONRenderer struct {
	Indent string
}

type jsonFile struct {
	File        string           `json:"file"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Code     string      `json:"code"`
	Kind     string      `json:"kind"`
	Stage    string      `json:"stage"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Line     int         `json:"line"`
	Column   int         `json:"column"`
	Span     jsonSpan    `json:"span"`
	Labels   []jsonLabel `json:"labels,omitempty"`
	Notes    []string    `json:"notes,omitempty"`
	Help     string      `json:"help,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonLabel struct {
	Span    jsonSpan `json:"span"`
	Message string   `json:"message"`
	Primary bool     `json:"primary"`
}

func (r *JSONRenderer) Render(w io.Writer, f *File, diags errors.Diagnostics) error {
	out := jsonFile{File: f.DisplayName(), Diagnostics: make([]jsonDiagnostic, 0, len(diags))}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, toJSON(d))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	return enc.Encode(out)
}

func toJSON(d errors.Diagnostic) jsonDiagnostic {
	jd := jsonDiagnostic{
		Code:     d.Code().String(),
		Kind:     d.Kind.String(),
		Stage:    d.Stage().String(),
		Severity: "error",
		Message:  d.Message,
		Line:     d.Location.Line,
		Column:   d.Location.Column,
		Span:     jsonSpan{Start: d.Span.Start, End: d.Span.End},
		Notes:    d.Notes,
		Help:     d.Help(),
	}
	for _, l := range d.Labels {
		jd.Labels = append(jd.Labels, jsonLabel{
			Span:    jsonSpan{Start: l.Span.Start, End: l.Span.End},
			Message: l.Message,
			Primary: l.Primary,
		})
	}
	return jd
}
