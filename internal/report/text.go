package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"carbide/internal/errors"
)

// TextRenderer formats diagnostics as annotated source snippets:
//
//	error[E0003]: Unexpected character `@` at [1:9]
//	    --> main.cb:1:9
//	    │
//	  1 │ let x = @ 5;
//	    │         ^ Remove '@'
//	    │ help: This character is not valid in this context
type TextRenderer struct {
	Color        bool
	ContextLines int // lines shown above and below the primary line
}

func (r *TextRenderer) Render(w io.Writer, f *File, diags errors.Diagnostics) error {
	for _, d := range diags {
		if _, err := io.WriteString(w, r.Format(f, d)); err != nil {
			return err
		}
	}
	return nil
}

type palette struct {
	level, bold, dim, primary, secondary, note, help func(a ...interface{}) string
}

func (r *TextRenderer) palette() palette {
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if r.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		level:     style(color.FgRed, color.Bold),
		bold:      style(color.Bold),
		dim:       style(color.Faint),
		primary:   style(color.FgRed, color.Bold),
		secondary: style(color.FgBlue, color.Bold),
		note:      style(color.FgBlue),
		help:      style(color.FgGreen),
	}
}

// mark is a label resolved to a line of the file.
type mark struct {
	line, column, width int
	message             string
	primary             bool
}

func resolve(f *File, l errors.Label) mark {
	line, col := f.Position(l.Span.Start)
	endLine, endCol := f.Position(l.Span.End)

	width := endCol - col
	if endLine != line {
		width = utf8.RuneCountInString(f.Line(line)) - col + 1
	}
	return mark{line: line, column: col, width: max(width, 1), message: l.Message, primary: l.Primary}
}

// Format renders a single diagnostic, including a trailing blank line.
func (r *TextRenderer) Format(f *File, d errors.Diagnostic) string {
	p := r.palette()

	primary := d.PrimaryLabel()
	primary.Primary = true
	marks := []mark{resolve(f, primary)}
	for _, l := range d.SecondaryLabels() {
		marks = append(marks, resolve(f, l))
	}

	lines := r.snippetLines(f, marks)
	width := gutterWidth(lines[len(lines)-1])
	indent := strings.Repeat(" ", width)
	bar := p.dim("│")

	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s\n", p.level("error"), d.Code(), d.Message)
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, p.dim("-->"), f.DisplayName(), d.Location.Line, d.Location.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, bar)

	for i, n := range lines {
		if i > 0 && n > lines[i-1]+1 {
			fmt.Fprintf(&b, "%s\n", p.dim("..."))
		}

		onLine := marksOn(marks, n)
		num := fmt.Sprintf("%*d", width, n)
		if len(onLine) > 0 {
			num = p.bold(num)
		} else {
			num = p.dim(num)
		}
		fmt.Fprintf(&b, "%s %s %s\n", num, bar, f.Line(n))

		for _, m := range onLine {
			underline, paint := "-", p.secondary
			if m.primary {
				underline, paint = "^", p.primary
			}
			text := strings.Repeat(underline, m.width)
			if m.message != "" {
				text += " " + m.message
			}
			fmt.Fprintf(&b, "%s %s %s%s\n", indent, bar, strings.Repeat(" ", m.column-1), paint(text))
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, bar, p.note("note:"), note)
	}
	if help := d.Help(); help != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, bar, p.help("help:"), help)
	}

	b.WriteString("\n")
	return b.String()
}

// snippetLines returns the sorted line numbers to print: every labelled
// line plus non-blank context around the primary one.
func (r *TextRenderer) snippetLines(f *File, marks []mark) []int {
	seen := make(map[int]bool)
	for _, m := range marks {
		seen[m.line] = true
	}
	center := marks[0].line
	for i := 1; i <= r.ContextLines; i++ {
		for _, n := range []int{center - i, center + i} {
			if n >= 1 && n <= f.LineCount() && strings.TrimSpace(f.Line(n)) != "" {
				seen[n] = true
			}
		}
	}

	lines := make([]int, 0, len(seen))
	for n := range seen {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// marksOn returns the marks on line n, primary first.
func marksOn(marks []mark, n int) []mark {
	var out []mark
	for _, m := range marks {
		if m.line == n {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].primary && !out[j].primary })
	return out
}

func gutterWidth(line int) int {
	return max(len(fmt.Sprint(line)), 3)
}
