package report

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// File is a named source text indexed by line so that byte offsets from
// spans can be turned back into lines and columns.
type File struct {
	Name   string
	Source string
	starts []int // byte offset of the first character of each line
}

func NewFile(name, source string) *File {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &File{Name: name, Source: source, starts: starts}
}

// DisplayName is the name used in locations; unnamed input reads as <input>.
func (f *File) DisplayName() string {
	if f.Name == "" {
		return "<input>"
	}
	return f.Name
}

func (f *File) LineCount() int { return len(f.starts) }

// Line returns line n (1-based) without its line terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.starts) {
		return ""
	}
	start, end := f.starts[n-1], len(f.Source)
	if n < len(f.starts) {
		end = f.starts[n] - 1
	}
	return strings.TrimSuffix(f.Source[start:end], "\r")
}

// Position converts a byte offset into a 1-based line and rune column.
// Offsets outside the source are clamped to it.
func (f *File) Position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(f.Source))
	line = sort.Search(len(f.starts), func(i int) bool { return f.starts[i] > offset })
	return line, utf8.RuneCountInString(f.Source[f.starts[line-1]:offset]) + 1
}
