// Package source models byte-addressed compilation-unit inputs and maps
// byte offsets back to human-readable file:line:column positions.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Source is an immutable byte buffer with a name and a process-stable
// identity. Two Sources are never equal by value; identity is the id field.
type Source struct {
	id       uuid.UUID
	name     string
	text     string
	lineOnce bool
	lines    []int // byte offset of the start of each line; lines[0] == 0
}

// NewSourceFromText builds a Source directly from in-memory text, naming it
// name. Used for standard input and for tests.
func NewSourceFromText(text string, name string) *Source {
	s := &Source{id: uuid.New(), name: name, text: text}
	s.computeLines()
	return s
}

// NewSourceFromFile reads the whole file at path into a Source. The literal
// path "-" is rejected here; callers route "-" to NewSourceFromStandardInput
// before calling this.
func NewSourceFromFile(path string) (*Source, error) {
	if IsStandardInputPath(path) {
		return nil, fmt.Errorf("reading %s: standard input is read by NewSourceFromStandardInput", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return NewSourceFromText(string(data), path), nil
}

// NewSourceFromStandardInput reads all of stdin into a Source named "<stdin>".
func NewSourceFromStandardInput(stdin io.Reader) (*Source, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	return NewSourceFromText(string(data), "<stdin>"), nil
}

// ID returns the Source's process-stable identity.
func (s *Source) ID() uuid.UUID { return s.id }

// Name returns the display name (file path, or "<stdin>").
func (s *Source) Name() string { return s.name }

// Text returns the full source text.
func (s *Source) Text() string { return s.text }

// Len returns the number of bytes in the source.
func (s *Source) Len() int { return len(s.text) }

func (s *Source) computeLines() {
	s.lines = make([]int, 1, 64)
	s.lines[0] = 0
	for i := 0; i < len(s.text); i++ {
		switch s.text[i] {
		case '\n':
			s.lines = append(s.lines, i+1)
		case '\r':
			if i+1 < len(s.text) && s.text[i+1] == '\n' {
				i++
			}
			s.lines = append(s.lines, i+1)
		}
	}
}

// lineColumn finds the 1-based (line, column) of a byte offset. Tabs advance
// the column to the next multiple of 8; multi-byte UTF-8 sequences count one
// column per byte.
func (s *Source) lineColumn(offset int) (line, column int) {
	// binary search for the line containing offset
	lo, hi := 0, len(s.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	lineStart := s.lines[lo]
	column = 1
	for i := lineStart; i < offset && i < len(s.text); i++ {
		if s.text[i] == '\t' {
			column += 8 - ((column - 1) % 8)
		} else {
			column++
		}
	}
	return lo + 1, column
}

// WriteLocation renders offset as "file:line:column".
func (s *Source) WriteLocation(offset int) string {
	line, column := s.lineColumn(offset)
	return fmt.Sprintf("%s:%d:%d", s.name, line, column)
}

// Location is a single point within a Source.
type Location struct {
	Src    *Source
	Offset int
}

// String renders the location as "file:line:column".
func (l Location) String() string {
	if l.Src == nil {
		return "<unknown>"
	}
	return l.Src.WriteLocation(l.Offset)
}

// Line returns the 1-based line number of the location.
func (l Location) Line() int {
	if l.Src == nil {
		return 0
	}
	line, _ := l.Src.lineColumn(l.Offset)
	return line
}

// Column returns the 1-based column number of the location.
func (l Location) Column() int {
	if l.Src == nil {
		return 0
	}
	_, column := l.Src.lineColumn(l.Offset)
	return column
}

// LocationRange is a contiguous byte span within a single Source.
type LocationRange struct {
	Src    *Source
	Offset int
	Size   int
}

// NewLocationRange builds a range spanning [from.Offset, to.Offset) within
// the same Source as from. Both must share a Source.
func NewLocationRange(from, to Location) LocationRange {
	return LocationRange{Src: from.Src, Offset: from.Offset, Size: to.Offset - from.Offset}
}

// Start returns the range's starting Location.
func (r LocationRange) Start() Location { return Location{Src: r.Src, Offset: r.Offset} }

// End returns the range's ending (exclusive) Location.
func (r LocationRange) End() Location {
	return Location{Src: r.Src, Offset: r.Offset + r.Size}
}

// Text returns the source text covered by the range.
func (r LocationRange) Text() string {
	if r.Src == nil {
		return ""
	}
	return r.Src.Text()[r.Offset : r.Offset+r.Size]
}

// Join returns the smallest range enclosing both r and other. Both must
// belong to the same Source.
func (r LocationRange) Join(other LocationRange) LocationRange {
	if r.Src == nil {
		return other
	}
	if other.Src == nil {
		return r
	}
	lo := r.Offset
	if other.Offset < lo {
		lo = other.Offset
	}
	hi := r.Offset + r.Size
	if e := other.Offset + other.Size; e > hi {
		hi = e
	}
	return LocationRange{Src: r.Src, Offset: lo, Size: hi - lo}
}

func (r LocationRange) String() string { return r.Start().String() }

// IsStandardInputPath reports whether path is the special "-" marker used
// by the CLI to mean "read from standard input".
func IsStandardInputPath(path string) bool { return path == "-" }

// TrimTrailingNewline removes a single trailing newline, CR, or CRLF.
func TrimTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}
