package dimensions

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Common separator patterns.
const (
	Pipe   = `\|`
	Spaces = "  "
)

// Unbounded marks a Span that extends to the end of the line.
const Unbounded = -1

// ErrSpanRange is returned when a column span does not fit its line.
var ErrSpanRange = errors.New("column span out of range")

// sentinels are the candidates for marking skeleton positions where the
// data rows disagree. A Separator uses the first one its pattern does not
// match.
var sentinels = []rune{'\x00', '\uFFFF', 'x'}

// Span is a half-open [Start, End) interval of rune offsets identifying
// one column. End is Unbounded for the last column.
type Span struct {
	Start, End int
}

func (s Span) String() string {
	if s.End == Unbounded {
		return fmt.Sprintf("[%d:]", s.Start)
	}
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Separator is a compiled column separator pattern.
type Separator struct {
	pattern string
	lead    *regexp.Regexp // indentation followed by a separator
	gap     *regexp.Regexp // separator with optional padding
	differs rune           // skeleton marker gap never matches
}

// NewSeparator compiles pattern, a regular expression matching the text
// between two columns. Patterns that can match the empty string are
// rejected since they would split a line at every position, as are
// patterns matching every candidate marker for disagreeing positions.
func NewSeparator(pattern string) (*Separator, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	gap, err := regexp.Compile(` *(?:` + pattern + `) *`)
	if err != nil {
		return nil, err
	}
	if gap.MatchString("") {
		return nil, fmt.Errorf("separator pattern %q matches the empty string", pattern)
	}
	lead, err := regexp.Compile(`^\s+(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	for _, r := range sentinels {
		if !gap.MatchString(string(r)) {
			return &Separator{pattern: pattern, lead: lead, gap: gap, differs: r}, nil
		}
	}
	return nil, fmt.Errorf("separator pattern %q matches any character", pattern)
}

// MustSeparator is like NewSeparator but panics on error.
func MustSeparator(pattern string) *Separator {
	s, err := NewSeparator(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Separator) String() string { return s.pattern }

// IsTable reports whether lines look like a table: the first line starts
// with indentation immediately followed by a separator. That is the shape
// of a header row whose corner cell is empty.
func (s *Separator) IsTable(lines []string) bool {
	return len(lines) > 0 && s.lead.MatchString(lines[0])
}

// Spans infers the column spans of a table. The first line is the header,
// the rest are data rows. A header position counts towards a separator only
// if every data row holds the same rune there, so header text containing
// the separator does not create extra columns.
func (s *Separator) Spans(lines []string) []Span {
	if len(lines) == 0 {
		return nil
	}
	rows := padRunes(lines)
	header, data := rows[0], rows[1:]

	n := utf8.RuneCountInString(strings.TrimRightFunc(lines[0], unicode.IsSpace))
	skeleton := make([]rune, n)
	for pos := 0; pos < n; pos++ {
		if allSame(data, pos, header[pos]) {
			skeleton[pos] = header[pos]
		} else {
			skeleton[pos] = s.differs
		}
	}
	skel := strings.TrimRightFunc(string(skeleton), unicode.IsSpace)

	spans := []Span{{Start: 0}}
	for _, m := range s.gap.FindAllStringIndex(skel, -1) {
		spans[len(spans)-1].End = utf8.RuneCountInString(skel[:m[0]])
		spans = append(spans, Span{Start: utf8.RuneCountInString(skel[:m[1]])})
	}
	spans[len(spans)-1].End = Unbounded
	return spans
}

// ParseTable splits the lines of a table into a Matrix of trimmed cells.
// No lines yields an empty Matrix.
func (s *Separator) ParseTable(lines []string) (Matrix, error) {
	if len(lines) == 0 {
		return Matrix{}, nil
	}
	spans := s.Spans(lines)
	m := make(Matrix, 0, len(lines))
	for _, row := range padRunes(lines) {
		cells, err := PickColumns(string(row), spans)
		if err != nil {
			return nil, err
		}
		m = append(m, cells)
	}
	return m, nil
}

// IsTable compiles pattern and reports whether lines look like a table.
func IsTable(lines []string, pattern string) (bool, error) {
	s, err := NewSeparator(pattern)
	if err != nil {
		return false, err
	}
	return s.IsTable(lines), nil
}

// ParseTable compiles pattern and parses lines as a table.
func ParseTable(lines []string, pattern string) (Matrix, error) {
	s, err := NewSeparator(pattern)
	if err != nil {
		return nil, err
	}
	return s.ParseTable(lines)
}

// PickColumns returns the trimmed text of line within each span.
func PickColumns(line string, spans []Span) ([]string, error) {
	runes := []rune(line)
	cells := make([]string, 0, len(spans))
	for _, sp := range spans {
		end := sp.End
		if end == Unbounded {
			end = len(runes)
		}
		if sp.Start < 0 || sp.Start > end || end > len(runes) {
			return nil, fmt.Errorf("%w: %v in line of length %d", ErrSpanRange, sp, len(runes))
		}
		cells = append(cells, strings.TrimSpace(string(runes[sp.Start:end])))
	}
	return cells, nil
}

// padRunes right-pads every line with spaces to the rune length of the
// longest one.
func padRunes(lines []string) [][]rune {
	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}
	return rows
}

func allSame(rows [][]rune, pos int, r rune) bool {
	for _, row := range rows {
		if row[pos] != r {
			return false
		}
	}
	return true
}
