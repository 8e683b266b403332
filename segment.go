package dimensions

import (
	"iter"
	"strings"
	"unicode"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitByBlankLines yields the groups of contiguous non-blank lines in
// content. Runs of blank lines separate groups and are never yielded.
// Ranging over the returned sequence again starts over from content.
func SplitByBlankLines(content string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		lines := strings.Split(content, "\n")
		for i := 0; i < len(lines); {
			for i < len(lines) && isBlank(lines[i]) {
				i++
			}
			start := i
			for i < len(lines) && !isBlank(lines[i]) {
				i++
			}
			if start == i {
				return
			}
			if !yield(lines[start:i:i]) {
				return
			}
		}
	}
}

// Dedent removes any common leading whitespace from every line in s.
// Lines consisting solely of whitespace are normalized to empty lines and
// do not take part in computing the common prefix. Tabs and spaces are
// not considered equal.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := ""
	first := true
	for i, line := range lines {
		if isBlank(line) {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
		if first {
			margin, first = indent, false
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
