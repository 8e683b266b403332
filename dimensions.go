package dimensions

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tmc/dimensions/expr"
)

// ErrTooFewNames is returned when fewer than three parameter names are
// given. The last three names always receive row, column and cell values.
var ErrTooFewNames = errors.New("need at least three parameter names")

// Tuple is one parameter set: the values of the fixed leading names
// followed by the row header, column header and cell values.
type Tuple []expr.Value

// Evaluator resolves header and cell text and runs statement groups.
// expr.Interpreter is the default implementation.
type Evaluator interface {
	Eval(src string, ns expr.Namespace) (expr.Value, error)
	Exec(lines []string, ns expr.Namespace) error
}

// Config controls how Expand reads text.
//
// The zero value is not DefaultConfig: it keeps comment lines in tables
// and does not dedent. A nil *Config means DefaultConfig, so to change one
// setting copy DefaultConfig and modify the copy:
//
//	cfg := dimensions.DefaultConfig
//	cfg.Separator = dimensions.Pipe
type Config struct {
	Separator string    // column separator pattern; empty means Spaces
	Comment   string    // table lines starting with this are dropped; empty keeps all
	Dedent    bool      // remove common indentation before splitting into groups
	Evaluator Evaluator // nil means expr.Interpreter

	// Logf, if set, receives one line per group describing how it was handled.
	Logf func(format string, args ...any)
}

// DefaultConfig splits columns on two spaces, drops "#" comment lines in
// tables and dedents the text.
var DefaultConfig = Config{
	Separator: Spaces,
	Comment:   "#",
	Dedent:    true,
	Evaluator: expr.Interpreter{},
}

func (c *Config) separator() string {
	if c.Separator == "" {
		return Spaces
	}
	return c.Separator
}

func (c *Config) evaluator() Evaluator {
	if c.Evaluator == nil {
		return expr.Interpreter{}
	}
	return c.Evaluator
}

func (c *Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// uncommented returns lines without those whose first non-space text is
// the comment marker.
func (c *Config) uncommented(lines []string) []string {
	if c.Comment == "" {
		return lines
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), c.Comment) {
			kept = append(kept, line)
		}
	}
	return kept
}

// ParseNames splits a comma-separated list of parameter names.
func ParseNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Expand turns text into parameter tuples, one per data cell of every
// table in it.
//
// Text is split into groups at blank lines. Table groups are parsed and
// every cell yields a Tuple whose leading values are the namespace values
// of names[:len(names)-3] and whose last three values are the evaluated
// row header, column header and cell. Any other group is executed as
// statements, so later tables see the bindings it makes. Tuples are
// returned in group order, then row-major order within a table.
//
// The seed namespace is copied and never modified. Errors from the
// separator pattern or the evaluator are returned as is.
func Expand(names []string, text string, seed expr.Namespace, cfg *Config) ([]Tuple, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if len(names) < 3 {
		return nil, fmt.Errorf("%w: got %q", ErrTooFewNames, names)
	}
	sep, err := NewSeparator(cfg.separator())
	if err != nil {
		return nil, err
	}
	ev := cfg.evaluator()
	ns := seed.Clone()
	fixed := names[:len(names)-3]

	if cfg.Dedent {
		text = Dedent(text)
	}

	var tuples []Tuple
	group := 0
	for lines := range SplitByBlankLines(text) {
		group++
		if !sep.IsTable(lines) {
			cfg.logf("group %d: executing %d statement line(s)", group, len(lines))
			if err := ev.Exec(lines, ns); err != nil {
				return nil, err
			}
			continue
		}

		m, err := sep.ParseTable(cfg.uncommented(lines))
		if err != nil {
			return nil, err
		}
		before := len(tuples)
		for rec := range m.Cells() {
			t := make(Tuple, 0, len(names))
			for _, name := range fixed {
				v, err := ns.Lookup(name)
				if err != nil {
					return nil, err
				}
				t = append(t, v)
			}
			for _, src := range [...]string{rec.Row, rec.Column, rec.Cell} {
				v, err := ev.Eval(src, ns)
				if err != nil {
					return nil, err
				}
				t = append(t, v)
			}
			tuples = append(tuples, t)
		}
		cfg.logf("group %d: table with %d row(s), %d tuple(s)", group, len(m), len(tuples)-before)
	}
	return tuples, nil
}
