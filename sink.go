package dimensions

import (
	"strings"
	"testing"

	"github.com/tmc/dimensions/expr"
)

// Sink receives the parameter names and the expanded tuples.
type Sink interface {
	Parametrize(names []string, values []Tuple) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(names []string, values []Tuple) error

func (f SinkFunc) Parametrize(names []string, values []Tuple) error {
	return f(names, values)
}

// Dimensions expands text with the comma-separated parameter names and
// hands the result to sink in a single call.
func Dimensions(sink Sink, names, text string, seed expr.Namespace, cfg *Config) error {
	argnames := ParseNames(names)
	tuples, err := Expand(argnames, text, seed, cfg)
	if err != nil {
		return err
	}
	return sink.Parametrize(argnames, tuples)
}

// Args gives access to the values of one tuple by parameter name.
type Args struct {
	names  []string
	values Tuple
}

// Get returns the value bound to name, or the zero Value if there is none.
func (a Args) Get(name string) expr.Value {
	for i, n := range a.names {
		if n == name {
			return a.values[i]
		}
	}
	return expr.Value{}
}

func (a Args) Int(name string) int64 { return a.Get(name).AsInt() }

// Float returns the value of name as a float64, converting integers.
func (a Args) Float(name string) float64 {
	v := a.Get(name)
	if v.Kind() == expr.Int {
		return float64(v.AsInt())
	}
	return v.AsFloat()
}

// String returns the text of the value of name.
func (a Args) String(name string) string { return a.Get(name).Text() }

func (a Args) Names() []string { return append([]string(nil), a.names...) }

func (a Args) Values() Tuple { return append(Tuple(nil), a.values...) }

type testSink struct {
	t  *testing.T
	fn func(t *testing.T, args Args)
}

func (s testSink) Parametrize(names []string, values []Tuple) error {
	for _, tuple := range values {
		args := Args{names: names, values: tuple}
		s.t.Run(caseName(names, tuple), func(t *testing.T) {
			s.fn(t, args)
		})
	}
	return nil
}

// caseName names a subtest after its row and column values,
// e.g. "y=10,x=1".
func caseName(names []string, tuple Tuple) string {
	n := len(names)
	return names[n-3] + "=" + tuple[n-3].Text() + "," + names[n-2] + "=" + tuple[n-2].Text()
}

// Run expands text and runs fn as a subtest of t once per tuple.
// Expansion errors fail t immediately.
func Run(t *testing.T, names, text string, seed expr.Namespace, cfg *Config, fn func(t *testing.T, args Args)) {
	t.Helper()
	if err := Dimensions(testSink{t: t, fn: fn}, names, text, seed, cfg); err != nil {
		t.Fatalf("expanding %s: %v", strings.Join(ParseNames(names), ","), err)
	}
}
