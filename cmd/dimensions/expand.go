package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/tmc/dimensions"
	"github.com/tmc/dimensions/expr"
	"github.com/tmc/dimensions/gogen"
	"github.com/tmc/dimensions/internal/render"
	"golang.org/x/tools/txtar"
)

type options struct {
	names  []string
	cfg    dimensions.Config
	seed   expr.Namespace
	format string // one of render.Formats or "go"
	gen    gogen.Generator
}

func (o *options) expand(text string) ([]dimensions.Tuple, error) {
	cfg := o.cfg
	return dimensions.Expand(o.names, text, o.seed, &cfg)
}

// write renders tuples in o.format. For "go" output that fails to format,
// the unformatted source is still written before the error is returned.
func (o *options) write(w io.Writer, tuples []dimensions.Tuple) error {
	if o.format != "go" {
		return render.Write(w, o.format, o.names, tuples)
	}
	src, err := o.gen.Generate(o.names, tuples)
	if src != nil {
		if _, werr := w.Write(src); werr != nil {
			return werr
		}
	}
	return err
}

// run expands in and writes the result to out.
func run(in io.Reader, out io.Writer, o *options, archive bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	if archive {
		return runArchive(txtar.Parse(data), out, o)
	}
	tuples, err := o.expand(string(data))
	if err != nil {
		return err
	}
	return o.write(out, tuples)
}

// runArchive expands every file of a txtar archive on its own, starting
// from the same seed namespace each time.
func runArchive(a *txtar.Archive, out io.Writer, o *options) error {
	if len(a.Files) == 0 {
		return errors.New("txtar archive has no files")
	}
	results := make([][]dimensions.Tuple, len(a.Files))
	for i, f := range a.Files {
		tuples, err := o.expand(string(f.Data))
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		results[i] = tuples
	}

	switch o.format {
	case "json":
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, f := range a.Files {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := render.JSON(&buf, o.names, results[i]); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}
		buf.WriteByte('}')
		var compact, indented bytes.Buffer
		if err := json.Compact(&compact, buf.Bytes()); err != nil {
			return err
		}
		if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
			return err
		}
		indented.WriteByte('\n')
		_, err := out.Write(indented.Bytes())
		return err

	case "go":
		generated := &txtar.Archive{}
		for i, f := range a.Files {
			src, err := o.gen.Generate(o.names, results[i])
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			name := strings.TrimSuffix(f.Name, path.Ext(f.Name)) + ".go"
			generated.Files = append(generated.Files, txtar.File{Name: name, Data: src})
		}
		_, err := out.Write(txtar.Format(generated))
		return err
	}

	for i, f := range a.Files {
		if _, err := fmt.Fprintf(out, "-- %s --\n", f.Name); err != nil {
			return err
		}
		if err := o.write(out, results[i]); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// assignments collects -set name=expr flags into a namespace. Each
// expression sees the bindings made by the flags before it.
type assignments struct {
	ns expr.Namespace
}

func (a *assignments) String() string {
	if a == nil || len(a.ns) == 0 {
		return ""
	}
	var parts []string
	for _, name := range a.ns.Names() {
		parts = append(parts, name+"="+a.ns[name].String())
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	if !strings.Contains(s, "=") {
		return fmt.Errorf("want name=expr, got %q", s)
	}
	if a.ns == nil {
		a.ns = expr.Namespace{}
	}
	return expr.Interpreter{}.Exec([]string{s}, a.ns)
}
