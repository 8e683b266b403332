// Package gogen renders expanded parameter tuples as a Go table of test
// cases: a struct type with one field per parameter name and a slice
// literal holding one element per tuple.
package gogen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/tmc/dimensions"
	"github.com/tmc/dimensions/expr"
	"golang.org/x/tools/txtar"
)

// FormatError is returned when generated code fails to format
type FormatError struct {
	OriginalError error
	Source        string // The unformatted source code
	LineNum       int
	Column        int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting error at line %d:%d: %v", e.LineNum, e.Column, e.OriginalError)
}

func (e *FormatError) Unwrap() error {
	return e.OriginalError
}

//go:embed templates.txtar
var defaultTemplates []byte

type Generator struct {
	PackageName string // package name to use in generated code
	TypeName    string // struct name to use in generated code; the slice is named TypeName+"Cases"

	Template string // txtar archive with file.tmpl and cases.tmpl to use instead of the default

	fileTemplate  *template.Template
	casesTemplate *template.Template
}

var DefaultGenerator = Generator{
	PackageName: "main",
	TypeName:    "param",
}

type field struct {
	Name   string // Go field name
	Param  string // parameter name
	Type   string
	Tagged bool // Name differs from Param
}

type cell struct {
	Field   string
	Literal string
}

func (g *Generator) loadTemplates() error {
	if g.fileTemplate != nil && g.casesTemplate != nil {
		return nil
	}
	data := defaultTemplates
	if g.Template != "" {
		b, err := os.ReadFile(g.Template)
		if err != nil {
			return err
		}
		data = b
	}

	archive := txtar.Parse(data)
	templates := make(map[string]string)
	for _, file := range archive.Files {
		templates[file.Name] = string(file.Data)
	}
	for _, name := range []string{"file.tmpl", "cases.tmpl"} {
		if _, ok := templates[name]; !ok {
			return fmt.Errorf("template archive has no %s", name)
		}
	}

	var err error
	if g.fileTemplate, err = template.New("file").Parse(templates["file.tmpl"]); err != nil {
		return err
	}
	if g.casesTemplate, err = template.New("cases").Parse(templates["cases.tmpl"]); err != nil {
		return err
	}
	return nil
}

// Generate renders names and tuples as a formatted Go source file.
//
// If the rendered source does not format, the unformatted source is
// returned together with a *FormatError.
func (g *Generator) Generate(names []string, tuples []dimensions.Tuple) ([]byte, error) {
	if err := g.loadTemplates(); err != nil {
		return nil, err
	}
	typeName := g.TypeName
	if typeName == "" {
		typeName = DefaultGenerator.TypeName
	}
	pkgName := g.PackageName
	if pkgName == "" {
		pkgName = DefaultGenerator.PackageName
	}

	types := InferColumns(len(names), tuples)
	fields := fieldsFor(names, types)

	needsMath := false
	rows := make([][]cell, 0, len(tuples))
	for i, t := range tuples {
		if len(t) != len(names) {
			return nil, fmt.Errorf("tuple %d has %d values for %d names", i, len(t), len(names))
		}
		row := make([]cell, len(t))
		for j, v := range t {
			lit, usesMath := literal(v, types[j])
			needsMath = needsMath || usesMath
			row[j] = cell{Field: fields[j].Name, Literal: lit}
		}
		rows = append(rows, row)
	}

	var content bytes.Buffer
	err := g.casesTemplate.Execute(&content, struct {
		Type   string
		Var    string
		Fields []field
		Rows   [][]cell
	}{
		Type:   typeName,
		Var:    typeName + "Cases",
		Fields: fields,
		Rows:   rows,
	})
	if err != nil {
		return nil, err
	}

	var imports []string
	if needsMath {
		imports = append(imports, "math")
	}
	var src bytes.Buffer
	err = g.fileTemplate.Execute(&src, struct {
		Package string
		Imports []string
		Content string
	}{
		Package: pkgName,
		Imports: imports,
		Content: content.String(),
	})
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		// go/format errors look like "61:17: expected '{', found ..."
		var lineNum, colNum int
		fmt.Sscanf(err.Error(), "%d:%d:", &lineNum, &colNum)
		return src.Bytes(), &FormatError{
			OriginalError: err,
			Source:        src.String(),
			LineNum:       lineNum,
			Column:        colNum,
		}
	}
	return formatted, nil
}

func fieldsFor(names []string, types []ColumnType) []field {
	fields := make([]field, len(names))
	used := make(map[string]bool)
	for i, name := range names {
		goName := fmtFieldName(name)
		for n, base := 2, goName; used[goName]; n++ {
			goName = base + strconv.Itoa(n)
		}
		used[goName] = true
		fields[i] = field{
			Name:   goName,
			Param:  name,
			Type:   types[i].GoType(),
			Tagged: goName != name,
		}
	}
	return fields
}

// literal returns v as a Go expression assignable to a field of type t,
// and whether the expression refers to package math.
func literal(v expr.Value, t ColumnType) (string, bool) {
	switch v.Kind() {
	case expr.Int:
		s := strconv.FormatInt(v.AsInt(), 10)
		if t == Mixed {
			return "int64(" + s + ")", false
		}
		return s, false
	case expr.Float:
		f := v.AsFloat()
		switch {
		case math.IsNaN(f):
			return "math.NaN()", true
		case math.IsInf(f, 1):
			return "math.Inf(1)", true
		case math.IsInf(f, -1):
			return "math.Inf(-1)", true
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if t == Mixed {
			return "float64(" + s + ")", false
		}
		return s, false
	case expr.String:
		return strconv.Quote(v.AsString()), false
	case expr.Bool:
		return strconv.FormatBool(v.AsBool()), false
	}
	return "nil", false
}

var uppercaseFixups = map[string]bool{"id": true, "url": true}

// fmtFieldName formats a parameter name as a Go struct field name
//
//	fmtFieldName("foo_id")
//
// Output: FooID
func fmtFieldName(s string) string {
	parts := strings.Split(s, "_")
	for i := range parts {
		if r, size := utf8.DecodeRuneInString(parts[i]); size > 0 {
			parts[i] = string(unicode.ToUpper(r)) + parts[i][size:]
		}
	}
	if len(parts) > 0 {
		last := parts[len(parts)-1]
		if uppercaseFixups[strings.ToLower(last)] {
			parts[len(parts)-1] = strings.ToUpper(last)
		}
	}
	runes := []rune(strings.Join(parts, ""))
	for i, c := range runes {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			runes[i] = '_'
		}
	}
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		runes = append([]rune{'F'}, runes...)
	}
	return string(runes)
}
