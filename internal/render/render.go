// Package render writes expanded parameter tuples as text, TSV, JSON or HTML.
package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tmc/dimensions/expr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/width"
)

// Formats lists the names accepted by Write.
var Formats = []string{"text", "tsv", "json", "html"}

// Write renders rows in the named format.
func Write[T ~[]expr.Value](w io.Writer, format string, names []string, rows []T) error {
	switch format {
	case "text":
		return Text(w, names, rows)
	case "tsv":
		return TSV(w, names, rows)
	case "json":
		return JSON(w, names, rows)
	case "html":
		return HTML(w, names, rows)
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// TSV writes a header line of names followed by one tab-separated line per
// row. Values are written in expression syntax, so strings are quoted.
func TSV[T ~[]expr.Value](w io.Writer, names []string, rows []T) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(names, "\t"))
	bw.WriteByte('\n')
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(v.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Text writes names and rows as left-aligned columns separated by two
// spaces. Column widths count East Asian wide and fullwidth runes as two
// cells, so the output lines up in a terminal.
func Text[T ~[]expr.Value](w io.Writer, names []string, rows []T) error {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, names)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		table = append(table, cells)
	}

	widths := make([]int, len(names))
	for _, cells := range table {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], DisplayWidth(c))
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, cells := range table {
		var line strings.Builder
		for i, c := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(c)
			if i < len(cells)-1 && i < len(widths) {
				line.WriteString(strings.Repeat(" ", widths[i]-DisplayWidth(c)))
			}
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// object is a JSON object that keeps its keys in order.
type object struct {
	names  []string
	values []expr.Value
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON writes rows as an indented array of objects keyed by name, in name
// order. Rows shorter than names are an error.
func JSON[T ~[]expr.Value](w io.Writer, names []string, rows []T) error {
	objs := make([]object, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(names) {
			return fmt.Errorf("row %d has %d values for %d names", i, len(row), len(names))
		}
		objs = append(objs, object{names: names, values: row})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(objs)
}

// HTML writes names and rows as an HTML table. Each data cell carries the
// value kind as its class.
func HTML[T ~[]expr.Value](w io.Writer, names []string, rows []T) error {
	head := element(atom.Tr)
	for _, name := range names {
		head.AppendChild(element(atom.Th, text(name)))
	}
	body := element(atom.Tbody)
	for _, row := range rows {
		tr := element(atom.Tr)
		for _, v := range row {
			td := element(atom.Td, text(v.Text()))
			td.Attr = []html.Attribute{{Key: "class", Val: v.Kind().String()}}
			tr.AppendChild(td)
		}
		body.AppendChild(tr)
	}
	table := element(atom.Table, element(atom.Thead, head), body)

	bw := bufio.NewWriter(w)
	if err := html.Render(bw, table); err != nil {
		return err
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
