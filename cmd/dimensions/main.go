//go:build !js

// dimensions expands parameter tables into one parameter set per table cell.
//
// Reads tables from stdin and prints the expanded tuples to stdout.
//
// Example:
//
//	printf 'Z = 100\n\n    |      1 |  2\n 10 | Z + 11 | 12\n' |
//		dimensions -sep='\|' -format=tsv
//
// Output:
//
//	y	x	expect
//	10	1	111
//	10	2	12
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/dimensions"
	"github.com/tmc/dimensions/gogen"
	"github.com/tmc/dimensions/internal/render"
	"golang.org/x/term"
)

var (
	flagNames    = flag.String("names", "y,x,expect", "comma-separated parameter names; the last three get row, column and cell")
	flagSep      = flag.String("sep", dimensions.Spaces, "regular expression separating table columns")
	flagComment  = flag.String("comment", "#", "table lines starting with this are ignored; empty keeps all lines")
	flagDedent   = flag.Bool("dedent", true, "if true, removes common indentation from the input")
	flagFormat   = flag.String("format", "", "output format: "+strings.Join(render.Formats, ", ")+", go (default text on a terminal, tsv otherwise)")
	flagPkg      = flag.String("pkg", "main", "the name of the package for generated code")
	flagType     = flag.String("type", "param", "the name of the struct for generated code")
	flagTemplate = flag.String("template", "", "txtar archive with file.tmpl and cases.tmpl for generated code")
	flagTxtar    = flag.Bool("txtar", false, "if true, input is a txtar archive and each file is expanded separately")
	flagVerbose  = flag.Bool("v", false, "if true, logs how each group of lines is handled")
	flagInteract = flag.Bool("i", false, "if true, reads tables from the terminal with line editing")

	flagSet assignments
)

func init() {
	flag.Var(&flagSet, "set", "bind `name=expr` before expanding; may be repeated")
}

func main() {
	flag.Parse()

	if isInteractive() && !*flagInteract {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "Expects input on stdin")
		os.Exit(1)
	}

	o := &options{
		names:  dimensions.ParseNames(*flagNames),
		cfg:    dimensions.DefaultConfig,
		seed:   flagSet.ns,
		format: *flagFormat,
		gen:    gogen.DefaultGenerator,
	}
	o.cfg.Separator = *flagSep
	o.cfg.Comment = *flagComment
	o.cfg.Dedent = *flagDedent
	if *flagVerbose {
		o.cfg.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	o.gen.PackageName = *flagPkg
	o.gen.TypeName = *flagType
	o.gen.Template = *flagTemplate
	if o.format == "" {
		o.format = "tsv"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			o.format = "text"
		}
	}

	var err error
	if *flagInteract {
		err = interactive(os.Stdout, os.Stderr, o)
	} else {
		err = run(os.Stdin, os.Stdout, o, *flagTxtar)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Return true if os.Stdin appears to be interactive
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
