//go:build js

package main

import (
	"strings"
	"syscall/js"

	"github.com/tmc/dimensions"
	"github.com/tmc/dimensions/gogen"
)

// expandDimensions(names, text, sep) returns the expansion as TSV, or the
// error text. An empty sep means whitespace columns.
func expandDimensionsFunction(this js.Value, p []js.Value) any {
	if len(p) < 2 {
		return js.ValueOf("usage: expandDimensions(names, text[, sep])")
	}
	o := &options{
		names:  dimensions.ParseNames(p[0].String()),
		cfg:    dimensions.DefaultConfig,
		format: "tsv",
		gen:    gogen.DefaultGenerator,
	}
	if len(p) > 2 {
		o.cfg.Separator = p[2].String()
	}
	var out strings.Builder
	if err := run(strings.NewReader(p[1].String()), &out, o, false); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("expandDimensions", js.FuncOf(expandDimensionsFunction))

	<-c
}
