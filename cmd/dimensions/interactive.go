//go:build !js

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".dimensions_history"

const interactiveHelp = "Type tables and assignments. :run expands it, :reset clears it, :quit or Ctrl-D exits."

// prompter is the part of *liner.State used by session.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// interactive reads tables from the terminal with line editing and
// history, expanding each one on :run.
func interactive(out, errOut io.Writer, o *options) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(out, interactiveHelp)
	return session(ln, out, errOut, o)
}

// session accumulates lines until :run or end of input and expands them.
// Expansion errors are reported on errOut and the session continues.
// Ctrl-C discards the pending lines.
func session(p prompter, out, errOut io.Writer, o *options) error {
	var pending []string
	flush := func() error {
		defer func() { pending = nil }()
		tuples, err := o.expand(strings.Join(pending, "\n"))
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return nil
		}
		return o.write(out, tuples)
	}

	for {
		prompt := "> "
		if len(pending) > 0 {
			prompt = ". "
		}
		line, err := p.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			if len(pending) > 0 {
				return flush()
			}
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			pending = nil
			continue
		case err != nil:
			return err
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":reset":
			pending = nil
			continue
		case ":run":
			if len(pending) == 0 {
				continue
			}
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		if strings.TrimSpace(line) != "" {
			p.AppendHistory(line)
		}
		pending = append(pending, line)
	}
}
