package dimensions

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tmc/dimensions/expr"
	"github.com/tmc/dimensions/internal/render"
	"golang.org/x/tools/txtar"
)

var writeTxtarGolden = flag.Bool("write-txtar-golden", false, "If true, writes out golden files in txtar archives")

// txtarOptions are read from "key: value" lines in an archive comment.
//
//	names: y,x,expect
//	sep: "  "
//	set: R=122
type txtarOptions struct {
	names []string
	cfg   Config
	seed  expr.Namespace
}

func parseTxtarOptions(comment []byte) (txtarOptions, error) {
	opts := txtarOptions{
		names: ParseNames("y,x,expect"),
		cfg:   DefaultConfig,
		seed:  expr.Namespace{},
	}
	for _, line := range strings.Split(string(comment), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, `"`) {
			v, err := strconv.Unquote(value)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", key, err)
			}
			value = v
		}
		switch strings.TrimSpace(key) {
		case "names":
			opts.names = ParseNames(value)
		case "sep":
			opts.cfg.Separator = value
		case "comment":
			opts.cfg.Comment = value
		case "dedent":
			opts.cfg.Dedent = value == "true"
		case "set":
			name, src, ok := strings.Cut(value, "=")
			if !ok {
				return opts, fmt.Errorf("set: want name=expr, got %q", value)
			}
			v, err := expr.Interpreter{}.Eval(src, opts.seed)
			if err != nil {
				return opts, fmt.Errorf("set %s: %w", name, err)
			}
			opts.seed[strings.TrimSpace(name)] = v
		}
	}
	return opts, nil
}

func TestTxtarExpand(t *testing.T) {
	txtarFiles, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to find txtar files in testdata: %v", err)
	}
	if len(txtarFiles) == 0 {
		t.Skip("no txtar files found")
	}

	for _, txtarFile := range txtarFiles {
		t.Run(filepath.Base(txtarFile), func(t *testing.T) {
			runTxtarTest(t, txtarFile)
		})
	}
}

func runTxtarTest(t *testing.T, txtarFile string) {
	archive, err := txtar.ParseFile(txtarFile)
	if err != nil {
		t.Fatalf("failed to parse txtar file %s: %v", txtarFile, err)
	}
	opts, err := parseTxtarOptions(archive.Comment)
	if err != nil {
		t.Fatalf("bad options in %s: %v", txtarFile, err)
	}

	// Group files by test case (name without extension)
	type testCase struct {
		input       []byte
		golden      []byte
		expectedErr []byte
	}
	testCases := make(map[string]*testCase)
	caseFor := func(name string) *testCase {
		if testCases[name] == nil {
			testCases[name] = &testCase{}
		}
		return testCases[name]
	}
	for _, file := range archive.Files {
		ext := filepath.Ext(file.Name)
		name := strings.TrimSuffix(file.Name, ext)
		switch ext {
		case ".txt":
			caseFor(name).input = file.Data
		case ".tsv":
			caseFor(name).golden = file.Data
		case ".err":
			caseFor(name).expectedErr = file.Data
		}
	}

	names := make([]string, 0, len(testCases))
	for name := range testCases {
		names = append(names, name)
	}
	sort.Strings(names)

	updated := make(map[string][]byte)
	for _, testName := range names {
		tc := testCases[testName]
		t.Run(testName, func(t *testing.T) {
			if tc.input == nil {
				t.Skip("no input found")
			}

			cfg := opts.cfg
			tuples, err := Expand(opts.names, string(tc.input), opts.seed, &cfg)

			if len(tc.expectedErr) > 0 {
				expectedErrStr := strings.TrimSpace(string(tc.expectedErr))
				if err == nil {
					t.Fatalf("expected error containing %q, but got none", expectedErrStr)
				}
				if !strings.Contains(err.Error(), expectedErrStr) {
					t.Errorf("expected error containing %q, got %q", expectedErrStr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}

			var buf bytes.Buffer
			if err := render.TSV(&buf, opts.names, tuples); err != nil {
				t.Fatal(err)
			}
			got := buf.String()

			if *writeTxtarGolden {
				updated[testName+".tsv"] = buf.Bytes()
				return
			}
			if tc.golden == nil {
				t.Logf("no golden file found for %s, generated:\n%s", testName, got)
				return
			}
			if diff := cmp.Diff(string(tc.golden), got); diff != "" {
				t.Errorf("Expand() mismatch for %s (-want +got):\n%s", testName, diff)
			}
		})
	}

	if !*writeTxtarGolden || len(updated) == 0 {
		return
	}
	for i, file := range archive.Files {
		if data, ok := updated[file.Name]; ok {
			archive.Files[i].Data = data
			delete(updated, file.Name)
		}
	}
	for _, name := range sortedKeys(updated) {
		archive.Files = append(archive.Files, txtar.File{Name: name, Data: updated[name]})
	}
	if err := os.WriteFile(txtarFile, txtar.Format(archive), 0644); err != nil {
		t.Errorf("failed to write updated txtar file %s: %v", txtarFile, err)
	} else {
		t.Logf("wrote updated txtar file: %s", txtarFile)
	}
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
