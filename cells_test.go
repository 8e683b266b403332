package dimensions

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterateTableCells(t *testing.T) {
	tests := []struct {
		name  string
		table Matrix
		want  []Record
	}{
		{"empty", Matrix{}, nil},
		{"nil", nil, nil},
		{"header only", Matrix{{"", "col1", "col2"}}, nil},
		{
			"one row",
			Matrix{
				{"", "col1", "col2"},
				{"row1", "cell11", "cell12"},
			},
			[]Record{
				{"row1", "col1", "cell11"},
				{"row1", "col2", "cell12"},
			},
		},
		{
			"two rows",
			Matrix{
				{"", "col1", "col2"},
				{"row1", "cell11", "cell12"},
				{"row2", "cell21", "cell22"},
			},
			[]Record{
				{"row1", "col1", "cell11"},
				{"row1", "col2", "cell12"},
				{"row2", "col1", "cell21"},
				{"row2", "col2", "cell22"},
			},
		},
		{
			"single column",
			Matrix{{"x"}, {"a"}, {"b"}},
			nil,
		},
		{
			"row longer than header",
			Matrix{
				{"", "c1"},
				{"r", "v1", "v2"},
			},
			[]Record{
				{"r", "c1", "v1"},
				{"r", "", "v2"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(IterateTableCells(tt.table))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IterateTableCells() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseThenIterateRecoversEveryCell(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {3, 4}, {5, 2}, {4, 6}} {
		rows, cols := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			var lines []string
			var want []Record
			header := []string{"   "}
			for c := 1; c < cols; c++ {
				header = append(header, fmt.Sprintf("c%02d", c))
			}
			lines = append(lines, strings.Join(header, " | "))
			for r := 1; r < rows; r++ {
				row := []string{fmt.Sprintf("r%02d", r)}
				for c := 1; c < cols; c++ {
					cell := fmt.Sprintf("%d%d", r%10, c%10)
					row = append(row, cell+" ")
					want = append(want, Record{row[0], header[c], cell})
				}
				lines = append(lines, strings.Join(row, " | "))
			}

			m, err := ParseTable(lines, Pipe)
			if err != nil {
				t.Fatal(err)
			}
			got := slices.Collect(m.Cells())
			if len(got) != (rows-1)*(cols-1) {
				t.Errorf("got %d records, want %d", len(got), (rows-1)*(cols-1))
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("records mismatch (-want +got):\n%s\ntable:\n%s", diff, strings.Join(lines, "\n"))
			}
		})
	}
}

func TestCellsRestartAndStop(t *testing.T) {
	m := Matrix{{"", "a", "b"}, {"x", "1", "2"}, {"y", "3", "4"}}
	seq := m.Cells()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}

	var got []Record
	for rec := range seq {
		got = append(got, rec)
		if len(got) == 3 {
			break
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d records before break, want 3", len(got))
	}
}
