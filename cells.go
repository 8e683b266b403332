package dimensions

import "iter"

// Matrix is a parsed table. The first row holds the column headers and
// the first cell of every other row holds that row's header.
type Matrix [][]string

// Record is one data cell together with its row and column headers.
type Record struct {
	Row, Column, Cell string
}

// Cells yields one Record per data cell in row-major order. A Matrix with
// fewer than two rows has no data cells.
func (m Matrix) Cells() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if len(m) < 2 {
			return
		}
		var columns []string
		if len(m[0]) > 0 {
			columns = m[0][1:]
		}
		for _, row := range m[1:] {
			if len(row) == 0 {
				continue
			}
			for i, cell := range row[1:] {
				var column string
				if i < len(columns) {
					column = columns[i]
				}
				if !yield(Record{Row: row[0], Column: column, Cell: cell}) {
					return
				}
			}
		}
	}
}

// IterateTableCells is shorthand for m.Cells().
func IterateTableCells(m Matrix) iter.Seq[Record] {
	return m.Cells()
}
