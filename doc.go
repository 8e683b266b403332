// Package dimensions expands aligned text tables into parameter tuples for
// table-driven tests.
//
// A table is a block of lines whose header row starts with indentation
// followed by a column separator. Every data cell becomes one tuple of
// (row header, column header, cell), each evaluated as an expression.
// Blocks that are not tables are run as assignments, so tables can refer
// to names bound earlier:
//
//	Z = 0
//
//	   |      1 |  2
//	10 | Z + 11 | 12
//	20 |     21 | 22
//
//	Z = 100
//
//	   |      1 | 2
//	10 | Z + 11 | 112
//	20 |    121 | R
//
// Expanded with names "y,x,expect", the separator Pipe and R bound to 122,
// this yields
//
//	(10, 1, 11) (10, 2, 12) (20, 1, 21) (20, 2, 22)
//	(10, 1, 111) (10, 2, 112) (20, 1, 121) (20, 2, 122)
//
// Column boundaries come only from positions where the separator lines up
// across every data row, so headers may contain spaces and cells may be
// right- or left-aligned. The separator is a regular expression; the
// default is two spaces.
//
// Run hooks expansion into the testing package:
//
//	func TestSum(t *testing.T) {
//		dimensions.Run(t, "a,b,want", `
//		     1  2
//		  1  2  3
//		  2  3  4
//		`, nil, nil, func(t *testing.T, args dimensions.Args) {
//			if got := args.Int("a") + args.Int("b"); got != args.Int("want") {
//				t.Errorf("got %d, want %d", got, args.Int("want"))
//			}
//		})
//	}
package dimensions
