// Package expr implements the small expression language used to resolve
// table headers and cells.
//
// Expressions are built from integer, float, string and boolean literals,
// identifiers bound in a Namespace, parentheses, unary + and -, and the
// binary operators + - * /. Division always yields a float. Statements have
// the single form
//
//	name = expression
//
// and bind the result into the Namespace they run against.
package expr
