package gogen

import (
	"github.com/tmc/dimensions/expr"
)

// ColumnType is the Go type chosen for one parameter column.
type ColumnType string

const (
	Unknown = ColumnType("")        // no value observed yet
	Integer = ColumnType("int64")   // observed only integers
	Number  = ColumnType("float64") // observed floats, possibly mixed with integers
	String  = ColumnType("string")
	Boolean = ColumnType("bool")
	Mixed   = ColumnType("any") // observed incompatible kinds
)

// KindType returns the column type of a single value.
func KindType(k expr.Kind) ColumnType {
	switch k {
	case expr.Int:
		return Integer
	case expr.Float:
		return Number
	case expr.String:
		return String
	case expr.Bool:
		return Boolean
	default:
		return Mixed
	}
}

// Merge widens t so that it can also hold values of type t2.
func (t ColumnType) Merge(t2 ColumnType) ColumnType {
	switch {
	case t == Unknown:
		return t2
	case t2 == Unknown || t == t2:
		return t
	case (t == Integer && t2 == Number) || (t == Number && t2 == Integer):
		return Number
	default:
		return Mixed
	}
}

// GoType returns the type as written in Go source.
func (t ColumnType) GoType() string {
	if t == Unknown {
		return string(Mixed)
	}
	return string(t)
}

// InferColumns returns the column type of each of n columns across rows.
// A column with no values is Mixed.
func InferColumns[T ~[]expr.Value](n int, rows []T) []ColumnType {
	types := make([]ColumnType, n)
	for _, row := range rows {
		for i, v := range row {
			if i < n {
				types[i] = types[i].Merge(KindType(v.Kind()))
			}
		}
	}
	for i, t := range types {
		if t == Unknown {
			types[i] = Mixed
		}
	}
	return types
}
