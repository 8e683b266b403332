package expr

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the right operand of '/' is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrIntegerOverflow is returned when integer arithmetic leaves the int64 range.
var ErrIntegerOverflow = errors.New("integer overflow")

// ErrRepeatTooLarge is returned when repeating a string would produce more
// than MaxRepeatLen bytes.
var ErrRepeatTooLarge = errors.New("repeated string too large")

// MaxRepeatLen bounds the length of a string built with '*'.
const MaxRepeatLen = 1 << 20

// SyntaxError reports malformed expression or statement text.
// Pos is the byte offset into Src.
type SyntaxError struct {
	Src string
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d in %q: %s", e.Pos, e.Src, e.Msg)
}

// NameError reports a reference to an unbound identifier.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q is not defined", e.Name)
}

// OpError reports an operator applied to operands of unsupported kinds.
// Left is Invalid for unary operators.
type OpError struct {
	Op    string
	Left  Kind
	Right Kind
}

func (e *OpError) Error() string {
	if e.Left == Invalid {
		return fmt.Sprintf("unsupported operand kind for unary %s: %s", e.Op, e.Right)
	}
	return fmt.Sprintf("unsupported operand kinds for %s: %s and %s", e.Op, e.Left, e.Right)
}
