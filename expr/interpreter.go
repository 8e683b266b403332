package expr

import (
	"fmt"
	"math"
	"strings"
)

// Interpreter evaluates expressions and executes assignment statements
// against a Namespace. The zero value is ready to use.
type Interpreter struct{}

// Eval parses src as an expression and evaluates it in ns.
func (Interpreter) Eval(src string, ns Namespace) (Value, error) {
	x, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(x, ns)
}

// Exec runs each non-blank line as an assignment statement, in order,
// binding results into ns. All lines are parsed before any is executed,
// so a syntax error leaves ns untouched.
func (Interpreter) Exec(lines []string, ns Namespace) error {
	stmts := make([]*Assign, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		st, err := ParseStatement(line)
		if err != nil {
			return err
		}
		stmts = append(stmts, st)
	}
	for _, st := range stmts {
		v, err := Evaluate(st.X, ns)
		if err != nil {
			return err
		}
		ns[st.Name] = v
	}
	return nil
}

// Evaluate computes the value of a parsed expression.
func Evaluate(x Expr, ns Namespace) (Value, error) {
	switch x := x.(type) {
	case *Literal:
		return x.Value, nil
	case *Ident:
		return ns.Lookup(x.Name)
	case *Unary:
		v, err := Evaluate(x.X, ns)
		if err != nil {
			return Value{}, err
		}
		return unary(x.Op, v)
	case *Binary:
		l, err := Evaluate(x.X, ns)
		if err != nil {
			return Value{}, err
		}
		r, err := Evaluate(x.Y, ns)
		if err != nil {
			return Value{}, err
		}
		return binary(x.Op, l, r)
	}
	return Value{}, fmt.Errorf("unknown expression node %T", x)
}

func unary(op TokenType, v Value) (Value, error) {
	switch v.kind {
	case Int:
		if op == MINUS {
			if v.i == math.MinInt64 {
				return Value{}, fmt.Errorf("%w: -(%d)", ErrIntegerOverflow, v.i)
			}
			return IntValue(-v.i), nil
		}
		return v, nil
	case Float:
		if op == MINUS {
			return FloatValue(-v.f), nil
		}
		return v, nil
	}
	return Value{}, &OpError{Op: opSymbol(op), Right: v.kind}
}

func binary(op TokenType, l, r Value) (Value, error) {
	switch {
	case l.kind == Int && r.kind == Int:
		return intArith(op, l.i, r.i)
	case isNumeric(l) && isNumeric(r):
		return floatArith(op, toFloat(l), toFloat(r))
	case l.kind == String && r.kind == String && op == PLUS:
		return StringValue(l.s + r.s), nil
	case l.kind == String && r.kind == Int && op == STAR:
		return repeat(l.s, r.i)
	case l.kind == Int && r.kind == String && op == STAR:
		return repeat(r.s, l.i)
	}
	return Value{}, &OpError{Op: opSymbol(op), Left: l.kind, Right: r.kind}
}

func intArith(op TokenType, a, b int64) (Value, error) {
	var overflow bool
	switch op {
	case PLUS:
		overflow = (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b)
	case MINUS:
		overflow = (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b)
	case STAR:
		overflow = a != 0 && b != 0 &&
			((a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || (a*b)/b != a)
	}
	if overflow {
		return Value{}, fmt.Errorf("%w: %d %s %d", ErrIntegerOverflow, a, opSymbol(op), b)
	}
	switch op {
	case PLUS:
		return IntValue(a + b), nil
	case MINUS:
		return IntValue(a - b), nil
	case STAR:
		return IntValue(a * b), nil
	}
	// '/' is true division and always yields a Float.
	return floatArith(op, float64(a), float64(b))
}

func floatArith(op TokenType, a, b float64) (Value, error) {
	switch op {
	case PLUS:
		return FloatValue(a + b), nil
	case MINUS:
		return FloatValue(a - b), nil
	case STAR:
		return FloatValue(a * b), nil
	case SLASH:
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}
		return FloatValue(a / b), nil
	}
	return Value{}, fmt.Errorf("unknown operator %s", op)
}

func repeat(s string, n int64) (Value, error) {
	if n <= 0 || s == "" {
		return StringValue(""), nil
	}
	if int64(len(s)) > MaxRepeatLen/n {
		return Value{}, fmt.Errorf("%w: %d copies of %d bytes", ErrRepeatTooLarge, n, len(s))
	}
	return StringValue(strings.Repeat(s, int(n))), nil
}

func isNumeric(v Value) bool { return v.kind == Int || v.kind == Float }

func toFloat(v Value) float64 {
	if v.kind == Int {
		return float64(v.i)
	}
	return v.f
}

func opSymbol(op TokenType) string {
	return strings.Trim(op.String(), "'")
}
