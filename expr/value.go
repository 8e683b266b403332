package expr

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type held by a Value.
type Kind uint8

const (
	Invalid Kind = iota // zero Value, never produced by evaluation
	Int                 // int64
	Float               // float64
	String
	Bool
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a tagged variant holding one of the supported kinds.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

func IntValue(i int64) Value { return Value{kind: Int, i: i} }
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }
func StringValue(s string) Value { return Value{kind: String, s: s} }
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }
func (v Value) Kind() Kind { return v.kind }
func (v Value) IsValid() bool { return v.kind != Invalid }
func (v Value) AsInt() int64 { return v.i }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsString() string { return v.s }
func (v Value) AsBool() bool { return v.b }

// ValueOf converts a Go value into a Value. Signed and unsigned integers
// become Int, floats become Float. It fails for any other type and for
// unsigned values that overflow int64.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", x)
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("unsigned value %d overflows int", u)
	}
	return IntValue(int64(u)), nil
}

// Interface returns the value as int64, float64, string, bool or nil.
func (v Value) Interface() any {
	switch v.kind {
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	case Bool:
		return v.b
	}
	return nil
}

// Equal reports whether v and o have the same kind and payload.
// An Int never equals a Float, even when numerically equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Int:
		return v.i == o.i
	case Float:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case String:
		return v.s == o.s
	case Bool:
		return v.b == o.b
	}
	return true
}

// String formats v the way it would be written as an expression:
// strings are quoted and integral floats keep a trailing ".0".
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case String:
		return strconv.Quote(v.s)
	case Bool:
		return strconv.FormatBool(v.b)
	}
	return "<invalid>"
}

// Text is like String except that strings are returned unquoted.
func (v Value) Text() string {
	if v.kind == String {
		return v.s
	}
	return v.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == Float && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return nil, fmt.Errorf("cannot encode %v as JSON", v.f)
	}
	return json.Marshal(v.Interface())
}
