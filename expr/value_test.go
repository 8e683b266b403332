package expr

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		str  string
		text string
	}{
		{IntValue(-7), "-7", "-7"},
		{FloatValue(2), "2.0", "2.0"},
		{FloatValue(0.25), "0.25", "0.25"},
		{FloatValue(1e21), "1e+21", "1e+21"},
		{FloatValue(math.Inf(1)), "+Inf", "+Inf"},
		{StringValue(`say "hi"`), `"say \"hi\""`, `say "hi"`},
		{BoolValue(false), "false", "false"},
		{Value{}, "<invalid>", "<invalid>"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.v.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.v.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	if IntValue(1).Equal(FloatValue(1)) {
		t.Error("Int 1 should not equal Float 1")
	}
	if !FloatValue(math.NaN()).Equal(FloatValue(math.NaN())) {
		t.Error("NaN should equal NaN for comparison purposes")
	}
	if !(Value{}).Equal(Value{}) {
		t.Error("zero values should be equal")
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		in   any
		want Value
	}{
		{int(3), IntValue(3)},
		{int8(-3), IntValue(-3)},
		{uint16(9), IntValue(9)},
		{uint64(10), IntValue(10)},
		{float32(0.5), FloatValue(0.5)},
		{"x", StringValue("x")},
		{true, BoolValue(true)},
		{IntValue(4), IntValue(4)},
	}
	for _, tt := range tests {
		got, err := ValueOf(tt.in)
		if err != nil {
			t.Fatalf("ValueOf(%v) error = %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ValueOf(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	for _, bad := range []any{nil, []int{1}, uint64(math.MaxUint64)} {
		if _, err := ValueOf(bad); err == nil {
			t.Errorf("ValueOf(%v) succeeded, want error", bad)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	got, err := json.Marshal([]Value{IntValue(1), FloatValue(1.5), StringValue("a"), BoolValue(true)})
	if err != nil {
		t.Fatal(err)
	}
	if want := `[1,1.5,"a",true]`; string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	if _, err := json.Marshal(FloatValue(math.NaN())); err == nil {
		t.Error("Marshal(NaN) succeeded, want error")
	}
}

func TestNamespaceOf(t *testing.T) {
	ns, err := NamespaceOf(map[string]any{"R": 122, "name": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"R", "name"}, ns.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	c := ns.Clone()
	c["R"] = IntValue(0)
	if !ns["R"].Equal(IntValue(122)) {
		t.Error("Clone shares storage with the original")
	}
	if _, err := NamespaceOf(map[string]any{"bad": struct{}{}}); err == nil {
		t.Error("NamespaceOf with unsupported type succeeded")
	}
}
