package expr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexerScan(t *testing.T) {
	tests := []struct {
		src   string
		types []TokenType
	}{
		{"", []TokenType{EOF}},
		{"   ", []TokenType{EOF}},
		{"Z + 11", []TokenType{IDENT, PLUS, INTEGER, EOF}},
		{"x=1.5e3", []TokenType{IDENT, ASSIGN, NUMBER, EOF}},
		{"-(a/.5)*2", []TokenType{MINUS, LPAREN, IDENT, SLASH, NUMBER, RPAREN, STAR, INTEGER, EOF}},
		{"'count' \"sum\"", []TokenType{STRING, STRING, EOF}},
		{"true false truthy", []TokenType{BOOLEAN, BOOLEAN, IDENT, EOF}},
		{"größe_2", []TokenType{IDENT, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, err := NewLexer(tt.src).Scan()
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			var got []TokenType
			for _, tok := range toks {
				got = append(got, tok.Type)
			}
			if diff := cmp.Diff(tt.types, got); diff != "" {
				t.Errorf("Scan() token types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want Value
	}{
		{"42", IntValue(42)},
		{"1.", FloatValue(1)},
		{".25", FloatValue(0.25)},
		{"2E-2", FloatValue(0.02)},
		{"3e", IntValue(3)}, // exponent without digits is left unconsumed
		{`'it\'s'`, StringValue("it's")},
		{`"a\tb\n"`, StringValue("a\tb\n")},
		{"true", BoolValue(true)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, err := NewLexer(tt.src).Scan()
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, toks[0].Literal); diff != "" {
				t.Errorf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		src string
		pos int
	}{
		{"'open", 0},
		{`"bad \q"`, 5},
		{"a # b", 2},
		{"99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := NewLexer(tt.src).Scan()
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Scan() error = %v, want *SyntaxError", err)
			}
			if se.Pos != tt.pos {
				t.Errorf("SyntaxError.Pos = %d, want %d", se.Pos, tt.pos)
			}
		})
	}
}
