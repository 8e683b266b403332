package expr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota

	// Literals & identifiers
	IDENT
	INTEGER
	NUMBER
	STRING
	BOOLEAN

	// Operators & punctuation
	PLUS
	MINUS
	STAR
	SLASH
	ASSIGN
	LPAREN
	RPAREN
)

var tokenNames = [...]string{
	EOF:     "end of input",
	IDENT:   "identifier",
	INTEGER: "integer",
	NUMBER:  "number",
	STRING:  "string",
	BOOLEAN: "boolean",
	PLUS:    "'+'",
	MINUS:   "'-'",
	STAR:    "'*'",
	SLASH:   "'/'",
	ASSIGN:  "'='",
	LPAREN:  "'('",
	RPAREN:  "')'",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

var punctuation = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': ASSIGN,
	'(': LPAREN,
	')': RPAREN,
}

// Token is a lexical token with its parsed literal, if any.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Value
	Pos     int // byte offset of the token start
}

// Lexer scans a single expression or statement into tokens.
type Lexer struct {
	src   string
	start int
	cur   int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekN(n int) byte {
	if l.cur+n >= len(l.src) {
		return 0
	}
	return l.src[l.cur+n]
}

func (l *Lexer) token(tt TokenType, lit Value) Token {
	return Token{Type: tt, Lexeme: l.src[l.start:l.cur], Literal: lit, Pos: l.start}
}

func (l *Lexer) err(pos int, msg string) error {
	return &SyntaxError{Src: l.src, Pos: pos, Msg: msg}
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		r, size := utf8.DecodeRuneInString(l.src[l.cur:])
		if !unicode.IsSpace(r) {
			break
		}
		l.cur += size
	}
	l.start = l.cur
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || unicode.IsDigit(r) }

// Scan returns all tokens of the source, ending with an EOF token.
func (l *Lexer) Scan() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	if l.isAtEnd() {
		return l.token(EOF, Value{}), nil
	}

	c := l.peek()
	switch c {
	case '+', '-', '*', '/', '=', '(', ')':
		l.cur++
		return l.token(punctuation[c], Value{}), nil
	case '"', '\'':
		s, err := l.scanString(c)
		if err != nil {
			return Token{}, err
		}
		return l.token(STRING, StringValue(s)), nil
	}

	if isDigit(c) || (c == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber()
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.cur:])
	if isIdentStart(r) {
		id := l.scanIdentifier()
		switch id {
		case "true":
			return l.token(BOOLEAN, BoolValue(true)), nil
		case "false":
			return l.token(BOOLEAN, BoolValue(false)), nil
		}
		return l.token(IDENT, Value{}), nil
	}
	return Token{}, l.err(l.cur, "unexpected character "+strconv.QuoteRune(r))
}

func (l *Lexer) scanIdentifier() string {
	for !l.isAtEnd() {
		r, size := utf8.DecodeRuneInString(l.src[l.cur:])
		if !isIdentPart(r) {
			break
		}
		l.cur += size
	}
	return l.src[l.start:l.cur]
}

// scanNumber parses integer or float; supports .5, 1., 1.23e-4.
func (l *Lexer) scanNumber() (Token, error) {
	for isDigit(l.peek()) {
		l.cur++
	}

	float := false
	if l.peek() == '.' {
		float = true
		l.cur++
		for isDigit(l.peek()) {
			l.cur++
		}
	}

	if b := l.peek(); b == 'e' || b == 'E' {
		save := l.cur
		l.cur++
		if b := l.peek(); b == '+' || b == '-' {
			l.cur++
		}
		if isDigit(l.peek()) {
			float = true
			for isDigit(l.peek()) {
				l.cur++
			}
		} else {
			l.cur = save
		}
	}

	lex := l.src[l.start:l.cur]
	if !float {
		i, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			return Token{}, l.err(l.start, "invalid integer literal "+lex)
		}
		return l.token(INTEGER, IntValue(i)), nil
	}
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return Token{}, l.err(l.start, "invalid float literal "+lex)
	}
	return l.token(NUMBER, FloatValue(f)), nil
}

// scanString parses a single- or double-quoted literal. Supported escapes
// are \\, \', \", \n and \t.
func (l *Lexer) scanString(quote byte) (string, error) {
	l.cur++ // opening quote
	var sb strings.Builder
	for {
		if l.isAtEnd() {
			return "", l.err(l.start, "unterminated string")
		}
		c := l.src[l.cur]
		l.cur++
		switch c {
		case quote:
			return sb.String(), nil
		case '\\':
			if l.isAtEnd() {
				return "", l.err(l.start, "unterminated string")
			}
			e := l.src[l.cur]
			l.cur++
			switch e {
			case '\\', '\'', '"':
				sb.WriteByte(e)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", l.err(l.cur-2, "unsupported escape sequence \\"+string(e))
			}
		default:
			sb.WriteByte(c)
		}
	}
}
