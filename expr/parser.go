package expr

// Grammar:
//
//	statement  = IDENT "=" expression
//	expression = term { ("+" | "-") term }
//	term       = unary { ("*" | "/") unary }
//	unary      = ("+" | "-") unary | primary
//	primary    = INTEGER | NUMBER | STRING | BOOLEAN | IDENT | "(" expression ")"

// Expr is a parsed expression.
type Expr interface {
	Pos() int
}

// Literal is a constant value.
type Literal struct {
	Value  Value
	Offset int
}

// Ident references a namespace binding.
type Ident struct {
	Name   string
	Offset int
}

// Unary is a prefix operator applied to X.
type Unary struct {
	Op     TokenType
	X      Expr
	Offset int
}

// Binary is an infix operator applied to X and Y.
type Binary struct {
	Op     TokenType
	X, Y   Expr
	Offset int
}

func (e *Literal) Pos() int { return e.Offset }
func (e *Ident) Pos() int   { return e.Offset }
func (e *Unary) Pos() int   { return e.Offset }
func (e *Binary) Pos() int  { return e.Offset }

// Assign binds the value of X to Name.
type Assign struct {
	Name string
	X    Expr
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

func newParser(src string) (*parser, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return &parser{src: src, toks: toks}, nil
}

// Parse parses src as a single expression.
func Parse(src string) (Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return x, nil
}

// ParseStatement parses src as an assignment statement.
func ParseStatement(src string) (*Assign, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	name := p.peek()
	if err := p.expect(IDENT); err != nil {
		return nil, err
	}
	if err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return &Assign{Name: name.Lexeme, X: x}, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t Token, msg string) error {
	return &SyntaxError{Src: p.src, Pos: t.Pos, Msg: msg}
}

func (p *parser) expect(tt TokenType) error {
	t := p.next()
	if t.Type != tt {
		return p.errorf(t, "expected "+tt.String()+", found "+t.Type.String())
	}
	return nil
}

func (p *parser) expression() (Expr, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op.Type, X: x, Y: y, Offset: op.Pos}
	}
	return x, nil
}

func (p *parser) term() (Expr, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op.Type, X: x, Y: y, Offset: op.Pos}
	}
	return x, nil
}

func (p *parser) unary() (Expr, error) {
	if t := p.peek(); t.Type == PLUS || t.Type == MINUS {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: t.Type, X: x, Offset: t.Pos}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	t := p.next()
	switch t.Type {
	case INTEGER, NUMBER, STRING, BOOLEAN:
		return &Literal{Value: t.Literal, Offset: t.Pos}, nil
	case IDENT:
		return &Ident{Name: t.Lexeme, Offset: t.Pos}, nil
	case LPAREN:
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, p.errorf(t, "unexpected "+t.Type.String())
}
