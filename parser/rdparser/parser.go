package rdparser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser/lexer"
	"github.com/kiasaki/solo-lisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// SyntaxError is returned by a Parser when its input does not follow the
// grammar.
type SyntaxError struct {
	Source *token.Location
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Msg)
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses every expression remaining in the input.
func (p *Parser) ParseProgram() ([]lisp.LVal, error) {
	var exprs []lisp.LVal

	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseExpression parses the next expression in the input.
func (p *Parser) ParseExpression() (lisp.LVal, error) {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.FLOAT:
		return p.ParseLiteralFloat()
	case token.STRING:
		return p.ParseLiteralString()
	case token.QUOTE:
		return p.ParseQuote()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseSExpression()
	case token.BRACE_L:
		return p.ParseQExpression()
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf("%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseLiteralInt() (lisp.LVal, error) {
	if !p.expect(token.INT) {
		return nil, p.errorf("invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.Atoi(text)
	if err != nil {
		return nil, p.errorf("integer literal overflows int: %v", text)
	}
	return lisp.Int(x), nil
}

func (p *Parser) ParseLiteralFloat() (lisp.LVal, error) {
	if !p.expect(token.FLOAT) {
		return nil, p.errorf("invalid decimal literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("invalid decimal literal: %v", text)
	}
	return lisp.Float(x), nil
}

func (p *Parser) ParseLiteralString() (lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	s, err := strconv.Unquote(text)
	if err != nil {
		return nil, p.errorf("invalid string literal: %v", text)
	}
	return lisp.String(s), nil
}

// ParseQuote parses a quoted expression.  A quoted list produces a
// Q-expression holding the cells of the list, any other quoted expression
// produces a Q-expression holding just that expression.
func (p *Parser) ParseQuote() (lisp.LVal, error) {
	if !p.expect(token.QUOTE) {
		return nil, p.errorf("invalid quote: %v", p.PeekType())
	}
	if p.PeekType() == token.EOF {
		p.ReadToken()
		return nil, p.errorf("unexpected %s following quote", token.EOF)
	}
	v, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return Quote(v), nil
}

func (p *Parser) ParseSymbol() (lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf("invalid symbol: %v", p.PeekType())
	}
	return lisp.Symbol(p.Token().Text), nil
}

func (p *Parser) ParseSExpression() (lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf("invalid s-expression: %v", p.PeekType())
	}
	cells, err := p.parseCells(token.PAREN_R)
	if err != nil {
		return nil, err
	}
	return lisp.Expr(cells...), nil
}

func (p *Parser) ParseQExpression() (lisp.LVal, error) {
	if !p.expect(token.BRACE_L) {
		return nil, p.errorf("invalid q-expression: %v", p.PeekType())
	}
	cells, err := p.parseCells(token.BRACE_R)
	if err != nil {
		return nil, err
	}
	return lisp.List(cells...), nil
}

func (p *Parser) parseCells(end token.Type) ([]lisp.LVal, error) {
	open := p.Token()
	var cells []lisp.LVal
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			return nil, &SyntaxError{open.Source, "unmatched " + open.Text}
		}
		if p.expect(end) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	return cells, nil
}

// Quote converts v into a Q-expression.
func Quote(v lisp.LVal) *lisp.QExpr {
	switch v := v.(type) {
	case *lisp.SExpr:
		return lisp.List(v.Cells...)
	default:
		return lisp.List(v)
	}
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	return &SyntaxError{
		Source: p.Token().Source,
		Msg:    fmt.Sprintf(format, v...),
	}
}
