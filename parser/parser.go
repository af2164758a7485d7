// Package parser provides a lisp parser.
//
// 	expr    := <number> | <decimal> | <string> | <symbol> | <sexpr> | <qexpr> | <quote>
// 	number  := /-?[0-9]+/
// 	decimal := /-?[0-9]+/ '.' /[0-9]+/
// 	string  := '"' <strcontent> '"'
// 	symbol  := /[A-Za-z0-9_+\-*\/\\=<>!&%?]+/
// 	sexpr   := '(' <expr>* ')'
// 	qexpr   := '{' <expr>* '}'
// 	quote   := "'" <expr>
// 	comment := /;[^\n]*/
//
// The default Reader is a recursive descent parser (package rdparser).  The
// functions Parse and ParseLVal use parser combinators and are suited to
// interactive input, where an expression may span several reads.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser/lexer"
	"github.com/kiasaki/solo-lisp/parser/rdparser"
	"github.com/kiasaki/solo-lisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

// ErrIncomplete is returned by ParseLVal when text ends within an
// expression.
var ErrIncomplete = errors.New("incomplete expression")

// NewReader returns the default lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeQExpr
	nodeQuote
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodeQExpr:   "QEXPR",
	nodeQuote:   "QUOTE",
}

// Parse parses lisp expressions from text and evaluates them in env.  If
// print is true the value of each expression is printed to the runtime's
// standard output.  Parse returns the value of the last expression or the
// first error value produced, which is not printed.
func Parse(env *lisp.LEnv, print bool, text []byte) (lisp.LVal, error) {
	exprs, _, err := ParseLVal(text)
	if err != nil {
		return nil, err
	}
	var v lisp.LVal = lisp.Nil()
	for _, expr := range exprs {
		v = env.Eval(expr)
		if lisp.IsError(v) {
			return v, nil
		}
		if print {
			fmt.Fprintln(env.Runtime.Stdout, v)
		}
	}
	return v, nil
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error that was encountered in parsing.
// If text ends inside an unterminated expression the error is ErrIncomplete.
func ParseLVal(text []byte) ([]lisp.LVal, int, error) {
	text = bytes.TrimRightFunc(text, unicode.IsSpace)
	var v []lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		lval, err := getLVal(root)
		if err != nil {
			return v, s.GetCursor(), err
		}
		if lval != nil {
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	if !s.Endof() {
		cursor := s.GetCursor()
		if incomplete(text[cursor:]) {
			return v, cursor, ErrIncomplete
		}
		return v, cursor, fmt.Errorf("syntax error at byte %d: unexpected %q", cursor, firstRune(text[cursor:]))
	}
	return v, s.GetCursor(), nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	str := parsec.Token(`"(?:\\.|[^"\\])*"`, "STRING")
	word := parsec.Token(`[A-Za-z0-9_+\-*/\\=<>!&%?]+(?:\.[A-Za-z0-9_+\-*/\\=<>!&%?]+)?`, "WORD")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		str,
		word,
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(astNode(nodeQExpr), openB, exprList, closeB)
	quote := parsec.And(astNode(nodeQuote), q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, sexpr, qexpr, quote)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// badNode records a term which matched the grammar's tokens but could not be
// converted to a value.
type badNode struct {
	err error
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	for _, n := range nodes {
		if bad, ok := n.(*badNode); ok {
			return bad
		}
	}
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return &badNode{fmt.Errorf("unexpected parse node %T", nodes[0])}
		}
		lval, err := termLVal(term)
		if err != nil {
			return &badNode{err}
		}
		return lval
	case nodeSExpr:
		return lisp.Expr(lvalNodes(nodes)...)
	case nodeQExpr:
		return lisp.List(lvalNodes(nodes)...)
	case nodeQuote:
		cells := lvalNodes(nodes)
		if len(cells) != 1 {
			return &badNode{fmt.Errorf("quote must be followed by one expression")}
		}
		return rdparser.Quote(cells[0])
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

// lvalNodes returns the values among nodes.  Delimiters and comments are
// dropped.
func lvalNodes(nodes []parsec.ParsecNode) []lisp.LVal {
	var cells []lisp.LVal
	for _, c := range nodes {
		if v, ok := c.(lisp.LVal); ok {
			cells = append(cells, v)
		}
	}
	return cells
}

func termLVal(term *parsec.Terminal) (lisp.LVal, error) {
	switch term.Name {
	case "STRING":
		s, err := strconv.Unquote(term.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal: %v", term.Value)
		}
		return lisp.String(s), nil
	case "WORD":
		switch lexer.WordType(term.Value) {
		case token.INT:
			x, err := strconv.Atoi(term.Value)
			if err != nil {
				return nil, fmt.Errorf("integer literal overflows int: %v", term.Value)
			}
			return lisp.Int(x), nil
		case token.FLOAT:
			x, err := strconv.ParseFloat(term.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid decimal literal: %v", term.Value)
			}
			return lisp.Float(x), nil
		case token.SYMBOL:
			return lisp.Symbol(term.Value), nil
		}
		return nil, fmt.Errorf("invalid atom: %v", term.Value)
	}
	return nil, fmt.Errorf("unexpected terminal %s", term.Name)
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

// getLVal returns the value parsed at root.  A nil value is returned when
// root is a comment.
func getLVal(root parsec.ParsecNode) (lisp.LVal, error) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return nil, nil
	}
	switch node := nodes[0].(type) {
	case *badNode:
		return nil, node.err
	case lisp.LVal:
		return node, nil
	}
	return nil, nil
}

// incomplete returns true if text ends inside a string or with unclosed
// delimiters.
func incomplete(text []byte) bool {
	depth := 0
	inString := false
	inComment := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case inString:
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
		default:
			switch c {
			case ';':
				inComment = true
			case '"':
				inString = true
			case '(', '{':
				depth++
			case ')', '}':
				depth--
			}
			if depth < 0 {
				return false
			}
		}
	}
	if inString {
		return true
	}
	if depth > 0 {
		return true
	}
	last := bytes.TrimRightFunc(text, unicode.IsSpace)
	return len(last) > 0 && last[len(last)-1] == '\''
}

func firstRune(text []byte) rune {
	r := []rune(string(text))
	if len(r) == 0 {
		return 0
	}
	return r[0]
}
