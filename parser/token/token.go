package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	return fmt.Sprintf("%s %s %q", tok.Source, tok.Type, tok.Text)
}

type Type uint

// Type constants used for the solo lexer/parser.  These constants aren't
// necessary to use the package.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	FLOAT
	STRING

	COMMENT

	// Operators
	QUOTE

	// Delimiters
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		INT:     "int",
		FLOAT:   "decimal",
		STRING:  "string",
		COMMENT: ";",
		QUOTE:   "'",
		PAREN_L: "(",
		PAREN_R: ")",
		BRACE_L: "{",
		BRACE_R: "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc == nil:
		return "<unknown>"
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
