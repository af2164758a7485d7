package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/kiasaki/solo-lisp/parser/token"
)

// WordRunes are the runes, other than letters, which may appear in an atom.
const WordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = `_+-*/\=<>!&%?`

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// WordType classifies the text of an atom.  Text that looks like a number
// with a fractional part is a FLOAT, text consisting only of digits (with an
// optional leading minus sign) is an INT.  Any other text made of word runes
// is a SYMBOL.  WordType returns INVALID for all other text.
func WordType(text string) token.Type {
	switch {
	case text == "":
		return token.INVALID
	case intPattern.MatchString(text):
		return token.INT
	case floatPattern.MatchString(text):
		return token.FLOAT
	}
	for _, c := range text {
		if !isWord(c) {
			return token.INVALID
		}
	}
	return token.SYMBOL
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case '{':
		return lex.charToken(token.BRACE_L)
	case '}':
		return lex.charToken(token.BRACE_R)
	case '\'':
		return lex.charToken(token.QUOTE)
	case ';':
		for lex.peekRune() != '\n' {
			err := lex.readChar()
			if err == io.EOF {
				return lex.scanner.EmitToken(token.COMMENT)
			}
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '"':
		for lex.peekRune() != '"' {
			err := lex.readChar()
			if err == io.EOF {
				return lex.errorf("unterminated string literal")
			}
			if err != nil {
				return lex.emitError(err, false)
			}
			if lex.ch == '\\' {
				// Wait until parsing to check the escaped character
				err := lex.readChar()
				if err == io.EOF {
					return lex.errorf("unterminated string literal")
				}
				if err != nil {
					return lex.emitError(err, false)
				}
			}
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.STRING)
	default:
		if isWord(lex.ch) {
			return lex.readWord()
		}
		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.INVALID, lex.readErr.Error())
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	tok := lex.scanner.EmitToken(typ)
	return tok
}

// readWord reads an atom.  A run of digits may be followed by a fractional
// part to form a decimal.
func (lex *Lexer) readWord() *token.Token {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	typ := WordType(lex.scanner.Text())
	if typ == token.INT && lex.peekRune() == '.' {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
		if !isDigit(lex.peekRune()) {
			return lex.errorf("invalid decimal literal: %v", lex.scanner.Text())
		}
		for isWord(lex.peekRune()) {
			err := lex.readChar()
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		typ = WordType(lex.scanner.Text())
		if typ != token.FLOAT {
			return lex.errorf("invalid decimal literal: %v", lex.scanner.Text())
		}
	}
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWord(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || strings.ContainsRune(WordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
