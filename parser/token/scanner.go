package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// The entire stream is read when the Scanner is constructed.
type Scanner struct {
	file    string
	src     []byte
	readErr error

	start     int // start of the current token
	startLine int
	startCol  int

	pos  int // index of c, a utf-8 rune in src
	next int // index of the rune following c
	line int // line of c
	col  int // column of c
	c    rune
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	src, err := io.ReadAll(r)
	return newScannerBytes(file, src, err)
}

// NewScannerBytes returns a Scanner which reads tokens from src.
func NewScannerBytes(file string, src []byte) *Scanner {
	return newScannerBytes(file, src, nil)
}

func newScannerBytes(file string, src []byte, err error) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		readErr:   err,
		startLine: 1,
		startCol:  1,
		line:      1,
	}
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startLine, s.startCol = s.nextLineCol()
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.src[s.start:s.next])
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or EOF prevents futher runes from being scanned Peek returns
// a false second value.  If Peek returns a false value the next call to
// s.ScanRune will return an error that reflects of the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.readErr != nil || s.next >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  If an error prevents a valid unicode rune from being scanned
// then an error will be returned.
func (s *Scanner) ScanRune() error {
	if s.readErr != nil {
		return s.readErr
	}
	if s.next >= len(s.src) {
		return io.EOF
	}
	c, n := utf8.DecodeRune(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return fmt.Errorf("%s: invalid utf-8 sequence in source text starting with byte %q",
			s.Loc(), s.src[s.next])
	}
	s.line, s.col = s.nextLineCol()
	s.c = c
	s.pos = s.next
	s.next += n
	return nil
}

// nextLineCol returns the line and column of the rune following c.
func (s *Scanner) nextLineCol() (int, int) {
	if s.next == 0 {
		return 1, 1
	}
	if s.c == '\n' {
		return s.line + 1, 1
	}
	return s.line, s.col + 1
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position, the last
// position of the current token.
func (s *Scanner) Loc() *Location {
	line, col := s.line, s.col
	if s.next == 0 {
		line, col = 1, 1
	}
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: line,
		Col:  col,
	}
}
