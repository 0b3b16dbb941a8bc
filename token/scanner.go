// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"strconv"
	"strings"
)

// singleCharPuncts is the set of one-byte punctuation tokens recognized by
// the scanner, per spec.md §4.3.
const singleCharPuncts = "{}(),|<>[];:@"

// Error reports a lexical error: an unexpected or unterminated token.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Scanner tokenizes ASN.1 module text. It skips "--…\n" line comments and
// "/* … */" block comments (which may nest, per spec.md §4.4). A Scanner is
// not safe for concurrent use; create one Scanner per source text.
type Scanner struct {
	src       string
	pos       int // byte offset of the next unread rune
	line, col int
}

// NewScanner creates a Scanner reading from src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

func (s *Scanner) position() Position { return Position{s.line, s.col} }

func (s *Scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *Scanner) advance() byte {
	b := s.src[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b
}

// skipSpaceAndComments advances past whitespace, line comments, and (nested)
// block comments. It returns an *Error if a block comment is unterminated.
func (s *Scanner) skipSpaceAndComments() error {
	for s.pos < len(s.src) {
		switch {
		case isSpace(s.peek()):
			s.advance()
		case s.peek() == '-' && s.peekAt(1) == '-':
			for s.pos < len(s.src) && s.peek() != '\n' {
				s.advance()
			}
		case s.peek() == '/' && s.peekAt(1) == '*':
			start := s.position()
			depth := 0
			for {
				if s.pos >= len(s.src) {
					return &Error{start, "unterminated block comment"}
				}
				if s.peek() == '/' && s.peekAt(1) == '*' {
					s.advance()
					s.advance()
					depth++
					continue
				}
				if s.peek() == '*' && s.peekAt(1) == '/' {
					s.advance()
					s.advance()
					depth--
					if depth == 0 {
						break
					}
					continue
				}
				s.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '-'
}

// Next returns the next [Token] in the source, or a Token with Kind [EOF] at
// the end of input. Next returns an error only for lexical errors (an
// unterminated string or block comment, or a byte that starts no valid
// token).
func (s *Scanner) Next() (Token, error) {
	if err := s.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}
	pos := s.position()
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	for _, p := range multiCharPuncts {
		if strings.HasPrefix(s.src[s.pos:], p) {
			for range p {
				s.advance()
			}
			return Token{Kind: Punct, Text: p, Pos: pos}, nil
		}
	}

	b := s.peek()
	switch {
	case strings.IndexByte(singleCharPuncts, b) >= 0:
		s.advance()
		return Token{Kind: Punct, Text: string(b), Pos: pos}, nil
	case b == '.':
		s.advance()
		return Token{Kind: Punct, Text: ".", Pos: pos}, nil
	case b == '"':
		return s.scanString(pos)
	case isDigit(b):
		return s.scanNumber(pos)
	case isIdentStart(b):
		return s.scanWord(pos)
	default:
		s.advance()
		return Token{}, &Error{pos, "unexpected character " + strconv.QuoteRune(rune(b))}
	}
}

func (s *Scanner) scanString(pos Position) (Token, error) {
	s.advance() // opening quote
	var sb strings.Builder
	for {
		if s.pos >= len(s.src) {
			return Token{}, &Error{pos, "unterminated string literal"}
		}
		if s.peek() == '"' {
			s.advance()
			if s.peek() == '"' { // doubled quote is an escaped quote
				sb.WriteByte('"')
				s.advance()
				continue
			}
			break
		}
		sb.WriteByte(s.advance())
	}
	return Token{Kind: String, Text: sb.String(), Pos: pos}, nil
}

func (s *Scanner) scanNumber(pos Position) (Token, error) {
	start := s.pos
	for isDigit(s.peek()) {
		s.advance()
	}
	text := s.src[start:s.pos]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &Error{pos, "invalid number literal " + strconv.Quote(text)}
	}
	return Token{Kind: Integer, Text: text, Int: n, Pos: pos}, nil
}

// scanWord consumes an identifier. A hyphen may appear inside an identifier
// but not doubled (a doubled hyphen begins a line comment, so scanning stops
// there) and not trailing.
func (s *Scanner) scanWord(pos Position) (Token, error) {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.peek()) {
		if s.peek() == '-' && !isIdentStart(s.peekAt(1)) && !isDigit(s.peekAt(1)) {
			break
		}
		s.advance()
	}
	text := s.src[start:s.pos]
	return Token{Kind: Word, Text: text, Pos: pos}, nil
}
