// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements a recursive-descent parser that lifts ASN.1
// module text (as produced by [asn1c.dev/asn1c/token]) into the unresolved
// [asn1.Module] model. Value references inside SIZE/RANGE constraints and
// DEFAULT clauses are retained as symbolic [asn1.Bound]/[asn1.Value]
// references; [asn1c.dev/asn1c/resolve] fills them in.
package parser

import (
	"strconv"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/token"
)

// ParseError reports a syntax error at a specific source location, in the
// shape required by spec.md §6 ("<path>:<line>:<col>: <message>") once a
// caller prepends the file path.
type ParseError struct {
	Pos      token.Position
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	msg := "expected " + e.Expected
	if e.Found != "" {
		msg += ", found " + e.Found
	}
	return e.Pos.String() + ": " + msg
}

// Parse tokenizes and parses src as a single ASN.1 ModuleDefinition.
func Parse(src string) (*asn1.Module, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, names: map[string]int{}}
	return p.parseModule()
}

// lexAll runs the scanner to completion, translating lexical errors into
// ParseErrors so callers only ever see one error type from this package.
func lexAll(src string) ([]token.Token, error) {
	s := token.NewScanner(src)
	var toks []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			if le, ok := err.(*token.Error); ok {
				return nil, &ParseError{Pos: le.Pos, Expected: "valid token", Found: le.Msg}
			}
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// parser holds the recursive-descent parser's mutable state: the token
// stream and a cursor into it, plus the set of type names already in use (for
// anonymous-type name synthesis, spec.md §4.4).
type parser struct {
	toks []token.Token
	pos  int

	names map[string]int // type name -> number of times used, for collision suffixes
}

func (p *parser) cur() token.Token  { return p.toks[p.pos] }
func (p *parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// atWord reports whether the current token is the word w.
func (p *parser) atWord(w string) bool {
	return p.cur().Kind == token.Word && p.cur().Text == w
}

// atPunct reports whether the current token is the punctuation p2.
func (p *parser) atPunct(p2 string) bool {
	return p.cur().Kind == token.Punct && p.cur().Text == p2
}

func (p *parser) errorf(expected string) error {
	return &ParseError{Pos: p.cur().Pos, Expected: expected, Found: p.cur().String()}
}

func (p *parser) expectPunct(s string) error {
	if !p.atPunct(s) {
		return p.errorf("'" + s + "'")
	}
	p.advance()
	return nil
}

func (p *parser) expectWord(w string) error {
	if !p.atWord(w) {
		return p.errorf("'" + w + "'")
	}
	p.advance()
	return nil
}

// expectIdent consumes and returns any Word token (identifier or reserved
// word used as one).
func (p *parser) expectIdent() (string, error) {
	if p.cur().Kind != token.Word {
		return "", p.errorf("identifier")
	}
	t := p.advance()
	return t.Text, nil
}

// parseModule parses a complete ModuleDefinition (spec.md §4.4).
func (p *parser) parseModule() (*asn1.Module, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	m := &asn1.Module{Name: name}

	if p.atPunct("{") { // optional ObjectIdentifier
		oid, err := p.parseOIDLiteral()
		if err != nil {
			return nil, err
		}
		m.OID = oid
	}

	if err := p.expectWord("DEFINITIONS"); err != nil {
		return nil, err
	}

	m.TagMode = asn1.Explicit
	switch {
	case p.atWord("EXPLICIT"):
		p.advance()
	case p.atWord("IMPLICIT"):
		p.advance()
		m.TagMode = asn1.Implicit
	case p.atWord("AUTOMATIC"):
		p.advance()
		m.TagMode = asn1.Automatic
	}
	if m.TagMode != asn1.Explicit || p.atWord("TAGS") {
		if err := p.expectWord("TAGS"); err != nil {
			return nil, err
		}
	}

	if err := p.expectPunct("::="); err != nil {
		return nil, err
	}
	if err := p.expectWord("BEGIN"); err != nil {
		return nil, err
	}

	if p.atWord("IMPORTS") {
		imports, err := p.parseImports()
		if err != nil {
			return nil, err
		}
		m.Imports = imports
	}

	for !p.atWord("END") {
		if p.cur().Kind == token.EOF {
			return nil, p.errorf("END")
		}
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		m.Assignments = append(m.Assignments, a)
	}
	p.advance() // END
	return m, nil
}

func (p *parser) parseOIDLiteral() (asn1.ObjectIdentifier, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var oid asn1.ObjectIdentifier
	for !p.atPunct("}") {
		if p.cur().Kind == token.Word {
			// name(number) or bare name; we only track the numeric component.
			p.advance()
			if p.atPunct("(") {
				p.advance()
				if p.cur().Kind != token.Integer {
					return nil, p.errorf("integer")
				}
				oid = append(oid, uint(p.advance().Int))
				if err := p.expectPunct(")"); err != nil {
					return nil, err
				}
			}
		} else if p.cur().Kind == token.Integer {
			oid = append(oid, uint(p.advance().Int))
		} else {
			return nil, p.errorf("OID component")
		}
	}
	p.advance() // }
	return oid, nil
}

func (p *parser) parseImports() ([]asn1.Import, error) {
	p.advance() // IMPORTS
	var imports []asn1.Import
	for !p.atPunct(";") {
		var syms []string
		for {
			s, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			syms = append(syms, s)
			if p.atPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if err := p.expectWord("FROM"); err != nil {
			return nil, err
		}
		mod, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if p.atPunct("{") { // optional OID of the imported module
			if _, err := p.parseOIDLiteral(); err != nil {
				return nil, err
			}
		}
		imports = append(imports, asn1.Import{Module: mod, Symbols: syms})
	}
	p.advance() // ;
	return imports, nil
}

// parseAssignment dispatches on the assigned name's case (type vs. value) and
// the following token to distinguish a type, value, or OID assignment.
func (p *parser) parseAssignment() (asn1.Assignment, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if token.IsUpper(name) {
		if err := p.expectPunct("::="); err != nil {
			return nil, err
		}
		typ, err := p.parseType(name)
		if err != nil {
			return nil, err
		}
		return &asn1.TypeAssignment{Name: name, Type: typ}, nil
	}

	// lowercase: either "name OBJECT IDENTIFIER ::= { ... }" or
	// "name Type ::= Value".
	if p.atWord("OBJECT") && p.peekAt(1).Text == "IDENTIFIER" {
		p.advance()
		p.advance()
		if err := p.expectPunct("::="); err != nil {
			return nil, err
		}
		oid, err := p.parseOIDLiteral()
		if err != nil {
			return nil, err
		}
		return &asn1.OIDAssignment{Name: name, OID: oid}, nil
	}
	typ, err := p.parseType(name)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("::="); err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &asn1.ValueAssignment{Name: name, Type: typ, Value: val}, nil
}

// uniqueName returns name, or name suffixed with a disambiguating index if it
// has already been used (spec.md §4.4, anonymous type lifting).
func (p *parser) uniqueName(name string) string {
	n := p.names[name]
	p.names[name]++
	if n == 0 {
		return name
	}
	return name + strconv.Itoa(n+1)
}
