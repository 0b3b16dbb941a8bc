// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/token"
)

// parseOptionalConstraint parses a parenthesized constraint if one is
// present at the current position, or returns (nil, nil) otherwise. kind
// selects whether a bare "(a..b)" form (no SIZE keyword) is interpreted as a
// RANGE or a SIZE constraint — only INTEGER uses RANGE.
//
// WITH COMPONENTS constraints (spec.md §4.4) and permitted-alphabet (FROM)
// constraints are recognized and skipped; they are retained as annotation
// only, per spec.
func (p *parser) parseOptionalConstraint(kind asn1.ConstraintKind) (*asn1.Constraint, error) {
	if !p.atPunct("(") {
		return nil, nil
	}
	p.advance() // (

	var c *asn1.Constraint
	switch {
	case p.atWord("SIZE"):
		p.advance()
		if err := p.expectPunct("("); err != nil {
			return nil, err
		}
		rc, err := p.parseRangeSpec(asn1.ConstraintSize)
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		c = rc
		p.skipUntilCloseParen()
	case p.atWord("WITH"):
		p.skipBalanced()
		return nil, nil
	case p.atWord("FROM"):
		p.skipBalanced()
		return nil, nil
	default:
		rc, err := p.parseRangeSpec(kind)
		if err != nil {
			return nil, err
		}
		c = rc
		p.skipUntilCloseParen()
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return c, nil
}

// skipUntilCloseParen consumes any trailing constraint clauses this parser
// does not model (e.g. a permitted-alphabet "| FROM(...)" alternative) up to,
// but not including, the constraint's closing ")". It is a no-op if the next
// token is already ")".
func (p *parser) skipUntilCloseParen() {
	depth := 0
	for {
		if p.cur().Kind == token.EOF {
			return
		}
		if depth == 0 && p.atPunct(")") {
			return
		}
		if p.atPunct("(") || p.atPunct("{") {
			depth++
		} else if p.atPunct(")") || p.atPunct("}") {
			depth--
		}
		p.advance()
	}
}

// skipBalanced consumes tokens, starting at the "(" already consumed by the
// caller (depth 1), until that paren is balanced-closed. Used to discard
// constraint forms this compiler does not model (e.g. WITH COMPONENTS).
func (p *parser) skipBalanced() {
	depth := 1
	for depth > 0 {
		if p.cur().Kind == token.EOF {
			return
		}
		if p.atPunct("(") || p.atPunct("{") {
			depth++
		} else if p.atPunct(")") || p.atPunct("}") {
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// parseRangeSpec parses "Bound [.. Bound] [, ...]".
func (p *parser) parseRangeSpec(kind asn1.ConstraintKind) (*asn1.Constraint, error) {
	lower, err := p.parseBound()
	if err != nil {
		return nil, err
	}
	upper := lower
	if p.atPunct("..") {
		p.advance()
		upper, err = p.parseBound()
		if err != nil {
			return nil, err
		}
	}
	c := &asn1.Constraint{Kind: kind, Lower: lower, Upper: upper}
	if p.atPunct(",") && p.peekAt(1).Text == "..." {
		p.advance()
		p.advance()
		c.Extensible = true
	}
	return c, nil
}

func (p *parser) parseBound() (asn1.Bound, error) {
	switch {
	case p.atWord("MIN"):
		p.advance()
		return asn1.Bound{Kind: asn1.BoundMin}, nil
	case p.atWord("MAX"):
		p.advance()
		return asn1.Bound{Kind: asn1.BoundMax}, nil
	case p.cur().Kind == token.Integer:
		n := p.advance().Int
		return asn1.Bound{Kind: asn1.BoundLiteral, Literal: n}, nil
	case p.cur().Kind == token.Word:
		name := p.advance().Text
		return asn1.Bound{Kind: asn1.BoundReference, Reference: name}, nil
	default:
		return asn1.Bound{}, p.errorf("bound")
	}
}
