// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/token"
)

// parseValue parses a Value literal. Per spec.md §4.4, only the forms needed
// for DEFAULT clauses and value assignments of INTEGER, restricted strings,
// BOOLEAN, and ENUMERATED are supported: integer literals, cstrings,
// TRUE/FALSE, and bare identifiers (an ENUMERATED variant name or a value
// reference, disambiguated by [asn1c.dev/asn1c/resolve]).
func (p *parser) parseValue() (asn1.Value, error) {
	switch {
	case p.atWord("TRUE"):
		p.advance()
		return asn1.Value{Kind: asn1.ValueBool, Bool: true}, nil
	case p.atWord("FALSE"):
		p.advance()
		return asn1.Value{Kind: asn1.ValueBool, Bool: false}, nil
	case p.atWord("NULL"):
		p.advance()
		return asn1.Value{Kind: asn1.ValueNull}, nil
	case p.cur().Kind == token.Integer:
		n := p.advance().Int
		return asn1.Value{Kind: asn1.ValueInt, Int: n}, nil
	case p.cur().Kind == token.String:
		s := p.advance().Text
		return asn1.Value{Kind: asn1.ValueString, Str: s}, nil
	case p.cur().Kind == token.Word:
		name := p.advance().Text
		return asn1.Value{Kind: asn1.ValueEnumIdent, Ident: name}, nil
	default:
		return asn1.Value{}, p.errorf("value")
	}
}
