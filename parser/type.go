// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/token"
)

// parseType parses a Type production. path is the name under which an
// anonymous inline type (e.g. an inline SEQUENCE used as a field's type)
// would be registered if one is found at this position; built-in and
// reference types ignore it.
func (p *parser) parseType(path string) (*asn1.Type, error) {
	var tag *asn1.Tag
	implicit := false
	explicitOverride := false
	if p.atPunct("[") {
		t, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		tag = &t
		switch {
		case p.atWord("IMPLICIT"):
			p.advance()
			implicit = true
		case p.atWord("EXPLICIT"):
			p.advance()
			explicitOverride = true
		}
	}

	typ, err := p.parseUntaggedType(path)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		typ.Tag = *tag
		typ.Implicit = implicit && !explicitOverride
		typ.HasExplicitTag = true
	}
	switch typ.Kind {
	case asn1.KindSequence, asn1.KindSet, asn1.KindChoice, asn1.KindEnumerated:
		if typ.Name == "" {
			typ.Name = p.uniqueName(path)
		}
	}
	return typ, nil
}

// parseTag parses a "[Class number]" tag prefix. The class defaults to
// context-specific, matching X.680 §8.3 and the struct-tag convention used
// throughout this compiler's own Go code.
func (p *parser) parseTag() (asn1.Tag, error) {
	if err := p.expectPunct("["); err != nil {
		return 0, err
	}
	class := asn1.ClassContextSpecific
	switch {
	case p.atWord("UNIVERSAL"):
		p.advance()
		class = asn1.ClassUniversal
	case p.atWord("APPLICATION"):
		p.advance()
		class = asn1.ClassApplication
	case p.atWord("PRIVATE"):
		p.advance()
		class = asn1.ClassPrivate
	}
	if p.cur().Kind != token.Integer {
		return 0, p.errorf("tag number")
	}
	num := p.advance().Int
	if err := p.expectPunct("]"); err != nil {
		return 0, err
	}
	return class | asn1.Tag(num), nil
}

func (p *parser) parseUntaggedType(path string) (*asn1.Type, error) {
	switch {
	case p.atWord("BOOLEAN"):
		p.advance()
		return &asn1.Type{Kind: asn1.KindBoolean, Tag: asn1.TagBoolean}, nil
	case p.atWord("NULL"):
		p.advance()
		return &asn1.Type{Kind: asn1.KindNull, Tag: asn1.TagNull}, nil
	case p.atWord("INTEGER"):
		return p.parseIntegerType()
	case p.atWord("ENUMERATED"):
		return p.parseEnumeratedType()
	case p.atWord("BIT"):
		return p.parseBitStringType()
	case p.atWord("OCTET"):
		p.advance()
		if err := p.expectWord("STRING"); err != nil {
			return nil, err
		}
		c, err := p.parseOptionalConstraint(asn1.ConstraintSize)
		if err != nil {
			return nil, err
		}
		return &asn1.Type{Kind: asn1.KindOctetString, Tag: asn1.TagOctetString, Constraint: c}, nil
	case p.atWord("SEQUENCE"):
		return p.parseSequenceOrSet(path, asn1.KindSequence, asn1.KindSequenceOf, asn1.TagSequence)
	case p.atWord("SET"):
		return p.parseSequenceOrSet(path, asn1.KindSet, asn1.KindSetOf, asn1.TagSet)
	case p.atWord("CHOICE"):
		return p.parseChoiceType(path)
	case isRestrictedString(p.cur()):
		return p.parseRestrictedStringType()
	case p.cur().Kind == token.Word && token.IsUpper(p.cur().Text):
		return p.parseTypeReference()
	default:
		return nil, p.errorf("type")
	}
}

func isRestrictedString(t token.Token) bool {
	if t.Kind != token.Word {
		return false
	}
	switch t.Text {
	case "UTF8String", "IA5String", "NumericString", "PrintableString", "VisibleString":
		return true
	default:
		return false
	}
}

func (p *parser) parseRestrictedStringType() (*asn1.Type, error) {
	name := p.advance().Text
	c, err := p.parseOptionalConstraint(asn1.ConstraintSize)
	if err != nil {
		return nil, err
	}
	var kind asn1.Kind
	var tag asn1.Tag
	switch name {
	case "UTF8String":
		kind, tag = asn1.KindUTF8String, asn1.TagUTF8String
	case "IA5String":
		kind, tag = asn1.KindIA5String, asn1.TagIA5String
	case "NumericString":
		kind, tag = asn1.KindNumericString, asn1.TagNumericString
	case "PrintableString":
		kind, tag = asn1.KindPrintableString, asn1.TagPrintableString
	case "VisibleString":
		kind, tag = asn1.KindVisibleString, asn1.TagVisibleString
	}
	return &asn1.Type{Kind: kind, Tag: tag, Constraint: c}, nil
}

func (p *parser) parseTypeReference() (*asn1.Type, error) {
	name, _ := p.expectIdent()
	mod := ""
	if p.atPunct(".") {
		p.advance()
		mod = name
		name, _ = p.expectIdent()
	}
	return &asn1.Type{Kind: asn1.KindReference, Ref: &asn1.TypeRef{Module: mod, Name: name}, Name: name}, nil
}

func (p *parser) parseIntegerType() (*asn1.Type, error) {
	p.advance() // INTEGER
	typ := &asn1.Type{Kind: asn1.KindInteger, Tag: asn1.TagInteger}
	if p.atPunct("{") { // named numbers: INTEGER { a(1), b(2) }
		consts, err := p.parseNamedConstants()
		if err != nil {
			return nil, err
		}
		typ.NamedConstants = consts
	}
	c, err := p.parseOptionalConstraint(asn1.ConstraintRange)
	if err != nil {
		return nil, err
	}
	typ.Constraint = c
	return typ, nil
}

func (p *parser) parseNamedConstants() ([]asn1.NamedConstant, error) {
	p.advance() // {
	var out []asn1.NamedConstant
	for {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct("("); err != nil {
			return nil, err
		}
		b, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		out = append(out, asn1.NamedConstant{Name: name, Value: b})
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *parser) parseBitStringType() (*asn1.Type, error) {
	p.advance() // BIT
	if err := p.expectWord("STRING"); err != nil {
		return nil, err
	}
	typ := &asn1.Type{Kind: asn1.KindBitString, Tag: asn1.TagBitString}
	if p.atPunct("{") {
		consts, err := p.parseNamedConstants()
		if err != nil {
			return nil, err
		}
		typ.NamedConstants = consts
	}
	c, err := p.parseOptionalConstraint(asn1.ConstraintSize)
	if err != nil {
		return nil, err
	}
	typ.Constraint = c
	return typ, nil
}

func (p *parser) parseEnumeratedType() (*asn1.Type, error) {
	p.advance() // ENUMERATED
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	typ := &asn1.Type{Kind: asn1.KindEnumerated, Tag: asn1.TagEnumerated, ExtensionIndex: -1}
	next := int64(0)
	for !p.atPunct("}") {
		if p.atPunct("...") {
			p.advance()
			typ.Extensible = true
			typ.ExtensionIndex = len(typ.Variants)
			if p.atPunct(",") {
				p.advance()
				continue
			}
			break
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		v := next
		if p.atPunct("(") {
			p.advance()
			if p.cur().Kind != token.Integer {
				return nil, p.errorf("integer")
			}
			v = p.advance().Int
			if err := p.expectPunct(")"); err != nil {
				return nil, err
			}
		}
		typ.Variants = append(typ.Variants, asn1.EnumValue{Name: name, Value: v})
		next = v + 1
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return typ, nil
}

// parseSequenceOrSet parses both "SEQUENCE { ... }" (aggregateKind) and
// "SEQUENCE OF Type" / "SEQUENCE (SIZE(..)) OF Type" (ofKind).
func (p *parser) parseSequenceOrSet(path string, aggregateKind, ofKind asn1.Kind, tag asn1.Tag) (*asn1.Type, error) {
	p.advance() // SEQUENCE | SET

	c, err := p.parseOptionalConstraint(asn1.ConstraintSize)
	if err != nil {
		return nil, err
	}
	if p.atWord("OF") {
		p.advance()
		elem, err := p.parseType(path + "Elem")
		if err != nil {
			return nil, err
		}
		return &asn1.Type{Kind: ofKind, Tag: tag, Constraint: c, Element: elem}, nil
	}

	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	typ := &asn1.Type{Kind: aggregateKind, Tag: tag, ExtensionIndex: -1}
	fields, err := p.parseComponentTypeList(path, typ)
	if err != nil {
		return nil, err
	}
	typ.Fields = fields
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	// A SEQUENCE/SET value list may itself carry a trailing constraint (e.g.
	// "(WITH COMPONENTS {...})"); we do not model it, but it must be consumed
	// so parsing can continue past this type.
	if _, err := p.parseOptionalConstraint(asn1.ConstraintSize); err != nil {
		return nil, err
	}
	return typ, nil
}

func (p *parser) parseChoiceType(path string) (*asn1.Type, error) {
	p.advance() // CHOICE
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	typ := &asn1.Type{Kind: asn1.KindChoice, ExtensionIndex: -1}
	var fields []asn1.Field
	for !p.atPunct("}") {
		if p.atPunct("...") {
			p.advance()
			typ.Extensible = true
			typ.ExtensionIndex = len(fields)
			if p.atPunct(",") {
				p.advance()
				continue
			}
			break
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ft, err := p.parseType(path + exportName(name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, asn1.Field{Name: name, Type: ft})
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	typ.Fields = fields
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return typ, nil
}

// parseComponentTypeList parses SEQUENCE/SET field lists, including an
// extension marker, recording its position on typ.
func (p *parser) parseComponentTypeList(path string, typ *asn1.Type) ([]asn1.Field, error) {
	var fields []asn1.Field
	for !p.atPunct("}") {
		if p.atPunct("...") {
			p.advance()
			typ.Extensible = true
			typ.ExtensionIndex = len(fields)
			// Skip an optional ExceptionSpec / extension-addition-group content;
			// we only need to know that more (extension) fields may follow.
			if p.atPunct(",") {
				p.advance()
				continue
			}
			break
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ft, err := p.parseType(path + exportName(name))
		if err != nil {
			return nil, err
		}
		f := asn1.Field{Name: name, Type: ft}
		switch {
		case p.atWord("OPTIONAL"):
			p.advance()
			f.Optional = true
		case p.atWord("DEFAULT"):
			p.advance()
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			f.Default = &v
		}
		fields = append(fields, f)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return fields, nil
}

// exportName capitalizes the first letter of an ASN.1 field/value identifier
// so it can be combined into a synthesized Go-style type name.
func exportName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
