// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c"
)

func TestParsePizza(t *testing.T) {
	src := `
Example DEFINITIONS AUTOMATIC TAGS ::=
BEGIN

Topping ::= ENUMERATED { mushroom, pepperoni, cheese }

Pizza ::= SEQUENCE {
    size INTEGER(1..4),
    topping Topping
}

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, "Example", m.Name)
	require.Equal(t, asn1.Automatic, m.TagMode)
	require.Len(t, m.Assignments, 2)

	top := m.TypeAssignment("Topping")
	require.NotNil(t, top)
	require.Equal(t, asn1.KindEnumerated, top.Kind)
	require.Equal(t, []asn1.EnumValue{{Name: "mushroom"}, {Name: "pepperoni", Value: 1}, {Name: "cheese", Value: 2}}, top.Variants)

	pizza := m.TypeAssignment("Pizza")
	require.NotNil(t, pizza)
	require.Equal(t, asn1.KindSequence, pizza.Kind)
	require.Len(t, pizza.Fields, 2)

	size := pizza.Fields[0]
	require.Equal(t, "size", size.Name)
	require.Equal(t, asn1.KindInteger, size.Type.Kind)
	require.NotNil(t, size.Type.Constraint)
	require.Equal(t, asn1.ConstraintRange, size.Type.Constraint.Kind)
	require.Equal(t, asn1.Bound{Kind: asn1.BoundLiteral, Literal: 1}, size.Type.Constraint.Lower)
	require.Equal(t, asn1.Bound{Kind: asn1.BoundLiteral, Literal: 4}, size.Type.Constraint.Upper)

	topping := pizza.Fields[1]
	require.Equal(t, "topping", topping.Name)
	require.Equal(t, asn1.KindReference, topping.Type.Kind)
	require.Equal(t, "Topping", topping.Type.Ref.Name)
}

func TestParseAnonymousTypeNaming(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Order ::= SEQUENCE {
    pizza SEQUENCE {
        topping SEQUENCE {
            name UTF8String
        }
    },
    drink SEQUENCE {
        topping SEQUENCE {
            name UTF8String
        }
    }
}

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	order := m.TypeAssignment("Order")
	require.NotNil(t, order)
	require.Len(t, order.Fields, 2)

	pizza := order.Fields[0].Type
	require.Equal(t, "OrderPizza", pizza.Name)
	drink := order.Fields[1].Type
	require.Equal(t, "OrderDrink", drink.Name)

	require.Equal(t, "OrderPizzaTopping", pizza.Fields[0].Type.Name)
	require.Equal(t, "OrderDrinkTopping", drink.Fields[0].Type.Name)
}

func TestParseSiblingChoiceFieldNaming(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Thing ::= SEQUENCE {
    variant CHOICE { a BOOLEAN, b BOOLEAN },
    other CHOICE { a BOOLEAN, b BOOLEAN }
}

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	thing := m.TypeAssignment("Thing")
	require.NotNil(t, thing)
	require.Equal(t, "ThingVariant", thing.Fields[0].Type.Name)
	require.Equal(t, "ThingOther", thing.Fields[1].Type.Name)
}

func TestParseExtensibleSequenceWithOptionalAndDefault(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Header ::= SEQUENCE {
    timestamp INTEGER(0..2147483647),
    flags BOOLEAN DEFAULT FALSE,
    note UTF8String OPTIONAL,
    ...
}

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	h := m.TypeAssignment("Header")
	require.NotNil(t, h)
	require.True(t, h.Extensible)
	require.Equal(t, 3, h.ExtensionIndex)
	require.Len(t, h.Fields, 3)

	require.True(t, h.Fields[2].Optional)
	require.NotNil(t, h.Fields[1].Default)
	require.Equal(t, asn1.ValueBool, h.Fields[1].Default.Kind)
	require.False(t, h.Fields[1].Default.Bool)
}

func TestParseSizeConstrainedOctetString(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Payload ::= OCTET STRING (SIZE(0..65535))

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	p := m.TypeAssignment("Payload")
	require.NotNil(t, p)
	require.NotNil(t, p.Constraint)
	require.Equal(t, asn1.ConstraintSize, p.Constraint.Kind)
	require.Equal(t, int64(0), p.Constraint.Lower.Literal)
	require.Equal(t, int64(65535), p.Constraint.Upper.Literal)
}

func TestParseSequenceOf(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Payloads ::= SEQUENCE (SIZE(0..20000)) OF OCTET STRING

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	p := m.TypeAssignment("Payloads")
	require.NotNil(t, p)
	require.Equal(t, asn1.KindSequenceOf, p.Kind)
	require.NotNil(t, p.Constraint)
	require.Equal(t, int64(20000), p.Constraint.Upper.Literal)
	require.Equal(t, asn1.KindOctetString, p.Element.Kind)
}

func TestParseSemiConstrainedInteger(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

RangedMax ::= INTEGER(0..MAX)

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	r := m.TypeAssignment("RangedMax")
	require.NotNil(t, r)
	require.Equal(t, asn1.BoundLiteral, r.Constraint.Lower.Kind)
	require.Equal(t, asn1.BoundMax, r.Constraint.Upper.Kind)
}

func TestParseValueReferenceInConstraint(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

maxSize INTEGER ::= 128

Blob ::= OCTET STRING (SIZE(0..maxSize))

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Assignments, 2)
	va, ok := m.ValueAssignment("maxSize")
	require.True(t, ok)
	require.Equal(t, asn1.ValueInt, va.Value.Kind)
	require.EqualValues(t, 128, va.Value.Int)

	blob := m.TypeAssignment("Blob")
	require.Equal(t, asn1.BoundReference, blob.Constraint.Upper.Kind)
	require.Equal(t, "maxSize", blob.Constraint.Upper.Reference)
}

func TestParseImports(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

IMPORTS
    Topping, Size
        FROM Common { 1 2 3 };

Pizza ::= SEQUENCE { topping Topping }

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Imports, 1)
	require.Equal(t, "Common", m.Imports[0].Module)
	require.Equal(t, []string{"Topping", "Size"}, m.Imports[0].Symbols)
}

func TestParseExplicitTag(t *testing.T) {
	src := `
Example DEFINITIONS EXPLICIT TAGS ::=
BEGIN

Thing ::= SEQUENCE {
    a [0] IMPLICIT INTEGER,
    b [1] EXPLICIT BOOLEAN
}

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	thing := m.TypeAssignment("Thing")
	a := thing.Fields[0].Type
	require.True(t, a.Implicit)
	require.Equal(t, asn1.ClassContextSpecific|asn1.Tag(0), a.Tag)
	b := thing.Fields[1].Type
	require.False(t, b.Implicit)
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	_, err := Parse("Example DEFINITIONS ::= BEGIN Foo ::= 123 END")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseErrorMissingEnd(t *testing.T) {
	_, err := Parse("Example DEFINITIONS ::= BEGIN Foo ::= BOOLEAN")
	require.Error(t, err)
}

func TestParseWithComponentsConstraintIsSkipped(t *testing.T) {
	src := `
Example DEFINITIONS ::=
BEGIN

Thing ::= SEQUENCE {
    a INTEGER,
    b BOOLEAN
} (WITH COMPONENTS { a (0..10), b PRESENT })

END
`
	m, err := Parse(src)
	require.NoError(t, err)
	thing := m.TypeAssignment("Thing")
	require.NotNil(t, thing)
	require.Len(t, thing.Fields, 2)
}
