// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/parser"
)

func parseModule(t *testing.T, src string) *asn1.Module {
	t.Helper()
	m, err := parser.Parse(src)
	require.NoError(t, err)
	return m
}

func TestResolveAutomaticTags(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS AUTOMATIC TAGS ::=
BEGIN
Pizza ::= SEQUENCE {
    size INTEGER(1..4),
    topping BOOLEAN
}
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	pizza := res.Modules["Example"].TypeAssignment("Pizza")
	require.Equal(t, asn1.ClassContextSpecific|asn1.Tag(0), pizza.Fields[0].Tag)
	require.Equal(t, asn1.ClassContextSpecific|asn1.Tag(1), pizza.Fields[1].Tag)
}

func TestResolveAutomaticTagsDisabledByExplicitTag(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS AUTOMATIC TAGS ::=
BEGIN
Pizza ::= SEQUENCE {
    size [5] INTEGER,
    topping BOOLEAN
}
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	pizza := res.Modules["Example"].TypeAssignment("Pizza")
	require.Equal(t, asn1.ClassContextSpecific|asn1.Tag(5), pizza.Fields[0].Tag)
	require.Equal(t, asn1.TagBoolean, pizza.Fields[1].Tag)
}

func TestResolveExplicitModeUsesUnderlyingTag(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS EXPLICIT TAGS ::=
BEGIN
Thing ::= SEQUENCE {
    a INTEGER,
    b OCTET STRING
}
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	thing := res.Modules["Example"].TypeAssignment("Thing")
	require.Equal(t, asn1.TagInteger, thing.Fields[0].Tag)
	require.Equal(t, asn1.TagOctetString, thing.Fields[1].Tag)
}

func TestResolveSetCanonicalOrdering(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS EXPLICIT TAGS ::=
BEGIN
Thing ::= SET {
    a OCTET STRING,
    b INTEGER,
    c BOOLEAN
}
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	thing := res.Modules["Example"].TypeAssignment("Thing")
	require.Equal(t, []string{"c", "b", "a"}, fieldNames(thing.Fields))
}

func fieldNames(fields []asn1.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func TestResolveTypeReference(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS ::=
BEGIN
Topping ::= ENUMERATED { mushroom, pepperoni }
Pizza ::= SEQUENCE { topping Topping }
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	pizza := res.Modules["Example"].TypeAssignment("Pizza")
	ref := pizza.Fields[0].Type
	require.NotNil(t, ref.Ref.Resolved)
	require.Equal(t, asn1.KindEnumerated, ref.Ref.Resolved.Kind)
}

func TestResolveCrossModuleImport(t *testing.T) {
	common := parseModule(t, `
Common DEFINITIONS ::=
BEGIN
Topping ::= ENUMERATED { mushroom, pepperoni }
maxSize INTEGER ::= 100
END
`)
	example := parseModule(t, `
Example DEFINITIONS ::=
BEGIN
IMPORTS Topping, maxSize FROM Common;
Pizza ::= SEQUENCE {
    topping Topping,
    crust OCTET STRING (SIZE(0..maxSize))
}
END
`)
	res, err := Resolve([]*asn1.Module{common, example})
	require.NoError(t, err)
	pizza := res.Modules["Example"].TypeAssignment("Pizza")
	require.NotNil(t, pizza.Fields[0].Type.Ref.Resolved)
	require.Equal(t, int64(100), pizza.Fields[1].Type.Constraint.Upper.Literal)
}

func TestResolveUnknownTypeReference(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS ::=
BEGIN
Pizza ::= SEQUENCE { topping Topping }
END
`)
	_, err := Resolve([]*asn1.Module{m})
	require.Error(t, err)
	var urErr *UnresolvedReferenceError
	require.ErrorAs(t, err, &urErr)
	require.Equal(t, "Topping", urErr.Name)
}

func TestResolveUnknownValueReference(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS ::=
BEGIN
Blob ::= OCTET STRING (SIZE(0..maxSize))
END
`)
	_, err := Resolve([]*asn1.Module{m})
	require.Error(t, err)
	var uvErr *UnresolvedValueError
	require.ErrorAs(t, err, &uvErr)
}

func TestResolveDefaultEnumIdentStaysSymbolic(t *testing.T) {
	m := parseModule(t, `
Example DEFINITIONS ::=
BEGIN
Topping ::= ENUMERATED { mushroom, pepperoni }
Pizza ::= SEQUENCE { topping Topping DEFAULT mushroom }
END
`)
	res, err := Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	pizza := res.Modules["Example"].TypeAssignment("Pizza")
	require.Equal(t, asn1.ValueEnumIdent, pizza.Fields[0].Default.Kind)
	require.Equal(t, "mushroom", pizza.Fields[0].Default.Ident)
}

func TestResolveDuplicateModuleName(t *testing.T) {
	a := parseModule(t, "Example DEFINITIONS ::= BEGIN END")
	b := parseModule(t, "Example DEFINITIONS ::= BEGIN END")
	_, err := Resolve([]*asn1.Module{a, b})
	require.Error(t, err)
}
