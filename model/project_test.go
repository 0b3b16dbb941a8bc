// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/parser"
	"asn1c.dev/asn1c/resolve"
)

func mustProject(t *testing.T, src string) *Program {
	t.Helper()
	m, err := parser.Parse(src)
	require.NoError(t, err)
	res, err := resolve.Resolve([]*asn1.Module{m})
	require.NoError(t, err)
	prog, err := Project(res)
	require.NoError(t, err)
	return prog
}

func findType(m *Module, name string) *Type {
	for _, t := range m.Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func TestProjectSequenceAndIntBuckets(t *testing.T) {
	src := `
Pizza-Module DEFINITIONS AUTOMATIC TAGS ::= BEGIN

Topping ::= ENUMERATED { mozzarella, pepperoni, mushroom }

Pizza ::= SEQUENCE {
    diameter INTEGER (1..4),
    toppings SEQUENCE OF Topping,
    crispy BOOLEAN OPTIONAL,
    bakeTime INTEGER (0..1209600000) DEFAULT 600
}

END
`
	prog := mustProject(t, src)
	require.Len(t, prog.Modules, 1)
	m := prog.Modules[0]

	topping := findType(m, "Topping")
	require.NotNil(t, topping)
	require.Equal(t, KindEnum, topping.Kind)
	require.Len(t, topping.Variants, 3)

	pizza := findType(m, "Pizza")
	require.NotNil(t, pizza)
	require.Equal(t, KindStruct, pizza.Kind)
	require.Len(t, pizza.Fields, 4)

	diameter := pizza.Fields[0]
	require.Equal(t, PrimitiveInt, diameter.Type.Primitive)
	require.Equal(t, BucketU8, diameter.Type.IntBucket)

	toppings := pizza.Fields[1]
	require.Equal(t, PrimitiveList, toppings.Type.Primitive)
	require.Equal(t, "Topping", toppings.Type.Element.Ref)

	crispy := pizza.Fields[2]
	require.True(t, crispy.Optional)
	require.Equal(t, PrimitiveBool, crispy.Type.Primitive)

	bakeTime := pizza.Fields[3]
	require.NotNil(t, bakeTime.Default)
	require.Equal(t, BucketU32, bakeTime.Type.IntBucket)
}

func TestProjectNamedIntegerAlias(t *testing.T) {
	src := `
M DEFINITIONS ::= BEGIN
StationID ::= INTEGER (0..4294967295)
END
`
	prog := mustProject(t, src)
	sid := findType(prog.Modules[0], "StationID")
	require.NotNil(t, sid)
	require.Equal(t, KindIntAlias, sid.Kind)
	require.Equal(t, BucketU32, sid.Bucket)
}

func TestProjectUnconstrainedIntegerIsWidestSigned(t *testing.T) {
	src := `
M DEFINITIONS ::= BEGIN
Free ::= INTEGER
END
`
	prog := mustProject(t, src)
	free := findType(prog.Modules[0], "Free")
	require.Equal(t, BucketI64, free.Bucket)
}

func TestProjectSemiConstrainedIsWidestUnsigned(t *testing.T) {
	src := `
M DEFINITIONS ::= BEGIN
RangedMax ::= INTEGER (0..MAX)
END
`
	prog := mustProject(t, src)
	r := findType(prog.Modules[0], "RangedMax")
	require.Equal(t, BucketU64, r.Bucket)
}

func TestProjectChoice(t *testing.T) {
	src := `
M DEFINITIONS AUTOMATIC TAGS ::= BEGIN
Shape ::= CHOICE {
    circle INTEGER (1..100),
    square INTEGER (1..100)
}
END
`
	prog := mustProject(t, src)
	shape := findType(prog.Modules[0], "Shape")
	require.Equal(t, KindChoice, shape.Kind)
	require.Len(t, shape.Fields, 2)
}

func TestProjectOctetStringAliasSize(t *testing.T) {
	src := `
M DEFINITIONS ::= BEGIN
Hash ::= OCTET STRING (SIZE(32))
END
`
	prog := mustProject(t, src)
	hash := findType(prog.Modules[0], "Hash")
	require.Equal(t, KindBytesAlias, hash.Kind)
	require.NotNil(t, hash.ListSize)
	require.Equal(t, 32, hash.ListSize.Lower)
	require.Equal(t, 32, hash.ListSize.Upper)
}
