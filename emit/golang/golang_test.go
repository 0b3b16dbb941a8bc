// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/model"
)

// beaconType builds a struct with a plain root field, a DEFAULT root field,
// and an OPTIONAL root field.
func beaconType() *model.Type {
	return &model.Type{
		Name: "Beacon",
		Kind: model.KindStruct,
		Fields: []model.Field{
			{Name: "id", Type: model.FieldType{Primitive: model.PrimitiveInt, IntBucket: model.BucketU16}},
			{
				Name:    "bakeTime",
				Type:    model.FieldType{Primitive: model.PrimitiveInt, IntBucket: model.BucketU16},
				Default: &asn1.Value{Kind: asn1.ValueInt, Int: 600},
			},
			{
				Name:     "label",
				Type:     model.FieldType{Primitive: model.PrimitiveUTF8String},
				Optional: true,
			},
		},
	}
}

func TestRenderStructDefaultFieldGetsPresenceBit(t *testing.T) {
	g := &generator{}
	src, err := g.renderStruct(beaconType())
	require.NoError(t, err)

	// A DEFAULT member is pointer-typed and contributes a RootOptional
	// entry exactly like an OPTIONAL member: absence on the wire means
	// "use the default", not "omit the field".
	require.Contains(t, src, "BakeTime *uint16")
	require.Contains(t, src, "v.BakeTime != nil")
	require.Contains(t, src, "dv := uint16(600)")
	require.Contains(t, src, "v.BakeTime = &dv")

	// A plain required field stays unwrapped and outside RootOptional.
	require.Contains(t, src, "Id uint16\n")
	require.NotContains(t, src, "v.Id != nil")
}

func TestRenderStructExtensionFieldIsAlwaysPointer(t *testing.T) {
	typ := &model.Type{
		Name:       "Beacon",
		Kind:       model.KindStruct,
		Extensible: true,
		ExtIndex:   1,
		Fields: []model.Field{
			{Name: "id", Type: model.FieldType{Primitive: model.PrimitiveInt, IntBucket: model.BucketU16}},
			// Not declared OPTIONAL or DEFAULT, but it's an extension
			// addition: the struct field must still be a pointer so an
			// old/absent value stays representable.
			{Name: "power", Type: model.FieldType{Primitive: model.PrimitiveInt, IntBucket: model.BucketU8}},
		},
	}

	g := &generator{}
	src, err := g.renderStruct(typ)
	require.NoError(t, err)

	require.Contains(t, src, "Power *uint8")
	require.Contains(t, src, "ext := uper.NewWriter()")
	require.Contains(t, src, "WriteOpenType(ext.Bytes())")
}

func TestRenderEnum(t *testing.T) {
	typ := &model.Type{
		Name: "Topping",
		Kind: model.KindEnum,
		Variants: []model.EnumVariant{
			{Name: "cheese", Value: 0},
			{Name: "pepperoni", Value: 1},
		},
	}
	g := &generator{}
	src, err := g.renderType(typ)
	require.NoError(t, err)
	require.Contains(t, src, "ToppingCheese")
	require.Contains(t, src, "ToppingPepperoni")
}
