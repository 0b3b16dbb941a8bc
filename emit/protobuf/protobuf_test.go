// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobuf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c/model"
)

func TestRenderStructAndEnum(t *testing.T) {
	prog := &model.Program{Modules: []*model.Module{{
		Name: "Pizza-Module",
		Types: []*model.Type{
			{
				Name: "Topping",
				Kind: model.KindEnum,
				Variants: []model.EnumVariant{
					{Name: "cheese", Value: 0},
					{Name: "pepperoni", Value: 1},
				},
			},
			{
				Name: "Pizza",
				Kind: model.KindStruct,
				Fields: []model.Field{
					{Name: "diameter", Type: model.FieldType{Primitive: model.PrimitiveInt, IntBucket: model.BucketU8}},
					{Name: "topping", Type: model.FieldType{Ref: "Topping"}},
				},
			},
		},
	}}}

	out, err := Render(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, out, "pizza_module.proto")

	text := string(out["pizza_module.proto"])
	require.Contains(t, text, `syntax = "proto3";`)
	require.Contains(t, text, "enum Topping {")
	require.Contains(t, text, "message Pizza {")
	require.Contains(t, text, "uint32 diameter = 1;")
	require.Contains(t, text, "Topping topping = 2;")
}
