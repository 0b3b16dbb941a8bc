// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sql

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c/model"
)

func TestRenderTableAndEnum(t *testing.T) {
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
					{Name: "crispy", Type: model.FieldType{Primitive: model.PrimitiveBool}, Optional: true},
				},
			},
		},
	}}}

	out, err := Render(prog, Options{})
	require.NoError(t, err)
	text := string(out["pizza_module.sql"])

	require.Contains(t, text, "CREATE TYPE topping_enum AS ENUM")
	require.Contains(t, text, "CREATE TABLE pizza (")
	require.Contains(t, text, "diameter smallint NOT NULL")
	require.Contains(t, text, "topping topping_enum NOT NULL")
	require.Contains(t, text, "crispy boolean")
	require.NotContains(t, text, "crispy boolean NOT NULL")
}
