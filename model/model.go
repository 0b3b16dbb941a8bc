// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model projects a resolved [asn1c.dev/asn1c/resolve.Result] into
// the "emitted type" shape described in spec.md §3/§4.6: a host-language
// agnostic record of structs, tagged unions, enums, and integer/string/byte
// aliases, ready for a backend (asn1/emit/golang, asn1/emit/protobuf,
// asn1/emit/sql) to render.
package model

import "asn1c.dev/asn1c"

// Program is the projection of every module passed to [Project].
type Program struct {
	Modules []*Module
}

// Module holds the emitted types declared by one ASN.1 module, in
// declaration order (including synthesized names for lifted anonymous
// inline types).
type Module struct {
	Name  string
	Types []*Type
}

// Kind enumerates the shapes an emitted [Type] can take.
type Kind int

const (
	KindStruct    Kind = iota // SEQUENCE / SET -> record
	KindChoice                // CHOICE -> tagged union
	KindEnum                  // ENUMERATED
	KindIntAlias              // a named INTEGER type assignment
	KindBytesAlias            // OCTET STRING / BIT STRING named type assignment
	KindStringAlias           // *String named type assignment
	KindListAlias             // SEQUENCE OF / SET OF named type assignment
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// IntBucket is the smallest integral bucket covering an INTEGER's declared
// range (spec.md §4.6).
type IntBucket int

const (
	BucketU8 IntBucket = iota
	BucketU16
	BucketU32
	BucketU64
	BucketI8
	BucketI16
	BucketI32
	BucketI64
)

//go:generate go tool stringer -type=IntBucket -output=intbucket_string.go

// Type is one emitted declaration. Which fields are meaningful depends on
// Kind, mirroring the single-struct-multi-kind shape of [asn1.Type].
type Type struct {
	Name   string
	Kind   Kind
	Source *asn1.Type // the resolved ASN.1 type this was projected from

	Bucket   IntBucket // KindIntAlias
	IntRange *IntRange // KindIntAlias

	Fields []Field // KindStruct (record fields) / KindChoice (alternatives)

	Variants   []EnumVariant // KindEnum
	Extensible bool          // KindStruct, KindEnum, KindChoice
	ExtIndex   int           // index of the first extension variant/field; -1 if none

	Element  *FieldType // KindListAlias
	ListSize *SizeConstraint

	NamedConstants []NamedConstant // KindIntAlias, KindBytesAlias (BIT STRING named bits)
}

// Field is a member of a struct or an alternative of a choice.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	Default  *asn1.Value
	Tag      asn1.Tag
}

// FieldType is the type of a [Field] or list [Type.Element]: either a
// reference to another emitted [Type] (Ref != "") or an inline primitive
// description.
type FieldType struct {
	Ref        string // name of another Type in the same Program, or ""
	Primitive  PrimitiveKind
	IntBucket  IntBucket       // Primitive == PrimitiveInt
	IntRange   *IntRange       // Primitive == PrimitiveInt
	SizeConstr *SizeConstraint // Primitive == PrimitiveOctetString/PrimitiveBitString/*String/PrimitiveList
	Element    *FieldType      // Primitive == PrimitiveList: the element type
}

// IntRange is an INTEGER constraint's resolved bounds, nil-pointer fields
// meaning an open (MIN or MAX) endpoint.
type IntRange struct {
	Lower, Upper *int64
}

// PrimitiveKind enumerates the built-in (unnamed) field payload shapes.
type PrimitiveKind int

const (
	PrimitiveNone PrimitiveKind = iota // Ref is set instead
	PrimitiveBool
	PrimitiveNull
	PrimitiveInt
	PrimitiveOctetString
	PrimitiveBitString
	PrimitiveUTF8String
	PrimitiveIA5String
	PrimitiveNumericString
	PrimitivePrintableString
	PrimitiveVisibleString
	PrimitiveList // inline SEQUENCE OF / SET OF
)

// SizeConstraint is a resolved SIZE(lower, upper) bound; Upper < 0 means
// unconstrained.
type SizeConstraint struct {
	Lower, Upper int
}

// EnumVariant is one named value of an emitted enum.
type EnumVariant struct {
	Name  string
	Value int64
}

// NamedConstant associates a name with an integer value, carried through
// from BIT STRING named bits or INTEGER named numbers.
type NamedConstant struct {
	Name  string
	Value int64
}
