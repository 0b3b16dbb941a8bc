// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"strings"

	"asn1c.dev/asn1c/model"
)

// exportIdent turns an ASN.1 identifier (which may contain hyphens or
// underscores, e.g. from a synthesized anonymous-type name) into an
// exported Go identifier.
func exportIdent(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

func intGoType(b model.IntBucket) string {
	switch b {
	case model.BucketU8:
		return "uint8"
	case model.BucketU16:
		return "uint16"
	case model.BucketU32:
		return "uint32"
	case model.BucketU64:
		return "uint64"
	case model.BucketI8:
		return "int8"
	case model.BucketI16:
		return "int16"
	case model.BucketI32:
		return "int32"
	default:
		return "int64"
	}
}

func goType(ft model.FieldType) string {
	if ft.Ref != "" {
		return exportIdent(ft.Ref)
	}
	switch ft.Primitive {
	case model.PrimitiveBool:
		return "bool"
	case model.PrimitiveNull:
		return "asn1.Null"
	case model.PrimitiveInt:
		return intGoType(ft.IntBucket)
	case model.PrimitiveOctetString:
		return "[]byte"
	case model.PrimitiveBitString:
		return "asn1.BitString"
	case model.PrimitiveUTF8String, model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		return "string"
	case model.PrimitiveList:
		return "[]" + goType(*ft.Element)
	default:
		return "any"
	}
}

// fieldGoType is the Go type of a struct field: a pointer when the ASN.1
// member is OPTIONAL or carries a DEFAULT, since presence must be
// distinguishable from the zero value.
func fieldGoType(f model.Field) string {
	t := goType(f.Type)
	if f.Optional || f.Default != nil {
		return "*" + t
	}
	return t
}

func sizeBounds(sc *model.SizeConstraint) (lower, upper int) {
	if sc == nil {
		return 0, -1
	}
	return sc.Lower, sc.Upper
}
