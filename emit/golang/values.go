// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"fmt"

	"asn1c.dev/asn1c/model"
)

// writeValueBlock renders the statements that write varExpr (a value of the
// Go type goType(ft), already dereferenced from any OPTIONAL pointer) to
// the *uper.Writer named wVar.
func writeValueBlock(ft model.FieldType, varExpr, wVar string) string {
	if ft.Ref != "" {
		return fmt.Sprintf("if err := %s.MarshalUPER(%s); err != nil {\n\treturn err\n}\n", varExpr, wVar)
	}
	switch ft.Primitive {
	case model.PrimitiveBool:
		return fmt.Sprintf("%s.WriteBool(%s)\n", wVar, varExpr)
	case model.PrimitiveNull:
		return "// NULL carries no encoded value\n"
	case model.PrimitiveInt:
		return writeIntBlock(ft, varExpr, wVar)
	case model.PrimitiveOctetString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return checkedCall(wVar+".WriteOctetString(%s, %d, %d)", varExpr, lower, upper)
	case model.PrimitiveBitString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return checkedCall(wVar+".WriteBitStringValue(%s, %d, %d)", varExpr, lower, upper)
	case model.PrimitiveUTF8String:
		lower, upper := sizeBounds(ft.SizeConstr)
		return checkedCall(wVar+".WriteUTF8String(%s, %d, %d)", varExpr, lower, upper)
	case model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return fmt.Sprintf("if err := %s.WriteRestrictedString(%s, %s, %d, %d); err != nil {\n\treturn err\n}\n",
			wVar, restrictedStringKind(ft.Primitive), varExpr, lower, upper)
	case model.PrimitiveList:
		return writeListBlock(ft, varExpr, wVar)
	default:
		return fmt.Sprintf("// unsupported primitive for %s\n", varExpr)
	}
}

// readValueBlock renders the statements that read into varExpr (an
// addressable lvalue of type goType(ft)) from the *uper.Reader named rVar.
func readValueBlock(ft model.FieldType, varExpr, rVar string) string {
	if ft.Ref != "" {
		return fmt.Sprintf("if err := %s.UnmarshalUPER(%s); err != nil {\n\treturn err\n}\n", varExpr, rVar)
	}
	switch ft.Primitive {
	case model.PrimitiveBool:
		return assignChecked(rVar+".ReadBool()", varExpr)
	case model.PrimitiveNull:
		return fmt.Sprintf("%s = asn1.Null{}\n", varExpr)
	case model.PrimitiveInt:
		return readIntBlock(ft, varExpr, rVar)
	case model.PrimitiveOctetString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return assignChecked(fmt.Sprintf("%s.ReadOctetString(%d, %d)", rVar, lower, upper), varExpr)
	case model.PrimitiveBitString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return assignChecked(fmt.Sprintf("%s.ReadBitStringValue(%d, %d)", rVar, lower, upper), varExpr)
	case model.PrimitiveUTF8String:
		lower, upper := sizeBounds(ft.SizeConstr)
		return assignChecked(fmt.Sprintf("%s.ReadUTF8String(%d, %d)", rVar, lower, upper), varExpr)
	case model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		lower, upper := sizeBounds(ft.SizeConstr)
		return assignChecked(fmt.Sprintf("%s.ReadRestrictedString(%s, %d, %d)",
			rVar, restrictedStringKind(ft.Primitive), lower, upper), varExpr)
	case model.PrimitiveList:
		return readListBlock(ft, varExpr, rVar)
	default:
		return fmt.Sprintf("// unsupported primitive for %s\n", varExpr)
	}
}

func restrictedStringKind(p model.PrimitiveKind) string {
	switch p {
	case model.PrimitiveIA5String:
		return "asn1.KindIA5String"
	case model.PrimitiveNumericString:
		return "asn1.KindNumericString"
	case model.PrimitivePrintableString:
		return "asn1.KindPrintableString"
	case model.PrimitiveVisibleString:
		return "asn1.KindVisibleString"
	default:
		return "asn1.KindIA5String"
	}
}

func writeIntBlock(ft model.FieldType, varExpr, wVar string) string {
	r := ft.IntRange
	switch {
	case r == nil || (r.Lower == nil && r.Upper == nil):
		return checkedCall(wVar+".WriteUnconstrainedInt(int64(%s))", varExpr)
	case r.Lower != nil && r.Upper != nil:
		return checkedCall(wVar+".WriteConstrainedInt(int64(%s), %d, %d)", varExpr, *r.Lower, *r.Upper)
	case r.Lower != nil:
		return checkedCall(wVar+".WriteSemiConstrainedInt(int64(%s), %d)", varExpr, *r.Lower)
	default:
		return checkedCall(wVar+".WriteUnconstrainedInt(int64(%s))", varExpr)
	}
}

func readIntBlock(ft model.FieldType, varExpr, rVar string) string {
	return readIntBlockAs(ft, varExpr, rVar, intGoType(ft.IntBucket))
}

// readIntBlockAs is readIntBlock with an explicit cast type, needed when
// varExpr's declared type is a named alias rather than the bare bucket
// builtin (e.g. a "Foo ::= INTEGER (...)" type assignment).
func readIntBlockAs(ft model.FieldType, varExpr, rVar, goT string) string {
	r := ft.IntRange
	switch {
	case r == nil || (r.Lower == nil && r.Upper == nil):
		return assignCast(rVar+".ReadUnconstrainedInt()", varExpr, goT)
	case r.Lower != nil && r.Upper != nil:
		return assignCast(fmt.Sprintf("%s.ReadConstrainedInt(%d, %d)", rVar, *r.Lower, *r.Upper), varExpr, goT)
	case r.Lower != nil:
		return assignCast(fmt.Sprintf("%s.ReadSemiConstrainedInt(%d)", rVar, *r.Lower), varExpr, goT)
	default:
		return assignCast(rVar+".ReadUnconstrainedInt()", varExpr, goT)
	}
}

func writeListBlock(ft model.FieldType, varExpr, wVar string) string {
	lower, upper := sizeBounds(ft.SizeConstr)
	inner := indentLines(writeValueBlock(*ft.Element, "elem", wVar), "\t\t")
	return fmt.Sprintf(
		"if err := %s.WriteCollectionLength(len(%s), %d, %d, func(i int) error {\n"+
			"\t\telem := %s[i]\n"+
			"%s"+
			"\t\treturn nil\n"+
			"\t}); err != nil {\n\t\treturn err\n\t}\n",
		wVar, varExpr, lower, upper, varExpr, inner)
}

func readListBlock(ft model.FieldType, varExpr, rVar string) string {
	lower, upper := sizeBounds(ft.SizeConstr)
	elemType := goType(*ft.Element)
	inner := indentLines(readValueBlock(*ft.Element, "elem", rVar), "\t\t")
	return fmt.Sprintf(
		"%s = nil\n"+
			"if _, err := %s.ReadCollectionLength(%d, %d, func(i int) error {\n"+
			"\t\tvar elem %s\n"+
			"%s"+
			"\t\t%s = append(%s, elem)\n"+
			"\t\treturn nil\n"+
			"\t}); err != nil {\n\t\treturn err\n\t}\n",
		varExpr, rVar, lower, upper, elemType, inner, varExpr, varExpr)
}

func checkedCall(format, varExpr string, args ...any) string {
	all := append([]any{varExpr}, args...)
	return fmt.Sprintf("if err := "+format+"; err != nil {\n\treturn err\n}\n", all...)
}

// assignChecked renders "<var>, err := <call>" followed by the standard
// error check and an assignment of <var> into varExpr.
func assignChecked(call, varExpr string) string {
	return fmt.Sprintf("v0, err := %s\nif err != nil {\n\treturn err\n}\n%s = v0\n", call, varExpr)
}

func assignCast(call, varExpr, castType string) string {
	return fmt.Sprintf("v0, err := %s\nif err != nil {\n\treturn err\n}\n%s = %s(v0)\n", call, varExpr, castType)
}
