// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strings"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/model"
)

func (g *generator) renderIntAlias(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	under := intGoType(t.Bucket)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s INTEGER.\ntype %s %s\n\n", name, t.Name, name, under)
	for _, nc := range t.NamedConstants {
		fmt.Fprintf(&b, "const %s%s %s = %d\n", name, exportIdent(nc.Name), name, nc.Value)
	}
	if len(t.NamedConstants) > 0 {
		b.WriteString("\n")
	}

	ft := model.FieldType{Primitive: model.PrimitiveInt, IntBucket: t.Bucket, IntRange: t.IntRange}
	b.WriteString(marshalSignature(name))
	b.WriteString(indentLines(writeValueBlock(ft, "int64(*v)", "w"), "\t"))
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	b.WriteString(indentLines(readIntBlockAs(ft, "(*v)", "r", name), "\t"))
	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

func (g *generator) renderBytesAlias(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	switch t.Source.Kind {
	case asn1.KindBoolean:
		return renderTrivialAlias(t, name, "bool", "WriteBool", "ReadBool")
	case asn1.KindNull:
		return renderTrivialAlias(t, name, "asn1.Null", "", "")
	}
	isBitString := t.Source.Kind == asn1.KindBitString
	goT := "[]byte"
	if isBitString {
		goT = "asn1.BitString"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s type.\ntype %s %s\n\n", name, t.Name, name, goT)
	for _, nc := range t.NamedConstants {
		fmt.Fprintf(&b, "const %s%s = %d\n", name, exportIdent(nc.Name), nc.Value)
	}
	if len(t.NamedConstants) > 0 {
		b.WriteString("\n")
	}

	var ft model.FieldType
	if isBitString {
		ft = model.FieldType{Primitive: model.PrimitiveBitString, SizeConstr: t.ListSize}
	} else {
		ft = model.FieldType{Primitive: model.PrimitiveOctetString, SizeConstr: t.ListSize}
	}

	b.WriteString(marshalSignature(name))
	if isBitString {
		b.WriteString(indentLines(writeValueBlock(ft, "asn1.BitString(*v)", "w"), "\t"))
	} else {
		b.WriteString(indentLines(writeValueBlock(ft, "([]byte)(*v)", "w"), "\t"))
	}
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	if isBitString {
		b.WriteString("\tval, err := r.ReadBitStringValue(" + boundsArgs(t.ListSize) + ")\n\tif err != nil {\n\t\treturn err\n\t}\n\t*v = " + name + "(val)\n")
	} else {
		b.WriteString("\tval, err := r.ReadOctetString(" + boundsArgs(t.ListSize) + ")\n\tif err != nil {\n\t\treturn err\n\t}\n\t*v = " + name + "(val)\n")
	}
	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

// renderTrivialAlias renders a named alias over BOOLEAN or NULL, neither of
// which carries a size or range constraint.
func renderTrivialAlias(t *model.Type, name, under, writeMethod, readMethod string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s type.\ntype %s %s\n\n", name, t.Name, name, under)

	b.WriteString(marshalSignature(name))
	if writeMethod == "" {
		b.WriteString("\t// NULL carries no encoded value\n")
	} else {
		fmt.Fprintf(&b, "\tw.%s(bool(*v))\n", writeMethod)
	}
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	if readMethod == "" {
		fmt.Fprintf(&b, "\t*v = %s{}\n", name)
	} else {
		fmt.Fprintf(&b, "\tval, err := r.%s()\n\tif err != nil {\n\t\treturn err\n\t}\n\t*v = %s(val)\n", readMethod, name)
	}
	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

func (g *generator) renderStringAlias(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s type.\ntype %s string\n\n", name, t.Name, name)

	kind := "asn1.KindUTF8String"
	useRestricted := true
	if t.Source != nil {
		switch t.Source.Kind {
		case asn1.KindUTF8String:
			useRestricted = false
		case asn1.KindIA5String:
			kind = "asn1.KindIA5String"
		case asn1.KindNumericString:
			kind = "asn1.KindNumericString"
		case asn1.KindPrintableString:
			kind = "asn1.KindPrintableString"
		case asn1.KindVisibleString:
			kind = "asn1.KindVisibleString"
		}
	}

	b.WriteString(marshalSignature(name))
	if useRestricted {
		fmt.Fprintf(&b, "\tif err := w.WriteRestrictedString(%s, string(*v), %s); err != nil {\n\t\treturn err\n\t}\n", kind, boundsArgs(t.ListSize))
	} else {
		fmt.Fprintf(&b, "\tif err := w.WriteUTF8String(string(*v), %s); err != nil {\n\t\treturn err\n\t}\n", boundsArgs(t.ListSize))
	}
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	if useRestricted {
		fmt.Fprintf(&b, "\tval, err := r.ReadRestrictedString(%s, %s)\n\tif err != nil {\n\t\treturn err\n\t}\n", kind, boundsArgs(t.ListSize))
	} else {
		fmt.Fprintf(&b, "\tval, err := r.ReadUTF8String(%s)\n\tif err != nil {\n\t\treturn err\n\t}\n", boundsArgs(t.ListSize))
	}
	b.WriteString("\t*v = " + name + "(val)\n\treturn nil\n}\n")
	return b.String(), nil
}

func (g *generator) renderListAlias(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	elemType := goType(*t.Element)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s SEQUENCE OF/SET OF.\ntype %s []%s\n\n", name, t.Name, name, elemType)

	lower, upper := sizeBounds(t.ListSize)
	b.WriteString(marshalSignature(name))
	b.WriteString(indentLines(writeListBlockStandalone(*t.Element, "(*v)", lower, upper), "\t"))
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	b.WriteString(indentLines(readListBlockStandalone(*t.Element, "(*v)", lower, upper), "\t"))
	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

func boundsArgs(sc *model.SizeConstraint) string {
	lower, upper := sizeBounds(sc)
	return fmt.Sprintf("%d, %d", lower, upper)
}

func writeListBlockStandalone(elem model.FieldType, varExpr string, lower, upper int) string {
	ft := model.FieldType{Primitive: model.PrimitiveList, Element: &elem, SizeConstr: &model.SizeConstraint{Lower: lower, Upper: upper}}
	return writeValueBlock(ft, varExpr, "w")
}

func readListBlockStandalone(elem model.FieldType, varExpr string, lower, upper int) string {
	ft := model.FieldType{Primitive: model.PrimitiveList, Element: &elem, SizeConstr: &model.SizeConstraint{Lower: lower, Upper: upper}}
	return readValueBlock(ft, varExpr, "r")
}
