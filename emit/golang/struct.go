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

func (g *generator) renderStruct(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	rootFields, extFields := splitExtension(t)

	extSet := make(map[string]bool, len(extFields))
	for _, f := range extFields {
		extSet[f.Name] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s SEQUENCE/SET.\ntype %s struct {\n", name, t.Name, name)
	for _, f := range t.Fields {
		// Extension additions are always optional at the Go layer: an
		// unrecognized or absent extension must stay decodable regardless of
		// its declared ASN.1 optionality.
		typ := fieldGoType(f)
		if extSet[f.Name] && !hasPresenceBit(f) {
			typ = "*" + goType(f.Type)
		}
		fmt.Fprintf(&b, "\t%s %s\n", exportIdent(f.Name), typ)
	}
	b.WriteString("}\n\n")

	b.WriteString(marshalSignature(name))
	b.WriteString("\tpre := uper.SequencePreamble{\n")
	fmt.Fprintf(&b, "\t\tExtensible: %t,\n", t.Extensible)
	if len(extFields) > 0 {
		b.WriteString("\t\tInExtension: ")
		b.WriteString(anyPresentExpr(extFields))
		b.WriteString(",\n")
	}
	b.WriteString("\t\tRootOptional: []bool{")
	first := true
	for _, f := range rootFields {
		if !hasPresenceBit(f) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "v.%s != nil", exportIdent(f.Name))
	}
	b.WriteString("},\n")
	if len(extFields) > 0 {
		b.WriteString("\t\tExtensionFields: []bool{")
		for i, f := range extFields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "v.%s != nil", exportIdent(f.Name))
		}
		b.WriteString("},\n")
	}
	b.WriteString("\t}\n")
	b.WriteString("\tif err := w.WriteSequencePreamble(pre); err != nil {\n\t\treturn err\n\t}\n")

	for _, f := range rootFields {
		varExpr := "v." + exportIdent(f.Name)
		b.WriteString(writeFieldBlock(f, varExpr, "w"))
	}
	for _, f := range extFields {
		varExpr := "v." + exportIdent(f.Name)
		fmt.Fprintf(&b, "if %s != nil {\n", varExpr)
		b.WriteString("\text := uper.NewWriter()\n")
		b.WriteString(indentLines(writeFieldBlock(derefField(f), "(*"+varExpr+")", "ext"), ""))
		b.WriteString("\tif err := w.WriteOpenType(ext.Bytes()); err != nil {\n\t\treturn err\n\t}\n")
		b.WriteString("}\n")
	}
	b.WriteString("\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	fmt.Fprintf(&b, "\tpre, err := r.ReadSequencePreamble(%t, %d)\n\tif err != nil {\n\t\treturn err\n\t}\n",
		t.Extensible, countOptional(rootFields))
	optIdx := 0
	for _, f := range rootFields {
		varExpr := "v." + exportIdent(f.Name)
		if hasPresenceBit(f) {
			fmt.Fprintf(&b, "\tif pre.RootOptional[%d] {\n", optIdx)
			b.WriteString(indentLines(readFieldBlock(f, varExpr, "r", true), "\t"))
			if lit, ok := defaultLiteral(f); ok {
				b.WriteString("\t} else {\n")
				fmt.Fprintf(&b, "\t\tdv := %s\n\t\t%s = &dv\n", lit, varExpr)
			}
			b.WriteString("\t}\n")
			optIdx++
		} else {
			b.WriteString(readFieldBlock(f, varExpr, "r", false))
		}
	}
	if len(extFields) > 0 {
		b.WriteString("\tfor i := range pre.ExtensionFields {\n")
		b.WriteString("\t\tif !pre.ExtensionFields[i] {\n\t\t\tcontinue\n\t\t}\n")
		b.WriteString("\t\tcontent, err := r.ReadOpenType()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		b.WriteString("\t\tsub := uper.NewReader(content, len(content)*8)\n")
		b.WriteString("\t\tswitch i {\n")
		for i, f := range extFields {
			fmt.Fprintf(&b, "\t\tcase %d:\n", i)
			tname := "tmp" + exportIdent(f.Name)
			gotype := goType(f.Type)
			fmt.Fprintf(&b, "\t\t\tvar %s %s\n", tname, gotype)
			b.WriteString(indentLines(readValueBlock(f.Type, tname, "sub"), "\t\t\t"))
			varExpr := "v." + exportIdent(f.Name)
			fmt.Fprintf(&b, "\t\t\t%s = &%s\n", varExpr, tname)
		}
		b.WriteString("\t\t}\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

func splitExtension(t *model.Type) (root, ext []model.Field) {
	if !t.Extensible || t.ExtIndex < 0 || t.ExtIndex >= len(t.Fields) {
		return t.Fields, nil
	}
	return t.Fields[:t.ExtIndex], t.Fields[t.ExtIndex:]
}

func countOptional(fields []model.Field) int {
	n := 0
	for _, f := range fields {
		if hasPresenceBit(f) {
			n++
		}
	}
	return n
}

// defaultLiteral renders the Go literal for a field's DEFAULT clause, used to
// fill in an absent root-optional DEFAULT member on decode. Reports false
// when the field has no DEFAULT or the literal form isn't one we render.
func defaultLiteral(f model.Field) (string, bool) {
	d := f.Default
	if d == nil {
		return "", false
	}
	switch d.Kind {
	case asn1.ValueInt:
		return fmt.Sprintf("%s(%d)", goType(f.Type), d.Int), true
	case asn1.ValueBool:
		if d.Bool {
			return "true", true
		}
		return "false", true
	case asn1.ValueEnumIdent:
		if f.Type.Ref != "" {
			return exportIdent(f.Type.Ref) + exportIdent(d.Ident), true
		}
	}
	return "", false
}

func anyPresentExpr(fields []model.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("v.%s != nil", exportIdent(f.Name))
	}
	return strings.Join(parts, " || ")
}

// derefField returns a copy of f as a non-optional field: an extension
// field's pointer-ness lives in the struct layer (it is always optional on
// the wire), not in the per-value read/write helpers that handle its
// pointed-to value.
func derefField(f model.Field) model.Field {
	f.Optional = false
	f.Default = nil
	return f
}

func marshalSignature(name string) string {
	return fmt.Sprintf("// MarshalUPER encodes v per the Unaligned Packed Encoding Rules.\nfunc (v *%s) MarshalUPER(w *uper.Writer) error {\n", name)
}

func unmarshalSignature(name string) string {
	return fmt.Sprintf("// UnmarshalUPER decodes v per the Unaligned Packed Encoding Rules.\nfunc (v *%s) UnmarshalUPER(r *uper.Reader) error {\n", name)
}

func indentLines(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
