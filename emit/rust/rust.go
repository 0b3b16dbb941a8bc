// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rust renders a resolved [model.Program] as a minimal, direct
// syntactic projection of the emitted-type model into Rust struct/enum
// declarations. It is not an idiomatic Rust code generator: no codec, no
// derive machinery beyond the basics, and no attempt at Rust naming
// conventions beyond what the model already gives the Go target. Host
// language idiom fidelity outside Go is explicitly out of scope; this
// exists so the "rust" CLI target has somewhere to point.
package rust

import (
	"bytes"
	"fmt"

	"asn1c.dev/asn1c/model"
)

// Render projects every module in prog to a "<module>.rs" file.
func Render(prog *model.Program) (map[string][]byte, error) {
	out := make(map[string][]byte, len(prog.Modules))
	for _, m := range prog.Modules {
		var buf bytes.Buffer
		buf.WriteString("// Code generated by asn1c; DO NOT EDIT.\n\n")
		for _, t := range m.Types {
			renderType(&buf, t)
		}
		out[rustFileName(m.Name)] = buf.Bytes()
	}
	return out, nil
}

func rustFileName(moduleName string) string {
	return snakeCase(moduleName) + ".rs"
}

func renderType(buf *bytes.Buffer, t *model.Type) {
	name := exportIdent(t.Name)
	switch t.Kind {
	case model.KindStruct:
		fmt.Fprintf(buf, "pub struct %s {\n", name)
		for _, f := range t.Fields {
			typ := rustFieldType(f.Type)
			if f.Optional || f.Default != nil {
				typ = "Option<" + typ + ">"
			}
			fmt.Fprintf(buf, "    pub %s: %s,\n", snakeCase(f.Name), typ)
		}
		buf.WriteString("}\n\n")
	case model.KindChoice:
		fmt.Fprintf(buf, "pub enum %s {\n", name)
		for _, f := range t.Fields {
			fmt.Fprintf(buf, "    %s(%s),\n", exportIdent(f.Name), rustFieldType(f.Type))
		}
		buf.WriteString("}\n\n")
	case model.KindEnum:
		fmt.Fprintf(buf, "pub enum %s {\n", name)
		for _, v := range t.Variants {
			fmt.Fprintf(buf, "    %s = %d,\n", exportIdent(v.Name), v.Value)
		}
		buf.WriteString("}\n\n")
	case model.KindIntAlias:
		fmt.Fprintf(buf, "pub type %s = %s;\n\n", name, rustIntType(t.Bucket))
	case model.KindBytesAlias:
		fmt.Fprintf(buf, "pub type %s = Vec<u8>;\n\n", name)
	case model.KindStringAlias:
		fmt.Fprintf(buf, "pub type %s = String;\n\n", name)
	case model.KindListAlias:
		fmt.Fprintf(buf, "pub type %s = Vec<%s>;\n\n", name, rustFieldType(*t.Element))
	}
}

func rustFieldType(ft model.FieldType) string {
	if ft.Ref != "" {
		return exportIdent(ft.Ref)
	}
	switch ft.Primitive {
	case model.PrimitiveBool:
		return "bool"
	case model.PrimitiveNull:
		return "()"
	case model.PrimitiveInt:
		return rustIntType(ft.IntBucket)
	case model.PrimitiveOctetString, model.PrimitiveBitString:
		return "Vec<u8>"
	case model.PrimitiveUTF8String, model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		return "String"
	case model.PrimitiveList:
		return "Vec<" + rustFieldType(*ft.Element) + ">"
	default:
		return "()"
	}
}

func rustIntType(b model.IntBucket) string {
	switch b {
	case model.BucketU8:
		return "u8"
	case model.BucketU16:
		return "u16"
	case model.BucketU32:
		return "u32"
	case model.BucketU64:
		return "u64"
	case model.BucketI8:
		return "i8"
	case model.BucketI16:
		return "i16"
	case model.BucketI32:
		return "i32"
	default:
		return "i64"
	}
}
