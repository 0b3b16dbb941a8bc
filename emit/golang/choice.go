// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strings"

	"asn1c.dev/asn1c/model"
)

// renderChoice projects a CHOICE as a struct carrying one pointer field per
// alternative, exactly one of which is non-nil at a time — the simplest
// tagged-union shape expressible without a companion interface hierarchy.
func (g *generator) renderChoice(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	rootCount := len(t.Fields)
	if t.Extensible && t.ExtIndex >= 0 {
		rootCount = t.ExtIndex
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s CHOICE.\ntype %s struct {\n", name, t.Name, name)
	for _, f := range t.Fields {
		fmt.Fprintf(&b, "\t%s *%s\n", exportIdent(f.Name), goType(f.Type))
	}
	b.WriteString("}\n\n")

	b.WriteString(marshalSignature(name))
	b.WriteString("\tswitch {\n")
	for i, f := range t.Fields {
		fmt.Fprintf(&b, "\tcase v.%s != nil:\n", exportIdent(f.Name))
		fmt.Fprintf(&b, "\t\tif err := w.WriteEnumIndex(%d, %d, %t); err != nil {\n\t\t\treturn err\n\t\t}\n", i, rootCount, t.Extensible)
		b.WriteString(indentLines(writeValueBlock(f.Type, "(*v."+exportIdent(f.Name)+")", "w"), "\t\t"))
	}
	b.WriteString("\tdefault:\n\t\treturn fmt.Errorf(\"" + name + ": no alternative selected\")\n")
	b.WriteString("\t}\n\treturn nil\n}\n\n")

	b.WriteString(unmarshalSignature(name))
	b.WriteString(fmt.Sprintf("\tidx, _, err := r.ReadEnumIndex(%d, %t)\n\tif err != nil {\n\t\treturn err\n\t}\n", rootCount, t.Extensible))
	b.WriteString("\tswitch idx {\n")
	for i, f := range t.Fields {
		fmt.Fprintf(&b, "\tcase %d:\n", i)
		tname := "tmp" + exportIdent(f.Name)
		fmt.Fprintf(&b, "\t\tvar %s %s\n", tname, goType(f.Type))
		b.WriteString(indentLines(readValueBlock(f.Type, tname, "r"), "\t\t"))
		fmt.Fprintf(&b, "\t\tv.%s = &%s\n", exportIdent(f.Name), tname)
	}
	b.WriteString("\tdefault:\n\t\treturn fmt.Errorf(\"" + name + ": unrecognized alternative index %d\", idx)\n")
	b.WriteString("\t}\n\treturn nil\n}\n")
	return b.String(), nil
}
