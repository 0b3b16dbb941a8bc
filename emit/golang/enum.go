// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strings"

	"asn1c.dev/asn1c/model"
)

func (g *generator) renderEnum(t *model.Type) (string, error) {
	name := exportIdent(t.Name)
	rootCount := len(t.Variants)
	if t.Extensible && t.ExtIndex >= 0 {
		rootCount = t.ExtIndex
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s is generated from the %s ENUMERATED.\ntype %s int32\n\n", name, t.Name, name)
	b.WriteString("const (\n")
	for _, v := range t.Variants {
		fmt.Fprintf(&b, "\t%s%s %s = %d\n", name, exportIdent(v.Name), name, v.Value)
	}
	b.WriteString(")\n\n")

	b.WriteString(fmt.Sprintf("func (v %s) MarshalUPER(w *uper.Writer) error {\n", name))
	b.WriteString("\tidx, err := " + strings.ToLower(name[:1]) + name[1:] + "Index(v)\n\tif err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(&b, "\treturn w.WriteEnumIndex(idx, %d, %t)\n}\n\n", rootCount, t.Extensible)

	b.WriteString(fmt.Sprintf("func (v *%s) UnmarshalUPER(r *uper.Reader) error {\n", name))
	fmt.Fprintf(&b, "\tidx, _, err := r.ReadEnumIndex(%d, %t)\n\tif err != nil {\n\t\treturn err\n\t}\n", rootCount, t.Extensible)
	b.WriteString("\tswitch idx {\n")
	for i, v := range t.Variants {
		fmt.Fprintf(&b, "\tcase %d:\n\t\t*v = %s%s\n", i, name, exportIdent(v.Name))
	}
	b.WriteString("\tdefault:\n\t\treturn fmt.Errorf(\"" + name + ": unrecognized index %d\", idx)\n")
	b.WriteString("\t}\n\treturn nil\n}\n\n")

	fnName := strings.ToLower(name[:1]) + name[1:] + "Index"
	fmt.Fprintf(&b, "func %s(v %s) (int, error) {\n\tswitch v {\n", fnName, name)
	for i, v := range t.Variants {
		fmt.Fprintf(&b, "\tcase %s%s:\n\t\treturn %d, nil\n", name, exportIdent(v.Name), i)
	}
	b.WriteString("\t}\n\treturn 0, fmt.Errorf(\"" + name + ": invalid value %d\", v)\n}\n")
	return b.String(), nil
}
