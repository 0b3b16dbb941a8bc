// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

import (
	"fmt"

	"asn1c.dev/asn1c/model"
)

// hasPresenceBit reports whether f gets its own presence bit in the
// SEQUENCE/SET preamble: true for OPTIONAL members and for members with a
// DEFAULT clause, since absence of the latter must still be distinguishable
// from an explicitly-encoded value equal to the default.
func hasPresenceBit(f model.Field) bool {
	return f.Optional || f.Default != nil
}

// writeFieldBlock renders the statements that write one struct field to the
// writer named wVar, skipping OPTIONAL or DEFAULT fields that are nil. Each
// field gets its own braced scope so the v0/err temporaries used by value
// readers/writers never collide across fields.
func writeFieldBlock(f model.Field, varExpr, wVar string) string {
	if hasPresenceBit(f) {
		inner := writeValueBlock(f.Type, "(*"+varExpr+")", wVar)
		return fmt.Sprintf("if %s != nil {\n%s}\n", varExpr, indentLines(inner, "\t"))
	}
	inner := writeValueBlock(f.Type, varExpr, wVar)
	return fmt.Sprintf("{\n%s}\n", indentLines(inner, "\t"))
}

// readFieldBlock renders the statements that read one struct field from the
// reader named rVar. When optional is true, varExpr names a pointer-typed
// destination: the value is read into a local tmp and varExpr is set to
// &tmp.
func readFieldBlock(f model.Field, varExpr, rVar string, optional bool) string {
	if optional {
		t := goType(f.Type)
		inner := readValueBlock(f.Type, "tmp", rVar)
		return fmt.Sprintf("var tmp %s\n{\n%s}\n%s = &tmp\n", t, indentLines(inner, "\t"), varExpr)
	}
	inner := readValueBlock(f.Type, varExpr, rVar)
	return fmt.Sprintf("{\n%s}\n", indentLines(inner, "\t"))
}
