// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobuf

import (
	"strings"
	"unicode"
)

// exportProtoName turns an ASN.1 identifier into a CamelCase proto message
// or enum name, mirroring emit/golang's exportIdent for the same source
// identifiers so the two targets name a type consistently.
func exportProtoName(s string) string {
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

// sanitizeProtoName lowercases and underscores an ASN.1 module name into a
// legal proto package identifier.
func sanitizeProtoName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "asn1gen"
	}
	return out
}

// snakeName turns an ASN.1 field identifier (hyphen/underscore/camel mixed)
// into a proto3-conventional lower_snake_case field name.
func snakeName(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			b.WriteRune('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

// upperSnake turns a CamelCase name into UPPER_SNAKE_CASE, used for proto3
// enum value names, which are conventionally prefixed and screaming.
func upperSnake(s string) string {
	return strings.ToUpper(snakeName(s))
}
