// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sql lowers a resolved [model.Program] to PostgreSQL DDL: one
// CREATE TYPE per ENUMERATED and one CREATE TABLE per SEQUENCE/SET/CHOICE,
// one file per module. Like emit/protobuf, this is an additional
// resolved-model consumer, not a migration tool or ORM: it renders schema
// text once, it does not diff or apply it.
package sql

import (
	"fmt"
	"strings"

	"asn1c.dev/asn1c/model"
)

// Options controls how a module's DDL is rendered.
type Options struct {
	// Schema, if set, qualifies table and enum type names
	// ("<Schema>.<table>"); column names are not qualified.
	Schema string
}

// Render builds PostgreSQL DDL text for every module in prog, keyed by
// "<module>.sql".
func Render(prog *model.Program, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(prog.Modules))
	for _, m := range prog.Modules {
		text, err := renderModule(m, opts)
		if err != nil {
			return nil, fmt.Errorf("sql: module %s: %w", m.Name, err)
		}
		out[sanitizeName(m.Name)+".sql"] = []byte(text)
	}
	return out, nil
}

func renderModule(m *model.Module, opts Options) (string, error) {
	byName := make(map[string]*model.Type, len(m.Types))
	for _, t := range m.Types {
		byName[t.Name] = t
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Code generated by asn1c; DO NOT EDIT.\n\n")
	for _, t := range m.Types {
		switch t.Kind {
		case model.KindEnum:
			renderEnumType(&b, t, opts)
		}
	}
	for _, t := range m.Types {
		switch t.Kind {
		case model.KindStruct, model.KindChoice:
			if err := renderTable(&b, t, byName, opts); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

func qualify(name string, opts Options) string {
	if opts.Schema == "" {
		return pgIdent(name)
	}
	return pgIdent(opts.Schema) + "." + pgIdent(name)
}

func renderEnumType(b *strings.Builder, t *model.Type, opts Options) {
	name := enumTypeName(t.Name)
	fmt.Fprintf(b, "CREATE TYPE %s AS ENUM (\n", qualify(name, opts))
	for i, v := range t.Variants {
		sep := ","
		if i == len(t.Variants)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "    '%s'%s\n", v.Name, sep)
	}
	b.WriteString(");\n\n")
}

func renderTable(b *strings.Builder, t *model.Type, byName map[string]*model.Type, opts Options) error {
	name := tableName(t.Name)
	fmt.Fprintf(b, "CREATE TABLE %s (\n", qualify(name, opts))
	b.WriteString("    id bigserial PRIMARY KEY")

	for _, f := range t.Fields {
		colType, err := columnType(f.Type, byName, opts)
		if err != nil {
			return err
		}
		nullable := f.Optional || f.Default != nil || t.Kind == model.KindChoice
		fmt.Fprintf(b, ",\n    %s %s", pgIdent(colName(f.Name)), colType)
		if !nullable {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString("\n);\n\n")
	return nil
}

func columnType(ft model.FieldType, byName map[string]*model.Type, opts Options) (string, error) {
	if ft.Ref != "" {
		target, ok := byName[ft.Ref]
		if !ok {
			return "", fmt.Errorf("unresolved reference %q", ft.Ref)
		}
		switch target.Kind {
		case model.KindEnum:
			return qualify(enumTypeName(ft.Ref), opts), nil
		case model.KindIntAlias:
			return bucketPgType(target.Bucket), nil
		case model.KindBytesAlias:
			return "bytea", nil
		case model.KindStringAlias:
			return "text", nil
		case model.KindListAlias:
			// A named SEQUENCE OF/SET OF alias is stored as its own
			// independently UPER-encoded blob: this package renders schema,
			// it does not generate join tables for nested collections.
			return "bytea", nil
		default:
			// Nested SEQUENCE/SET/CHOICE: stored as its own UPER-encoded
			// value rather than normalized into a foreign key, matching the
			// "collaborator, not ORM" framing.
			return "bytea", nil
		}
	}

	switch ft.Primitive {
	case model.PrimitiveBool:
		return "boolean", nil
	case model.PrimitiveNull:
		return "boolean", nil
	case model.PrimitiveInt:
		return bucketPgType(ft.IntBucket), nil
	case model.PrimitiveOctetString, model.PrimitiveBitString:
		return "bytea", nil
	case model.PrimitiveUTF8String, model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		return "text", nil
	case model.PrimitiveList:
		return "bytea", nil
	default:
		return "", fmt.Errorf("unsupported field primitive %v", ft.Primitive)
	}
}

func bucketPgType(b model.IntBucket) string {
	switch b {
	case model.BucketU8, model.BucketU16, model.BucketI8, model.BucketI16:
		return "smallint"
	case model.BucketU32, model.BucketI32:
		return "integer"
	default:
		return "bigint"
	}
}
