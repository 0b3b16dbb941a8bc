// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inline exposes the compiler front end as a single pure function,
// for embedding a schema directly in a Go program rather than invoking the
// asn1c CLI: lex, parse, resolve, and project one module's source text in
// one call.
package inline

import (
	"fmt"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/model"
	"asn1c.dev/asn1c/parser"
	"asn1c.dev/asn1c/resolve"
)

// Compile runs the full front end over a single ASN.1 module's source text
// and returns its emitted-type projection. Safe to call from an init() or a
// go:generate step (cmd/asn1gen does exactly that); it has no side effects
// and keeps no state between calls.
func Compile(schema string) (*model.Program, error) {
	return CompileModules(schema)
}

// CompileModules runs the front end over one or more module source texts
// (each a complete "<name> DEFINITIONS ::= BEGIN ... END" unit) that may
// cross-reference each other, and projects all of them together.
func CompileModules(schemas ...string) (*model.Program, error) {
	mods := make([]*asn1.Module, 0, len(schemas))
	for i, src := range schemas {
		m, err := parser.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("inline: module %d: %w", i, err)
		}
		mods = append(mods, m)
	}

	res, err := resolve.Resolve(mods)
	if err != nil {
		return nil, fmt.Errorf("inline: %w", err)
	}

	prog, err := model.Project(res)
	if err != nil {
		return nil, fmt.Errorf("inline: %w", err)
	}
	return prog, nil
}
