// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve turns the unresolved model produced by
// [asn1c.dev/asn1c/parser] into a fully resolved one: value references
// inside SIZE/RANGE constraints and DEFAULT clauses are replaced by their
// literal values, type references are linked to the [asn1.Type] they name
// (within the same module or across an IMPORTS clause), and every
// SEQUENCE/SET/CHOICE field is assigned its canonical tag per X.680 §8.6.
package resolve

import "asn1c.dev/asn1c"

// Result is the output of [Resolve]: every [asn1.Module] passed in, keyed by
// name, with all cross-references filled in.
type Result struct {
	Modules map[string]*asn1.Module
}

// Module returns the resolved module named name, if one was supplied to
// Resolve.
func (r *Result) Module(name string) (*asn1.Module, bool) {
	m, ok := r.Modules[name]
	return m, ok
}

// resolver holds the mutable state threaded through a single Resolve call.
type resolver struct {
	modules map[string]*asn1.Module

	// resolving tracks module+name pairs currently being resolved, to turn
	// an infinite recursion on a value-reference cycle into a diagnostic.
	resolving map[string]bool
	resolved  map[string]asn1.Value
}

// Resolve resolves modules as a single compilation unit: modules may import
// from each other, and all are returned in the Result keyed by name.
func Resolve(modules []*asn1.Module) (*Result, error) {
	r := &resolver{
		modules:   make(map[string]*asn1.Module, len(modules)),
		resolving: map[string]bool{},
		resolved:  map[string]asn1.Value{},
	}
	for _, m := range modules {
		if _, dup := r.modules[m.Name]; dup {
			return nil, &InconsistentModelError{Module: m.Name, Reason: "module name declared more than once"}
		}
		r.modules[m.Name] = m
	}

	for _, m := range modules {
		for _, a := range m.Assignments {
			ta, ok := a.(*asn1.TypeAssignment)
			if !ok {
				continue
			}
			if err := r.resolveType(m, ta.Type); err != nil {
				return nil, err
			}
		}
	}

	for _, m := range modules {
		if err := assignCanonicalTags(m); err != nil {
			return nil, err
		}
	}

	return &Result{Modules: r.modules}, nil
}

// lookupType resolves an unqualified or module-qualified type name visible
// from m, following m's IMPORTS clause for qualified or external references.
func (r *resolver) lookupType(m *asn1.Module, ref *asn1.TypeRef) (*asn1.Type, error) {
	if ref.Module == "" {
		if t := m.TypeAssignment(ref.Name); t != nil {
			return t, nil
		}
		// Not declared locally: maybe imported without qualification.
		for _, imp := range m.Imports {
			if !containsStr(imp.Symbols, ref.Name) {
				continue
			}
			from, ok := r.modules[imp.Module]
			if !ok {
				return nil, &ImportNotFoundError{Module: m.Name, From: imp.Module}
			}
			if t := from.TypeAssignment(ref.Name); t != nil {
				return t, nil
			}
			return nil, &ImportNotFoundError{Module: m.Name, From: imp.Module, Symbol: ref.Name}
		}
		return nil, &UnresolvedReferenceError{Module: m.Name, Name: ref.Name}
	}

	from, ok := r.modules[ref.Module]
	if !ok {
		return nil, &ImportNotFoundError{Module: m.Name, From: ref.Module}
	}
	if t := from.TypeAssignment(ref.Name); t != nil {
		return t, nil
	}
	return nil, &UnresolvedReferenceError{Module: ref.Module, Name: ref.Name}
}

// resolveType walks t, linking every KindReference to its target type and
// resolving every symbolic Bound/Value reachable from it. It is safe to call
// more than once on the same *Type: already-resolved references are left
// untouched.
func (r *resolver) resolveType(m *asn1.Module, t *asn1.Type) error {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case asn1.KindReference:
		if t.Ref.Resolved == nil {
			target, err := r.lookupType(m, t.Ref)
			if err != nil {
				return err
			}
			t.Ref.Resolved = target
		}
	case asn1.KindSequenceOf, asn1.KindSetOf:
		if err := r.resolveType(m, t.Element); err != nil {
			return err
		}
	case asn1.KindSequence, asn1.KindSet, asn1.KindChoice:
		for i := range t.Fields {
			f := &t.Fields[i]
			if err := r.resolveType(m, f.Type); err != nil {
				return err
			}
			if f.Default != nil {
				v, err := r.resolveValue(m, f.Type, *f.Default)
				if err != nil {
					return err
				}
				f.Default = &v
			}
		}
	}
	if t.Constraint != nil {
		if err := r.resolveBound(m, &t.Constraint.Lower); err != nil {
			return err
		}
		if err := r.resolveBound(m, &t.Constraint.Upper); err != nil {
			return err
		}
	}
	for i := range t.NamedConstants {
		if err := r.resolveBound(m, &t.NamedConstants[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// resolveBound replaces a BoundReference in place with the literal integer
// value of the value assignment it names.
func (r *resolver) resolveBound(m *asn1.Module, b *asn1.Bound) error {
	if b.Kind != asn1.BoundReference {
		return nil
	}
	v, err := r.resolveNamedValue(m, b.Reference)
	if err != nil {
		return err
	}
	if v.Kind != asn1.ValueInt {
		return &InconsistentModelError{Module: m.Name, Reason: "value " + b.Reference + " is not an INTEGER"}
	}
	b.Kind = asn1.BoundLiteral
	b.Literal = v.Int
	b.Reference = ""
	return nil
}

// resolveValue resolves v, which was parsed as the DEFAULT (or assigned
// value) of a field/assignment of type typ. A bare identifier
// (ValueEnumIdent) is kept as-is if it names a variant of typ (an ENUMERATED
// default); otherwise it is looked up as a value reference and its
// underlying value substituted.
func (r *resolver) resolveValue(m *asn1.Module, typ *asn1.Type, v asn1.Value) (asn1.Value, error) {
	if v.Kind != asn1.ValueEnumIdent {
		return v, nil
	}
	for typ != nil && typ.Kind == asn1.KindReference && typ.Ref != nil && typ.Ref.Resolved != nil {
		typ = typ.Ref.Resolved
	}
	if typ != nil && typ.Kind == asn1.KindEnumerated {
		for _, variant := range typ.Variants {
			if variant.Name == v.Ident {
				return v, nil
			}
		}
	}
	return r.resolveNamedValue(m, v.Ident)
}

// resolveNamedValue resolves the value assignment named name, visible from
// m directly or via an IMPORTS clause, detecting reference cycles.
func (r *resolver) resolveNamedValue(m *asn1.Module, name string) (asn1.Value, error) {
	key := m.Name + "." + name
	if v, ok := r.resolved[key]; ok {
		return v, nil
	}
	if r.resolving[key] {
		return asn1.Value{}, &InconsistentModelError{Module: m.Name, Reason: "cyclic value reference involving " + name}
	}
	r.resolving[key] = true
	defer delete(r.resolving, key)

	va, ok := m.ValueAssignment(name)
	if !ok {
		for _, imp := range m.Imports {
			if !containsStr(imp.Symbols, name) {
				continue
			}
			from, ok := r.modules[imp.Module]
			if !ok {
				return asn1.Value{}, &ImportNotFoundError{Module: m.Name, From: imp.Module}
			}
			v, err := r.resolveNamedValue(from, name)
			if err != nil {
				return asn1.Value{}, err
			}
			r.resolved[key] = v
			return v, nil
		}
		return asn1.Value{}, &UnresolvedValueError{Module: m.Name, Name: name}
	}

	v, err := r.resolveValue(m, va.Type, va.Value)
	if err != nil {
		return asn1.Value{}, err
	}
	r.resolved[key] = v
	return v, nil
}

func containsStr(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
