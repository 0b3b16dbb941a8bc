// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

// UnresolvedReferenceError reports a type reference that names no type
// assignment reachable from the referencing module, either directly or
// through an IMPORTS clause.
type UnresolvedReferenceError struct {
	Module string
	Name   string
}

func (e *UnresolvedReferenceError) Error() string {
	return "undefined type " + e.Name + " referenced from module " + e.Module
}

// UnresolvedValueError reports a value reference (inside a SIZE/RANGE
// constraint or a DEFAULT clause) that names no value assignment.
type UnresolvedValueError struct {
	Module string
	Name   string
}

func (e *UnresolvedValueError) Error() string {
	return "undefined value " + e.Name + " referenced from module " + e.Module
}

// ImportNotFoundError reports an IMPORTS clause naming a module that was not
// supplied to Resolve, or a symbol the named module does not export.
type ImportNotFoundError struct {
	Module string // importing module
	From   string // module named in the FROM clause
	Symbol string
}

func (e *ImportNotFoundError) Error() string {
	if e.Symbol == "" {
		return "module " + e.Module + " imports from unknown module " + e.From
	}
	return "module " + e.Module + " imports undefined symbol " + e.Symbol + " from " + e.From
}

// InconsistentModelError reports a model the resolver rejects: a
// value-reference cycle, a module name declared twice, or a non-INTEGER
// value used as a constraint bound. Canonical-tag collisions between the
// fields of a SET or the alternatives of a CHOICE are not detected.
type InconsistentModelError struct {
	Module string
	Reason string
}

func (e *InconsistentModelError) Error() string {
	return "module " + e.Module + ": " + e.Reason
}
