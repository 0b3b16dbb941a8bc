// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import "strconv"

// Module is a named ASN.1 scope: an optional object identifier, a tagging
// mode, an import list, and an ordered list of assignments.
//
// Names are unique within a Module; imports are resolved against other
// loaded modules by [asn1c.dev/asn1c/resolve].
type Module struct {
	Name        string
	OID         ObjectIdentifier // nil if the module has none
	TagMode     TagMode
	Imports     []Import
	Assignments []Assignment
}

// TypeAssignment looks up a type assignment by name, returning nil if none
// exists (or if name is bound to a value or OID assignment instead).
func (m *Module) TypeAssignment(name string) *Type {
	for _, a := range m.Assignments {
		if ta, ok := a.(*TypeAssignment); ok && ta.Name == name {
			return ta.Type
		}
	}
	return nil
}

// ValueAssignment looks up a value assignment by name.
func (m *Module) ValueAssignment(name string) (*ValueAssignment, bool) {
	for _, a := range m.Assignments {
		if va, ok := a.(*ValueAssignment); ok && va.Name == name {
			return va, true
		}
	}
	return nil, false
}

// Import is a single `FROM` clause of a module's IMPORTS list.
type Import struct {
	Module  string
	Symbols []string
}

// Assignment is implemented by [TypeAssignment], [ValueAssignment], and
// [OIDAssignment].
type Assignment interface {
	AssignmentName() string
}

// TypeAssignment binds Name to Type within a Module.
type TypeAssignment struct {
	Name string
	Type *Type
}

func (a *TypeAssignment) AssignmentName() string { return a.Name }

// ValueAssignment binds Name, typed as Type, to Value within a Module.
type ValueAssignment struct {
	Name  string
	Type  *Type
	Value Value
}

func (a *ValueAssignment) AssignmentName() string { return a.Name }

// OIDAssignment binds Name to an object identifier value.
type OIDAssignment struct {
	Name string
	OID  ObjectIdentifier
}

func (a *OIDAssignment) AssignmentName() string { return a.Name }

// Kind enumerates the built-in ASN.1 type constructors this compiler
// supports. See spec.md §3 for the full list and §1 for excluded built-ins
// (REAL, EXTERNAL, …).
type Kind int

const (
	KindBoolean Kind = iota
	KindNull
	KindInteger
	KindBitString
	KindOctetString
	KindUTF8String
	KindIA5String
	KindNumericString
	KindPrintableString
	KindVisibleString
	KindEnumerated
	KindSequence
	KindSet
	KindSequenceOf
	KindSetOf
	KindChoice
	KindReference
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Type is a tagged sum over the ASN.1 built-ins and references, shared
// between the unresolved model produced by [asn1c.dev/asn1c/parser] and the
// resolved model produced by [asn1c.dev/asn1c/resolve]. Which fields are
// meaningful depends on Kind:
//
//   - KindInteger: Constraint (optional)
//   - KindBitString, KindOctetString, KindUTF8String, …: Constraint
//     (SIZE, optional); NamedConstants for KindBitString
//   - KindEnumerated: Variants, Extensible, ExtensionIndex
//   - KindSequence, KindSet: Fields, Extensible, ExtensionIndex
//   - KindSequenceOf, KindSetOf: Element, Constraint (SIZE, optional)
//   - KindChoice: Fields (the alternatives), Extensible, ExtensionIndex
//   - KindReference: Ref
type Type struct {
	Kind           Kind
	Tag            Tag  // universal tag for built-ins; the module-notation tag if HasExplicitTag
	Implicit       bool // whether Tag replaces (true) or wraps (false) the underlying encoding
	HasExplicitTag bool // true if a "[class number]" prefix appeared in the source
	Constraint     *Constraint

	Fields []Field // SEQUENCE / SET fields, or CHOICE alternatives

	Element *Type // SEQUENCE OF / SET OF

	Variants       []EnumValue // ENUMERATED
	Extensible     bool        // SEQUENCE, SET, CHOICE, ENUMERATED
	ExtensionIndex int         // index of "..." within Fields/Variants; -1 if not extensible

	NamedConstants []NamedConstant // BIT STRING / INTEGER named values

	Ref *TypeRef // KindReference

	// Name is the declared or synthesized name of this type, used for
	// diagnostics and for naming emitted types. Anonymous inline types get a
	// synthetic name derived from their enclosing path (see parser.go).
	Name string
}

// IsAggregate reports whether t is a SEQUENCE, SET, or CHOICE (types with
// Fields).
func (t *Type) IsAggregate() bool {
	switch t.Kind {
	case KindSequence, KindSet, KindChoice:
		return true
	default:
		return false
	}
}

// Field describes a member of a SEQUENCE, SET, or CHOICE (an "alternative").
type Field struct {
	Name     string
	Type     *Type
	Optional bool // always false for CHOICE alternatives
	Default  *Value
	Tag      Tag // canonical tag, filled in by resolve
}

// EnumValue is one named variant of an ENUMERATED type, in declaration
// order.
type EnumValue struct {
	Name  string
	Value int64
}

// NamedConstant associates a name with an integer value for BIT STRING named
// bits or INTEGER named numbers.
type NamedConstant struct {
	Name  string
	Value Bound
}

// TypeRef is an unresolved (or resolved) reference to a named type, optionally
// qualified by the module it was imported from.
type TypeRef struct {
	Module   string // "" if unqualified / same module
	Name     string
	Resolved *Type // filled in by resolve.Result
}

// ConstraintKind distinguishes RANGE constraints (on INTEGER) from SIZE
// constraints (on string- and collection-like types).
type ConstraintKind int

const (
	ConstraintRange ConstraintKind = iota
	ConstraintSize
)

// Constraint is either a SIZE(..) or (for INTEGER) a RANGE(a..b) constraint.
// Lower and Upper are symbolic before resolution and concrete integers (or
// the open MIN/MAX sentinel) afterward.
type Constraint struct {
	Kind       ConstraintKind
	Lower      Bound
	Upper      Bound
	Extensible bool
}

// BoundKind distinguishes the four forms a constraint bound can take.
type BoundKind int

const (
	BoundLiteral BoundKind = iota
	BoundReference
	BoundMin
	BoundMax
)

// Bound is one endpoint of a [Constraint]. Before resolution it may be a
// BoundReference (a named value assignment); resolve.Resolve replaces every
// BoundReference with a BoundLiteral. BoundMin/BoundMax are the open-ended
// MIN/MAX sentinels from ASN.1 notation and survive resolution unchanged.
type Bound struct {
	Kind      BoundKind
	Literal   int64
	Reference string // value reference name; only meaningful if Kind == BoundReference
}

// IsResolved reports whether b no longer contains a symbolic reference.
func (b Bound) IsResolved() bool {
	return b.Kind != BoundReference
}

func (b Bound) String() string {
	switch b.Kind {
	case BoundMin:
		return "MIN"
	case BoundMax:
		return "MAX"
	case BoundReference:
		return b.Reference
	default:
		return strconv.FormatInt(b.Literal, 10)
	}
}

// ValueKind enumerates the forms a parsed [Value] literal can take.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueBool
	ValueString
	ValueBitString
	ValueOID
	ValueNull
	ValueEnumIdent // bare identifier: an ENUMERATED variant name or a value reference
)

// Value is a parsed ASN.1 value literal, used for DEFAULT clauses and value
// assignments. A bare identifier (ValueEnumIdent) is ambiguous until
// resolution: it may name an ENUMERATED variant or another value assignment.
type Value struct {
	Kind  ValueKind
	Int   int64
	Bool  bool
	Str   string
	Bits  BitString
	OID   ObjectIdentifier
	Ident string
}
