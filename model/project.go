// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/resolve"
)

// Project lowers every module of a resolved [resolve.Result] into a
// [Program]. Every SEQUENCE, SET, CHOICE, and ENUMERATED type assignment
// becomes its own emitted [Type]; every INTEGER, *String, OCTET STRING, BIT
// STRING, and SEQUENCE/SET OF type assignment becomes a named alias; fields
// whose type is anonymous are projected inline as a [FieldType].
func Project(r *resolve.Result) (*Program, error) {
	prog := &Program{}
	for _, m := range r.Modules {
		pm, err := projectModule(m)
		if err != nil {
			return nil, err
		}
		prog.Modules = append(prog.Modules, pm)
	}
	return prog, nil
}

type moduleProjector struct {
	module *asn1.Module
	byName map[string]*Type
	order  []*Type
}

func projectModule(m *asn1.Module) (*Module, error) {
	p := &moduleProjector{module: m, byName: make(map[string]*Type)}
	for _, a := range m.Assignments {
		ta, ok := a.(*asn1.TypeAssignment)
		if !ok {
			continue
		}
		if err := p.projectNamed(ta.Name, ta.Type); err != nil {
			return nil, fmt.Errorf("module %s: type %s: %w", m.Name, ta.Name, err)
		}
	}
	return &Module{Name: m.Name, Types: p.order}, nil
}

// projectNamed registers t under name as an emitted Type, unless it already
// exists (idempotent: a type may be reached both as a top-level assignment
// and as a field reference before its own assignment is visited).
func (p *moduleProjector) projectNamed(name string, t *asn1.Type) error {
	if _, ok := p.byName[name]; ok {
		return nil
	}
	et := &Type{Name: name, Source: t, ExtIndex: -1}
	// Reserve the slot before recursing so self- and mutually-referential
	// aggregates don't recurse forever.
	p.byName[name] = et
	p.order = append(p.order, et)

	switch t.Kind {
	case asn1.KindSequence, asn1.KindSet, asn1.KindChoice:
		et.Kind = KindStruct
		if t.Kind == asn1.KindChoice {
			et.Kind = KindChoice
		}
		et.Extensible = t.Extensible
		et.ExtIndex = t.ExtensionIndex
		fields, err := p.projectFields(name, t.Fields)
		if err != nil {
			return err
		}
		et.Fields = fields
	case asn1.KindEnumerated:
		et.Kind = KindEnum
		et.Extensible = t.Extensible
		et.ExtIndex = t.ExtensionIndex
		for _, v := range t.Variants {
			et.Variants = append(et.Variants, EnumVariant{Name: v.Name, Value: v.Value})
		}
	case asn1.KindInteger:
		et.Kind = KindIntAlias
		et.Bucket = IntegerBucket(t.Constraint)
		et.IntRange = intRange(t.Constraint)
		et.NamedConstants = projectNamedConstants(t.NamedConstants)
	case asn1.KindOctetString, asn1.KindBitString:
		et.Kind = KindBytesAlias
		et.ListSize = sizeConstraint(t.Constraint)
		et.NamedConstants = projectNamedConstants(t.NamedConstants)
	case asn1.KindUTF8String, asn1.KindIA5String, asn1.KindNumericString,
		asn1.KindPrintableString, asn1.KindVisibleString:
		et.Kind = KindStringAlias
		et.ListSize = sizeConstraint(t.Constraint)
	case asn1.KindSequenceOf, asn1.KindSetOf:
		et.Kind = KindListAlias
		elem, err := p.projectFieldType(name+"Element", t.Element)
		if err != nil {
			return err
		}
		et.Element = &elem
		et.ListSize = sizeConstraint(t.Constraint)
	case asn1.KindBoolean, asn1.KindNull:
		// A bare "Foo ::= BOOLEAN" style alias; represent it as a
		// single-field record is overkill, so fold it into the bytes-alias
		// bucket with no size (there is nothing to bound).
		et.Kind = KindBytesAlias
	case asn1.KindReference:
		// "Foo ::= Bar": an alias for another named type. Project it as a
		// transparent struct-free pass-through by copying the target's
		// projected shape under the new name.
		target := t.Ref.Resolved
		if target == nil {
			return fmt.Errorf("unresolved reference %s", t.Ref.Name)
		}
		if err := p.projectNamed(t.Ref.Name, target); err != nil {
			return err
		}
		src := p.byName[t.Ref.Name]
		clone := *src
		clone.Name = name
		clone.Source = t
		*et = clone
	default:
		return fmt.Errorf("unsupported top-level kind %v", t.Kind)
	}
	return nil
}

func (p *moduleProjector) projectFields(owner string, fields []asn1.Field) ([]Field, error) {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		ft, err := p.projectFieldType(owner+"_"+f.Name, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out = append(out, Field{
			Name:     f.Name,
			Type:     ft,
			Optional: f.Optional,
			Default:  f.Default,
			Tag:      f.Tag,
		})
	}
	return out, nil
}

// projectFieldType projects t as it appears inside a field or list element.
// If t names an aggregate or enum, that type is registered (under its own
// Name, synthesizing one from synthName if needed) and a Ref is returned;
// otherwise t is projected inline.
func (p *moduleProjector) projectFieldType(synthName string, t *asn1.Type) (FieldType, error) {
	switch t.Kind {
	case asn1.KindReference:
		target := t.Ref.Resolved
		if target == nil {
			return FieldType{}, fmt.Errorf("unresolved reference %s", t.Ref.Name)
		}
		if err := p.projectNamed(t.Ref.Name, target); err != nil {
			return FieldType{}, err
		}
		return FieldType{Ref: t.Ref.Name}, nil
	case asn1.KindSequence, asn1.KindSet, asn1.KindChoice, asn1.KindEnumerated:
		name := t.Name
		if name == "" {
			name = synthName
		}
		if err := p.projectNamed(name, t); err != nil {
			return FieldType{}, err
		}
		return FieldType{Ref: name}, nil
	case asn1.KindBoolean:
		return FieldType{Primitive: PrimitiveBool}, nil
	case asn1.KindNull:
		return FieldType{Primitive: PrimitiveNull}, nil
	case asn1.KindInteger:
		return FieldType{Primitive: PrimitiveInt, IntBucket: IntegerBucket(t.Constraint), IntRange: intRange(t.Constraint)}, nil
	case asn1.KindOctetString:
		return FieldType{Primitive: PrimitiveOctetString, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindBitString:
		return FieldType{Primitive: PrimitiveBitString, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindUTF8String:
		return FieldType{Primitive: PrimitiveUTF8String, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindIA5String:
		return FieldType{Primitive: PrimitiveIA5String, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindNumericString:
		return FieldType{Primitive: PrimitiveNumericString, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindPrintableString:
		return FieldType{Primitive: PrimitivePrintableString, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindVisibleString:
		return FieldType{Primitive: PrimitiveVisibleString, SizeConstr: sizeConstraint(t.Constraint)}, nil
	case asn1.KindSequenceOf, asn1.KindSetOf:
		elem, err := p.projectFieldType(synthName+"Element", t.Element)
		if err != nil {
			return FieldType{}, err
		}
		return FieldType{Primitive: PrimitiveList, SizeConstr: sizeConstraint(t.Constraint), Element: &elem}, nil
	default:
		return FieldType{}, fmt.Errorf("unsupported field kind %v", t.Kind)
	}
}

func projectNamedConstants(ncs []asn1.NamedConstant) []NamedConstant {
	if len(ncs) == 0 {
		return nil
	}
	out := make([]NamedConstant, 0, len(ncs))
	for _, nc := range ncs {
		out = append(out, NamedConstant{Name: nc.Name, Value: nc.Value.Literal})
	}
	return out
}

func intRange(c *asn1.Constraint) *IntRange {
	if c == nil || c.Kind != asn1.ConstraintRange {
		return nil
	}
	r := &IntRange{}
	if c.Lower.Kind == asn1.BoundLiteral {
		v := c.Lower.Literal
		r.Lower = &v
	}
	if c.Upper.Kind == asn1.BoundLiteral {
		v := c.Upper.Literal
		r.Upper = &v
	}
	return r
}

func sizeConstraint(c *asn1.Constraint) *SizeConstraint {
	if c == nil || c.Kind != asn1.ConstraintSize {
		return nil
	}
	sc := &SizeConstraint{Upper: -1}
	if c.Lower.Kind == asn1.BoundLiteral {
		sc.Lower = int(c.Lower.Literal)
	}
	if c.Upper.Kind == asn1.BoundLiteral {
		sc.Upper = int(c.Upper.Literal)
	}
	return sc
}

// IntegerBucket picks the smallest Go integer bucket covering c, per the
// rules in spec.md §4.6: unconstrained or lower-open INTEGER takes the
// widest signed bucket; a non-negative range is bucketed by its upper
// bound (an open upper bound takes the widest unsigned bucket); any range
// reaching below zero is bucketed by span into the narrowest signed type
// that fits both ends.
func IntegerBucket(c *asn1.Constraint) IntBucket {
	if c == nil || c.Kind != asn1.ConstraintRange {
		return BucketI64
	}
	if c.Lower.Kind != asn1.BoundLiteral {
		return BucketI64
	}
	lb := c.Lower.Literal
	if c.Upper.Kind != asn1.BoundLiteral {
		if lb >= 0 {
			return BucketU64
		}
		return BucketI64
	}
	ub := c.Upper.Literal
	if lb >= 0 {
		switch {
		case ub < 1<<8:
			return BucketU8
		case ub < 1<<16:
			return BucketU16
		case ub < 1<<32:
			return BucketU32
		default:
			return BucketU64
		}
	}
	switch {
	case lb >= -(1<<7) && ub < 1<<7:
		return BucketI8
	case lb >= -(1<<15) && ub < 1<<15:
		return BucketI16
	case lb >= -(1<<31) && ub < 1<<31:
		return BucketI32
	default:
		return BucketI64
	}
}
