// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import "asn1c.dev/asn1c"

// assignCanonicalTags walks every type assignment in m and assigns each
// SEQUENCE/SET/CHOICE field its canonical tag (X.680 §8.6), then reorders
// SET fields into canonical tag order. Type references must already be
// resolved.
func assignCanonicalTags(m *asn1.Module) error {
	seen := map[*asn1.Type]bool{}
	for _, a := range m.Assignments {
		ta, ok := a.(*asn1.TypeAssignment)
		if !ok {
			continue
		}
		if err := tagWalk(m, ta.Type, seen); err != nil {
			return err
		}
	}
	return nil
}

func tagWalk(m *asn1.Module, t *asn1.Type, seen map[*asn1.Type]bool) error {
	if t == nil || seen[t] {
		return nil
	}
	seen[t] = true

	switch t.Kind {
	case asn1.KindSequenceOf, asn1.KindSetOf:
		return tagWalk(m, t.Element, seen)
	case asn1.KindSequence, asn1.KindSet, asn1.KindChoice:
		automatic := m.TagMode == asn1.Automatic && !anyFieldExplicitlyTagged(t.Fields)
		for i := range t.Fields {
			f := &t.Fields[i]
			if automatic {
				f.Tag = asn1.ClassContextSpecific | asn1.Tag(i)
			} else {
				f.Tag = finalTag(f.Type)
			}
		}
		if t.Kind == asn1.KindSet {
			sortFieldsByTag(t.Fields)
		}
		for i := range t.Fields {
			if err := tagWalk(m, t.Fields[i].Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func anyFieldExplicitlyTagged(fields []asn1.Field) bool {
	for _, f := range fields {
		if f.Type.HasExplicitTag {
			return true
		}
	}
	return false
}

// finalTag computes the tag a type would carry in non-automatic tagging
// mode: its own explicit module-notation tag if it has one, otherwise
// (recursing through type references) the tag of its underlying built-in.
func finalTag(t *asn1.Type) asn1.Tag {
	if t.HasExplicitTag {
		return t.Tag
	}
	if t.Kind == asn1.KindReference && t.Ref.Resolved != nil {
		return finalTag(t.Ref.Resolved)
	}
	return t.Tag
}

// sortFieldsByTag reorders fields into canonical tag order, in place,
// preserving relative order of any (invalid, per X.680) tag ties.
func sortFieldsByTag(fields []asn1.Field) {
	for i := 1; i < len(fields); i++ {
		for j := i; j > 0 && fields[j].Tag.Less(fields[j-1].Tag); j-- {
			fields[j], fields[j-1] = fields[j-1], fields[j]
		}
	}
}
