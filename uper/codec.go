// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

// WriteEnumIndex writes the index of a selected ENUMERATED value or CHOICE
// alternative. When extensible is false, index is a constrained integer
// over [0, rootCount-1] with no leading bit. When extensible is true, one
// extension bit is written first: 0 followed by the constrained root index
// if index < rootCount, or 1 followed by a normally-small index among the
// extension values otherwise.
func (w *Writer) WriteEnumIndex(index, rootCount int, extensible bool) error {
	if !extensible {
		return w.WriteConstrainedInt(int64(index), 0, int64(rootCount-1))
	}
	if index < rootCount {
		w.WriteExtensionBit(false)
		return w.WriteConstrainedInt(int64(index), 0, int64(rootCount-1))
	}
	w.WriteExtensionBit(true)
	return w.WriteNormallySmallInt(uint64(index - rootCount))
}

// ReadEnumIndex is the inverse of [Writer.WriteEnumIndex]. When the
// extension branch is taken, the returned index is rootCount plus the
// decoded extension-relative index; callers decide whether that index names
// a known extension value or should be treated as an unrecognized one.
func (r *Reader) ReadEnumIndex(rootCount int, extensible bool) (index int, inExtension bool, err error) {
	if !extensible {
		v, err := r.ReadConstrainedInt(0, int64(rootCount-1))
		if err != nil {
			return 0, false, err
		}
		if v < 0 || v >= int64(rootCount) {
			return 0, false, r.wrapErr(&InvalidIndexError{Index: int(v), Bound: rootCount})
		}
		return int(v), false, nil
	}
	ext, err := r.ReadExtensionBit()
	if err != nil {
		return 0, false, err
	}
	if !ext {
		v, err := r.ReadConstrainedInt(0, int64(rootCount-1))
		if err != nil {
			return 0, false, err
		}
		if v < 0 || v >= int64(rootCount) {
			return 0, false, r.wrapErr(&InvalidIndexError{Index: int(v), Bound: rootCount})
		}
		return int(v), false, nil
	}
	v, err := r.ReadNormallySmallInt()
	if err != nil {
		return 0, false, err
	}
	return rootCount + int(v), true, nil
}

// SequencePreamble describes the variable-structure prefix of a
// SEQUENCE/SET value: the declared optional-or-default root fields'
// presence bitmap, and (if the type is extensible) the leading extension
// bit and, when set, which extension additions are present.
type SequencePreamble struct {
	Extensible      bool
	InExtension     bool
	RootOptional    []bool // presence of each root optional/default field, declaration order
	ExtensionFields []bool // presence of each extension addition, declaration order
}

// WriteSequencePreamble writes p's extension bit (if the type is
// extensible), the root optional-field bitmap, and — when p.InExtension —
// the normally-small extension-addition count followed by its presence
// bitmap, per X.691 §19.
func (w *Writer) WriteSequencePreamble(p SequencePreamble) error {
	if p.Extensible {
		w.WriteExtensionBit(p.InExtension)
	}
	w.WriteOptionalBitmap(p.RootOptional)
	if p.Extensible && p.InExtension {
		if err := w.WriteNormallySmallInt(uint64(len(p.ExtensionFields))); err != nil {
			return err
		}
		w.WriteOptionalBitmap(p.ExtensionFields)
	}
	return nil
}

// ReadSequencePreamble is the inverse of [Writer.WriteSequencePreamble].
// nRoot is the number of declared root optional/default fields.
func (r *Reader) ReadSequencePreamble(extensible bool, nRoot int) (SequencePreamble, error) {
	p := SequencePreamble{Extensible: extensible}
	if extensible {
		ext, err := r.ReadExtensionBit()
		if err != nil {
			return p, err
		}
		p.InExtension = ext
	}
	bitmap, err := r.ReadOptionalBitmap(nRoot)
	if err != nil {
		return p, err
	}
	p.RootOptional = bitmap
	if extensible && p.InExtension {
		n, err := r.ReadNormallySmallInt()
		if err != nil {
			return p, err
		}
		extBitmap, err := r.ReadOptionalBitmap(int(n))
		if err != nil {
			return p, err
		}
		p.ExtensionFields = extBitmap
	}
	return p, nil
}

// WriteOpenType writes content as a length-prefixed octet sequence whose
// inner encoding is opaque to the outer codec (used for extension
// additions and unrecognized-value passthrough).
func (w *Writer) WriteOpenType(content []byte) error {
	return w.WriteOctetString(content, 0, -1)
}

// ReadOpenType reads the length-prefixed octet sequence written by
// [Writer.WriteOpenType].
func (r *Reader) ReadOpenType() ([]byte, error) {
	return r.ReadOctetString(0, -1)
}

// WriteCollectionLength writes the element-count determinant for a
// SEQUENCE OF/SET OF value under a SIZE(lower, upper) constraint, invoking
// writeElem once per element in order. Fragmentation (X.691 §10.9.3.8)
// applies whenever the element count can reach 16384 or more, i.e.
// whenever the type is unconstrained or its upper bound is >= 16384.
func (w *Writer) WriteCollectionLength(n, lower, upper int, writeElem func(i int) error) error {
	if lower == upper && upper >= 0 {
		for i := range n {
			if err := writeElem(i); err != nil {
				return w.wrapErr(err)
			}
		}
		return nil
	}
	if upper >= 0 && upper < fragmentUnit {
		if err := w.WriteConstrainedInt(int64(n-lower), 0, int64(upper-lower)); err != nil {
			return err
		}
		for i := range n {
			if err := writeElem(i); err != nil {
				return w.wrapErr(err)
			}
		}
		return nil
	}
	next := 0
	return w.WriteLengthDeterminant(n, func(count int) error {
		for range count {
			if err := writeElem(next); err != nil {
				return err
			}
			next++
		}
		return nil
	})
}

// ReadCollectionLength is the inverse of [Writer.WriteCollectionLength],
// invoking readElem once per element with its index.
func (r *Reader) ReadCollectionLength(lower, upper int, readElem func(i int) error) (int, error) {
	if lower == upper && upper >= 0 {
		for i := range lower {
			if err := readElem(i); err != nil {
				return 0, r.wrapErr(err)
			}
		}
		return lower, nil
	}
	if upper >= 0 && upper < fragmentUnit {
		v, err := r.ReadConstrainedInt(int64(lower), int64(upper))
		if err != nil {
			return 0, err
		}
		n := int(v)
		for i := range n {
			if err := readElem(i); err != nil {
				return 0, r.wrapErr(err)
			}
		}
		return n, nil
	}
	next := 0
	total, err := r.ReadLengthDeterminant(func(count int) error {
		for range count {
			if err := readElem(next); err != nil {
				return err
			}
			next++
		}
		return nil
	})
	return total, err
}
