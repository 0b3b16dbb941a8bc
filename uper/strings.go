// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

import (
	"unicode/utf8"

	"asn1c.dev/asn1c"
)

// charWidth returns the fixed per-character bit width this package uses for
// a restricted string kind absent a modeled permitted-alphabet constraint
// (spec.md §4.2's "7 or 8 bits per character as prescribed by the
// standard" fallback; NumericString's 11-symbol unconstrained alphabet gets
// the standard's 4-bit width).
func charWidth(kind asn1.Kind) int {
	if kind == asn1.KindNumericString {
		return 4
	}
	return 7
}

// numericAlphabet is NumericString's unconstrained alphabet in canonical
// order: space, then '0'..'9'.
const numericAlphabet = " 0123456789"

func charToIndex(kind asn1.Kind, c byte) (uint64, bool) {
	if kind == asn1.KindNumericString {
		for i := 0; i < len(numericAlphabet); i++ {
			if numericAlphabet[i] == c {
				return uint64(i), true
			}
		}
		return 0, false
	}
	if c >= 1<<7 {
		return 0, false
	}
	return uint64(c), true
}

func indexToChar(kind asn1.Kind, v uint64) (byte, bool) {
	if kind == asn1.KindNumericString {
		if v >= uint64(len(numericAlphabet)) {
			return 0, false
		}
		return numericAlphabet[v], true
	}
	if v >= 1<<7 {
		return 0, false
	}
	return byte(v), true
}

// WriteOctetString writes b as an OCTET STRING value under a SIZE(lower,
// upper) constraint (upper < 0 means unconstrained). A fixed-size constraint
// (lower == upper) omits the length determinant entirely.
func (w *Writer) WriteOctetString(b []byte, lower, upper int) error {
	if err := checkSize(len(b), lower, upper); err != nil {
		return w.wrapErr(err)
	}
	if lower == upper && upper >= 0 {
		w.WriteOctets(b)
		return nil
	}
	if upper >= 0 && upper < fragmentUnit {
		if err := w.WriteConstrainedInt(int64(len(b)-lower), 0, int64(upper-lower)); err != nil {
			return err
		}
		w.WriteOctets(b)
		return nil
	}
	return w.WriteLengthDeterminant(len(b), func(count int) error {
		w.WriteOctets(b[:count])
		b = b[count:]
		return nil
	})
}

// ReadOctetString is the inverse of [Writer.WriteOctetString].
func (r *Reader) ReadOctetString(lower, upper int) ([]byte, error) {
	if lower == upper && upper >= 0 {
		return r.ReadOctets(lower)
	}
	if upper >= 0 && upper < fragmentUnit {
		n, err := r.ReadConstrainedInt(int64(lower), int64(upper))
		if err != nil {
			return nil, err
		}
		return r.ReadOctets(int(n))
	}
	var out []byte
	_, err := r.ReadLengthDeterminant(func(count int) error {
		chunk, err := r.ReadOctets(count)
		if err != nil {
			return err
		}
		out = append(out, chunk...)
		return nil
	})
	return out, err
}

// WriteBitStringValue writes bs under a SIZE(lower, upper) constraint.
// Unconstrained or large-upper sizes fragment per X.691 §10.9.3.8, the same
// as [Writer.WriteOctetString].
func (w *Writer) WriteBitStringValue(bs asn1.BitString, lower, upper int) error {
	n := bs.Len()
	if err := checkSize(n, lower, upper); err != nil {
		return w.wrapErr(err)
	}
	if lower == upper && upper >= 0 {
		for i := 0; i < n; i++ {
			w.bw.writeBit(bs.At(i))
		}
		return nil
	}
	if upper >= 0 && upper < fragmentUnit {
		if err := w.WriteConstrainedInt(int64(n-lower), 0, int64(upper-lower)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			w.bw.writeBit(bs.At(i))
		}
		return nil
	}
	pos := 0
	return w.WriteLengthDeterminant(n, func(count int) error {
		for i := 0; i < count; i++ {
			w.bw.writeBit(bs.At(pos + i))
		}
		pos += count
		return nil
	})
}

// ReadBitStringValue is the inverse of [Writer.WriteBitStringValue].
func (r *Reader) ReadBitStringValue(lower, upper int) (asn1.BitString, error) {
	readN := func(n int) (asn1.BitString, error) {
		bytes := make([]byte, (n+7)/8)
		for i := 0; i < n; i++ {
			b, err := r.br.readBit()
			if err != nil {
				return asn1.BitString{}, r.wrapErr(err)
			}
			if b != 0 {
				bytes[i/8] |= 1 << (7 - uint(i%8))
			}
		}
		return asn1.BitString{Bytes: bytes, BitLength: n}, nil
	}
	if lower == upper && upper >= 0 {
		return readN(lower)
	}
	if upper >= 0 && upper < fragmentUnit {
		v, err := r.ReadConstrainedInt(int64(lower), int64(upper))
		if err != nil {
			return asn1.BitString{}, err
		}
		return readN(int(v))
	}
	var bw bitWriter
	_, err := r.ReadLengthDeterminant(func(count int) error {
		for i := 0; i < count; i++ {
			b, err := r.br.readBit()
			if err != nil {
				return err
			}
			bw.writeBit(b)
		}
		return nil
	})
	if err != nil {
		return asn1.BitString{}, err
	}
	return asn1.BitString{Bytes: bw.bytes(), BitLength: bw.bitLen()}, nil
}

// WriteUTF8String writes s as a UTF8String: a length determinant (byte
// count) followed by its raw UTF-8 bytes.
func (w *Writer) WriteUTF8String(s string, lower, upper int) error {
	if !utf8.ValidString(s) {
		return w.wrapErr(&InvalidUTF8Error{})
	}
	return w.WriteOctetString([]byte(s), lower, upper)
}

// ReadUTF8String is the inverse of [Writer.WriteUTF8String].
func (r *Reader) ReadUTF8String(lower, upper int) (string, error) {
	b, err := r.ReadOctetString(lower, upper)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", r.wrapErr(&InvalidUTF8Error{})
	}
	return string(b), nil
}

// WriteRestrictedString writes s (IA5String, VisibleString, PrintableString,
// or NumericString) as a character-width-packed known-multiplier string.
// Unconstrained or large-upper sizes fragment per X.691 §10.9.3.8, the same
// as [Writer.WriteOctetString].
func (w *Writer) WriteRestrictedString(kind asn1.Kind, s string, lower, upper int) error {
	if err := checkSize(len(s), lower, upper); err != nil {
		return w.wrapErr(err)
	}
	width := charWidth(kind)
	writeRun := func(from, to int) error {
		for i := from; i < to; i++ {
			idx, ok := charToIndex(kind, s[i])
			if !ok {
				return w.wrapErr(&InvalidUTF8Error{})
			}
			w.bw.writeBits(idx, width)
		}
		return nil
	}
	if lower == upper && upper >= 0 {
		return writeRun(0, len(s))
	}
	if upper >= 0 && upper < fragmentUnit {
		if err := w.WriteConstrainedInt(int64(len(s)-lower), 0, int64(upper-lower)); err != nil {
			return err
		}
		return writeRun(0, len(s))
	}
	pos := 0
	return w.WriteLengthDeterminant(len(s), func(count int) error {
		if err := writeRun(pos, pos+count); err != nil {
			return err
		}
		pos += count
		return nil
	})
}

// ReadRestrictedString is the inverse of [Writer.WriteRestrictedString].
func (r *Reader) ReadRestrictedString(kind asn1.Kind, lower, upper int) (string, error) {
	width := charWidth(kind)
	readN := func(n int) (string, error) {
		out := make([]byte, n)
		for i := range out {
			v, err := r.br.readBits(width)
			if err != nil {
				return "", r.wrapErr(err)
			}
			c, ok := indexToChar(kind, v)
			if !ok {
				return "", r.wrapErr(&InvalidUTF8Error{})
			}
			out[i] = c
		}
		return string(out), nil
	}
	if lower == upper && upper >= 0 {
		return readN(lower)
	}
	if upper >= 0 && upper < fragmentUnit {
		v, err := r.ReadConstrainedInt(int64(lower), int64(upper))
		if err != nil {
			return "", err
		}
		return readN(int(v))
	}
	var out []byte
	_, err := r.ReadLengthDeterminant(func(count int) error {
		for i := 0; i < count; i++ {
			v, err := r.br.readBits(width)
			if err != nil {
				return err
			}
			c, ok := indexToChar(kind, v)
			if !ok {
				return &InvalidUTF8Error{}
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func checkSize(n, lower, upper int) error {
	if upper >= 0 && (n < lower || n > upper) {
		return &SizeOutOfBoundsError{Size: n, Lower: lower, Upper: upper}
	}
	if upper < 0 && n < lower {
		return &SizeOutOfBoundsError{Size: n, Lower: lower, Upper: upper}
	}
	return nil
}
