// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asn1c.dev/asn1c"
)

func TestRestrictedStringRoundTrip(t *testing.T) {
	cases := []struct {
		kind asn1.Kind
		s    string
	}{
		{asn1.KindIA5String, "hello world"},
		{asn1.KindVisibleString, "Visible!"},
		{asn1.KindPrintableString, "Printable01"},
		{asn1.KindNumericString, "12345 67890"},
	}
	for _, c := range cases {
		w := NewWriter()
		require.NoError(t, w.WriteRestrictedString(c.kind, c.s, 0, -1))
		r := NewReader(w.Bytes(), w.BitLen())
		got, err := r.ReadRestrictedString(c.kind, 0, -1)
		require.NoError(t, err)
		require.Equal(t, c.s, got)
	}
}

func TestBitStringValueRoundTrip(t *testing.T) {
	bs := asn1.BitString{Bytes: []byte{0b10110000}, BitLength: 4}
	w := NewWriter()
	require.NoError(t, w.WriteBitStringValue(bs, 0, -1))
	r := NewReader(w.Bytes(), w.BitLen())
	got, err := r.ReadBitStringValue(0, -1)
	require.NoError(t, err)
	require.Equal(t, bs.BitLength, got.BitLength)
	for i := 0; i < bs.BitLength; i++ {
		require.Equal(t, bs.At(i), got.At(i))
	}
}

func TestBitStringValueFixedSize(t *testing.T) {
	bs := asn1.BitString{Bytes: []byte{0b11000000}, BitLength: 2}
	w := NewWriter()
	require.NoError(t, w.WriteBitStringValue(bs, 2, 2))
	require.Equal(t, 2, w.BitLen())
}

// An unconstrained bit string of >= 16384 bits must fragment per
// X.691 §10.9.3.8 rather than panic.
func TestBitStringValueFragments(t *testing.T) {
	n := fragmentUnit + 17
	bytes := make([]byte, (n+7)/8)
	for i := range bytes {
		bytes[i] = byte(i)
	}
	bs := asn1.BitString{Bytes: bytes, BitLength: n}

	w := NewWriter()
	require.NoError(t, w.WriteBitStringValue(bs, 0, -1))
	r := NewReader(w.Bytes(), w.BitLen())
	got, err := r.ReadBitStringValue(0, -1)
	require.NoError(t, err)
	require.Equal(t, bs.BitLength, got.BitLength)
	for i := 0; i < bs.BitLength; i++ {
		require.Equal(t, bs.At(i), got.At(i))
	}
}

// An unconstrained restricted string of >= 16384 characters must fragment
// per X.691 §10.9.3.8 rather than panic.
func TestRestrictedStringFragments(t *testing.T) {
	n := fragmentUnit + 23
	b := make([]byte, n)
	for i := range b {
		b[i] = numericAlphabet[i%len(numericAlphabet)]
	}
	s := string(b)

	w := NewWriter()
	require.NoError(t, w.WriteRestrictedString(asn1.KindNumericString, s, 0, -1))
	r := NewReader(w.Bytes(), w.BitLen())
	got, err := r.ReadRestrictedString(asn1.KindNumericString, 0, -1)
	require.NoError(t, err)
	require.Equal(t, s, got)
}
