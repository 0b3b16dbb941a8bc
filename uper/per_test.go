// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConstrainedIntBitWidth checks the universal property from spec.md §8:
// a constrained integer over [lb, ub] uses exactly ceil(log2(ub-lb+1))
// bits.
func TestConstrainedIntBitWidth(t *testing.T) {
	cases := []struct {
		lb, ub   int64
		wantBits int
	}{
		{1, 4, 2},
		{0, 1209600000, 31},
		{0, 0, 0},
		{0, 1, 1},
		{0, 255, 8},
		{0, 256, 9},
	}
	for _, c := range cases {
		w := NewWriter()
		require.NoError(t, w.WriteConstrainedInt(c.lb, c.lb, c.ub))
		require.Equal(t, c.wantBits, w.BitLen())
	}
}

// TestConstrainedIntRoundTrip checks decode(encode(v)) == v for every value
// in a handful of ranges, including the 31-bit Header.timestamp scenario.
func TestConstrainedIntRoundTrip(t *testing.T) {
	cases := []struct {
		lb, ub int64
		values []int64
	}{
		{1, 4, []int64{1, 2, 3, 4}},
		{0, 1209600000, []int64{0, 1234, 1209600000}},
		{-10, 10, []int64{-10, -1, 0, 1, 10}},
	}
	for _, c := range cases {
		for _, v := range c.values {
			w := NewWriter()
			require.NoError(t, w.WriteConstrainedInt(v, c.lb, c.ub))
			r := NewReader(w.Bytes(), w.BitLen())
			got, err := r.ReadConstrainedInt(c.lb, c.ub)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Zero(t, r.Remaining())
		}
	}
}

func TestConstrainedIntOutOfRange(t *testing.T) {
	w := NewWriter()
	err := w.WriteConstrainedInt(5, 1, 4)
	require.Error(t, err)
	var rngErr *ValueNotInRangeError
	require.ErrorAs(t, err, &rngErr)
}

// TestSemiConstrainedScenario is the RangedMax ::= INTEGER(0..MAX) example
// from spec.md §8 scenario 4: value 123 encodes as a length determinant of
// 1 followed by a single octet 0x7B.
func TestSemiConstrainedScenario(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteSemiConstrainedInt(123, 0))
	require.Equal(t, []byte{0x01, 0x7B}, w.Bytes())

	r := NewReader(w.Bytes(), w.BitLen())
	v, err := r.ReadSemiConstrainedInt(0)
	require.NoError(t, err)
	require.EqualValues(t, 123, v)
}

func TestUnconstrainedIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 128, 1000000, -1000000} {
		w := NewWriter()
		require.NoError(t, w.WriteUnconstrainedInt(v))
		r := NewReader(w.Bytes(), w.BitLen())
		got, err := r.ReadUnconstrainedInt()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestNormallySmallIntRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 63, 64, 65, 1000} {
		w := NewWriter()
		require.NoError(t, w.WriteNormallySmallInt(v))
		if v < 64 {
			require.Equal(t, 7, w.BitLen())
		}
		r := NewReader(w.Bytes(), w.BitLen())
		got, err := r.ReadNormallySmallInt()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

// TestExtensibleEnumeratedScenario is spec.md §8 scenario 3: an extensible
// ENUMERATED{a, b, ..., c} selecting its first (and only) extension value c
// encodes as ext-bit 1, normally-small index 0 -> bits "1 0 000000".
func TestExtensibleEnumeratedScenario(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteEnumIndex(2, 2, true))
	require.Equal(t, []byte{0x80}, w.Bytes())
	require.Equal(t, 8, w.BitLen())

	r := NewReader(w.Bytes(), w.BitLen())
	idx, ext, err := r.ReadEnumIndex(2, true)
	require.NoError(t, err)
	require.True(t, ext)
	require.Equal(t, 2, idx)
}

func TestEnumIndexNonExtensible(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteEnumIndex(1, 2, false))
	r := NewReader(w.Bytes(), w.BitLen())
	idx, ext, err := r.ReadEnumIndex(2, false)
	require.NoError(t, err)
	require.False(t, ext)
	require.Equal(t, 1, idx)
}

// TestFragmentedLengthDeterminant is spec.md §8 scenario 5: 20000 elements
// fragment as one 16384-element fragment followed by a 3616-element
// two-octet-determinant final fragment.
func TestFragmentedLengthDeterminant(t *testing.T) {
	w := NewWriter()
	var chunks []int
	err := w.WriteLengthDeterminant(20000, func(count int) error {
		chunks = append(chunks, count)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{16384, 3616}, chunks)

	r := NewReader(w.Bytes(), w.BitLen())
	var readChunks []int
	total, err := r.ReadLengthDeterminant(func(count int) error {
		readChunks = append(readChunks, count)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 20000, total)
	require.Equal(t, chunks, readChunks)
}

func TestLengthDeterminantExactFragmentBoundary(t *testing.T) {
	// Exactly 16384 elements still requires a trailing zero-length final
	// determinant (spec.md §9 open question, resolved as authoritative).
	w := NewWriter()
	var chunks []int
	require.NoError(t, w.WriteLengthDeterminant(16384, func(count int) error {
		chunks = append(chunks, count)
		return nil
	}))
	require.Equal(t, []int{16384, 0}, chunks)
}

func TestCollectionLengthRoundTrip(t *testing.T) {
	n := 20000
	w := NewWriter()
	require.NoError(t, w.WriteCollectionLength(n, 0, -1, func(i int) error {
		w.WriteOctets([]byte{byte(i)})
		return nil
	}))
	r := NewReader(w.Bytes(), w.BitLen())
	got := make([]byte, 0, n)
	total, err := r.ReadCollectionLength(0, -1, func(i int) error {
		b, err := r.ReadOctets(1)
		if err != nil {
			return err
		}
		got = append(got, b[0])
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, n, total)
	require.Len(t, got, n)
}

func TestOctetStringFixedSize(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteOctetString([]byte{1, 2, 3}, 3, 3))
	require.Equal(t, 24, w.BitLen())
	r := NewReader(w.Bytes(), w.BitLen())
	got, err := r.ReadOctetString(3, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestOctetStringSizeOutOfBounds(t *testing.T) {
	w := NewWriter()
	err := w.WriteOctetString([]byte{1, 2, 3, 4, 5}, 0, 4)
	require.Error(t, err)
	var szErr *SizeOutOfBoundsError
	require.ErrorAs(t, err, &szErr)
}

func TestUTF8StringRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteUTF8String("hello, 世界", 0, -1))
	r := NewReader(w.Bytes(), w.BitLen())
	got, err := r.ReadUTF8String(0, -1)
	require.NoError(t, err)
	require.Equal(t, "hello, 世界", got)
}

func TestInsufficientBuffer(t *testing.T) {
	r := NewReader([]byte{0xFF}, 4)
	_, err := r.ReadBits(8)
	require.Error(t, err)
	var ibErr *InsufficientBufferError
	require.ErrorAs(t, err, &ibErr)
}

func TestFieldPathError(t *testing.T) {
	r := NewReader(nil, 0).WithFieldPath(true)
	r.PushField("Pizza")
	r.PushField("size")
	_, err := r.ReadBits(1)
	require.ErrorContains(t, err, "Pizza.size")
}
