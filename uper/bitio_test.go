// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriterReaderRoundTrip(t *testing.T) {
	var w bitWriter
	bits := []int{1, 0, 1, 1, 0, 0, 1, 0, 1}
	for _, b := range bits {
		w.writeBit(b)
	}
	require.Equal(t, len(bits), w.bitLen())

	r := newBitReader(w.bytes(), w.bitLen())
	for _, want := range bits {
		got, err := r.readBit()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Zero(t, r.remaining())
}

func TestBitWriterWriteBits(t *testing.T) {
	var w bitWriter
	w.writeBits(0b101, 3)
	w.writeBits(0xFF, 8)
	require.Equal(t, 11, w.bitLen())

	r := newBitReader(w.bytes(), w.bitLen())
	v, err := r.readBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 0b101, v)
	v, err = r.readBits(8)
	require.NoError(t, err)
	require.EqualValues(t, 0xFF, v)
}

func TestBitReaderInsufficientBuffer(t *testing.T) {
	r := newBitReader([]byte{0xFF}, 4)
	_, err := r.readBits(5)
	require.Error(t, err)
	var ibErr *InsufficientBufferError
	require.ErrorAs(t, err, &ibErr)
	require.Equal(t, 5, ibErr.NeedBits)
	require.Equal(t, 4, ibErr.HaveBits)
}

func TestBitWriterOctetsUnaligned(t *testing.T) {
	var w bitWriter
	w.writeBit(1) // offset the stream by one bit
	w.writeOctets([]byte{0xAB, 0xCD})
	require.Equal(t, 17, w.bitLen())

	r := newBitReader(w.bytes(), w.bitLen())
	b, err := r.readBit()
	require.NoError(t, err)
	require.Equal(t, 1, b)
	got, err := r.readOctets(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD}, got)
}
