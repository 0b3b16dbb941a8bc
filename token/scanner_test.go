// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s := NewScanner(src)
	var toks []Token
	for {
		tok, err := s.Next()
		require.NoError(t, err)
		if tok.Kind == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestScannerPunctuation(t *testing.T) {
	toks := scanAll(t, "{ } ( ) , | .. ... ::= [ ] ; : @ < >")
	want := []string{"{", "}", "(", ")", ",", "|", "..", "...", "::=", "[", "]", ";", ":", "@", "<", ">"}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, Punct, toks[i].Kind)
		require.Equal(t, w, toks[i].Text)
	}
}

func TestScannerWordsAndIntegers(t *testing.T) {
	toks := scanAll(t, "Pizza ::= SEQUENCE { size INTEGER(1..4) }")
	require.Equal(t, Word, toks[0].Kind)
	require.Equal(t, "Pizza", toks[0].Text)
	require.Equal(t, Punct, toks[1].Kind)
	require.Equal(t, "::=", toks[1].Text)

	toks = scanAll(t, "42 1209600000")
	require.Equal(t, Integer, toks[0].Kind)
	require.EqualValues(t, 42, toks[0].Int)
	require.EqualValues(t, 1209600000, toks[1].Int)
}

func TestScannerString(t *testing.T) {
	toks := scanAll(t, `"hello ""world"""`)
	require.Len(t, toks, 1)
	require.Equal(t, String, toks[0].Kind)
	require.Equal(t, `hello "world"`, toks[0].Text)
}

func TestScannerComments(t *testing.T) {
	toks := scanAll(t, "A -- line comment\nB /* block /* nested */ still in block */ C")
	want := []string{"A", "B", "C"}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].Text)
	}
}

func TestScannerUnterminatedBlockComment(t *testing.T) {
	s := NewScanner("A /* never closed")
	_, err := s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	require.Error(t, err)
}

func TestScannerPositions(t *testing.T) {
	s := NewScanner("A\nB")
	tok, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, Position{1, 1}, tok.Pos)
	tok, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, Position{2, 1}, tok.Pos)
}

func TestIsUpper(t *testing.T) {
	require.True(t, IsUpper("Type1"))
	require.False(t, IsUpper("value1"))
	require.False(t, IsUpper(""))
}
