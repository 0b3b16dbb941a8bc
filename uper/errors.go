// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uper

import "fmt"

// ValueNotInRangeError reports a write of a value outside its declared
// constraint.
type ValueNotInRangeError struct {
	Value, Lower, Upper int64
}

func (e *ValueNotInRangeError) Error() string {
	return fmt.Sprintf("uper: value %d outside range [%d, %d]", e.Value, e.Lower, e.Upper)
}

// InvalidIndexError reports a CHOICE alternative or ENUMERATED value index
// outside its declared root range while the extension bit was clear.
type InvalidIndexError struct {
	Index, Bound int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("uper: index %d outside root bound [0, %d)", e.Index, e.Bound)
}

// InvalidUTF8Error reports a UTF8String value containing invalid UTF-8.
type InvalidUTF8Error struct{}

func (e *InvalidUTF8Error) Error() string { return "uper: invalid UTF-8 content" }

// SizeOutOfBoundsError reports a string/collection whose length violates its
// declared SIZE constraint.
type SizeOutOfBoundsError struct {
	Size, Lower, Upper int
}

func (e *SizeOutOfBoundsError) Error() string {
	return fmt.Sprintf("uper: size %d outside constraint [%d, %d]", e.Size, e.Lower, e.Upper)
}

// fieldPathError enriches an underlying codec error with the field path
// traversed to reach it, when the reader/writer was constructed with
// WithFieldPath(true).
type fieldPathError struct {
	Path []string
	Err  error
}

func (e *fieldPathError) Unwrap() error { return e.Err }
func (e *fieldPathError) Error() string {
	s := "uper: at "
	for i, p := range e.Path {
		if i > 0 {
			s += "."
		}
		s += p
	}
	return s + ": " + e.Err.Error()
}
