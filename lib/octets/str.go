// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import (
	"fmt"
	"unicode/utf8"
)

// Str is a UTF-8 string atop an arbitrary octets value. It gives the
// same validity guarantee as Go's string type while keeping the
// underlying representation — shared, borrowed, or fixed-capacity —
// chosen by the caller, and without the copy a string conversion
// would make.
type Str struct {
	source Octets
}

// StrFromUTF8 validates that the content of source is well-formed
// UTF-8 and wraps it. The octets value is held as-is, not copied.
func StrFromUTF8(source Octets) (Str, error) {
	if !utf8.Valid(source.AsSlice()) {
		return Str{}, fmt.Errorf("octets: content is not valid UTF-8")
	}
	return Str{source: source}, nil
}

// String returns the content as a Go string. This copies, per Go's
// string semantics; use [Str.AsSlice] for a view.
func (s Str) String() string {
	return string(s.AsSlice())
}

// AsSlice returns the UTF-8 content as a read-only byte view.
func (s Str) AsSlice() []byte {
	if s.source == nil {
		return nil
	}
	return s.source.AsSlice()
}

// Octets returns the underlying octets value.
func (s Str) Octets() Octets {
	return s.source
}

// Len returns the length of the string in bytes, not runes.
func (s Str) Len() int {
	return len(s.AsSlice())
}

// Range returns the sub-string over the byte range [start:end). The
// offsets must land on rune boundaries: the extracted range is
// re-validated and the call fails when the cut splits a multi-byte
// encoding.
func (s Str) Range(start, end int) (Str, error) {
	if s.source == nil {
		if err := checkRange(start, end, 0); err != nil {
			return Str{}, err
		}
		return Str{}, nil
	}
	window, err := s.source.Range(start, end)
	if err != nil {
		return Str{}, err
	}
	return StrFromUTF8(window)
}
