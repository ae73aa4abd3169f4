// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import (
	"bytes"
	"errors"
	"testing"
)

func TestSliceRange(t *testing.T) {
	source := Slice("0123456789")

	for start := 0; start <= len(source); start++ {
		for end := start; end <= len(source); end++ {
			sub, err := source.Range(start, end)
			if err != nil {
				t.Fatalf("Range(%d, %d): %v", start, end, err)
			}
			if !bytes.Equal(sub.AsSlice(), source[start:end]) {
				t.Errorf("Range(%d, %d) = %q, want %q", start, end, sub.AsSlice(), source[start:end])
			}
		}
	}
}

func TestSliceRangeOutOfBounds(t *testing.T) {
	source := Slice("01234567")

	tests := []struct {
		name       string
		start, end int
	}{
		{"end beyond length", 0, 9},
		{"start beyond end", 5, 2},
		{"negative start", -1, 3},
		{"both beyond length", 10, 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := source.Range(test.start, test.end)
			var boundsErr *BoundsError
			if !errors.As(err, &boundsErr) {
				t.Fatalf("Range(%d, %d) = %v, want *BoundsError", test.start, test.end, err)
			}
			if boundsErr.Start != test.start || boundsErr.End != test.end || boundsErr.Length != len(source) {
				t.Errorf("BoundsError = %+v, want {%d %d %d}", boundsErr, test.start, test.end, len(source))
			}
		})
	}
}

func TestSliceRangeZeroCopy(t *testing.T) {
	source := Slice("abcdef")
	sub, err := source.Range(2, 5)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if &sub.AsSlice()[0] != &source[2] {
		t.Error("Slice range should alias the source storage")
	}
}

func TestNewBytesCopiesInput(t *testing.T) {
	input := []byte("mutable")
	sequence := NewBytes(input)
	input[0] = 'X'
	if got := string(sequence.AsSlice()); got != "mutable" {
		t.Errorf("Bytes content = %q, want %q (must be independent of caller's slice)", got, "mutable")
	}
}

func TestBytesRangeSharesStorage(t *testing.T) {
	parent := NewBytes([]byte("abcdefgh"))
	sub, err := parent.Range(2, 5)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if got := string(sub.AsSlice()); got != "cde" {
		t.Errorf("Range(2, 5) = %q, want %q", got, "cde")
	}
	if &sub.AsSlice()[0] != &parent.AsSlice()[2] {
		t.Error("Bytes range should share the parent's storage, not copy")
	}
}

func TestBytesRangeOutOfBounds(t *testing.T) {
	sequence := NewBytes([]byte("abc"))
	if _, err := sequence.Range(1, 4); err == nil {
		t.Error("Range(1, 4) on 3-byte sequence should fail")
	}
	if _, err := sequence.Range(2, 1); err == nil {
		t.Error("Range(2, 1) should fail")
	}
}

func TestBytesZeroValue(t *testing.T) {
	var sequence Bytes
	if sequence.Len() != 0 {
		t.Errorf("zero Bytes length = %d, want 0", sequence.Len())
	}
	sub, err := sequence.Range(0, 0)
	if err != nil {
		t.Fatalf("Range(0, 0) on empty sequence: %v", err)
	}
	if len(sub.AsSlice()) != 0 {
		t.Error("empty range should be empty")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Slice("abc"), NewBytes([]byte("abc"))) {
		t.Error("identical content across representations should compare equal")
	}
	if Equal(Slice("abc"), Slice("abd")) {
		t.Error("different content should not compare equal")
	}
	if Equal(Slice("abc"), Slice("ab")) {
		t.Error("different lengths should not compare equal")
	}
}
