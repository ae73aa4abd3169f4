// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import (
	"bytes"
	"errors"
	"testing"
)

func TestArrayCapacityLaw(t *testing.T) {
	// An Array of capacity N accepts exactly N bytes via append; one
	// more byte fails and leaves the prior content unchanged.
	array := NewArray(4)

	if err := array.AppendSlice([]byte("abcd")); err != nil {
		t.Fatalf("AppendSlice at capacity: %v", err)
	}
	if got := string(array.AsSlice()); got != "abcd" {
		t.Errorf("content = %q, want %q", got, "abcd")
	}

	err := array.AppendSlice([]byte("e"))
	var shortBuf *ShortBufError
	if !errors.As(err, &shortBuf) {
		t.Fatalf("append beyond capacity = %v, want *ShortBufError", err)
	}
	if shortBuf.Requested != 5 || shortBuf.Capacity != 4 {
		t.Errorf("ShortBufError = %+v, want {Requested:5 Capacity:4}", shortBuf)
	}
	if got := string(array.AsSlice()); got != "abcd" {
		t.Errorf("failed append changed content to %q", got)
	}
}

func TestArrayAppendAtomic(t *testing.T) {
	array := NewArray(6)
	if err := array.AppendSlice([]byte("abcd")); err != nil {
		t.Fatalf("AppendSlice: %v", err)
	}

	// "efgh" does not fit in the remaining 2 bytes. Nothing of it may
	// be written.
	if err := array.AppendSlice([]byte("efgh")); err == nil {
		t.Fatal("oversized append should fail")
	}
	if array.Len() != 4 {
		t.Errorf("failed append changed Len to %d, want 4", array.Len())
	}
	if got := string(array.AsSlice()); got != "abcd" {
		t.Errorf("failed append changed content to %q", got)
	}
}

func TestNewArrayFrom(t *testing.T) {
	array, err := NewArrayFrom(8, []byte("abc"))
	if err != nil {
		t.Fatalf("NewArrayFrom: %v", err)
	}
	if got := string(array.AsSlice()); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
	if array.Cap() != 8 {
		t.Errorf("Cap = %d, want 8", array.Cap())
	}

	if _, err := NewArrayFrom(2, []byte("abc")); err == nil {
		t.Error("construction from content longer than capacity should fail")
	}
}

func TestArrayTruncate(t *testing.T) {
	array, err := NewArrayFrom(8, []byte("abcdef"))
	if err != nil {
		t.Fatalf("NewArrayFrom: %v", err)
	}

	array.Truncate(3)
	if got := string(array.AsSlice()); got != "abc" {
		t.Errorf("after Truncate(3): %q, want %q", got, "abc")
	}

	array.Truncate(10)
	if array.Len() != 3 {
		t.Errorf("Truncate beyond length changed Len to %d", array.Len())
	}

	array.Truncate(0)
	if array.Len() != 0 {
		t.Errorf("Truncate(0) left Len = %d", array.Len())
	}
}

func TestArrayResize(t *testing.T) {
	array := NewArray(6)
	if err := array.AppendSlice([]byte("ab")); err != nil {
		t.Fatalf("AppendSlice: %v", err)
	}

	if err := array.Resize(5, 0x7a); err != nil {
		t.Fatalf("Resize grow: %v", err)
	}
	want := []byte{'a', 'b', 0x7a, 0x7a, 0x7a}
	if !bytes.Equal(array.AsSlice(), want) {
		t.Errorf("after grow: %x, want %x", array.AsSlice(), want)
	}

	if err := array.Resize(7, 0x00); err == nil {
		t.Error("Resize beyond capacity should fail")
	}
	if array.Len() != 5 {
		t.Errorf("failed Resize changed Len to %d, want 5", array.Len())
	}

	if err := array.Resize(2, 0x00); err != nil {
		t.Fatalf("Resize shrink: %v", err)
	}
	if got := string(array.AsSlice()); got != "ab" {
		t.Errorf("after shrink: %q, want %q", got, "ab")
	}
}

func TestArrayRange(t *testing.T) {
	array, err := NewArrayFrom(16, []byte("abcdef"))
	if err != nil {
		t.Fatalf("NewArrayFrom: %v", err)
	}

	sub, err := array.Range(2, 5)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if got := string(sub.AsSlice()); got != "cde" {
		t.Errorf("Range(2, 5) = %q, want %q", got, "cde")
	}

	// Ranges are bounded by the occupied length, not the capacity.
	if _, err := array.Range(4, 10); err == nil {
		t.Error("range beyond the occupied length should fail even within capacity")
	}
}

func TestArrayFreezeIsItself(t *testing.T) {
	array, err := NewArrayFrom(4, []byte("ab"))
	if err != nil {
		t.Fatalf("NewArrayFrom: %v", err)
	}
	frozen := array.Freeze()
	if frozen != Octets(array) {
		t.Error("Array should freeze into itself")
	}
	if got := string(frozen.AsSlice()); got != "ab" {
		t.Errorf("frozen content = %q, want %q", got, "ab")
	}
}

func TestArrayStateCycle(t *testing.T) {
	// Empty -> occupied -> truncate(0) -> empty again.
	array := NewArray(4)
	if array.Len() != 0 {
		t.Fatalf("new array Len = %d", array.Len())
	}
	if err := array.AppendSlice([]byte("xy")); err != nil {
		t.Fatalf("AppendSlice: %v", err)
	}
	if array.Len() != 2 {
		t.Fatalf("Len = %d, want 2", array.Len())
	}
	array.Truncate(0)
	if array.Len() != 0 {
		t.Fatalf("Len after Truncate(0) = %d", array.Len())
	}
	if err := array.AppendSlice([]byte("wxyz")); err != nil {
		t.Fatalf("append after reset: %v", err)
	}
	if got := string(array.AsSlice()); got != "wxyz" {
		t.Errorf("content after reuse = %q, want %q", got, "wxyz")
	}
}
