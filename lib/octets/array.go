// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

// Array is a fixed-capacity octet sequence that implements both the
// [Octets] and [Builder] capabilities. The capacity is chosen at
// construction and the single backing allocation never moves, so an
// Array gives predictable memory behavior where a growable buffer
// would not: appending past the capacity fails instead of
// reallocating.
//
// The occupied prefix [0:Len()] is the sequence content. Bytes between
// the occupied length and the capacity are unspecified and never
// exposed through the read interface.
//
// Array is its own frozen counterpart: Freeze returns the array
// itself.
type Array struct {
	data   []byte
	length int
}

// NewArray returns an empty Array with the given fixed capacity.
func NewArray(capacity int) *Array {
	return &Array{data: make([]byte, capacity)}
}

// NewArrayFrom returns an Array with the given fixed capacity holding
// a copy of content. Returns a *ShortBufError, and no Array, when
// content is longer than capacity.
func NewArrayFrom(capacity int, content []byte) (*Array, error) {
	if len(content) > capacity {
		return nil, &ShortBufError{Requested: len(content), Capacity: capacity}
	}
	array := NewArray(capacity)
	copy(array.data, content)
	array.length = len(content)
	return array, nil
}

// AsSlice returns the occupied prefix.
func (a *Array) AsSlice() []byte { return a.data[:a.length] }

// Len returns the occupied length.
func (a *Array) Len() int { return a.length }

// Cap returns the fixed capacity.
func (a *Array) Cap() int { return len(a.data) }

// Range returns the sub-sequence [start:end) of the occupied prefix as
// a borrowed [Slice]. The view stays valid for the lifetime of the
// Array but is clobbered by later appends over the same region.
func (a *Array) Range(start, end int) (Octets, error) {
	return Slice(a.AsSlice()).Range(start, end)
}

// AppendSlice appends data to the occupied prefix. When data does not
// fit in the remaining capacity it returns a *ShortBufError and the
// array is left exactly as it was: the copy only happens after the
// capacity check, so a failed append is atomic.
func (a *Array) AppendSlice(data []byte) error {
	end := a.length + len(data)
	if end > len(a.data) {
		return &ShortBufError{Requested: end, Capacity: len(a.data)}
	}
	copy(a.data[a.length:end], data)
	a.length = end
	return nil
}

// Truncate shortens the occupied prefix to length. A length at or
// beyond the current length is a no-op.
func (a *Array) Truncate(length int) {
	if length < 0 {
		length = 0
	}
	if length < a.length {
		a.length = length
	}
}

// Resize sets the occupied length to length. Growing fills the new
// bytes with fill and returns a *ShortBufError when length exceeds the
// capacity, leaving the array unchanged. Shrinking is equivalent to
// Truncate.
func (a *Array) Resize(length int, fill byte) error {
	if length <= a.length {
		a.Truncate(length)
		return nil
	}
	if length > len(a.data) {
		return &ShortBufError{Requested: length, Capacity: len(a.data)}
	}
	for i := a.length; i < length; i++ {
		a.data[i] = fill
	}
	a.length = length
	return nil
}

// Freeze returns the array itself: Array is its own frozen
// counterpart. The caller must stop mutating the array through the
// builder interface afterwards.
func (a *Array) Freeze() Octets {
	return a
}
