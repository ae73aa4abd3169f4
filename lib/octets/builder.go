// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

// Builder is the append-only buffer capability. Implementations may
// have a fixed capacity ([*Array]) or grow without bound ([*Buf]).
//
// Every builder type has exactly one frozen counterpart: the octets
// type its Freeze method returns. The pairing is structural — [*Buf]
// freezes into [Bytes], [*Array] freezes into itself — and documented
// on each implementation.
//
// Builders are exclusively owned by a single mutator; no concurrent
// append discipline is defined. Callers needing parallel construction
// use one builder per goroutine and merge afterwards.
type Builder interface {
	// AsSlice returns the bytes assembled so far.
	AsSlice() []byte

	// Len returns the current occupied length.
	Len() int

	// AppendSlice appends data verbatim. When the builder has a fixed
	// capacity and data does not fit, it returns a *ShortBufError and
	// leaves the buffer exactly as it was (no partial write).
	AppendSlice(data []byte) error

	// Truncate shortens the buffer to length, discarding the tail.
	// A length at or beyond the current length is a no-op; Truncate
	// never fails.
	Truncate(length int)

	// Resize sets the occupied length to length. Growing fills the new
	// bytes with fill and may return a *ShortBufError on a bounded
	// builder; shrinking is equivalent to Truncate and never fails.
	Resize(length int, fill byte) error

	// Freeze converts the builder into its frozen counterpart holding
	// exactly the assembled bytes. Freeze is infallible and consumes
	// the builder: using the builder afterwards is undefined.
	Freeze() Octets
}

// Buf is a growable octets builder, the heap-buffer counterpart to the
// fixed-capacity [Array]. Appending and resizing never fail. Its
// frozen counterpart is [Bytes]; the conversion hands over the backing
// storage without copying.
type Buf struct {
	data []byte
}

// NewBuf returns an empty growable builder.
func NewBuf() *Buf {
	return &Buf{}
}

// NewBufCapacity returns an empty growable builder with storage
// preallocated for capacity bytes. The capacity is a hint only:
// appending beyond it grows the buffer rather than failing.
func NewBufCapacity(capacity int) *Buf {
	return &Buf{data: make([]byte, 0, capacity)}
}

// AsSlice returns the bytes assembled so far.
func (b *Buf) AsSlice() []byte { return b.data }

// Len returns the current occupied length.
func (b *Buf) Len() int { return len(b.data) }

// Range returns the sub-sequence [start:end) of the assembled bytes as
// a borrowed [Slice]. The view is invalidated by any later append that
// reallocates the buffer.
func (b *Buf) Range(start, end int) (Octets, error) {
	return Slice(b.data).Range(start, end)
}

// AppendSlice appends data. Never fails; the error is always nil.
func (b *Buf) AppendSlice(data []byte) error {
	b.data = append(b.data, data...)
	return nil
}

// Truncate shortens the buffer to length. A length at or beyond the
// current length is a no-op.
func (b *Buf) Truncate(length int) {
	if length < 0 {
		length = 0
	}
	if length < len(b.data) {
		b.data = b.data[:length]
	}
}

// Resize sets the occupied length to length, filling any new bytes
// with fill. Never fails; the error is always nil.
func (b *Buf) Resize(length int, fill byte) error {
	if length <= len(b.data) {
		b.Truncate(length)
		return nil
	}
	for len(b.data) < length {
		b.data = append(b.data, fill)
	}
	return nil
}

// Freeze converts the builder into a [Bytes] holding exactly the
// assembled content. The backing storage is handed over without
// copying; the builder must not be used afterwards.
func (b *Buf) Freeze() Octets {
	frozen := Bytes{data: b.data}
	b.data = nil
	return frozen
}
