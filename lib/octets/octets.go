// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import "bytes"

// Octets is the read-only octet sequence capability: a fixed-length
// contiguous byte view plus fallible sub-range extraction.
//
// Each implementation declares its range strategy through the concrete
// type Range returns. [Slice] and [*Array] return borrowed views whose
// validity is tied to the source; [Bytes] returns an independent value
// sharing the source's storage. Either way, extraction never copies.
type Octets interface {
	// AsSlice returns the full occupied content. The returned slice
	// must be treated as read-only; writing through it is undefined
	// behavior for shared representations.
	AsSlice() []byte

	// Range returns the sub-sequence [start:end). Returns a
	// *BoundsError unless 0 <= start <= end <= len.
	Range(start, end int) (Octets, error)
}

// Slice is a borrowed byte view implementing [Octets]. Its ranges are
// sub-slices of the same backing array, so a Slice and every range
// taken from it stay valid exactly as long as the underlying storage
// does. Use [Bytes] when ranges must outlive the code that produced
// the source.
type Slice []byte

// AsSlice returns the slice itself.
func (s Slice) AsSlice() []byte { return s }

// Range returns the sub-slice [start:end) as a Slice. Zero-copy.
func (s Slice) Range(start, end int) (Octets, error) {
	if err := checkRange(start, end, len(s)); err != nil {
		return nil, err
	}
	return s[start:end], nil
}

// Bytes is an immutable shared octet sequence. Construction copies the
// input once; after that every range shares the same backing array and
// is an independent value with no tie to the Bytes it was taken from.
// This is the representation to hand out when a decoded sub-range must
// survive beyond the buffer it was cut from.
//
// The zero value is an empty sequence.
type Bytes struct {
	data []byte
}

// NewBytes returns a Bytes holding a copy of data. The copy makes the
// value independent of later mutation of the caller's slice.
func NewBytes(data []byte) Bytes {
	if len(data) == 0 {
		return Bytes{}
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return Bytes{data: owned}
}

// AsSlice returns the content. The slice aliases the shared storage
// and must not be modified.
func (b Bytes) AsSlice() []byte { return b.data }

// Len returns the length of the sequence.
func (b Bytes) Len() int { return len(b.data) }

// Range returns the sub-sequence [start:end) as a Bytes sharing the
// same storage. Zero-copy; the result does not keep bytes outside the
// range reachable any longer than the original Bytes does.
func (b Bytes) Range(start, end int) (Octets, error) {
	if err := checkRange(start, end, len(b.data)); err != nil {
		return nil, err
	}
	return Bytes{data: b.data[start:end]}, nil
}

// Equal reports whether two octet sequences have identical content.
func Equal(a, b Octets) bool {
	return bytes.Equal(a.AsSlice(), b.AsSlice())
}
