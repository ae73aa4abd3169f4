// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import "fmt"

// BoundsError reports a requested range or seek position that falls
// outside the valid index space of an octet sequence or parser window.
// Callers can use errors.As to recover the offending indices:
//
//	var boundsErr *BoundsError
//	if errors.As(err, &boundsErr) { ... }
type BoundsError struct {
	// Start and End are the requested half-open range. A seek failure
	// reports the position as both Start and End.
	Start int
	End   int

	// Length is the length of the sequence (or the parser limit) the
	// request was checked against.
	Length int
}

func (e *BoundsError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("octets: position %d out of bounds for length %d", e.Start, e.Length)
	}
	return fmt.Sprintf("octets: range [%d:%d) out of bounds for length %d", e.Start, e.End, e.Length)
}

// ShortInputError reports a parser decode that needed more bytes than
// remain before the parser's limit. It signals truncated or malformed
// input; the parser position is unchanged when this is returned.
type ShortInputError struct {
	// Requested is the number of bytes the decode needed.
	Requested int

	// Remaining is the number of bytes that were actually left.
	Remaining int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("octets: short input: need %d bytes, have %d", e.Requested, e.Remaining)
}

// ShortBufError reports an append or conversion that would exceed a
// fixed-capacity buffer. The buffer is left exactly as it was before
// the failing call, so the caller may retry with a larger buffer.
type ShortBufError struct {
	// Requested is the total occupied length the operation would have
	// produced.
	Requested int

	// Capacity is the buffer's fixed capacity.
	Capacity int
}

func (e *ShortBufError) Error() string {
	return fmt.Sprintf("octets: buffer capacity exceeded: need %d bytes, capacity %d", e.Requested, e.Capacity)
}

// checkRange validates a half-open range against a sequence length.
// Returns nil when 0 <= start <= end <= length.
func checkRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return &BoundsError{Start: start, End: end, Length: length}
	}
	return nil
}
