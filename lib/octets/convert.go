// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

// BytesFrom converts any octets value into a shared [Bytes]. When the
// source already is a Bytes the conversion is a zero-copy
// reinterpretation; otherwise the content is copied once so the result
// owns its storage. Content is preserved byte for byte.
func BytesFrom(source Octets) Bytes {
	if shared, ok := source.(Bytes); ok {
		return shared
	}
	return NewBytes(source.AsSlice())
}

// BufFrom converts any octets value into a growable [*Buf] holding a
// copy of the content. A builder must own its storage, so this always
// copies.
func BufFrom(source Octets) *Buf {
	content := source.AsSlice()
	buf := NewBufCapacity(len(content))
	buf.AppendSlice(content)
	return buf
}

// ArrayFrom converts any octets value into a fixed-capacity [*Array].
// Returns a *ShortBufError when the source is longer than capacity;
// on success the array's content equals the source exactly, with no
// silent truncation.
func ArrayFrom(capacity int, source Octets) (*Array, error) {
	return NewArrayFrom(capacity, source.AsSlice())
}

// IntoBuf converts the sequence into a growable builder holding a copy
// of its content. This is the octets-to-builder direction of the
// freeze pairing; freezing the returned builder yields a Bytes with
// the same content.
func (b Bytes) IntoBuf() *Buf {
	return BufFrom(b)
}
