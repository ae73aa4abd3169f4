// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package octets abstracts over variable-length byte sequences and
// provides the machinery to parse structured binary data out of them
// without committing callers to one concrete buffer representation.
//
// # Capabilities
//
// Two small interfaces carry the whole contract:
//
//   - [Octets] -- a fixed-length read-only byte view with fallible
//     sub-range extraction. Ranges are zero-copy; each implementation
//     declares whether a range is a borrowed view or an independent
//     shared value through its concrete return type.
//   - [Builder] -- an append-only buffer with truncate/resize and an
//     infallible Freeze into the builder's one frozen counterpart
//     type.
//
// Algorithms written against these interfaces — most importantly
// [Parser] — run unmodified over any conforming buffer type.
//
// # Representations
//
// Four concrete types cover the usual trade-offs:
//
//   - [Slice] -- a borrowed view over caller-owned bytes; ranges are
//     sub-slices
//   - [Bytes] -- an immutable shared buffer; ranges are independent
//     values sharing storage, safe to retain indefinitely
//   - [Buf] -- a growable builder whose Freeze hands its storage to a
//     Bytes without copying
//   - [Array] -- a fixed-capacity buffer implementing both
//     capabilities under a hard size ceiling; appends past the
//     ceiling fail atomically
//
// Any other buffer type plugs into the system by implementing Octets
// and/or Builder; the package places no restriction beyond the
// documented contracts.
//
// # Parsing
//
// [Parser] is a cursor over an Octets value: bounds-checked sequential
// decoding, big- and little-endian fixed-width integers from 8 to 128
// bits, zero-copy range extraction, nested sub-parsing of
// length-prefixed frames via [Parser.SubParser], and backward seeking
// for lookahead decoders. The package defines no wire format itself;
// it is the substrate concrete codecs are built on.
//
// # Errors
//
// Three structured error types cover every failure: [BoundsError] for
// ranges and seeks outside the valid index space, [ShortInputError]
// for decodes past the end of input, and [ShortBufError] for appends
// and conversions beyond a fixed capacity. Every failing operation
// leaves its receiver in the state it held before the call.
package octets
