// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// octets-dump inspects binary data using the octets parser.
//
// It reads a file (or stdin when no path is given), selects a window
// with --offset/--length, and either hex-dumps the window, decodes a
// single fixed-width integer at its start (--decode), prints the CBOR
// diagnostic notation of its content (--cbor), or prints its BLAKE3
// content digest (--blake3).
//
// The tool is both a debugging aid and a working example of driving
// [octets.Parser] over a real input: windowing goes through
// ParserWithRange, rows come out of Advance, and integer decoding
// uses the fixed-width readers.
package main
