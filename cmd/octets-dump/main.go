// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/octets/lib/octets"
	"github.com/bureau-foundation/octets/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var offset int
	var length int
	var width int
	var decodeType string
	var byteOrder string
	var diagnoseCBOR bool
	var printDigest bool

	flagSet := pflag.NewFlagSet("octets-dump", pflag.ContinueOnError)
	flagSet.IntVar(&offset, "offset", 0, "start offset of the window in bytes")
	flagSet.IntVar(&length, "length", -1, "window length in bytes (default: to end of input)")
	flagSet.IntVar(&width, "width", 16, "bytes per hex dump row")
	flagSet.StringVar(&decodeType, "decode", "", "decode one value at the window start: u8, i8, u16, i16, u32, i32, u64, i64, u128, i128")
	flagSet.StringVar(&byteOrder, "byte-order", "big", "byte order for --decode: big or little")
	flagSet.BoolVar(&diagnoseCBOR, "cbor", false, "print CBOR diagnostic notation for the window")
	flagSet.BoolVar(&printDigest, "blake3", false, "print the BLAKE3 digest of the window")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("octets-dump %s\n", version.Info())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	source := octets.NewBytes(input)
	end := source.Len()
	if length >= 0 {
		end = offset + length
	}
	parser, err := octets.ParserWithRange(source, offset, end)
	if err != nil {
		return fmt.Errorf("selecting window [%d:%d) of %d input bytes: %w", offset, end, source.Len(), err)
	}

	switch {
	case decodeType != "":
		return decodeValue(parser, decodeType, byteOrder)
	case diagnoseCBOR:
		diagnostic, err := octets.DiagnoseCBOR(parser.Source())
		if err != nil {
			return fmt.Errorf("diagnosing CBOR: %w", err)
		}
		fmt.Println(diagnostic)
		return nil
	case printDigest:
		digest := blake3.Sum256(parser.Source().AsSlice())
		fmt.Printf("%x\n", digest)
		return nil
	default:
		if width < 1 {
			return fmt.Errorf("--width must be at least 1")
		}
		return hexDump(parser, offset, width)
	}
}

// readInput returns the content of the file named in args, or of
// stdin when no path was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return content, nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return content, nil
}

// hexDump prints the parser's window row by row: offset column, hex
// bytes, and a printable-ASCII gutter. The base offset restores the
// absolute position of each row within the original input.
func hexDump(parser *octets.Parser, base, width int) error {
	for parser.Remaining() > 0 {
		rowLength := min(width, parser.Remaining())
		rowOffset := base + parser.Pos()
		row, err := parser.Advance(rowLength)
		if err != nil {
			return fmt.Errorf("reading row at offset %d: %w", rowOffset, err)
		}

		content := row.AsSlice()
		var hexColumn strings.Builder
		var asciiColumn strings.Builder
		for i := 0; i < width; i++ {
			if i < len(content) {
				fmt.Fprintf(&hexColumn, "%02x ", content[i])
				if content[i] >= 0x20 && content[i] < 0x7f {
					asciiColumn.WriteByte(content[i])
				} else {
					asciiColumn.WriteByte('.')
				}
			} else {
				hexColumn.WriteString("   ")
			}
		}
		fmt.Printf("%08x  %s |%s|\n", rowOffset, hexColumn.String(), asciiColumn.String())
	}
	return nil
}

// decodeValue reads one fixed-width integer at the window start and
// prints it in decimal and hex.
func decodeValue(parser *octets.Parser, decodeType, byteOrder string) error {
	big := byteOrder == "big"
	if !big && byteOrder != "little" {
		return fmt.Errorf("unknown byte order %q (want big or little)", byteOrder)
	}

	switch decodeType {
	case "u8":
		value, err := parser.ReadUint8()
		if err != nil {
			return err
		}
		fmt.Printf("%d (0x%02x)\n", value, value)
	case "i8":
		value, err := parser.ReadInt8()
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", value)
	case "u16":
		value, err := readOrdered(parser.ReadUint16BE, parser.ReadUint16LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d (0x%04x)\n", value, value)
	case "i16":
		value, err := readOrdered(parser.ReadInt16BE, parser.ReadInt16LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", value)
	case "u32":
		value, err := readOrdered(parser.ReadUint32BE, parser.ReadUint32LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d (0x%08x)\n", value, value)
	case "i32":
		value, err := readOrdered(parser.ReadInt32BE, parser.ReadInt32LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", value)
	case "u64":
		value, err := readOrdered(parser.ReadUint64BE, parser.ReadUint64LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d (0x%016x)\n", value, value)
	case "i64":
		value, err := readOrdered(parser.ReadInt64BE, parser.ReadInt64LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", value)
	case "u128":
		value, err := readOrdered(parser.ReadUint128BE, parser.ReadUint128LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("0x%016x%016x\n", value.Hi, value.Lo)
	case "i128":
		value, err := readOrdered(parser.ReadInt128BE, parser.ReadInt128LE, big)
		if err != nil {
			return err
		}
		fmt.Printf("0x%016x%016x\n", uint64(value.Hi), value.Lo)
	default:
		return fmt.Errorf("unknown decode type %q", decodeType)
	}
	return nil
}

// readOrdered picks the big- or little-endian reader.
func readOrdered[T any](bigEndian, littleEndian func() (T, error), big bool) (T, error) {
	if big {
		return bigEndian()
	}
	return littleEndian()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `octets-dump — inspect binary data with the octets parser.

Reads FILE (or stdin), selects a window with --offset/--length, and
hex-dumps it. With --decode it instead decodes one fixed-width
integer at the window start; --cbor prints the window's CBOR
diagnostic notation; --blake3 prints its content digest.

Usage: octets-dump [flags] [FILE]

Flags:
%s`, flagSet.FlagUsages())
}
