// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

// Parser is a cursor over an [Octets] value for bounds-checked
// sequential decoding. The parser owns no bytes: it holds the source
// (or a zero-copy window into it), the current position, and the
// window length. Every decode either succeeds and advances the
// position, or fails and leaves the position untouched, so a failed
// decode can be retried or reported without losing the cursor.
//
// Positions are relative to the parser's window: a parser built with
// [ParserWithRange] over source bytes [2:5] starts at Pos 0 with Len
// 3. Seeking backward is permitted, which supports lookahead and
// backtracking decoders.
//
// Multiple parsers may read the same source concurrently; a parser
// never mutates its source. A single Parser value is not safe for
// concurrent use.
type Parser struct {
	source Octets
	pos    int
	limit  int
}

// NewParser returns a parser over the whole of source, positioned at
// the start.
func NewParser(source Octets) *Parser {
	return &Parser{source: source, limit: len(source.AsSlice())}
}

// ParserWithRange returns a parser over the window source[start:end),
// positioned at the window start. Returns a *BoundsError when the
// range falls outside the source. The window is carved with
// source.Range, so it is zero-copy wherever the source supports that.
func ParserWithRange(source Octets, start, end int) (*Parser, error) {
	window, err := source.Range(start, end)
	if err != nil {
		return nil, err
	}
	return NewParser(window), nil
}

// Source returns the octets value the parser reads, i.e. its window.
func (p *Parser) Source() Octets { return p.source }

// Pos returns the current position within the window.
func (p *Parser) Pos() int { return p.pos }

// Len returns the window length, the parser's limit. This is not the
// number of bytes left to parse; use [Parser.Remaining] for that.
func (p *Parser) Len() int { return p.limit }

// Remaining returns the number of bytes between the position and the
// limit. Never negative.
func (p *Parser) Remaining() int { return p.limit - p.pos }

// Seek repositions the parser to the absolute position pos within
// [0, Len()]. Returns a *BoundsError otherwise. Seeking backward is
// allowed.
func (p *Parser) Seek(pos int) error {
	if pos < 0 || pos > p.limit {
		return &BoundsError{Start: pos, End: pos, Length: p.limit}
	}
	p.pos = pos
	return nil
}

// Advance moves the position forward by n bytes and returns the
// skipped-over sub-range, zero-copy where the source supports it.
// Returns a *ShortInputError, with the position unchanged, when fewer
// than n bytes remain.
func (p *Parser) Advance(n int) (Octets, error) {
	if err := p.checkLen(n); err != nil {
		return nil, err
	}
	skipped, err := p.source.Range(p.pos, p.pos+n)
	if err != nil {
		return nil, err
	}
	p.pos += n
	return skipped, nil
}

// Peek returns a view of the next n bytes without moving the position.
// The returned slice borrows from the source and must not be modified.
// Fails like [Parser.Advance] when fewer than n bytes remain.
func (p *Parser) Peek(n int) ([]byte, error) {
	if err := p.checkLen(n); err != nil {
		return nil, err
	}
	return p.source.AsSlice()[p.pos : p.pos+n], nil
}

// PeekAll returns a view of everything between the position and the
// limit without moving the position.
func (p *Parser) PeekAll() []byte {
	return p.source.AsSlice()[p.pos:p.limit]
}

// ReadBytes fills buf from the parser, advancing by len(buf). When
// fewer than len(buf) bytes remain it returns a *ShortInputError,
// leaves the position unchanged, and writes nothing.
func (p *Parser) ReadBytes(buf []byte) error {
	view, err := p.Peek(len(buf))
	if err != nil {
		return err
	}
	copy(buf, view)
	p.pos += len(buf)
	return nil
}

// SubParser carves out the next n bytes as an independent parser with
// its own position 0 and limit n, and advances this parser past them.
// This is the tool for length-prefixed substructures: read the length,
// then hand the framed bytes to a nested decoder that cannot read past
// the frame. Returns a *ShortInputError, with the position unchanged,
// when fewer than n bytes remain.
func (p *Parser) SubParser(n int) (*Parser, error) {
	window, err := p.Advance(n)
	if err != nil {
		return nil, err
	}
	return NewParser(window), nil
}

// checkLen verifies that n bytes remain before the limit.
func (p *Parser) checkLen(n int) error {
	if n < 0 || n > p.Remaining() {
		return &ShortInputError{Requested: n, Remaining: p.Remaining()}
	}
	return nil
}
