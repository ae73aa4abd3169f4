// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import "encoding/binary"

// Uint128 is a 128-bit unsigned integer held as two 64-bit halves,
// Hi being the most significant. Go has no native 128-bit integer
// type; this struct carries the full width losslessly.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a 128-bit signed integer in two's-complement
// representation: Hi carries the sign, Lo the low 64 bits unsigned.
type Int128 struct {
	Hi int64
	Lo uint64
}

// ReadUint8 reads one byte as an unsigned integer. Fails with a
// *ShortInputError, position unchanged, when no bytes remain. The
// same failure mode applies to every fixed-width reader below.
func (p *Parser) ReadUint8() (uint8, error) {
	view, err := p.Peek(1)
	if err != nil {
		return 0, err
	}
	p.pos++
	return view[0], nil
}

// ReadInt8 reads one byte as a signed integer.
func (p *Parser) ReadInt8() (int8, error) {
	value, err := p.ReadUint8()
	return int8(value), err
}

// ReadUint16BE reads a big-endian 16-bit unsigned integer.
func (p *Parser) ReadUint16BE() (uint16, error) {
	view, err := p.Peek(2)
	if err != nil {
		return 0, err
	}
	p.pos += 2
	return binary.BigEndian.Uint16(view), nil
}

// ReadUint16LE reads a little-endian 16-bit unsigned integer.
func (p *Parser) ReadUint16LE() (uint16, error) {
	view, err := p.Peek(2)
	if err != nil {
		return 0, err
	}
	p.pos += 2
	return binary.LittleEndian.Uint16(view), nil
}

// ReadInt16BE reads a big-endian 16-bit signed integer.
func (p *Parser) ReadInt16BE() (int16, error) {
	value, err := p.ReadUint16BE()
	return int16(value), err
}

// ReadInt16LE reads a little-endian 16-bit signed integer.
func (p *Parser) ReadInt16LE() (int16, error) {
	value, err := p.ReadUint16LE()
	return int16(value), err
}

// ReadUint32BE reads a big-endian 32-bit unsigned integer.
func (p *Parser) ReadUint32BE() (uint32, error) {
	view, err := p.Peek(4)
	if err != nil {
		return 0, err
	}
	p.pos += 4
	return binary.BigEndian.Uint32(view), nil
}

// ReadUint32LE reads a little-endian 32-bit unsigned integer.
func (p *Parser) ReadUint32LE() (uint32, error) {
	view, err := p.Peek(4)
	if err != nil {
		return 0, err
	}
	p.pos += 4
	return binary.LittleEndian.Uint32(view), nil
}

// ReadInt32BE reads a big-endian 32-bit signed integer.
func (p *Parser) ReadInt32BE() (int32, error) {
	value, err := p.ReadUint32BE()
	return int32(value), err
}

// ReadInt32LE reads a little-endian 32-bit signed integer.
func (p *Parser) ReadInt32LE() (int32, error) {
	value, err := p.ReadUint32LE()
	return int32(value), err
}

// ReadUint64BE reads a big-endian 64-bit unsigned integer.
func (p *Parser) ReadUint64BE() (uint64, error) {
	view, err := p.Peek(8)
	if err != nil {
		return 0, err
	}
	p.pos += 8
	return binary.BigEndian.Uint64(view), nil
}

// ReadUint64LE reads a little-endian 64-bit unsigned integer.
func (p *Parser) ReadUint64LE() (uint64, error) {
	view, err := p.Peek(8)
	if err != nil {
		return 0, err
	}
	p.pos += 8
	return binary.LittleEndian.Uint64(view), nil
}

// ReadInt64BE reads a big-endian 64-bit signed integer.
func (p *Parser) ReadInt64BE() (int64, error) {
	value, err := p.ReadUint64BE()
	return int64(value), err
}

// ReadInt64LE reads a little-endian 64-bit signed integer.
func (p *Parser) ReadInt64LE() (int64, error) {
	value, err := p.ReadUint64LE()
	return int64(value), err
}

// ReadUint128BE reads a big-endian 128-bit unsigned integer: the high
// half first, then the low half.
func (p *Parser) ReadUint128BE() (Uint128, error) {
	view, err := p.Peek(16)
	if err != nil {
		return Uint128{}, err
	}
	p.pos += 16
	return Uint128{
		Hi: binary.BigEndian.Uint64(view[:8]),
		Lo: binary.BigEndian.Uint64(view[8:]),
	}, nil
}

// ReadUint128LE reads a little-endian 128-bit unsigned integer: the
// low half first, then the high half.
func (p *Parser) ReadUint128LE() (Uint128, error) {
	view, err := p.Peek(16)
	if err != nil {
		return Uint128{}, err
	}
	p.pos += 16
	return Uint128{
		Lo: binary.LittleEndian.Uint64(view[:8]),
		Hi: binary.LittleEndian.Uint64(view[8:]),
	}, nil
}

// ReadInt128BE reads a big-endian 128-bit signed integer.
func (p *Parser) ReadInt128BE() (Int128, error) {
	value, err := p.ReadUint128BE()
	return Int128{Hi: int64(value.Hi), Lo: value.Lo}, err
}

// ReadInt128LE reads a little-endian 128-bit signed integer.
func (p *Parser) ReadInt128LE() (Int128, error) {
	value, err := p.ReadUint128LE()
	return Int128{Hi: int64(value.Hi), Lo: value.Lo}, err
}
