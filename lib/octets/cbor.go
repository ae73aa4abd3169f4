// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package octets

import (
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): smallest integer encoding, no
// indefinite-length items. Same logical data always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("octets: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("octets: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the sequence as a CBOR byte string.
func (b Bytes) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(b.data)
}

// UnmarshalCBOR decodes a CBOR byte string, replacing the receiver's
// content. The decoded bytes are owned by the new value.
func (b *Bytes) UnmarshalCBOR(data []byte) error {
	var content []byte
	if err := decMode.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("decoding byte string: %w", err)
	}
	b.data = content
	return nil
}

// MarshalCBOR encodes the occupied prefix as a CBOR byte string. The
// capacity is not part of the encoding.
func (a *Array) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(a.AsSlice())
}

// UnmarshalCBOR decodes a CBOR byte string into the array. Decoding
// into an array whose capacity is too small fails with a
// *ShortBufError and leaves the array unchanged. A zero-capacity
// array adopts the decoded length as its capacity, so a zero Array
// can receive any byte string.
func (a *Array) UnmarshalCBOR(data []byte) error {
	var content []byte
	if err := decMode.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("decoding byte string: %w", err)
	}
	if len(a.data) == 0 {
		a.data = content
		a.length = len(content)
		return nil
	}
	if len(content) > len(a.data) {
		return &ShortBufError{Requested: len(content), Capacity: len(a.data)}
	}
	copy(a.data, content)
	a.length = len(content)
	return nil
}

// MarshalCBOR encodes the string as a CBOR text string.
func (s Str) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(s.String())
}

// UnmarshalCBOR decodes a CBOR text string. The content is
// re-validated as UTF-8 (the CBOR layer already requires this for
// text strings; the check keeps the Str invariant independent of the
// codec) and stored as a shared [Bytes].
func (s *Str) UnmarshalCBOR(data []byte) error {
	var content string
	if err := decMode.Unmarshal(data, &content); err != nil {
		return fmt.Errorf("decoding text string: %w", err)
	}
	if !utf8.ValidString(content) {
		return fmt.Errorf("octets: decoded text is not valid UTF-8")
	}
	s.source = NewBytes([]byte(content))
	return nil
}

// DiagnoseCBOR returns the CBOR diagnostic notation (RFC 8949 §8) for
// the entire content of the sequence. Intended for debugging and for
// inspection tooling.
func DiagnoseCBOR(source Octets) (string, error) {
	return cbor.Diagnose(source.AsSlice())
}
