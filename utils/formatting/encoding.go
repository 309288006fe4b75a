// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MontaQLabs/sublua/utils/errs"
)

const hexPrefix = "0x"

var errInvalidEncoding = errors.New("invalid encoding")

// Encoding selects how raw bytes are rendered as text.
type Encoding uint8

const (
	// Hex specifies a 0x-prefixed hex encoding
	Hex Encoding = iota
	// HexNC specifies a hex encoding without the 0x prefix
	HexNC
	// Base58 specifies an unchecked base-58 encoding
	Base58
)

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return "hex"
	case HexNC:
		return "hexnc"
	case Base58:
		return "base58"
	default:
		return errInvalidEncoding.Error()
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Hex, HexNC, Base58:
		return true
	}
	return false
}

// ToEncoding is the inverse of Encoding.String().
func ToEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "hex":
		return Hex, nil
	case "hexnc":
		return HexNC, nil
	case "base58":
		return Base58, nil
	default:
		return Hex, fmt.Errorf("%w: %q", errInvalidEncoding, s)
	}
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	if !enc.valid() {
		return nil, errInvalidEncoding
	}
	return []byte(`"` + enc.String() + `"`), nil
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return errInvalidEncoding
	}
	var err error
	*enc, err = ToEncoding(str[1 : len(str)-1])
	return err
}

// Encode [bytes] to a string using the given encoding format
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		return EncodeHex(bytes), nil
	case HexNC:
		return hex.EncodeToString(bytes), nil
	case Base58:
		return EncodeBase58(bytes), nil
	default:
		return "", errInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding.
// Hex input may be given with or without the 0x prefix.
func Decode(encoding Encoding, str string) ([]byte, error) {
	switch encoding {
	case Hex, HexNC:
		return DecodeHex(str)
	case Base58:
		return DecodeBase58(str)
	default:
		return nil, errInvalidEncoding
	}
}

// EncodeHex returns the 0x-prefixed hex encoding of [b].
func EncodeHex(b []byte) string {
	return hexPrefix + hex.EncodeToString(b)
}

// DecodeHex parses hex text, with or without a 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, hexPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}
	return b, nil
}

// DecodeHexLen parses hex text that must decode to exactly [length] bytes.
func DecodeHexLen(s string, length int) ([]byte, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != length {
		return nil, fmt.Errorf("%w: expected %d bytes but got %d", errs.ErrInvalidArgument, length, len(b))
	}
	return b, nil
}
