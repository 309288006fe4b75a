// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extrinsic

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/MontaQLabs/sublua/utils/errs"
)

// Compact integers carry their width in the two low bits of the first byte.
const (
	compactSingleByte = 0b00
	compactTwoByte    = 0b01
	compactFourByte   = 0b10
	compactBigInt     = 0b11

	compactModeMask = 0b11

	maxSingleByte = 1<<6 - 1
	maxTwoByte    = 1<<14 - 1
	maxFourByte   = 1<<30 - 1

	// big integer mode stores (length - 4) in the upper six bits
	minBigIntLen = 4

	// MaxTipBits is the width of a tip.
	MaxTipBits = 128
)

// AppendCompact appends the SCALE compact encoding of [v] to [dst].
func AppendCompact(dst []byte, v uint64) []byte {
	switch {
	case v <= maxSingleByte:
		return append(dst, byte(v)<<2|compactSingleByte)
	case v <= maxTwoByte:
		return binary.LittleEndian.AppendUint16(dst, uint16(v)<<2|compactTwoByte)
	case v <= maxFourByte:
		return binary.LittleEndian.AppendUint32(dst, uint32(v)<<2|compactFourByte)
	default:
		n := (bits.Len64(v) + 7) / 8
		dst = append(dst, byte(n-minBigIntLen)<<2|compactBigInt)
		for i := 0; i < n; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

// AppendCompactBig appends the compact encoding of a non-negative integer of
// at most 128 bits, such as a tip. A nil [v] encodes as zero.
func AppendCompactBig(dst []byte, v *big.Int) ([]byte, error) {
	switch {
	case v == nil:
		return AppendCompact(dst, 0), nil
	case v.Sign() < 0:
		return nil, fmt.Errorf("%w: negative compact integer %s", errs.ErrInvalidArgument, v)
	case v.BitLen() > MaxTipBits:
		return nil, fmt.Errorf("%w: compact integer %s exceeds %d bits", errs.ErrInvalidArgument, v, MaxTipBits)
	case v.IsUint64():
		return AppendCompact(dst, v.Uint64()), nil
	}

	be := v.Bytes()
	dst = append(dst, byte(len(be)-minBigIntLen)<<2|compactBigInt)
	for i := len(be) - 1; i >= 0; i-- {
		dst = append(dst, be[i])
	}
	return dst, nil
}

// DecodeCompact parses a compact integer from the front of [b] and returns it
// with the number of bytes read. Values wider than 64 bits are rejected.
func DecodeCompact(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty compact integer", errs.ErrFormat)
	}

	var n int
	switch b[0] & compactModeMask {
	case compactSingleByte:
		return uint64(b[0] >> 2), 1, nil
	case compactTwoByte:
		n = 2
	case compactFourByte:
		n = 4
	default:
		n = 1 + int(b[0]>>2) + minBigIntLen
	}
	if len(b) < n {
		return 0, 0, fmt.Errorf("%w: compact integer needs %d bytes but got %d", errs.ErrFormat, n, len(b))
	}

	switch b[0] & compactModeMask {
	case compactTwoByte:
		return uint64(binary.LittleEndian.Uint16(b) >> 2), n, nil
	case compactFourByte:
		return uint64(binary.LittleEndian.Uint32(b) >> 2), n, nil
	}

	value := b[1:n]
	if len(value) > 8 {
		return 0, 0, fmt.Errorf("%w: compact integer of %d bytes does not fit in 64 bits", errs.ErrUnsupportedFormat, len(value))
	}
	var v uint64
	for i, digit := range value {
		v |= uint64(digit) << (8 * i)
	}
	return v, n, nil
}
