// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"fmt"
	"sync"

	"github.com/MontaQLabs/sublua/utils/errs"
)

// Base58Alphabet is the Bitcoin base-58 alphabet. It omits 0, O, I and l.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	base58Radix = 58
	// invalidDigit marks bytes that are not in Base58Alphabet.
	invalidDigit = 0xFF
)

var (
	decodeMapOnce sync.Once
	decodeMap     [256]byte
)

func base58DecodeMap() *[256]byte {
	decodeMapOnce.Do(func() {
		for i := range decodeMap {
			decodeMap[i] = invalidDigit
		}
		for i := 0; i < len(Base58Alphabet); i++ {
			decodeMap[Base58Alphabet[i]] = byte(i)
		}
	})
	return &decodeMap
}

// MaxBase58EncodedLen returns an upper bound on the number of significant
// base-58 digits produced by [n] bytes: ceil(n * log(256)/log(58)), using
// 138/100 > 1.3658.
func MaxBase58EncodedLen(n int) int {
	return n*138/100 + 1
}

// MaxBase58DecodedLen returns an upper bound on the number of significant
// bytes produced by [n] base-58 digits: ceil(n * log(58)/log(256)), using
// 733/1000 > 0.7322.
func MaxBase58DecodedLen(n int) int {
	return n*733/1000 + 1
}

// EncodeBase58 renders [b] as base-58 text. Each leading zero byte becomes a
// leading '1'. The empty slice encodes to the empty string.
func EncodeBase58(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// Little-endian base-58 digits of the big-endian integer b[zeros:].
	digits := make([]byte, 0, MaxBase58EncodedLen(len(b)-zeros))
	for _, v := range b[zeros:] {
		carry := uint32(v)
		for j, digit := range digits {
			x := uint32(digit)<<8 + carry
			digits[j] = byte(x % base58Radix)
			carry = x / base58Radix
		}
		for carry > 0 {
			digits = append(digits, byte(carry%base58Radix))
			carry /= base58Radix
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = Base58Alphabet[0]
	}
	for i, digit := range digits {
		out[len(out)-1-i] = Base58Alphabet[digit]
	}
	return string(out)
}

// DecodeBase58 parses base-58 text. Each leading '1' becomes a leading zero
// byte.
func DecodeBase58(s string) ([]byte, error) {
	zeros, value, err := decodeBase58(s)
	if err != nil {
		return nil, err
	}
	out := make([]byte, zeros+len(value))
	copyReversed(out[zeros:], value)
	return out, nil
}

// DecodeBase58Into parses base-58 text into [dst] and returns the number of
// bytes written. If the decoded value is longer than len(dst) the error wraps
// errs.ErrCapacity and [dst] is left untouched.
func DecodeBase58Into(dst []byte, s string) (int, error) {
	zeros, value, err := decodeBase58(s)
	if err != nil {
		return 0, err
	}
	n := zeros + len(value)
	if n > len(dst) {
		return 0, fmt.Errorf("%w: decoded length %d exceeds buffer of %d bytes", errs.ErrCapacity, n, len(dst))
	}
	for i := 0; i < zeros; i++ {
		dst[i] = 0
	}
	copyReversed(dst[zeros:n], value)
	return n, nil
}

// decodeBase58 returns the number of leading '1's in [s] and the remaining
// value as little-endian base-256 digits.
func decodeBase58(s string) (int, []byte, error) {
	table := base58DecodeMap()

	zeros := 0
	for zeros < len(s) && s[zeros] == Base58Alphabet[0] {
		zeros++
	}

	value := make([]byte, 0, MaxBase58DecodedLen(len(s)-zeros))
	for i := zeros; i < len(s); i++ {
		digit := table[s[i]]
		if digit == invalidDigit {
			return 0, nil, fmt.Errorf("%w: invalid base58 character %q at offset %d", errs.ErrDecode, s[i], i)
		}
		carry := uint32(digit)
		for j, v := range value {
			x := uint32(v)*base58Radix + carry
			value[j] = byte(x)
			carry = x >> 8
		}
		for carry > 0 {
			value = append(value, byte(carry))
			carry >>= 8
		}
	}
	return zeros, value, nil
}

func copyReversed(dst, src []byte) {
	for i, v := range src {
		dst[len(src)-1-i] = v
	}
}
