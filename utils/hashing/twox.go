// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	Twox64Len  = 8
	Twox128Len = 16
	Twox256Len = 32
)

// Twox64Seed returns the xxHash64 of [data] under [seed].
func Twox64Seed(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

// TwoxN concatenates one little-endian xxHash64 per seed, seeds being
// 0..[n)-1. The result is 8*n bytes long.
//
// This is not a wide xxHash: Twox128 and Twox256 are defined as this exact
// concatenation and storage keys depend on it bit for bit.
func TwoxN(data []byte, n int) []byte {
	out := make([]byte, Twox64Len*n)
	for seed := 0; seed < n; seed++ {
		binary.LittleEndian.PutUint64(out[seed*Twox64Len:], Twox64Seed(data, uint64(seed)))
	}
	return out
}

// Twox64 returns the 8 byte little-endian xxHash64 of [data] with seed 0.
func Twox64(data []byte) []byte {
	return TwoxN(data, 1)
}

// Twox128 returns xxHash64(data, 0) ++ xxHash64(data, 1), each rendered
// little-endian.
func Twox128(data []byte) []byte {
	return TwoxN(data, 2)
}

// Twox256 returns the little-endian xxHash64 of [data] under seeds 0 to 3.
func Twox256(data []byte) []byte {
	return TwoxN(data, 4)
}
