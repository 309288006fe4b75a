// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestTwox64Empty(t *testing.T) {
	// xxHash64("", 0) = 0xef46db3751d8e999
	require.Equal(t, "99e9d85137db46ef", hex.EncodeToString(Twox64(nil)))
	require.Equal(t, uint64(0xef46db3751d8e999), Twox64Seed([]byte{}, 0))
}

func TestTwox128KnownVectors(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"System", "26aa394eea5630e07c48ae0c9558cef7"},
		{"Account", "b99d880ec681799c0cf30e8886371da9"},
		{"Balances", "c2261276cc9d1f8598ea4b6a74b15c2f"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.expected, hex.EncodeToString(Twox128([]byte(tt.in))))
		})
	}
}

func TestTwox128IsSeededConcatenation(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("a"), []byte("Sudo"), make([]byte, 100)} {
		out := Twox128(data)
		require.Len(t, out, Twox128Len)
		require.Equal(t, Twox64Seed(data, 0), binary.LittleEndian.Uint64(out[:8]))
		require.Equal(t, Twox64Seed(data, 1), binary.LittleEndian.Uint64(out[8:]))
		require.Equal(t, Twox64(data), out[:8])
	}
}

func TestTwox256ExtendsTwox128(t *testing.T) {
	require := require.New(t)

	data := []byte("Timestamp")
	out := Twox256(data)
	require.Len(out, Twox256Len)
	require.Equal(Twox128(data), out[:Twox128Len])
	require.Equal(Twox64Seed(data, 3), binary.LittleEndian.Uint64(out[24:]))
}

func TestTwoxProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("twox128 halves are little-endian seeded xxhash64", prop.ForAll(
		func(data []byte) bool {
			out := Twox128(data)
			return binary.LittleEndian.Uint64(out[:8]) == Twox64Seed(data, 0) &&
				binary.LittleEndian.Uint64(out[8:]) == Twox64Seed(data, 1)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func BenchmarkTwox128(b *testing.B) {
	data := []byte("System")
	for n := 0; n < b.N; n++ {
		Twox128(data)
	}
}
