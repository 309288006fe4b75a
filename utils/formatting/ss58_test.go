// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

const (
	aliceHex = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	bobHex   = "8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48"

	zeroKeySubstrate = "5C4hrfjw9DjXZTzV3MwzrrAr9P1MJhSrvWGWqi1eSuyUpnhM"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSS58KnownAddresses(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		version byte
		address string
	}{
		{"zero key substrate", hex.EncodeToString(make([]byte, 32)), 42, zeroKeySubstrate},
		{"alice substrate", aliceHex, 42, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
		{"alice polkadot", aliceHex, 0, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"},
		{"bob substrate", bobHex, 42, "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			key := mustHex(t, tt.key)
			address, err := EncodeSS58(key, tt.version)
			require.NoError(err)
			require.Equal(tt.address, address)

			decodedKey, version, err := DecodeSS58(address)
			require.NoError(err)
			require.Equal(key, decodedKey)
			require.Equal(tt.version, version)
		})
	}
}

func TestEncodeSS58InvalidKey(t *testing.T) {
	for _, size := range []int{0, 31, 33, 64} {
		_, err := EncodeSS58(make([]byte, size), 42)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
}

func TestEncodeSS58Prefix(t *testing.T) {
	require := require.New(t)

	key := mustHex(t, aliceHex)
	address, err := EncodeSS58Prefix(key, 42)
	require.NoError(err)
	require.Equal("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", address)

	_, err = EncodeSS58Prefix(key, 256)
	require.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestDecodeSS58Errors(t *testing.T) {
	tooShort := EncodeBase58([]byte{1, 2})

	payload := append([]byte{0x40, 0x01}, make([]byte, 32)...)
	twoByteVersion := EncodeBase58(append(payload, ss58Checksum(payload)...))

	oversized := EncodeBase58(bytes.Repeat([]byte{0xFF}, maxSS58DecodedLen+1))

	tests := []struct {
		name     string
		address  string
		expected error
	}{
		{"invalid character", "I", errs.ErrDecode},
		{"zero character", "5C4hrfjw9DjXZTzV3MwzrrAr9P1MJhSrvWGWqi1eSuyUpnh0", errs.ErrDecode},
		{"empty", "", errs.ErrFormat},
		{"two bytes", tooShort, errs.ErrFormat},
		{"bad checksum", "5C4hrfjw9DjXZTzV3MwzrrAr9P1MJhSrvWGWqi1eSuyUpnhN", errs.ErrChecksumMismatch},
		{"two byte version", twoByteVersion, errs.ErrUnsupportedFormat},
		{"oversized", oversized, errs.ErrCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeSS58(tt.address)
			require.ErrorIs(t, err, tt.expected)
			require.ErrorIs(t, ValidateSS58(tt.address), tt.expected)
		})
	}
}

func TestDecodeSS58ChecksumSensitivity(t *testing.T) {
	address, err := EncodeSS58(mustHex(t, aliceHex), 42)
	require.NoError(t, err)

	raw, err := DecodeBase58(address)
	require.NoError(t, err)
	require.Len(t, raw, ss58PayloadLen+SS58ChecksumLen)

	// Every single bit of the version, the key and the checksum.
	for i := range raw {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), raw...)
			tampered[i] ^= 1 << bit

			_, _, err := DecodeSS58(EncodeBase58(tampered))
			require.ErrorIs(t, err, errs.ErrChecksumMismatch, "byte %d bit %d", i, bit)
		}
	}
}

func TestConvertSS58(t *testing.T) {
	require := require.New(t)

	polkadot, err := ConvertSS58("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", 0)
	require.NoError(err)
	require.Equal("15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", polkadot)

	_, err = ConvertSS58("I", 0)
	require.ErrorIs(err, errs.ErrDecode)
}

func TestConvertAddresses(t *testing.T) {
	require := require.New(t)

	converted, err := ConvertAddresses(42, []string{
		"15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5",
		zeroKeySubstrate,
	})
	require.NoError(err)
	require.Equal([]string{
		"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		zeroKeySubstrate,
	}, converted)

	_, err = ConvertAddresses(42, []string{zeroKeySubstrate, "I"})
	require.ErrorIs(err, errs.ErrDecode)
}

func TestSS58ChecksumMatchesBlake2b512(t *testing.T) {
	payload := append([]byte{42}, mustHex(t, aliceHex)...)
	full := hashing.ComputeHash512(append([]byte("SS58PRE"), payload...))
	require.Equal(t, full[:2], ss58Checksum(payload))
}

func TestSS58Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode inverts encode", prop.ForAll(
		func(key []byte, version uint8) bool {
			address, err := EncodeSS58(key, version)
			if err != nil {
				return false
			}
			decodedKey, decodedVersion, err := DecodeSS58(address)
			return err == nil && bytes.Equal(key, decodedKey) && decodedVersion == version
		},
		gen.SliceOfN(SS58KeyLen, gen.UInt8()),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func BenchmarkEncodeSS58(b *testing.B) {
	key := make([]byte, SS58KeyLen)
	for n := 0; n < b.N; n++ {
		_, _ = EncodeSS58(key, 42)
	}
}

func BenchmarkDecodeSS58(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, _, _ = DecodeSS58(zeroKeySubstrate)
	}
}
