// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/MontaQLabs/sublua/utils/errs"
)

const (
	// MinHashLen and MaxHashLen bound the output length accepted by Blake2b.
	MinHashLen = 1
	MaxHashLen = blake2b.Size

	HashLen    = blake2b.Size256
	Hash128Len = 16
	Hash512Len = blake2b.Size
)

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// Hash512 A 512 bit long hash value.
type Hash512 = [Hash512Len]byte

// Blake2b computes an unkeyed BLAKE2b digest of [outputLen] bytes.
//
// Returns an error wrapping errs.ErrInvalidArgument if outputLen is outside
// [MinHashLen, MaxHashLen].
func Blake2b(data []byte, outputLen int) ([]byte, error) {
	if outputLen < MinHashLen || outputLen > MaxHashLen {
		return nil, fmt.Errorf("%w: output length must be between %d and %d but got %d",
			errs.ErrInvalidArgument, MinHashLen, MaxHashLen, outputLen)
	}
	h, err := blake2b.New(outputLen, nil)
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}

// ComputeHash128 computes the 128 bit BLAKE2b hash of the input byte slice.
func ComputeHash128(buf []byte) []byte {
	hash, err := Blake2b(buf, Hash128Len)
	if err != nil {
		panic(err)
	}
	return hash
}

// ComputeHash256Array computes a cryptographically strong 256 bit hash of the
// input byte slice.
func ComputeHash256Array(buf []byte) Hash256 {
	return blake2b.Sum256(buf)
}

// ComputeHash256 computes a cryptographically strong 256 bit hash of the input
// byte slice.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// ComputeHash512Array computes the 512 bit BLAKE2b hash of the input byte
// slice.
func ComputeHash512Array(buf []byte) Hash512 {
	return blake2b.Sum512(buf)
}

// ComputeHash512 computes the 512 bit BLAKE2b hash of the input byte slice.
func ComputeHash512(buf []byte) []byte {
	arr := ComputeHash512Array(buf)
	return arr[:]
}

// Checksum creates a checksum of [length] bytes from the 512 bit hash of the
// concatenation of [parts].
//
// Returns: the first [length] bytes of the hash
// Panics if length > 64.
func Checksum(length int, parts ...[]byte) []byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	return h.Sum(nil)[:length]
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected %d bytes but got %d", errs.ErrInvalidArgument, HashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}
