// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storagekey derives the raw keys under which a Substrate runtime
// stores pallet items.
//
// A plain item lives at twox128(pallet) ++ twox128(item). Map entries append
// the hashed map key, and double maps append both hashed keys.
package storagekey

import (
	"fmt"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

// PrefixLen is the length of a pallet item prefix.
const PrefixLen = 2 * hashing.Twox128Len

// Prefix returns the key of the plain storage item [item] of [pallet].
func Prefix(pallet, item string) []byte {
	key := make([]byte, 0, PrefixLen)
	key = append(key, hashing.Twox128([]byte(pallet))...)
	return append(key, hashing.Twox128([]byte(item))...)
}

// MapKey returns the key of the entry [key] of the storage map [item].
func MapKey(pallet, item string, hasher hashing.Hasher, key []byte) ([]byte, error) {
	hashed, err := hasher.Hash(key)
	if err != nil {
		return nil, err
	}
	return append(Prefix(pallet, item), hashed...), nil
}

// DoubleMapKey returns the key of the entry ([key1], [key2]) of the storage
// double map [item].
func DoubleMapKey(
	pallet, item string,
	hasher1 hashing.Hasher, key1 []byte,
	hasher2 hashing.Hasher, key2 []byte,
) ([]byte, error) {
	prefix, err := MapKey(pallet, item, hasher1, key1)
	if err != nil {
		return nil, err
	}
	hashed, err := hasher2.Hash(key2)
	if err != nil {
		return nil, err
	}
	return append(prefix, hashed...), nil
}

// SystemAccount returns the key of the System.Account entry of [id].
func SystemAccount(id ids.AccountID) []byte {
	key, err := MapKey("System", "Account", hashing.Blake2_128Concat, id[:])
	if err != nil {
		panic(err)
	}
	return key
}

// MapKeySuffix recovers the raw map key from a storage key produced by
// MapKey with a concatenating [hasher].
func MapKeySuffix(storageKey []byte, hasher hashing.Hasher) ([]byte, error) {
	var digestLen int
	switch hasher {
	case hashing.Identity:
	case hashing.Twox64Concat:
		digestLen = hashing.Twox64Len
	case hashing.Blake2_128Concat:
		digestLen = hashing.Hash128Len
	default:
		return nil, fmt.Errorf("%w: hasher %s does not keep the key", errs.ErrUnsupportedFormat, hasher)
	}
	if len(storageKey) < PrefixLen+digestLen {
		return nil, fmt.Errorf("%w: storage key of %d bytes is shorter than %d",
			errs.ErrFormat, len(storageKey), PrefixLen+digestLen)
	}
	return storageKey[PrefixLen+digestLen:], nil
}
