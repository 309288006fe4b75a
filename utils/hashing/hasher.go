// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MontaQLabs/sublua/utils/errs"
)

// Hasher selects how a storage map key is hashed before it is appended to
// the storage prefix.
type Hasher uint8

const (
	Identity Hasher = iota
	Twox64Concat
	Twox128Hasher
	Twox256Hasher
	Blake2_128
	Blake2_128Concat
	Blake2_256
)

const (
	identityStr         = "identity"
	twox64ConcatStr     = "twox64concat"
	twox128Str          = "twox128"
	twox256Str          = "twox256"
	blake2_128Str       = "blake2_128"
	blake2_128ConcatStr = "blake2_128concat"
	blake2_256Str       = "blake2_256"
)

// ToHasher is the inverse of Hasher.String(). Matching ignores case.
func ToHasher(s string) (Hasher, error) {
	switch strings.ToLower(s) {
	case identityStr:
		return Identity, nil
	case twox64ConcatStr:
		return Twox64Concat, nil
	case twox128Str:
		return Twox128Hasher, nil
	case twox256Str:
		return Twox256Hasher, nil
	case blake2_128Str:
		return Blake2_128, nil
	case blake2_128ConcatStr:
		return Blake2_128Concat, nil
	case blake2_256Str:
		return Blake2_256, nil
	default:
		return Identity, fmt.Errorf("%w: unknown hasher %q", errs.ErrInvalidArgument, s)
	}
}

func (h Hasher) String() string {
	switch h {
	case Identity:
		return identityStr
	case Twox64Concat:
		return twox64ConcatStr
	case Twox128Hasher:
		return twox128Str
	case Twox256Hasher:
		return twox256Str
	case Blake2_128:
		return blake2_128Str
	case Blake2_128Concat:
		return blake2_128ConcatStr
	case Blake2_256:
		return blake2_256Str
	default:
		return "unknown"
	}
}

// Concat reports whether the hasher appends the raw key after its digest,
// which keeps the key recoverable from the storage key.
func (h Hasher) Concat() bool {
	return h == Identity || h == Twox64Concat || h == Blake2_128Concat
}

// Hash applies the hasher to [key].
func (h Hasher) Hash(key []byte) ([]byte, error) {
	switch h {
	case Identity:
		return append([]byte(nil), key...), nil
	case Twox64Concat:
		return append(Twox64(key), key...), nil
	case Twox128Hasher:
		return Twox128(key), nil
	case Twox256Hasher:
		return Twox256(key), nil
	case Blake2_128:
		return ComputeHash128(key), nil
	case Blake2_128Concat:
		return append(ComputeHash128(key), key...), nil
	case Blake2_256:
		return ComputeHash256(key), nil
	default:
		return nil, fmt.Errorf("%w: unknown hasher %d", errs.ErrInvalidArgument, h)
	}
}

func (h Hasher) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hasher) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*h, err = ToHasher(str)
	return err
}
