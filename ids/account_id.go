// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/MontaQLabs/sublua/utils/constants"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/formatting"
)

const (
	AccountIDLen = formatting.SS58KeyLen

	nullStr = "null"
)

var (
	// EmptyAccountID is a useful all zero value
	EmptyAccountID = AccountID{}

	errMissingQuotes = errors.New("first and last characters should be quotes")
	errWrongNetwork  = errors.New("address belongs to a different network")
)

// AccountID is the 32 byte public key that an SS58 address renders.
type AccountID [AccountIDLen]byte

// ToAccountID attempt to convert a byte slice into an account id
func ToAccountID(bytes []byte) (AccountID, error) {
	id := AccountID{}
	if len(bytes) != AccountIDLen {
		return id, fmt.Errorf("%w: expected %d bytes but got %d", errs.ErrInvalidArgument, AccountIDLen, len(bytes))
	}
	copy(id[:], bytes)
	return id, nil
}

// AccountIDFromString parses an SS58 address under any network version.
// It is the inverse of AccountID.String().
func AccountIDFromString(address string) (AccountID, error) {
	id, _, err := ParseAddress(address)
	return id, err
}

// ParseAddress parses an SS58 address and returns the account and the
// network version it was encoded for.
func ParseAddress(address string) (AccountID, byte, error) {
	key, version, err := formatting.DecodeSS58(address)
	if err != nil {
		return AccountID{}, 0, err
	}
	id, err := ToAccountID(key)
	return id, version, err
}

// AccountIDFromAddress parses an SS58 address that must have been encoded
// for network [version].
func AccountIDFromAddress(address string, version byte) (AccountID, error) {
	id, got, err := ParseAddress(address)
	if err != nil {
		return AccountID{}, err
	}
	if got != version {
		return AccountID{}, fmt.Errorf("%w: %w: expected version %d but got %d",
			errs.ErrInvalidArgument, errWrongNetwork, version, got)
	}
	return id, nil
}

// Address returns the SS58 address of this account on network [version].
func (id AccountID) Address(version byte) string {
	address, err := formatting.EncodeSS58(id[:], version)
	if err != nil {
		panic(err)
	}
	return address
}

// String returns the address of this account under the generic Substrate
// prefix.
func (id AccountID) String() string {
	return id.Address(byte(constants.DefaultNetworkID))
}

// Hex returns the 0x-prefixed hex encoding of this account.
func (id AccountID) Hex() string {
	return formatting.EncodeHex(id[:])
}

// Any modification to Bytes will be lost since id is passed-by-value
// Directly access AccountID[:] if you need to modify the AccountID
func (id AccountID) Bytes() []byte {
	return id[:]
}

func (id AccountID) Compare(other AccountID) int {
	return bytes.Compare(id[:], other[:])
}

func (id AccountID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *AccountID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	}
	lastIndex := len(str) - 1
	if len(str) < 2 || str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	var err error
	*id, err = AccountIDFromString(str[1:lastIndex])
	return err
}

func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AccountID) UnmarshalText(text []byte) error {
	var err error
	*id, err = AccountIDFromString(string(text))
	return err
}
