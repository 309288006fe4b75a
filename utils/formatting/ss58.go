// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"fmt"
	"math"

	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

const (
	// SS58KeyLen is the length of the public key carried by an address.
	SS58KeyLen = 32
	// SS58ChecksumLen is the number of hash bytes appended to the payload.
	SS58ChecksumLen = 2

	ss58PayloadLen = 1 + SS58KeyLen
	ss58MinLen     = 1 + SS58ChecksumLen

	// maximum number of bytes an address may decode to before being rejected
	maxSS58DecodedLen = 64
)

// ss58Context is hashed in front of the payload so that SS58 checksums cannot
// be confused with checksums of other schemes.
var ss58Context = []byte("SS58PRE")

func ss58Checksum(payload []byte) []byte {
	return hashing.Checksum(SS58ChecksumLen, ss58Context, payload)
}

// EncodeSS58 renders [publicKey] as an SS58 address under the single byte
// network [version].
func EncodeSS58(publicKey []byte, version byte) (string, error) {
	if len(publicKey) != SS58KeyLen {
		return "", fmt.Errorf("%w: public key must be %d bytes but got %d", errs.ErrInvalidArgument, SS58KeyLen, len(publicKey))
	}

	checked := make([]byte, ss58PayloadLen, ss58PayloadLen+SS58ChecksumLen)
	checked[0] = version
	copy(checked[1:], publicKey)
	checked = append(checked, ss58Checksum(checked)...)
	return EncodeBase58(checked), nil
}

// EncodeSS58Prefix is EncodeSS58 for a prefix supplied as a wider integer,
// such as a value read from configuration. Prefixes that do not fit in a
// single byte are rejected.
func EncodeSS58Prefix(publicKey []byte, prefix uint16) (string, error) {
	if prefix > math.MaxUint8 {
		return "", fmt.Errorf("%w: network prefix %d does not fit in a single version byte", errs.ErrInvalidArgument, prefix)
	}
	return EncodeSS58(publicKey, byte(prefix))
}

// DecodeSS58 parses an SS58 address and returns its public key and version.
//
// The checksum is verified before the payload layout is inspected, so a
// corrupted address always reports errs.ErrChecksumMismatch.
func DecodeSS58(address string) ([]byte, byte, error) {
	buf := make([]byte, maxSS58DecodedLen)
	n, err := DecodeBase58Into(buf, address)
	if err != nil {
		return nil, 0, err
	}
	if n < ss58MinLen {
		return nil, 0, fmt.Errorf("%w: address decodes to %d bytes, need at least %d", errs.ErrFormat, n, ss58MinLen)
	}

	payload := buf[:n-SS58ChecksumLen]
	checksum := buf[n-SS58ChecksumLen : n]
	if !bytes.Equal(checksum, ss58Checksum(payload)) {
		return nil, 0, fmt.Errorf("%w: invalid SS58 checksum", errs.ErrChecksumMismatch)
	}

	if len(payload) != ss58PayloadLen {
		return nil, 0, fmt.Errorf("%w: payload of %d bytes, only %d byte payloads are supported",
			errs.ErrUnsupportedFormat, len(payload), ss58PayloadLen)
	}

	publicKey := make([]byte, SS58KeyLen)
	copy(publicKey, payload[1:])
	return publicKey, payload[0], nil
}

// ValidateSS58 returns nil iff [address] decodes successfully.
func ValidateSS58(address string) error {
	_, _, err := DecodeSS58(address)
	return err
}

// ConvertSS58 re-encodes [address] under network [version].
func ConvertSS58(address string, version byte) (string, error) {
	publicKey, _, err := DecodeSS58(address)
	if err != nil {
		return "", err
	}
	return EncodeSS58(publicKey, version)
}
