// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "github.com/MontaQLabs/sublua/ids"

// Factory creates keys from their serialized forms.
type Factory interface {
	ToPublicKey([]byte) (PublicKey, error)
	// ToPrivateKey derives a private key from a 32 byte seed.
	ToPrivateKey(seed []byte) (PrivateKey, error)
}

type PublicKey interface {
	Verify(message, signature []byte) bool

	AccountID() ids.AccountID
	Address(version byte) string
	Bytes() []byte
}

type PrivateKey interface {
	PublicKey() PublicKey

	Sign(message []byte) ([]byte, error)

	// Zero overwrites the key material. The key cannot sign afterwards.
	Zero()
}
