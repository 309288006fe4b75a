// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/errs"
)

const (
	SeedLen       = ed25519.SeedSize
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	SignatureLen  = ed25519.SignatureSize
)

var (
	_ Factory    = (*FactoryED25519)(nil)
	_ PublicKey  = (*PublicKeyED25519)(nil)
	_ PrivateKey = (*PrivateKeyED25519)(nil)

	errKeyZeroed = fmt.Errorf("%w: private key has been zeroed", errs.ErrInvalidArgument)
)

// DeriveKeypairFromSeed returns the ed25519 public key of [seed]. The
// expanded private key never leaves this call.
func DeriveKeypairFromSeed(seed []byte) ([]byte, error) {
	var pk []byte
	err := withSecretKey(seed, func(sk ed25519.PrivateKey) error {
		pk = make([]byte, PublicKeyLen)
		copy(pk, sk.Public().(ed25519.PublicKey))
		return nil
	})
	return pk, err
}

// Sign signs [msg] with the key derived from [seed].
func Sign(seed, msg []byte) ([]byte, error) {
	var sig []byte
	err := withSecretKey(seed, func(sk ed25519.PrivateKey) error {
		sig = ed25519.Sign(sk, msg)
		return nil
	})
	return sig, err
}

// Verify reports whether [sig] is a valid signature of [msg] by [pk].
//
// A malformed key or signature length is an error. A well-formed signature
// that does not verify is not: it returns false with a nil error.
func Verify(pk, msg, sig []byte) (bool, error) {
	if err := checkPublicKey(pk); err != nil {
		return false, err
	}
	if len(sig) != SignatureLen {
		return false, fmt.Errorf("%w: signature must be %d bytes but got %d", errs.ErrInvalidArgument, SignatureLen, len(sig))
	}
	return ed25519.Verify(pk, msg, sig), nil
}

func checkPublicKey(pk []byte) error {
	if len(pk) != PublicKeyLen {
		return fmt.Errorf("%w: public key must be %d bytes but got %d", errs.ErrInvalidArgument, PublicKeyLen, len(pk))
	}
	return nil
}

type FactoryED25519 struct{}

// ToPublicKey implements the Factory interface
func (*FactoryED25519) ToPublicKey(b []byte) (PublicKey, error) {
	if err := checkPublicKey(b); err != nil {
		return nil, err
	}
	pk := make(ed25519.PublicKey, PublicKeyLen)
	copy(pk, b)
	return &PublicKeyED25519{pk: pk}, nil
}

// ToPrivateKey implements the Factory interface
func (*FactoryED25519) ToPrivateKey(seed []byte) (PrivateKey, error) {
	sk, err := newSecretKey(seed)
	if err != nil {
		return nil, err
	}
	pk := make(ed25519.PublicKey, PublicKeyLen)
	copy(pk, sk.key.Public().(ed25519.PublicKey))
	return &PrivateKeyED25519{
		sk: sk,
		pk: &PublicKeyED25519{pk: pk},
	}, nil
}

type PublicKeyED25519 struct {
	pk ed25519.PublicKey
}

// Verify implements the PublicKey interface
func (k *PublicKeyED25519) Verify(msg, sig []byte) bool {
	return len(sig) == SignatureLen && ed25519.Verify(k.pk, msg, sig)
}

// AccountID implements the PublicKey interface
func (k *PublicKeyED25519) AccountID() ids.AccountID {
	var id ids.AccountID
	copy(id[:], k.pk)
	return id
}

// Address implements the PublicKey interface
func (k *PublicKeyED25519) Address(version byte) string {
	return k.AccountID().Address(version)
}

// Bytes implements the PublicKey interface
func (k *PublicKeyED25519) Bytes() []byte { return k.pk }

type PrivateKeyED25519 struct {
	sk *secretKey
	pk *PublicKeyED25519
}

// PublicKey implements the PrivateKey interface. The public key remains
// available after Zero.
func (k *PrivateKeyED25519) PublicKey() PublicKey {
	return k.pk
}

// Sign implements the PrivateKey interface
func (k *PrivateKeyED25519) Sign(msg []byte) ([]byte, error) {
	return k.sk.sign(msg)
}

// Zero implements the PrivateKey interface
func (k *PrivateKeyED25519) Zero() {
	k.sk.Zero()
}
