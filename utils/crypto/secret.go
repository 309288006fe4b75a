// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/MontaQLabs/sublua/utils/errs"
)

// secretKey owns an expanded ed25519 private key. The owner must call Zero
// once the key is no longer needed. Signing and zeroing may run
// concurrently.
type secretKey struct {
	lock sync.RWMutex
	key  ed25519.PrivateKey
}

func newSecretKey(seed []byte) (*secretKey, error) {
	if len(seed) != SeedLen {
		return nil, fmt.Errorf("%w: seed must be %d bytes but got %d", errs.ErrInvalidArgument, SeedLen, len(seed))
	}
	return &secretKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *secretKey) zeroed() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.key == nil
}

// sign signs [msg], failing if the key has already been zeroed.
func (s *secretKey) sign(msg []byte) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.key == nil {
		return nil, errKeyZeroed
	}
	return ed25519.Sign(s.key, msg), nil
}

// Zero overwrites the key in place and drops the reference to it.
func (s *secretKey) Zero() {
	s.lock.Lock()
	defer s.lock.Unlock()

	clear(s.key)
	s.key = nil
}

// withSecretKey derives the private key for [seed], hands it to [f] and
// zeroes it before returning, whether [f] returns, fails or panics. [f] must
// not retain the key.
func withSecretKey(seed []byte, f func(ed25519.PrivateKey) error) error {
	sk, err := newSecretKey(seed)
	if err != nil {
		return err
	}
	defer sk.Zero()
	return f(sk.key)
}
