// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/errs"
)

var (
	_ Keychain = (*Ed25519Keychain)(nil)
	_ Signer   = crypto.PrivateKey(nil)
)

// Signer implements functions for a keychain to return its public key and
// to sign a message
type Signer interface {
	Sign([]byte) ([]byte, error)
	PublicKey() crypto.PublicKey
}

// Keychain maintains a set of accounts together with their corresponding
// signers
type Keychain interface {
	// The returned Signer can provide a signature for [id]
	Get(id ids.AccountID) (Signer, bool)
	// Returns the accounts for which the keychain keeps an associated
	// signer, in ascending byte order
	Accounts() []ids.AccountID
}

// Ed25519Keychain is an in-memory Keychain of ed25519 keys derived from
// seeds.
type Ed25519Keychain struct {
	factory crypto.FactoryED25519

	lock sync.RWMutex
	keys map[ids.AccountID]crypto.PrivateKey
}

// NewEd25519Keychain returns a keychain holding the keys of [seeds].
func NewEd25519Keychain(seeds ...[]byte) (*Ed25519Keychain, error) {
	kc := &Ed25519Keychain{
		keys: make(map[ids.AccountID]crypto.PrivateKey, len(seeds)),
	}
	for i, seed := range seeds {
		if _, err := kc.Add(seed); err != nil {
			kc.Close()
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
	}
	return kc, nil
}

// Add derives the key of [seed] and stores it. Adding a seed twice is a
// no-op. The keychain does not keep [seed].
func (kc *Ed25519Keychain) Add(seed []byte) (ids.AccountID, error) {
	sk, err := kc.factory.ToPrivateKey(seed)
	if err != nil {
		return ids.AccountID{}, err
	}
	id := sk.PublicKey().AccountID()

	kc.lock.Lock()
	defer kc.lock.Unlock()

	if kc.keys == nil {
		sk.Zero()
		return ids.AccountID{}, fmt.Errorf("%w: keychain is closed", errs.ErrInvalidArgument)
	}
	if _, exists := kc.keys[id]; exists {
		sk.Zero()
		return id, nil
	}
	kc.keys[id] = sk
	return id, nil
}

// Get implements the Keychain interface
func (kc *Ed25519Keychain) Get(id ids.AccountID) (Signer, bool) {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	sk, ok := kc.keys[id]
	return sk, ok
}

// Accounts implements the Keychain interface
func (kc *Ed25519Keychain) Accounts() []ids.AccountID {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	accounts := maps.Keys(kc.keys)
	slices.SortFunc(accounts, ids.AccountID.Compare)
	return accounts
}

// Addresses returns the SS58 address of every account under [version].
func (kc *Ed25519Keychain) Addresses(version byte) []string {
	accounts := kc.Accounts()
	addresses := make([]string, len(accounts))
	for i, id := range accounts {
		addresses[i] = id.Address(version)
	}
	return addresses
}

// Remove zeroes and forgets the key of [id].
func (kc *Ed25519Keychain) Remove(id ids.AccountID) bool {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	sk, ok := kc.keys[id]
	if ok {
		sk.Zero()
		delete(kc.keys, id)
	}
	return ok
}

// Close zeroes every key. The keychain is unusable afterwards.
func (kc *Ed25519Keychain) Close() {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	for _, sk := range kc.keys {
		sk.Zero()
	}
	kc.keys = nil
}
