// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/errs"
)

func seed(b byte) []byte {
	return bytes.Repeat([]byte{b}, crypto.SeedLen)
}

func TestEd25519Keychain(t *testing.T) {
	require := require.New(t)

	kc, err := NewEd25519Keychain(seed(1), seed(2))
	require.NoError(err)
	defer kc.Close()

	accounts := kc.Accounts()
	require.Len(accounts, 2)
	require.Negative(accounts[0].Compare(accounts[1]))

	pk, err := crypto.DeriveKeypairFromSeed(seed(1))
	require.NoError(err)
	id, err := ids.ToAccountID(pk)
	require.NoError(err)

	signer, ok := kc.Get(id)
	require.True(ok)
	require.Equal(id, signer.PublicKey().AccountID())

	msg := []byte("remark")
	sig, err := signer.Sign(msg)
	require.NoError(err)
	valid, err := crypto.Verify(pk, msg, sig)
	require.NoError(err)
	require.True(valid)

	_, ok = kc.Get(ids.EmptyAccountID)
	require.False(ok)

	require.Contains(kc.Addresses(42), id.Address(42))
}

func TestEd25519KeychainAddIdempotent(t *testing.T) {
	require := require.New(t)

	kc, err := NewEd25519Keychain()
	require.NoError(err)
	defer kc.Close()

	id1, err := kc.Add(seed(9))
	require.NoError(err)
	id2, err := kc.Add(seed(9))
	require.NoError(err)
	require.Equal(id1, id2)
	require.Len(kc.Accounts(), 1)

	_, err = kc.Add(seed(9)[:31])
	require.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestEd25519KeychainInvalidSeed(t *testing.T) {
	_, err := NewEd25519Keychain(seed(1), []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestEd25519KeychainRemoveAndClose(t *testing.T) {
	require := require.New(t)

	kc, err := NewEd25519Keychain(seed(1), seed(2))
	require.NoError(err)

	id := kc.Accounts()[0]
	signer, ok := kc.Get(id)
	require.True(ok)

	require.True(kc.Remove(id))
	require.False(kc.Remove(id))
	_, err = signer.Sign([]byte("m"))
	require.ErrorIs(err, errs.ErrInvalidArgument)

	remaining := kc.Accounts()[0]
	signer, ok = kc.Get(remaining)
	require.True(ok)

	kc.Close()
	require.Empty(kc.Accounts())
	_, err = signer.Sign([]byte("m"))
	require.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = kc.Add(seed(3))
	require.ErrorIs(err, errs.ErrInvalidArgument)
}

// Run with -race: signing must not observe a key while Remove wipes it.
func TestEd25519KeychainSignDuringRemove(t *testing.T) {
	msg := []byte("transfer")
	for i := 0; i < 200; i++ {
		kc, err := NewEd25519Keychain(seed(byte(i)))
		require.NoError(t, err)

		id := kc.Accounts()[0]
		signer, ok := kc.Get(id)
		require.True(t, ok)

		var (
			wg      sync.WaitGroup
			sig     []byte
			signErr error
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig, signErr = signer.Sign(msg)
		}()
		require.True(t, kc.Remove(id))
		wg.Wait()

		if signErr != nil {
			require.ErrorIs(t, signErr, errs.ErrInvalidArgument)
		} else {
			require.True(t, signer.PublicKey().Verify(msg, sig))
		}
		kc.Close()
	}
}
