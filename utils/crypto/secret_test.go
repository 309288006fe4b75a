// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/MontaQLabs/sublua/utils/errs"
)

var errCallback = errors.New("callback failed")

func TestWithSecretKeyZeroes(t *testing.T) {
	seed := bytes.Repeat([]byte{3}, SeedLen)

	tests := []struct {
		name string
		f    func(ed25519.PrivateKey) error
		err  error
	}{
		{
			name: "success",
			f:    func(ed25519.PrivateKey) error { return nil },
		},
		{
			name: "error",
			f:    func(ed25519.PrivateKey) error { return errCallback },
			err:  errCallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			var leaked ed25519.PrivateKey
			err := withSecretKey(seed, func(sk ed25519.PrivateKey) error {
				require.Len(sk, PrivateKeyLen)
				require.NotEqual(make([]byte, PrivateKeyLen), []byte(sk))
				leaked = sk
				return tt.f(sk)
			})
			require.ErrorIs(err, tt.err)
			require.Equal(make([]byte, PrivateKeyLen), []byte(leaked))
		})
	}
}

func TestWithSecretKeyZeroesOnPanic(t *testing.T) {
	require := require.New(t)

	var leaked ed25519.PrivateKey
	require.PanicsWithValue("boom", func() {
		_ = withSecretKey(bytes.Repeat([]byte{4}, SeedLen), func(sk ed25519.PrivateKey) error {
			leaked = sk
			panic("boom")
		})
	})
	require.Equal(make([]byte, PrivateKeyLen), []byte(leaked))
}

func TestWithSecretKeyInvalidSeed(t *testing.T) {
	called := false
	err := withSecretKey(make([]byte, 16), func(ed25519.PrivateKey) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.False(t, called)
}

func TestSecretKeyZero(t *testing.T) {
	require := require.New(t)

	sk, err := newSecretKey(bytes.Repeat([]byte{5}, SeedLen))
	require.NoError(err)
	require.False(sk.zeroed())

	key := sk.key
	sk.Zero()
	require.True(sk.zeroed())
	require.Equal(make([]byte, PrivateKeyLen), []byte(key))

	// zeroing twice is harmless
	sk.Zero()
	require.True(sk.zeroed())
}

func TestSecretKeySignDuringZero(t *testing.T) {
	msg := []byte("payload")
	for i := 0; i < 100; i++ {
		sk, err := newSecretKey(bytes.Repeat([]byte{byte(i)}, SeedLen))
		require.NoError(t, err)
		pk := ed25519.PublicKey(append([]byte(nil), sk.key.Public().(ed25519.PublicKey)...))

		done := make(chan struct{})
		var (
			sig     []byte
			signErr error
		)
		go func() {
			defer close(done)
			sig, signErr = sk.sign(msg)
		}()
		sk.Zero()
		<-done

		if signErr != nil {
			require.ErrorIs(t, signErr, errKeyZeroed)
			continue
		}
		require.True(t, ed25519.Verify(pk, msg, sig))
	}
}
