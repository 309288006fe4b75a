// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extrinsic

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

// fixedPayloadLen is the encoded length of a payload with no arguments, an
// immortal era, and a zero nonce and tip.
const fixedPayloadLen = 2 + 1 + 1 + 1 + 4 + 4 + 32 + 32

var (
	balancesTransfer = Call{
		PalletIndex: 5,
		CallIndex:   0,
		Args:        []byte{0x01, 0x02},
	}
	testSeed = bytes.Repeat([]byte{7}, crypto.SeedLen)
)

func testPayload(call Call, extra Extra) *Payload {
	p := &Payload{
		Call:               call,
		Extra:              extra,
		SpecVersion:        9430,
		TransactionVersion: 24,
	}
	for i := range p.GenesisHash {
		p.GenesisHash[i] = 0x11
		p.BlockHash[i] = 0x22
	}
	return p
}

func TestEncodeUnsigned(t *testing.T) {
	require.Equal(t, []byte{0x14, 0x04, 0x05, 0x00, 0x01, 0x02}, EncodeUnsigned(balancesTransfer))
}

func TestPayloadBytes(t *testing.T) {
	require := require.New(t)

	p := testPayload(balancesTransfer, Extra{
		Era:   MortalEra(64, 42),
		Nonce: 1,
		Tip:   big.NewInt(69),
	})
	b, err := p.Bytes()
	require.NoError(err)

	expected := "05000102" + // call
		"a502" + // era
		"04" + // nonce
		"1501" + // tip
		"d6240000" + // spec version 9430
		"18000000" + // transaction version 24
		hex.EncodeToString(bytes.Repeat([]byte{0x11}, 32)) +
		hex.EncodeToString(bytes.Repeat([]byte{0x22}, 32))
	require.Equal(expected, hex.EncodeToString(b))

	msg, err := SigningPayload(p)
	require.NoError(err)
	require.Equal(b, msg)
}

func TestSigningPayloadHashesLongPayloads(t *testing.T) {
	tests := []struct {
		name     string
		argsLen  int
		expected int
		hashed   bool
	}{
		{
			name:     "at the limit",
			argsLen:  MaxUnhashedPayloadLen - fixedPayloadLen,
			expected: MaxUnhashedPayloadLen,
		},
		{
			name:     "one byte over",
			argsLen:  MaxUnhashedPayloadLen - fixedPayloadLen + 1,
			expected: hashing.HashLen,
			hashed:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			p := testPayload(Call{Args: make([]byte, test.argsLen)}, Extra{})
			raw, err := p.Bytes()
			require.NoError(err)

			msg, err := SigningPayload(p)
			require.NoError(err)
			require.Len(msg, test.expected)
			if test.hashed {
				require.Equal(hashing.ComputeHash256(raw), msg)
			} else {
				require.Equal(raw, msg)
			}
		})
	}
}

func TestEncodeSigned(t *testing.T) {
	require := require.New(t)

	var signer ids.AccountID
	for i := range signer {
		signer[i] = byte(i)
	}
	sig := bytes.Repeat([]byte{0xab}, crypto.SignatureLen)

	out, err := EncodeSigned(balancesTransfer, signer, sig, Extra{Nonce: 1})
	require.NoError(err)

	length, n, err := DecodeCompact(out)
	require.NoError(err)
	body := out[n:]
	require.Equal(int(length), len(body))

	require.Equal(byte(0x84), body[0])
	require.Equal(byte(0x00), body[1])
	require.Equal(signer[:], body[2:34])
	require.Equal(byte(0x00), body[34])
	require.Equal(sig, body[35:99])
	require.Equal([]byte{
		0x00,       // immortal
		0x04,       // nonce 1
		0x00,       // no tip
		0x05, 0x00, // pallet, call
		0x01, 0x02, // args
	}, body[99:])
}

func TestEncodeSignedErrors(t *testing.T) {
	_, err := EncodeSigned(balancesTransfer, ids.AccountID{}, make([]byte, 65), Extra{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = EncodeSigned(balancesTransfer, ids.AccountID{}, make([]byte, crypto.SignatureLen), Extra{Tip: big.NewInt(-1)})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSign(t *testing.T) {
	require := require.New(t)

	factory := crypto.FactoryED25519{}
	sk, err := factory.ToPrivateKey(testSeed)
	require.NoError(err)
	defer sk.Zero()

	p := testPayload(balancesTransfer, Extra{
		Era:   MortalEra(64, 100),
		Nonce: 3,
	})
	out, err := Sign(sk, p)
	require.NoError(err)

	_, n, err := DecodeCompact(out)
	require.NoError(err)
	body := out[n:]

	id := sk.PublicKey().AccountID()
	require.Equal(id[:], body[2:34])

	msg, err := SigningPayload(p)
	require.NoError(err)
	valid, err := crypto.Verify(id[:], msg, body[35:99])
	require.NoError(err)
	require.True(valid)

	// ed25519 is deterministic, so the seed oracle gives the same signature.
	expectedSig, err := crypto.Sign(testSeed, msg)
	require.NoError(err)
	require.Equal(expectedSig, body[35:99])
}

func TestSignZeroedKey(t *testing.T) {
	factory := crypto.FactoryED25519{}
	sk, err := factory.ToPrivateKey(testSeed)
	require.NoError(t, err)
	sk.Zero()

	_, err = Sign(sk, testPayload(balancesTransfer, Extra{}))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
