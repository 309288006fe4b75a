// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MontaQLabs/sublua/utils/errs"
)

const aliceHex = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func TestParsePublicKey(t *testing.T) {
	alice, err := hex.DecodeString(aliceHex)
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:  "prefixed hex",
			input: "0x" + aliceHex,
		},
		{
			name:  "bare hex",
			input: aliceHex,
		},
		{
			name:  "substrate address",
			input: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		},
		{
			name:  "polkadot address",
			input: "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5",
		},
		{
			name:        "short hex",
			input:       "0xd435",
			expectedErr: errs.ErrInvalidArgument,
		},
		{
			name:        "bare hex with a bad digit",
			input:       "zz" + aliceHex[2:],
			expectedErr: errs.ErrDecode,
		},
		{
			name:        "neither hex nor an address",
			input:       "0OIl",
			expectedErr: errs.ErrDecode,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pk, err := parsePublicKey(test.input)
			require.ErrorIs(t, err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(t, alice, pk)
			}
		})
	}
}
