// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

// multisigContext is the domain separator of the utility pallet's multisig
// accounts.
var multisigContext = []byte("modlpy/utilisuba")

// MultisigAccountID returns the account controlled by any [threshold] of
// [signatories]. Signatories are sorted before hashing, so their order does
// not matter.
//
// The account is blake2_256(context ++ LE16(threshold) ++ sorted signatories).
func MultisigAccountID(threshold uint16, signatories []AccountID) (AccountID, error) {
	if len(signatories) == 0 {
		return AccountID{}, fmt.Errorf("%w: no signatories", errs.ErrInvalidArgument)
	}
	if threshold == 0 || int(threshold) > len(signatories) {
		return AccountID{}, fmt.Errorf("%w: threshold %d must be between 1 and %d",
			errs.ErrInvalidArgument, threshold, len(signatories))
	}

	sorted := slices.Clone(signatories)
	slices.SortFunc(sorted, AccountID.Compare)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return AccountID{}, fmt.Errorf("%w: duplicate signatory %s", errs.ErrInvalidArgument, sorted[i])
		}
	}

	preimage := make([]byte, 0, len(multisigContext)+2+len(sorted)*AccountIDLen)
	preimage = append(preimage, multisigContext...)
	preimage = binary.LittleEndian.AppendUint16(preimage, threshold)
	for _, signatory := range sorted {
		preimage = append(preimage, signatory[:]...)
	}
	return hashing.ComputeHash256Array(preimage), nil
}
