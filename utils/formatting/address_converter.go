// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import "fmt"

// ConvertAddresses converts a list of SS58 addresses with arbitrary network
// versions (e.g. 5GrwvaEF...) to a list of addresses under [version]
// (e.g. 15oF4uVJ... for version 0).
func ConvertAddresses(version byte, addresses []string) ([]string, error) {
	convertedAddrs := make([]string, len(addresses))
	for i, addr := range addresses {
		newAddrStr, err := ConvertSS58(addr, version)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", i, err)
		}
		convertedAddrs[i] = newAddrStr
	}
	return convertedAddrs, nil
}
