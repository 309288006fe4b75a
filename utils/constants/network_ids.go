// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SS58 network prefixes. Only single byte prefixes are listed because
// addresses are encoded with a one byte version.
const (
	PolkadotID  uint16 = 0
	KusamaID    uint16 = 2
	AstarID     uint16 = 5
	KaruraID    uint16 = 8
	AcalaID     uint16 = 10
	SubstrateID uint16 = 42

	// WestendID shares the generic Substrate prefix.
	WestendID = SubstrateID

	PolkadotName  = "polkadot"
	KusamaName    = "kusama"
	AstarName     = "astar"
	KaruraName    = "karura"
	AcalaName     = "acala"
	SubstrateName = "substrate"
	WestendName   = "westend"

	// DefaultNetworkID is used when no network is configured.
	DefaultNetworkID = SubstrateID
)

// Variables to be exported
var (
	NetworkIDToNetworkName = map[uint16]string{
		PolkadotID:  PolkadotName,
		KusamaID:    KusamaName,
		AstarID:     AstarName,
		KaruraID:    KaruraName,
		AcalaID:     AcalaName,
		SubstrateID: SubstrateName,
	}
	NetworkNameToNetworkID = map[string]uint16{
		PolkadotName:  PolkadotID,
		KusamaName:    KusamaID,
		AstarName:     AstarID,
		KaruraName:    KaruraID,
		AcalaName:     AcalaID,
		SubstrateName: SubstrateID,
		WestendName:   WestendID,
	}

	ValidNetworkPrefix = "network-"

	ErrParseNetworkName = errors.New("failed to parse network name")
)

// NetworkName returns a human readable name for the network with
// ID [networkID]
func NetworkName(networkID uint16) string {
	if name, exists := NetworkIDToNetworkName[networkID]; exists {
		return name
	}
	return fmt.Sprintf("network-%d", networkID)
}

// NetworkID returns the SS58 prefix of the network with name [networkName].
// Besides the names above it accepts "network-<n>" and bare numbers.
func NetworkID(networkName string) (uint16, error) {
	networkName = strings.ToLower(networkName)
	if id, exists := NetworkNameToNetworkID[networkName]; exists {
		return id, nil
	}

	idStr := strings.TrimPrefix(networkName, ValidNetworkPrefix)
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseNetworkName, networkName)
	}
	return uint16(id), nil
}
