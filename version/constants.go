// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "sublua"

// GitCommit is set at build time with
// -ldflags "-X github.com/MontaQLabs/sublua/version.GitCommit=$(git rev-parse HEAD)"
var GitCommit string

var Current = &Application{
	Name:  Client,
	Major: 0,
	Minor: 1,
	Patch: 0,
}
