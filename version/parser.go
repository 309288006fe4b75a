// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"strconv"
	"strings"
)

func Parse(s string) (*Semantic, error) {
	if !strings.HasPrefix(s, "v") {
		return nil, fmt.Errorf("version string %q missing required prefix", s)
	}

	major, minor, patch, err := parseVersions(s[1:])
	if err != nil {
		return nil, err
	}
	return &Semantic{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

func ParseApplication(s string) (*Application, error) {
	prefix := Client + "/"
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("application string %q missing required prefix", s)
	}

	major, minor, patch, err := parseVersions(s[len(prefix):])
	if err != nil {
		return nil, err
	}
	return &Application{
		Name:  Client,
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

func parseVersions(s string) (int, int, int, error) {
	splitVersion := strings.SplitN(s, ".", 3)
	if len(splitVersion) != 3 {
		return 0, 0, 0, fmt.Errorf("failed to parse %s as a version", s)
	}

	var versions [3]int
	for i, part := range splitVersion {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("failed to parse %s as a version: %w", s, err)
		}
		versions[i] = v
	}
	return versions[0], versions[1], versions[2], nil
}
