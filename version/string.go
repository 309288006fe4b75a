// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// String describes the running binary on a single line.
func String(commit string) string {
	format := "%s [go=%s"
	args := []interface{}{
		Current,
		strings.TrimPrefix(runtime.Version(), "go"),
	}
	if commit != "" {
		format += ", commit=%s"
		args = append(args, commit)
	}
	format += "]"
	return fmt.Sprintf(format, args...)
}
