// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package l2math

import "golang.org/x/sys/cpu"

func init() {
	if !NativeEnv() {
		return
	}
	if cpu.ARM64.HasFP {
		currentProfile = ProfileNative
	}
}
