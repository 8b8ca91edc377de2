// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package l2math

import "golang.org/x/sys/cpu"

func init() {
	if !NativeEnv() {
		return
	}
	// math.FMA needs VFMADD; Floor/Ceil/Trunc lower to ROUNDSD from SSE4.1.
	if cpu.X86.HasFMA && cpu.X86.HasSSE41 {
		currentProfile = ProfileNative
	}
}
