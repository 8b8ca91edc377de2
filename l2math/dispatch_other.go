// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package l2math

// Other architectures always run the reference profile; math.FMA and
// math.Sqrt may themselves fall back to software there.
func init() {}
