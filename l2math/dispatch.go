// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import (
	"os"
	"strconv"
)

// Profile identifies how the correctly rounded primitives are computed.
type Profile int

const (
	// ProfileReference runs the portable software algorithms.
	ProfileReference Profile = iota

	// ProfileNative routes Sqrt, Fma, Floor, Ceil and Trunc to the
	// hardware-backed intrinsics of the math package. The results are the
	// same bits as ProfileReference.
	ProfileNative
)

// String returns a human-readable name for the profile.
func (p Profile) String() string {
	switch p {
	case ProfileReference:
		return "reference"
	case ProfileNative:
		return "native"
	default:
		return "unknown"
	}
}

// currentProfile is selected once by init() in dispatch_*.go files and never
// written afterwards.
var currentProfile Profile

// CurrentProfile returns the profile selected at package initialization.
func CurrentProfile() Profile {
	return currentProfile
}

// NativeEnv reports whether the L2MATH_NATIVE environment variable requests
// the native profile. Any non-empty value that does not parse as a boolean
// counts as true.
func NativeEnv() bool {
	val := os.Getenv("L2MATH_NATIVE")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func native() bool {
	return currentProfile == ProfileNative
}
