// Copyright 2025 libgiddy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intrinsics

import (
	"github.com/zeta1999/libgiddy/cuda/faux"
	"github.com/zeta1999/libgiddy/util/builtins"
)

// PopulationCount returns the number of set bits in x.
func PopulationCount[T builtins.Integers](x T) int {
	if currentLevel == LevelNative {
		return nativePopulationCount(x)
	}
	return faux.PopulationCount(x)
}

// FindFirstSet returns the 1-based position of the least significant set
// bit of x, or 0 when x is zero.
func FindFirstSet[T builtins.Integers](x T) int {
	if currentLevel == LevelNative {
		return nativeFindFirstSet(x)
	}
	return faux.FindFirstSet(x)
}

// CountLeadingZeros returns the number of leading zero bits in x.
// Zero yields the bit-width of T.
func CountLeadingZeros[T builtins.Integers](x T) int {
	if currentLevel == LevelNative {
		return nativeCountLeadingZeros(x)
	}
	return faux.CountLeadingZeros(x)
}

// BitReverse reverses the bit order of x within the width of T.
func BitReverse[T builtins.Integers](x T) T {
	if currentLevel == LevelNative {
		return nativeBitReverse(x)
	}
	return faux.BitReverse(x)
}

// Minimum returns the smaller of x and y.
func Minimum[T builtins.Lanes](x, y T) T {
	if currentLevel == LevelNative {
		return min(x, y)
	}
	return faux.Minimum(x, y)
}

// Maximum returns the larger of x and y.
func Maximum[T builtins.Lanes](x, y T) T {
	if currentLevel == LevelNative {
		return max(x, y)
	}
	return faux.Maximum(x, y)
}

// WarpBallot always returns 0 outside a device warp. See faux.WarpBallot.
func WarpBallot(cond int) uint32 {
	return faux.WarpBallot(cond)
}

// AllInWarpSatisfy always returns 0 outside a device warp.
func AllInWarpSatisfy(cond int) int {
	return faux.AllInWarpSatisfy(cond)
}

// AnyInWarpSatisfies always returns 0 outside a device warp.
func AnyInWarpSatisfies(cond int) int {
	return faux.AnyInWarpSatisfies(cond)
}
