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
	"math/bits"

	"github.com/zeta1999/libgiddy/util/builtins"
)

// This file holds the LevelNative bodies. Each works on the 64-bit
// zero-extended form of the input and corrects for the width of T, so a
// single hardware instruction serves every integer width.

func nativePopulationCount[T builtins.Integers](x T) int {
	return bits.OnesCount64(builtins.ToUnsigned(x))
}

func nativeFindFirstSet[T builtins.Integers](x T) int {
	u := builtins.ToUnsigned(x)
	if u == 0 {
		return 0
	}
	return bits.TrailingZeros64(u) + 1
}

func nativeCountLeadingZeros[T builtins.Integers](x T) int {
	return bits.LeadingZeros64(builtins.ToUnsigned(x)) - (64 - builtins.BitWidth[T]())
}

func nativeBitReverse[T builtins.Integers](x T) T {
	return T(bits.Reverse64(builtins.ToUnsigned(x)) >> (64 - builtins.BitWidth[T]()))
}
