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

package faux

import "github.com/zeta1999/libgiddy/util/builtins"

// PopulationCount returns the number of set bits in x.
func PopulationCount[T builtins.Integers](x T) int {
	return builtins.PopulationCount(x)
}

// FindFirstSet returns the position of the least significant set bit in x,
// counting from 1. It returns 0 when x is zero.
//
// For example FindFirstSet(uint8(0b1000)) is 4, and FindFirstSet(int32(-1))
// is 1.
func FindFirstSet[T builtins.Integers](x T) int {
	u := builtins.ToUnsigned(x)
	width := builtins.BitWidth[T]()
	for i := 0; i < width; i++ {
		if u&(uint64(1)<<i) != 0 {
			return i + 1
		}
	}
	return 0
}

// CountLeadingZeros returns the number of leading zero bits in x.
// Zero yields the bit-width of T, as __clz(0) does on the device.
func CountLeadingZeros[T builtins.Integers](x T) int {
	return builtins.CountLeadingZeros(x)
}

// BitReverse reverses the order of the bits of x within the width of T:
// bit 0 swaps with bit N-1, bit 1 with bit N-2, and so on.
//
// The device only has 32 and 64-bit forms; this works for every width.
// Arithmetic is done on the unsigned reinterpretation of x, so negative
// signed inputs do not drag sign bits into the result.
func BitReverse[T builtins.Integers](x T) T {
	u := builtins.ToUnsigned(x)
	width := builtins.BitWidth[T]()
	var result uint64
	for i := 0; i < width; i++ {
		sourceMask := uint64(1) << i
		targetMask := uint64(1) << (width - i - 1)
		if u&sourceMask != 0 {
			result |= targetMask
		}
	}
	return T(result)
}

// Minimum returns the smaller of x and y.
func Minimum[T builtins.Lanes](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Maximum returns the larger of x and y.
func Maximum[T builtins.Lanes](x, y T) T {
	if x >= y {
		return x
	}
	return y
}
