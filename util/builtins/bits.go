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

package builtins

import (
	"math/bits"
	"unsafe"
)

// BitWidth returns the number of bits in T: 8, 16, 32 or 64.
func BitWidth[T Integers]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// ToUnsigned returns x reinterpreted as an unsigned value of the same width,
// zero-extended to 64 bits. Negative signed values are not sign-extended:
// ToUnsigned(int8(-1)) is 0xFF.
func ToUnsigned[T Integers](x T) uint64 {
	width := BitWidth[T]()
	u := uint64(x)
	if width < 64 {
		u &= (uint64(1) << width) - 1
	}
	return u
}

// PopulationCount returns the number of set bits in x.
func PopulationCount[T Integers](x T) int {
	return bits.OnesCount64(ToUnsigned(x))
}

// CountLeadingZeros returns the number of leading zero bits in the
// fixed-width representation of x. Zero yields the full width of T.
func CountLeadingZeros[T Integers](x T) int {
	return bits.LeadingZeros64(ToUnsigned(x)) - (64 - BitWidth[T]())
}

// CountTrailingZeros returns the number of trailing zero bits in x.
// Zero yields the full width of T.
func CountTrailingZeros[T Integers](x T) int {
	u := ToUnsigned(x)
	if u == 0 {
		return BitWidth[T]()
	}
	return bits.TrailingZeros64(u)
}
