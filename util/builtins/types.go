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

// Package builtins provides width-generic bit manipulation helpers:
// population count, leading and trailing zero counts, and the unsigned
// reinterpretation of fixed-width integers.
//
// Every helper derives the bit-width of its argument from the type itself,
// so the same call works for int8 through uint64 (and named types built on
// them) without the caller hard-coding a width:
//
//	builtins.PopulationCount(uint8(0x16))     // 3
//	builtins.CountLeadingZeros(uint8(0x16))   // 3
//	builtins.CountLeadingZeros(int32(0))      // 32
package builtins

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all totally-ordered numeric lane types.
type Lanes interface {
	Floats | Integers
}
